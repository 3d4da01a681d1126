package ledger

import "errors"

// Rejection reasons returned by Engine.Apply. Every one of these is a
// per-record no-op: the engine state is untouched and the caller is
// expected to move on to the next record. They exist so a diagnostics
// channel can say why a record was dropped.
var (
	// ErrAccountLocked rejects any record against an account frozen by a
	// prior chargeback. The lock never clears.
	ErrAccountLocked = errors.New("account is locked")

	// ErrDuplicateTx rejects a deposit or withdrawal reusing an id
	// already consumed by an earlier deposit or withdrawal.
	ErrDuplicateTx = errors.New("transaction id already used")

	// ErrMissingAmount rejects a deposit or withdrawal with no amount.
	ErrMissingAmount = errors.New("amount required")

	// ErrNegativeAmount rejects a deposit or withdrawal with a negative amount.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInsufficientFunds rejects a withdrawal exceeding available
	// funds. Held funds do not count.
	ErrInsufficientFunds = errors.New("insufficient available funds")

	// ErrUnknownTx rejects a dispute, resolve or chargeback referencing
	// a transaction that was never stored.
	ErrUnknownTx = errors.New("referenced transaction not found")

	// ErrClientMismatch rejects a dispute, resolve or chargeback whose
	// client differs from the owner of the referenced transaction.
	ErrClientMismatch = errors.New("transaction belongs to another client")

	// ErrAlreadyDisputed rejects a dispute against a transaction already
	// under dispute.
	ErrAlreadyDisputed = errors.New("transaction is already under dispute")

	// ErrNotDisputed rejects a resolve or chargeback against a
	// transaction not currently under dispute.
	ErrNotDisputed = errors.New("transaction is not under dispute")

	// ErrChargedBack rejects any dispute lifecycle operation against a
	// transaction that was already charged back.
	ErrChargedBack = errors.New("transaction was charged back")

	// ErrUnknownType rejects a record whose type the engine does not handle.
	ErrUnknownType = errors.New("unknown transaction type")
)
