package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

type disputeStatus int

const (
	statusNone disputeStatus = iota
	statusDisputed
	statusResolved
	statusChargedBack
)

// storedDeposit is a retained deposit, kept so it can be disputed
// later. Withdrawals are never disputable and are never stored.
// Deposits are never deleted; the terminal charged-back status is
// what makes repeat chargebacks no-ops.
type storedDeposit struct {
	client ClientID
	amount decimal.Decimal
	status disputeStatus
}

// Engine applies transaction records one at a time and owns all ledger
// state: accounts by client, stored deposits by transaction id, and
// the set of consumed transaction ids. It is built fresh per run and
// is not safe for concurrent use.
type Engine struct {
	accounts map[ClientID]*Account
	deposits map[TxID]*storedDeposit
	seen     map[TxID]struct{}
}

func NewEngine() *Engine {
	return &Engine{
		accounts: make(map[ClientID]*Account),
		deposits: make(map[TxID]*storedDeposit),
		seen:     make(map[TxID]struct{}),
	}
}

// Apply runs one record through the rule chain. A nil return means the
// record was accepted and state mutated; any error is a rejection and
// guarantees state is exactly as it was. Rejections are expected
// during normal operation and must not stop the run.
func (e *Engine) Apply(rec Record) error {
	switch rec.Type {
	case TxDeposit:
		return e.deposit(rec)
	case TxWithdrawal:
		return e.withdrawal(rec)
	case TxDispute:
		return e.dispute(rec)
	case TxResolve:
		return e.resolve(rec)
	case TxChargeback:
		return e.chargebackTx(rec)
	}
	return ErrUnknownType
}

// account returns the client's account, creating it on first
// reference. Creation happens even when the record is later rejected:
// a withdrawal against a brand-new client still materializes an empty
// account in the snapshot.
func (e *Engine) account(client ClientID) *Account {
	acct, ok := e.accounts[client]
	if !ok {
		acct = newAccount(client)
		e.accounts[client] = acct
	}
	return acct
}

func (e *Engine) deposit(rec Record) error {
	acct := e.account(rec.Client)
	if acct.Locked {
		return ErrAccountLocked
	}
	if !rec.HasAmount {
		return ErrMissingAmount
	}
	if rec.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if _, used := e.seen[rec.Tx]; used {
		return ErrDuplicateTx
	}

	acct.credit(rec.Amount)
	e.seen[rec.Tx] = struct{}{}
	e.deposits[rec.Tx] = &storedDeposit{client: rec.Client, amount: rec.Amount}
	return nil
}

func (e *Engine) withdrawal(rec Record) error {
	acct := e.account(rec.Client)
	if acct.Locked {
		return ErrAccountLocked
	}
	if !rec.HasAmount {
		return ErrMissingAmount
	}
	if rec.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if _, used := e.seen[rec.Tx]; used {
		return ErrDuplicateTx
	}
	if acct.Available.LessThan(rec.Amount) {
		return ErrInsufficientFunds
	}

	acct.debit(rec.Amount)
	e.seen[rec.Tx] = struct{}{}
	return nil
}

func (e *Engine) dispute(rec Record) error {
	acct := e.account(rec.Client)
	if acct.Locked {
		return ErrAccountLocked
	}
	dep, ok := e.deposits[rec.Tx]
	if !ok {
		return ErrUnknownTx
	}
	if dep.client != rec.Client {
		return ErrClientMismatch
	}
	// A resolved deposit may be disputed again; only an active dispute
	// or a terminal chargeback blocks re-entry.
	switch dep.status {
	case statusDisputed:
		return ErrAlreadyDisputed
	case statusChargedBack:
		return ErrChargedBack
	}

	acct.hold(dep.amount)
	dep.status = statusDisputed
	return nil
}

func (e *Engine) resolve(rec Record) error {
	acct := e.account(rec.Client)
	if acct.Locked {
		return ErrAccountLocked
	}
	dep, ok := e.deposits[rec.Tx]
	if !ok {
		return ErrUnknownTx
	}
	if dep.client != rec.Client {
		return ErrClientMismatch
	}
	if dep.status != statusDisputed {
		if dep.status == statusChargedBack {
			return ErrChargedBack
		}
		return ErrNotDisputed
	}

	acct.release(dep.amount)
	dep.status = statusResolved
	return nil
}

func (e *Engine) chargebackTx(rec Record) error {
	acct := e.account(rec.Client)
	if acct.Locked {
		return ErrAccountLocked
	}
	dep, ok := e.deposits[rec.Tx]
	if !ok {
		return ErrUnknownTx
	}
	if dep.client != rec.Client {
		return ErrClientMismatch
	}
	if dep.status != statusDisputed {
		if dep.status == statusChargedBack {
			return ErrChargedBack
		}
		return ErrNotDisputed
	}

	acct.chargeback(dep.amount)
	dep.status = statusChargedBack
	return nil
}

// Snapshot returns value copies of every account touched so far,
// sorted by client id. Output order is not part of the contract;
// sorting just keeps runs deterministic.
func (e *Engine) Snapshot() []Account {
	out := make([]Account, 0, len(e.accounts))
	for _, acct := range e.accounts {
		out = append(out, *acct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Client < out[j].Client })
	return out
}
