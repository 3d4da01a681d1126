package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ClientID identifies a client account.
type ClientID uint16

// TxID identifies a deposit or withdrawal. Dispute, resolve and
// chargeback rows reference an existing TxID rather than minting one.
type TxID uint32

// TxType is the kind of a transaction record.
type TxType int

const (
	TxUnknown TxType = iota
	TxDeposit
	TxWithdrawal
	TxDispute
	TxResolve
	TxChargeback
)

func (t TxType) String() string {
	switch t {
	case TxDeposit:
		return "deposit"
	case TxWithdrawal:
		return "withdrawal"
	case TxDispute:
		return "dispute"
	case TxResolve:
		return "resolve"
	case TxChargeback:
		return "chargeback"
	}
	return "unknown"
}

// ParseTxType parses the type column of an input row.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return TxDeposit, nil
	case "withdrawal":
		return TxWithdrawal, nil
	case "dispute":
		return TxDispute, nil
	case "resolve":
		return TxResolve, nil
	case "chargeback":
		return TxChargeback, nil
	}
	return TxUnknown, fmt.Errorf("unknown transaction type %q", s)
}

// Record is one input row, already decoded and validated for shape.
// Amount is only meaningful when HasAmount is set; dispute, resolve
// and chargeback rows carry no amount of their own.
type Record struct {
	Type      TxType
	Client    ClientID
	Tx        TxID
	Amount    decimal.Decimal
	HasAmount bool
}
