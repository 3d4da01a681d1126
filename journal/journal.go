// Package journal captures per-record rejection notices on a channel
// separate from the primary snapshot output. It is optional; runs work
// fine with the no-op journal.
package journal

import (
	"time"

	"github.com/rustyeddy/payments/ledger"
)

// Rejection describes one dropped input record: a business-rule
// rejection from the engine or a malformed row from the feed.
type Rejection struct {
	RunID  string
	Line   int
	Type   string
	Client ledger.ClientID
	Tx     ledger.TxID
	Reason string
	Time   time.Time
}

type Journal interface {
	RecordRejection(Rejection) error
	Close() error
}

type nopJournal struct{}

func (nopJournal) RecordRejection(Rejection) error { return nil }
func (nopJournal) Close() error                    { return nil }

// Nop returns a journal that discards everything.
func Nop() Journal { return nopJournal{} }
