// Package process drives one full run: pull records from a feed, apply
// each to the ledger engine, and route every dropped record to the
// diagnostics channel. Rejections never stop the run; only a broken
// input stream does.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rustyeddy/payments/feed"
	"github.com/rustyeddy/payments/internal/id"
	"github.com/rustyeddy/payments/journal"
	"github.com/rustyeddy/payments/ledger"
)

// RecordFeed yields transaction records one at a time. Implementations
// should be deterministic and return (ok=false, err=nil) at EOF.
type RecordFeed interface {
	Next() (rec ledger.Record, ok bool, err error)
	Line() int
	Close() error
}

// Summary is what a run looked like, for the diagnostics side only.
// The account snapshot itself is read off the engine afterwards.
type Summary struct {
	RunID     string
	Records   int
	Accepted  int
	Rejected  int
	Malformed int
}

// Runner wires a feed into an engine. Journal and Stderr are optional;
// left nil they default to the no-op journal and a discarded writer.
type Runner struct {
	Engine  *ledger.Engine
	Feed    RecordFeed
	Journal journal.Journal
	Verbose bool
	Stderr  io.Writer
}

// Run executes the processing loop:
//  1. read next record
//  2. engine.Apply(record)
//  3. on rejection, journal it and move on
//
// Malformed rows are skipped the same way. The returned error is the
// fatal tier: the input stream itself could not be read.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	_ = ctx // reserved for future cancellation checks

	if r.Engine == nil {
		return Summary{}, fmt.Errorf("process: Engine is required")
	}
	if r.Feed == nil {
		return Summary{}, fmt.Errorf("process: Feed is required")
	}
	j := r.Journal
	if j == nil {
		j = journal.Nop()
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	defer r.Feed.Close()

	sum := Summary{RunID: id.New()}

	for {
		rec, ok, err := r.Feed.Next()
		if err != nil {
			var rowErr *feed.RowError
			if errors.As(err, &rowErr) {
				sum.Records++
				sum.Malformed++
				r.note(j, stderr, journal.Rejection{
					RunID:  sum.RunID,
					Line:   rowErr.Line,
					Type:   "malformed",
					Reason: rowErr.Err.Error(),
					Time:   time.Now().UTC(),
				})
				continue
			}
			return sum, err
		}
		if !ok {
			break
		}

		sum.Records++
		if err := r.Engine.Apply(rec); err != nil {
			sum.Rejected++
			r.note(j, stderr, journal.Rejection{
				RunID:  sum.RunID,
				Line:   r.Feed.Line(),
				Type:   rec.Type.String(),
				Client: rec.Client,
				Tx:     rec.Tx,
				Reason: err.Error(),
				Time:   time.Now().UTC(),
			})
			continue
		}
		sum.Accepted++
	}

	return sum, nil
}

func (r *Runner) note(j journal.Journal, stderr io.Writer, rej journal.Rejection) {
	// A failing journal must not take the run down with it.
	if err := j.RecordRejection(rej); err != nil && r.Verbose {
		fmt.Fprintf(stderr, "journal: %v\n", err)
	}
	if r.Verbose {
		fmt.Fprintf(stderr, "skip row %d: %s client=%d tx=%d: %s\n",
			rej.Line, rej.Type, rej.Client, rej.Tx, rej.Reason)
	}
}
