// Package feed streams transaction records out of CSV input one row at
// a time, so arbitrarily large files never have to fit in memory.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/payments/ledger"
)

// RowError marks a single malformed row. Callers are expected to skip
// the row and keep reading; any other error from Next is fatal for the
// whole stream.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// CSVFeed reads transaction rows:
//
//	type,client,tx,amount
//
// where amount is optional (dispute/resolve/chargeback rows omit it).
// A single leading header row ("type,...") is allowed. Whitespace
// around every field is trimmed. Blank rows are skipped. Rows are
// yielded in input order, forward-only, single pass.
type CSVFeed struct {
	f *os.File
	r *csv.Reader

	line     int
	sawFirst bool
}

// Open creates a feed over a file. Failure to open is the caller's
// fatal tier, not a skippable row problem.
func Open(path string) (*CSVFeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	feed := New(f)
	feed.f = f
	return feed, nil
}

// New creates a feed over any reader.
func New(r io.Reader) *CSVFeed {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &CSVFeed{r: cr}
}

func (f *CSVFeed) Close() error {
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}

// Line reports the row number of the most recently yielded record,
// counting the header.
func (f *CSVFeed) Line() int { return f.line }

// Next returns the next record. EOF is (zero, false, nil). A malformed
// row comes back as a *RowError and does not poison the feed; the next
// call moves past it.
func (f *CSVFeed) Next() (ledger.Record, bool, error) {
	for {
		row, err := f.r.Read()
		f.line++
		if err == io.EOF {
			return ledger.Record{}, false, nil
		}
		if err != nil {
			// Quoting errors and friends are per-row; anything else
			// means the underlying stream is broken.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return ledger.Record{}, false, &RowError{Line: f.line, Err: parseErr.Err}
			}
			return ledger.Record{}, false, err
		}

		if isBlank(row) {
			continue
		}

		// Allow a single header row
		if !f.sawFirst {
			f.sawFirst = true
			if strings.EqualFold(strings.TrimSpace(row[0]), "type") {
				continue
			}
		}

		rec, err := parseRow(row)
		if err != nil {
			return ledger.Record{}, false, &RowError{Line: f.line, Err: err}
		}
		return rec, true, nil
	}
}

func parseRow(row []string) (ledger.Record, error) {
	// Need at least: type,client,tx
	if len(row) < 3 {
		return ledger.Record{}, fmt.Errorf("want at least 3 fields, got %d", len(row))
	}

	typ, err := ledger.ParseTxType(row[0])
	if err != nil {
		return ledger.Record{}, err
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("bad client %q: %w", row[1], err)
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("bad tx %q: %w", row[2], err)
	}

	rec := ledger.Record{
		Type:   typ,
		Client: ledger.ClientID(client),
		Tx:     ledger.TxID(tx),
	}

	// Short rows and empty amount cells both mean "no amount".
	if len(row) >= 4 {
		if raw := strings.TrimSpace(row[3]); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return ledger.Record{}, fmt.Errorf("bad amount %q: %w", row[3], err)
			}
			rec.Amount = amount
			rec.HasAmount = true
		}
	}

	return rec, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
