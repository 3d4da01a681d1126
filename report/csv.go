// Package report serializes the final account snapshot.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rustyeddy/payments/ledger"
)

// Header is the output column set, in order.
var Header = []string{"client", "available", "held", "total", "locked"}

// WriteCSV writes one row per account with amounts at exactly four
// fractional digits. This is the primary output of a run; diagnostics
// never share this writer.
func WriteCSV(w io.Writer, accounts []ledger.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, a := range accounts {
		err := cw.Write([]string{
			strconv.FormatUint(uint64(a.Client), 10),
			a.Available.StringFixed(4),
			a.Held.StringFixed(4),
			a.Total().StringFixed(4),
			strconv.FormatBool(a.Locked),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
