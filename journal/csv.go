package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	if err := w.Write([]string{"run_id", "line", "type", "client", "tx", "reason", "time"}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{w, f}, nil
}

func (j *CSVJournal) RecordRejection(r Rejection) error {
	err := j.w.Write([]string{
		r.RunID,
		strconv.Itoa(r.Line),
		r.Type,
		strconv.FormatUint(uint64(r.Client), 10),
		strconv.FormatUint(uint64(r.Tx), 10),
		r.Reason,
		r.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	return j.f.Close()
}
