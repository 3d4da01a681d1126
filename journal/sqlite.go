package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/payments/ledger"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRejection(r Rejection) error {
	_, err := j.db.Exec(`
		INSERT INTO rejections
		(run_id, line, type, client, tx, reason, time)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Line, r.Type, r.Client, r.Tx, r.Reason, r.Time,
	)
	return err
}

// ListByRun returns every rejection recorded under one run id, in
// input order.
func (j *SQLiteJournal) ListByRun(runID string) ([]Rejection, error) {
	rows, err := j.db.Query(`
		SELECT run_id, line, type, client, tx, reason, time
		FROM rejections
		WHERE run_id = ?
		ORDER BY line`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Rejection
	for rows.Next() {
		var r Rejection
		var client uint64
		var tx uint64
		if err := rows.Scan(&r.RunID, &r.Line, &r.Type, &client, &tx, &r.Reason, &r.Time); err != nil {
			return nil, err
		}
		r.Client = ledger.ClientID(client)
		r.Tx = ledger.TxID(tx)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
