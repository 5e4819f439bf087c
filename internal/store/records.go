package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Kind names the calculation a record holds.
type Kind string

const (
	KindComparison Kind = "comparison"
	KindLoad       Kind = "load"
	KindTarget     Kind = "target"
)

// ErrNotFound is returned by Get for an unknown record id.
var ErrNotFound = errors.New("record not found")

// Record is one saved calculation.
type Record struct {
	ID          string          `json:"id"`
	Seq         int64           `json:"seq"`
	Kind        Kind            `json:"kind"`
	Model       string          `json:"model,omitempty"`
	RequestHash string          `json:"request_hash"`
	Request     json.RawMessage `json:"request"`
	Result      json.RawMessage `json:"result"`
}

// Save stores a calculation. request and result are JSON encoded.
//
// If a record with the same kind and request already exists it is returned
// unchanged and created is false. The insert uses ON CONFLICT DO NOTHING on
// (kind, request_hash), so concurrent writers of the same request all get
// the one stored record.
func (s *Store) Save(ctx context.Context, kind Kind, model string, request, result any) (rec Record, created bool, err error) {
	hash, err := RequestHash(kind, request)
	if err != nil {
		return Record{}, false, fmt.Errorf("save record: %w", err)
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return Record{}, false, fmt.Errorf("save record: marshal request: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return Record{}, false, fmt.Errorf("save record: marshal result: %w", err)
	}

	id := s.newID.Generate()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, kind, request_hash, request, result, model)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(kind, request_hash) DO NOTHING
	`, id, string(kind), hash, string(requestJSON), string(resultJSON), model)
	if err != nil {
		return Record{}, false, fmt.Errorf("save record: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return Record{}, false, fmt.Errorf("save record: %w", err)
	}
	if n == 0 {
		existing, err := s.findByHash(ctx, kind, hash)
		if err != nil {
			return Record{}, false, fmt.Errorf("save record: %w", err)
		}
		return existing, false, nil
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return Record{}, false, fmt.Errorf("save record: %w", err)
	}

	return Record{
		ID:          id,
		Seq:         seq,
		Kind:        kind,
		Model:       model,
		RequestHash: hash,
		Request:     requestJSON,
		Result:      resultJSON,
	}, true, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT seq, id, kind, model, request_hash, request, result
		FROM records
		WHERE id = ?
	`, id)
	rec, err := scanRecord(row)
	if err != nil {
		return Record{}, fmt.Errorf("get record %s: %w", id, err)
	}
	return rec, nil
}

// List returns up to limit records in insertion order, newest last.
// An empty kind matches every kind; limit <= 0 means no limit.
//
// Returns an empty slice (not nil) when there are no records.
func (s *Store) List(ctx context.Context, kind Kind, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, kind, model, request_hash, request, result
		FROM (
			SELECT * FROM records
			WHERE ? = '' OR kind = ?
			ORDER BY seq DESC
			LIMIT ?
		)
		ORDER BY seq ASC
	`, string(kind), string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

func (s *Store) findByHash(ctx context.Context, kind Kind, hash string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT seq, id, kind, model, request_hash, request, result
		FROM records
		WHERE kind = ? AND request_hash = ?
	`, string(kind), hash)
	return scanRecord(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		rec             Record
		kind            string
		request, result string
	)
	err := row.Scan(&rec.Seq, &rec.ID, &kind, &rec.Model, &rec.RequestHash, &request, &result)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("scan record: %w", err)
	}
	rec.Kind = Kind(kind)
	rec.Request = json.RawMessage(request)
	rec.Result = json.RawMessage(result)
	return rec, nil
}
