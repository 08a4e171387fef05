// Package storage owns the durable expense ledger. The Repository is the
// only component with write access to the database; query and report
// consume the read-only record slices it returns.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ledger/internal/core"

	_ "modernc.org/sqlite"
)

// ErrPersistence marks durable-store I/O or constraint failures. Callers
// discriminate with errors.Is; an empty result set is never an error.
var ErrPersistence = errors.New("persistence failure")

// Repository is a handle on the SQLite-backed expense ledger.
type Repository struct {
	db *sql.DB
}

// NewRepository opens (creating if necessary) the ledger database at
// dbPath and brings the schema up to date.
func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := EnsureSchema(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert appends a new record and returns its assigned id. Ids are
// assigned by the database, strictly increasing and never reused. The
// date text is stored exactly as given: format validation is the
// caller's responsibility and the column carries no grammar constraint.
func (r *Repository) Insert(ctx context.Context, date string, amount float64, category, description string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO expenses (date, amount, category, description) VALUES (?, ?, ?, ?)",
		date, amount, category, description,
	)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w: %w", ErrPersistence, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted id: %w: %w", ErrPersistence, err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"date", date,
		"amount", amount,
		"category", category)

	return id, nil
}

// All returns every record in the ledger ordered by id. An empty ledger
// yields an empty slice.
func (r *Repository) All(ctx context.Context) ([]core.ExpenseRecord, error) {
	return r.Select(ctx, "")
}

// Select returns the records matching the given WHERE fragment, ordered
// by id ascending. An empty fragment matches everything. Values must be
// bound through args, never interpolated into the fragment.
func (r *Repository) Select(ctx context.Context, where string, args ...any) ([]core.ExpenseRecord, error) {
	q := "SELECT id, date, amount, category, description FROM expenses"
	if where != "" {
		q += " WHERE " + where
	}
	q += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w: %w", ErrPersistence, err)
	}
	defer rows.Close()

	var records []core.ExpenseRecord
	for rows.Next() {
		var rec core.ExpenseRecord
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Amount, &rec.Category, &rec.Description); err != nil {
			return nil, fmt.Errorf("scan expense: %w: %w", ErrPersistence, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w: %w", ErrPersistence, err)
	}

	return records, nil
}
