package core

import "errors"

// ExpenseRecord is a single dated entry in the ledger.
//
// Records are append-only: the store assigns the ID on insert and the
// record is never updated or deleted afterwards. Amount carries no sign
// constraint, so refunds recorded as negative amounts are accepted.
type ExpenseRecord struct {
	ID          int64
	Date        string // YYYY-MM-DD
	Amount      float64
	Category    string
	Description string
}

var (
	// ErrValidation marks caller input rejected before it reaches the
	// store: a malformed date or a non-numeric amount.
	ErrValidation = errors.New("validation failed")

	// ErrMalformedDate marks a stored date that does not parse as
	// YYYY-MM-DD. Hitting it during aggregation means a record was
	// inserted without validation; it is never used for empty input.
	ErrMalformedDate = errors.New("malformed date")
)
