// Package query builds and executes predicate-based retrieval against the
// expense store.
package query

import (
	"context"
	"strings"

	"ledger/internal/core"
	"ledger/internal/storage"
)

// Filter holds optional retrieval bounds combined with AND semantics.
// Empty fields impose no constraint on their dimension. Date bounds are
// inclusive and compare the YYYY-MM-DD text directly, which matches
// calendar order for well-formed dates. Category match is exact and
// case-sensitive.
type Filter struct {
	Start    string
	End      string
	Category string
}

// Predicate returns the WHERE fragment and bound arguments for the
// filter. An empty filter yields an empty fragment. Values are always
// bound as parameters, never spliced into the fragment.
func (f Filter) Predicate() (string, []any) {
	var clauses []string
	var args []any

	if f.Start != "" {
		clauses = append(clauses, "date >= ?")
		args = append(args, f.Start)
	}
	if f.End != "" {
		clauses = append(clauses, "date <= ?")
		args = append(args, f.End)
	}
	if f.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, f.Category)
	}

	return strings.Join(clauses, " AND "), args
}

// Engine executes filters and keyword searches against the record store.
// Results preserve store order; an empty result is a valid outcome, not
// an error.
type Engine struct {
	repo *storage.Repository
}

func NewEngine(repo *storage.Repository) *Engine {
	return &Engine{repo: repo}
}

// Filter returns the records satisfying every set field of f.
func (e *Engine) Filter(ctx context.Context, f Filter) ([]core.ExpenseRecord, error) {
	where, args := f.Predicate()
	return e.repo.Select(ctx, where, args...)
}

// Search returns the records whose description contains keyword as a
// substring. Matching uses SQLite LIKE and is therefore case-insensitive
// for ASCII; LIKE metacharacters in the keyword are escaped so it always
// matches literally. A keyword that is empty or whitespace-only matches
// every record.
func (e *Engine) Search(ctx context.Context, keyword string) ([]core.ExpenseRecord, error) {
	if strings.TrimSpace(keyword) == "" {
		return e.repo.All(ctx)
	}
	return e.repo.Select(ctx, `description LIKE ? ESCAPE '\'`, "%"+escapeLike(keyword)+"%")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
