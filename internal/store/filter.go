package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned by update operations aimed at an id that no longer
// exists. Get functions return (nil, nil) instead; updates need the sentinel
// so callers can tell "missing" from a real failure.
var ErrNotFound = errors.New("not found")

// Filter holds the optional criteria for catalog listing queries. All
// provided criteria combine with AND; zero values mean "no constraint".
type Filter struct {
	Category string // exact match
	Location string // substring match
	Search   string // case-insensitive substring over kind-specific fields
}

// pattern wraps a term for a LIKE match. SQLite's LIKE is case-insensitive
// for ASCII, which matches the search semantics of the listing pages.
func pattern(term string) string {
	return "%" + term + "%"
}

// updated maps an UPDATE that matched no rows to ErrNotFound.
func updated(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
