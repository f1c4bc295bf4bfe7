package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/erazemk/delavnica/internal/model"
)

// ToggleFavorite flips the favorited state of a (kind, id) pair and returns
// the resulting state. The delete-then-insert runs in one transaction, so
// rapid repeated toggles always land on exactly favorited or not, never a
// duplicate row.
func ToggleFavorite(ctx context.Context, db *sql.DB, ref model.Ref) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM favorites WHERE kind = ? AND item_id = ?`,
		ref.Kind, ref.ID,
	)
	if err != nil {
		return false, fmt.Errorf("removing favorite: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking removed favorite: %w", err)
	}

	favorited := false
	if removed == 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO favorites (kind, item_id) VALUES (?, ?)`,
			ref.Kind, ref.ID,
		); err != nil {
			return false, fmt.Errorf("adding favorite: %w", err)
		}
		favorited = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing toggle: %w", err)
	}
	return favorited, nil
}

// CheckFavorites reports which of the given pairs are currently favorited.
// Pairs that are unknown or point at deleted items simply come back false:
// a stale favorites row alone does not count, the item must still exist.
func CheckFavorites(ctx context.Context, db *sql.DB, refs []model.Ref) (map[model.Ref]bool, error) {
	favorited := make(map[model.Ref]bool, len(refs))
	for _, ref := range refs {
		var count int
		err := db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM favorites WHERE kind = ? AND item_id = ?`,
			ref.Kind, ref.ID,
		).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("checking favorite: %w", err)
		}
		if count == 0 {
			continue
		}
		summary, err := GetSummary(ctx, db, ref)
		if err != nil {
			return nil, err
		}
		if summary != nil {
			favorited[ref] = true
		}
	}
	return favorited, nil
}

// ListFavorites returns all favorited items newest-first, hydrated with
// their display summaries. Favorites whose underlying item has been deleted
// are skipped, not surfaced as broken entries.
func ListFavorites(ctx context.Context, db *sql.DB) ([]model.Favorite, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT kind, item_id, created_at FROM favorites ORDER BY created_at DESC, item_id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	type entry struct {
		ref model.Ref
		at  time.Time
	}
	var entries []entry
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.ref.Kind, &e.ref.ID, &e.at); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var favorites []model.Favorite
	for _, e := range entries {
		summary, err := GetSummary(ctx, db, e.ref)
		if err != nil {
			return nil, err
		}
		if summary == nil {
			// Stale favorite pointing at a deleted item.
			continue
		}
		favorites = append(favorites, model.Favorite{Summary: *summary, FavoritedAt: e.at})
	}
	return favorites, nil
}
