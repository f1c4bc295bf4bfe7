package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/delavnica/internal/model"
)

// GetSummary fetches the display projection for any (kind, id) pair, or
// (nil, nil) if the item does not exist. Favorites, token resolution, and
// label batches all hydrate through this single query per item.
func GetSummary(ctx context.Context, db *sql.DB, ref model.Ref) (*model.Summary, error) {
	s := &model.Summary{Kind: ref.Kind, ID: ref.ID}
	var name, category, location sql.NullString
	var err error

	switch ref.Kind {
	case model.KindTool:
		err = db.QueryRowContext(ctx,
			`SELECT name, category, location FROM tools WHERE id = ?`, ref.ID,
		).Scan(&name, &category, &location)
	case model.KindConsumable:
		err = db.QueryRowContext(ctx,
			`SELECT name, category, location FROM consumables WHERE id = ?`, ref.ID,
		).Scan(&name, &category, &location)
	case model.KindMaterial:
		err = db.QueryRowContext(ctx,
			`SELECT name, category, location FROM materials WHERE id = ?`, ref.ID,
		).Scan(&name, &category, &location)
	case model.KindFastener:
		// Fasteners have no name column; synthesize the display name.
		f, ferr := GetFastener(ctx, db, ref.ID)
		if ferr != nil {
			return nil, ferr
		}
		if f == nil {
			return nil, nil
		}
		s.Name = f.DisplayName()
		s.Category = f.Category
		s.Location = f.Location
		return s, nil
	default:
		return nil, fmt.Errorf("unknown item kind: %q", ref.Kind)
	}

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s summary: %w", ref.Kind, err)
	}
	s.Name = name.String
	s.Category = category.String
	s.Location = location.String
	return s, nil
}
