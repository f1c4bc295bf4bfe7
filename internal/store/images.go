package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/delavnica/internal/model"
)

// imageTables lists the kinds that store an item photo. Fasteners have no
// photo column; a bin of screws is identified by its label, not a picture.
var imageTables = map[model.Kind]string{
	model.KindTool:       "tools",
	model.KindConsumable: "consumables",
	model.KindMaterial:   "materials",
}

// SetItemImage stores an item's photo. Returns ErrNotFound if the item no
// longer exists.
func SetItemImage(ctx context.Context, db *sql.DB, ref model.Ref, image []byte, mime string) error {
	table, ok := imageTables[ref.Kind]
	if !ok {
		return fmt.Errorf("%s items have no photo", ref.Kind)
	}

	result, err := db.ExecContext(ctx,
		`UPDATE `+table+` SET image = ?, image_mime = ? WHERE id = ?`,
		image, mime, ref.ID,
	)
	if err != nil {
		return fmt.Errorf("setting %s image: %w", ref.Kind, err)
	}
	return updated(result)
}

// GetItemImage returns an item's photo data and MIME type, or (nil, "") if
// the item has no photo.
func GetItemImage(ctx context.Context, db *sql.DB, ref model.Ref) ([]byte, string, error) {
	table, ok := imageTables[ref.Kind]
	if !ok {
		return nil, "", fmt.Errorf("%s items have no photo", ref.Kind)
	}

	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM `+table+` WHERE id = ?`, ref.ID,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting %s image: %w", ref.Kind, err)
	}
	return image, mime.String, nil
}
