package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/delavnica/internal/model"
)

const consumableColumns = `id, name, category, quantity, unit, min_quantity, location,
	compatible_with, notes, purchase_url, image_mime, created_at`

// CreateConsumable creates a new consumable. Quantity defaults to zero and a
// nil MinQuantity means the item is not tracked for depletion.
func CreateConsumable(ctx context.Context, db *sql.DB, c *model.Consumable) (*model.Consumable, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("consumable name required")
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO consumables (name, category, quantity, unit, min_quantity, location,
		                          compatible_with, notes, purchase_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Category, c.Quantity, c.Unit, c.MinQuantity, c.Location,
		c.CompatibleWith, c.Notes, c.PurchaseURL,
	)
	if err != nil {
		return nil, fmt.Errorf("creating consumable: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting consumable id: %w", err)
	}

	return GetConsumable(ctx, db, id)
}

// GetConsumable returns a consumable by ID, or (nil, nil) if it does not exist.
func GetConsumable(ctx context.Context, db *sql.DB, id int64) (*model.Consumable, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+consumableColumns+` FROM consumables WHERE id = ?`, id,
	)
	c, err := scanConsumable(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting consumable: %w", err)
	}
	return c, nil
}

// ListConsumables returns consumables matching the filter, ordered by name.
func ListConsumables(ctx context.Context, db *sql.DB, f Filter) ([]model.Consumable, error) {
	query := `SELECT ` + consumableColumns + ` FROM consumables WHERE 1=1`
	var args []any

	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Location != "" {
		query += ` AND location LIKE ?`
		args = append(args, pattern(f.Location))
	}
	if f.Search != "" {
		query += ` AND (name LIKE ? OR category LIKE ? OR compatible_with LIKE ?)`
		p := pattern(f.Search)
		args = append(args, p, p, p)
	}
	query += ` ORDER BY name, id`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing consumables: %w", err)
	}
	defer rows.Close()

	var consumables []model.Consumable
	for rows.Next() {
		c, err := scanConsumable(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning consumable: %w", err)
		}
		consumables = append(consumables, *c)
	}
	return consumables, rows.Err()
}

// UpdateConsumable replaces all of a consumable's fields.
func UpdateConsumable(ctx context.Context, db *sql.DB, id int64, c *model.Consumable) error {
	if c.Name == "" {
		return fmt.Errorf("consumable name required")
	}

	result, err := db.ExecContext(ctx,
		`UPDATE consumables SET name = ?, category = ?, quantity = ?, unit = ?,
		        min_quantity = ?, location = ?, compatible_with = ?, notes = ?,
		        purchase_url = ?
		 WHERE id = ?`,
		c.Name, c.Category, c.Quantity, c.Unit, c.MinQuantity, c.Location,
		c.CompatibleWith, c.Notes, c.PurchaseURL, id,
	)
	if err != nil {
		return fmt.Errorf("updating consumable: %w", err)
	}
	return updated(result)
}

// DeleteConsumable removes a consumable unconditionally.
func DeleteConsumable(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM consumables WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting consumable: %w", err)
	}
	return nil
}

func scanConsumable(row scanner) (*model.Consumable, error) {
	c := &model.Consumable{}
	var category, unit, location, compatibleWith sql.NullString
	var notes, purchaseURL, imageMime sql.NullString
	var minQuantity sql.NullInt64
	err := row.Scan(&c.ID, &c.Name, &category, &c.Quantity, &unit, &minQuantity, &location,
		&compatibleWith, &notes, &purchaseURL, &imageMime, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.Category = category.String
	c.Unit = unit.String
	if minQuantity.Valid {
		c.MinQuantity = &minQuantity.Int64
	}
	c.Location = location.String
	c.CompatibleWith = compatibleWith.String
	c.Notes = notes.String
	c.PurchaseURL = purchaseURL.String
	c.ImageMime = imageMime.String
	return c, nil
}
