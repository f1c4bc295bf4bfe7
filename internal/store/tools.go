package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/delavnica/internal/model"
)

const toolColumns = `id, name, category, brand, model, purchase_date, purchase_price,
	condition, location, notes, purchase_url, manual_url, image_mime, created_at`

// CreateTool creates a new tool. Only the name is required; everything else
// defaults to empty.
func CreateTool(ctx context.Context, db *sql.DB, t *model.Tool) (*model.Tool, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("tool name required")
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO tools (name, category, brand, model, purchase_date, purchase_price,
		                    condition, location, notes, purchase_url, manual_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Name, t.Category, t.Brand, t.Model, t.PurchaseDate, t.PurchasePrice,
		t.Condition, t.Location, t.Notes, t.PurchaseURL, t.ManualURL,
	)
	if err != nil {
		return nil, fmt.Errorf("creating tool: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting tool id: %w", err)
	}

	return GetTool(ctx, db, id)
}

// GetTool returns a tool by ID, or (nil, nil) if it does not exist.
func GetTool(ctx context.Context, db *sql.DB, id int64) (*model.Tool, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+toolColumns+` FROM tools WHERE id = ?`, id,
	)
	t, err := scanTool(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting tool: %w", err)
	}
	return t, nil
}

// ListTools returns tools matching the filter, ordered by name.
func ListTools(ctx context.Context, db *sql.DB, f Filter) ([]model.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE 1=1`
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
		query += ` AND (name LIKE ? OR brand LIKE ? OR model LIKE ?)`
		p := pattern(f.Search)
		args = append(args, p, p, p)
	}
	query += ` ORDER BY name, id`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tools: %w", err)
	}
	defer rows.Close()

	var tools []model.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tool: %w", err)
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}

// RecentTools returns the most recently added tools, newest first.
func RecentTools(ctx context.Context, db *sql.DB, limit int) ([]model.Tool, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+toolColumns+` FROM tools ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recent tools: %w", err)
	}
	defer rows.Close()

	var tools []model.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tool: %w", err)
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}

// UpdateTool replaces all of a tool's fields. Omitted optional fields in the
// incoming record reset the stored ones. Returns ErrNotFound if the id no
// longer exists.
func UpdateTool(ctx context.Context, db *sql.DB, id int64, t *model.Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name required")
	}

	result, err := db.ExecContext(ctx,
		`UPDATE tools SET name = ?, category = ?, brand = ?, model = ?, purchase_date = ?,
		        purchase_price = ?, condition = ?, location = ?, notes = ?,
		        purchase_url = ?, manual_url = ?
		 WHERE id = ?`,
		t.Name, t.Category, t.Brand, t.Model, t.PurchaseDate, t.PurchasePrice,
		t.Condition, t.Location, t.Notes, t.PurchaseURL, t.ManualURL, id,
	)
	if err != nil {
		return fmt.Errorf("updating tool: %w", err)
	}
	return updated(result)
}

// DeleteTool removes a tool. The delete is unconditional and does not touch
// favorites; a stale favorite resolves to missing instead.
func DeleteTool(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM tools WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tool: %w", err)
	}
	return nil
}

// CompatibleConsumables returns consumables whose compatibility text mentions
// the tool's name. This is a soft substring match, not a reference: deleting
// the tool never edits the consumables.
func CompatibleConsumables(ctx context.Context, db *sql.DB, toolName string) ([]model.Consumable, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+consumableColumns+` FROM consumables
		 WHERE compatible_with LIKE ? ORDER BY name, id`,
		pattern(toolName),
	)
	if err != nil {
		return nil, fmt.Errorf("listing compatible consumables: %w", err)
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

func scanTool(row scanner) (*model.Tool, error) {
	t := &model.Tool{}
	var category, brand, mdl, purchaseDate, condition, location sql.NullString
	var notes, purchaseURL, manualURL, imageMime sql.NullString
	var purchasePrice sql.NullFloat64
	err := row.Scan(&t.ID, &t.Name, &category, &brand, &mdl, &purchaseDate, &purchasePrice,
		&condition, &location, &notes, &purchaseURL, &manualURL, &imageMime, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Category = category.String
	t.Brand = brand.String
	t.Model = mdl.String
	t.PurchaseDate = purchaseDate.String
	t.PurchasePrice = purchasePrice.Float64
	t.Condition = condition.String
	t.Location = location.String
	t.Notes = notes.String
	t.PurchaseURL = purchaseURL.String
	t.ManualURL = manualURL.String
	t.ImageMime = imageMime.String
	return t, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
