package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/delavnica/internal/model"
)

const fastenerColumns = `id, category, size, length, material, head_type, thread_type,
	quantity, min_quantity, location, notes, created_at`

// CreateFastener creates a new fastener. Fasteners have no name; the
// category is the required identifying field.
func CreateFastener(ctx context.Context, db *sql.DB, f *model.Fastener) (*model.Fastener, error) {
	if f.Category == "" {
		return nil, fmt.Errorf("fastener category required")
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO fasteners (category, size, length, material, head_type, thread_type,
		                        quantity, min_quantity, location, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.Category, f.Size, f.Length, f.Material, f.HeadType, f.ThreadType,
		f.Quantity, f.MinQuantity, f.Location, f.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("creating fastener: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting fastener id: %w", err)
	}

	return GetFastener(ctx, db, id)
}

// GetFastener returns a fastener by ID, or (nil, nil) if it does not exist.
func GetFastener(ctx context.Context, db *sql.DB, id int64) (*model.Fastener, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+fastenerColumns+` FROM fasteners WHERE id = ?`, id,
	)
	f, err := scanFastener(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting fastener: %w", err)
	}
	return f, nil
}

// ListFasteners returns fasteners matching the filter, ordered by category,
// size, then length.
func ListFasteners(ctx context.Context, db *sql.DB, f Filter) ([]model.Fastener, error) {
	query := `SELECT ` + fastenerColumns + ` FROM fasteners WHERE 1=1`
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
		query += ` AND (category LIKE ? OR size LIKE ? OR material LIKE ?
		                OR head_type LIKE ? OR location LIKE ?)`
		p := pattern(f.Search)
		args = append(args, p, p, p, p, p)
	}
	query += ` ORDER BY category, size, length, id`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing fasteners: %w", err)
	}
	defer rows.Close()

	var fasteners []model.Fastener
	for rows.Next() {
		fast, err := scanFastener(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fastener: %w", err)
		}
		fasteners = append(fasteners, *fast)
	}
	return fasteners, rows.Err()
}

// UpdateFastener replaces all of a fastener's fields.
func UpdateFastener(ctx context.Context, db *sql.DB, id int64, f *model.Fastener) error {
	if f.Category == "" {
		return fmt.Errorf("fastener category required")
	}

	result, err := db.ExecContext(ctx,
		`UPDATE fasteners SET category = ?, size = ?, length = ?, material = ?,
		        head_type = ?, thread_type = ?, quantity = ?, min_quantity = ?,
		        location = ?, notes = ?
		 WHERE id = ?`,
		f.Category, f.Size, f.Length, f.Material, f.HeadType, f.ThreadType,
		f.Quantity, f.MinQuantity, f.Location, f.Notes, id,
	)
	if err != nil {
		return fmt.Errorf("updating fastener: %w", err)
	}
	return updated(result)
}

// DeleteFastener removes a fastener unconditionally.
func DeleteFastener(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM fasteners WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting fastener: %w", err)
	}
	return nil
}

func scanFastener(row scanner) (*model.Fastener, error) {
	f := &model.Fastener{}
	var size, length, material, headType, threadType, location, notes sql.NullString
	var minQuantity sql.NullInt64
	err := row.Scan(&f.ID, &f.Category, &size, &length, &material, &headType, &threadType,
		&f.Quantity, &minQuantity, &location, &notes, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	f.Size = size.String
	f.Length = length.String
	f.Material = material.String
	f.HeadType = headType.String
	f.ThreadType = threadType.String
	if minQuantity.Valid {
		f.MinQuantity = &minQuantity.Int64
	}
	f.Location = location.String
	f.Notes = notes.String
	return f, nil
}
