package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/delavnica/internal/model"
)

const materialColumns = `id, name, category, material_type, quantity, unit, length, width,
	thickness, dimension_unit, grade, finish, color, cost_per_unit, supplier,
	min_quantity, location, notes, image_mime, created_at`

// CreateMaterial creates a new material.
func CreateMaterial(ctx context.Context, db *sql.DB, m *model.Material) (*model.Material, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("material name required")
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO materials (name, category, material_type, quantity, unit, length, width,
		                        thickness, dimension_unit, grade, finish, color, cost_per_unit,
		                        supplier, min_quantity, location, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Name, m.Category, m.MaterialType, m.Quantity, m.Unit, m.Length, m.Width,
		m.Thickness, m.DimensionUnit, m.Grade, m.Finish, m.Color, m.CostPerUnit,
		m.Supplier, m.MinQuantity, m.Location, m.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("creating material: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting material id: %w", err)
	}

	return GetMaterial(ctx, db, id)
}

// GetMaterial returns a material by ID, or (nil, nil) if it does not exist.
func GetMaterial(ctx context.Context, db *sql.DB, id int64) (*model.Material, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+materialColumns+` FROM materials WHERE id = ?`, id,
	)
	m, err := scanMaterial(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting material: %w", err)
	}
	return m, nil
}

// ListMaterials returns materials matching the filter, ordered by category
// then name.
func ListMaterials(ctx context.Context, db *sql.DB, f Filter) ([]model.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE 1=1`
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
		query += ` AND (name LIKE ? OR material_type LIKE ? OR supplier LIKE ?)`
		p := pattern(f.Search)
		args = append(args, p, p, p)
	}
	query += ` ORDER BY category, name, id`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	defer rows.Close()

	var materials []model.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning material: %w", err)
		}
		materials = append(materials, *m)
	}
	return materials, rows.Err()
}

// UpdateMaterial replaces all of a material's fields.
func UpdateMaterial(ctx context.Context, db *sql.DB, id int64, m *model.Material) error {
	if m.Name == "" {
		return fmt.Errorf("material name required")
	}

	result, err := db.ExecContext(ctx,
		`UPDATE materials SET name = ?, category = ?, material_type = ?, quantity = ?,
		        unit = ?, length = ?, width = ?, thickness = ?, dimension_unit = ?,
		        grade = ?, finish = ?, color = ?, cost_per_unit = ?, supplier = ?,
		        min_quantity = ?, location = ?, notes = ?
		 WHERE id = ?`,
		m.Name, m.Category, m.MaterialType, m.Quantity, m.Unit, m.Length, m.Width,
		m.Thickness, m.DimensionUnit, m.Grade, m.Finish, m.Color, m.CostPerUnit,
		m.Supplier, m.MinQuantity, m.Location, m.Notes, id,
	)
	if err != nil {
		return fmt.Errorf("updating material: %w", err)
	}
	return updated(result)
}

// DeleteMaterial removes a material unconditionally.
func DeleteMaterial(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM materials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting material: %w", err)
	}
	return nil
}

func scanMaterial(row scanner) (*model.Material, error) {
	m := &model.Material{}
	var category, materialType, unit, dimensionUnit sql.NullString
	var grade, finish, color, supplier, location, notes, imageMime sql.NullString
	var length, width, thickness, costPerUnit, minQuantity sql.NullFloat64
	err := row.Scan(&m.ID, &m.Name, &category, &materialType, &m.Quantity, &unit,
		&length, &width, &thickness, &dimensionUnit, &grade, &finish, &color,
		&costPerUnit, &supplier, &minQuantity, &location, &notes, &imageMime, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Category = category.String
	m.MaterialType = materialType.String
	m.Unit = unit.String
	m.Length = length.Float64
	m.Width = width.Float64
	m.Thickness = thickness.Float64
	m.DimensionUnit = dimensionUnit.String
	m.Grade = grade.String
	m.Finish = finish.String
	m.Color = color.String
	m.CostPerUnit = costPerUnit.Float64
	m.Supplier = supplier.String
	if minQuantity.Valid {
		m.MinQuantity = &minQuantity.Float64
	}
	m.Location = location.String
	m.Notes = notes.String
	m.ImageMime = imageMime.String
	return m, nil
}
