package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/delavnica/internal/model"
)

// Low-stock queries are recomputed on every call; there is no cached status
// to go stale. An item with a NULL min_quantity is never reported, that is
// how "not tracked for depletion" is expressed.

// LowStockConsumables returns consumables at or below their minimum,
// ascending by quantity. A limit <= 0 means unbounded.
func LowStockConsumables(ctx context.Context, db *sql.DB, limit int) ([]model.Consumable, error) {
	query := `SELECT ` + consumableColumns + ` FROM consumables
		 WHERE min_quantity IS NOT NULL AND quantity <= min_quantity
		 ORDER BY quantity, id`
	rows, err := db.QueryContext(ctx, query+limitClause(limit))
	if err != nil {
		return nil, fmt.Errorf("listing low-stock consumables: %w", err)
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

// LowStockMaterials returns materials at or below their minimum, ascending
// by quantity. A limit <= 0 means unbounded.
func LowStockMaterials(ctx context.Context, db *sql.DB, limit int) ([]model.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials
		 WHERE min_quantity IS NOT NULL AND quantity <= min_quantity
		 ORDER BY quantity, id`
	rows, err := db.QueryContext(ctx, query+limitClause(limit))
	if err != nil {
		return nil, fmt.Errorf("listing low-stock materials: %w", err)
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

// LowStockFasteners returns fasteners at or below their minimum, ascending
// by quantity. A limit <= 0 means unbounded.
func LowStockFasteners(ctx context.Context, db *sql.DB, limit int) ([]model.Fastener, error) {
	query := `SELECT ` + fastenerColumns + ` FROM fasteners
		 WHERE min_quantity IS NOT NULL AND quantity <= min_quantity
		 ORDER BY quantity, id`
	rows, err := db.QueryContext(ctx, query+limitClause(limit))
	if err != nil {
		return nil, fmt.Errorf("listing low-stock fasteners: %w", err)
	}
	defer rows.Close()

	var fasteners []model.Fastener
	for rows.Next() {
		f, err := scanFastener(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fastener: %w", err)
		}
		fasteners = append(fasteners, *f)
	}
	return fasteners, rows.Err()
}

// Counts holds the per-kind item totals for the dashboard.
type Counts struct {
	Tools       int `json:"tools"`
	Consumables int `json:"consumables"`
	Materials   int `json:"materials"`
	Fasteners   int `json:"fasteners"`
}

// CountItems returns the number of items per kind.
func CountItems(ctx context.Context, db *sql.DB) (*Counts, error) {
	c := &Counts{}
	for _, q := range []struct {
		table string
		dest  *int
	}{
		{"tools", &c.Tools},
		{"consumables", &c.Consumables},
		{"materials", &c.Materials},
		{"fasteners", &c.Fasteners},
	} {
		err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+q.table).Scan(q.dest)
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", q.table, err)
		}
	}
	return c, nil
}

func limitClause(limit int) string {
	if limit > 0 {
		return fmt.Sprintf(" LIMIT %d", limit)
	}
	return ""
}
