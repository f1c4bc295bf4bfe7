package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/delavnica/internal/model"
)

// distinctColumns whitelists the fields that may be used for distinct-value
// queries, per kind. Field names map to column names so callers can never
// inject arbitrary SQL identifiers.
var distinctColumns = map[model.Kind]map[string]string{
	model.KindTool: {
		"category":  "category",
		"brand":     "brand",
		"condition": "condition",
		"location":  "location",
	},
	model.KindConsumable: {
		"category": "category",
		"unit":     "unit",
		"location": "location",
	},
	model.KindMaterial: {
		"category":      "category",
		"material_type": "material_type",
		"supplier":      "supplier",
		"location":      "location",
	},
	model.KindFastener: {
		"category":  "category",
		"size":      "size",
		"material":  "material",
		"head_type": "head_type",
		"location":  "location",
	},
}

// DistinctValues returns the sorted distinct non-empty values of a field for
// one kind. Used to populate filter dropdowns.
func DistinctValues(ctx context.Context, db *sql.DB, kind model.Kind, field string) ([]string, error) {
	col, ok := distinctColumns[kind][field]
	if !ok {
		return nil, fmt.Errorf("no distinct values for %s field %q", kind, field)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(
		`SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL AND %s != '' ORDER BY %s`,
		col, kind.Slug(), col, col, col,
	))
	if err != nil {
		return nil, fmt.Errorf("listing distinct %s values: %w", field, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning distinct value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
