package model

import "time"

// Material represents depletable raw stock (timber, sheet goods, metal bar).
// Quantity is fractional since materials are often measured in meters or
// square meters rather than counted.
type Material struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	MaterialType  string    `json:"material_type,omitempty"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit,omitempty"`
	Length        float64   `json:"length,omitempty"`
	Width         float64   `json:"width,omitempty"`
	Thickness     float64   `json:"thickness,omitempty"`
	DimensionUnit string    `json:"dimension_unit,omitempty"`
	Grade         string    `json:"grade,omitempty"`
	Finish        string    `json:"finish,omitempty"`
	Color         string    `json:"color,omitempty"`
	CostPerUnit   float64   `json:"cost_per_unit,omitempty"`
	Supplier      string    `json:"supplier,omitempty"`
	MinQuantity   *float64  `json:"min_quantity,omitempty"`
	Location      string    `json:"location,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	ImageMime     string    `json:"image_mime,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// LowStock reports whether the material is at or below its minimum.
func (m *Material) LowStock() bool {
	return m.MinQuantity != nil && m.Quantity <= *m.MinQuantity
}
