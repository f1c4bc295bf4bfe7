package model

import (
	"strings"
	"time"
)

// Fastener represents depletable hardware (screws, bolts, nails, anchors).
// Fasteners have no name field: their display identity is derived from
// category and size, see DisplayName.
type Fastener struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Size        string    `json:"size,omitempty"`
	Length      string    `json:"length,omitempty"`
	Material    string    `json:"material,omitempty"`
	HeadType    string    `json:"head_type,omitempty"`
	ThreadType  string    `json:"thread_type,omitempty"`
	Quantity    int64     `json:"quantity"`
	MinQuantity *int64    `json:"min_quantity,omitempty"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName synthesizes a name from category and size, falling back to
// head type when size is empty. This is the single place that rule lives;
// listings, labels, and favorites all go through it.
func (f *Fastener) DisplayName() string {
	parts := []string{f.Category}
	if f.Size != "" {
		parts = append(parts, f.Size)
	} else if f.HeadType != "" {
		parts = append(parts, f.HeadType)
	}
	return strings.Join(parts, " ")
}

// LowStock reports whether the fastener is at or below its minimum.
func (f *Fastener) LowStock() bool {
	return f.MinQuantity != nil && f.Quantity <= *f.MinQuantity
}
