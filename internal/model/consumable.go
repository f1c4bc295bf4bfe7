package model

import "time"

// Consumable represents a depletable supply (blades, bits, glue, sandpaper).
// MinQuantity is nil when the item is not tracked for depletion; such items
// are never reported as low-stock.
type Consumable struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category,omitempty"`
	Quantity       int64     `json:"quantity"`
	Unit           string    `json:"unit,omitempty"`
	MinQuantity    *int64    `json:"min_quantity,omitempty"`
	Location       string    `json:"location,omitempty"`
	CompatibleWith string    `json:"compatible_with,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	PurchaseURL    string    `json:"purchase_url,omitempty"`
	ImageMime      string    `json:"image_mime,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// LowStock reports whether the consumable is at or below its minimum.
func (c *Consumable) LowStock() bool {
	return c.MinQuantity != nil && c.Quantity <= *c.MinQuantity
}
