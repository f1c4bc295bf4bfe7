package model

import "time"

// Tool represents an owned (non-depletable) workshop tool.
type Tool struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	Model         string    `json:"model,omitempty"`
	PurchaseDate  string    `json:"purchase_date,omitempty"`
	PurchasePrice float64   `json:"purchase_price,omitempty"`
	Condition     string    `json:"condition,omitempty"`
	Location      string    `json:"location,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	PurchaseURL   string    `json:"purchase_url,omitempty"`
	ManualURL     string    `json:"manual_url,omitempty"`
	ImageMime     string    `json:"image_mime,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Tool conditions.
const (
	ConditionNew  = "New"
	ConditionGood = "Good"
	ConditionFair = "Fair"
	ConditionPoor = "Poor"
)
