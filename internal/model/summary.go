package model

import "time"

// Summary is the narrow display projection shared by favorites, identity
// token resolution, and label batches. Cross-cutting code operates on this,
// never on the full per-kind records.
type Summary struct {
	Kind     Kind   `json:"kind"`
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Location string `json:"location,omitempty"`
}

// Ref returns the (kind, id) pair for the summarized item.
func (s *Summary) Ref() Ref {
	return Ref{Kind: s.Kind, ID: s.ID}
}

// Favorite is a favorited item hydrated with its summary.
type Favorite struct {
	Summary
	FavoritedAt time.Time `json:"favorited_at"`
}
