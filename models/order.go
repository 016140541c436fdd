package models

import "time"

// Order is a frozen snapshot of a cart at placement time. Orders are
// append-only: there is no edit or cancel path, not even for the super
// admin.
type Order struct {
	ID       string     `json:"id"`
	Items    []CartLine `json:"items"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placed_at"`
}
