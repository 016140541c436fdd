// Package cart holds per-session shopping carts and the totals math.
// Carts are ephemeral: they live in memory keyed by session id and are
// destroyed on order placement or explicit clear.
package cart

import (
	"sync"

	"quickbite-api/models"
)

// Registry maps session ids to cart lines. All methods are safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	carts map[string][]models.CartLine
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[string][]models.CartLine)}
}

// Lines returns a copy of the session's cart in insertion order.
func (r *Registry) Lines(sessionID string) []models.CartLine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := r.carts[sessionID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// Add puts qty of the item into the cart. If a regular line for the same
// item id already exists its quantity is incremented; otherwise a new
// line snapshots the item's current attributes. Returns the cart's total
// item count.
func (r *Registry) Add(sessionID string, item models.MenuItem, qty int) int {
	if qty < 1 {
		qty = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[sessionID]
	merged := false
	for i := range lines {
		if !lines[i].AdHoc && lines[i].ItemID == item.ID {
			lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{
			ItemID:         item.ID,
			Name:           item.Name,
			Price:          item.Price,
			Quantity:       qty,
			RestaurantName: item.RestaurantName,
			Image:          item.Image,
			Admin:          item.Admin,
		})
	}
	r.carts[sessionID] = lines

	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

// OrderNow appends an ad-hoc line for the item, carrying the supplied
// restaurant name instead of the item's own. Ad-hoc lines never merge,
// even with a later Add of the same item.
func (r *Registry) OrderNow(sessionID string, item models.MenuItem, restaurantName string, qty int) {
	if qty < 1 {
		qty = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[sessionID] = append(r.carts[sessionID], models.CartLine{
		ItemID:         item.ID,
		Name:           item.Name,
		Price:          item.Price,
		Quantity:       qty,
		RestaurantName: restaurantName,
		Image:          item.Image,
		Admin:          item.Admin,
		AdHoc:          true,
	})
}

// RemoveAt drops the line at the given position. Out-of-range indexes
// are silently ignored.
func (r *Registry) RemoveAt(sessionID string, index int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[sessionID]
	if index < 0 || index >= len(lines) {
		return
	}
	r.carts[sessionID] = append(lines[:index], lines[index+1:]...)
}

// Clear empties the session's cart unconditionally.
func (r *Registry) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

// Count returns the sum of quantities across the session's cart.
func (r *Registry) Count(sessionID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, line := range r.carts[sessionID] {
		count += line.Quantity
	}
	return count
}

// Totals returns the session's lines with per-line totals filled in,
// plus the grand total.
func (r *Registry) Totals(sessionID string) ([]models.CartLine, float64) {
	return ComputeTotals(r.Lines(sessionID))
}

// ComputeTotals sets each line's total to price × quantity and returns
// the lines with the grand total. Pure and idempotent.
func ComputeTotals(lines []models.CartLine) ([]models.CartLine, float64) {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)

	var grand float64
	for i := range out {
		out[i].Total = out[i].Price * float64(out[i].Quantity)
		grand += out[i].Total
	}
	return out, grand
}
