// Package orders is the append-only order ledger. Placing an order is
// the only write path; nothing edits or deletes a placed order.
package orders

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"quickbite-api/cart"
	"quickbite-api/models"
	"quickbite-api/store"
)

// ErrEmptyCart rejects placement of an order with no lines.
var ErrEmptyCart = errors.New("cart is empty")

type Ledger struct {
	col *store.Collection[models.Order]
}

func NewLedger(col *store.Collection[models.Order]) *Ledger {
	return &Ledger{col: col}
}

// Place freezes the given cart lines into a new order and appends it to
// the ledger. The caller clears the session cart on success.
func (l *Ledger) Place(lines []models.CartLine) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	items, total := cart.ComputeTotals(lines)
	order := models.Order{
		ID:       uuid.NewString(),
		Items:    items,
		Total:    total,
		PlacedAt: time.Now().UTC(),
	}
	err := l.col.Update(func(orders []models.Order) ([]models.Order, error) {
		return append(orders, order), nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// List returns every placed order, oldest first.
func (l *Ledger) List() ([]models.Order, error) {
	return l.col.Load()
}
