// Package inventory tracks the consumable items owned by a single player.
package inventory

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/zanzibar/internal/catalog"
	"github.com/KirkDiggler/zanzibar/internal/models"
)

var (
	// ErrUnknownItem is returned when an item id is not in the catalog
	ErrUnknownItem = errors.New("unknown item")

	// ErrInsufficientQuantity is returned when a player does not own the item
	ErrInsufficientQuantity = errors.New("insufficient quantity")

	// ErrInvalidQuantity is returned when a non-positive quantity is added
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Inventory tracks item quantities for one player in first-added order.
// It is not safe for concurrent use; the round engine serialises access.
type Inventory struct {
	registry   *catalog.Registry
	quantities map[string]int
	order      []string
}

// New creates an empty inventory validated against the given catalog
func New(registry *catalog.Registry) *Inventory {
	return &Inventory{
		registry:   registry,
		quantities: make(map[string]int),
	}
}

// Add increments the owned quantity of an item, creating the entry if absent
func (i *Inventory) Add(itemID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if _, err := i.registry.Lookup(itemID); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}

	if _, owned := i.quantities[itemID]; !owned {
		i.order = append(i.order, itemID)
	}
	i.quantities[itemID] += quantity
	return nil
}

// RemoveOne decrements the quantity of an item by 1.
// The entry is deleted entirely when the quantity reaches 0, so no
// zero-quantity entries ever persist.
func (i *Inventory) RemoveOne(itemID string) error {
	current, owned := i.quantities[itemID]
	if !owned || current < 1 {
		return fmt.Errorf("%w: %s", ErrInsufficientQuantity, itemID)
	}

	if current == 1 {
		delete(i.quantities, itemID)
		for idx, id := range i.order {
			if id == itemID {
				i.order = append(i.order[:idx], i.order[idx+1:]...)
				break
			}
		}
		return nil
	}

	i.quantities[itemID] = current - 1
	return nil
}

// Quantity returns the owned quantity of an item, 0 when absent
func (i *Inventory) Quantity(itemID string) int {
	return i.quantities[itemID]
}

// Quantities returns a snapshot of (item, quantity) pairs in first-added
// insertion order. Each call re-snapshots the current state.
func (i *Inventory) Quantities() []models.ItemQuantity {
	out := make([]models.ItemQuantity, 0, len(i.order))
	for _, id := range i.order {
		out = append(out, models.ItemQuantity{
			ItemID:   id,
			Quantity: i.quantities[id],
		})
	}
	return out
}
