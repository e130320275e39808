// Package catalog holds the static registry of purchasable consumables.
// A Registry is built once at startup and read-only afterwards, which makes
// it safe for unsynchronised concurrent reads.
package catalog

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/zanzibar/internal/models"
)

// ErrItemNotFound is returned when an item id is not in the registry
var ErrItemNotFound = errors.New("item not found")

// Registry is the catalog of all purchasable items
type Registry struct {
	items map[string]*models.Item
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]*models.Item),
	}
}

// Add registers an item. It fails on invalid items and duplicate ids.
func (r *Registry) Add(item *models.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("duplicate item id %q", item.ID)
	}

	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return nil
}

// Lookup retrieves an item by id
func (r *Registry) Lookup(itemID string) (*models.Item, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	return item, nil
}

// Items returns all registered items in registration order
func (r *Registry) Items() []*models.Item {
	out := make([]*models.Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// ItemsByType returns all items of the given type in registration order
func (r *Registry) ItemsByType(itemType models.ItemType) []*models.Item {
	var out []*models.Item
	for _, id := range r.order {
		if r.items[id].Type == itemType {
			out = append(out, r.items[id])
		}
	}
	return out
}

func validateItem(item *models.Item) error {
	if item == nil {
		return errors.New("item cannot be nil")
	}
	if item.ID == "" {
		return errors.New("item id cannot be empty")
	}
	if item.Name == "" {
		return fmt.Errorf("item %q: name cannot be empty", item.ID)
	}
	if item.Type != models.ItemTypeFood && item.Type != models.ItemTypeDrink {
		return fmt.Errorf("item %q: unknown type %q", item.ID, item.Type)
	}
	if len(item.Effects) == 0 {
		return fmt.Errorf("item %q: at least one effect is required", item.ID)
	}
	for _, effect := range item.Effects {
		switch effect {
		case models.EffectEnergyBoost, models.EffectLuckBoost, models.EffectFocusBoost, models.EffectMoodBoost:
		default:
			return fmt.Errorf("item %q: unknown effect %q", item.ID, effect)
		}
	}
	if item.Duration < 1 {
		return fmt.Errorf("item %q: duration must be at least 1 turn", item.ID)
	}
	if item.Cost < 0 {
		return fmt.Errorf("item %q: cost cannot be negative", item.ID)
	}
	if item.EnergyValue < 0 {
		return fmt.Errorf("item %q: energy value cannot be negative", item.ID)
	}
	return nil
}
