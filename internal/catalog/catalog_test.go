package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zanzibar/internal/models"
)

func TestDefaultRegistryContents(t *testing.T) {
	r := Default()

	items := r.Items()
	assert.Len(t, items, 6)

	// Registration order is preserved
	assert.Equal(t, "pizza_slice", items[0].ID)
	assert.Equal(t, "focus_tea", items[5].ID)

	pizza, err := r.Lookup("pizza_slice")
	require.NoError(t, err)
	assert.Equal(t, "Pizza Slice", pizza.Name)
	assert.Equal(t, models.ItemTypeFood, pizza.Type)
	assert.Equal(t, 50, pizza.EnergyValue)
	assert.Equal(t, []models.EffectKind{models.EffectEnergyBoost}, pizza.Effects)
	assert.Equal(t, 3, pizza.Duration)
	assert.Equal(t, 1, pizza.Cost)

	drink, err := r.Lookup("energy_drink")
	require.NoError(t, err)
	assert.Equal(t, []models.EffectKind{models.EffectEnergyBoost, models.EffectFocusBoost}, drink.Effects)
}

func TestLookupUnknownItem(t *testing.T) {
	r := Default()

	_, err := r.Lookup("mystery_meat")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemsByType(t *testing.T) {
	r := Default()

	foods := r.ItemsByType(models.ItemTypeFood)
	drinks := r.ItemsByType(models.ItemTypeDrink)

	assert.Len(t, foods, 3)
	assert.Len(t, drinks, 3)
	for _, item := range foods {
		assert.Equal(t, models.ItemTypeFood, item.Type)
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	item := &models.Item{
		ID:       "focus_tea",
		Name:     "Focus Tea",
		Type:     models.ItemTypeDrink,
		Effects:  []models.EffectKind{models.EffectFocusBoost},
		Duration: 4,
	}

	require.NoError(t, r.Add(item))
	assert.Error(t, r.Add(item))
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name string
		item *models.Item
	}{
		{name: "nil item", item: nil},
		{name: "missing id", item: &models.Item{Name: "X", Type: models.ItemTypeFood, Effects: []models.EffectKind{models.EffectLuckBoost}, Duration: 1}},
		{name: "missing name", item: &models.Item{ID: "x", Type: models.ItemTypeFood, Effects: []models.EffectKind{models.EffectLuckBoost}, Duration: 1}},
		{name: "unknown type", item: &models.Item{ID: "x", Name: "X", Type: "dessert", Effects: []models.EffectKind{models.EffectLuckBoost}, Duration: 1}},
		{name: "no effects", item: &models.Item{ID: "x", Name: "X", Type: models.ItemTypeFood, Duration: 1}},
		{name: "unknown effect", item: &models.Item{ID: "x", Name: "X", Type: models.ItemTypeFood, Effects: []models.EffectKind{"time_warp"}, Duration: 1}},
		{name: "zero duration", item: &models.Item{ID: "x", Name: "X", Type: models.ItemTypeFood, Effects: []models.EffectKind{models.EffectLuckBoost}}},
		{name: "negative cost", item: &models.Item{ID: "x", Name: "X", Type: models.ItemTypeFood, Effects: []models.EffectKind{models.EffectLuckBoost}, Duration: 1, Cost: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			assert.Error(t, r.Add(tt.item))
		})
	}
}

func TestLoadItemList(t *testing.T) {
	data := []byte(`
items:
  - id: pizza_slice
    name: Pizza Slice
    type: food
    description: A tasty slice of pizza.
    energy: 50
    effects: [energy_boost]
    duration: 3
    cost: 1
  - id: focus_tea
    name: Focus Tea
    type: drink
    energy: 15
    effects: [focus_boost]
    duration: 4
    cost: 70
`)

	r, err := Load(data)
	require.NoError(t, err)

	assert.Len(t, r.Items(), 2)

	tea, err := r.Lookup("focus_tea")
	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeDrink, tea.Type)
	assert.Equal(t, []models.EffectKind{models.EffectFocusBoost}, tea.Effects)
	assert.Equal(t, 70, tea.Cost)
}

func TestLoadRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "{{{"},
		{name: "empty list", data: "items: []"},
		{name: "unknown effect", data: "items:\n  - {id: x, name: X, type: food, effects: [time_warp], duration: 1}"},
		{name: "duplicate id", data: "items:\n  - {id: x, name: X, type: food, effects: [luck_boost], duration: 1}\n  - {id: x, name: X, type: food, effects: [luck_boost], duration: 1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
