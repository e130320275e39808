package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zanzibar/internal/catalog"
	"github.com/KirkDiggler/zanzibar/internal/models"
)

func newTestInventory(t *testing.T) *Inventory {
	t.Helper()
	return New(catalog.Default())
}

func TestAddCreatesAndIncrements(t *testing.T) {
	inv := newTestInventory(t)

	require.NoError(t, inv.Add("pizza_slice", 2))
	require.NoError(t, inv.Add("pizza_slice", 1))

	assert.Equal(t, 3, inv.Quantity("pizza_slice"))
}

func TestAddRejectsUnknownItem(t *testing.T) {
	inv := newTestInventory(t)

	err := inv.Add("mystery_meat", 1)
	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Empty(t, inv.Quantities())
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	inv := newTestInventory(t)

	assert.ErrorIs(t, inv.Add("pizza_slice", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, inv.Add("pizza_slice", -1), ErrInvalidQuantity)
}

func TestRemoveOneDecrements(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.Add("focus_tea", 2))

	require.NoError(t, inv.RemoveOne("focus_tea"))

	assert.Equal(t, 1, inv.Quantity("focus_tea"))
}

func TestRemoveOneDeletesEntryAtZero(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.Add("focus_tea", 1))

	require.NoError(t, inv.RemoveOne("focus_tea"))

	assert.Equal(t, 0, inv.Quantity("focus_tea"))
	// No zero-quantity entries persist
	assert.Empty(t, inv.Quantities())
}

func TestRemoveOneFailsWhenAbsent(t *testing.T) {
	inv := newTestInventory(t)

	assert.ErrorIs(t, inv.RemoveOne("focus_tea"), ErrInsufficientQuantity)

	require.NoError(t, inv.Add("focus_tea", 1))
	require.NoError(t, inv.RemoveOne("focus_tea"))
	assert.ErrorIs(t, inv.RemoveOne("focus_tea"), ErrInsufficientQuantity)
}

func TestQuantitiesPreserveInsertionOrder(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.Add("focus_tea", 1))
	require.NoError(t, inv.Add("pizza_slice", 2))
	require.NoError(t, inv.Add("lucky_cookie", 1))
	// Re-adding an existing item must not move it
	require.NoError(t, inv.Add("focus_tea", 1))

	assert.Equal(t, []models.ItemQuantity{
		{ItemID: "focus_tea", Quantity: 2},
		{ItemID: "pizza_slice", Quantity: 2},
		{ItemID: "lucky_cookie", Quantity: 1},
	}, inv.Quantities())
}

func TestQuantitiesIsRestartableSnapshot(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.Add("pizza_slice", 1))

	first := inv.Quantities()
	second := inv.Quantities()
	assert.Equal(t, first, second)

	// Mutating a snapshot does not affect the inventory
	first[0].Quantity = 99
	assert.Equal(t, 1, inv.Quantity("pizza_slice"))
}
