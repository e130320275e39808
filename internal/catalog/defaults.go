package catalog

import (
	"github.com/KirkDiggler/zanzibar/internal/models"
)

// Default builds the registry with the built-in item set
func Default() *Registry {
	r := NewRegistry()

	defaults := []*models.Item{
		{
			ID:          "pizza_slice",
			Name:        "Pizza Slice",
			Type:        models.ItemTypeFood,
			Description: "A tasty slice of pizza. Boosts energy significantly!",
			EnergyValue: 50,
			Effects:     []models.EffectKind{models.EffectEnergyBoost},
			Duration:    3,
			Cost:        1,
		},
		{
			ID:          "lucky_cookie",
			Name:        "Lucky Cookie",
			Type:        models.ItemTypeFood,
			Description: "A fortune cookie that might bring you luck!",
			EnergyValue: 20,
			Effects:     []models.EffectKind{models.EffectLuckBoost},
			Duration:    2,
			Cost:        1,
		},
		{
			ID:          "brain_snack",
			Name:        "Brain Snack",
			Type:        models.ItemTypeFood,
			Description: "A healthy snack that helps you focus.",
			EnergyValue: 30,
			Effects:     []models.EffectKind{models.EffectFocusBoost},
			Duration:    2,
			Cost:        120,
		},
		{
			ID:          "energy_drink",
			Name:        "Energy Drink",
			Type:        models.ItemTypeDrink,
			Description: "A fizzy drink that boosts your energy!",
			EnergyValue: 40,
			Effects:     []models.EffectKind{models.EffectEnergyBoost, models.EffectFocusBoost},
			Duration:    2,
			Cost:        80,
		},
		{
			ID:          "happy_juice",
			Name:        "Happy Juice",
			Type:        models.ItemTypeDrink,
			Description: "A fruity drink that puts you in a good mood!",
			EnergyValue: 25,
			Effects:     []models.EffectKind{models.EffectMoodBoost},
			Duration:    3,
			Cost:        90,
		},
		{
			ID:          "focus_tea",
			Name:        "Focus Tea",
			Type:        models.ItemTypeDrink,
			Description: "A special tea that helps you concentrate.",
			EnergyValue: 15,
			Effects:     []models.EffectKind{models.EffectFocusBoost},
			Duration:    4,
			Cost:        70,
		},
	}

	for _, item := range defaults {
		// The built-in set is known valid
		_ = r.Add(item)
	}

	return r
}
