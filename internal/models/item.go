package models

// ItemType represents the category of a consumable item
type ItemType string

const (
	// ItemTypeFood indicates a food item
	ItemTypeFood ItemType = "food"

	// ItemTypeDrink indicates a drink item
	ItemTypeDrink ItemType = "drink"
)

// EffectKind represents a category of temporary status modifier
type EffectKind string

const (
	// EffectEnergyBoost restores the player's energy resource
	EffectEnergyBoost EffectKind = "energy_boost"

	// EffectLuckBoost gives a chance of upgrading a roll to a Zanzibar
	EffectLuckBoost EffectKind = "luck_boost"

	// EffectFocusBoost prevents very low die faces
	EffectFocusBoost EffectKind = "focus_boost"

	// EffectMoodBoost is cosmetic; surfaced to presentation only
	EffectMoodBoost EffectKind = "mood_boost"
)

// Item is an immutable catalog entry for a purchasable consumable
type Item struct {
	// ID is the unique identifier for the item
	ID string

	// Name is the display name of the item
	Name string

	// Type is the category of the item (food or drink)
	Type ItemType

	// Description is the flavor text shown in the shop
	Description string

	// EnergyValue is how much energy the item restores on use
	EnergyValue int

	// Effects are the effect kinds applied when the item is used
	Effects []EffectKind

	// Duration is how many turns the item's effects last
	Duration int

	// Cost is the purchase cost in chips
	Cost int
}
