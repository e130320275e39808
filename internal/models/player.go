package models

// Player represents a participant in a match
type Player struct {
	// ID is the unique identifier for the player within the match
	ID string

	// Name is the display name of the player
	Name string

	// Chips is the player's chip balance. The economy is inverted:
	// lower is better and reaching 0 wins the game.
	Chips int

	// Energy is a bounded resource in the range 0..100
	Energy int
}

// ActiveEffect is a read-only view of one active effect instance
type ActiveEffect struct {
	// Kind is the effect kind
	Kind EffectKind

	// Magnitude is the strength of the effect
	Magnitude int

	// TurnsRemaining is how many round boundaries the effect survives
	TurnsRemaining int
}

// ItemQuantity is one (item, quantity) pair in an inventory view
type ItemQuantity struct {
	// ItemID is the catalog id of the item
	ItemID string

	// Quantity is how many the player owns
	Quantity int
}
