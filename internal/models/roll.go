package models

// HandCategory represents the classification of a three-die roll
type HandCategory string

const (
	// HandZanzibar is the privileged 4-5-6 combination, the highest rank
	HandZanzibar HandCategory = "zanzibar"

	// HandThreeOfAKind is three matching faces
	HandThreeOfAKind HandCategory = "three_of_a_kind"

	// HandLowRun is the 1-2-3 run
	HandLowRun HandCategory = "low_run"

	// HandPoints is any other combination, scored on face value only
	HandPoints HandCategory = "points"
)

// RollOutcome is the fully resolved result of a single roll
type RollOutcome struct {
	// RawFaces are the faces as drawn, before any effect modifiers
	RawFaces []int

	// Faces are the faces after effect modifiers were applied
	Faces []int

	// Category is the hand classification of Faces
	Category HandCategory

	// ChipDelta is the signed chip change for the roller.
	// Negative moves the player toward the win threshold.
	ChipDelta int

	// LuckApplied indicates the luck boost replaced the roll with a Zanzibar
	LuckApplied bool

	// FocusApplied indicates the focus boost raised at least one face
	FocusApplied bool
}
