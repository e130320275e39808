package models

import (
	"time"
)

// GameStatus represents the current state of a match
type GameStatus string

const (
	// GameStatusAwaitingRoll indicates the acting player may roll
	GameStatusAwaitingRoll GameStatus = "awaiting_roll"

	// GameStatusAwaitingAction indicates the post-roll shop/inventory window
	GameStatusAwaitingAction GameStatus = "awaiting_action"

	// GameStatusGameOver indicates the match has finished
	GameStatusGameOver GameStatus = "game_over"
)

// Game holds the round state of one match
type Game struct {
	// ID is the unique identifier for the match
	ID string

	// ChannelID is an optional presentation-layer binding (e.g. a Discord channel)
	ChannelID string

	// Status is the current state of the match
	Status GameStatus

	// CurrentTurn is the index of the acting player in turn order
	CurrentTurn int

	// Round is the current round counter, starting at 1
	Round int

	// WinnerID is the ID of the winning player; empty until game over
	WinnerID string

	// CreatedAt is when the match was created
	CreatedAt time.Time

	// UpdatedAt is when the match was last updated
	UpdatedAt time.Time
}
