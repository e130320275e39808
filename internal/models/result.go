package models

import (
	"time"
)

// PlayerStanding is one player's final position in a finished match
type PlayerStanding struct {
	// PlayerID is the unique identifier for the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Chips is the player's final chip balance
	Chips int
}

// MatchResult records the outcome of a completed match
type MatchResult struct {
	// ID is the unique identifier for the result record
	ID string

	// GameID is the ID of the match this result belongs to
	GameID string

	// ChannelID is the presentation-layer binding of the match, if any
	ChannelID string

	// WinnerID is the ID of the winning player
	WinnerID string

	// WinnerName is the display name of the winning player
	WinnerName string

	// Rounds is how many rounds the match lasted
	Rounds int

	// Standings are the final balances sorted by proximity to the threshold
	Standings []PlayerStanding

	// FinishedAt is when the match ended
	FinishedAt time.Time
}
