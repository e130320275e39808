package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/zanzibar/internal/services/game Service

import "context"

// Service defines the interface for round engine operations
type Service interface {
	// StartGame creates a new match for the given players
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// CurrentPlayer returns the identity of the acting player
	CurrentPlayer(ctx context.Context, input *CurrentPlayerInput) (*CurrentPlayerOutput, error)

	// Roll resolves a dice roll for the acting player
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// Purchase buys an item from the shop for the acting player
	Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error)

	// UseItem consumes an owned item and applies its effects
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)

	// EndTurn advances the match to the next player
	EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error)

	// SwitchActivePlayer rotates the menu-focused player without
	// consuming a turn
	SwitchActivePlayer(ctx context.Context, input *SwitchActivePlayerInput) (*SwitchActivePlayerOutput, error)

	// Snapshot returns a read-only view of the match for rendering
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)

	// Leaderboard returns the all-time wins leaderboard
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)
}
