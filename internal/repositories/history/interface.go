package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/zanzibar/internal/repositories/history Repository

import (
	"context"

	"github.com/KirkDiggler/zanzibar/internal/models"
)

// Repository defines the interface for match history persistence
type Repository interface {
	// SaveResult persists a completed match result
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves a match result by ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.MatchResult, error)

	// GetRecentResults retrieves the most recently finished matches
	GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error)

	// GetLeaderboard retrieves the all-time wins leaderboard
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
