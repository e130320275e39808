package history

import "github.com/KirkDiggler/zanzibar/internal/models"

type SaveResultInput struct {
	Result *models.MatchResult
}

type GetResultInput struct {
	ResultID string
}

type GetRecentResultsInput struct {
	// Maximum number of results to return
	Limit int
}

type GetRecentResultsOutput struct {
	Results []*models.MatchResult
}

type GetLeaderboardInput struct {
	// Maximum number of entries to return
	Limit int
}

// LeaderboardEntry is one row of the all-time wins leaderboard
type LeaderboardEntry struct {
	PlayerName string
	Wins       int
}

type GetLeaderboardOutput struct {
	Entries []LeaderboardEntry
}
