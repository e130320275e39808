package history

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/zanzibar/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 11, 2, 20, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newResult(id, winner string, finished time.Time) *models.MatchResult {
	return &models.MatchResult{
		ID:         id,
		GameID:     "game-" + id,
		ChannelID:  "channel-1",
		WinnerID:   "player-" + winner,
		WinnerName: winner,
		Rounds:     5,
		Standings: []models.PlayerStanding{
			{PlayerID: "player-" + winner, PlayerName: winner, Chips: 0},
			{PlayerID: "player-bob", PlayerName: "Bob", Chips: 140},
		},
		FinishedAt: finished,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetResult() {
	result := s.newResult("result-1", "Alice", s.testNow)

	err := s.repo.SaveResult(context.Background(), &SaveResultInput{
		Result: result,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetResult(context.Background(), &GetResultInput{
		ResultID: "result-1",
	})
	s.Require().NoError(err)

	s.Equal(result.ID, retrieved.ID)
	s.Equal(result.WinnerName, retrieved.WinnerName)
	s.Equal(result.Rounds, retrieved.Rounds)
	s.Len(retrieved.Standings, 2)
	s.Equal(0, retrieved.Standings[0].Chips)
	s.True(result.FinishedAt.Equal(retrieved.FinishedAt))
}

func (s *RedisRepositoryTestSuite) TestGetResultNotFound() {
	_, err := s.repo.GetResult(context.Background(), &GetResultInput{
		ResultID: "nope",
	})
	s.ErrorIs(err, ErrResultNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveResultValidation() {
	s.Error(s.repo.SaveResult(context.Background(), nil))
	s.Error(s.repo.SaveResult(context.Background(), &SaveResultInput{}))
	s.Error(s.repo.SaveResult(context.Background(), &SaveResultInput{
		Result: &models.MatchResult{},
	}))
}

func (s *RedisRepositoryTestSuite) TestGetRecentResultsOrdering() {
	ctx := context.Background()
	for i, id := range []string{"result-1", "result-2", "result-3"} {
		err := s.repo.SaveResult(ctx, &SaveResultInput{
			Result: s.newResult(id, "Alice", s.testNow.Add(time.Duration(i)*time.Minute)),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetRecentResults(ctx, &GetRecentResultsInput{Limit: 2})
	s.Require().NoError(err)

	// Most recent first, limited to 2
	s.Require().Len(out.Results, 2)
	s.Equal("result-3", out.Results[0].ID)
	s.Equal("result-2", out.Results[1].ID)
}

func (s *RedisRepositoryTestSuite) TestGetLeaderboardCountsWins() {
	ctx := context.Background()
	wins := []struct {
		id     string
		winner string
	}{
		{"result-1", "Alice"},
		{"result-2", "Bob"},
		{"result-3", "Alice"},
	}
	for i, w := range wins {
		err := s.repo.SaveResult(ctx, &SaveResultInput{
			Result: s.newResult(w.id, w.winner, s.testNow.Add(time.Duration(i)*time.Minute)),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetLeaderboard(ctx, &GetLeaderboardInput{Limit: 10})
	s.Require().NoError(err)

	s.Require().Len(out.Entries, 2)
	s.Equal(LeaderboardEntry{PlayerName: "Alice", Wins: 2}, out.Entries[0])
	s.Equal(LeaderboardEntry{PlayerName: "Bob", Wins: 1}, out.Entries[1])
}

func (s *RedisRepositoryTestSuite) TestGetLeaderboardEmpty() {
	out, err := s.repo.GetLeaderboard(context.Background(), nil)
	s.Require().NoError(err)
	s.Empty(out.Entries)
}
