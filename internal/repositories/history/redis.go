package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/zanzibar/internal/models"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix  = "result:"
	recentResultsKey = "results:recent"
	winsKey          = "leaderboard:wins"

	defaultLimit = 10
)

// ErrResultNotFound is returned when a match result is not found
var ErrResultNotFound = errors.New("match result not found")

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveResult persists a completed match result to Redis
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	if input.Result.ID == "" {
		return errors.New("result ID cannot be empty")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := r.client.Pipeline()

	// Save the result payload
	resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, input.Result.ID)
	pipe.Set(ctx, resultKey, resultJSON, 0)

	// Index by recency
	pipe.ZAdd(ctx, recentResultsKey, redis.Z{
		Score:  float64(input.Result.FinishedAt.UnixNano()),
		Member: input.Result.ID,
	})

	// Bump the winner on the all-time wins leaderboard
	if input.Result.WinnerName != "" {
		pipe.ZIncrBy(ctx, winsKey, 1, input.Result.WinnerName)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// GetResult retrieves a match result by ID from Redis
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.MatchResult, error) {
	if input == nil || input.ResultID == "" {
		return nil, errors.New("input and result ID cannot be empty")
	}

	resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, input.ResultID)
	resultJSON, err := r.client.Get(ctx, resultKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result models.MatchResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// GetRecentResults retrieves the most recently finished matches
func (r *redisRepository) GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error) {
	limit := defaultLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	ids, err := r.client.ZRevRange(ctx, recentResultsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent result IDs: %w", err)
	}

	results := make([]*models.MatchResult, 0, len(ids))
	for _, id := range ids {
		result, err := r.GetResult(ctx, &GetResultInput{ResultID: id})
		if err != nil {
			// A dangling index entry is skipped rather than failing the listing
			if errors.Is(err, ErrResultNotFound) {
				continue
			}
			return nil, err
		}
		results = append(results, result)
	}

	return &GetRecentResultsOutput{
		Results: results,
	}, nil
}

// GetLeaderboard retrieves the all-time wins leaderboard
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := defaultLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	rows, err := r.client.ZRevRangeWithScores(ctx, winsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		name, _ := row.Member.(string)
		entries = append(entries, LeaderboardEntry{
			PlayerName: name,
			Wins:       int(row.Score),
		})
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}
