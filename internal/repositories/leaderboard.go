package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// LeaderboardRepository caches per-game scores in a Redis sorted set. The
// Postgres players table stays authoritative; this projection only serves
// fast top-N reads.
type LeaderboardRepository struct {
	client *redis.Client
}

// NewLeaderboardRepository creates a new repository instance.
func NewLeaderboardRepository(client *redis.Client) *LeaderboardRepository {
	return &LeaderboardRepository{client: client}
}

func leaderboardKey(gameID uuid.UUID) string {
	return fmt.Sprintf("game_leaderboard:%s", gameID)
}

// IncrementScore adds points to a player's cached score and returns the new value.
func (r *LeaderboardRepository) IncrementScore(ctx context.Context, gameID, userID uuid.UUID, points int) (int, error) {
	key := leaderboardKey(gameID)
	score, err := r.client.ZIncrBy(ctx, key, float64(points), userID.String()).Result()

	logger.Log.Infow(
		"key", key,
		"member", userID,
		"points", points,
		"result", score,
		"error", err,
	)

	return int(score), err
}

// Top returns the n highest-scored players of a game with 1-based ranks.
func (r *LeaderboardRepository) Top(ctx context.Context, gameID uuid.UUID, n int) ([]models.LeaderboardEntry, error) {
	key := leaderboardKey(gameID)
	members, err := r.client.ZRevRangeWithScores(ctx, key, 0, int64(n)-1).Result()

	logger.Log.Infow(
		"key", key,
		"n", n,
		"result", len(members),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(members))
	for i, m := range members {
		member, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			UserID: member,
			Score:  int(m.Score),
			Rank:   i + 1,
		})
	}

	return entries, nil
}

// RemovePlayer drops a player from the cached leaderboard.
func (r *LeaderboardRepository) RemovePlayer(ctx context.Context, gameID, userID uuid.UUID) error {
	key := leaderboardKey(gameID)
	err := r.client.ZRem(ctx, key, userID.String()).Err()

	logger.Log.Infow(
		"key", key,
		"member", userID,
		"error", err,
	)

	return err
}
