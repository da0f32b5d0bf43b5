package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/leetguide/backend/internal/cache"
	"github.com/leetguide/backend/internal/logger"
	"github.com/leetguide/backend/internal/models"
	"github.com/leetguide/backend/internal/repository"
)

type statsService struct {
	userRepo repository.UserRepository
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

// NewStatsService creates a new stats service. The cache may be a noop;
// ttl controls how long composite records are kept.
func NewStatsService(userRepo repository.UserRepository, c cache.Cache, ttl time.Duration) StatsService {
	return &statsService{
		userRepo: userRepo,
		cache:    c,
		cacheTTL: ttl,
		now:      time.Now,
	}
}

func (s *statsService) GetUserStats(ctx context.Context, username string) (*models.UserStats, error) {
	log := logger.Ctx(ctx)
	cacheKey := "leetguide:user:" + username

	var cached models.UserStats
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Warn("cache read failed", logger.Err(err))
	}

	payload, err := s.userRepo.GetUserPayload(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		// Unreachable upstream degrades to deterministic demo data so
		// the dashboard keeps rendering.
		log.Warn("leetcode fetch failed, serving demo data", logger.Err(err))
		return FallbackUserStats(username, s.now()), nil
	}

	stats, err := ComputeUserProfile(payload, s.now())
	if err != nil {
		log.Warn("profile aggregation failed, serving demo data", logger.Err(err))
		return FallbackUserStats(username, s.now()), nil
	}

	if err := s.cache.Set(ctx, cacheKey, stats, s.cacheTTL); err != nil {
		log.Warn("cache write failed", logger.Err(err))
	}

	return stats, nil
}

func (s *statsService) CompareUsers(ctx context.Context, user1, user2 string) (*models.ComparisonData, error) {
	type result struct {
		stats *models.UserStats
		err   error
	}

	// The two lookups are independent; fetch them concurrently.
	ch1 := make(chan result, 1)
	ch2 := make(chan result, 1)
	go func() {
		stats, err := s.GetUserStats(ctx, user1)
		ch1 <- result{stats, err}
	}()
	go func() {
		stats, err := s.GetUserStats(ctx, user2)
		ch2 <- result{stats, err}
	}()

	res1, res2 := <-ch1, <-ch2
	if res1.err != nil {
		return nil, fmt.Errorf("failed to get stats for %s: %w", user1, res1.err)
	}
	if res2.err != nil {
		return nil, fmt.Errorf("failed to get stats for %s: %w", user2, res2.err)
	}

	return &models.ComparisonData{
		User1: res1.stats,
		User2: res2.stats,
		Comparison: models.Comparison{
			TotalSolvedDiff:    res1.stats.TotalSolved - res2.stats.TotalSolved,
			AcceptanceRateDiff: parseRate(res1.stats.AcceptanceRate) - parseRate(res2.stats.AcceptanceRate),
			// Inverted on purpose: a lower ranking number is better.
			RankingDiff: res2.stats.Ranking - res1.stats.Ranking,
		},
	}, nil
}

// parseRate converts a one-decimal percentage string back to a float.
// Malformed values read as 0.
func parseRate(rate string) float64 {
	v, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return 0
	}
	return v
}
