package service

import (
	"context"

	"github.com/leetguide/backend/internal/models"
)

// StatsService defines the interface for user statistics business logic
type StatsService interface {
	// GetUserStats returns the composite stats record for a user.
	// Unknown usernames surface repository.ErrUserNotFound; an
	// unreachable upstream is substituted with deterministic demo data.
	GetUserStats(ctx context.Context, username string) (*models.UserStats, error)

	// CompareUsers fetches both users concurrently and computes their
	// head-to-head deltas.
	CompareUsers(ctx context.Context, user1, user2 string) (*models.ComparisonData, error)
}

// RecommendationService defines the interface for problem recommendations
type RecommendationService interface {
	GetRecommendations(ctx context.Context, req models.RecommendationRequest) ([]models.Recommendation, error)
	GetLearningPath(ctx context.Context, username string) (*models.LearningPath, error)
}
