package repository

import (
	"context"
	"errors"

	"github.com/leetguide/backend/internal/models"
)

// Sentinel errors for the two recoverable upstream conditions the engine
// must keep distinct. A user-not-found is surfaced to the caller as-is;
// an unavailable upstream is substituted with fallback data.
var (
	// ErrUserNotFound means LeetCode explicitly reported no matching user.
	ErrUserNotFound = errors.New("leetcode user not found")

	// ErrUpstreamUnavailable means the LeetCode API could not be reached
	// or returned a malformed response.
	ErrUpstreamUnavailable = errors.New("leetcode api unavailable")
)

// UserRepository fetches per-user data from LeetCode.
type UserRepository interface {
	// GetUserPayload assembles the normalized raw payload for a user.
	// Secondary data (skills, calendar, submissions, badges, contests)
	// degrades to empty on failure; only the core profile query can
	// return ErrUserNotFound or ErrUpstreamUnavailable.
	GetUserPayload(ctx context.Context, username string) (*models.RawUserPayload, error)
}

// ProblemRepository fetches candidate problems from the LeetCode
// problem set.
type ProblemRepository interface {
	GetProblemList(ctx context.Context, topic, difficulty string, limit int) ([]models.Problem, error)
}
