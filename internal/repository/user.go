package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leetguide/backend/internal/logger"
	"github.com/leetguide/backend/internal/models"
	"github.com/leetguide/backend/pkg/leetcode"
)

const recentSubmissionLimit = 20

type userRepository struct {
	client *leetcode.Client
}

// NewUserRepository creates a new LeetCode-backed user repository
func NewUserRepository(client *leetcode.Client) UserRepository {
	return &userRepository{client: client}
}

// matchedUserEnvelope is the generic wrapper LeetCode uses for per-user
// queries. A null matchedUser signals an unknown username.
type matchedUserEnvelope struct {
	MatchedUser json.RawMessage `json:"matchedUser"`
}

func (r *userRepository) GetUserPayload(ctx context.Context, username string) (*models.RawUserPayload, error) {
	payload, err := r.fetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	log := logger.Ctx(ctx)

	// Secondary queries degrade to empty data rather than failing the
	// whole lookup; the engine tolerates every one of them missing.
	if calendar, err := r.fetchCalendar(ctx, username); err != nil {
		log.Warn("failed to fetch submission calendar", logger.Err(err))
	} else {
		payload.SubmissionCalendar = calendar
	}

	if skills, err := r.fetchSkillStats(ctx, username); err != nil {
		log.Warn("failed to fetch skill stats", logger.Err(err))
	} else {
		payload.SkillStats = skills
	}

	if recent, err := r.fetchRecentSubmissions(ctx, username); err != nil {
		log.Warn("failed to fetch recent submissions", logger.Err(err))
	} else {
		payload.RecentSubmissions = recent
	}

	if languages, err := r.fetchLanguageStats(ctx, username); err != nil {
		log.Warn("failed to fetch language stats", logger.Err(err))
	} else {
		payload.LanguageStats = languages
	}

	if badges, err := r.fetchBadges(ctx, username); err != nil {
		log.Warn("failed to fetch badges", logger.Err(err))
	} else {
		payload.Badges = badges
	}

	if ranking, history, err := r.fetchContestData(ctx, username); err != nil {
		log.Warn("failed to fetch contest data", logger.Err(err))
	} else {
		payload.ContestRanking = ranking
		payload.ContestHistory = history
	}

	return payload, nil
}

func (r *userRepository) fetchProfile(ctx context.Context, username string) (*models.RawUserPayload, error) {
	data, err := r.client.Query(ctx, userProfileQuery, map[string]any{"username": username})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	var envelope matchedUserEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed profile response: %v", ErrUpstreamUnavailable, err)
	}
	if isNull(envelope.MatchedUser) {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}

	var user struct {
		Username    string                `json:"username"`
		SubmitStats models.RawSubmitStats `json:"submitStats"`
		Profile     models.RawProfile     `json:"profile"`
	}
	if err := json.Unmarshal(envelope.MatchedUser, &user); err != nil {
		return nil, fmt.Errorf("%w: malformed matchedUser: %v", ErrUpstreamUnavailable, err)
	}

	return &models.RawUserPayload{
		Username:    user.Username,
		SubmitStats: user.SubmitStats,
		Profile:     user.Profile,
	}, nil
}

func (r *userRepository) fetchCalendar(ctx context.Context, username string) (string, error) {
	data, err := r.client.Query(ctx, calendarQuery, map[string]any{"username": username})
	if err != nil {
		return "", err
	}

	var result struct {
		MatchedUser *struct {
			SubmissionCalendar string `json:"submissionCalendar"`
		} `json:"matchedUser"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("malformed calendar response: %w", err)
	}
	if result.MatchedUser == nil {
		return "", nil
	}
	return result.MatchedUser.SubmissionCalendar, nil
}

func (r *userRepository) fetchSkillStats(ctx context.Context, username string) ([]models.SkillStat, error) {
	data, err := r.client.Query(ctx, skillStatsQuery, map[string]any{"username": username})
	if err != nil {
		return nil, err
	}

	type tagCount struct {
		TagName        string `json:"tagName"`
		ProblemsSolved int    `json:"problemsSolved"`
	}
	var result struct {
		MatchedUser *struct {
			TagProblemCounts struct {
				Advanced     []tagCount `json:"advanced"`
				Intermediate []tagCount `json:"intermediate"`
				Fundamental  []tagCount `json:"fundamental"`
			} `json:"tagProblemCounts"`
		} `json:"matchedUser"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("malformed skill stats response: %w", err)
	}
	if result.MatchedUser == nil {
		return nil, nil
	}

	counts := result.MatchedUser.TagProblemCounts
	allTags := make([]tagCount, 0, len(counts.Fundamental)+len(counts.Intermediate)+len(counts.Advanced))
	allTags = append(allTags, counts.Fundamental...)
	allTags = append(allTags, counts.Intermediate...)
	allTags = append(allTags, counts.Advanced...)

	skills := make([]models.SkillStat, 0, len(allTags))
	for _, tag := range allTags {
		if tag.TagName == "" || tag.ProblemsSolved < 0 {
			continue
		}
		skills = append(skills, models.SkillStat{Name: tag.TagName, Solved: tag.ProblemsSolved})
	}
	return skills, nil
}

func (r *userRepository) fetchRecentSubmissions(ctx context.Context, username string) ([]models.RecentSubmission, error) {
	data, err := r.client.Query(ctx, recentSubmissionsQuery, map[string]any{
		"username": username,
		"limit":    recentSubmissionLimit,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		RecentSubmissionList []struct {
			Title         string `json:"title"`
			TitleSlug     string `json:"titleSlug"`
			Timestamp     string `json:"timestamp"`
			StatusDisplay string `json:"statusDisplay"`
			Lang          string `json:"lang"`
		} `json:"recentSubmissionList"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("malformed submissions response: %w", err)
	}

	submissions := make([]models.RecentSubmission, 0, len(result.RecentSubmissionList))
	for _, sub := range result.RecentSubmissionList {
		submissions = append(submissions, models.RecentSubmission{
			Title:     sub.Title,
			TitleSlug: sub.TitleSlug,
			Timestamp: sub.Timestamp,
			Status:    sub.StatusDisplay,
			Language:  sub.Lang,
		})
	}
	return submissions, nil
}

func (r *userRepository) fetchLanguageStats(ctx context.Context, username string) ([]models.LanguageStat, error) {
	data, err := r.client.Query(ctx, languageStatsQuery, map[string]any{"username": username})
	if err != nil {
		return nil, err
	}

	var result struct {
		MatchedUser *struct {
			LanguageProblemCount []models.LanguageStat `json:"languageProblemCount"`
		} `json:"matchedUser"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("malformed language stats response: %w", err)
	}
	if result.MatchedUser == nil {
		return nil, nil
	}
	return result.MatchedUser.LanguageProblemCount, nil
}

func (r *userRepository) fetchBadges(ctx context.Context, username string) ([]models.Badge, error) {
	data, err := r.client.Query(ctx, badgesQuery, map[string]any{"username": username})
	if err != nil {
		return nil, err
	}

	var result struct {
		MatchedUser *struct {
			Badges []models.Badge `json:"badges"`
		} `json:"matchedUser"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("malformed badges response: %w", err)
	}
	if result.MatchedUser == nil {
		return nil, nil
	}
	return result.MatchedUser.Badges, nil
}

func (r *userRepository) fetchContestData(ctx context.Context, username string) (*models.ContestRanking, []models.ContestEntry, error) {
	data, err := r.client.Query(ctx, contestQuery, map[string]any{"username": username})
	if err != nil {
		return nil, nil, err
	}

	var result struct {
		UserContestRanking *struct {
			AttendedContestsCount int     `json:"attendedContestsCount"`
			Rating                float64 `json:"rating"`
			GlobalRanking         int     `json:"globalRanking"`
			TotalParticipants     int     `json:"totalParticipants"`
			TopPercentage         float64 `json:"topPercentage"`
			Badge                 *struct {
				Name string `json:"name"`
			} `json:"badge"`
		} `json:"userContestRanking"`
		UserContestRankingHistory []models.ContestEntry `json:"userContestRankingHistory"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, nil, fmt.Errorf("malformed contest response: %w", err)
	}

	var ranking *models.ContestRanking
	if result.UserContestRanking != nil {
		ranking = &models.ContestRanking{
			AttendedContestsCount: result.UserContestRanking.AttendedContestsCount,
			Rating:                result.UserContestRanking.Rating,
			GlobalRanking:         result.UserContestRanking.GlobalRanking,
			TotalParticipants:     result.UserContestRanking.TotalParticipants,
			TopPercentage:         result.UserContestRanking.TopPercentage,
		}
		if result.UserContestRanking.Badge != nil {
			ranking.BadgeName = result.UserContestRanking.Badge.Name
		}
	}

	// Keep only contests the user actually attended
	history := make([]models.ContestEntry, 0, len(result.UserContestRankingHistory))
	for _, entry := range result.UserContestRankingHistory {
		if entry.Attended {
			history = append(history, entry)
		}
	}

	return ranking, history, nil
}

// isNull reports whether a raw JSON value is absent or literal null.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
