package service

import (
	"errors"
	"sort"
	"time"

	"github.com/leetguide/backend/internal/models"
)

// ErrNoUserData is returned when aggregation is asked to run without any
// user-shaped payload at all. Individual malformed fields never cause an
// error; they are skipped.
var ErrNoUserData = errors.New("no user data to aggregate")

// maxSkillStats caps the skill list at the top entries by solved count.
const maxSkillStats = 10

// calendarWindowDays is the window of daily counts included in the
// composite user record for the activity chart.
const calendarWindowDays = 30

// ComputeUserProfile merges a raw upstream payload into the composite
// user record served to the dashboard. It is a pure function: identical
// payloads and the same today reference yield identical output.
//
// totalSolved is recomputed from the per-difficulty counts rather than
// trusted from upstream.
func ComputeUserProfile(payload *models.RawUserPayload, today time.Time) (*models.UserStats, error) {
	if payload == nil {
		return nil, ErrNoUserData
	}

	var easy, medium, hard int
	var acceptedSubmissions int
	for _, stat := range payload.SubmitStats.ACSubmissionNum {
		if !stat.Count.Valid {
			continue
		}
		switch stat.Difficulty {
		case models.DifficultyEasy:
			easy = stat.Count.Value
		case models.DifficultyMedium:
			medium = stat.Count.Value
		case models.DifficultyHard:
			hard = stat.Count.Value
		default:
			// The "All" rollup would double-count difficulties.
			continue
		}
		acceptedSubmissions += stat.Submissions.Or(0)
	}
	totalSolved := easy + medium + hard

	totalAttempts := 0
	for _, stat := range payload.SubmitStats.TotalSubmissionNum {
		switch stat.Difficulty {
		case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
			totalAttempts += stat.Submissions.Or(0)
		}
	}

	calendar := models.ParseSubmissionCalendar(payload.SubmissionCalendar)
	streaks := ComputeStreaks(calendar, today)
	activity := ComputeActivity(calendar, today, totalSolved, streaks.TotalActiveDays)

	stats := &models.UserStats{
		Username:              payload.Username,
		TotalSolved:           totalSolved,
		EasySolved:            easy,
		MediumSolved:          medium,
		HardSolved:            hard,
		AcceptanceRate:        formatRate(totalSolved, acceptedSubmissions),
		OverallAcceptanceRate: formatRate(totalSolved, totalAttempts),
		TotalAttempts:         totalAttempts,
		Ranking:               payload.Profile.Ranking.Or(0),
		ContributionPoints:    payload.Profile.Reputation.Or(0),
		StreakData: models.StreakData{
			CurrentStreak:            streaks.CurrentStreak,
			LongestStreak:            streaks.LongestStreak,
			TotalActiveDays:          streaks.TotalActiveDays,
			AverageSubmissionsPerDay: activity.AveragePerDay,
			Past7DaysSubmissions:     activity.Past7DaysSubmissions,
			Past7DaysActiveDays:      activity.Past7DaysActiveDays,
		},
		LanguageStats:      payload.LanguageStats,
		RecentSubmissions:  payload.RecentSubmissions,
		Badges:             payload.Badges,
		SubmissionCalendar: NormalizeCalendarWindow(calendar, calendarWindowDays, today),
		SkillStats:         topSkills(payload.SkillStats),
		ContestHistory:     payload.ContestHistory,
		ContestRanking:     payload.ContestRanking,
		Profile:            profileInfo(payload.Profile),
	}

	return stats, nil
}

// formatRate renders accepted/total as a percentage with one decimal,
// "0.0" when the denominator is zero.
func formatRate(accepted, total int) string {
	if total <= 0 {
		return "0.0"
	}
	return formatDecimal(float64(accepted) / float64(total) * 100)
}

// topSkills sorts skills descending by solved count and keeps the top 10.
// Ties keep their input order.
func topSkills(skills []models.SkillStat) []models.SkillStat {
	sorted := append([]models.SkillStat(nil), skills...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Solved > sorted[j].Solved
	})
	if len(sorted) > maxSkillStats {
		sorted = sorted[:maxSkillStats]
	}
	return sorted
}

// profileInfo converts the nullable raw profile fields into the public
// profile block, or nil when no field carries a value.
func profileInfo(raw models.RawProfile) *models.ProfileInfo {
	info := &models.ProfileInfo{
		RealName: raw.RealName.Or(""),
		Avatar:   raw.UserAvatar.Or(""),
		AboutMe:  raw.AboutMe.Or(""),
		School:   raw.School.Or(""),
		Company:  raw.Company.Or(""),
		Country:  raw.Country.Or(""),
	}
	if *info == (models.ProfileInfo{}) {
		return nil
	}
	return info
}
