package models

import (
	"encoding/json"
	"strconv"
)

// RawUserPayload is the normalized shape the fetch layer hands to the
// aggregation engine. Field names mirror the upstream GraphQL response;
// optional numeric fields use Nullable types so defaulting is explicit
// rather than guarded at runtime.
type RawUserPayload struct {
	Username           string             `json:"username"`
	SubmitStats        RawSubmitStats     `json:"submitStats"`
	SubmissionCalendar string             `json:"submissionCalendar"` // JSON-encoded {unixDay: count}
	Profile            RawProfile         `json:"profile"`
	RecentSubmissions  []RecentSubmission `json:"recentSubmissionList"`
	SkillStats         []SkillStat        `json:"skillStats"`
	LanguageStats      []LanguageStat     `json:"languageStats"`
	Badges             []Badge            `json:"badges"`
	ContestHistory     []ContestEntry     `json:"contestHistory"`
	ContestRanking     *ContestRanking    `json:"contestRanking"`
}

// RawSubmitStats carries per-difficulty submission counters.
// acSubmissionNum counts accepted submissions, totalSubmissionNum counts
// every attempt including failed ones.
type RawSubmitStats struct {
	ACSubmissionNum    []RawSubmissionCount `json:"acSubmissionNum"`
	TotalSubmissionNum []RawSubmissionCount `json:"totalSubmissionNum"`
}

// RawSubmissionCount is a single {difficulty, count, submissions} entry.
// Count and Submissions are nullable so malformed upstream entries can be
// skipped instead of aborting aggregation.
type RawSubmissionCount struct {
	Difficulty  string      `json:"difficulty"`
	Count       NullableInt `json:"count"`
	Submissions NullableInt `json:"submissions"`
}

// RawProfile carries the optional profile fields used by aggregation.
type RawProfile struct {
	Ranking    NullableInt    `json:"ranking"`
	Reputation NullableInt    `json:"reputation"`
	RealName   NullableString `json:"realName"`
	UserAvatar NullableString `json:"userAvatar"`
	AboutMe    NullableString `json:"aboutMe"`
	School     NullableString `json:"school"`
	Company    NullableString `json:"company"`
	Country    NullableString `json:"countryName"`
}

// ParseSubmissionCalendar decodes the JSON-encoded calendar string upstream
// returns. Invalid JSON or malformed keys degrade to an empty or partial
// calendar, never an error. Negative counts are dropped.
func ParseSubmissionCalendar(raw string) SubmissionCalendar {
	calendar := make(SubmissionCalendar)
	if raw == "" {
		return calendar
	}

	var entries map[string]int
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return calendar
	}

	for key, count := range entries {
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil || ts < 0 || count < 0 {
			continue
		}
		calendar[ts] = count
	}

	return calendar
}
