package models

// Difficulty levels as reported by LeetCode.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Recommendation priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// SubmissionCalendar maps a UNIX day timestamp (seconds, midnight boundary)
// to the number of submissions made that day. Sparse: days without activity
// are usually absent, zero-valued entries are tolerated.
type SubmissionCalendar map[int64]int

// CalendarDay is one entry of a dense, gap-filled calendar window.
type CalendarDay struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int    `json:"count"`
}

// StreakData holds streak and activity metrics derived from the
// submission calendar.
type StreakData struct {
	CurrentStreak            int    `json:"currentStreak"`
	LongestStreak            int    `json:"longestStreak"`
	TotalActiveDays          int    `json:"totalActiveDays"`
	AverageSubmissionsPerDay string `json:"averageSubmissionsPerDay"`
	Past7DaysSubmissions     int    `json:"past7DaysSubmissions"`
	Past7DaysActiveDays      int    `json:"past7DaysActiveDays"`
}

// StreakSummary is the calendar-only subset of StreakData.
type StreakSummary struct {
	CurrentStreak   int `json:"currentStreak"`
	LongestStreak   int `json:"longestStreak"`
	TotalActiveDays int `json:"totalActiveDays"`
}

// ActivitySummary holds rolling activity metrics over the last 7 days.
type ActivitySummary struct {
	AveragePerDay        string `json:"averagePerDay"`
	Past7DaysSubmissions int    `json:"past7DaysSubmissions"`
	Past7DaysActiveDays  int    `json:"past7DaysActiveDays"`
}

// SkillStat is a per-topic solved count.
type SkillStat struct {
	Name   string `json:"name"`
	Solved int    `json:"solved"`
}

// LanguageStat is a per-language solved count.
type LanguageStat struct {
	LanguageName   string `json:"languageName"`
	ProblemsSolved int    `json:"problemsSolved"`
}

// RecentSubmission is one entry of a user's recent submission list.
type RecentSubmission struct {
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Language  string `json:"language"`
}

// Badge is an earned LeetCode badge.
type Badge struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Icon         string `json:"icon"`
	CreationDate string `json:"creationDate"`
}

// ContestEntry is one contest the user participated in.
type ContestEntry struct {
	Attended            bool    `json:"attended"`
	TrendDirection      string  `json:"trendDirection"`
	ProblemsSolved      int     `json:"problemsSolved"`
	TotalProblems       int     `json:"totalProblems"`
	FinishTimeInSeconds int     `json:"finishTimeInSeconds"`
	Rating              float64 `json:"rating"`
	Ranking             int     `json:"ranking"`
	Contest             Contest `json:"contest"`
}

// Contest identifies a single contest.
type Contest struct {
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
}

// ContestRanking is the user's aggregate contest standing.
type ContestRanking struct {
	AttendedContestsCount int     `json:"attendedContestsCount"`
	Rating                float64 `json:"rating"`
	GlobalRanking         int     `json:"globalRanking"`
	TotalParticipants     int     `json:"totalParticipants"`
	TopPercentage         float64 `json:"topPercentage"`
	BadgeName             string  `json:"badgeName,omitempty"`
}

// ProfileInfo carries the public profile fields of a user.
type ProfileInfo struct {
	RealName string `json:"realName,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	AboutMe  string `json:"aboutMe,omitempty"`
	School   string `json:"school,omitempty"`
	Company  string `json:"company,omitempty"`
	Country  string `json:"country,omitempty"`
}

// UserStats is the composite per-user record served to the dashboard.
// All fields are derived per request; nothing is persisted.
type UserStats struct {
	Username              string             `json:"username"`
	TotalSolved           int                `json:"totalSolved"`
	EasySolved            int                `json:"easySolved"`
	MediumSolved          int                `json:"mediumSolved"`
	HardSolved            int                `json:"hardSolved"`
	AcceptanceRate        string             `json:"acceptanceRate"`
	OverallAcceptanceRate string             `json:"overallAcceptanceRate"`
	TotalAttempts         int                `json:"totalAttempts"`
	Ranking               int                `json:"ranking"`
	ContributionPoints    int                `json:"contributionPoints"`
	StreakData            StreakData         `json:"streakData"`
	LanguageStats         []LanguageStat     `json:"languageStats"`
	RecentSubmissions     []RecentSubmission `json:"recentSubmissions"`
	Badges                []Badge            `json:"badges"`
	SubmissionCalendar    []CalendarDay      `json:"submissionCalendar"`
	SkillStats            []SkillStat        `json:"skillStats"`
	ContestHistory        []ContestEntry     `json:"contestHistory"`
	ContestRanking        *ContestRanking    `json:"contestRanking"`
	Profile               *ProfileInfo       `json:"profile,omitempty"`
}

// SolvedSlugs returns the set of problem slugs the user is known to have
// solved, derived from accepted recent submissions.
func (u *UserStats) SolvedSlugs() map[string]bool {
	solved := make(map[string]bool)
	if u == nil {
		return solved
	}
	for _, sub := range u.RecentSubmissions {
		if sub.Status == "Accepted" && sub.TitleSlug != "" {
			solved[sub.TitleSlug] = true
		}
	}
	return solved
}

// Problem is a candidate problem sourced from the problem set. Read-only
// from the engine's perspective.
type Problem struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Difficulty string   `json:"difficulty"`
	TopicTags  []string `json:"topicTags"`
	AcRate     float64  `json:"acRate"`
	Likes      int      `json:"likes"`
	Dislikes   int      `json:"dislikes"`
	URL        string   `json:"url"`
}

// Recommendation is a scored candidate problem surfaced to the user.
type Recommendation struct {
	Problem
	Reason        string  `json:"reason"`
	Similarity    float64 `json:"similarity"`
	Priority      string  `json:"priority"`
	EstimatedTime int     `json:"estimatedTime"` // minutes
}

// RecommendationRequest is the request body for the recommendation endpoints.
type RecommendationRequest struct {
	Username   string `json:"username" binding:"required"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// ComparisonData is the response of the user comparison endpoint.
type ComparisonData struct {
	User1      *UserStats `json:"user1"`
	User2      *UserStats `json:"user2"`
	Comparison Comparison `json:"comparison"`
}

// Comparison holds the head-to-head deltas between two users.
type Comparison struct {
	TotalSolvedDiff    int     `json:"totalSolvedDiff"`
	AcceptanceRateDiff float64 `json:"acceptanceRateDiff"`
	RankingDiff        int     `json:"rankingDiff"` // lower ranking is better
}

// LearningPath describes where a user sits in their practice progression.
type LearningPath struct {
	CurrentPath      PathPhase        `json:"currentPath"`
	WeakAreas        []string         `json:"weakAreas"`
	TotalSolved      int              `json:"totalSolved"`
	ProgressAnalysis ProgressAnalysis `json:"progressAnalysis"`
	SolvedCount      int              `json:"solvedCount"`
	Recommendations  []Recommendation `json:"recommendations"`
}

// PathPhase describes the current phase of a learning path.
type PathPhase struct {
	Phase            string   `json:"phase"`
	Focus            string   `json:"focus"`
	RecommendedDaily int      `json:"recommendedDaily"`
	TargetSkills     []string `json:"targetSkills"`
	Description      string   `json:"description"`
}

// ProgressAnalysis flags which progression phase the user is in.
type ProgressAnalysis struct {
	BeginnerPhase     bool   `json:"beginnerPhase"`
	IntermediatePhase bool   `json:"intermediatePhase"`
	AdvancedPhase     bool   `json:"advancedPhase"`
	CurrentPhase      string `json:"currentPhase"`
}
