package service

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/leetguide/backend/internal/models"
)

// fallbackCatalog is the static substitute candidate pool used when the
// live problem set is unreachable. Metadata mirrors the real problems
// closely enough for scoring to behave normally. Deliberately
// deterministic so tests and demo output are reproducible.
var fallbackCatalog = []models.Problem{
	{
		Title:      "Two Sum",
		Slug:       "two-sum",
		Difficulty: models.DifficultyEasy,
		TopicTags:  []string{"Array", "Hash Table"},
		AcRate:     51.4,
		Likes:      45231,
		Dislikes:   1432,
		URL:        "https://leetcode.com/problems/two-sum/",
	},
	{
		Title:      "Valid Parentheses",
		Slug:       "valid-parentheses",
		Difficulty: models.DifficultyEasy,
		TopicTags:  []string{"String", "Stack"},
		AcRate:     40.1,
		Likes:      18743,
		Dislikes:   1123,
		URL:        "https://leetcode.com/problems/valid-parentheses/",
	},
	{
		Title:      "Merge Two Sorted Lists",
		Slug:       "merge-two-sorted-lists",
		Difficulty: models.DifficultyEasy,
		TopicTags:  []string{"Linked List", "Recursion"},
		AcRate:     62.3,
		Likes:      19854,
		Dislikes:   1880,
		URL:        "https://leetcode.com/problems/merge-two-sorted-lists/",
	},
	{
		Title:      "Binary Tree Inorder Traversal",
		Slug:       "binary-tree-inorder-traversal",
		Difficulty: models.DifficultyEasy,
		TopicTags:  []string{"Tree", "Stack", "Depth-First Search"},
		AcRate:     74.4,
		Likes:      11234,
		Dislikes:   542,
		URL:        "https://leetcode.com/problems/binary-tree-inorder-traversal/",
	},
	{
		Title:      "Best Time to Buy and Sell Stock",
		Slug:       "best-time-to-buy-and-sell-stock",
		Difficulty: models.DifficultyEasy,
		TopicTags:  []string{"Array", "Dynamic Programming"},
		AcRate:     54.1,
		Likes:      28764,
		Dislikes:   975,
		URL:        "https://leetcode.com/problems/best-time-to-buy-and-sell-stock/",
	},
	{
		Title:      "Longest Substring Without Repeating Characters",
		Slug:       "longest-substring-without-repeating-characters",
		Difficulty: models.DifficultyMedium,
		TopicTags:  []string{"Hash Table", "String", "Sliding Window"},
		AcRate:     33.8,
		Likes:      32451,
		Dislikes:   1432,
		URL:        "https://leetcode.com/problems/longest-substring-without-repeating-characters/",
	},
	{
		Title:      "Number of Islands",
		Slug:       "number-of-islands",
		Difficulty: models.DifficultyMedium,
		TopicTags:  []string{"Array", "Depth-First Search", "Breadth-First Search", "Graph"},
		AcRate:     57.2,
		Likes:      20145,
		Dislikes:   462,
		URL:        "https://leetcode.com/problems/number-of-islands/",
	},
	{
		Title:      "Coin Change",
		Slug:       "coin-change",
		Difficulty: models.DifficultyMedium,
		TopicTags:  []string{"Array", "Dynamic Programming", "Breadth-First Search"},
		AcRate:     42.5,
		Likes:      17932,
		Dislikes:   421,
		URL:        "https://leetcode.com/problems/coin-change/",
	},
	{
		Title:      "LRU Cache",
		Slug:       "lru-cache",
		Difficulty: models.DifficultyMedium,
		TopicTags:  []string{"Hash Table", "Linked List", "Design"},
		AcRate:     41.8,
		Likes:      19574,
		Dislikes:   835,
		URL:        "https://leetcode.com/problems/lru-cache/",
	},
	{
		Title:      "Merge Intervals",
		Slug:       "merge-intervals",
		Difficulty: models.DifficultyMedium,
		TopicTags:  []string{"Array", "Sorting"},
		AcRate:     46.9,
		Likes:      21038,
		Dislikes:   736,
		URL:        "https://leetcode.com/problems/merge-intervals/",
	},
	{
		Title:      "Median of Two Sorted Arrays",
		Slug:       "median-of-two-sorted-arrays",
		Difficulty: models.DifficultyHard,
		TopicTags:  []string{"Array", "Binary Search", "Divide and Conquer"},
		AcRate:     36.1,
		Likes:      24120,
		Dislikes:   2693,
		URL:        "https://leetcode.com/problems/median-of-two-sorted-arrays/",
	},
	{
		Title:      "Trapping Rain Water",
		Slug:       "trapping-rain-water",
		Difficulty: models.DifficultyHard,
		TopicTags:  []string{"Array", "Two Pointers", "Dynamic Programming", "Stack"},
		AcRate:     58.7,
		Likes:      28457,
		Dislikes:   391,
		URL:        "https://leetcode.com/problems/trapping-rain-water/",
	},
}

// FallbackProblems returns a copy of the static catalog.
func FallbackProblems() []models.Problem {
	return append([]models.Problem(nil), fallbackCatalog...)
}

// FilterFallbackProblems applies the topic/difficulty predicates and
// solved-set exclusion to the static catalog, relaxing filters
// progressively (topic, then difficulty, then the solved set) whenever
// filtering would empty the result. Output is non-empty as long as the
// catalog itself is non-empty.
func FilterFallbackProblems(topic, difficulty string, solved map[string]bool) []models.Problem {
	base := excludeSolved(FallbackProblems(), solved)
	if len(base) == 0 {
		base = FallbackProblems()
	}

	filtered := filterCatalog(base, topic, difficulty)
	if len(filtered) == 0 {
		filtered = filterCatalog(base, "", difficulty)
	}
	if len(filtered) == 0 {
		filtered = filterCatalog(base, "", "")
	}
	return filtered
}

func filterCatalog(pool []models.Problem, topic, difficulty string) []models.Problem {
	matched := make([]models.Problem, 0, len(pool))
	for _, problem := range pool {
		if topic != "" && !matchesWeakArea(problem, []string{topic}) {
			continue
		}
		if difficulty != "" && problem.Difficulty != difficulty {
			continue
		}
		matched = append(matched, problem)
	}
	return matched
}

// FallbackUserStats builds a deterministic demo user record for when the
// LeetCode API is unreachable. It runs the real aggregation pipeline over
// a fixed payload so the output shape and derived metrics always match
// the live path.
func FallbackUserStats(username string, today time.Time) *models.UserStats {
	stats, err := ComputeUserProfile(demoPayload(username, today), today)
	if err != nil {
		// Unreachable: the demo payload is never nil.
		return &models.UserStats{Username: username}
	}
	return stats
}

func demoPayload(username string, today time.Time) *models.RawUserPayload {
	return &models.RawUserPayload{
		Username: username,
		SubmitStats: models.RawSubmitStats{
			ACSubmissionNum: []models.RawSubmissionCount{
				{Difficulty: models.DifficultyEasy, Count: nInt(145), Submissions: nInt(320)},
				{Difficulty: models.DifficultyMedium, Count: nInt(156), Submissions: nInt(410)},
				{Difficulty: models.DifficultyHard, Count: nInt(41), Submissions: nInt(150)},
			},
			TotalSubmissionNum: []models.RawSubmissionCount{
				{Difficulty: models.DifficultyEasy, Count: nInt(145), Submissions: nInt(410)},
				{Difficulty: models.DifficultyMedium, Count: nInt(156), Submissions: nInt(560)},
				{Difficulty: models.DifficultyHard, Count: nInt(41), Submissions: nInt(230)},
			},
		},
		SubmissionCalendar: demoCalendar(today),
		Profile: models.RawProfile{
			Ranking:    nInt(84213),
			Reputation: nInt(120),
		},
		SkillStats: []models.SkillStat{
			{Name: "Array", Solved: 120},
			{Name: "String", Solved: 85},
			{Name: "Hash Table", Solved: 70},
			{Name: "Tree", Solved: 60},
			{Name: "Binary Search", Solved: 40},
			{Name: "Dynamic Programming", Solved: 25},
			{Name: "Graph", Solved: 18},
		},
		LanguageStats: []models.LanguageStat{
			{LanguageName: "Python3", ProblemsSolved: 201},
			{LanguageName: "Go", ProblemsSolved: 98},
			{LanguageName: "C++", ProblemsSolved: 43},
		},
		RecentSubmissions: []models.RecentSubmission{
			{Title: "Coin Change", TitleSlug: "coin-change", Status: "Accepted", Language: "python3"},
			{Title: "Merge Intervals", TitleSlug: "merge-intervals", Status: "Wrong Answer", Language: "python3"},
			{Title: "Two Sum", TitleSlug: "two-sum", Status: "Accepted", Language: "go"},
		},
	}
}

// demoCalendar renders a fixed 30-day activity pattern ending today:
// a repeating 0/1/2/3 cycle of daily submission counts.
func demoCalendar(today time.Time) string {
	entries := make(map[string]int, 30)
	start := dayUTC(today).AddDate(0, 0, -29)
	for i := 0; i < 30; i++ {
		count := i % 4
		if count == 0 {
			continue
		}
		day := start.AddDate(0, 0, i)
		entries[strconv.FormatInt(day.Unix(), 10)] = count
	}
	data, _ := json.Marshal(entries)
	return string(data)
}

func nInt(v int) models.NullableInt {
	return models.NullableInt{Value: v, Valid: true, Set: true}
}
