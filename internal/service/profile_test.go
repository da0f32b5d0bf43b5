package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/leetguide/backend/internal/models"
)

func demoTestPayload() *models.RawUserPayload {
	return &models.RawUserPayload{
		Username: "alice",
		SubmitStats: models.RawSubmitStats{
			ACSubmissionNum: []models.RawSubmissionCount{
				{Difficulty: "All", Count: nInt(342), Submissions: nInt(880)},
				{Difficulty: models.DifficultyEasy, Count: nInt(145), Submissions: nInt(320)},
				{Difficulty: models.DifficultyMedium, Count: nInt(156), Submissions: nInt(410)},
				{Difficulty: models.DifficultyHard, Count: nInt(41), Submissions: nInt(150)},
			},
			TotalSubmissionNum: []models.RawSubmissionCount{
				{Difficulty: "All", Count: nInt(342), Submissions: nInt(1200)},
				{Difficulty: models.DifficultyEasy, Count: nInt(145), Submissions: nInt(410)},
				{Difficulty: models.DifficultyMedium, Count: nInt(156), Submissions: nInt(560)},
				{Difficulty: models.DifficultyHard, Count: nInt(41), Submissions: nInt(230)},
			},
		},
		Profile: models.RawProfile{
			Ranking: nInt(84213),
		},
	}
}

func TestComputeUserProfile_Totals(t *testing.T) {
	stats, err := ComputeUserProfile(demoTestPayload(), fixedToday)
	if err != nil {
		t.Fatalf("ComputeUserProfile failed: %v", err)
	}

	if stats.Username != "alice" {
		t.Errorf("Username = %q, want alice", stats.Username)
	}
	// Recomputed from per-difficulty counts, never trusted from the rollup.
	if stats.TotalSolved != 342 {
		t.Errorf("TotalSolved = %d, want 342", stats.TotalSolved)
	}
	if stats.EasySolved != 145 || stats.MediumSolved != 156 || stats.HardSolved != 41 {
		t.Errorf("Per-difficulty counts = %d/%d/%d, want 145/156/41",
			stats.EasySolved, stats.MediumSolved, stats.HardSolved)
	}
	if stats.TotalAttempts != 1200 {
		t.Errorf("TotalAttempts = %d, want 1200", stats.TotalAttempts)
	}
	if stats.Ranking != 84213 {
		t.Errorf("Ranking = %d, want 84213", stats.Ranking)
	}
}

func TestComputeUserProfile_AcceptanceRates(t *testing.T) {
	stats, err := ComputeUserProfile(demoTestPayload(), fixedToday)
	if err != nil {
		t.Fatalf("ComputeUserProfile failed: %v", err)
	}

	// 342 solved over 880 accepted submissions.
	if stats.AcceptanceRate != "38.9" {
		t.Errorf("AcceptanceRate = %q, want 38.9", stats.AcceptanceRate)
	}
	// 342 solved over 1200 total attempts.
	if stats.OverallAcceptanceRate != "28.5" {
		t.Errorf("OverallAcceptanceRate = %q, want 28.5", stats.OverallAcceptanceRate)
	}
}

func TestComputeUserProfile_ZeroDenominators(t *testing.T) {
	payload := &models.RawUserPayload{Username: "newbie"}

	stats, err := ComputeUserProfile(payload, fixedToday)
	if err != nil {
		t.Fatalf("ComputeUserProfile failed: %v", err)
	}

	if stats.AcceptanceRate != "0.0" {
		t.Errorf("AcceptanceRate = %q, want 0.0", stats.AcceptanceRate)
	}
	if stats.OverallAcceptanceRate != "0.0" {
		t.Errorf("OverallAcceptanceRate = %q, want 0.0", stats.OverallAcceptanceRate)
	}
	if stats.TotalSolved != 0 {
		t.Errorf("TotalSolved = %d, want 0", stats.TotalSolved)
	}
}

func TestComputeUserProfile_NilPayload(t *testing.T) {
	_, err := ComputeUserProfile(nil, fixedToday)
	if !errors.Is(err, ErrNoUserData) {
		t.Errorf("Expected ErrNoUserData, got %v", err)
	}
}

func TestComputeUserProfile_SkipsMalformedCounts(t *testing.T) {
	payload := demoTestPayload()
	// An invalid medium count drops that entry but keeps the rest.
	payload.SubmitStats.ACSubmissionNum[2].Count = models.NullableInt{Set: true}

	stats, err := ComputeUserProfile(payload, fixedToday)
	if err != nil {
		t.Fatalf("ComputeUserProfile failed: %v", err)
	}

	if stats.MediumSolved != 0 {
		t.Errorf("MediumSolved = %d, want 0", stats.MediumSolved)
	}
	if stats.TotalSolved != 186 {
		t.Errorf("TotalSolved = %d, want 186 (145 easy + 41 hard)", stats.TotalSolved)
	}
}

func TestComputeUserProfile_Idempotent(t *testing.T) {
	first, err := ComputeUserProfile(demoTestPayload(), fixedToday)
	if err != nil {
		t.Fatalf("First call failed: %v", err)
	}
	second, err := ComputeUserProfile(demoTestPayload(), fixedToday)
	if err != nil {
		t.Fatalf("Second call failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output for identical input")
	}
}

func TestComputeUserProfile_CalendarWindow(t *testing.T) {
	payload := demoTestPayload()
	payload.SubmissionCalendar = `{"` + "1741996800" + `": 3}` // garbage-free but sparse

	stats, err := ComputeUserProfile(payload, fixedToday)
	if err != nil {
		t.Fatalf("ComputeUserProfile failed: %v", err)
	}
	if len(stats.SubmissionCalendar) != calendarWindowDays {
		t.Errorf("Calendar window = %d days, want %d", len(stats.SubmissionCalendar), calendarWindowDays)
	}
}

func TestTopSkills(t *testing.T) {
	skills := []models.SkillStat{
		{Name: "Array", Solved: 50},
		{Name: "String", Solved: 80},
		{Name: "Tree", Solved: 80},
		{Name: "Graph", Solved: 5},
		{Name: "Hash Table", Solved: 30},
		{Name: "Stack", Solved: 12},
		{Name: "Queue", Solved: 11},
		{Name: "Heap", Solved: 9},
		{Name: "Trie", Solved: 8},
		{Name: "Greedy", Solved: 7},
		{Name: "Math", Solved: 6},
		{Name: "Bit Manipulation", Solved: 4},
	}

	top := topSkills(skills)

	if len(top) != maxSkillStats {
		t.Fatalf("Expected %d skills, got %d", maxSkillStats, len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i-1].Solved < top[i].Solved {
			t.Errorf("Skills not descending at index %d", i)
		}
	}
	// Ties keep input order.
	if top[0].Name != "String" || top[1].Name != "Tree" {
		t.Errorf("Expected stable tie order String, Tree; got %s, %s", top[0].Name, top[1].Name)
	}
	// Input slice untouched.
	if skills[0].Name != "Array" {
		t.Error("topSkills must not mutate its input")
	}
}

func TestProfileInfo(t *testing.T) {
	empty := profileInfo(models.RawProfile{})
	if empty != nil {
		t.Errorf("Expected nil profile for empty fields, got %+v", empty)
	}

	named := profileInfo(models.RawProfile{
		RealName: models.NullableString{Value: "Alice", Valid: true, Set: true},
	})
	if named == nil || named.RealName != "Alice" {
		t.Errorf("Expected RealName Alice, got %+v", named)
	}
}
