package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/leetguide/backend/internal/cache"
	"github.com/leetguide/backend/internal/models"
	"github.com/leetguide/backend/internal/repository"
)

// mockUserRepository is a mock implementation of UserRepository.
type mockUserRepository struct {
	payloads   map[string]*models.RawUserPayload
	err        error
	fetchCalls int
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{payloads: make(map[string]*models.RawUserPayload)}
}

func (m *mockUserRepository) GetUserPayload(ctx context.Context, username string) (*models.RawUserPayload, error) {
	m.fetchCalls++
	if m.err != nil {
		return nil, m.err
	}
	if payload, ok := m.payloads[username]; ok {
		return payload, nil
	}
	return nil, repository.ErrUserNotFound
}

// fakeCache is an in-memory Cache for testing.
type fakeCache struct {
	entries map[string][]byte
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest any) error {
	data, ok := f.entries[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	f.sets++
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func newTestStatsService(repo repository.UserRepository, c cache.Cache) *statsService {
	return &statsService{
		userRepo: repo,
		cache:    c,
		cacheTTL: time.Minute,
		now:      func() time.Time { return fixedToday },
	}
}

func TestGetUserStats_ComputesAndCaches(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepository()
	repo.payloads["alice"] = demoTestPayload()
	c := newFakeCache()
	service := newTestStatsService(repo, c)

	stats, err := service.GetUserStats(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserStats failed: %v", err)
	}
	if stats.TotalSolved != 342 {
		t.Errorf("TotalSolved = %d, want 342", stats.TotalSolved)
	}
	if c.sets != 1 {
		t.Errorf("Expected 1 cache write, got %d", c.sets)
	}
	if _, ok := c.entries["leetguide:user:alice"]; !ok {
		t.Error("Expected the record to be cached under leetguide:user:alice")
	}
}

func TestGetUserStats_CacheHitSkipsFetch(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepository()
	repo.payloads["alice"] = demoTestPayload()
	c := newFakeCache()
	service := newTestStatsService(repo, c)

	first, err := service.GetUserStats(ctx, "alice")
	if err != nil {
		t.Fatalf("First GetUserStats failed: %v", err)
	}
	second, err := service.GetUserStats(ctx, "alice")
	if err != nil {
		t.Fatalf("Second GetUserStats failed: %v", err)
	}

	if repo.fetchCalls != 1 {
		t.Errorf("Expected 1 upstream fetch, got %d", repo.fetchCalls)
	}
	if first.TotalSolved != second.TotalSolved || first.Username != second.Username {
		t.Error("Cached record differs from the computed one")
	}
}

func TestGetUserStats_NotFoundPropagates(t *testing.T) {
	service := newTestStatsService(newMockUserRepository(), newFakeCache())

	_, err := service.GetUserStats(context.Background(), "nobody")

	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserStats_UpstreamFailureServesDemoData(t *testing.T) {
	repo := newMockUserRepository()
	repo.err = repository.ErrUpstreamUnavailable
	c := newFakeCache()
	service := newTestStatsService(repo, c)

	stats, err := service.GetUserStats(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Expected demo fallback, got error: %v", err)
	}
	if stats.Username != "alice" {
		t.Errorf("Username = %q, want alice", stats.Username)
	}
	if stats.TotalSolved != 342 {
		t.Errorf("TotalSolved = %d, want the demo fixture's 342", stats.TotalSolved)
	}
	// Demo data is not worth caching.
	if c.sets != 0 {
		t.Errorf("Expected no cache writes for demo data, got %d", c.sets)
	}
}

func TestCompareUsers(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepository()

	alice := demoTestPayload()
	bob := demoTestPayload()
	bob.Username = "bob"
	bob.SubmitStats.ACSubmissionNum = []models.RawSubmissionCount{
		{Difficulty: models.DifficultyEasy, Count: nInt(100), Submissions: nInt(200)},
		{Difficulty: models.DifficultyMedium, Count: nInt(80), Submissions: nInt(160)},
		{Difficulty: models.DifficultyHard, Count: nInt(20), Submissions: nInt(40)},
	}
	bob.Profile.Ranking = nInt(120000)
	repo.payloads["alice"] = alice
	repo.payloads["bob"] = bob

	service := newTestStatsService(repo, newFakeCache())

	data, err := service.CompareUsers(ctx, "alice", "bob")
	if err != nil {
		t.Fatalf("CompareUsers failed: %v", err)
	}

	if data.User1.Username != "alice" || data.User2.Username != "bob" {
		t.Errorf("Users out of order: %s vs %s", data.User1.Username, data.User2.Username)
	}
	// 342 vs 200 solved.
	if data.Comparison.TotalSolvedDiff != 142 {
		t.Errorf("TotalSolvedDiff = %d, want 142", data.Comparison.TotalSolvedDiff)
	}
	// Alice ranks 84213, Bob 120000; a positive diff means user1 is ahead.
	if data.Comparison.RankingDiff != 120000-84213 {
		t.Errorf("RankingDiff = %d, want %d", data.Comparison.RankingDiff, 120000-84213)
	}
}

func TestCompareUsers_ErrorNamesTheUser(t *testing.T) {
	repo := newMockUserRepository()
	repo.payloads["alice"] = demoTestPayload()
	service := newTestStatsService(repo, newFakeCache())

	_, err := service.CompareUsers(context.Background(), "alice", "ghost")

	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"38.9", 38.9},
		{"0.0", 0},
		{"garbage", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseRate(tt.in); got != tt.want {
			t.Errorf("parseRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
