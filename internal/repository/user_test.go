package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/leetguide/backend/pkg/leetcode"
)

// graphqlStub routes canned responses by a distinctive substring of the
// incoming query. Queries with no route get a 500.
type graphqlStub struct {
	responses map[string]string
}

func (s *graphqlStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for marker, response := range s.responses {
			if strings.Contains(req.Query, marker) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(response))
				return
			}
		}
		http.Error(w, "no stub for query", http.StatusInternalServerError)
	}
}

func newStubClient(t *testing.T, responses map[string]string) *leetcode.Client {
	t.Helper()
	server := httptest.NewServer((&graphqlStub{responses: responses}).handler())
	t.Cleanup(server.Close)
	return leetcode.NewClient(server.URL, "test-agent", 5*time.Second)
}

const stubProfileResponse = `{"data": {"matchedUser": {
	"username": "alice",
	"submitStats": {
		"acSubmissionNum": [
			{"difficulty": "All", "count": 150, "submissions": 300},
			{"difficulty": "Easy", "count": 100, "submissions": 180},
			{"difficulty": "Medium", "count": 40, "submissions": 90},
			{"difficulty": "Hard", "count": 10, "submissions": 30}
		],
		"totalSubmissionNum": [
			{"difficulty": "Easy", "count": 100, "submissions": 250},
			{"difficulty": "Medium", "count": 40, "submissions": 140},
			{"difficulty": "Hard", "count": 10, "submissions": 60}
		]
	},
	"profile": {"ranking": 12345, "reputation": 10, "realName": "Alice"}
}}}`

func TestGetUserPayload_AssemblesAllSections(t *testing.T) {
	client := newStubClient(t, map[string]string{
		"submitStats":        stubProfileResponse,
		"submissionCalendar": `{"data": {"matchedUser": {"submissionCalendar": "{\"1700000000\": 3}"}}}`,
		"tagProblemCounts": `{"data": {"matchedUser": {"tagProblemCounts": {
			"fundamental": [{"tagName": "Array", "problemsSolved": 80}],
			"intermediate": [{"tagName": "Tree", "problemsSolved": 30}],
			"advanced": [{"tagName": "Dynamic Programming", "problemsSolved": 12}]
		}}}}`,
		"recentSubmissionList": `{"data": {"recentSubmissionList": [
			{"title": "Two Sum", "titleSlug": "two-sum", "timestamp": "1700000000", "statusDisplay": "Accepted", "lang": "golang"}
		]}}`,
		"languageProblemCount": `{"data": {"matchedUser": {"languageProblemCount": [
			{"languageName": "Go", "problemsSolved": 90}
		]}}}`,
		"badges": `{"data": {"matchedUser": {"badges": [
			{"id": "1", "displayName": "Annual Badge", "icon": "/static/badge.png"}
		]}}}`,
		"userContestRanking": `{"data": {
			"userContestRanking": {"attendedContestsCount": 5, "rating": 1600.5, "globalRanking": 42000, "totalParticipants": 500000, "topPercentage": 8.4},
			"userContestRankingHistory": [
				{"attended": true, "rating": 1500, "ranking": 9000, "contest": {"title": "Weekly Contest 1"}},
				{"attended": false, "rating": 1500, "ranking": 0, "contest": {"title": "Weekly Contest 2"}}
			]
		}}`,
	})

	payload, err := NewUserRepository(client).GetUserPayload(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUserPayload failed: %v", err)
	}

	if payload.Username != "alice" {
		t.Errorf("Username = %q, want alice", payload.Username)
	}
	if payload.Profile.Ranking.Or(0) != 12345 {
		t.Errorf("Ranking = %d, want 12345", payload.Profile.Ranking.Or(0))
	}
	if len(payload.SubmitStats.ACSubmissionNum) != 4 {
		t.Errorf("Expected 4 AC rows, got %d", len(payload.SubmitStats.ACSubmissionNum))
	}
	if payload.SubmissionCalendar != `{"1700000000": 3}` {
		t.Errorf("Calendar = %q", payload.SubmissionCalendar)
	}
	// Skill buckets are flattened into one list.
	if len(payload.SkillStats) != 3 {
		t.Fatalf("Expected 3 skills, got %d", len(payload.SkillStats))
	}
	if payload.SkillStats[0].Name != "Array" || payload.SkillStats[2].Name != "Dynamic Programming" {
		t.Errorf("Unexpected skill order: %+v", payload.SkillStats)
	}
	if len(payload.RecentSubmissions) != 1 || payload.RecentSubmissions[0].Status != "Accepted" {
		t.Errorf("Unexpected submissions: %+v", payload.RecentSubmissions)
	}
	if len(payload.LanguageStats) != 1 || payload.LanguageStats[0].LanguageName != "Go" {
		t.Errorf("Unexpected languages: %+v", payload.LanguageStats)
	}
	if len(payload.Badges) != 1 {
		t.Errorf("Expected 1 badge, got %d", len(payload.Badges))
	}
	if payload.ContestRanking == nil || payload.ContestRanking.AttendedContestsCount != 5 {
		t.Errorf("Unexpected contest ranking: %+v", payload.ContestRanking)
	}
	// Only attended contests are kept.
	if len(payload.ContestHistory) != 1 {
		t.Errorf("Expected 1 attended contest, got %d", len(payload.ContestHistory))
	}
}

func TestGetUserPayload_UnknownUser(t *testing.T) {
	client := newStubClient(t, map[string]string{
		"submitStats": `{"data": {"matchedUser": null}}`,
	})

	_, err := NewUserRepository(client).GetUserPayload(context.Background(), "ghost")

	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserPayload_UnreachableUpstream(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on
	client := leetcode.NewClient(server.URL, "test-agent", time.Second)

	_, err := NewUserRepository(client).GetUserPayload(context.Background(), "alice")

	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("Expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestGetUserPayload_SecondaryFailuresDegrade(t *testing.T) {
	// Only the profile query is stubbed; every secondary query 500s.
	client := newStubClient(t, map[string]string{
		"submitStats": stubProfileResponse,
	})

	payload, err := NewUserRepository(client).GetUserPayload(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Expected the lookup to survive secondary failures, got %v", err)
	}

	if payload.Username != "alice" {
		t.Errorf("Username = %q, want alice", payload.Username)
	}
	if payload.SubmissionCalendar != "" || len(payload.SkillStats) != 0 || len(payload.Badges) != 0 {
		t.Errorf("Expected empty secondary data, got %+v", payload)
	}
}
