package models

import (
	"encoding/json"
	"testing"
)

func TestNullableInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantSet   bool
		wantValid bool
		wantValue int
	}{
		{
			name:      "field present with number",
			json:      `{"ranking": 12345}`,
			wantSet:   true,
			wantValid: true,
			wantValue: 12345,
		},
		{
			name:      "field present with null",
			json:      `{"ranking": null}`,
			wantSet:   true,
			wantValid: false,
		},
		{
			name:    "field absent",
			json:    `{}`,
			wantSet: false,
		},
		{
			name:      "field present with non-numeric value degrades",
			json:      `{"ranking": "not-a-number"}`,
			wantSet:   true,
			wantValid: false,
		},
		{
			name:      "field present with zero",
			json:      `{"ranking": 0}`,
			wantSet:   true,
			wantValid: true,
			wantValue: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result struct {
				Ranking NullableInt `json:"ranking"`
			}
			if err := json.Unmarshal([]byte(tt.json), &result); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if result.Ranking.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", result.Ranking.Set, tt.wantSet)
			}
			if result.Ranking.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", result.Ranking.Valid, tt.wantValid)
			}
			if result.Ranking.Value != tt.wantValue {
				t.Errorf("Value = %d, want %d", result.Ranking.Value, tt.wantValue)
			}
		})
	}
}

func TestNullableInt_Or(t *testing.T) {
	valid := NullableInt{Value: 7, Valid: true, Set: true}
	if got := valid.Or(0); got != 7 {
		t.Errorf("Or(0) = %d, want 7", got)
	}

	invalid := NullableInt{Set: true}
	if got := invalid.Or(42); got != 42 {
		t.Errorf("Or(42) = %d, want 42", got)
	}
}

func TestNullableString_MalformedDegrades(t *testing.T) {
	var result struct {
		RealName NullableString `json:"realName"`
	}
	if err := json.Unmarshal([]byte(`{"realName": 99}`), &result); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if result.RealName.Valid {
		t.Error("expected non-string value to be marked invalid")
	}
	if !result.RealName.Set {
		t.Error("expected field to be marked set")
	}
}

func TestParseSubmissionCalendar(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want SubmissionCalendar
	}{
		{
			name: "well-formed calendar",
			raw:  `{"1733788800": 3, "1733875200": 1}`,
			want: SubmissionCalendar{1733788800: 3, 1733875200: 1},
		},
		{
			name: "empty string",
			raw:  "",
			want: SubmissionCalendar{},
		},
		{
			name: "invalid JSON degrades to empty",
			raw:  `{not json`,
			want: SubmissionCalendar{},
		},
		{
			name: "malformed key skipped",
			raw:  `{"abc": 3, "1733788800": 2}`,
			want: SubmissionCalendar{1733788800: 2},
		},
		{
			name: "zero counts tolerated",
			raw:  `{"1733788800": 0}`,
			want: SubmissionCalendar{1733788800: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSubmissionCalendar(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.want))
			}
			for ts, count := range tt.want {
				if got[ts] != count {
					t.Errorf("calendar[%d] = %d, want %d", ts, got[ts], count)
				}
			}
		})
	}
}

func TestUserStats_SolvedSlugs(t *testing.T) {
	stats := &UserStats{
		RecentSubmissions: []RecentSubmission{
			{TitleSlug: "two-sum", Status: "Accepted"},
			{TitleSlug: "lru-cache", Status: "Wrong Answer"},
			{TitleSlug: "two-sum", Status: "Accepted"},
			{TitleSlug: "", Status: "Accepted"},
		},
	}

	solved := stats.SolvedSlugs()
	if len(solved) != 1 {
		t.Fatalf("got %d solved slugs, want 1", len(solved))
	}
	if !solved["two-sum"] {
		t.Error("expected two-sum in solved set")
	}

	var nilStats *UserStats
	if got := nilStats.SolvedSlugs(); len(got) != 0 {
		t.Errorf("nil stats should yield empty set, got %d entries", len(got))
	}
}
