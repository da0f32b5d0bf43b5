package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/leetguide/backend/internal/models"
	"github.com/leetguide/backend/pkg/leetcode"
)

const problemURLPrefix = "https://leetcode.com/problems/"

type problemRepository struct {
	client *leetcode.Client
}

// NewProblemRepository creates a new LeetCode-backed problem repository
func NewProblemRepository(client *leetcode.Client) ProblemRepository {
	return &problemRepository{client: client}
}

func (r *problemRepository) GetProblemList(ctx context.Context, topic, difficulty string, limit int) ([]models.Problem, error) {
	filters := map[string]any{}
	if difficulty != "" {
		filters["difficulty"] = strings.ToUpper(difficulty)
	}
	if topic != "" {
		filters["tags"] = []string{topicToSlug(topic)}
	}

	data, err := r.client.Query(ctx, problemListQuery, map[string]any{
		"categorySlug": "",
		"limit":        limit,
		"skip":         0,
		"filters":      filters,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	var result struct {
		ProblemsetQuestionList *struct {
			Questions []struct {
				Title      string  `json:"title"`
				TitleSlug  string  `json:"titleSlug"`
				Difficulty string  `json:"difficulty"`
				AcRate     float64 `json:"acRate"`
				Likes      int     `json:"likes"`
				Dislikes   int     `json:"dislikes"`
				TopicTags  []struct {
					Name string `json:"name"`
				} `json:"topicTags"`
			} `json:"questions"`
		} `json:"problemsetQuestionList"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: malformed problem list response: %v", ErrUpstreamUnavailable, err)
	}
	if result.ProblemsetQuestionList == nil {
		return nil, nil
	}

	problems := make([]models.Problem, 0, len(result.ProblemsetQuestionList.Questions))
	for _, q := range result.ProblemsetQuestionList.Questions {
		if q.TitleSlug == "" {
			continue
		}
		tags := make([]string, 0, len(q.TopicTags))
		for _, tag := range q.TopicTags {
			tags = append(tags, tag.Name)
		}
		problems = append(problems, models.Problem{
			Title:      q.Title,
			Slug:       q.TitleSlug,
			Difficulty: q.Difficulty,
			TopicTags:  tags,
			AcRate:     q.AcRate,
			Likes:      q.Likes,
			Dislikes:   q.Dislikes,
			URL:        problemURLPrefix + q.TitleSlug + "/",
		})
	}
	return problems, nil
}

// topicToSlug converts a display topic name ("Dynamic Programming") into
// the tag slug the problem list filter expects ("dynamic-programming").
func topicToSlug(topic string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(topic)), " ", "-")
}
