package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/leetguide/backend/internal/logger"
	"github.com/leetguide/backend/internal/models"
	"github.com/leetguide/backend/internal/repository"
)

const (
	// maxRecommendations is the result size of the full scorer.
	maxRecommendations = 8

	// learningPathRecommendations is the smaller set embedded in a
	// learning path response.
	learningPathRecommendations = 6

	// candidatePoolSize is how many problems are pulled from the
	// problem set before scoring.
	candidatePoolSize = 50
)

// Scoring weights for candidate problems.
const (
	scoreSweetSpot   = 3 // acceptance rate 30-70%
	scoreModerate    = 2 // acceptance rate 20-80%
	scoreBase        = 1
	scoreWeakArea    = 5
	scorePopular     = 1 // >1000 likes
	scoreVeryPopular = 1 // >5000 likes, on top of scorePopular
	popularLikes     = 1000
	veryPopularLikes = 5000
)

// Base solve-time estimates in minutes by difficulty.
var estimatedMinutes = map[string]int{
	models.DifficultyEasy:   15,
	models.DifficultyMedium: 30,
	models.DifficultyHard:   60,
}

type recommendationService struct {
	problemRepo repository.ProblemRepository
	stats       StatsService
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(problemRepo repository.ProblemRepository, stats StatsService) RecommendationService {
	return &recommendationService{
		problemRepo: problemRepo,
		stats:       stats,
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, req models.RecommendationRequest) ([]models.Recommendation, error) {
	log := logger.Ctx(ctx)

	// A missing or unknown user degrades to an anonymous profile; the
	// scorer still produces generic recommendations.
	profile, err := s.stats.GetUserStats(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			log.Warn("failed to get user stats for recommendations", logger.Err(err))
		}
		profile = nil
	}

	var weakAreas []string
	if profile != nil && req.Topic == "" {
		weakAreas = AnalyzeWeaknesses(profile.SkillStats)
	}

	pool, err := s.problemRepo.GetProblemList(ctx, req.Topic, req.Difficulty, candidatePoolSize)
	if err != nil {
		log.Warn("problem list fetch failed, using fallback catalog", logger.Err(err))
		pool = nil
	}
	if len(pool) == 0 {
		pool = FilterFallbackProblems(req.Topic, req.Difficulty, profile.SolvedSlugs())
	}

	recs := RankProblems(pool, profile, weakAreas, req.Topic, req.Difficulty, maxRecommendations)
	if len(recs) == 0 {
		// Over-filtered live pool: the relaxing catalog always yields
		// something as long as the catalog itself is non-empty.
		recs = RankProblems(
			FilterFallbackProblems(req.Topic, req.Difficulty, profile.SolvedSlugs()),
			profile, weakAreas, req.Topic, req.Difficulty, maxRecommendations,
		)
	}
	return recs, nil
}

func (s *recommendationService) GetLearningPath(ctx context.Context, username string) (*models.LearningPath, error) {
	profile, err := s.stats.GetUserStats(ctx, username)
	if err != nil {
		return nil, err
	}

	weakAreas := AnalyzeWeaknesses(profile.SkillStats)
	phase := pathPhase(profile.TotalSolved, weakAreas)

	pool, err := s.problemRepo.GetProblemList(ctx, "", "", candidatePoolSize)
	if err != nil || len(pool) == 0 {
		pool = FilterFallbackProblems("", "", profile.SolvedSlugs())
	}
	recs := RankProblems(pool, profile, weakAreas, "", "", learningPathRecommendations)
	if len(recs) == 0 {
		recs = RankProblems(FilterFallbackProblems("", "", profile.SolvedSlugs()), profile, weakAreas, "", "", learningPathRecommendations)
	}

	solved := profile.TotalSolved
	return &models.LearningPath{
		CurrentPath: phase,
		WeakAreas:   weakAreas,
		TotalSolved: solved,
		ProgressAnalysis: models.ProgressAnalysis{
			BeginnerPhase:     solved < 50,
			IntermediatePhase: solved >= 50 && solved < 150,
			AdvancedPhase:     solved >= 150,
			CurrentPhase:      phase.Phase,
		},
		SolvedCount:     solved,
		Recommendations: recs,
	}, nil
}

// RankProblems runs the full scoring pipeline: solved-set exclusion, weak
// area preference, difficulty heuristic, multi-factor scoring and result
// synthesis. The returned slice holds at most size entries, highest
// relevance first; ties keep pool order.
func RankProblems(pool []models.Problem, profile *models.UserStats, weakAreas []string, topic, difficulty string, size int) []models.Recommendation {
	// A user who solved the entire pool still gets recommendations;
	// re-practicing beats returning nothing.
	candidates := excludeSolved(pool, profile.SolvedSlugs())
	if len(candidates) == 0 {
		candidates = pool
	}

	// Prefer weak-area problems unless the caller asked for a topic.
	// Never empty the pool purely through this preference.
	if len(weakAreas) > 0 && topic == "" {
		if preferred := filterByWeakAreas(candidates, weakAreas); len(preferred) > 0 {
			candidates = preferred
		}
	}

	// Difficulty progression heuristic, only without an explicit filter
	// and with a known profile. Relaxed when it would empty the pool.
	if difficulty == "" && profile != nil {
		target := RecommendedDifficulty(profile)
		if narrowed := filterByDifficulty(candidates, target); len(narrowed) > 0 {
			candidates = narrowed
		}
	}

	scored := make([]scoredProblem, 0, len(candidates))
	for _, problem := range candidates {
		scored = append(scored, scoredProblem{
			problem: problem,
			score:   scoreProblem(problem, weakAreas),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > size {
		scored = scored[:size]
	}

	recs := make([]models.Recommendation, 0, len(scored))
	for _, sp := range scored {
		recs = append(recs, synthesize(sp.problem, profile, weakAreas))
	}
	return recs
}

type scoredProblem struct {
	problem models.Problem
	score   int
}

// RecommendedDifficulty picks a target difficulty from the user's
// progression. "Mixed" admits both Easy and Medium.
func RecommendedDifficulty(profile *models.UserStats) string {
	switch {
	case profile.TotalSolved < 30:
		return models.DifficultyEasy
	case profile.EasySolved < 50:
		return models.DifficultyEasy
	case profile.MediumSolved < 30:
		return models.DifficultyMedium
	case profile.TotalSolved < 150:
		return "Mixed"
	default:
		return models.DifficultyMedium
	}
}

func excludeSolved(pool []models.Problem, solved map[string]bool) []models.Problem {
	if len(solved) == 0 {
		return pool
	}
	remaining := make([]models.Problem, 0, len(pool))
	for _, problem := range pool {
		if !solved[problem.Slug] {
			remaining = append(remaining, problem)
		}
	}
	return remaining
}

func filterByWeakAreas(pool []models.Problem, weakAreas []string) []models.Problem {
	matched := make([]models.Problem, 0, len(pool))
	for _, problem := range pool {
		if matchesWeakArea(problem, weakAreas) {
			matched = append(matched, problem)
		}
	}
	return matched
}

// matchesWeakArea reports whether any topic tag intersects a weak area,
// using a case-insensitive substring match in either direction so
// "Dynamic Programming" matches a "dynamic programming" tag and vice versa.
func matchesWeakArea(problem models.Problem, weakAreas []string) bool {
	for _, tag := range problem.TopicTags {
		lowerTag := strings.ToLower(tag)
		for _, area := range weakAreas {
			lowerArea := strings.ToLower(area)
			if strings.Contains(lowerTag, lowerArea) || strings.Contains(lowerArea, lowerTag) {
				return true
			}
		}
	}
	return false
}

func filterByDifficulty(pool []models.Problem, target string) []models.Problem {
	matched := make([]models.Problem, 0, len(pool))
	for _, problem := range pool {
		if difficultyAdmits(target, problem.Difficulty) {
			matched = append(matched, problem)
		}
	}
	return matched
}

func difficultyAdmits(target, difficulty string) bool {
	if target == "Mixed" {
		return difficulty == models.DifficultyEasy || difficulty == models.DifficultyMedium
	}
	return difficulty == target
}

// scoreProblem computes the relevance score for one candidate:
// acceptance-rate sweet spot, weak-area targeting and popularity.
func scoreProblem(problem models.Problem, weakAreas []string) int {
	score := scoreBase
	switch {
	case problem.AcRate >= 30 && problem.AcRate <= 70:
		score = scoreSweetSpot
	case problem.AcRate >= 20 && problem.AcRate <= 80:
		score = scoreModerate
	}

	if matchesWeakArea(problem, weakAreas) {
		score += scoreWeakArea
	}

	if problem.Likes > popularLikes {
		score += scorePopular
	}
	if problem.Likes > veryPopularLikes {
		score += scoreVeryPopular
	}
	return score
}

// synthesize builds the user-facing recommendation for a surfaced
// candidate: reason text, similarity, priority and a time estimate.
func synthesize(problem models.Problem, profile *models.UserStats, weakAreas []string) models.Recommendation {
	targetsWeakArea := matchesWeakArea(problem, weakAreas)
	goodAcceptance := problem.AcRate >= 30 && problem.AcRate <= 70

	similarity := 0.5
	if profile != nil && difficultyAdmits(RecommendedDifficulty(profile), problem.Difficulty) {
		similarity += 0.3
	}
	switch {
	case problem.AcRate >= 40 && problem.AcRate <= 60:
		similarity += 0.2
	case problem.AcRate >= 20 && problem.AcRate <= 80:
		similarity += 0.1
	}
	if similarity > 1.0 {
		similarity = 1.0
	}

	priority := models.PriorityLow
	switch {
	case targetsWeakArea && goodAcceptance:
		priority = models.PriorityHigh
	case targetsWeakArea || goodAcceptance:
		priority = models.PriorityMedium
	}

	minutes := estimatedMinutes[problem.Difficulty]
	if minutes == 0 {
		minutes = estimatedMinutes[models.DifficultyMedium]
	}
	factor := 1.0
	switch {
	case problem.AcRate < 30:
		factor = 1.5
	case problem.AcRate > 70:
		factor = 0.8
	}

	return models.Recommendation{
		Problem:       problem,
		Reason:        buildReason(problem, targetsWeakArea),
		Similarity:    similarity,
		Priority:      priority,
		EstimatedTime: int(math.Round(float64(minutes) * factor)),
	}
}

// buildReason renders the templated recommendation sentence.
func buildReason(problem models.Problem, targetsWeakArea bool) string {
	if targetsWeakArea {
		return fmt.Sprintf("Targets one of your weaker topics (%s problem, %.1f%% acceptance rate)",
			problem.Difficulty, problem.AcRate)
	}
	return fmt.Sprintf("Solid %s practice problem with a %.1f%% acceptance rate",
		problem.Difficulty, problem.AcRate)
}

// pathPhase maps total solved count to a learning path phase.
func pathPhase(totalSolved int, weakAreas []string) models.PathPhase {
	switch {
	case totalSolved < 50:
		return models.PathPhase{
			Phase:            "Foundation",
			Focus:            "Core data structures",
			RecommendedDaily: 2,
			TargetSkills:     []string{"Array", "String", "Hash Table"},
			Description:      "Build fluency with arrays, strings and hash tables before moving on.",
		}
	case totalSolved < 150:
		return models.PathPhase{
			Phase:            "Intermediate",
			Focus:            "Common patterns",
			RecommendedDaily: 2,
			TargetSkills:     []string{"Two Pointers", "Sliding Window", "Tree", "Binary Search"},
			Description:      "Practice the recurring interview patterns across medium problems.",
		}
	default:
		phase := models.PathPhase{
			Phase:            "Advanced",
			Focus:            "Hard topics and speed",
			RecommendedDaily: 1,
			TargetSkills:     []string{"Dynamic Programming", "Graph", "Backtracking"},
			Description:      "Sharpen the harder topics and work on solving faster.",
		}
		if len(weakAreas) > 0 {
			phase.TargetSkills = weakAreas
			phase.Focus = "Closing weak areas"
		}
		return phase
	}
}
