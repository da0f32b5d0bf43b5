package service

import (
	"sort"

	"github.com/leetguide/backend/internal/models"
)

// weakAreaRatio marks a topic weak when its solved count falls below this
// fraction of the user's average across tracked topics.
const weakAreaRatio = 0.7

// maxWeakAreas bounds how many weak topics are reported.
const maxWeakAreas = 3

// AnalyzeWeaknesses flags topics solved significantly below the user's
// own average. It returns up to the 3 weakest topic names, ordered
// weakest first; ties keep their input order. No skills or an all-zero
// average yields an empty list.
func AnalyzeWeaknesses(skills []models.SkillStat) []string {
	if len(skills) == 0 {
		return []string{}
	}

	total := 0
	for _, skill := range skills {
		total += skill.Solved
	}
	average := float64(total) / float64(len(skills))
	if average == 0 {
		return []string{}
	}

	threshold := average * weakAreaRatio
	weak := make([]models.SkillStat, 0, len(skills))
	for _, skill := range skills {
		if float64(skill.Solved) < threshold {
			weak = append(weak, skill)
		}
	}

	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Solved < weak[j].Solved
	})
	if len(weak) > maxWeakAreas {
		weak = weak[:maxWeakAreas]
	}

	names := make([]string, 0, len(weak))
	for _, skill := range weak {
		names = append(names, skill.Name)
	}
	return names
}
