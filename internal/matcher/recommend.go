package matcher

import (
	"fmt"
	"sort"

	"github.com/jonathan/skillmatch/internal/types"
)

const (
	highGapConfidence = 0.8

	maxAdjacencySuggestions = 5

	adjacencyHighWeight = 0.7
)

// analyzeSkillGaps turns missing job skills into gap entries ranked by
// how much the job text emphasizes them.
func analyzeSkillGaps(missing []string, job *types.SkillProfile) []types.SkillGap {
	gaps := []types.SkillGap{}
	for _, skill := range missing {
		info, ok := job.Skills[skill]
		if !ok {
			continue
		}
		priority := "medium"
		if info.Confidence > highGapConfidence {
			priority = "high"
		}
		gaps = append(gaps, types.SkillGap{
			Skill:      skill,
			Importance: info.Confidence,
			Category:   info.Category,
			Priority:   priority,
		})
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Importance > gaps[j].Importance
	})
	return gaps
}

// recommendations assembles the ranked improvement list: one entry per
// gap, an experience-shortfall entry when the job asks for more years,
// and adjacent-skill suggestions from the semantic graph.
func (m *Engine) recommendations(gaps []types.SkillGap, resume, job *types.SkillProfile) []types.Recommendation {
	recs := []types.Recommendation{}

	for _, gap := range gaps {
		recs = append(recs, types.Recommendation{
			Skill:    gap.Skill,
			Priority: gap.Priority,
			Reason:   fmt.Sprintf("This is a %s priority skill for the job, based on its importance in the description.", gap.Priority),
		})
	}

	resumeYears := resume.Experience.TotalYears
	jobYears := job.Experience.TotalYears
	if jobYears > resumeYears && jobYears > 0 {
		recs = append(recs, types.Recommendation{
			Skill:    "Industry Experience",
			Priority: "High",
			Reason:   fmt.Sprintf("The job requires %d years of experience, and your resume shows %d years. Gaining more project experience is key.", jobYears, resumeYears),
		})
	}

	for _, suggestion := range m.suggestAdjacentSkills(resume, job) {
		duplicate := false
		for _, rec := range recs {
			if rec.Skill == suggestion.Skill {
				duplicate = true
				break
			}
		}
		if !duplicate {
			recs = append(recs, suggestion)
		}
	}

	return recs
}

// suggestAdjacentSkills proposes skills related to the job's skills that
// the resume does not already have. First mention wins on duplicates.
func (m *Engine) suggestAdjacentSkills(resume, job *types.SkillProfile) []types.Recommendation {
	suggestions := []types.Recommendation{}
	seen := make(map[string]bool)

	for _, skill := range sortedSkillNames(job.Skills) {
		for _, rel := range m.index.Related(skill) {
			if _, has := resume.Skills[rel.Skill]; has {
				continue
			}
			if seen[rel.Skill] {
				continue
			}
			seen[rel.Skill] = true

			priority := "Advisory"
			if rel.Weight > adjacencyHighWeight {
				priority = "High"
			}
			suggestions = append(suggestions, types.Recommendation{
				Skill:    rel.Skill,
				Priority: priority,
				Reason:   fmt.Sprintf("Closely related to %s and frequently expected in similar roles.", skill),
			})
			if len(suggestions) == maxAdjacencySuggestions {
				return suggestions
			}
		}
	}
	return suggestions
}
