package matcher

import (
	"sort"
	"strings"

	"github.com/jonathan/skillmatch/internal/types"
)

// requiredConfidence splits REQUIRED from MENTIONED rows: a skill the job
// text supports strongly is treated as a hard requirement.
const requiredConfidence = 0.7

// buildComparison produces the per-skill comparison table. Matched skills
// become EXACT MATCH rows. Resume skills left over are then walked through
// the semantic graph: an edge of sufficient weight to an unmatched job
// skill becomes a WEAK MATCH row scored by the edge weight. Rows sort by
// similarity, descending, preserving build order between equals.
func (m *Engine) buildComparison(resume, job *types.SkillProfile, matched []string) []types.ComparisonRow {
	rows := []types.ComparisonRow{}

	matchedSet := make(map[string]bool, len(matched))
	for _, skill := range matched {
		matchedSet[skill] = true
	}

	for _, skill := range matched {
		info := job.Skills[skill]
		rows = append(rows, types.ComparisonRow{
			ResumeSkill:     ptr(skill),
			JobSkill:        skill,
			MatchType:       types.MatchTypeExact,
			SimilarityScore: 1.0,
			Category:        info.Category,
			Priority:        rowPriority(info.Confidence),
		})
	}

	for _, resumeSkill := range sortedSkillNames(resume.Skills) {
		if matchedSet[resumeSkill] {
			continue
		}
		for _, rel := range m.index.Related(resumeSkill) {
			if rel.Weight < m.weakMatchThreshold {
				continue
			}
			info, inJob := job.Skills[rel.Skill]
			if !inJob || matchedSet[rel.Skill] {
				continue
			}
			rows = append(rows, types.ComparisonRow{
				ResumeSkill:     ptr(resumeSkill),
				JobSkill:        rel.Skill,
				MatchType:       types.MatchTypeWeak,
				SimilarityScore: rel.Weight,
				Category:        info.Category,
				Priority:        rowPriority(info.Confidence),
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SimilarityScore > rows[j].SimilarityScore
	})
	return rows
}

// fallbackComparison synthesizes rows from the matched and missing lists
// when no comparison rows could be built, inferring categories from a
// keyword table instead of the taxonomy.
func fallbackComparison(matched, missing []string) []types.ComparisonRow {
	rows := []types.ComparisonRow{}

	for _, skill := range matched {
		rows = append(rows, types.ComparisonRow{
			ResumeSkill:     ptr(skill),
			JobSkill:        skill,
			MatchType:       types.MatchTypeExact,
			SimilarityScore: 1.0,
			Category:        inferCategory(skill),
			Priority:        types.PriorityRequired,
		})
	}
	for _, skill := range missing {
		rows = append(rows, types.ComparisonRow{
			ResumeSkill:     nil,
			JobSkill:        skill,
			MatchType:       types.MatchTypeMissing,
			SimilarityScore: 0,
			Category:        inferCategory(skill),
			Priority:        types.PriorityRequired,
		})
	}
	return rows
}

func rowPriority(confidence float64) string {
	if confidence > requiredConfidence {
		return types.PriorityRequired
	}
	return types.PriorityMentioned
}

func ptr(s string) *string {
	return &s
}

// categoryRules back the keyword-based category inference used by the
// fallback rows. Exact keyword equality across every rule is tried before
// any containment check, so short keywords like "r" and "go" cannot
// hijack skills another rule names outright.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{
		category: "Programming Languages",
		keywords: []string{
			"python", "javascript", "typescript", "java", "c++", "c#", "ruby",
			"php", "swift", "kotlin", "go", "golang", "rust", "scala", "r",
			"matlab", "sql", "html", "css",
		},
	},
	{
		category: "Frameworks & Libraries",
		keywords: []string{
			"react", "angular", "vue", "node", "node.js", "express", "django",
			"flask", "spring", "asp.net", "laravel", "rails", "jquery",
			"bootstrap", "tailwind", "next.js", "nuxt.js", "tensorflow",
			"pytorch", "scikit-learn", "keras",
		},
	},
	{
		category: "Cloud & DevOps",
		keywords: []string{
			"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
			"jenkins", "terraform", "ansible", "devops", "ci/cd",
			"github actions", "gitlab",
		},
	},
	{
		category: "Data & AI",
		keywords: []string{
			"machine learning", "deep learning", "data analysis",
			"data science", "nlp", "natural language processing",
			"computer vision", "ai", "artificial intelligence", "big data",
			"hadoop", "spark",
		},
	},
	{
		category: "Soft Skills",
		keywords: []string{
			"communication", "leadership", "teamwork", "problem solving",
			"critical thinking", "project management", "time management",
			"collaboration", "presentation", "negotiation",
		},
	},
	{
		category: "Business",
		keywords: []string{
			"product management", "business analysis", "stakeholder management",
			"strategy", "marketing", "sales", "customer service",
			"financial analysis", "business development",
		},
	},
	{
		category: "Databases",
		keywords: []string{
			"postgresql", "mysql", "mongodb", "redis", "oracle", "sqlite",
			"dynamodb", "sql server", "firestore",
		},
	},
}

func inferCategory(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))

	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if normalized == keyword {
				return rule.category
			}
		}
	}
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.category
			}
		}
	}
	return "General"
}
