package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skillmatch/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.SkillProfile{
		TotalSkills: 4,
		Experience:  types.Experience{TotalYears: 6, Level: types.LevelMid},
		TopCategories: []types.CategoryShare{
			{Category: "Technical / Analytical", Count: 3, Percentage: 75},
		},
		DomainTerms: []string{"Financial Modelling"},
	}

	p.PrintProfile("RESUME PROFILE", profile)
	output := buf.String()

	assert.Contains(t, output, "RESUME PROFILE")
	assert.Contains(t, output, "Skills found: 4")
	assert.Contains(t, output, "6 years (mid)")
	assert.Contains(t, output, "Technical / Analytical")
	assert.Contains(t, output, "Financial Modelling")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile("RESUME PROFILE", nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		OverallScore: 78,
		DetailedScores: types.DetailedScores{
			SkillMatch:      60,
			WeightedScore:   82,
			F1Score:         75,
			ExperienceMatch: 100,
			CategoryMatch:   50,
		},
		MatchedSkills: []string{"python", "django"},
		MissingSkills: []string{"kubernetes"},
		ExtraSkills:   []string{"aws"},
	}

	p.PrintMatchResult(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH SCORE")
	assert.Contains(t, output, "Overall Score: 78/100")
	assert.Contains(t, output, "Matched (2)")
	assert.Contains(t, output, "python, django")
	assert.Contains(t, output, "Missing (1)")
	assert.Contains(t, output, "kubernetes")
}

func TestPrintMatchResult_ListTruncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		MatchedSkills: []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	p.PrintMatchResult(result)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintComparison(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resumeSkill := "angular"
	rows := []types.ComparisonRow{
		{
			ResumeSkill:     &resumeSkill,
			JobSkill:        "javascript",
			MatchType:       types.MatchTypeWeak,
			SimilarityScore: 0.6,
			Category:        "Programming Languages",
			Priority:        types.PriorityRequired,
		},
		{
			JobSkill:        "kubernetes",
			MatchType:       types.MatchTypeMissing,
			SimilarityScore: 0,
			Category:        "Cloud & DevOps",
			Priority:        types.PriorityRequired,
		},
	}

	p.PrintComparison(rows)
	output := buf.String()

	assert.Contains(t, output, "SKILL COMPARISON")
	assert.Contains(t, output, "angular → javascript")
	assert.Contains(t, output, "0.60")
	// Missing rows have no resume skill
	assert.Contains(t, output, "— → kubernetes")
}

func TestPrintComparison_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintComparison(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recommendations := []types.Recommendation{
		{Skill: "kubernetes", Priority: "High", Reason: "This is a high priority skill for the job."},
		{Skill: "terraform", Priority: "Medium", Reason: "Mentioned in the description."},
	}

	p.PrintRecommendations(recommendations)
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "kubernetes (High)")
	assert.Contains(t, output, "terraform (Medium)")
}

func TestPrintRecommendations_NoneFound(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(nil)

	assert.Contains(t, buf.String(), "NO GAPS FOUND")
}

func TestPrintJobSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.JobSuggestionResult{
		ResumeFileName: "frontend.pdf",
		Recommendations: []types.JobRecommendation{
			{
				JobTitle:          "Frontend Engineer",
				MatchScore:        62,
				MatchedSkills:     []string{"javascript", "react"},
				MissingCoreSkills: []string{"html", "css"},
			},
		},
	}

	p.PrintJobSuggestions(result)
	output := buf.String()

	assert.Contains(t, output, "JOB SUGGESTIONS")
	assert.Contains(t, output, "frontend.pdf")
	assert.Contains(t, output, "#1  Frontend Engineer")
	assert.Contains(t, output, "Score: 62/100")
	assert.Contains(t, output, "javascript, react")
	assert.Contains(t, output, "html, css")
}

func TestPrintJobSuggestions_Fallback(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.JobSuggestionResult{
		ResumeFileName: "Pasted Resume",
		ResumeSummary:  "storytelling, writing, editing",
	}

	p.PrintJobSuggestions(result)
	output := buf.String()

	assert.Contains(t, output, "No matching roles found.")
	assert.Contains(t, output, "storytelling")
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		// Box borders are drawn with multi-byte runes, so compare runes.
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
