package matcher

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/types"
)

func TestComparisonViewWeakMatch(t *testing.T) {
	m := newTestEngine(t)

	rows, err := m.ComparisonView(context.Background(),
		"Angular expertise.",
		"JavaScript required.")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	row := rows[0]
	require.NotNil(t, row.ResumeSkill)
	assert.Equal(t, "angular", *row.ResumeSkill)
	assert.Equal(t, "javascript", row.JobSkill)
	assert.Equal(t, types.MatchTypeWeak, row.MatchType)
	assert.InDelta(t, 0.6, row.SimilarityScore, 1e-9)
	assert.Equal(t, types.PriorityRequired, row.Priority)
}

func TestWeakMatchesDoNotAffectScore(t *testing.T) {
	m := newTestEngine(t)

	result, err := m.CalculateMatchScore(context.Background(),
		"Angular expertise.",
		"JavaScript required.")
	require.NoError(t, err)

	// Both texts land in the same category and the job names no years, so
	// only those two components score. The weak match contributes nothing.
	assert.Equal(t, 30, result.OverallScore)
	assert.Zero(t, result.DetailedScores.WeightedScore)
	assert.Zero(t, result.DetailedScores.F1Score)

	require.NotEmpty(t, result.Comparison)
	assert.Equal(t, types.MatchTypeWeak, result.Comparison[0].MatchType)
}

func TestComparisonRowsSortedBySimilarity(t *testing.T) {
	m := newTestEngine(t)

	// Docker matches exactly; Angular only weakly reaches JavaScript.
	rows, err := m.ComparisonView(context.Background(),
		"Angular and Docker.",
		"JavaScript and Docker.")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rows), 2)
	assert.True(t, sort.SliceIsSorted(rows, func(i, j int) bool {
		return rows[i].SimilarityScore > rows[j].SimilarityScore
	}))
	assert.Equal(t, types.MatchTypeExact, rows[0].MatchType)
	assert.Equal(t, "docker", rows[0].JobSkill)
}

func TestWeakMatchBelowThresholdExcluded(t *testing.T) {
	m := newTestEngine(t)

	// typescript relates to javascript at 0.58, under the 0.6 cutoff.
	rows, err := m.ComparisonView(context.Background(),
		"TypeScript projects.",
		"JavaScript required.")
	require.NoError(t, err)

	for _, row := range rows {
		assert.NotEqual(t, types.MatchTypeWeak, row.MatchType)
	}
}

func TestFallbackComparisonRows(t *testing.T) {
	rows := fallbackComparison([]string{"python"}, []string{"docker", "negotiation"})

	require.Len(t, rows, 3)

	require.NotNil(t, rows[0].ResumeSkill)
	assert.Equal(t, "python", rows[0].JobSkill)
	assert.Equal(t, types.MatchTypeExact, rows[0].MatchType)
	assert.Equal(t, "Programming Languages", rows[0].Category)

	assert.Nil(t, rows[1].ResumeSkill)
	assert.Equal(t, types.MatchTypeMissing, rows[1].MatchType)
	assert.Equal(t, "Cloud & DevOps", rows[1].Category)
	assert.Zero(t, rows[1].SimilarityScore)

	assert.Equal(t, "Soft Skills", rows[2].Category)
	assert.Equal(t, types.PriorityRequired, rows[2].Priority)
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		skill string
		want  string
	}{
		{"python", "Programming Languages"},
		{"postgresql", "Databases"},
		{"kubernetes", "Cloud & DevOps"},
		{"machine learning", "Data & AI"},
		{"communication", "Soft Skills"},
		{"sales", "Business"},
		{"mongodb", "Databases"},
		{"budgeting", "General"},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			assert.Equal(t, tt.want, inferCategory(tt.skill))
		})
	}
}

func TestRowPriorityThreshold(t *testing.T) {
	assert.Equal(t, types.PriorityRequired, rowPriority(0.71))
	assert.Equal(t, types.PriorityMentioned, rowPriority(0.7))
	assert.Equal(t, types.PriorityMentioned, rowPriority(0.4))
}
