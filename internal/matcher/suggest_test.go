package matcher

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestFrontendResume(t *testing.T) {
	m := newTestEngine(t)

	result, err := m.Suggest("JavaScript, TypeScript, React and styling with Tailwind.", "frontend.txt")
	require.NoError(t, err)

	assert.Equal(t, "frontend.txt", result.ResumeFileName)
	assert.NotEmpty(t, result.ID)
	_, parseErr := time.Parse(time.RFC3339, result.Timestamp)
	assert.NoError(t, parseErr)

	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, "Frontend Engineer", result.Recommendations[0].JobTitle)
	assert.LessOrEqual(t, len(result.Recommendations), 5)

	top := result.Recommendations[0]
	assert.Contains(t, top.MatchedSkills, "javascript")
	assert.Contains(t, top.MatchedSkills, "react")
	assert.Contains(t, top.MissingCoreSkills, "html")
	assert.Positive(t, top.MatchScore)
	assert.LessOrEqual(t, top.MatchScore, 100)
}

func TestSuggestSynonymResolvesToArchetypeSkill(t *testing.T) {
	m := newTestEngine(t)

	// "reactjs" is not an archetype skill name, but it resolves to the
	// same canonical skill as "react".
	result, err := m.Suggest("Building SPAs with reactjs and javascript.", "")
	require.NoError(t, err)

	require.NotEmpty(t, result.Recommendations)
	found := false
	for _, rec := range result.Recommendations {
		for _, skill := range rec.MatchedSkills {
			if skill == "react" {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestSuggestScoresAreOrdered(t *testing.T) {
	m := newTestEngine(t)

	result, err := m.Suggest("Python, pandas, numpy, scikit-learn, machine learning, SQL, AWS, Docker.", "ds.txt")
	require.NoError(t, err)

	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, "Data Scientist", result.Recommendations[0].JobTitle)
	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			result.Recommendations[i-1].MatchScore,
			result.Recommendations[i].MatchScore)
	}
}

func TestSuggestFallbackWords(t *testing.T) {
	m := newTestEngine(t)

	result, err := m.Suggest("Passionate storyteller seeking adventure opportunities everywhere.", "")
	require.NoError(t, err)

	assert.Equal(t, DefaultResumeFileName, result.ResumeFileName)
	assert.Empty(t, result.Recommendations)
	assert.Contains(t, result.ResumeSummary, "passionate")
	assert.Contains(t, result.ResumeSummary, "storyteller")
}

func TestSuggestMissingResume(t *testing.T) {
	m := newTestEngine(t)

	_, err := m.Suggest("   ", "resume.txt")
	assert.ErrorIs(t, err, ErrMissingResume)
}

func TestTopFallbackWords(t *testing.T) {
	words := topFallbackWords("alpha alpha alpha beta beta gamma ab the", nil)

	require.GreaterOrEqual(t, len(words), 3)
	assert.Equal(t, "alpha", words[0])
	assert.Equal(t, "beta", words[1])
	assert.Equal(t, "gamma", words[2])
	assert.NotContains(t, words, "ab")
	assert.NotContains(t, words, "the")
}

func TestSuggestSummaryCapped(t *testing.T) {
	m := newTestEngine(t)

	text := "Python, JavaScript, TypeScript, React, Angular, Vue, Django, Flask, Spring, Docker, Kubernetes, Terraform, Ansible, Jenkins, AWS, Azure."
	result, err := m.Suggest(text, "many.txt")
	require.NoError(t, err)

	// First 12 recognized skills, comma separated.
	parts := strings.Split(result.ResumeSummary, ", ")
	assert.LessOrEqual(t, len(parts), summarySkillCount)
	assert.NotEmpty(t, parts)
}
