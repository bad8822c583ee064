package extractor

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/taxonomy"
	"github.com/jonathan/skillmatch/internal/types"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	ix, err := taxonomy.Load()
	require.NoError(t, err)
	return New(ix, Options{})
}

func TestExtractBasicProfile(t *testing.T) {
	e := newTestExtractor(t)

	text := "Experienced Python developer with 5 years of experience.\n" +
		"Built services in Go and deployed on Kubernetes with Docker."
	profile := e.Extract(text)

	require.Contains(t, profile.Skills, "python")
	require.Contains(t, profile.Skills, "go")
	require.Contains(t, profile.Skills, "kubernetes")
	require.Contains(t, profile.Skills, "docker")
	assert.Equal(t, len(profile.Skills), profile.TotalSkills)

	python := profile.Skills["python"]
	assert.Equal(t, "Technical / Analytical", python.Category)
	assert.Contains(t, python.MatchedVariants, "python")
	assert.Greater(t, python.Confidence, 0.55)
	assert.LessOrEqual(t, python.Confidence, 1.0)

	assert.Equal(t, 5, profile.Experience.TotalYears)
	assert.Equal(t, types.LevelMid, profile.Experience.Level)
}

func TestExtractSymbolAliases(t *testing.T) {
	e := newTestExtractor(t)

	profile := e.Extract("Strong C++ and C# background.")

	assert.Contains(t, profile.Skills, "c++")
	assert.Contains(t, profile.Skills, "c#")
}

func TestExtractShortAliasNoiseGuard(t *testing.T) {
	e := newTestExtractor(t)

	// "r" and "go" occur only inside longer words here; short aliases
	// need a boundary-delimited occurrence to count.
	profile := e.Extract("I program for fun and argot is my hobby.")

	assert.Empty(t, profile.Skills)
	assert.Zero(t, profile.TotalSkills)
}

func TestExtractShortAliasOnBoundary(t *testing.T) {
	e := newTestExtractor(t)

	profile := e.Extract("Shipped production systems in Go.")

	assert.Contains(t, profile.Skills, "go")
}

func TestFuzzyMatchStrategy(t *testing.T) {
	e := newTestExtractor(t)

	words := strings.Fields("kubernets")
	assert.True(t, e.matches("kubernetes", "kubernets", words))

	// A fuzzy hit alone carries no confidence signals, so a typo with no
	// other support stays below the acceptance threshold.
	profile := e.Extract("Worked with Kubernets.")
	assert.NotContains(t, profile.Skills, "kubernetes")
}

func TestConfidenceSignals(t *testing.T) {
	e := newTestExtractor(t)

	// Containment (0.45) + boundary (0.25) + single occurrence (0.08).
	got := e.confidence("python", "python", "python")
	assert.InDelta(t, 0.78, got, 1e-9)

	// Adding experience context on the same line contributes 0.15.
	got = e.confidence("python", "python", "python experience")
	assert.InDelta(t, 0.93, got, 1e-9)

	// Total is capped at 1.0 even when every signal fires.
	got = e.confidence("js", "javascript", "expert js and javascript experience, js, javascript, js")
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestConfidenceContextPhraseSpansSingleLineOnly(t *testing.T) {
	e := newTestExtractor(t)

	sameLine := e.confidence("terraform", "terraform", "terraform experience")
	splitLines := e.confidence("terraform", "terraform", "terraform\nexperience")
	assert.Greater(t, sameLine, splitLines)
	assert.InDelta(t, contextSignal, sameLine-splitLines, 1e-9)
}

func TestExtractContextSnippet(t *testing.T) {
	e := newTestExtractor(t)

	profile := e.Extract("We love Python here")
	require.Contains(t, profile.Skills, "python")
	assert.Equal(t, "We love Python here", profile.Skills["python"].Context)

	long := strings.Repeat("x", 100) + " Python " + strings.Repeat("y", 100)
	profile = e.Extract(long)
	require.Contains(t, profile.Skills, "python")
	ctx := profile.Skills["python"].Context
	assert.Contains(t, ctx, "Python")
	assert.LessOrEqual(t, len(ctx), len("python")+2*contextWindow+2)
}

func TestExtractContextSnippetMultibyteText(t *testing.T) {
	e := newTestExtractor(t)

	// Two-byte runes on both sides put the window edges mid-rune.
	long := strings.Repeat("é", 60) + " Python " + strings.Repeat("é", 60)
	profile := e.Extract(long)
	require.Contains(t, profile.Skills, "python")

	ctx := profile.Skills["python"].Context
	assert.True(t, utf8.ValidString(ctx))
	assert.Contains(t, ctx, "Python")
}

func TestExtractCategoriesAndDomainTerms(t *testing.T) {
	e := newTestExtractor(t)

	text := "Python, Docker, AWS, leadership and communication skills.\n" +
		"Financial modelling experience."
	profile := e.Extract(text)

	require.Contains(t, profile.Skills, "Financial Modelling")
	assert.Contains(t, profile.DomainTerms, "Financial Modelling")

	assert.Contains(t, profile.Categories["Technical / Analytical"], "python")
	assert.Contains(t, profile.Categories["Business / Management"], "Financial Modelling")
	assert.Contains(t, profile.Categories["Communication / Soft Skills"], "leadership")

	require.NotEmpty(t, profile.TopCategories)
	assert.Equal(t, "Technical / Analytical", profile.TopCategories[0].Category)
	assert.LessOrEqual(t, len(profile.TopCategories), 3)

	total := 0
	for _, share := range profile.TopCategories {
		assert.Positive(t, share.Percentage)
		total += share.Count
	}
	assert.LessOrEqual(t, total, profile.TotalSkills)
}

func TestExtractRelatedSuggestions(t *testing.T) {
	e := newTestExtractor(t)

	profile := e.Extract("Docker and AWS in production.")

	require.Contains(t, profile.Skills, "docker")
	assert.Contains(t, profile.Skills["docker"].RelatedSkills, "kubernetes")
	assert.LessOrEqual(t, len(profile.Skills["docker"].RelatedSkills), 5)

	assert.Contains(t, profile.RelatedSuggestions, "kubernetes")
	assert.LessOrEqual(t, len(profile.RelatedSuggestions), 10)
	for _, suggestion := range profile.RelatedSuggestions {
		assert.NotContains(t, profile.Skills, suggestion)
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := newTestExtractor(t)

	profile := e.Extract("")

	assert.Empty(t, profile.Skills)
	assert.Zero(t, profile.TotalSkills)
	assert.Empty(t, profile.TopCategories)
	assert.NotNil(t, profile.RelatedSuggestions)
	assert.NotNil(t, profile.DomainTerms)
	assert.Equal(t, types.LevelEntry, profile.Experience.Level)
}

func TestExtractIsDeterministic(t *testing.T) {
	e := newTestExtractor(t)

	text := "Senior engineer: Python, JavaScript, React, AWS, Docker, Kubernetes, PostgreSQL. 8 years of experience."
	a := e.Extract(text)
	b := e.Extract(text)

	assert.Equal(t, a, b)
}
