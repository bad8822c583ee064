package extractor

import (
	"strings"
)

// Additive confidence signal weights. Each strategy contributes a fixed
// amount and the total is capped at 1.0.
const (
	substringAliasSignal     = 0.45
	substringCanonicalSignal = 0.1
	boundaryAliasSignal      = 0.25
	boundaryCanonicalSignal  = 0.1
	contextSignal            = 0.15

	aliasFreqStep         = 0.08
	aliasFreqCap          = 0.2
	canonicalFreqStep     = 0.05
	canonicalFreqCap      = 0.15
)

// confidence scores how strongly the text supports a skill matched via
// the given alias. Signals stack: containment, boundary-delimited
// occurrence, an experience-flavored context phrase, and repetition.
func (e *Extractor) confidence(alias, canonical, textLower string) float64 {
	aliasLower := strings.ToLower(alias)
	canonicalLower := strings.ToLower(canonical)
	score := 0.0

	if strings.Contains(textLower, aliasLower) {
		score += substringAliasSignal
	}
	if aliasLower != canonicalLower && strings.Contains(textLower, canonicalLower) {
		score += substringCanonicalSignal
	}

	if e.boundaryMatch(aliasLower, textLower) {
		score += boundaryAliasSignal
	}
	if aliasLower != canonicalLower && e.boundaryMatch(canonicalLower, textLower) {
		score += boundaryCanonicalSignal
	}

	if hasContextPhrase(aliasLower, textLower) {
		score += contextSignal
	}

	score += frequencyBonus(textLower, aliasLower, aliasFreqStep, aliasFreqCap)
	if aliasLower != canonicalLower {
		score += frequencyBonus(textLower, canonicalLower, canonicalFreqStep, canonicalFreqCap)
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// boundaryMatch checks for a boundary-delimited occurrence, reusing the
// precompiled alias patterns where possible. Canonical names that are not
// themselves aliases (display names with casing) get a one-off pattern.
func (e *Extractor) boundaryMatch(term, textLower string) bool {
	if p, ok := e.wordPatterns[term]; ok {
		return p.MatchString(textLower)
	}
	return compileWordPattern(term).MatchString(textLower)
}

// contextPhrases pair a term with experience language on the same line.
// Only the first hit counts.
var contextPhrases = []struct {
	prefix string
	suffix string
}{
	{prefix: "", suffix: "experience"},
	{prefix: "experience", suffix: ""},
	{prefix: "", suffix: "year"},
	{prefix: "proficient", suffix: ""},
	{prefix: "expert", suffix: ""},
}

func hasContextPhrase(term, textLower string) bool {
	for _, phrase := range contextPhrases {
		first, second := term, phrase.suffix
		if phrase.prefix != "" {
			first, second = phrase.prefix, term
		}
		if followsOnLine(textLower, first, second) {
			return true
		}
	}
	return false
}

// followsOnLine reports whether second appears after first within any
// single line of the text.
func followsOnLine(textLower, first, second string) bool {
	for _, line := range strings.Split(textLower, "\n") {
		idx := strings.Index(line, first)
		if idx == -1 {
			continue
		}
		if strings.Contains(line[idx+len(first):], second) {
			return true
		}
	}
	return false
}

// frequencyBonus rewards repetition: step per occurrence, capped.
func frequencyBonus(textLower, term string, step, limit float64) float64 {
	bonus := float64(strings.Count(textLower, term)) * step
	if bonus > limit {
		return limit
	}
	return bonus
}
