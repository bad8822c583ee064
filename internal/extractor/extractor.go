// Package extractor finds taxonomy skills in free text and scores how
// confidently each one is present.
package extractor

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/jonathan/skillmatch/internal/taxonomy"
	"github.com/jonathan/skillmatch/internal/types"
)

const (
	// DefaultConfidenceThreshold is the score a candidate must exceed to
	// be kept. Just under the level a bare substring hit plus frequency
	// bonus reaches, so containment alone is never enough.
	DefaultConfidenceThreshold = 0.55

	// DefaultFuzzyThreshold is the Sørensen–Dice similarity a word must
	// exceed to count as a fuzzy hit.
	DefaultFuzzyThreshold = 0.8

	// minSubstringAliasLen guards the plain-containment strategy against
	// short aliases. "go" or "r" inside an unrelated word is noise;
	// short aliases must hit on a word boundary instead.
	minSubstringAliasLen = 3

	contextWindow = 50

	maxRelatedPerSkill    = 5
	maxProfileSuggestions = 10
	topCategoryCount      = 3
)

// Options tunes an Extractor. Zero values fall back to the defaults.
type Options struct {
	ConfidenceThreshold float64
	FuzzyThreshold      float64
}

// Extractor matches taxonomy aliases against text. Word-boundary
// patterns for every alias are compiled once at construction.
type Extractor struct {
	index               *taxonomy.Index
	confidenceThreshold float64
	fuzzyThreshold      float64
	dice                *metrics.SorensenDice

	wordPatterns map[string]*regexp.Regexp
}

// New builds an Extractor over the given taxonomy index.
func New(index *taxonomy.Index, opts Options) *Extractor {
	if opts.ConfidenceThreshold == 0 {
		opts.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if opts.FuzzyThreshold == 0 {
		opts.FuzzyThreshold = DefaultFuzzyThreshold
	}

	e := &Extractor{
		index:               index,
		confidenceThreshold: opts.ConfidenceThreshold,
		fuzzyThreshold:      opts.FuzzyThreshold,
		dice:                metrics.NewSorensenDice(),
		wordPatterns:        make(map[string]*regexp.Regexp, len(index.Aliases())),
	}
	for _, alias := range index.Aliases() {
		e.wordPatterns[alias] = compileWordPattern(alias)
	}
	return e
}

// compileWordPattern builds a boundary-delimited pattern for an alias.
// \b breaks on aliases ending in symbols ("c++", "c#"), so boundaries
// are expressed as an explicit non-alphanumeric class instead.
func compileWordPattern(alias string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z0-9])` + regexp.QuoteMeta(alias) + `(?:[^a-z0-9]|$)`)
}

// skillHit accumulates evidence for one canonical skill during a pass.
type skillHit struct {
	confidence   float64
	category     string
	context      string
	contextIndex int
	variants     []string
	related      []taxonomy.RelatedSkill
}

// Extract runs every alias against the text and assembles a skill
// profile: accepted skills with confidence and context, category
// breakdown, experience signals, domain terms, and suggestions.
func (e *Extractor) Extract(text string) *types.SkillProfile {
	textLower := strings.ToLower(text)
	words := strings.Fields(textLower)

	found := make(map[string]*skillHit)
	var foundOrder []string
	categories := make(map[string][]string)
	var categoryOrder []string
	var domainTerms []string
	var suggestionPool []string
	seenSuggestion := make(map[string]bool)

	for _, alias := range e.index.Aliases() {
		if !e.matches(alias, textLower, words) {
			continue
		}
		canonical, ok := e.index.Resolve(alias)
		if !ok {
			continue
		}
		rec, ok := e.index.Lookup(canonical)
		if !ok {
			continue
		}

		confidence := e.confidence(alias, canonical, textLower)
		if confidence <= e.confidenceThreshold {
			continue
		}

		hit, exists := found[canonical]
		if !exists {
			hit = &skillHit{
				category:     rec.Category,
				contextIndex: -1,
				related:      e.index.Related(canonical),
			}
			found[canonical] = hit
			foundOrder = append(foundOrder, canonical)

			if _, seen := categories[rec.Category]; !seen {
				categoryOrder = append(categoryOrder, rec.Category)
			}
			if !containsString(categories[rec.Category], canonical) {
				categories[rec.Category] = append(categories[rec.Category], canonical)
			}
			if rec.IsDomainTerm {
				domainTerms = append(domainTerms, canonical)
			}
			for _, rel := range hit.related {
				if !seenSuggestion[rel.Skill] {
					seenSuggestion[rel.Skill] = true
					suggestionPool = append(suggestionPool, rel.Skill)
				}
			}
		}

		if confidence > hit.confidence {
			hit.confidence = confidence
		}
		hit.variants = append(hit.variants, alias)

		// Context comes from the earliest alias occurrence in the text,
		// preserving the original casing around it.
		if idx := strings.Index(textLower, alias); idx >= 0 {
			if hit.contextIndex == -1 || idx < hit.contextIndex {
				hit.contextIndex = idx
				hit.context = snippet(text, idx, len(alias))
			}
		}
	}

	profile := &types.SkillProfile{
		Skills:             make(map[string]types.SkillDetail, len(found)),
		Categories:         categories,
		Experience:         extractExperience(textLower),
		TotalSkills:        len(found),
		TopCategories:      topCategories(categories, categoryOrder),
		DomainTerms:        domainTerms,
		RelatedSuggestions: []string{},
	}

	for _, canonical := range foundOrder {
		hit := found[canonical]
		profile.Skills[canonical] = types.SkillDetail{
			Confidence:      hit.confidence,
			Category:        hit.category,
			Context:         hit.context,
			MatchedVariants: hit.variants,
			RelatedSkills:   relatedNames(hit.related, found),
		}
	}

	for _, skill := range suggestionPool {
		if _, present := found[skill]; present {
			continue
		}
		profile.RelatedSuggestions = append(profile.RelatedSuggestions, skill)
		if len(profile.RelatedSuggestions) == maxProfileSuggestions {
			break
		}
	}

	if profile.DomainTerms == nil {
		profile.DomainTerms = []string{}
	}
	return profile
}

// AliasHits runs only the word-boundary strategy and returns every alias
// present in the text, in lexicographic order. This is the cheap scan the
// job suggester uses; no confidence scoring is applied.
func (e *Extractor) AliasHits(text string) []string {
	textLower := strings.ToLower(text)
	var hits []string
	for _, alias := range e.index.Aliases() {
		if e.wordPatterns[alias].MatchString(textLower) {
			hits = append(hits, alias)
		}
	}
	return hits
}

// matches reports whether an alias occurs in the text via containment,
// word-boundary, or fuzzy similarity. Containment and fuzzy matching are
// reserved for aliases long enough to be distinctive.
func (e *Extractor) matches(alias, textLower string, words []string) bool {
	if len(alias) > minSubstringAliasLen && strings.Contains(textLower, alias) {
		return true
	}
	if e.wordPatterns[alias].MatchString(textLower) {
		return true
	}
	if len(alias) > minSubstringAliasLen {
		for _, word := range words {
			if strutil.Similarity(alias, word, e.dice) > e.fuzzyThreshold {
				return true
			}
		}
	}
	return false
}

// snippet returns the trimmed window of original-case text around a match.
// Window edges back up to a rune boundary so multibyte text never splits.
func snippet(text string, index, matchLen int) string {
	start := index - contextWindow
	if start < 0 {
		start = 0
	}
	end := index + matchLen + contextWindow
	if end > len(text) {
		end = len(text)
	}
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}
	return strings.TrimSpace(text[start:end])
}

// relatedNames projects graph edges to names, dropping skills already in
// the profile, capped per skill.
func relatedNames(related []taxonomy.RelatedSkill, found map[string]*skillHit) []string {
	names := make([]string, 0, maxRelatedPerSkill)
	for _, rel := range related {
		if _, present := found[rel.Skill]; present {
			continue
		}
		names = append(names, rel.Skill)
		if len(names) == maxRelatedPerSkill {
			break
		}
	}
	return names
}

// topCategories ranks categories by skill count, keeping first-seen order
// between equal counts, and reports each one's share of all found skills.
func topCategories(categories map[string][]string, order []string) []types.CategoryShare {
	shares := make([]types.CategoryShare, 0, len(order))
	total := 0
	for _, category := range order {
		count := len(categories[category])
		total += count
		shares = append(shares, types.CategoryShare{Category: category, Count: count})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Count > shares[j].Count
	})
	if len(shares) > topCategoryCount {
		shares = shares[:topCategoryCount]
	}
	for i := range shares {
		if total > 0 {
			shares[i].Percentage = int(float64(shares[i].Count)/float64(total)*100 + 0.5)
		}
	}
	return shares
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
