// Package matcher scores a resume against a job description and produces
// the comparison, gap, and recommendation views derived from the score.
package matcher

import (
	"context"
	"errors"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillmatch/internal/extractor"
	"github.com/jonathan/skillmatch/internal/taxonomy"
	"github.com/jonathan/skillmatch/internal/types"
)

// ErrMissingInput is returned when the resume or job description text is
// empty. The HTTP layer maps it to a 400 response.
var ErrMissingInput = errors.New("both resume and job description are required")

// DefaultWeakMatchThreshold is the minimum graph edge weight for a
// related-skill pair to surface as a WEAK MATCH comparison row.
const DefaultWeakMatchThreshold = 0.6

// Weights blend the component scores into the overall score.
type Weights struct {
	Weighted   float64
	F1         float64
	Experience float64
	Category   float64
}

// DefaultWeights is the standard 40/30/20/10 blend.
var DefaultWeights = Weights{Weighted: 0.4, F1: 0.3, Experience: 0.2, Category: 0.1}

// Options tunes an Engine. Zero values fall back to the defaults.
type Options struct {
	Weights            Weights
	WeakMatchThreshold float64
}

// Engine wires the extractor and taxonomy graph into the match pipeline.
type Engine struct {
	index              *taxonomy.Index
	extractor          *extractor.Extractor
	weights            Weights
	weakMatchThreshold float64
}

// NewEngine builds a match engine over the given index and extractor.
func NewEngine(index *taxonomy.Index, ex *extractor.Extractor, opts Options) *Engine {
	if opts.Weights == (Weights{}) {
		opts.Weights = DefaultWeights
	}
	if opts.WeakMatchThreshold == 0 {
		opts.WeakMatchThreshold = DefaultWeakMatchThreshold
	}
	return &Engine{
		index:              index,
		extractor:          ex,
		weights:            opts.Weights,
		weakMatchThreshold: opts.WeakMatchThreshold,
	}
}

// CalculateMatchScore extracts both texts and scores the resume against
// the job description. Weak matches inform the comparison view only; no
// score component counts them.
func (m *Engine) CalculateMatchScore(ctx context.Context, resumeText, jobText string) (*types.MatchResult, error) {
	resume, job, err := m.extractBoth(ctx, resumeText, jobText)
	if err != nil {
		return nil, err
	}

	matched, missing, extra := partitionSkills(resume, job)

	jaccard := jaccardSimilarity(resume, job, matched)
	precision := ratio(len(matched), len(resume.Skills))
	recall := ratio(len(matched), len(job.Skills))
	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	weighted := weightedScore(resume, job, matched)
	experience := experienceMatch(resume.Experience, job.Experience)
	category := categoryMatch(resume.Categories, job.Categories)

	overall := weighted*m.weights.Weighted +
		f1*m.weights.F1 +
		experience*m.weights.Experience +
		category*m.weights.Category

	comparison := m.buildComparison(resume, job, matched)
	if len(comparison) == 0 {
		comparison = fallbackComparison(matched, missing)
	}

	gaps := analyzeSkillGaps(missing, job)

	return &types.MatchResult{
		OverallScore: toPercent(overall),
		DetailedScores: types.DetailedScores{
			SkillMatch:      toPercent(jaccard),
			Precision:       toPercent(precision),
			Recall:          toPercent(recall),
			F1Score:         toPercent(f1),
			WeightedScore:   toPercent(weighted),
			ExperienceMatch: toPercent(experience),
			CategoryMatch:   toPercent(category),
		},
		MatchedSkills:      matched,
		MissingSkills:      missing,
		ExtraSkills:        extra,
		SkillGaps:          gaps,
		Recommendations:    m.recommendations(gaps, resume, job),
		Comparison:         comparison,
		DomainTerms:        job.DomainTerms,
		RelatedSuggestions: job.RelatedSuggestions,
	}, nil
}

// ComparisonView returns just the per-skill comparison rows.
func (m *Engine) ComparisonView(ctx context.Context, resumeText, jobText string) ([]types.ComparisonRow, error) {
	resume, job, err := m.extractBoth(ctx, resumeText, jobText)
	if err != nil {
		return nil, err
	}
	matched, _, _ := partitionSkills(resume, job)
	return m.buildComparison(resume, job, matched), nil
}

// extractBoth runs the two extractions concurrently. The extractor is
// read-only after construction, so sharing it across goroutines is safe.
func (m *Engine) extractBoth(ctx context.Context, resumeText, jobText string) (*types.SkillProfile, *types.SkillProfile, error) {
	if isBlank(resumeText) || isBlank(jobText) {
		return nil, nil, ErrMissingInput
	}

	var resume, job *types.SkillProfile
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		resume = m.extractor.Extract(resumeText)
		return nil
	})
	g.Go(func() error {
		job = m.extractor.Extract(jobText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return resume, job, nil
}

// partitionSkills splits the two skill sets into sorted matched, missing,
// and extra lists.
func partitionSkills(resume, job *types.SkillProfile) (matched, missing, extra []string) {
	matched = []string{}
	missing = []string{}
	extra = []string{}

	for _, skill := range sortedSkillNames(job.Skills) {
		if _, ok := resume.Skills[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	for _, skill := range sortedSkillNames(resume.Skills) {
		if _, ok := job.Skills[skill]; !ok {
			extra = append(extra, skill)
		}
	}
	return matched, missing, extra
}

func jaccardSimilarity(resume, job *types.SkillProfile, matched []string) float64 {
	union := len(resume.Skills) + len(job.Skills) - len(matched)
	return ratio(len(matched), union)
}

// weightedScore is the confidence-weighted coverage of the job's skills:
// each job skill contributes its confidence as weight, matched skills earn
// that weight scaled by the resume-side confidence.
func weightedScore(resume, job *types.SkillProfile, matched []string) float64 {
	if len(matched) == 0 {
		return 0
	}

	matchedSet := make(map[string]bool, len(matched))
	for _, skill := range matched {
		matchedSet[skill] = true
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	for _, skill := range sortedSkillNames(job.Skills) {
		importance := job.Skills[skill].Confidence
		totalWeight += importance
		if matchedSet[skill] {
			matchedWeight += importance * resume.Skills[skill].Confidence
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return matchedWeight / totalWeight
}

// experienceMatch compares total years. A job with no stated requirement
// is a full match; otherwise the resume earns the fraction it covers.
func experienceMatch(resume, job types.Experience) float64 {
	if job.TotalYears == 0 {
		return 1.0
	}
	if resume.TotalYears >= job.TotalYears {
		return 1.0
	}
	return float64(resume.TotalYears) / float64(job.TotalYears)
}

// categoryMatch is the fraction of job skill categories the resume covers.
func categoryMatch(resumeCategories, jobCategories map[string][]string) float64 {
	if len(jobCategories) == 0 {
		return 1.0
	}
	covered := 0
	for category := range jobCategories {
		if _, ok := resumeCategories[category]; ok {
			covered++
		}
	}
	return float64(covered) / float64(len(jobCategories))
}

func sortedSkillNames(skills map[string]types.SkillDetail) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func toPercent(v float64) int {
	return int(math.Round(v * 100))
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
