// Package types provides type definitions for structured data used throughout the skillmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Match type wire values. These are the strings the original API emitted and
// downstream consumers parse, so they carry spaces rather than underscores.
const (
	MatchTypeExact   = "EXACT MATCH"
	MatchTypeWeak    = "WEAK MATCH"
	MatchTypeMissing = "MISSING"
)

// Comparison row priority tiers.
const (
	PriorityRequired  = "REQUIRED"
	PriorityPreferred = "PREFERRED"
	PriorityMentioned = "MENTIONED"
)

// Experience level classifications.
const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

// SkillDetail describes one skill found in a text blob.
type SkillDetail struct {
	Confidence      float64  `json:"confidence"`
	Category        string   `json:"category"`
	Context         string   `json:"context"`
	MatchedVariants []string `json:"matchedVariants"`
	RelatedSkills   []string `json:"relatedSkills"`
}

// Experience summarizes the years-of-experience signals found in a text blob.
type Experience struct {
	TotalYears      int            `json:"total_years"`
	SkillExperience map[string]int `json:"skill_experience"`
	Level           string         `json:"experience_level"`
}

// CategoryShare is one entry of a profile's top-categories breakdown.
type CategoryShare struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// SkillProfile is the extraction output for one text blob.
// Skills are keyed by canonical skill name.
type SkillProfile struct {
	Skills             map[string]SkillDetail `json:"skills"`
	Categories         map[string][]string    `json:"categories"`
	Experience         Experience             `json:"experience"`
	TotalSkills        int                    `json:"total_skills"`
	TopCategories      []CategoryShare        `json:"top_categories"`
	DomainTerms        []string               `json:"domain_specific_terms"`
	RelatedSuggestions []string               `json:"related_skill_suggestions"`
}

// DetailedScores holds the individual score components, each 0-100.
type DetailedScores struct {
	SkillMatch      int `json:"skill_match"`
	Precision       int `json:"precision"`
	Recall          int `json:"recall"`
	F1Score         int `json:"f1_score"`
	WeightedScore   int `json:"weighted_score"`
	ExperienceMatch int `json:"experience_match"`
	CategoryMatch   int `json:"category_match"`
}

// SkillGap is a job-required skill missing from the resume.
type SkillGap struct {
	Skill      string  `json:"skill"`
	Importance float64 `json:"importance"`
	Category   string  `json:"category"`
	Priority   string  `json:"priority"`
}

// Recommendation is one ranked improvement suggestion.
type Recommendation struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// ComparisonRow is one line of the per-skill comparison table.
// ResumeSkill is nil for MISSING rows.
type ComparisonRow struct {
	ResumeSkill     *string `json:"resumeSkill"`
	JobSkill        string  `json:"jobSkill"`
	MatchType       string  `json:"matchType"`
	SimilarityScore float64 `json:"similarityScore"`
	Category        string  `json:"category"`
	Priority        string  `json:"priority"`
}

// MatchResult is the full output of scoring a resume against a job description.
type MatchResult struct {
	OverallScore       int              `json:"overallScore"`
	DetailedScores     DetailedScores   `json:"detailed_scores"`
	MatchedSkills      []string         `json:"matched_skills"`
	MissingSkills      []string         `json:"missing_skills"`
	ExtraSkills        []string         `json:"extra_skills"`
	SkillGaps          []SkillGap       `json:"skill_gaps"`
	Recommendations    []Recommendation `json:"recommendations"`
	Comparison         []ComparisonRow  `json:"comparison"`
	DomainTerms        []string         `json:"domain_specific_terms"`
	RelatedSuggestions []string         `json:"related_skill_suggestions"`
}

// AnalysisRecord is the envelope stored in history and returned over HTTP.
type AnalysisRecord struct {
	ID             string `json:"id"`
	Timestamp      string `json:"timestamp"`
	ResumeFileName string `json:"resumeFileName,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
	MatchResult
}

// JobRecommendation is one job-archetype fit produced by the suggester.
type JobRecommendation struct {
	JobTitle            string   `json:"jobTitle"`
	MatchScore          int      `json:"matchScore"`
	MatchedSkills       []string `json:"matchedSkills"`
	MissingCoreSkills   []string `json:"missingCoreSkills"`
	ComplementarySkills []string `json:"complementarySkills"`
	Summary             string   `json:"summary"`
}

// JobSuggestionResult is the ranked list of job-archetype fits for a resume.
type JobSuggestionResult struct {
	ID              string              `json:"id"`
	Timestamp       string              `json:"timestamp"`
	ResumeFileName  string              `json:"resumeFileName"`
	ResumeSummary   string              `json:"resumeSummary"`
	Recommendations []JobRecommendation `json:"recommendations"`
}
