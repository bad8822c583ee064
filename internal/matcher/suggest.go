package matcher

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillmatch/internal/types"
)

// ErrMissingResume is returned when the suggestion input has no resume
// text. The HTTP layer maps it to a 400 response.
var ErrMissingResume = errors.New("resume text is required")

const (
	coreSkillWeight          = 0.75
	complementarySkillWeight = 0.25

	maxJobSuggestions = 5
	maxFallbackWords  = 10
	summarySkillCount = 12

	// DefaultResumeFileName labels suggestions for text pasted straight
	// into the API rather than uploaded as a file.
	DefaultResumeFileName = "Pasted Resume"
)

// jobProfile is one archetype in the fixed catalog the suggester scores
// resumes against.
type jobProfile struct {
	title               string
	summary             string
	coreSkills          []string
	complementarySkills []string
}

var jobProfiles = []jobProfile{
	{
		title:               "Frontend Engineer",
		summary:             "Build engaging, accessible, and performant user interfaces.",
		coreSkills:          []string{"javascript", "typescript", "react", "html", "css", "tailwind"},
		complementarySkills: []string{"next.js", "redux", "testing", "jest", "cypress", "ux design"},
	},
	{
		title:               "Backend Engineer",
		summary:             "Design scalable APIs, services, and data pipelines.",
		coreSkills:          []string{"node.js", "express", "python", "java", "sql", "restful api"},
		complementarySkills: []string{"microservices", "docker", "kubernetes", "aws", "graphql", "redis"},
	},
	{
		title:               "Full Stack Developer",
		summary:             "Own features end-to-end across frontend and backend layers.",
		coreSkills:          []string{"javascript", "typescript", "react", "node.js", "express", "sql"},
		complementarySkills: []string{"next.js", "graphql", "docker", "aws", "testing", "tailwind"},
	},
	{
		title:               "Data Scientist",
		summary:             "Leverage statistical models to uncover insights and drive business decisions.",
		coreSkills:          []string{"python", "pandas", "numpy", "scikit-learn", "data analysis", "machine learning"},
		complementarySkills: []string{"tensorflow", "pytorch", "nlp", "computer vision", "sql", "power bi"},
	},
	{
		title:               "Machine Learning Engineer",
		summary:             "Productionize ML models with robust pipelines and monitoring.",
		coreSkills:          []string{"python", "tensorflow", "pytorch", "ml", "model deployment", "docker"},
		complementarySkills: []string{"mlops", "kubernetes", "aws", "feature engineering", "monitoring", "data pipelines"},
	},
	{
		title:               "DevOps Engineer",
		summary:             "Automate infrastructure, CI/CD, and observability capabilities.",
		coreSkills:          []string{"devops", "ci/cd", "docker", "kubernetes", "aws", "terraform"},
		complementarySkills: []string{"ansible", "monitoring", "logging", "security", "sre", "scripting"},
	},
	{
		title:               "Product Manager",
		summary:             "Translate customer needs into product strategy and roadmaps.",
		coreSkills:          []string{"product management", "stakeholder management", "roadmap", "agile", "user research", "analytics"},
		complementarySkills: []string{"market research", "strategy", "data analysis", "communication", "presentation", "kpi"},
	},
	{
		title:               "UI/UX Designer",
		summary:             "Craft intuitive digital experiences through research and design systems.",
		coreSkills:          []string{"ux design", "ui design", "wireframing", "prototyping", "figma", "user research"},
		complementarySkills: []string{"design systems", "accessibility", "usability testing", "visual design", "interaction design", "communication"},
	},
	{
		title:               "Data Engineer",
		summary:             "Develop resilient data platforms powering analytics and ML workloads.",
		coreSkills:          []string{"python", "sql", "spark", "hadoop", "data pipelines", "etl"},
		complementarySkills: []string{"aws", "kafka", "airflow", "data warehousing", "scala", "dbt"},
	},
	{
		title:               "Security Engineer",
		summary:             "Protect systems through secure architecture, testing, and monitoring.",
		coreSkills:          []string{"security", "cybersecurity", "network security", "encryption", "vulnerability assessment", "penetration testing"},
		complementarySkills: []string{"aws", "scripting", "incident response", "siem", "compliance", "risk management"},
	},
}

var fallbackWordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

// Suggest ranks the job archetypes against the skills found in a resume.
// When no taxonomy skill matches at all, the most frequent long words in
// the text stand in so the caller still gets a ranked answer.
func (m *Engine) Suggest(resumeText, resumeFileName string) (*types.JobSuggestionResult, error) {
	if isBlank(resumeText) {
		return nil, ErrMissingResume
	}
	if resumeFileName == "" {
		resumeFileName = DefaultResumeFileName
	}

	skills := m.extractor.AliasHits(resumeText)
	if len(skills) == 0 {
		skills = topFallbackWords(resumeText, skills)
	}

	return &types.JobSuggestionResult{
		ID:              uuid.NewString(),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		ResumeFileName:  resumeFileName,
		ResumeSummary:   summarize(skills),
		Recommendations: m.scoreJobFit(skills),
	}, nil
}

// scoreJobFit scores every archetype: core coverage dominates at 75%,
// complementary coverage fills the rest. Archetypes with no overlap are
// dropped and the rest are ranked, top five.
func (m *Engine) scoreJobFit(resumeSkills []string) []types.JobRecommendation {
	raw := make(map[string]bool, len(resumeSkills))
	canonical := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		raw[strings.ToLower(skill)] = true
		if c, ok := m.index.Resolve(skill); ok {
			canonical[c] = true
		}
	}

	has := func(skill string) bool {
		if raw[strings.ToLower(skill)] {
			return true
		}
		if c, ok := m.index.Resolve(skill); ok {
			return canonical[c]
		}
		return false
	}

	recs := []types.JobRecommendation{}
	for _, profile := range jobProfiles {
		var coreMatches, missingCore, complementaryMatches []string
		for _, skill := range profile.coreSkills {
			if has(skill) {
				coreMatches = append(coreMatches, skill)
			} else {
				missingCore = append(missingCore, skill)
			}
		}
		for _, skill := range profile.complementarySkills {
			if has(skill) {
				complementaryMatches = append(complementaryMatches, skill)
			}
		}

		coreScore := ratio(len(coreMatches), len(profile.coreSkills))
		complementaryScore := ratio(len(complementaryMatches), len(profile.complementarySkills))
		blended := toPercent(coreScore*coreSkillWeight + complementaryScore*complementarySkillWeight)

		matched := append([]string{}, coreMatches...)
		matched = append(matched, complementaryMatches...)

		if blended == 0 && len(matched) == 0 {
			continue
		}
		recs = append(recs, types.JobRecommendation{
			JobTitle:            profile.title,
			MatchScore:          blended,
			MatchedSkills:       matched,
			MissingCoreSkills:   missingCore,
			ComplementarySkills: complementaryMatches,
			Summary:             profile.summary,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	if len(recs) > maxJobSuggestions {
		recs = recs[:maxJobSuggestions]
	}
	return recs
}

// topFallbackWords returns the most frequent words of four letters or
// more, skipping anything already recognized as a skill.
func topFallbackWords(text string, knownSkills []string) []string {
	known := make(map[string]bool, len(knownSkills))
	for _, skill := range knownSkills {
		known[skill] = true
	}

	counts := make(map[string]int)
	var order []string
	for _, word := range fallbackWordPattern.FindAllString(strings.ToLower(text), -1) {
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	words := []string{}
	for _, word := range order {
		if len(word) <= 3 || known[word] {
			continue
		}
		words = append(words, word)
		if len(words) == maxFallbackWords {
			break
		}
	}
	return words
}

func summarize(skills []string) string {
	if len(skills) > summarySkillCount {
		skills = skills[:summarySkillCount]
	}
	return strings.Join(skills, ", ")
}
