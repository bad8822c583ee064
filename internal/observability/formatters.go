// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a summary of the skills extracted from one text blob.
func (p *Printer) PrintProfile(title string, profile *types.SkillProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d\n", profile.TotalSkills))
	sb.WriteString(fmt.Sprintf("Experience:   %d years (%s)\n", profile.Experience.TotalYears, profile.Experience.Level))

	if len(profile.TopCategories) > 0 {
		sb.WriteString("\nTop Categories:\n")
		for _, share := range profile.TopCategories {
			sb.WriteString(fmt.Sprintf("  • %s: %d (%d%%)\n", share.Category, share.Count, share.Percentage))
		}
	}

	if len(profile.DomainTerms) > 0 {
		terms := strings.Join(profile.DomainTerms, ", ")
		if len(terms) > 40 {
			terms = terms[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nDomain terms: %s\n", terms))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the score breakdown and skill partition.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score: %d/100\n\n", result.OverallScore))

	scores := result.DetailedScores
	sb.WriteString(fmt.Sprintf("Weighted:    %3d    Skill Match: %3d\n", scores.WeightedScore, scores.SkillMatch))
	sb.WriteString(fmt.Sprintf("F1 Score:    %3d    Precision:   %3d\n", scores.F1Score, scores.Precision))
	sb.WriteString(fmt.Sprintf("Experience:  %3d    Recall:      %3d\n", scores.ExperienceMatch, scores.Recall))
	sb.WriteString(fmt.Sprintf("Category:    %3d\n", scores.CategoryMatch))

	writeSkillList(&sb, "Matched", result.MatchedSkills)
	writeSkillList(&sb, "Missing", result.MissingSkills)
	writeSkillList(&sb, "Extra", result.ExtraSkills)

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs the per-skill comparison table rows.
func (p *Printer) PrintComparison(rows []types.ComparisonRow) {
	if len(rows) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compared %d skill pairs:\n\n", len(rows)))

	count := min(len(rows), maxItemsToShow)
	for i := 0; i < count; i++ {
		row := rows[i]
		resumeSkill := "—"
		if row.ResumeSkill != nil {
			resumeSkill = *row.ResumeSkill
		}
		sb.WriteString(fmt.Sprintf("%s  %s → %s\n", matchMark(row.MatchType), resumeSkill, row.JobSkill))
		sb.WriteString(fmt.Sprintf("   %.2f  %s  %s\n", row.SimilarityScore, row.Priority, row.Category))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(rows) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more rows", len(rows)-maxItemsToShow))
	}

	p.printBox("SKILL COMPARISON", sb.String())
}

// PrintRecommendations outputs the ranked improvement suggestions.
func (p *Printer) PrintRecommendations(recommendations []types.Recommendation) {
	if len(recommendations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO GAPS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d recommendations:\n\n", len(recommendations)))

	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		reason := rec.Reason
		if len(reason) > 45 {
			reason = reason[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", rec.Skill, rec.Priority))
		sb.WriteString(fmt.Sprintf("  %s\n", reason))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recommendations)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintJobSuggestions outputs the ranked job-archetype fits for a resume.
func (p *Printer) PrintJobSuggestions(result *types.JobSuggestionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume: %s\n\n", result.ResumeFileName))

	if len(result.Recommendations) == 0 {
		summary := result.ResumeSummary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString("No matching roles found.\n")
		sb.WriteString(fmt.Sprintf("Resume themes: %s", summary))
		p.printBox("JOB SUGGESTIONS", sb.String())
		return
	}

	count := min(len(result.Recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := result.Recommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.JobTitle))
		sb.WriteString(fmt.Sprintf("    Score: %d/100\n", rec.MatchScore))
		if len(rec.MatchedSkills) > 0 {
			skills := strings.Join(rec.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if len(rec.MissingCoreSkills) > 0 {
			missing := strings.Join(rec.MissingCoreSkills, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("JOB SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// writeSkillList appends a labeled, truncated skill list section.
func writeSkillList(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("\n%s (%d):\n", label, len(skills)))
	count := min(len(skills), maxItemsToShow)
	joined := strings.Join(skills[:count], ", ")
	if len(joined) > 50 {
		joined = joined[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("  %s\n", joined))
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
}

func matchMark(matchType string) string {
	switch matchType {
	case types.MatchTypeExact:
		return "✓"
	case types.MatchTypeWeak:
		return "~"
	default:
		return "✗"
	}
}
