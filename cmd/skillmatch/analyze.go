package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/extract"
	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/jonathan/skillmatch/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long: `Extracts skills from a resume and a job description, scores how well
they match, and reports the skill gaps and recommendations.

Both inputs are files; .txt, .md, .pdf, and .docx are supported.
Configuration can be loaded from a JSON file using --config.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeJob        string
	analyzeJobTitle   string
	analyzeOutput     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "jd", "j", "", "Path to job description file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobTitle, "job-title", "", "Job title to record with the analysis")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the analysis JSON to a file instead of stdout")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted report breakdown")

	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	resumeText, err := extract.Text(analyzeResume)
	if err != nil {
		return err
	}
	jobText, err := extract.Text(analyzeJob)
	if err != nil {
		return err
	}

	result, err := engine.CalculateMatchScore(context.Background(), resumeText, jobText)
	if err != nil {
		return err
	}

	record := &types.AnalysisRecord{
		ID:             uuid.NewString(),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		ResumeFileName: filepath.Base(analyzeResume),
		JobTitle:       analyzeJobTitle,
		MatchResult:    *result,
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchResult(result)
		printer.PrintComparison(result.Comparison)
		printer.PrintRecommendations(result.Recommendations)
	}

	return writeJSON(record, analyzeOutput)
}

// writeJSON marshals v with indentation and writes it to path, or to
// stdout when path is empty.
func writeJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Wrote analysis to %s\n", path)
	return nil
}
