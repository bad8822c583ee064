package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/extract"
	"github.com/jonathan/skillmatch/internal/observability"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest job roles that fit a resume",
	Long: `Extracts skills from a resume and ranks common job archetypes by how
well the resume covers their core and complementary skills.`,
	RunE: runSuggest,
}

var (
	suggestConfigPath string
	suggestResume     string
	suggestOutput     string
	suggestVerbose    bool
)

func init() {
	suggestCmd.Flags().StringVar(&suggestConfigPath, "config", "", "Path to config.json file")
	suggestCmd.Flags().StringVarP(&suggestResume, "resume", "r", "", "Path to resume file (required)")
	suggestCmd.Flags().StringVarP(&suggestOutput, "output", "o", "", "Write the suggestion JSON to a file instead of stdout")
	suggestCmd.Flags().BoolVarP(&suggestVerbose, "verbose", "v", false, "Print a formatted report breakdown")

	_ = suggestCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(suggestConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = suggestVerbose
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	resumeText, err := extract.Text(suggestResume)
	if err != nil {
		return err
	}

	result, err := engine.Suggest(resumeText, filepath.Base(suggestResume))
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintJobSuggestions(result)
	}

	return writeJSON(result, suggestOutput)
}
