// Package main provides the entry point for the skillmatch CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillmatch",
	Short: "Taxonomy-driven resume and job description matching",
	Long:  "Skillmatch extracts skills from resumes and job descriptions using a curated taxonomy, scores how well they match, and suggests roles a resume fits.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
