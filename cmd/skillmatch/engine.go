package main

import (
	"fmt"

	"github.com/jonathan/skillmatch/internal/config"
	"github.com/jonathan/skillmatch/internal/extractor"
	"github.com/jonathan/skillmatch/internal/matcher"
	"github.com/jonathan/skillmatch/internal/taxonomy"
)

// loadMergedConfig loads an optional config file and fills the gaps with
// defaults. An empty path yields the defaults unchanged.
func loadMergedConfig(path string) (config.Config, error) {
	cfg := config.Defaults()
	if path == "" {
		return cfg, nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	merged := loaded.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// buildEngine assembles the match engine from configuration.
func buildEngine(cfg config.Config) (*matcher.Engine, error) {
	index, err := taxonomy.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}

	ex := extractor.New(index, extractor.Options{
		ConfidenceThreshold: cfg.ConfidenceThreshold,
		FuzzyThreshold:      cfg.FuzzyThreshold,
	})

	engine := matcher.NewEngine(index, ex, matcher.Options{
		Weights: matcher.Weights{
			Weighted:   cfg.WeightedWeight,
			F1:         cfg.F1Weight,
			Experience: cfg.ExperienceWeight,
			Category:   cfg.CategoryWeight,
		},
		WeakMatchThreshold: cfg.WeakMatchThreshold,
	})
	return engine, nil
}
