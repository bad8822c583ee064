package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/types"
)

func TestLoadMergedConfig_EmptyPath(t *testing.T) {
	cfg, err := loadMergedConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 0.55, cfg.ConfidenceThreshold)
	assert.Equal(t, 0.4, cfg.WeightedWeight)
}

func TestLoadMergedConfig_FileOverrides(t *testing.T) {
	content := `{"port": 9090, "confidence_threshold": 0.7}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadMergedConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 0.7, cfg.ConfidenceThreshold)
	// Unset values fall back to defaults
	assert.Equal(t, 0.8, cfg.FuzzyThreshold)
	assert.Equal(t, 0.6, cfg.WeakMatchThreshold)
}

func TestLoadMergedConfig_BadWeights(t *testing.T) {
	content := `{"weighted_weight": 0.9, "f1_weight": 0.9, "experience_weight": 0.1, "category_weight": 0.1}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := loadMergedConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "score weights must sum to 1")
}

func TestLoadMergedConfig_MissingFile(t *testing.T) {
	_, err := loadMergedConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestBuildEngine(t *testing.T) {
	cfg, err := loadMergedConfig("")
	require.NoError(t, err)

	engine, err := buildEngine(cfg)
	require.NoError(t, err)
	require.NotNil(t, engine)

	result, err := engine.Suggest("Python and SQL developer.", "resume.txt")
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
}

func TestWriteJSON_File(t *testing.T) {
	record := &types.AnalysisRecord{ID: "test-id", Timestamp: "2026-01-01T00:00:00Z"}
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeJSON(record, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed types.AnalysisRecord
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "test-id", parsed.ID)
}
