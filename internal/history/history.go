// Package history provides PostgreSQL persistence for analysis and
// suggestion results. The store is optional; the server runs without it
// when no database URL is configured.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/skillmatch/internal/types"
)

// ErrNotFound is returned when a delete targets a record that does not
// exist. The HTTP layer maps it to a 404 response.
var ErrNotFound = errors.New("not found")

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Init creates the history tables if they do not exist.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			resume_file_name TEXT,
			job_title TEXT,
			overall_score INT NOT NULL,
			content JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS suggestions (
			id UUID PRIMARY KEY,
			resume_file_name TEXT,
			content JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create history tables: %w", err)
	}
	return nil
}

// SaveAnalysis stores a completed analysis record
func (s *Store) SaveAnalysis(ctx context.Context, record *types.AnalysisRecord) error {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return fmt.Errorf("invalid analysis id %q: %w", record.ID, err)
	}

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (id, resume_file_name, job_title, overall_score, content)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET content = $5, created_at = NOW()`,
		id, record.ResumeFileName, record.JobTitle, record.OverallScore, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// SaveSuggestion stores a completed job suggestion result
func (s *Store) SaveSuggestion(ctx context.Context, result *types.JobSuggestionResult) error {
	id, err := uuid.Parse(result.ID)
	if err != nil {
		return fmt.Errorf("invalid suggestion id %q: %w", result.ID, err)
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestion: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO suggestions (id, resume_file_name, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET content = $3, created_at = NOW()`,
		id, result.ResumeFileName, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save suggestion: %w", err)
	}
	return nil
}

// AnalysisSummary is a lightweight view of an analysis for listing
type AnalysisSummary struct {
	ID             uuid.UUID `json:"id"`
	ResumeFileName string    `json:"resumeFileName,omitempty"`
	JobTitle       string    `json:"jobTitle,omitempty"`
	OverallScore   int       `json:"overallScore"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListAnalyses retrieves recent analyses, newest first
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, COALESCE(resume_file_name, ''), COALESCE(job_title, ''), overall_score, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var sum AnalysisSummary
		if err := rows.Scan(&sum.ID, &sum.ResumeFileName, &sum.JobTitle, &sum.OverallScore, &sum.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil when no
// record exists.
func (s *Store) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.AnalysisRecord, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM analyses WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var record types.AnalysisRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", id, err)
	}
	return &record, nil
}

// GetSuggestion retrieves a stored suggestion result by ID. Returns nil
// when no record exists.
func (s *Store) GetSuggestion(ctx context.Context, id uuid.UUID) (*types.JobSuggestionResult, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM suggestions WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}

	var result types.JobSuggestionResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestion %s: %w", id, err)
	}
	return &result, nil
}

// DeleteAnalysis removes a stored analysis
func (s *Store) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis %s: %w", id, ErrNotFound)
	}
	return nil
}
