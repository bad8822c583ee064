package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillmatch/internal/history"
	"github.com/jonathan/skillmatch/internal/matcher"
	"github.com/jonathan/skillmatch/internal/types"
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	JDText         string `json:"jdText" validate:"required"`
	ResumeFileName string `json:"resumeFileName,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
}

// SuggestRequest represents the request body for /suggest
type SuggestRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	ResumeFileName string `json:"resumeFileName,omitempty"`
}

const missingInputMessage = "Both resume and job description are required"

// handleAnalyze scores a resume against a job description
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, missingInputMessage)
		return
	}

	result, err := s.engine.CalculateMatchScore(r.Context(), req.ResumeText, req.JDText)
	if err != nil {
		if errors.Is(err, matcher.ErrMissingInput) {
			s.errorResponse(w, http.StatusBadRequest, missingInputMessage)
			return
		}
		log.Printf("Analyze failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	fileName := req.ResumeFileName
	if fileName == "" {
		fileName = matcher.DefaultResumeFileName
	}

	record := &types.AnalysisRecord{
		ID:             uuid.NewString(),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		ResumeFileName: fileName,
		JobTitle:       req.JobTitle,
		MatchResult:    *result,
	}

	if s.store != nil {
		if err := s.store.SaveAnalysis(r.Context(), record); err != nil {
			// History is best effort; the analysis itself succeeded.
			log.Printf("Failed to save analysis %s: %v", record.ID, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleSuggest ranks job archetypes against a resume
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is required")
		return
	}

	result, err := s.engine.Suggest(req.ResumeText, req.ResumeFileName)
	if err != nil {
		if errors.Is(err, matcher.ErrMissingResume) {
			s.errorResponse(w, http.StatusBadRequest, "Resume text is required")
			return
		}
		log.Printf("Suggest failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Suggestion failed")
		return
	}

	if s.store != nil {
		if err := s.store.SaveSuggestion(r.Context(), result); err != nil {
			log.Printf("Failed to save suggestion %s: %v", result.ID, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListHistory returns recent analyses
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "History store is not configured")
		return
	}

	summaries, err := s.store.ListAnalyses(r.Context(), 50)
	if err != nil {
		log.Printf("Failed to list analyses: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list history")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": summaries})
}

// handleGetHistory returns a stored analysis by ID
func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "History store is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return
	}

	record, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get analysis %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleDeleteHistory removes a stored analysis by ID
func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "History store is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return
	}

	if err := s.store.DeleteAnalysis(r.Context(), id); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Analysis not found")
			return
		}
		log.Printf("Failed to delete analysis %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleGetSuggestion returns a stored suggestion result by ID
func (s *Server) handleGetSuggestion(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "History store is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid suggestion ID format")
		return
	}

	result, err := s.store.GetSuggestion(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get suggestion %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get suggestion")
		return
	}
	if result == nil {
		s.errorResponse(w, http.StatusNotFound, "Suggestion not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
