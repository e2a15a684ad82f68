package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
	"github.com/yashbhanu1/Alternate-Credit/internal/profiles"
	"github.com/yashbhanu1/Alternate-Credit/internal/scoring"
)

// ScoreReport is the full pipeline output for one applicant: engineered
// features, composite score, and (when an amount was requested) the loan
// decision with any manual override layered on top.
type ScoreReport struct {
	ProfileID string                   `json:"profile_id,omitempty"`
	Score     domain.ScoreResult       `json:"score"`
	Loan      *domain.ReviewedDecision `json:"loan,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) writeData(w http.ResponseWriter, status int, data interface{}) {
	s.writeJSON(w, status, map[string]interface{}{
		"data": data,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// buildReport runs the full pipeline over one signals record. The loan
// section is only present when a positive amount is requested.
func (s *Server) buildReport(signals domain.RawSignals, requestedAmount float64, override *domain.DecisionStatus) ScoreReport {
	features := scoring.EngineerFeatures(signals)
	score := scoring.CalculateTrustScore(features)

	report := ScoreReport{ProfileID: signals.ProfileID, Score: score}
	if requestedAmount > 0 {
		evaluation := scoring.EvaluateLoanRequest(score.TrustScore, features.AverageBalance, signals.MonthlyIncome, requestedAmount)
		report.Loan = &domain.ReviewedDecision{Automatic: evaluation, Override: override}
	}
	return report
}

// handleListProfiles handles GET /api/profiles
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	s.writeData(w, http.StatusOK, s.registry.List())
}

// handleAddProfile handles POST /api/profiles
func (s *Server) handleAddProfile(w http.ResponseWriter, r *http.Request) {
	var signals domain.RawSignals
	if err := json.NewDecoder(r.Body).Decode(&signals); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	added, err := s.registry.Add(signals)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.log.Info().Str("profile_id", added.ProfileID).Msg("Profile created")
	s.writeData(w, http.StatusCreated, added)
}

// handleGetProfile handles GET /api/profiles/{id}
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	signals, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeProfileError(w, err)
		return
	}
	s.writeData(w, http.StatusOK, signals)
}

// handleScoreProfile handles GET /api/profiles/{id}/score. An optional
// "amount" query parameter overrides the profile's requested loan amount.
func (s *Server) handleScoreProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	signals, err := s.registry.Get(id)
	if err != nil {
		s.writeProfileError(w, err)
		return
	}

	requestedAmount := signals.RequestedLoanAmount
	if raw := r.URL.Query().Get("amount"); raw != "" {
		requestedAmount, err = strconv.ParseFloat(raw, 64)
		if err != nil || requestedAmount < 0 {
			http.Error(w, "amount must be a non-negative number", http.StatusBadRequest)
			return
		}
	}

	s.writeData(w, http.StatusOK, s.buildReport(signals, requestedAmount, s.overrideFor(id)))
}

// handleScoreAdhoc handles POST /api/score: the body is a full RawSignals
// record, scored without touching the registry.
func (s *Server) handleScoreAdhoc(w http.ResponseWriter, r *http.Request) {
	var signals domain.RawSignals
	if err := json.NewDecoder(r.Body).Decode(&signals); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(signals.Financial.Transactions) == 0 {
		http.Error(w, "at least one monthly transaction is required", http.StatusBadRequest)
		return
	}

	s.writeData(w, http.StatusOK, s.buildReport(signals, signals.RequestedLoanAmount, nil))
}

// EvaluateLoanRequestBody mirrors the loan policy's four scalar inputs.
type EvaluateLoanRequestBody struct {
	TrustScore      int     `json:"trust_score"`
	AvgBalance      float64 `json:"avg_balance"`
	MonthlyIncome   float64 `json:"monthly_income"`
	RequestedAmount float64 `json:"requested_amount"`
}

// handleEvaluateLoan handles POST /api/loans/evaluate
func (s *Server) handleEvaluateLoan(w http.ResponseWriter, r *http.Request) {
	var req EvaluateLoanRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.RequestedAmount < 0 {
		http.Error(w, "requested_amount must be non-negative", http.StatusBadRequest)
		return
	}

	evaluation := scoring.EvaluateLoanRequest(req.TrustScore, req.AvgBalance, req.MonthlyIncome, req.RequestedAmount)
	s.writeData(w, http.StatusOK, evaluation)
}

// handleAnalysis handles POST /api/profiles/{id}/analysis. The collaborator
// call always produces a payload: failures degrade to a static fallback.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	signals, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeProfileError(w, err)
		return
	}

	features := scoring.EngineerFeatures(signals)
	score := scoring.CalculateTrustScore(features)
	analysis := s.gemini.Analyze(r.Context(), signals, features, score)

	s.writeData(w, http.StatusOK, analysis)
}

// OverrideRequestBody carries a manual decision override.
type OverrideRequestBody struct {
	Status domain.DecisionStatus `json:"status"`
}

// handleSetOverride handles POST /api/profiles/{id}/override
func (s *Server) handleSetOverride(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.registry.Get(id); err != nil {
		s.writeProfileError(w, err)
		return
	}

	var req OverrideRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		http.Error(w, "status must be approved, rejected or review", http.StatusBadRequest)
		return
	}

	s.overrideMu.Lock()
	s.overrides[id] = req.Status
	s.overrideMu.Unlock()

	s.log.Info().Str("profile_id", id).Str("status", string(req.Status)).Msg("Manual override set")
	s.writeData(w, http.StatusOK, map[string]interface{}{"profile_id": id, "override": req.Status})
}

// handleClearOverride handles DELETE /api/profiles/{id}/override
func (s *Server) handleClearOverride(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.overrideMu.Lock()
	delete(s.overrides, id)
	s.overrideMu.Unlock()

	s.writeData(w, http.StatusOK, map[string]interface{}{"profile_id": id, "override": nil})
}

func (s *Server) overrideFor(id string) *domain.DecisionStatus {
	s.overrideMu.RLock()
	defer s.overrideMu.RUnlock()

	if status, ok := s.overrides[id]; ok {
		return &status
	}
	return nil
}

func (s *Server) writeProfileError(w http.ResponseWriter, err error) {
	if errors.Is(err, profiles.ErrNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
