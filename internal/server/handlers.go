package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/RawdaYassin/financial-distress-app/internal/domain"
)

// envelope is the uniform shape of JSON API responses.
type envelope struct {
	Data     interface{} `json:"data"`
	Metadata metadata    `json:"metadata"`
}

type metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "distress-analysis",
	}
	s.writeRawJSON(w, http.StatusOK, response)
}

// analyzeRequest is the body of POST /api/analysis.
type analyzeRequest struct {
	Ticker string `json:"ticker"`
	Period string `json:"period"`
}

// handleAnalyze runs the full analysis pipeline for one company.
// POST /api/analysis
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Ticker = strings.TrimSpace(req.Ticker)
	if req.Ticker == "" {
		s.writeError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), req.Ticker, req.Period)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoData):
			s.writeError(w, http.StatusNotFound,
				fmt.Sprintf("no data available for %s; try a shorter period or a different company", req.Ticker))
		case strings.Contains(err.Error(), "unsupported period"):
			s.writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.log.Error().Err(err).Str("ticker", req.Ticker).Msg("Analysis failed")
			s.writeError(w, http.StatusBadGateway, "analysis failed")
		}
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

// handleReportDownload exports a previously generated report as CSV.
// GET /api/analysis/{id}/report
func (s *Server) handleReportDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, ok := s.analyzer.GetReport(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "report not found")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename()))
	if err := report.WriteCSV(w); err != nil {
		s.log.Error().Err(err).Str("report_id", id).Msg("Failed to write CSV report")
	}
}

// handleCompanies lists companies, optionally filtered by country and
// sector.
// GET /api/companies?country=Qatar&sector=Banking
func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	sector := r.URL.Query().Get("sector")

	list, err := s.companies.ListFiltered(country, sector)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list companies")
		s.writeError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	s.writeJSON(w, http.StatusOK, list)
}

// handleCountries lists the countries covered by the catalog.
// GET /api/countries
func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := s.companies.Countries()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list countries")
		s.writeError(w, http.StatusInternalServerError, "failed to list countries")
		return
	}

	s.writeJSON(w, http.StatusOK, countries)
}

// handleFairness serves the published model fairness report.
// GET /api/fairness
func (s *Server) handleFairness(w http.ResponseWriter, r *http.Request) {
	if s.fairness == nil {
		s.writeError(w, http.StatusNotFound, "fairness report not available")
		return
	}
	s.writeJSON(w, http.StatusOK, s.fairness)
}

// writeJSON writes a JSON response in the standard envelope
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	s.writeRawJSON(w, status, envelope{
		Data:     data,
		Metadata: metadata{Timestamp: time.Now().UTC()},
	})
}

// writeError writes a JSON error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeRawJSON(w, status, map[string]string{"error": message})
}

func (s *Server) writeRawJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
