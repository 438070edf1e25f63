// Package analyzer orchestrates the analysis pipeline: fetch market data,
// extract the feature vector, classify, attribute, and compose the narrative.
// Completed reports are kept in memory so they can be exported later.
package analyzer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RawdaYassin/financial-distress-app/internal/attribution"
	"github.com/RawdaYassin/financial-distress-app/internal/companies"
	"github.com/RawdaYassin/financial-distress-app/internal/domain"
	"github.com/RawdaYassin/financial-distress-app/internal/features"
	"github.com/RawdaYassin/financial-distress-app/internal/narrative"
	"github.com/RawdaYassin/financial-distress-app/internal/prediction"
)

// periodLabels maps the supported history periods to their display labels.
var periodLabels = map[string]string{
	"1mo": "1 Month",
	"3mo": "3 Months",
	"6mo": "6 Months",
	"1y":  "1 Year",
	"2y":  "2 Years",
	"3y":  "3 Years",
	"5y":  "5 Years",
	"max": "Maximum Available",
}

// DefaultPeriod is used when a request does not name a history period.
const DefaultPeriod = "2y"

// PeriodLabel returns the display label for a period code, and whether the
// period is supported.
func PeriodLabel(period string) (string, bool) {
	label, ok := periodLabels[period]
	return label, ok
}

// Report is the complete output of one analysis run.
type Report struct {
	ID          string                  `json:"id"`
	Ticker      string                  `json:"ticker"`
	Company     string                  `json:"company"`
	Country     string                  `json:"country"`
	Sector      string                  `json:"sector"`
	Period      string                  `json:"period"`
	PeriodLabel string                  `json:"period_label"`
	GeneratedAt time.Time               `json:"generated_at"`
	Prediction  domain.PredictionResult `json:"prediction"`
	Features    []float64               `json:"features"`
	Attribution *attribution.Result     `json:"attribution,omitempty"`
	Narrative   domain.Narrative        `json:"narrative"`
}

// Service runs the analysis pipeline and retains completed reports.
type Service struct {
	source     domain.MarketDataSource
	catalog    *companies.Repository
	extractor  *features.Extractor
	classifier *prediction.Classifier
	attributor *attribution.Engine
	composer   *narrative.Composer
	explainer  domain.Explainer
	log        zerolog.Logger

	mu      sync.RWMutex
	reports map[string]*Report
}

// NewService wires the pipeline together. explainer may be nil, in which case
// attribution is skipped and narratives degrade to their tier prose.
func NewService(
	source domain.MarketDataSource,
	catalog *companies.Repository,
	classifier *prediction.Classifier,
	explainer domain.Explainer,
	log zerolog.Logger,
) *Service {
	return &Service{
		source:     source,
		catalog:    catalog,
		extractor:  features.NewExtractor(log),
		classifier: classifier,
		attributor: attribution.NewEngine(log),
		composer:   narrative.NewComposer(log),
		explainer:  explainer,
		log:        log.With().Str("component", "analyzer").Logger(),
		reports:    make(map[string]*Report),
	}
}

// Analyze runs the full pipeline for one ticker and period. The returned
// report is also retained for later export by ID.
func (s *Service) Analyze(ctx context.Context, ticker, period string) (*Report, error) {
	if period == "" {
		period = DefaultPeriod
	}
	label, ok := PeriodLabel(period)
	if !ok {
		return nil, fmt.Errorf("unsupported period %q", period)
	}

	companyName := ticker
	country := ""
	sector := ""
	company, err := s.catalog.GetByTicker(ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to look up company %s: %w", ticker, err)
	}
	if company != nil {
		companyName = company.Name
		country = company.Country
		sector = company.Sector
	}

	snapshot, err := s.source.Fetch(ctx, ticker, period)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data for %s: %w", ticker, err)
	}

	vector := s.extractor.Extract(snapshot)

	scaled, err := s.classifier.Scale(vector.Values())
	if err != nil {
		return nil, fmt.Errorf("failed to scale features for %s: %w", ticker, err)
	}

	result, err := s.classifier.Classify(scaled)
	if err != nil {
		return nil, fmt.Errorf("classification failed for %s: %w", ticker, err)
	}

	var attr *attribution.Result
	if s.explainer != nil {
		attr, err = s.attributor.Compute(s.explainer, scaled)
		if err != nil {
			// Attribution failures degrade the narrative, they never block
			// the risk result itself.
			s.log.Warn().Err(err).Str("ticker", ticker).Msg("Attribution failed, continuing without drivers")
			attr = nil
		}
	}

	story := s.composer.Compose(companyName, label, result, vector, attr)

	report := &Report{
		ID:          uuid.NewString(),
		Ticker:      ticker,
		Company:     companyName,
		Country:     country,
		Sector:      sector,
		Period:      period,
		PeriodLabel: label,
		GeneratedAt: time.Now().UTC(),
		Prediction:  result,
		Features:    vector.Values(),
		Attribution: attr,
		Narrative:   story,
	}

	s.mu.Lock()
	s.reports[report.ID] = report
	s.mu.Unlock()

	s.log.Info().
		Str("ticker", ticker).
		Str("period", period).
		Str("tier", string(result.Tier)).
		Float64("probability", result.Probability).
		Msg("Analysis complete")

	return report, nil
}

// GetReport returns a previously generated report by ID.
func (s *Service) GetReport(id string) (*Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	return report, ok
}
