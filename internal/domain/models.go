// Package domain contains the core business entities for financial distress
// analysis. This package is pure: no infrastructure dependencies, so it can be
// imported by any layer without creating cycles.
package domain

import "time"

// PriceBar represents a single day of OHLCV market data.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Statement holds the most recent reporting-period column of a financial
// statement as named line items. A statement with no reported periods is
// simply empty; lookups against it report absence rather than failing.
type Statement struct {
	items map[string]float64
}

// NewStatement creates a statement from a line-item map. A nil map produces
// an empty statement (the degraded-mode representation of a statement with
// zero reported columns).
func NewStatement(items map[string]float64) Statement {
	return Statement{items: items}
}

// Lookup returns the value of a line item and whether it was reported.
// The distinction matters for values like free cash flow, where a reported
// zero and an absent line item must not be conflated.
func (s Statement) Lookup(key string) (float64, bool) {
	v, ok := s.items[key]
	return v, ok
}

// Get returns the value of a line item, or 0 when the item is absent.
func (s Statement) Get(key string) float64 {
	return s.items[key]
}

// GetOr returns the value of a line item, or fallback when the item is absent.
func (s Statement) GetOr(key string, fallback float64) float64 {
	if v, ok := s.items[key]; ok {
		return v
	}
	return fallback
}

// Empty reports whether the statement has no line items at all.
func (s Statement) Empty() bool {
	return len(s.items) == 0
}

// Items returns a copy of the statement's line items, for serialization
// by storage layers.
func (s Statement) Items() map[string]float64 {
	if s.items == nil {
		return nil
	}
	out := make(map[string]float64, len(s.items))
	for k, v := range s.items {
		out[k] = v
	}
	return out
}

// Info carries the descriptive facts that accompany a data snapshot.
// Zero values mean "not reported" and feed the extractor's default policy.
type Info struct {
	MarketCap   float64 `json:"market_cap"`
	TotalAssets float64 `json:"total_assets"`
	TotalEquity float64 `json:"total_equity"`
}

// RawSnapshot is the raw output of the market data collaborator: a price
// history plus the most recent column of each financial statement. It is
// owned by the caller and read-only to the analysis engine.
type RawSnapshot struct {
	Ticker          string     `json:"ticker"`
	Period          string     `json:"period"`
	History         []PriceBar `json:"history"`
	BalanceSheet    Statement  `json:"-"`
	IncomeStatement Statement  `json:"-"`
	CashFlow        Statement  `json:"-"`
	Info            Info       `json:"info"`
}

// RiskTier is the discrete risk classification derived from the distress
// probability.
type RiskTier string

const (
	TierLow      RiskTier = "Low"
	TierMedium   RiskTier = "Medium"
	TierHigh     RiskTier = "High"
	TierCritical RiskTier = "Critical"
)

// Rank returns the ordering of a tier (Low < Medium < High < Critical).
// Unknown tiers rank below Low.
func (t RiskTier) Rank() int {
	switch t {
	case TierLow:
		return 0
	case TierMedium:
		return 1
	case TierHigh:
		return 2
	case TierCritical:
		return 3
	}
	return -1
}

// PredictionResult is the output of the classification step.
// Label is the model's binary decision and Probability the positive-class
// (distress) probability. They may disagree around the decision boundary;
// both are reported as-is, never reconciled.
type PredictionResult struct {
	Label       int      `json:"label"`
	Probability float64  `json:"probability"`
	Tier        RiskTier `json:"risk_tier"`
}

// Distressed reports whether the model's binary decision flagged distress.
func (p PredictionResult) Distressed() bool {
	return p.Label == 1
}

// ChipSeverity classifies a signal chip for presentation purposes.
type ChipSeverity string

const (
	ChipGood    ChipSeverity = "good"
	ChipCaution ChipSeverity = "caution"
	ChipRisk    ChipSeverity = "risk"
)

// SignalChip is a short labeled badge summarising one indicator.
type SignalChip struct {
	Label    string       `json:"label"`
	Severity ChipSeverity `json:"severity"`
}

// Narrative is the deterministic, tier-selected explanation of a prediction.
// It is recomputed per request and never persisted.
type Narrative struct {
	Headline        string       `json:"headline"`
	Summary         string       `json:"summary"`
	FinancialHealth string       `json:"financial_health"`
	MarketBehaviour string       `json:"market_behaviour"`
	Driver          string       `json:"driver"`
	DriverAvailable bool         `json:"driver_available"`
	Chips           []SignalChip `json:"chips"`
	Actions         []string     `json:"actions"`
}
