package narrative

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RawdaYassin/financial-distress-app/internal/attribution"
	"github.com/RawdaYassin/financial-distress-app/internal/domain"
	"github.com/RawdaYassin/financial-distress-app/internal/features"
)

func vectorWith(values map[string]float64) features.Vector {
	return features.NewVector(values)
}

func prediction(label int, prob float64, tier domain.RiskTier) domain.PredictionResult {
	return domain.PredictionResult{Label: label, Probability: prob, Tier: tier}
}

func sampleAttribution() *attribution.Result {
	return &attribution.Result{
		TopPositive: []attribution.Driver{
			{Name: "Debt_to_Equity", Label: "Debt Relative to Equity", Value: 0.4},
			{Name: "Volatility_20", Label: "Price Stability (20-Day)", Value: 0.2},
		},
		TopNegative: []attribution.Driver{
			{Name: "ROA_%", Label: "Return on Assets", Value: -0.3},
		},
		Primary: attribution.Driver{Name: "Debt_to_Equity", Label: "Debt Relative to Equity", Value: 0.4},
	}
}

func TestCompose_HighTier(t *testing.T) {
	c := NewComposer(zerolog.Nop())
	vec := vectorWith(map[string]float64{
		"Altman_Z_Score":      1.5,
		"ROE_%":               3.2,
		"Net_Profit_Margin_%": 2.0,
		"Debt_to_Equity":      1.8,
		"Operating Cf_M":      42,
		"Equity_Ratio":        0.25,
		"Volatility_20":       38,
		"ROC_20":              -4.5,
		"RSI_14":              48,
	})

	n := c.Compose("Saudi Aramco", "1 Year", prediction(1, 0.62, domain.TierHigh), vec, sampleAttribution())

	assert.Equal(t, "High Risk — Close Monitoring Recommended", n.Headline)
	assert.Contains(t, n.Summary, "Saudi Aramco")
	assert.Contains(t, n.Summary, "62.0%")
	assert.Contains(t, n.Summary, "1 Year")
	assert.Contains(t, n.FinancialHealth, "is in the distress zone")
	assert.Contains(t, n.FinancialHealth, "declining earnings quality")
	assert.Contains(t, n.FinancialHealth, "limited financial flexibility")
	assert.Contains(t, n.MarketBehaviour, "is elevated")
	assert.Contains(t, n.MarketBehaviour, "continued downward pressure")
	assert.Len(t, n.Actions, 5)
	require.True(t, n.DriverAvailable)
	assert.Contains(t, n.Driver, "Debt Relative to Equity")
}

func TestCompose_CriticalTier(t *testing.T) {
	c := NewComposer(zerolog.Nop())
	vec := vectorWith(map[string]float64{
		"Altman_Z_Score": 0.9,
		"ROE_%":          -12,
		"Debt_to_Equity": 3.1,
		"Operating Cf_M": -15,
		"Volatility_20":  72,
		"ROC_20":         -14,
		"Death_Cross":    1,
		"RSI_14":         28,
	})

	n := c.Compose("NIICO", "2 Years", prediction(1, 0.84, domain.TierCritical), vec, sampleAttribution())

	assert.Equal(t, "Critical Risk — Immediate Attention Required", n.Headline)
	assert.Contains(t, n.Summary, "84.0%")
	assert.Contains(t, n.FinancialHealth, "eroding shareholder value")
	assert.Contains(t, n.FinancialHealth, "burning through cash")
	assert.Contains(t, n.FinancialHealth, "highly dependent on external financing")
	assert.Contains(t, n.MarketBehaviour, "extreme instability")
	assert.Contains(t, n.MarketBehaviour, "bearish price signal is currently active")
	assert.Contains(t, n.MarketBehaviour, "accelerating deterioration")
	assert.Len(t, n.Actions, 5)
}

func TestCompose_MediumTier(t *testing.T) {
	c := NewComposer(zerolog.Nop())
	vec := vectorWith(map[string]float64{
		"Altman_Z_Score": 3.4,
		"ROE_%":          9,
		"Operating Cf_M": 120,
		"Free Cf_M":      60,
		"Volatility_20":  22,
		"ROC_20":         1.5,
		"RSI_14":         55,
	})

	n := c.Compose("Qatar National Bank", "1 Year", prediction(0, 0.35, domain.TierMedium), vec, sampleAttribution())

	assert.Equal(t, "Moderate Risk — Worth Monitoring", n.Headline)
	assert.Contains(t, n.Summary, "not currently classified as distressed")
	assert.Contains(t, n.FinancialHealth, "comfortably above the safe threshold")
	assert.Contains(t, n.FinancialHealth, "adequate but not strong enough")
	assert.Contains(t, n.FinancialHealth, "both positive")
	assert.Contains(t, n.MarketBehaviour, "No bearish price signals are currently active")
	assert.Len(t, n.Actions, 4)
}

func TestCompose_LowTier(t *testing.T) {
	c := NewComposer(zerolog.Nop())
	vec := vectorWith(map[string]float64{
		"Altman_Z_Score": 4.2,
		"ROE_%":          18,
		"Debt_to_Equity": 0.4,
		"Operating Cf_M": 500,
		"Free Cf_M":      320,
		"Volatility_20":  14,
		"ROC_20":         2.1,
		"RSI_14":         52,
	})

	n := c.Compose("Saudi Aramco", "1 Year", prediction(0, 0.08, domain.TierLow), vec, sampleAttribution())

	assert.Equal(t, "Low Risk — Financially Sound", n.Headline)
	assert.Contains(t, n.Summary, "good financial health")
	assert.Contains(t, n.Summary, "8.0%")
	assert.Contains(t, n.FinancialHealth, "robust balance sheet")
	assert.Contains(t, n.FinancialHealth, "strong returns for shareholders")
	assert.Contains(t, n.FinancialHealth, "conservatively positioned")
	assert.Contains(t, n.MarketBehaviour, "stable investor sentiment")
	assert.Contains(t, n.MarketBehaviour, "positive near-term performance")
	assert.Len(t, n.Actions, 4)
}

func TestCompose_Chips(t *testing.T) {
	c := NewComposer(zerolog.Nop())
	vec := vectorWith(map[string]float64{
		"Altman_Z_Score": 3.2,
		"ROE_%":          18,
		"Debt_to_Equity": 0.5,
		"Operating Cf_M": 50,
		"RSI_14":         50,
	})

	n := c.Compose("ACME", "1 Year", prediction(0, 0.1, domain.TierLow), vec, nil)

	// No bearish cross: five chips, all favourable.
	require.Len(t, n.Chips, 5)
	for _, chip := range n.Chips {
		assert.Equal(t, domain.ChipGood, chip.Severity)
	}
	assert.Equal(t, "Financial Health Score: 3.20 — Strong", n.Chips[0].Label)
	assert.Equal(t, "Cash Generation: +$50M", n.Chips[3].Label)

	// Bearish cross plus weak fundamentals flips the severities.
	vec = vectorWith(map[string]float64{
		"Altman_Z_Score": 1.2,
		"ROE_%":          -3,
		"Debt_to_Equity": 3.0,
		"Operating Cf_M": -20,
		"Death_Cross":    1,
		"RSI_14":         72,
	})
	n = c.Compose("ACME", "1 Year", prediction(1, 0.8, domain.TierCritical), vec, nil)
	require.Len(t, n.Chips, 6)
	assert.Equal(t, domain.ChipRisk, n.Chips[0].Severity)
	assert.Equal(t, "Bearish Price Signal Active", n.Chips[4].Label)
	assert.Equal(t, domain.ChipCaution, n.Chips[5].Severity)
}

func TestCompose_DegradedWithoutAttribution(t *testing.T) {
	c := NewComposer(zerolog.Nop())
	vec := vectorWith(nil)

	n := c.Compose("ACME", "1 Year", prediction(1, 0.55, domain.TierHigh), vec, nil)

	assert.False(t, n.DriverAvailable)
	assert.Contains(t, n.Driver, "attribution is not available")
	// The rest of the narrative still renders in full.
	assert.NotEmpty(t, n.Summary)
	assert.NotEmpty(t, n.FinancialHealth)
	assert.NotEmpty(t, n.MarketBehaviour)
	assert.NotEmpty(t, n.Actions)
}

func TestDriverNarrative_HealthyBranch(t *testing.T) {
	c := NewComposer(zerolog.Nop())
	vec := vectorWith(nil)

	n := c.Compose("ACME", "1 Year", prediction(0, 0.2, domain.TierLow), vec, sampleAttribution())

	require.True(t, n.DriverAvailable)
	assert.Contains(t, n.Driver, "classified this company as financially healthy")
	assert.Contains(t, n.Driver, "supporting the healthy classification are: Return on Assets")
}

func TestDriverNarrative_NoContributorsFallback(t *testing.T) {
	c := NewComposer(zerolog.Nop())
	attr := &attribution.Result{Primary: attribution.Driver{Label: "Month of Year"}}

	n := c.Compose("ACME", "1 Year", prediction(1, 0.6, domain.TierHigh), vectorWith(nil), attr)

	assert.True(t, strings.Contains(n.Driver, "no strong positive contributors"))
	assert.True(t, strings.Contains(n.Driver, "no strong negative contributors"))
}
