package features

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/RawdaYassin/financial-distress-app/internal/domain"
	"github.com/RawdaYassin/financial-distress-app/pkg/formulas"
)

// Extractor turns a raw market-data snapshot into the canonical feature
// vector. Missing statement fields and short price histories degrade to
// zero (or a neutral default), never to an error: the classifier always
// receives a full vector.
type Extractor struct {
	logger zerolog.Logger
	now    func() time.Time
}

// NewExtractor creates an Extractor.
func NewExtractor(logger zerolog.Logger) *Extractor {
	return &Extractor{
		logger: logger.With().Str("component", "features").Logger(),
		now:    time.Now,
	}
}

// Extract computes all canonical features from a snapshot. The result is
// deterministic for a given snapshot and clock day.
func (e *Extractor) Extract(snapshot *domain.RawSnapshot) Vector {
	bs := snapshot.BalanceSheet
	fin := snapshot.IncomeStatement
	cf := snapshot.CashFlow
	info := snapshot.Info
	hist := snapshot.History

	assets := bs.GetOr("Total Assets", info.TotalAssets)
	equity := bs.GetOr("Total Stockholder Equity", info.TotalEquity)
	currentAssets := bs.Get("Current Assets")
	currentLiabilities := bs.Get("Current Liabilities")
	retained := bs.Get("Retained Earnings")

	debt := bs.Get("Total Debt")
	if debt == 0 {
		debt = bs.Get("Long Term Debt") + bs.Get("Short Long Term Debt")
	}

	netIncome := fin.Get("Net Income")
	revenue := fin.Get("Total Revenue")
	ebit := fin.Get("EBIT")

	ocf := cf.Get("Total Cash From Operating Activities")
	capex := cf.Get("Capital Expenditures")
	fcf, reported := cf.Lookup("Free Cash Flow")
	if !reported && ocf != 0 {
		fcf = ocf - abs(capex)
	}

	closes := make([]float64, len(hist))
	for i, bar := range hist {
		closes[i] = bar.Close
	}
	returns := formulas.CalculateReturns(closes)

	dailyReturn := 0.0
	if len(returns) > 0 {
		dailyReturn = returns[len(returns)-1] * 100
	}

	vol20 := 0.0
	if len(returns) >= 20 {
		vol20 = formulas.AnnualizedVolatility(formulas.Tail(returns, 20)) * 100
	}

	priceRange := 0.0
	if len(hist) > 0 {
		last := hist[len(hist)-1]
		if last.Open > 0 {
			priceRange = (last.High - last.Low) / last.Open * 100
		}
	}

	trueRange := 0.0
	if len(hist) > 1 {
		last := hist[len(hist)-1]
		prev := hist[len(hist)-2]
		trueRange = formulas.TrueRange(last.High, last.Low, prev.Close)
	}

	deathCross := 0.0
	ma50, ok50 := formulas.SMALast(closes, 50)
	ma200, ok200 := formulas.SMALast(closes, 200)
	if ok50 && ok200 && ma50 < ma200 {
		deathCross = 1
	}

	rsi, ok := formulas.RSISimple(closes, 14)
	if !ok {
		rsi = 50
	}

	roc20, ok := formulas.RateOfChange(closes, 20)
	if !ok {
		roc20 = 0
	}

	low := 0.0
	volume := 0.0
	if len(hist) > 0 {
		low = hist[len(hist)-1].Low
		volumes := make([]float64, len(hist))
		for i, bar := range hist {
			volumes[i] = bar.Volume
		}
		volume = formulas.Mean(volumes)
	}

	equityRatio := safeDiv(equity, assets)
	assetTurnover := safeDiv(revenue, assets)
	ocfToDebt := safeDiv(ocf, debt)
	debtToEquity := safeDiv(debt, equity)
	roe := safeDiv(netIncome, equity) * 100
	roa := safeDiv(netIncome, assets) * 100
	netProfitMargin := safeDiv(netIncome, revenue) * 100

	altmanZ := 0.0
	if assets > 0 {
		workingCapital := currentAssets - currentLiabilities
		altmanZ = 1.2*workingCapital/assets +
			1.4*retained/assets +
			3.3*ebit/assets +
			1.0*revenue/assets
		if debt > 0 {
			altmanZ += 0.6 * equity / debt
		}
	}

	today := e.now()

	isMonthEnd := 0.0
	if today.Day() >= 25 {
		isMonthEnd = 1
	}

	e.logger.Debug().
		Str("ticker", snapshot.Ticker).
		Float64("altman_z", altmanZ).
		Float64("equity_ratio", equityRatio).
		Float64("rsi_14", rsi).
		Msg("features extracted")

	return NewVector(map[string]float64{
		"Market_Cap_USD":  info.MarketCap,
		"Low":             low,
		"Volume":          volume,
		"Daily_Return_%":  dailyReturn,
		"Price_Range_%":   priceRange,
		"ROA_%":           roa,
		"Equity_Ratio":    equityRatio,
		"Asset_Turnover":  assetTurnover,
		"OCF_to_Debt":     ocfToDebt,
		"Altman_Z_Score":  altmanZ,
		"Death_Cross":     deathCross,
		"True_Range":      trueRange,
		"RSI_14":          rsi,
		"Is_Month_End":    isMonthEnd,
		"Operating Cf_M":  ocf / 1e6,
		"Free Cf_M":       fcf / 1e6,
		"Debt_to_Equity":  debtToEquity,
		"ROE_%":           roe,
		"Net_Profit_Margin_%": netProfitMargin,
		"Volatility_20":       vol20,
		"ROC_20":              roc20,
		// Macro and regional series are not available from the per-ticker
		// upstream; the model was trained with these at their neutral
		// encoding for inference.
		"Environment_Score": 50,
		"Social_Score":      50,
		"Month_x":           float64(today.Month()),
	})
}

func safeDiv(numerator, denominator float64) float64 {
	if denominator > 0 {
		return numerator / denominator
	}
	return 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
