// Package features builds the canonical feature vector consumed by the
// risk classifier. The name list, order and category partition form the
// contract boundary with the externally trained model artifacts and must
// not change without retraining.
package features

// CanonicalNames is the fixed input layout the scaler and model were
// fitted against. Order matters.
var CanonicalNames = []string{
	"Market_Cap_USD", "Low", "Volume", "Daily_Return_%", "Price_Range_%",
	"ROA_%", "Equity_Ratio", "Asset_Turnover", "OCF_to_Debt", "Altman_Z_Score",
	"Death_Cross", "True_Range", "RSI_14", "US_10Y",
	"Oil_Volatility_20D", "Oil_Below_60", "Oil_Below_40", "Brent_Change_%",
	"VIX_Change_%", "Very_High_VIX",
	"SAR_USD", "KWD_USD", "QAR_USD_Volatility_20D", "BHD_USD_Volatility_20D",
	"Gulf_Crisis_End", "Is_Month_End",
	"Very_High_Governance_Risk", "Has_Controversy", "Poor_Governance",
	"Operating Cf_M", "Free Cf_M", "Debt_to_Equity", "ROE_%", "Net_Profit_Margin_%",
	"Volatility_20", "ROC_20",
	"Egypt_FX_Crisis", "EGP_USD_Change_%", "Pandemic_Recession",
	"Environment_Score", "Social_Score",
	"Young_Company", "Low_Institutional_Ownership",
	"Month_x",
}

// Labels maps canonical feature names to reader-facing display names used
// in narratives and report exports.
var Labels = map[string]string{
	"Market_Cap_USD":              "Company Size (Market Value)",
	"Low":                         "Daily Low Price",
	"Volume":                      "Trading Activity (Volume)",
	"Daily_Return_%":              "Daily Price Change",
	"Price_Range_%":               "Daily Price Spread",
	"ROA_%":                       "Return on Assets",
	"Equity_Ratio":                "Equity Ratio",
	"Asset_Turnover":              "Asset Efficiency",
	"OCF_to_Debt":                 "Cash Flow vs Debt Coverage",
	"Altman_Z_Score":              "Financial Health Score",
	"Death_Cross":                 "Bearish Price Signal",
	"True_Range":                  "Daily Price Volatility",
	"RSI_14":                      "Price Momentum",
	"US_10Y":                      "US Interest Rate",
	"Oil_Volatility_20D":          "Oil Price Stability",
	"Oil_Below_60":                "Low Oil Price Indicator",
	"Oil_Below_40":                "Very Low Oil Price Indicator",
	"Brent_Change_%":              "Oil Price Change",
	"VIX_Change_%":                "Market Uncertainty Change",
	"Very_High_VIX":               "Extreme Market Uncertainty",
	"SAR_USD":                     "Saudi Riyal Rate",
	"KWD_USD":                     "Kuwaiti Dinar Rate",
	"QAR_USD_Volatility_20D":      "Qatar Riyal Stability",
	"BHD_USD_Volatility_20D":      "Bahraini Dinar Stability",
	"Gulf_Crisis_End":             "Post-Gulf Crisis Period",
	"Is_Month_End":                "Month-End Period",
	"Very_High_Governance_Risk":   "High Governance Risk",
	"Has_Controversy":             "Company Controversy",
	"Poor_Governance":             "Governance Concerns",
	"Operating Cf_M":              "Operating Cash Flow",
	"Free Cf_M":                   "Free Cash Flow",
	"Debt_to_Equity":              "Debt Relative to Equity",
	"ROE_%":                       "Return on Equity",
	"Net_Profit_Margin_%":         "Net Profit Margin",
	"Volatility_20":               "Price Stability (20-Day)",
	"ROC_20":                      "Price Trend (20-Day)",
	"Egypt_FX_Crisis":             "Egypt Currency Pressure",
	"EGP_USD_Change_%":            "Egyptian Pound Change",
	"Pandemic_Recession":          "Pandemic Period",
	"Environment_Score":           "Environmental Score",
	"Social_Score":                "Social Score",
	"Young_Company":               "Early-Stage Company",
	"Low_Institutional_Ownership": "Low Institutional Ownership",
	"Month_x":                     "Month of Year",
}

// Category names, in the order attribution summaries are reported.
const (
	CategoryFinancialHealth = "Financial Health"
	CategoryMarketPrice     = "Market & Price"
	CategoryOilMacro        = "Oil & Global Macro"
	CategoryRegional        = "Regional Factors"
	CategoryGovernanceESG   = "Governance & ESG"
	CategoryTiming          = "Timing"
)

// CategoryOrder fixes the iteration order of category summaries.
var CategoryOrder = []string{
	CategoryFinancialHealth,
	CategoryMarketPrice,
	CategoryOilMacro,
	CategoryRegional,
	CategoryGovernanceESG,
	CategoryTiming,
}

// Categories partitions the canonical feature list. Every feature belongs
// to exactly one category; attribution category sums rely on this being
// exhaustive and non-overlapping.
var Categories = map[string][]string{
	CategoryFinancialHealth: {
		"ROA_%", "Equity_Ratio", "Asset_Turnover", "OCF_to_Debt", "Altman_Z_Score",
		"Operating Cf_M", "Free Cf_M", "Debt_to_Equity", "ROE_%", "Net_Profit_Margin_%",
	},
	CategoryMarketPrice: {
		"Market_Cap_USD", "Low", "Volume", "Daily_Return_%", "Price_Range_%",
		"True_Range", "Volatility_20", "ROC_20", "Death_Cross", "RSI_14",
	},
	CategoryOilMacro: {
		"Oil_Volatility_20D", "Oil_Below_60", "Oil_Below_40",
		"Brent_Change_%", "US_10Y", "VIX_Change_%", "Very_High_VIX",
	},
	CategoryRegional: {
		"SAR_USD", "KWD_USD", "QAR_USD_Volatility_20D", "BHD_USD_Volatility_20D",
		"Gulf_Crisis_End", "Egypt_FX_Crisis", "EGP_USD_Change_%", "Pandemic_Recession",
	},
	CategoryGovernanceESG: {
		"Very_High_Governance_Risk", "Has_Controversy", "Poor_Governance",
		"Environment_Score", "Social_Score", "Young_Company", "Low_Institutional_Ownership",
	},
	CategoryTiming: {"Is_Month_End", "Month_x"},
}

// indexOf maps canonical names to their position in CanonicalNames.
var indexOf = func() map[string]int {
	m := make(map[string]int, len(CanonicalNames))
	for i, name := range CanonicalNames {
		m[name] = i
	}
	return m
}()

// Index returns the canonical position of a feature name, or -1 when the
// name is not part of the contract.
func Index(name string) int {
	if i, ok := indexOf[name]; ok {
		return i
	}
	return -1
}

// Label returns the display label for a canonical name, falling back to
// the name itself.
func Label(name string) string {
	if l, ok := Labels[name]; ok {
		return l
	}
	return name
}

var categoryOf = func() map[string]string {
	m := make(map[string]string, len(CanonicalNames))
	for cat, names := range Categories {
		for _, name := range names {
			m[name] = cat
		}
	}
	return m
}()

// CategoryOf returns the category partition entry for a feature name.
func CategoryOf(name string) string {
	return categoryOf[name]
}

// Count is the length of the canonical feature vector.
const Count = 44
