// Package narrative renders tier-specific analyst prose, signal chips and
// recommended actions from a prediction and its attribution.
package narrative

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/RawdaYassin/financial-distress-app/internal/attribution"
	"github.com/RawdaYassin/financial-distress-app/internal/domain"
	"github.com/RawdaYassin/financial-distress-app/internal/features"
)

// Composer builds a Narrative for one analysis.
type Composer struct {
	logger zerolog.Logger
}

// NewComposer creates a Composer.
func NewComposer(logger zerolog.Logger) *Composer {
	return &Composer{logger: logger.With().Str("component", "narrative").Logger()}
}

// Compose selects the tier branch and fills in every narrative section.
// A nil attribution switches the driver section to a degraded notice
// rather than failing the whole narrative.
func (c *Composer) Compose(company, periodLabel string, result domain.PredictionResult, vec features.Vector, attr *attribution.Result) domain.Narrative {
	m := metrics{
		pct: fmt.Sprintf("%.1f%%", result.Probability*100),
		z:   vec.Get("Altman_Z_Score"),
		roe: vec.Get("ROE_%"),
		npm: vec.Get("Net_Profit_Margin_%"),
		de:  vec.Get("Debt_to_Equity"),
		ocf: vec.Get("Operating Cf_M"),
		fcf: vec.Get("Free Cf_M"),
		rsi: vec.Get("RSI_14"),
		vol: vec.Get("Volatility_20"),
		roc: vec.Get("ROC_20"),
		dc:  vec.Get("Death_Cross") == 1,
		eqR: vec.Get("Equity_Ratio"),
	}

	n := domain.Narrative{Chips: chips(m)}

	switch result.Tier {
	case domain.TierCritical:
		n.Headline = "Critical Risk — Immediate Attention Required"
		n.Summary = criticalSummary(company, periodLabel, m)
		n.FinancialHealth = criticalFinancial(m)
		n.MarketBehaviour = criticalMarket(m)
		n.Actions = criticalActions
	case domain.TierHigh:
		n.Headline = "High Risk — Close Monitoring Recommended"
		n.Summary = highSummary(company, periodLabel, m)
		n.FinancialHealth = highFinancial(m)
		n.MarketBehaviour = highMarket(m)
		n.Actions = highActions
	case domain.TierMedium:
		n.Headline = "Moderate Risk — Worth Monitoring"
		n.Summary = mediumSummary(company, periodLabel, m)
		n.FinancialHealth = mediumFinancial(m)
		n.MarketBehaviour = mediumMarket(m)
		n.Actions = mediumActions
	default:
		n.Headline = "Low Risk — Financially Sound"
		n.Summary = lowSummary(company, periodLabel, m)
		n.FinancialHealth = lowFinancial(m)
		n.MarketBehaviour = lowMarket(m)
		n.Actions = lowActions
	}

	if attr != nil {
		n.Driver = driverNarrative(result.Label, attr)
		n.DriverAvailable = true
	} else {
		n.Driver = degradedDriverNotice
		n.DriverAvailable = false
	}

	c.logger.Debug().
		Str("company", company).
		Str("tier", string(result.Tier)).
		Bool("driver_available", n.DriverAvailable).
		Msg("narrative composed")

	return n
}

type metrics struct {
	pct string
	z   float64
	roe float64
	npm float64
	de  float64
	ocf float64
	fcf float64
	rsi float64
	vol float64
	roc float64
	dc  bool
	eqR float64
}

const degradedDriverNotice = "Factor-level attribution is not available for the configured model, " +
	"so this analysis reports the overall risk assessment without a per-factor breakdown."

// chips builds the signal summary. The bearish-cross chip only appears
// when the signal is active, so the row holds five or six entries.
func chips(m metrics) []domain.SignalChip {
	out := make([]domain.SignalChip, 0, 6)

	switch {
	case m.z > 2.99:
		out = append(out, domain.SignalChip{Severity: domain.ChipGood, Label: fmt.Sprintf("Financial Health Score: %.2f — Strong", m.z)})
	case m.z > 1.81:
		out = append(out, domain.SignalChip{Severity: domain.ChipCaution, Label: fmt.Sprintf("Financial Health Score: %.2f — Caution", m.z)})
	default:
		out = append(out, domain.SignalChip{Severity: domain.ChipRisk, Label: fmt.Sprintf("Financial Health Score: %.2f — Weak", m.z)})
	}

	switch {
	case m.roe > 15:
		out = append(out, domain.SignalChip{Severity: domain.ChipGood, Label: fmt.Sprintf("Return on Equity: %.1f%% — Strong", m.roe)})
	case m.roe > 5:
		out = append(out, domain.SignalChip{Severity: domain.ChipCaution, Label: fmt.Sprintf("Return on Equity: %.1f%% — Moderate", m.roe)})
	default:
		out = append(out, domain.SignalChip{Severity: domain.ChipRisk, Label: fmt.Sprintf("Return on Equity: %.1f%% — Low", m.roe)})
	}

	switch {
	case m.de < 1.0:
		out = append(out, domain.SignalChip{Severity: domain.ChipGood, Label: fmt.Sprintf("Debt Level: %.2fx — Low", m.de)})
	case m.de < 2.5:
		out = append(out, domain.SignalChip{Severity: domain.ChipCaution, Label: fmt.Sprintf("Debt Level: %.2fx — Moderate", m.de)})
	default:
		out = append(out, domain.SignalChip{Severity: domain.ChipRisk, Label: fmt.Sprintf("Debt Level: %.2fx — High", m.de)})
	}

	if m.ocf > 0 {
		out = append(out, domain.SignalChip{Severity: domain.ChipGood, Label: fmt.Sprintf("Cash Generation: +$%.0fM", m.ocf)})
	} else {
		out = append(out, domain.SignalChip{Severity: domain.ChipRisk, Label: fmt.Sprintf("Cash Generation: $%.0fM", m.ocf)})
	}

	if m.dc {
		out = append(out, domain.SignalChip{Severity: domain.ChipRisk, Label: "Bearish Price Signal Active"})
	}

	switch {
	case m.rsi < 35:
		out = append(out, domain.SignalChip{Severity: domain.ChipCaution, Label: fmt.Sprintf("Price Momentum: %.0f — Low", m.rsi)})
	case m.rsi > 65:
		out = append(out, domain.SignalChip{Severity: domain.ChipCaution, Label: fmt.Sprintf("Price Momentum: %.0f — Elevated", m.rsi)})
	default:
		out = append(out, domain.SignalChip{Severity: domain.ChipGood, Label: fmt.Sprintf("Price Momentum: %.0f — Stable", m.rsi)})
	}

	return out
}

func criticalSummary(company, period string, m metrics) string {
	return fmt.Sprintf("The analysis assigns a %s probability of financial distress to %s over the %s period. "+
		"This is the highest severity classification, indicating serious financial strain that requires prompt action.",
		m.pct, company, period)
}

func criticalFinancial(m metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The overall financial health score stands at %.2f ", m.z)
	if m.z <= 1.81 {
		b.WriteString("— placing it in a zone historically associated with serious financial stress. ")
	} else {
		b.WriteString("— sitting in an uncertain middle zone where risk is elevated. ")
	}
	fmt.Fprintf(&b, "Return on equity of %.1f%% against a net profit margin of %.1f%% ", m.roe, m.npm)
	if m.roe < 0 {
		b.WriteString("signals the company is eroding shareholder value. ")
	} else {
		b.WriteString("reflects fragile profitability with no buffer for setbacks. ")
	}
	fmt.Fprintf(&b, "Cash generation from operations is $%.0fM — ", m.ocf)
	if m.ocf <= 0 {
		b.WriteString("the company is burning through cash, which is not sustainable. ")
	} else {
		b.WriteString("positive but insufficient to offset the other distress signals. ")
	}
	fmt.Fprintf(&b, "Debt stands at %.2fx equity, ", m.de)
	if m.de > 2.5 {
		b.WriteString("making it highly dependent on external financing.")
	} else {
		b.WriteString("adding financial pressure to an already stressed picture.")
	}
	return b.String()
}

func criticalMarket(m metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Market behaviour supports the concern. Annualised price volatility of %.1f%% ", m.vol)
	switch {
	case m.vol > 60:
		b.WriteString("indicates extreme instability. ")
	case m.vol > 30:
		b.WriteString("reflects elevated price behaviour. ")
	default:
		b.WriteString("is moderate but consistent with underlying stress. ")
	}
	if m.dc {
		b.WriteString("A bearish price signal is currently active. ")
	}
	fmt.Fprintf(&b, "Short-term price momentum stands at %.1f%% over the past month", m.roc)
	switch {
	case m.roc < -10:
		b.WriteString(", pointing to accelerating deterioration.")
	case m.roc < 0:
		b.WriteString(", showing continued price decline.")
	default:
		b.WriteString(", showing some resilience despite the broader stress signals.")
	}
	return b.String()
}

var criticalActions = []string{
	"Review the company's cash position and near-term financial obligations immediately.",
	"Assess whether outstanding debts can be refinanced or renegotiated before maturity.",
	"Examine whether operational cost reductions could restore positive cash generation.",
	"Increase monitoring frequency significantly until the risk picture improves.",
	"Consider whether the current level of exposure to this company is appropriate.",
}

func highSummary(company, period string, m metrics) string {
	return fmt.Sprintf("%s has been flagged as financially distressed, with a %s probability of distress "+
		"over the %s period. This signals meaningful financial weakness that warrants close and proactive attention.",
		company, m.pct, period)
}

func highFinancial(m metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The financial health score of %.2f ", m.z)
	if m.z <= 1.81 {
		b.WriteString("is in the distress zone, indicating structural weaknesses. ")
	} else {
		b.WriteString("sits in an uncertain range — concerning alongside other signals. ")
	}
	fmt.Fprintf(&b, "Return on equity of %.1f%% and net profit margin of %.1f%% indicate ", m.roe, m.npm)
	if m.roe < 5 {
		b.WriteString("declining earnings quality. ")
	} else {
		b.WriteString("profitability that has weakened but not collapsed. ")
	}
	fmt.Fprintf(&b, "Operating cash generation of $%.0fM — ", m.ocf)
	if m.ocf < 0 {
		b.WriteString("insufficient to service debt or invest at the required level. ")
	} else {
		b.WriteString("positive, but the combination with higher debt still raises concern. ")
	}
	fmt.Fprintf(&b, "Equity ratio of %.2f suggests ", m.eqR)
	if m.eqR < 0.3 {
		b.WriteString("limited financial flexibility.")
	} else {
		b.WriteString("a moderate equity base.")
	}
	return b.String()
}

func highMarket(m metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Market signals are broadly consistent with the financial picture. Volatility of %.1f%% ", m.vol)
	if m.vol > 30 {
		b.WriteString("is elevated. ")
	} else {
		b.WriteString("is moderate. ")
	}
	if m.dc {
		b.WriteString("A bearish price signal is active. ")
	} else {
		b.WriteString("No major bearish price signals are currently active. ")
	}
	fmt.Fprintf(&b, "Price momentum over the past month is %.1f%%, ", m.roc)
	if m.roc < 0 {
		b.WriteString("indicating continued downward pressure.")
	} else {
		b.WriteString("showing some near-term stability.")
	}
	return b.String()
}

var highActions = []string{
	"Conduct a detailed cash flow and liquidity review covering the next 12 months.",
	"Identify and review any debt covenants or obligations with approaching deadlines.",
	"Assess operational efficiency — where can costs be reduced or working capital improved?",
	"Monitor the next quarterly results closely for early signs of improvement.",
	"Review whether the current level of exposure is appropriate given the risk profile.",
}

func mediumSummary(company, period string, m metrics) string {
	return fmt.Sprintf("%s is not currently classified as distressed, but the analysis assigns a %s "+
		"probability of distress over the %s period. The company appears stable today, but early-warning "+
		"signals recommend ongoing observation.", company, m.pct, period)
}

func mediumFinancial(m metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The financial health score of %.2f ", m.z)
	if m.z > 2.99 {
		b.WriteString("is comfortably above the safe threshold. ")
	} else {
		b.WriteString("sits in an intermediate range — no immediate red flags but some stress to watch. ")
	}
	fmt.Fprintf(&b, "Return on equity of %.1f%% with net profit margin of %.1f%% are ", m.roe, m.npm)
	if m.roe >= 5 && m.roe <= 15 {
		b.WriteString("adequate but not strong enough to cushion against any earnings shock. ")
	} else {
		b.WriteString("on the weaker side. ")
	}
	fmt.Fprintf(&b, "Operating cash flow of $%.0fM and free cash flow of $%.0fM ", m.ocf, m.fcf)
	if m.ocf > 0 && m.fcf > 0 {
		b.WriteString("are both positive — providing some financial headroom.")
	} else {
		b.WriteString("are under some pressure, worth watching.")
	}
	return b.String()
}

func mediumMarket(m metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Market signals are mixed. Price volatility of %.1f%% ", m.vol)
	if m.vol > 30 {
		b.WriteString("is elevated. ")
	} else {
		b.WriteString("is contained. ")
	}
	fmt.Fprintf(&b, "Price momentum over the past month is %.1f%%, ", m.roc)
	if m.roc < 0 {
		b.WriteString("showing a modest downward drift. ")
	} else {
		b.WriteString("showing positive momentum. ")
	}
	if m.dc {
		b.WriteString("A bearish price signal has appeared.")
	} else {
		b.WriteString("No bearish price signals are currently active.")
	}
	return b.String()
}

var mediumActions = []string{
	"Continue monitoring on a monthly basis.",
	"Track the next earnings release for any signs of deterioration.",
	"Stay aware of broader sector conditions — particularly oil prices and regional economic shifts.",
	"No immediate action required, but flag as a company to watch.",
}

func lowSummary(company, period string, m metrics) string {
	return fmt.Sprintf("%s is in good financial health. The analysis assigns only a %s probability of "+
		"distress over the %s period — placing it firmly in the low-risk category.", company, m.pct, period)
}

func lowFinancial(m metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The financial health score of %.2f ", m.z)
	if m.z > 2.99 {
		b.WriteString("is comfortably above the safe threshold, reflecting a robust balance sheet. ")
	} else {
		b.WriteString("is positive and does not raise any concerns. ")
	}
	fmt.Fprintf(&b, "Return on equity of %.1f%% reflects ", m.roe)
	if m.roe > 15 {
		b.WriteString("strong returns for shareholders. ")
	} else {
		b.WriteString("healthy profitability. ")
	}
	fmt.Fprintf(&b, "Net profit margin of %.1f%% demonstrates solid earnings performance. ", m.npm)
	fmt.Fprintf(&b, "Operating cash flow of $%.0fM and free cash flow of $%.0fM confirm the company is "+
		"generating real cash — a key sign of sustainable financial strength. ", m.ocf, m.fcf)
	fmt.Fprintf(&b, "With debt at %.2fx equity, the balance sheet ", m.de)
	if m.de < 1.0 {
		b.WriteString("is conservatively positioned.")
	} else {
		b.WriteString("is in a manageable position.")
	}
	return b.String()
}

func lowMarket(m metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Market signals are broadly positive. Price volatility of %.1f%% ", m.vol)
	if m.vol < 20 {
		b.WriteString("is low, consistent with stable investor sentiment. ")
	} else {
		b.WriteString("is moderate and not a concern given the underlying fundamentals. ")
	}
	if m.dc {
		b.WriteString("A bearish price signal has technically appeared, but is not corroborated by the " +
			"fundamentals — likely short-term noise. ")
	} else {
		b.WriteString("No bearish price signals are active. ")
	}
	fmt.Fprintf(&b, "Price momentum over the past month is %.1f%%", m.roc)
	if m.roc > 0 {
		b.WriteString(", showing positive near-term performance.")
	} else {
		b.WriteString(", showing mild softness which is not unusual for a financially healthy company.")
	}
	return b.String()
}

var lowActions = []string{
	"No immediate action required — the company is in good financial standing.",
	"Continue with standard periodic monitoring.",
	"This company can serve as a useful benchmark for peer comparisons within the sector.",
	"Keep an eye on broader macro conditions (oil prices, interest rates, regional currency moves).",
}

// driverNarrative describes the top attribution drivers in prose. The
// wording tracks the predicted label, not the tier.
func driverNarrative(label int, attr *attribution.Result) string {
	posText := joinLabels(attr.TopPositive)
	if posText == "" {
		posText = "no strong positive contributors"
	}
	negText := joinLabels(attr.TopNegative)
	if negText == "" {
		negText = "no strong negative contributors"
	}
	topText := attr.Primary.Label

	if label == 1 {
		return fmt.Sprintf("The model reached its distress classification primarily because of %s, "+
			"which had the single largest influence on the outcome.\n\n"+
			"The factors most strongly raising the distress signal are: %s. These indicate areas of "+
			"financial or market stress weighted heavily by the model.\n\n"+
			"On the positive side, the following factors are working in the company's favour and "+
			"reducing the risk score: %s. Without these, the assessed risk would be even higher.",
			topText, posText, negText)
	}
	return fmt.Sprintf("The model classified this company as financially healthy, with %s being the "+
		"most influential factor in that conclusion.\n\n"+
		"The factors most strongly supporting the healthy classification are: %s. These reflect "+
		"positive financial and market signals the model found reassuring.\n\n"+
		"Some factors do introduce minor risk into the picture: %s. However, these are outweighed by "+
		"the positive signals and do not change the overall outcome.",
		topText, negText, posText)
}

func joinLabels(drivers []attribution.Driver) string {
	if len(drivers) == 0 {
		return ""
	}
	labels := make([]string, len(drivers))
	for i, d := range drivers {
		labels[i] = d.Label
	}
	return strings.Join(labels, ", ")
}
