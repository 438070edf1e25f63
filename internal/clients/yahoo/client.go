// Package yahoo provides a client for the public Yahoo Finance endpoints:
// the v8 chart API for daily price history and the v10 quoteSummary API for
// financial statements. Responses are normalized into domain.RawSnapshot so
// the analysis engine never sees Yahoo's wire format.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/RawdaYassin/financial-distress-app/internal/domain"
)

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"

	// quoteSummary modules covering the three statement frames plus the
	// descriptive facts (market cap, total debt, free cash flow).
	summaryModules = "balanceSheetHistory,incomeStatementHistory,cashflowStatementHistory,price,financialData"
)

// Client fetches market data from Yahoo Finance.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a new Yahoo Finance client.
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("component", "yahoo").Logger(),
	}
}

// SetBaseURL overrides the Yahoo endpoint, for proxies and tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Fetch retrieves the price history and latest financial statements for a
// ticker. Returns domain.ErrNoData when the upstream has no price history for
// the request; missing statement modules degrade to empty statements instead.
func (c *Client) Fetch(ctx context.Context, ticker, period string) (*domain.RawSnapshot, error) {
	history, err := c.fetchChart(ctx, ticker, period)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("ticker %s period %s: %w", ticker, period, domain.ErrNoData)
	}

	summary, err := c.fetchQuoteSummary(ctx, ticker)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.RawSnapshot{
		Ticker:          ticker,
		Period:          period,
		History:         history,
		BalanceSheet:    summary.balanceSheet,
		IncomeStatement: summary.incomeStatement,
		CashFlow:        summary.cashFlow,
		Info:            summary.info,
	}

	c.log.Debug().
		Str("ticker", ticker).
		Str("period", period).
		Int("bars", len(history)).
		Msg("Fetched company data")

	return snapshot, nil
}

// chartResponse mirrors the shape of the v8 chart endpoint.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (c *Client) fetchChart(ctx context.Context, ticker, period string) ([]domain.PriceBar, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		c.baseURL, url.PathEscape(ticker), url.QueryEscape(period))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("chart request for %s: %w", ticker, err)
	}

	var parsed chartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode chart response for %s: %w", ticker, err)
	}
	if parsed.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error for %s: %s (%s)",
			ticker, parsed.Chart.Error.Description, parsed.Chart.Error.Code)
	}
	if len(parsed.Chart.Result) == 0 || len(parsed.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	result := parsed.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	bars := make([]domain.PriceBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		// Yahoo pads halted sessions with nulls; a bar without a close
		// is unusable for every downstream indicator.
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		bars = append(bars, domain.PriceBar{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   deref(at(quote.Open, i)),
			High:   deref(at(quote.High, i)),
			Low:    deref(at(quote.Low, i)),
			Close:  *quote.Close[i],
			Volume: deref(at(quote.Volume, i)),
		})
	}
	return bars, nil
}

// quoteSummaryResponse mirrors the v10 quoteSummary envelope. Statement
// entries are kept as raw JSON because Yahoo mixes {raw, fmt} value objects
// with plain scalars (maxAge, endDate) in the same object.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			BalanceSheetHistory struct {
				Statements []map[string]json.RawMessage `json:"balanceSheetStatements"`
			} `json:"balanceSheetHistory"`
			IncomeStatementHistory struct {
				Statements []map[string]json.RawMessage `json:"incomeStatementHistory"`
			} `json:"incomeStatementHistory"`
			CashflowStatementHistory struct {
				Statements []map[string]json.RawMessage `json:"cashflowStatements"`
			} `json:"cashflowStatementHistory"`
			Price         map[string]json.RawMessage `json:"price"`
			FinancialData map[string]json.RawMessage `json:"financialData"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteSummary"`
}

// fundamentals is the normalized output of the quoteSummary endpoint.
type fundamentals struct {
	balanceSheet    domain.Statement
	incomeStatement domain.Statement
	cashFlow        domain.Statement
	info            domain.Info
}

// Line-item mappings from Yahoo's camelCase fields to statement names.
var (
	balanceSheetKeys = map[string]string{
		"totalAssets":             "Total Assets",
		"totalStockholderEquity":  "Total Stockholder Equity",
		"totalCurrentAssets":      "Current Assets",
		"totalCurrentLiabilities": "Current Liabilities",
		"retainedEarnings":        "Retained Earnings",
		"longTermDebt":            "Long Term Debt",
		"shortLongTermDebt":       "Short Long Term Debt",
	}
	incomeStatementKeys = map[string]string{
		"netIncome":    "Net Income",
		"totalRevenue": "Total Revenue",
		"ebit":         "EBIT",
	}
	cashFlowKeys = map[string]string{
		"totalCashFromOperatingActivities": "Total Cash From Operating Activities",
		"capitalExpenditures":              "Capital Expenditures",
	}
)

func (c *Client) fetchQuoteSummary(ctx context.Context, ticker string) (*fundamentals, error) {
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.baseURL, url.PathEscape(ticker), url.QueryEscape(summaryModules))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("quoteSummary request for %s: %w", ticker, err)
	}

	var parsed quoteSummaryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode quoteSummary response for %s: %w", ticker, err)
	}
	if parsed.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quoteSummary API error for %s: %s (%s)",
			ticker, parsed.QuoteSummary.Error.Description, parsed.QuoteSummary.Error.Code)
	}
	if len(parsed.QuoteSummary.Result) == 0 {
		// No fundamentals at all still permits a price-only analysis.
		return &fundamentals{
			balanceSheet:    domain.NewStatement(nil),
			incomeStatement: domain.NewStatement(nil),
			cashFlow:        domain.NewStatement(nil),
		}, nil
	}

	result := parsed.QuoteSummary.Result[0]

	balance := mapStatement(latest(result.BalanceSheetHistory.Statements), balanceSheetKeys)
	income := mapStatement(latest(result.IncomeStatementHistory.Statements), incomeStatementKeys)
	cashflow := mapStatement(latest(result.CashflowStatementHistory.Statements), cashFlowKeys)

	// Total debt and free cash flow come from financialData; the statement
	// frames expose only the long/short components.
	if v, ok := rawNumber(result.FinancialData, "totalDebt"); ok {
		balance["Total Debt"] = v
	}
	if v, ok := rawNumber(result.FinancialData, "freeCashflow"); ok {
		cashflow["Free Cash Flow"] = v
	}

	info := domain.Info{}
	if v, ok := rawNumber(result.Price, "marketCap"); ok {
		info.MarketCap = v
	}
	info.TotalAssets = balance["Total Assets"]
	info.TotalEquity = balance["Total Stockholder Equity"]

	return &fundamentals{
		balanceSheet:    domain.NewStatement(balance),
		incomeStatement: domain.NewStatement(income),
		cashFlow:        domain.NewStatement(cashflow),
		info:            info,
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Yahoo rejects requests without a browser-like user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; distress-analysis/1.0)")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNoData
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// latest returns the most recent statement column, matching Yahoo's ordering
// where index 0 is the newest reporting period.
func latest(statements []map[string]json.RawMessage) map[string]json.RawMessage {
	if len(statements) == 0 {
		return nil
	}
	return statements[0]
}

// mapStatement extracts the numeric line items named in keys, renaming them
// to their statement labels. Absent or non-numeric fields are skipped so the
// statement reports them as unreported rather than zero.
func mapStatement(raw map[string]json.RawMessage, keys map[string]string) map[string]float64 {
	items := make(map[string]float64, len(keys))
	for field, name := range keys {
		if v, ok := rawNumber(raw, field); ok {
			items[name] = v
		}
	}
	return items
}

// rawNumber reads a Yahoo {raw, fmt} value object from a module map.
func rawNumber(module map[string]json.RawMessage, field string) (float64, bool) {
	msg, ok := module[field]
	if !ok {
		return 0, false
	}
	var value struct {
		Raw *float64 `json:"raw"`
	}
	if err := json.Unmarshal(msg, &value); err != nil || value.Raw == nil {
		return 0, false
	}
	return *value.Raw, true
}

func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
