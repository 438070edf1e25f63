package analyzer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/RawdaYassin/financial-distress-app/internal/features"
)

// Filename returns the suggested download filename for a report's CSV export.
func (r *Report) Filename() string {
	return strings.ReplaceAll(r.Company, " ", "_") + "_distress_report.csv"
}

// WriteCSV renders the report as a single-row CSV: identity columns, the
// classification outcome, then every feature under its display label.
func (r *Report) WriteCSV(w io.Writer) error {
	header := []string{
		"Company", "Ticker", "Country", "Sector", "Period", "Date",
		"Result", "Probability", "Risk Level",
	}
	row := []string{
		r.Company, r.Ticker, r.Country, r.Sector, r.PeriodLabel,
		r.GeneratedAt.Format("2006-01-02"),
		resultText(r.Prediction.Label),
		fmt.Sprintf("%.4f", r.Prediction.Probability),
		string(r.Prediction.Tier),
	}

	for i, name := range features.CanonicalNames {
		header = append(header, features.Label(name))
		row = append(row, fmt.Sprintf("%.4f", r.Features[i]))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func resultText(label int) string {
	if label == 1 {
		return "Distressed"
	}
	return "Healthy"
}
