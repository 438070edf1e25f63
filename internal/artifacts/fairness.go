package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// FairnessReport is the training pipeline's consistency analysis across
// countries and sectors.
type FairnessReport struct {
	Overall         OverallAssessment `json:"overall_assessment"`
	Metrics         FairnessMetrics   `json:"fairness_metrics"`
	CountryAnalysis []GroupPerformance `json:"country_analysis"`
	SectorAnalysis  []GroupPerformance `json:"sector_analysis"`
	Timestamp       string             `json:"timestamp"`
}

// OverallAssessment summarizes the fairness validation outcome.
type OverallAssessment struct {
	Status      string `json:"status"`
	Assessment  string `json:"assessment"`
	CountryFair bool   `json:"country_fair"`
	SectorFair  bool   `json:"sector_fair"`
}

// Passed reports whether the validation status marks the model as
// consistent.
func (a OverallAssessment) Passed() bool {
	return strings.Contains(strings.ToUpper(a.Status), "PASSED")
}

// FairnessMetrics holds per-dimension spread statistics.
type FairnessMetrics struct {
	Country GroupSpread `json:"country"`
	Sector  GroupSpread `json:"sector"`
}

// GroupSpread measures how much performance varies across one grouping
// dimension.
type GroupSpread struct {
	F1Std    float64 `json:"f1_std"`
	F1Range  float64 `json:"f1_range"`
	AUCStd   float64 `json:"auc_std"`
	AUCRange float64 `json:"auc_range"`
	IsFair   bool    `json:"is_fair"`
}

// GroupPerformance is one group's evaluation metrics.
type GroupPerformance struct {
	Country      string  `json:"Country,omitempty"`
	Sector       string  `json:"Sector,omitempty"`
	Samples      int     `json:"Samples"`
	DistressRate float64 `json:"Distress_Rate"`
	F1Score      float64 `json:"F1_Score"`
	AUCROC       float64 `json:"AUC_ROC"`
	Precision    float64 `json:"Precision"`
	Recall       float64 `json:"Recall"`
	Accuracy     float64 `json:"Accuracy"`
}

// LoadFairnessReport reads a fairness report artifact from disk.
func LoadFairnessReport(path string) (*FairnessReport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var report FairnessReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &report, nil
}
