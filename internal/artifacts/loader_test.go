package artifacts

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RawdaYassin/financial-distress-app/internal/domain"
	"github.com/RawdaYassin/financial-distress-app/internal/features"
)

func writeArtifact(t *testing.T, dir, name string, doc any) string {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func fill(value float64) []float64 {
	out := make([]float64, features.Count)
	for i := range out {
		out[i] = value
	}
	return out
}

func validScalerDoc() map[string]any {
	return map[string]any{"type": "standard", "mean": fill(0), "scale": fill(1)}
}

func logisticDoc() map[string]any {
	return map[string]any{
		"model_type":   "logistic_regression",
		"coefficients": fill(0.1),
		"intercept":    -1.0,
		"background":   fill(0),
	}
}

func TestLoadBundle_LogisticWithExplainer(t *testing.T) {
	dir := t.TempDir()
	scalerPath := writeArtifact(t, dir, ScalerFile, validScalerDoc())
	modelPath := writeArtifact(t, dir, ModelFile, logisticDoc())

	bundle, err := LoadBundle(scalerPath, modelPath, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "logistic_regression", bundle.ModelType)
	assert.NotNil(t, bundle.Explainer)

	// The loaded model exposes the probability capability.
	_, ok := bundle.Model.(domain.ProbabilityPredictor)
	assert.True(t, ok)
}

func TestLoadBundle_WrappedLegacyFormat(t *testing.T) {
	dir := t.TempDir()
	scalerPath := writeArtifact(t, dir, ScalerFile, validScalerDoc())
	modelPath := writeArtifact(t, dir, ModelFile, map[string]any{"final_model": logisticDoc()})

	bundle, err := LoadBundle(scalerPath, modelPath, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "logistic_regression", bundle.ModelType)

	modelPath = writeArtifact(t, dir, "best.json", map[string]any{"best_model": logisticDoc()})
	bundle, err = LoadBundle(scalerPath, modelPath, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "logistic_regression", bundle.ModelType)
}

func TestLoadBundle_GradientBoostingHasNoExplainer(t *testing.T) {
	dir := t.TempDir()
	scalerPath := writeArtifact(t, dir, ScalerFile, validScalerDoc())
	modelPath := writeArtifact(t, dir, ModelFile, map[string]any{
		"model_type": "gradient_boosting",
		"base_score": -0.5,
		"trees": []map[string]any{
			{"nodes": []map[string]any{
				{"feature": 0, "threshold": 0.0, "left": 1, "right": 2},
				{"feature": -1, "left": -1, "right": -1, "value": -0.2},
				{"feature": -1, "left": -1, "right": -1, "value": 0.4},
			}},
		},
	})

	bundle, err := LoadBundle(scalerPath, modelPath, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "gradient_boosting", bundle.ModelType)
	assert.Nil(t, bundle.Explainer)
}

func TestLoadBundle_LogisticWithoutBackgroundDegrades(t *testing.T) {
	dir := t.TempDir()
	doc := logisticDoc()
	delete(doc, "background")
	scalerPath := writeArtifact(t, dir, ScalerFile, validScalerDoc())
	modelPath := writeArtifact(t, dir, ModelFile, doc)

	bundle, err := LoadBundle(scalerPath, modelPath, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, bundle.Explainer)
}

func TestLoadBundle_Errors(t *testing.T) {
	dir := t.TempDir()
	scalerPath := writeArtifact(t, dir, ScalerFile, validScalerDoc())

	tests := []struct {
		name string
		doc  any
	}{
		{"unknown model type", map[string]any{"model_type": "random_forest"}},
		{"empty wrapper", map[string]any{"accuracy": 0.87}},
		{"wrong coefficient count", map[string]any{
			"model_type": "logistic_regression", "coefficients": []float64{1, 2}, "intercept": 0.0,
		}},
		{"boosting without trees", map[string]any{"model_type": "gradient_boosting"}},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modelPath := writeArtifact(t, dir, fmt.Sprintf("model_%d.json", i), tt.doc)
			_, err := LoadBundle(scalerPath, modelPath, zerolog.Nop())
			assert.Error(t, err)
		})
	}

	_, err := LoadBundle(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.json"), zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadScaler_RejectsWrongShape(t *testing.T) {
	dir := t.TempDir()
	path := writeArtifact(t, dir, ScalerFile, map[string]any{
		"type": "standard", "mean": []float64{0, 0}, "scale": []float64{1, 1},
	})
	_, err := loadScaler(path)
	assert.Error(t, err)

	path = writeArtifact(t, dir, "minmax.json", map[string]any{
		"type": "minmax", "mean": fill(0), "scale": fill(1),
	})
	_, err = loadScaler(path)
	assert.Error(t, err)
}

func TestStandardScaler_Transform(t *testing.T) {
	s := &StandardScaler{Mean: []float64{10, 0, 5}, Scale: []float64{2, 0, 1}}

	out, err := s.Transform([]float64{14, 3, 5})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out[0], 1e-12)
	// Zero scale passes the centered value through.
	assert.InDelta(t, 3.0, out[1], 1e-12)
	assert.InDelta(t, 0.0, out[2], 1e-12)

	_, err = s.Transform([]float64{1})
	assert.Error(t, err)
}

func TestLogisticModel_Probabilities(t *testing.T) {
	m := &LogisticModel{Coefficients: []float64{1, -2}, Intercept: 0.5}

	probs, err := m.PredictProba([]float64{1, 1})
	require.NoError(t, err)
	require.Len(t, probs, 2)
	expected := 1 / (1 + math.Exp(0.5)) // margin = 0.5 + 1 - 2 = -0.5
	assert.InDelta(t, expected, probs[1], 1e-12)
	assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-12)

	label, err := m.Predict([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, label)

	label, err = m.Predict([]float64{2, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestLinearExplainer_ContributionsSumToMarginDelta(t *testing.T) {
	m := &LogisticModel{
		Coefficients: []float64{0.5, -1.5, 2.0},
		Intercept:    -0.25,
		Background:   []float64{0.1, 0.2, -0.3},
	}
	e, err := NewLinearExplainer(m)
	require.NoError(t, err)

	x := []float64{1.0, -0.5, 0.4}
	contribs, err := e.Contributions(x)
	require.NoError(t, err)

	sum := 0.0
	for _, c := range contribs {
		sum += c
	}
	marginX, err := m.margin(x)
	require.NoError(t, err)
	assert.InDelta(t, marginX-e.Baseline(), sum, 1e-12)
}

func TestGradientBoostingModel_Score(t *testing.T) {
	m := &GradientBoostingModel{
		BaseScore: -0.5,
		Trees: []Tree{
			{Nodes: []TreeNode{
				{Feature: 0, Threshold: 0, Left: 1, Right: 2},
				{Left: -1, Right: -1, Value: -0.2},
				{Left: -1, Right: -1, Value: 0.4},
			}},
			{Nodes: []TreeNode{
				{Left: -1, Right: -1, Value: 0.3},
			}},
		},
	}

	// x[0] = 1 routes right: score = -0.5 + 0.4 + 0.3 = 0.2
	probs, err := m.PredictProba([]float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 1/(1+math.Exp(-0.2)), probs[1], 1e-12)

	label, err := m.Predict([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, 1, label)

	// x[0] = -1 routes left: score = -0.5 - 0.2 + 0.3 = -0.4
	label, err = m.Predict([]float64{-1})
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestFairnessReport_Load(t *testing.T) {
	dir := t.TempDir()
	path := writeArtifact(t, dir, FairnessFile, map[string]any{
		"overall_assessment": map[string]any{
			"status":       "Validation PASSED",
			"assessment":   "Performance is consistent across groups.",
			"country_fair": true,
			"sector_fair":  true,
		},
		"fairness_metrics": map[string]any{
			"country": map[string]any{"f1_std": 0.02, "f1_range": 0.05, "auc_std": 0.01, "auc_range": 0.03, "is_fair": true},
		},
		"country_analysis": []map[string]any{
			{"Country": "Saudi Arabia", "Samples": 320, "F1_Score": 0.87, "AUC_ROC": 0.91},
		},
		"timestamp": "2026-01-15T08:00:00",
	})

	report, err := LoadFairnessReport(path)
	require.NoError(t, err)
	assert.True(t, report.Overall.Passed())
	assert.True(t, report.Metrics.Country.IsFair)
	require.Len(t, report.CountryAnalysis, 1)
	assert.Equal(t, "Saudi Arabia", report.CountryAnalysis[0].Country)
	assert.Equal(t, 320, report.CountryAnalysis[0].Samples)
}
