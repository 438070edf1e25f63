// Package artifacts loads the pre-fitted scaler, model and fairness
// report shipped by the training pipeline, resolving them from a local
// override, the on-disk cache or the artifact bucket in that order.
package artifacts

import (
	"fmt"
	"math"
)

// StandardScaler applies the training-time standardization: subtract the
// per-feature mean and divide by the per-feature scale.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// Transform standardizes a raw feature vector. A zero scale entry leaves
// the centered value unscaled, matching how the fitting library encodes
// constant features.
func (s *StandardScaler) Transform(vector []float64) ([]float64, error) {
	if len(vector) != len(s.Mean) {
		return nil, fmt.Errorf("vector has %d values, scaler fitted on %d", len(vector), len(s.Mean))
	}
	out := make([]float64, len(vector))
	for i, v := range vector {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}

// LogisticModel is a fitted binary logistic regression.
type LogisticModel struct {
	Coefficients []float64
	Intercept    float64
	// Background is the training-set mean in scaled space, used as the
	// attribution reference point.
	Background []float64
}

func (m *LogisticModel) margin(scaled []float64) (float64, error) {
	if len(scaled) != len(m.Coefficients) {
		return 0, fmt.Errorf("vector has %d values, model fitted on %d", len(scaled), len(m.Coefficients))
	}
	margin := m.Intercept
	for i, c := range m.Coefficients {
		margin += c * scaled[i]
	}
	return margin, nil
}

// Predict returns the binary decision at the 0.5 probability threshold.
func (m *LogisticModel) Predict(scaled []float64) (int, error) {
	margin, err := m.margin(scaled)
	if err != nil {
		return 0, err
	}
	if margin >= 0 {
		return 1, nil
	}
	return 0, nil
}

// PredictProba returns [healthy, distress] class probabilities.
func (m *LogisticModel) PredictProba(scaled []float64) ([]float64, error) {
	margin, err := m.margin(scaled)
	if err != nil {
		return nil, err
	}
	p := sigmoid(margin)
	return []float64{1 - p, p}, nil
}

// LinearExplainer attributes a logistic model's margin to individual
// features relative to a background reference point.
type LinearExplainer struct {
	model *LogisticModel
}

// NewLinearExplainer builds the explainer for a logistic model. The
// model must carry a background vector.
func NewLinearExplainer(model *LogisticModel) (*LinearExplainer, error) {
	if len(model.Background) != len(model.Coefficients) {
		return nil, fmt.Errorf("background has %d values, model fitted on %d", len(model.Background), len(model.Coefficients))
	}
	return &LinearExplainer{model: model}, nil
}

// Contributions returns coefficient-weighted deviations from the
// background, one signed value per feature.
func (e *LinearExplainer) Contributions(scaled []float64) ([]float64, error) {
	if len(scaled) != len(e.model.Coefficients) {
		return nil, fmt.Errorf("vector has %d values, model fitted on %d", len(scaled), len(e.model.Coefficients))
	}
	out := make([]float64, len(scaled))
	for i, c := range e.model.Coefficients {
		out[i] = c * (scaled[i] - e.model.Background[i])
	}
	return out, nil
}

// Baseline is the model margin at the background point.
func (e *LinearExplainer) Baseline() float64 {
	margin := e.model.Intercept
	for i, c := range e.model.Coefficients {
		margin += c * e.model.Background[i]
	}
	return margin
}

// TreeNode is one node of a boosted regression tree. A node is a leaf
// when Left is negative.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Tree is a single regression tree addressed by node index.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

func (t *Tree) score(scaled []float64) (float64, error) {
	if len(t.Nodes) == 0 {
		return 0, fmt.Errorf("tree has no nodes")
	}
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		node := t.Nodes[idx]
		if node.Left < 0 {
			return node.Value, nil
		}
		if node.Feature < 0 || node.Feature >= len(scaled) {
			return 0, fmt.Errorf("tree references feature %d outside vector of %d", node.Feature, len(scaled))
		}
		if scaled[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("tree child index %d out of range", idx)
		}
	}
	return 0, fmt.Errorf("tree traversal did not reach a leaf")
}

// GradientBoostingModel is a fitted boosted-tree classifier. It predicts
// probabilities but ships without a margin decomposition, so analyses
// run on it report without per-feature attribution.
type GradientBoostingModel struct {
	BaseScore float64
	Trees     []Tree
}

func (m *GradientBoostingModel) rawScore(scaled []float64) (float64, error) {
	score := m.BaseScore
	for i := range m.Trees {
		leaf, err := m.Trees[i].score(scaled)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		score += leaf
	}
	return score, nil
}

// Predict returns the binary decision at the 0.5 probability threshold.
func (m *GradientBoostingModel) Predict(scaled []float64) (int, error) {
	score, err := m.rawScore(scaled)
	if err != nil {
		return 0, err
	}
	if score >= 0 {
		return 1, nil
	}
	return 0, nil
}

// PredictProba returns [healthy, distress] class probabilities.
func (m *GradientBoostingModel) PredictProba(scaled []float64) ([]float64, error) {
	score, err := m.rawScore(scaled)
	if err != nil {
		return nil, err
	}
	p := sigmoid(score)
	return []float64{1 - p, p}, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
