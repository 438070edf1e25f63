package domain

import (
	"context"
	"errors"
)

// ErrNoData indicates the upstream data collaborator returned no usable data
// for a request. The engine reports it to the caller and never retries; retry
// policy belongs to the data layer.
var ErrNoData = errors.New("no data available for this request")

// ErrProbabilityUnavailable indicates the supplied model artifact cannot
// produce class probabilities. This is a fatal configuration error: the
// pipeline cannot produce a result without a distress probability.
var ErrProbabilityUnavailable = errors.New("model does not expose a probability capability")

// Scaler transforms a feature vector (as an ordered array in canonical
// feature order) into the scaled space the classifier was trained on.
// Implementations are pre-fitted artifacts and must be safe for concurrent
// read-only use.
type Scaler interface {
	Transform(values []float64) ([]float64, error)
}

// Predictor is the minimum capability a classifier artifact must expose:
// a binary decision over a scaled feature vector.
type Predictor interface {
	Predict(scaled []float64) (int, error)
}

// ProbabilityPredictor is the probability capability of a classifier
// artifact. The classification step requires it; its absence on a supplied
// model is detected via type assertion and surfaced as a configuration error.
type ProbabilityPredictor interface {
	// PredictProba returns per-class probabilities ordered [healthy, distress].
	PredictProba(scaled []float64) ([]float64, error)
}

// Explainer decomposes a single prediction into per-feature contributions
// aligned with the canonical feature order. Positive values push towards
// distress, negative values away from it. Baseline is the model's expected
// output absent any feature information.
//
// The explainer capability is optional: analyses run without one produce a
// prediction with absent attribution and a degraded narrative.
type Explainer interface {
	Contributions(scaled []float64) ([]float64, error)
	Baseline() float64
}

// MarketDataSource retrieves the raw price/fundamental snapshot for a ticker
// over a named period (e.g. "1y", "2y"). Implementations return ErrNoData
// when the upstream has nothing for the request.
type MarketDataSource interface {
	Fetch(ctx context.Context, ticker, period string) (*RawSnapshot, error)
}
