// Package prediction runs the pre-fitted scaler and model over canonical
// feature vectors and maps distress probabilities to risk tiers.
package prediction

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RawdaYassin/financial-distress-app/internal/domain"
	"github.com/RawdaYassin/financial-distress-app/internal/features"
)

// Classifier pairs a fitted scaler with a fitted model. Construction
// fails when the model cannot produce class probabilities; a label-only
// model is a configuration error, not something to paper over at
// request time.
type Classifier struct {
	scaler domain.Scaler
	model  domain.Predictor
	proba  domain.ProbabilityPredictor
	logger zerolog.Logger
}

// NewClassifier validates the artifact capabilities and builds a Classifier.
func NewClassifier(scaler domain.Scaler, model domain.Predictor, logger zerolog.Logger) (*Classifier, error) {
	if scaler == nil {
		return nil, fmt.Errorf("classifier requires a scaler artifact")
	}
	if model == nil {
		return nil, fmt.Errorf("classifier requires a model artifact")
	}
	proba, ok := model.(domain.ProbabilityPredictor)
	if !ok {
		return nil, fmt.Errorf("model artifact %T: %w", model, domain.ErrProbabilityUnavailable)
	}
	return &Classifier{
		scaler: scaler,
		model:  model,
		proba:  proba,
		logger: logger.With().Str("component", "classifier").Logger(),
	}, nil
}

// Scale applies the fitted scaler to a raw canonical vector. The scaled
// vector feeds both prediction and attribution, so it is produced once
// and shared.
func (c *Classifier) Scale(vector []float64) ([]float64, error) {
	if len(vector) != features.Count {
		return nil, fmt.Errorf("feature vector has %d values, want %d", len(vector), features.Count)
	}
	scaled, err := c.scaler.Transform(vector)
	if err != nil {
		return nil, fmt.Errorf("scaling feature vector: %w", err)
	}
	if len(scaled) != features.Count {
		return nil, fmt.Errorf("scaler returned %d values, want %d", len(scaled), features.Count)
	}
	return scaled, nil
}

// Classify predicts the binary distress label and the positive-class
// probability for an already scaled vector. Label and probability come
// straight from the model and are both reported; they are not reconciled
// against each other.
func (c *Classifier) Classify(scaled []float64) (domain.PredictionResult, error) {
	if len(scaled) != features.Count {
		return domain.PredictionResult{}, fmt.Errorf("scaled vector has %d values, want %d", len(scaled), features.Count)
	}

	label, err := c.model.Predict(scaled)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("model predict: %w", err)
	}

	probs, err := c.proba.PredictProba(scaled)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("model predict_proba: %w", err)
	}
	if len(probs) != 2 {
		return domain.PredictionResult{}, fmt.Errorf("model returned %d class probabilities, want 2", len(probs))
	}

	result := domain.PredictionResult{
		Label:       label,
		Probability: probs[1],
		Tier:        TierFor(probs[1]),
	}

	c.logger.Debug().
		Int("label", result.Label).
		Float64("probability", result.Probability).
		Str("tier", string(result.Tier)).
		Msg("classification complete")

	return result, nil
}

// TierFor maps a distress probability to a risk tier. Boundaries are
// closed at the lower end: exactly 0.7 is Critical, exactly 0.5 is High,
// exactly 0.3 is Medium.
func TierFor(probability float64) domain.RiskTier {
	switch {
	case probability >= 0.7:
		return domain.TierCritical
	case probability >= 0.5:
		return domain.TierHigh
	case probability >= 0.3:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}
