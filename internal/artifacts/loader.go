package artifacts

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/RawdaYassin/financial-distress-app/internal/domain"
	"github.com/RawdaYassin/financial-distress-app/internal/features"
)

// Artifact file names as produced by the training pipeline.
const (
	ModelFile    = "final_production_model.json"
	ScalerFile   = "scaler.json"
	FairnessFile = "fairness_report.json"
)

// Bundle holds the loaded inference artifacts. Explainer is nil when the
// model type does not support attribution.
type Bundle struct {
	Scaler    domain.Scaler
	Model     domain.Predictor
	Explainer domain.Explainer
	ModelType string
}

type scalerDocument struct {
	Type  string    `json:"type"`
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

type modelDocument struct {
	ModelType    string    `json:"model_type"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Background   []float64 `json:"background"`
	BaseScore    float64   `json:"base_score"`
	Trees        []Tree    `json:"trees"`

	// Legacy wrapped exports nest the estimator under one of these keys.
	FinalModel *modelDocument `json:"final_model"`
	BestModel  *modelDocument `json:"best_model"`
}

// LoadBundle reads the scaler and model artifacts from disk and
// validates them against the canonical feature layout.
func LoadBundle(scalerPath, modelPath string, logger zerolog.Logger) (*Bundle, error) {
	log := logger.With().Str("component", "artifacts").Logger()

	scaler, err := loadScaler(scalerPath)
	if err != nil {
		return nil, fmt.Errorf("loading scaler artifact: %w", err)
	}

	model, explainer, modelType, err := loadModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model artifact: %w", err)
	}

	log.Info().
		Str("model_type", modelType).
		Bool("explainer", explainer != nil).
		Msg("inference artifacts loaded")

	return &Bundle{Scaler: scaler, Model: model, Explainer: explainer, ModelType: modelType}, nil
}

func loadScaler(path string) (*StandardScaler, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc scalerDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if doc.Type != "" && doc.Type != "standard" {
		return nil, fmt.Errorf("unsupported scaler type %q", doc.Type)
	}
	if len(doc.Mean) != features.Count || len(doc.Scale) != features.Count {
		return nil, fmt.Errorf("scaler fitted on %d/%d features, want %d", len(doc.Mean), len(doc.Scale), features.Count)
	}
	return &StandardScaler{Mean: doc.Mean, Scale: doc.Scale}, nil
}

func loadModel(path string) (domain.Predictor, domain.Explainer, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, "", err
	}
	var doc modelDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}
	resolved := unwrap(&doc)
	if resolved == nil {
		return nil, nil, "", fmt.Errorf("no estimator found in %s", path)
	}
	return buildModel(resolved)
}

// unwrap resolves legacy dict-wrapped exports to the inner estimator.
func unwrap(doc *modelDocument) *modelDocument {
	if doc.ModelType != "" {
		return doc
	}
	if doc.FinalModel != nil {
		return unwrap(doc.FinalModel)
	}
	if doc.BestModel != nil {
		return unwrap(doc.BestModel)
	}
	return nil
}

func buildModel(doc *modelDocument) (domain.Predictor, domain.Explainer, string, error) {
	switch doc.ModelType {
	case "logistic_regression":
		if len(doc.Coefficients) != features.Count {
			return nil, nil, "", fmt.Errorf("logistic model fitted on %d features, want %d", len(doc.Coefficients), features.Count)
		}
		model := &LogisticModel{
			Coefficients: doc.Coefficients,
			Intercept:    doc.Intercept,
			Background:   doc.Background,
		}
		if len(model.Background) == 0 {
			// No reference point shipped: predictions still work, the
			// attribution layer degrades.
			return model, nil, doc.ModelType, nil
		}
		explainer, err := NewLinearExplainer(model)
		if err != nil {
			return nil, nil, "", err
		}
		return model, explainer, doc.ModelType, nil

	case "gradient_boosting":
		if len(doc.Trees) == 0 {
			return nil, nil, "", fmt.Errorf("gradient boosting model has no trees")
		}
		model := &GradientBoostingModel{BaseScore: doc.BaseScore, Trees: doc.Trees}
		return model, nil, doc.ModelType, nil

	default:
		return nil, nil, "", fmt.Errorf("unsupported model type %q", doc.ModelType)
	}
}
