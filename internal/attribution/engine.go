// Package attribution turns explainer output into per-feature drivers
// and per-category summaries for the narrative layer.
package attribution

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/RawdaYassin/financial-distress-app/internal/domain"
	"github.com/RawdaYassin/financial-distress-app/internal/features"
)

// Driver is a single feature's signed contribution. Positive values push
// toward distress, negative values away from it.
type Driver struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Result holds the full attribution for one prediction.
type Result struct {
	Values         []float64          `json:"values"`
	Baseline       float64            `json:"baseline"`
	CategoryTotals map[string]float64 `json:"category_totals"`
	TopPositive    []Driver           `json:"top_positive"`
	TopNegative    []Driver           `json:"top_negative"`
	Primary        Driver             `json:"primary"`
}

// Engine computes attributions from an externally supplied explainer.
type Engine struct {
	logger zerolog.Logger
}

// NewEngine creates an Engine.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger.With().Str("component", "attribution").Logger()}
}

// Compute runs the explainer over the scaled vector and derives category
// totals and top-driver selections. The scaled vector must be the same
// one the model scored.
func (e *Engine) Compute(explainer domain.Explainer, scaled []float64) (*Result, error) {
	if explainer == nil {
		return nil, fmt.Errorf("no explainer available")
	}
	if len(scaled) != features.Count {
		return nil, fmt.Errorf("scaled vector has %d values, want %d", len(scaled), features.Count)
	}

	values, err := explainer.Contributions(scaled)
	if err != nil {
		return nil, fmt.Errorf("computing contributions: %w", err)
	}
	if len(values) != features.Count {
		return nil, fmt.Errorf("explainer returned %d contributions, want %d", len(values), features.Count)
	}

	totals := make(map[string]float64, len(features.CategoryOrder))
	for _, cat := range features.CategoryOrder {
		totals[cat] = 0
	}
	for i, name := range features.CanonicalNames {
		totals[features.CategoryOf(name)] += values[i]
	}

	ranked := rankByMagnitude(values)

	result := &Result{
		Values:         values,
		Baseline:       explainer.Baseline(),
		CategoryTotals: totals,
		TopPositive:    topSigned(ranked, 3, true),
		TopNegative:    topSigned(ranked, 3, false),
		Primary:        ranked[0],
	}

	e.logger.Debug().
		Str("primary", result.Primary.Name).
		Float64("primary_value", result.Primary.Value).
		Msg("attribution computed")

	return result, nil
}

// rankByMagnitude sorts all drivers by absolute contribution descending,
// breaking exact ties by canonical index so output is stable.
func rankByMagnitude(values []float64) []Driver {
	drivers := make([]Driver, len(values))
	for i, v := range values {
		name := features.CanonicalNames[i]
		drivers[i] = Driver{Index: i, Name: name, Label: features.Label(name), Value: v}
	}
	sort.SliceStable(drivers, func(a, b int) bool {
		av, bv := abs(drivers[a].Value), abs(drivers[b].Value)
		if av != bv {
			return av > bv
		}
		return drivers[a].Index < drivers[b].Index
	})
	return drivers
}

// topSigned filters a magnitude-ranked list down to positive or negative
// drivers and keeps the strongest n. Positive drivers come out largest
// first, negative drivers most negative first.
func topSigned(ranked []Driver, n int, positive bool) []Driver {
	out := make([]Driver, 0, n)
	for _, d := range ranked {
		if positive && d.Value > 0 || !positive && d.Value < 0 {
			out = append(out, d)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
