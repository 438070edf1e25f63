package attribution

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RawdaYassin/financial-distress-app/internal/features"
)

// fixedExplainer returns a pre-baked contribution vector.
type fixedExplainer struct {
	values   []float64
	baseline float64
}

func (f fixedExplainer) Contributions([]float64) ([]float64, error) { return f.values, nil }
func (f fixedExplainer) Baseline() float64                          { return f.baseline }

func contributionVector(prefix ...float64) []float64 {
	values := make([]float64, features.Count)
	copy(values, prefix)
	return values
}

func TestCompute_TopDriverSelection(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	explainer := fixedExplainer{
		values:   contributionVector(0.5, -0.3, 0.2, -0.8, 0.01),
		baseline: -1.2,
	}

	result, err := engine.Compute(explainer, make([]float64, features.Count))
	require.NoError(t, err)

	require.Len(t, result.TopPositive, 3)
	assert.Equal(t, []float64{0.5, 0.2, 0.01}, driverValues(result.TopPositive))

	require.Len(t, result.TopNegative, 2)
	assert.Equal(t, []float64{-0.8, -0.3}, driverValues(result.TopNegative))

	assert.Equal(t, 3, result.Primary.Index)
	assert.Equal(t, -0.8, result.Primary.Value)
	assert.Equal(t, -1.2, result.Baseline)
}

func TestCompute_TiesBreakByCanonicalIndex(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	values := contributionVector(0, 0.4, 0, -0.4)
	values[10] = 0.4

	result, err := engine.Compute(fixedExplainer{values: values}, make([]float64, features.Count))
	require.NoError(t, err)

	// Equal magnitudes rank in canonical order: index 1, then 3, then 10.
	assert.Equal(t, 1, result.Primary.Index)
	require.Len(t, result.TopPositive, 2)
	assert.Equal(t, 1, result.TopPositive[0].Index)
	assert.Equal(t, 10, result.TopPositive[1].Index)
}

func TestCompute_CategoryTotals(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	values := make([]float64, features.Count)
	total := 0.0
	for i := range values {
		values[i] = float64(i%7) * 0.01
		if i%3 == 0 {
			values[i] = -values[i]
		}
		total += values[i]
	}

	result, err := engine.Compute(fixedExplainer{values: values}, make([]float64, features.Count))
	require.NoError(t, err)
	require.Len(t, result.CategoryTotals, len(features.CategoryOrder))

	// Each total equals the sum of its members, and all totals together
	// cover every contribution exactly once.
	catSum := 0.0
	for cat, names := range features.Categories {
		want := 0.0
		for _, name := range names {
			want += values[features.Index(name)]
		}
		assert.InDeltaf(t, want, result.CategoryTotals[cat], 1e-12, "category %s", cat)
		catSum += result.CategoryTotals[cat]
	}
	assert.InDelta(t, total, catSum, 1e-12)
}

func TestCompute_AllZeroContributions(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	result, err := engine.Compute(fixedExplainer{values: make([]float64, features.Count)}, make([]float64, features.Count))
	require.NoError(t, err)

	assert.Empty(t, result.TopPositive)
	assert.Empty(t, result.TopNegative)
	assert.Equal(t, 0, result.Primary.Index)
}

func TestCompute_InputValidation(t *testing.T) {
	engine := NewEngine(zerolog.Nop())

	_, err := engine.Compute(nil, make([]float64, features.Count))
	assert.Error(t, err)

	_, err = engine.Compute(fixedExplainer{values: make([]float64, features.Count)}, make([]float64, 3))
	assert.Error(t, err)

	_, err = engine.Compute(fixedExplainer{values: make([]float64, 5)}, make([]float64, features.Count))
	assert.Error(t, err)
}

func driverValues(drivers []Driver) []float64 {
	out := make([]float64, len(drivers))
	for i, d := range drivers {
		out[i] = d.Value
	}
	return out
}
