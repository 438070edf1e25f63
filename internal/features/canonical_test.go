package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalNames_CountAndUniqueness(t *testing.T) {
	require.Len(t, CanonicalNames, Count)

	seen := make(map[string]bool, Count)
	for _, name := range CanonicalNames {
		assert.Falsef(t, seen[name], "duplicate canonical name %q", name)
		seen[name] = true
	}
}

func TestCategories_PartitionCanonicalNames(t *testing.T) {
	require.Len(t, CategoryOrder, 6)

	assigned := make(map[string]string)
	for _, cat := range CategoryOrder {
		names, ok := Categories[cat]
		require.Truef(t, ok, "category %q missing from partition", cat)
		for _, name := range names {
			prev, dup := assigned[name]
			assert.Falsef(t, dup, "%q assigned to both %q and %q", name, prev, cat)
			assigned[name] = cat
			assert.GreaterOrEqualf(t, Index(name), 0, "%q not a canonical name", name)
		}
	}
	assert.Len(t, assigned, Count)

	for _, name := range CanonicalNames {
		assert.NotEmptyf(t, CategoryOf(name), "%q has no category", name)
	}
}

func TestLabels_CoverCanonicalNames(t *testing.T) {
	for _, name := range CanonicalNames {
		assert.NotEmptyf(t, Labels[name], "%q has no display label", name)
	}
	assert.Equal(t, "Return on Assets", Label("ROA_%"))
	assert.Equal(t, "Unknown_Feature", Label("Unknown_Feature"))
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index("Market_Cap_USD"))
	assert.Equal(t, Count-1, Index("Month_x"))
	assert.Equal(t, -1, Index("Strong_Dollar"))
}

func TestVector_Accessors(t *testing.T) {
	v := NewVector(map[string]float64{"ROA_%": 5, "Ignored_Name": 99})
	assert.Equal(t, Count, v.Len())
	assert.Equal(t, 5.0, v.Get("ROA_%"))
	assert.Zero(t, v.Get("Equity_Ratio"))
	assert.Zero(t, v.Get("Ignored_Name"))
}
