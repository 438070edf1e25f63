package features

// Vector is an immutable feature vector aligned with CanonicalNames.
type Vector struct {
	values []float64
}

// NewVector assembles a Vector from a name-keyed map. Names missing from
// the map default to 0; names outside the canonical list are ignored.
func NewVector(byName map[string]float64) Vector {
	values := make([]float64, len(CanonicalNames))
	for i, name := range CanonicalNames {
		values[i] = byName[name]
	}
	return Vector{values: values}
}

// Values returns the raw slice in canonical order. Callers must not
// mutate it.
func (v Vector) Values() []float64 {
	return v.values
}

// Get returns the value for a canonical feature name, 0 for unknown names.
func (v Vector) Get(name string) float64 {
	if i := Index(name); i >= 0 {
		return v.values[i]
	}
	return 0
}

// Len returns the vector length.
func (v Vector) Len() int {
	return len(v.values)
}
