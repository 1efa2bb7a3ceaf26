package solfile

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWarmstart_Format(t *testing.T) {
	symbols := map[string]any{
		"x2":  &testVar{v: -0.25, set: true},
		"x1":  &testVar{v: 1.5, set: true},
		"x10": &testVar{}, // unassigned
		"c1":  rowMeta{},  // not a variable, excluded from the count
	}

	var b strings.Builder
	require.NoError(t, EncodeWarmstart(&b, symbols))

	want := `Model status
Unknown

# Primal solution values
Unknown
Objective Unknown
# Columns 3
x1 1.5
x10 0.0
x2 -0.25
`
	assert.Equal(t, want, b.String())
}

func TestEncodeWarmstart_RawValues(t *testing.T) {
	// Warm-start values are written raw — no rounding or truncation.
	// This is the intentional asymmetry with the decode path.
	symbols := map[string]any{
		"x1": &testVar{v: 0.9999999999999997, set: true},
	}
	var b strings.Builder
	require.NoError(t, EncodeWarmstart(&b, symbols))
	assert.Contains(t, b.String(), "x1 0.9999999999999997\n")
}

func TestEncodeWarmstart_RoundTrip(t *testing.T) {
	// Binary-exact values survive encode → decode unchanged even through
	// the decode-side normalization.
	assigned := map[string]float64{
		"x1": 0.5,
		"x2": -2.25,
		"x3": 1024,
	}
	symbols := map[string]any{
		"x1": &testVar{v: assigned["x1"], set: true},
		"x2": &testVar{v: assigned["x2"], set: true},
		"x3": &testVar{v: assigned["x3"], set: true},
		"x4": &testVar{},
	}

	path := filepath.Join(t.TempDir(), "warmstart.sol")
	require.NoError(t, EncodeWarmstartFile(path, symbols))

	decoded := map[string]any{
		"x1": &testVar{}, "x2": &testVar{}, "x3": &testVar{}, "x4": &testVar{},
	}
	sol, err := DecodeFile(path, decoded, WithRounding(12), WithPrecision(12))
	require.NoError(t, err)

	for symbol, want := range assigned {
		assert.Equal(t, want, sol.Values[symbol], "symbol %s", symbol)
	}
	assert.Equal(t, 0.0, sol.Values["x4"], "unassigned variables encode as 0.0")

	// Placeholder header fields decode leniently.
	assert.Equal(t, "Unknown", string(sol.Status))
	assert.False(t, sol.HasObjective)
}
