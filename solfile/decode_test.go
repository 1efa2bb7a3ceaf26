package solfile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmora/highsrun"
)

// testVar is a minimal decision variable for decode/encode tests.
type testVar struct {
	v   float64
	set bool
}

func (tv *testVar) Value() (float64, bool) { return tv.v, tv.set }

func (tv *testVar) SetValue(v float64) {
	tv.v = v
	tv.set = true
}

// rowMeta is a tracked, non-variable entity (e.g. a constraint row).
type rowMeta struct{}

const solvedBody = `Model status
Optimal

# Primal solution values
1
Objective 42.0
x1 3.14159265
`

func TestDecode_EndToEnd(t *testing.T) {
	x1 := &testVar{}
	symbols := map[string]any{"x1": x1}

	sol, err := Decode(strings.NewReader(solvedBody), symbols)
	require.NoError(t, err)

	assert.Equal(t, highsrun.StatusOptimal, sol.Status)
	require.True(t, sol.HasObjective)
	assert.Equal(t, 42.0, sol.Objective)
	assert.Equal(t, "1", sol.Primal)

	// normalize(3.14159265, 8, 8) is a fixed point of the pipeline.
	want := map[string]float64{"x1": 3.14159265}
	if diff := cmp.Diff(want, sol.Values); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	got, set := x1.Value()
	require.True(t, set, "decoded value must be written back onto the variable")
	assert.InDelta(t, 3.14159265, got, 1e-12)
}

func TestDecode_UnknownSymbolsSkipped(t *testing.T) {
	body := `Model status
Optimal

# Primal solution values
2
Objective 1.0
x1 2.0
slack42 99.0
# Columns 1
# Basis
HiGHS v1.7.2
`
	sol, err := Decode(strings.NewReader(body), map[string]any{"x1": &testVar{}})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x1": 2.0}, sol.Values)
}

func TestDecode_NonVariableEntityIgnored(t *testing.T) {
	body := `Model status
Optimal

# Primal solution values
2
Objective 1.0
x1 2.0
c1 7.0
`
	symbols := map[string]any{"x1": &testVar{}, "c1": rowMeta{}}
	sol, err := Decode(strings.NewReader(body), symbols)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x1": 2.0}, sol.Values)
	assert.NotContains(t, sol.Values, "c1")
}

func TestDecode_MissingValueToken(t *testing.T) {
	body := `Model status
Optimal

# Primal solution values
1
Objective 1.0
x1
`
	sol, err := Decode(strings.NewReader(body), map[string]any{"x1": &testVar{}})
	require.Error(t, err)
	assert.Nil(t, sol, "decode must be all-or-nothing")
	assert.True(t, highsrun.IsIncomplete(err))

	var decErr *highsrun.DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "x1", decErr.Symbol)
	assert.Equal(t, 7, decErr.Line)
}

func TestDecode_MalformedValueToken(t *testing.T) {
	body := `Model status
Optimal

# Primal solution values
1
Objective 1.0
x1 not-a-number
`
	sol, err := Decode(strings.NewReader(body), map[string]any{"x1": &testVar{}})
	require.Error(t, err)
	assert.Nil(t, sol)
	assert.False(t, highsrun.IsIncomplete(err), "a present-but-malformed token is not the incomplete-file case")

	var decErr *highsrun.DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "x1", decErr.Symbol)
}

func TestDecode_LenientObjective(t *testing.T) {
	body := `Model status
Optimal

# Primal solution values
1
Objective Unknown
x1 2.5
`
	sol, err := Decode(strings.NewReader(body), map[string]any{"x1": &testVar{}})
	require.NoError(t, err, "malformed objective must not fail the decode")
	assert.False(t, sol.HasObjective)
	assert.Zero(t, sol.Objective)
	assert.Equal(t, map[string]float64{"x1": 2.5}, sol.Values)
}

func TestDecode_BareObjectiveLine(t *testing.T) {
	body := `Model status
Optimal

# Primal solution values
1
Objective
x1 2.5
`
	sol, err := Decode(strings.NewReader(body), map[string]any{"x1": &testVar{}})
	require.NoError(t, err)
	assert.False(t, sol.HasObjective)
}

func TestDecode_StatusOutsideWindowIgnored(t *testing.T) {
	padding := strings.Repeat("padding\n", statusWindow)
	body := padding + "Model status\nOptimal\n"

	sol, err := Decode(strings.NewReader(body), nil)
	require.NoError(t, err)
	assert.Empty(t, sol.Status)
}

func TestDecode_NoPrimalSection(t *testing.T) {
	body := "Model status\nInfeasible\n"
	sol, err := Decode(strings.NewReader(body), map[string]any{"x1": &testVar{}})
	require.NoError(t, err)
	assert.Equal(t, highsrun.StatusInfeasible, sol.Status)
	assert.Empty(t, sol.Values)
	assert.False(t, sol.HasObjective)
}

func TestDecode_RoundingOptions(t *testing.T) {
	x1 := &testVar{}
	sol, err := Decode(strings.NewReader(solvedBody), map[string]any{"x1": x1},
		WithRounding(2), WithPrecision(8))
	require.NoError(t, err)
	assert.InDelta(t, 3.14, sol.Values["x1"], 1e-12)
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solution.sol")
	writeFile(t, path, solvedBody)

	sol, err := DecodeFile(path, map[string]any{"x1": &testVar{}})
	require.NoError(t, err)
	assert.Equal(t, highsrun.StatusOptimal, sol.Status)
}

func TestDecodeFile_Missing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "absent.sol"), nil)
	require.Error(t, err)
}
