package optfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_InsertionOrder(t *testing.T) {
	o := New()
	o.Set("presolve", "on")
	o.Set("threads", 4)
	o.Set("mip_rel_gap", 0.01)

	assert.Equal(t, []string{"presolve", "threads", "mip_rel_gap"}, o.Keys())
}

func TestOptions_ResetKeepsPosition(t *testing.T) {
	o := New()
	o.Set("a", 1)
	o.Set("b", 2)
	o.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, o.Keys())
	v, ok := o.Get("a")
	require.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestOptions_Encode(t *testing.T) {
	o := New()
	o.Set("presolve", "on")
	o.Set("time_limit", 12.5)
	o.Set("output_flag", false)

	var b strings.Builder
	require.NoError(t, o.Encode(&b))
	assert.Equal(t, "presolve = on\ntime_limit = 12.5\noutput_flag = false\n", b.String())
}

func TestOptions_Delete(t *testing.T) {
	o := New()
	o.Set("a", 1)
	o.Set("b", 2)
	o.Set("c", 3)
	o.Delete("b")
	o.Delete("missing") // no-op

	assert.Equal(t, []string{"a", "c"}, o.Keys())
	_, ok := o.Get("b")
	assert.False(t, ok)
}

func TestOptions_MergeOrder(t *testing.T) {
	dst := New()
	dst.Set("a", 1)
	src := New()
	src.Set("b", 2)
	src.Set("a", 9) // updates in place, keeps a's slot

	dst.Merge(src)
	assert.Equal(t, []string{"a", "b"}, dst.Keys())
	v, _ := dst.Get("a")
	assert.Equal(t, "9", v)

	dst.Merge(nil) // no-op
	assert.Equal(t, 2, dst.Len())
}

func TestOptions_CloneIsIndependent(t *testing.T) {
	o := New()
	o.Set("a", 1)
	c := o.Clone()
	c.Set("b", 2)

	assert.Equal(t, 1, o.Len())
	assert.Equal(t, 2, c.Len())
}

func TestOptions_WriteFile(t *testing.T) {
	o := New()
	o.Set("log_file", "tmp/run.log")

	path := filepath.Join(t.TempDir(), "options.txt")
	require.NoError(t, o.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_file = tmp/run.log\n", string(data))
}

func TestFormatValue_FloatRoundTrip(t *testing.T) {
	// Shortest round-trip formatting: no trailing zero noise.
	o := New()
	o.Set("gap", 0.1)
	v, _ := o.Get("gap")
	assert.Equal(t, "0.1", v)
}

func ExampleOptions_Encode() {
	o := New()
	o.Set("presolve", "on")
	o.Set("threads", 2)
	var b strings.Builder
	_ = o.Encode(&b)
	fmt.Print(b.String())
	// Output:
	// presolve = on
	// threads = 2
}
