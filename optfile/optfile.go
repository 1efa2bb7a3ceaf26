// Package optfile builds the options file the HiGHS executable reads.
//
// The file format is one "key = value" line per option. HiGHS ignores
// unknown keys with a warning, so optfile does not validate key names.
// Entries keep their insertion order: re-setting a key updates its value
// in place without moving it.
package optfile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Options is an ordered option dictionary.
//
// The zero value is not usable; call New. Options is not safe for
// concurrent use.
type Options struct {
	keys   []string
	values map[string]string
}

// New creates an empty option dictionary.
func New() *Options {
	return &Options{values: make(map[string]string)}
}

// Set stores an option. A key set for the first time is appended;
// re-setting an existing key updates its value without changing its
// position. Values are formatted with formatValue.
func (o *Options) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = formatValue(value)
}

// Get returns the formatted value for key, and false if key is unset.
func (o *Options) Get(key string) (string, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Delete removes key, preserving the order of the remaining entries.
// Deleting an absent key is a no-op.
func (o *Options) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of options.
func (o *Options) Len() int { return len(o.keys) }

// Keys returns the option keys in insertion order.
// The returned slice is a copy.
func (o *Options) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Merge applies every entry of src onto o, in src's insertion order.
// A nil src is a no-op.
func (o *Options) Merge(src *Options) {
	if src == nil {
		return
	}
	for _, k := range src.keys {
		o.Set(k, src.values[k])
	}
}

// Clone returns an independent copy with the same entries and order.
func (o *Options) Clone() *Options {
	c := New()
	c.Merge(o)
	return c
}

// Encode writes the options as "key = value" lines in insertion order.
func (o *Options) Encode(w io.Writer) error {
	var b strings.Builder
	for _, k := range o.keys {
		b.WriteString(k)
		b.WriteString(" = ")
		b.WriteString(o.values[k])
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile encodes the options to path, creating or truncating it.
func (o *Options) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("optfile: %w", err)
	}
	if err := o.Encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("optfile: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("optfile: %w", err)
	}
	return nil
}

// formatValue renders an option value the way HiGHS expects it on an
// options line. Floats use shortest round-trip formatting so values
// survive a write/read cycle exactly.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
