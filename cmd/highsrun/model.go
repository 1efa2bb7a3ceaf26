package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dmora/highsrun"
)

// fileModel adapts a prepared model file into a highsrun.Model. The file
// is copied verbatim into the solve's working directory; the symbolic
// flag has no effect since the entity names are already fixed on disk.
type fileModel struct {
	source  string
	symbols map[string]any
}

var _ highsrun.Model = (*fileModel)(nil)

func newFileModel(source string, columns []string) *fileModel {
	symbols := make(map[string]any, len(columns))
	for _, name := range columns {
		symbols[name] = &column{}
	}
	return &fileModel{source: source, symbols: symbols}
}

func (m *fileModel) WriteModel(path string, _ bool) error {
	src, err := os.Open(m.source)
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("model: copy: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	return nil
}

func (m *fileModel) Symbols() map[string]any { return m.symbols }

// column is a minimal decision variable: just an assignable value slot.
type column struct {
	value float64
	set   bool
}

var _ highsrun.Variable = (*column)(nil)

func (c *column) Value() (float64, bool) { return c.value, c.set }

func (c *column) SetValue(v float64) {
	c.value = v
	c.set = true
}
