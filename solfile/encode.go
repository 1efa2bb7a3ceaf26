package solfile

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dmora/highsrun"
)

// EncodeWarmstart writes a warm-start file: the grammar subset HiGHS
// accepts via --read_solution_file. The header fields are fixed
// placeholders — HiGHS only reads the value rows — followed by one
// "<symbol> <value>" row per decision variable in the table.
//
// Values are written raw, with shortest round-trip formatting and no
// rounding or truncation. The asymmetry with the decode path is
// intentional: a warm start should hand the solver back exactly what the
// caller holds. Unassigned variables are encoded as 0.0.
//
// Rows are sorted by symbol so the output is deterministic.
func EncodeWarmstart(w io.Writer, symbols map[string]any) error {
	type row struct {
		symbol   string
		variable highsrun.Variable
	}
	rows := make([]row, 0, len(symbols))
	for symbol, entity := range symbols {
		if v, ok := entity.(highsrun.Variable); ok {
			rows = append(rows, row{symbol, v})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].symbol < rows[j].symbol })

	var b strings.Builder
	b.WriteString("Model status\n")
	b.WriteString("Unknown\n")
	b.WriteString("\n")
	b.WriteString(primalMarker + "\n")
	b.WriteString("Unknown\n")
	b.WriteString("Objective Unknown\n")
	fmt.Fprintf(&b, "# Columns %d\n", len(rows))
	for _, r := range rows {
		b.WriteString(r.symbol)
		b.WriteString(" ")
		if value, ok := r.variable.Value(); ok {
			b.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
		} else {
			b.WriteString("0.0")
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("solfile: encode warmstart: %w", err)
	}
	return nil
}

// EncodeWarmstartFile writes a warm-start file to path.
// See EncodeWarmstart.
func EncodeWarmstartFile(path string, symbols map[string]any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("solfile: %w", err)
	}
	if err := EncodeWarmstart(f, symbols); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("solfile: %w", err)
	}
	return nil
}
