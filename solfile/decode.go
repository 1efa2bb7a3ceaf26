package solfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmora/highsrun"
	"github.com/dmora/highsrun/internal/errfmt"
	"github.com/dmora/highsrun/internal/numeric"
)

// Literal markers of the solution-file grammar.
const (
	statusMarker = "Model status"
	primalMarker = "# Primal solution values"
)

// statusWindow is how many leading lines are scanned for the status
// marker. The status block sits at the very top of the file; scanning
// further would risk matching stray text in the numeric body.
const statusWindow = 11

// DecodeOptions holds resolved configuration for Decode.
type DecodeOptions struct {
	// RoundingDigits is the decimal-place rounding applied to decoded
	// decision-variable values. Defaults to highsrun.DefaultRoundingDigits.
	RoundingDigits int

	// Precision is the significant-digit count for the magnitude-adaptive
	// truncation step. Defaults to highsrun.DefaultPrecision.
	Precision int
}

// DecodeOption configures a Decode call.
type DecodeOption func(*DecodeOptions)

// WithRounding sets the decimal-place rounding for decoded values.
// Values < 0 are ignored.
func WithRounding(digits int) DecodeOption {
	return func(o *DecodeOptions) {
		if digits >= 0 {
			o.RoundingDigits = digits
		}
	}
}

// WithPrecision sets the significant-digit truncation precision.
// Values <= 0 are ignored.
func WithPrecision(precision int) DecodeOption {
	return func(o *DecodeOptions) {
		if precision > 0 {
			o.Precision = precision
		}
	}
}

func resolveDecodeOptions(opts ...DecodeOption) DecodeOptions {
	o := DecodeOptions{
		RoundingDigits: highsrun.DefaultRoundingDigits,
		Precision:      highsrun.DefaultPrecision,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Decode parses a completed solution file against a symbol table.
//
// Decode is all-or-nothing: it returns either a fully populated Solution
// or an error, never a partial result. Rows whose symbol is absent from
// the table are silently ignored (HiGHS emits basis and row metadata the
// caller does not track), as are rows denoting non-Variable entities. A
// row for a known [highsrun.Variable] that lacks a value token, or whose
// value fails numeric parsing, is a fatal [highsrun.DecodeError].
//
// Decoded variable values are normalized (rounding, then significant-digit
// truncation) and written back onto the Variable entities as well as into
// Solution.Values. A non-numeric objective leaves Solution.HasObjective
// false; the rest of the decode proceeds.
func Decode(r io.Reader, symbols map[string]any, opts ...DecodeOption) (*highsrun.Solution, error) {
	o := resolveDecodeOptions(opts...)

	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("solfile: read: %w", err)
	}

	sol := &highsrun.Solution{Values: make(map[string]float64)}
	decodeHeader(lines, sol)

	mi := markerIndex(lines)
	if mi < 0 {
		// No primal section at all. The completion heuristic normally
		// rules this out; treat it as an empty primal section.
		return sol, nil
	}
	if mi+1 < len(lines) {
		sol.Primal = lines[mi+1]
	}
	if mi+2 < len(lines) {
		decodeObjective(lines[mi+2], sol)
	}

	for i := mi + 3; i < len(lines); i++ {
		if err := decodeRow(lines[i], i+1, symbols, o, sol); err != nil {
			return nil, err
		}
	}
	return sol, nil
}

// DecodeFile opens path and decodes it. See Decode.
func DecodeFile(path string, symbols map[string]any, opts ...DecodeOption) (*highsrun.Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("solfile: %w", err)
	}
	defer f.Close()
	return Decode(f, symbols, opts...)
}

// decodeHeader captures the status string from the line following the
// status marker, scanning only the leading statusWindow lines.
func decodeHeader(lines []string, sol *highsrun.Solution) {
	limit := statusWindow
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		if strings.Contains(lines[i], statusMarker) && i+1 < len(lines) {
			sol.Status = highsrun.Status(lines[i+1])
			return
		}
	}
}

// markerIndex returns the index of the primal-section marker line,
// -1 if the file has no primal section.
func markerIndex(lines []string) int {
	for i, line := range lines {
		if strings.Contains(line, primalMarker) {
			return i
		}
	}
	return -1
}

// decodeObjective parses the "Objective <value>" line. Malformed values
// are swallowed and leave the objective unset — a deliberate lenient
// policy: the field is informational, and warm-start files legitimately
// carry "Objective Unknown".
func decodeObjective(line string, sol *highsrun.Solution) {
	_, rest := splitRow(line)
	v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return
	}
	sol.Objective = v
	sol.HasObjective = true
}

// decodeRow handles one line of the value body. lineNum is 1-based.
func decodeRow(line string, lineNum int, symbols map[string]any, o DecodeOptions, sol *highsrun.Solution) error {
	symbol, rest := splitRow(line)
	entity, known := symbols[symbol]
	if !known {
		return nil // metadata or untracked row
	}
	variable, ok := entity.(highsrun.Variable)
	if !ok {
		return nil // tracked, but not a decision entity
	}

	if rest == "" {
		return &highsrun.DecodeError{
			Symbol:  symbol,
			Line:    lineNum,
			Content: errfmt.Truncate(line),
			Err:     highsrun.ErrIncompleteSolution,
		}
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return &highsrun.DecodeError{
			Symbol:  symbol,
			Line:    lineNum,
			Content: errfmt.Truncate(line),
			Err:     fmt.Errorf("parse value: %w", err),
		}
	}

	normalized := numeric.Normalize(value, o.RoundingDigits, o.Precision)
	variable.SetValue(normalized)
	sol.Values[symbol] = normalized
	return nil
}

// splitRow splits a line on the first space into (symbol, rest).
// Lines with no space return the whole line as symbol and "" as rest.
func splitRow(line string) (string, string) {
	symbol, rest, _ := strings.Cut(line, " ")
	return symbol, rest
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
