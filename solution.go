package highsrun

// Status is the solver's textual model status, as written in the solution
// file on the line following the "Model status" marker.
type Status string

// Statuses emitted by HiGHS. The zero value is not a valid status; decode
// reports whatever string the solver wrote, so callers comparing against
// these constants should treat unrecognized values as StatusUnknown-like.
const (
	// StatusOptimal indicates an optimal solution was found.
	StatusOptimal Status = "Optimal"

	// StatusInfeasible indicates the model is infeasible.
	StatusInfeasible Status = "Infeasible"

	// StatusUnbounded indicates the model is unbounded.
	StatusUnbounded Status = "Unbounded"

	// StatusTimeLimit indicates the solve terminated at the time limit.
	StatusTimeLimit Status = "Time limit reached"

	// StatusUnknown indicates the solver could not classify the outcome.
	// Warm-start files use it as a placeholder header value.
	StatusUnknown Status = "Unknown"
)

// Solution contains the results from one solve.
//
// A Solution is created fresh per solve and is not retained by the solver;
// decoded values are additionally written back onto the caller's [Variable]
// entities.
type Solution struct {
	// Status indicates the outcome of the solve.
	Status Status

	// Objective is the objective value at the solution.
	// Only meaningful when HasObjective is true.
	Objective float64

	// HasObjective reports whether the objective line parsed numerically.
	// False when the solver wrote a non-numeric objective (e.g. "Unknown"
	// in a warm-start file) — a lenient zone, not an error.
	HasObjective bool

	// Primal is the raw primal-count line following the
	// "# Primal solution values" marker, as written by the solver.
	Primal string

	// Values maps decision-variable symbols to their decoded, normalized
	// solution values. Only symbols present in the model's symbol table
	// and denoting a [Variable] appear here.
	Values map[string]float64
}

// IsOptimal returns true if the solution is optimal.
func (s *Solution) IsOptimal() bool { return s.Status == StatusOptimal }

// IsInfeasible returns true if the model is infeasible.
func (s *Solution) IsInfeasible() bool { return s.Status == StatusInfeasible }

// IsUnbounded returns true if the model is unbounded.
func (s *Solution) IsUnbounded() bool { return s.Status == StatusUnbounded }

// IsTimeLimit returns true if the solve terminated due to time limit.
func (s *Solution) IsTimeLimit() bool { return s.Status == StatusTimeLimit }

// Value returns the solution value for a symbol.
// Returns 0 if the symbol was not decoded.
func (s *Solution) Value(symbol string) float64 {
	return s.Values[symbol]
}
