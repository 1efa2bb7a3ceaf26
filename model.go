package highsrun

// Model is the externally-owned modeling object a solve operates on.
//
// The solver never builds or validates models; it only asks the model to
// serialize itself to the model file HiGHS will read, and consumes the
// model's symbol table to interpret the solution file. Decoded values are
// written back onto the entities the table denotes.
//
// Model is an interface to keep highsrun independent of any particular
// modeling layer — anything that can write an .mps/.lp file and name its
// entities can be solved.
type Model interface {
	// WriteModel serializes the model to path in a format the HiGHS
	// executable accepts (.mps or .lp, chosen by file extension).
	// When symbolic is true, entity names in the file use the model's
	// symbolic labels rather than generated ones.
	WriteModel(path string, symbolic bool) error

	// Symbols returns the solver-visible symbol table: each solver-assigned
	// symbol mapped to the model entity it denotes. Symbols are unique;
	// several symbols may denote the same entity. Entities that satisfy
	// [Variable] are decision variables and receive decoded values;
	// everything else is passively tracked.
	Symbols() map[string]any
}

// Variable is a mutable decision entity. Symbol-table entries are probed
// for this capability by type assertion — entries that do not satisfy it
// (objectives, constraints, row metadata) never receive values.
type Variable interface {
	// Value returns the current assigned value, and false if the
	// variable has no assignment yet.
	Value() (float64, bool)

	// SetValue assigns a solution value to the variable.
	SetValue(v float64)
}
