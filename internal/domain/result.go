package domain

// Tuple is one concrete combination of values, positionally aligned with the
// spec's argument names.
type Tuple []Value

// Table is the finalized parameter table for one test function: one test
// invocation per row, each row's values bound to Names in order.
type Table struct {
	Names []string `json:"names"`
	Rows  []Tuple  `json:"rows"`
	// IDs holds one display identifier per row. Nil means the external
	// framework generates default identifiers from the row values.
	IDs []string `json:"ids,omitempty"`
	// Label carries the spec's optional name, informational only.
	Label string `json:"label,omitempty"`
}

// SkipCode classifies why a test should be skipped instead of collected.
type SkipCode string

const (
	SkipDataNotFound   SkipCode = "data-not-found"
	SkipDataUnreadable SkipCode = "data-unreadable"
)

// SkipReason asks the external framework to skip a test, with a
// human-readable explanation.
type SkipReason struct {
	Code    SkipCode `json:"code"`
	Message string   `json:"message"`
}

// ResultKind is the outcome of generating a parametrization for one
// test function.
type ResultKind int

const (
	// NoParametrization means the function runs unparametrized under the
	// external framework's default behavior.
	NoParametrization ResultKind = iota
	// Parametrized means a finalized parameter table was emitted.
	Parametrized
	// Skipped means the framework should skip the function entirely.
	Skipped
)

// Result carries either a finalized parameter table or a structured skip
// reason, never both.
type Result struct {
	Kind  ResultKind
	Table *Table
	Skip  *SkipReason
}

// ParametrizedResult wraps a finalized parameter table.
func ParametrizedResult(table *Table) Result {
	return Result{Kind: Parametrized, Table: table}
}

// SkipResult requests a skip with the given code and message.
func SkipResult(code SkipCode, message string) Result {
	return Result{Kind: Skipped, Skip: &SkipReason{Code: code, Message: message}}
}

// NoResult reports that no parametrization applies to the function.
func NoResult() Result {
	return Result{Kind: NoParametrization}
}

// Status returns the result kind as a stable string, used in reports.
func (r Result) Status() string {
	switch r.Kind {
	case Parametrized:
		return "parametrized"
	case Skipped:
		return "skipped"
	}
	return "unparametrized"
}

// Collection pairs a location with the parametrization generated for it
// during one collection pass.
type Collection struct {
	Location Location
	Result   Result
}
