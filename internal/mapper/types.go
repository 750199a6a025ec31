// Package mapper implements the negative space engine: it scans a block of
// text for domain signals, names the expected elements that are not there,
// classifies each absence, and self-checks its own output for solution
// language. Text in, structured result out; nothing here performs I/O.
package mapper

// AbsenceType classifies why an expected element is missing.
type AbsenceType string

const (
	// TypeDeliberate marks elements the document explicitly scopes out.
	TypeDeliberate AbsenceType = "deliberate"
	// TypeOverlooked is the default: expected, not mentioned, no excuse found.
	TypeOverlooked AbsenceType = "overlooked"
	// TypeStructural marks elements the document cannot have yet, e.g. test
	// results for a purely conceptual idea.
	TypeStructural AbsenceType = "structural"
)

// Absence is a named void: an element the surrounding text made expected
// but which never appears.
type Absence struct {
	Name       string      `json:"name"`
	Type       AbsenceType `json:"type"`
	Context    string      `json:"context"`
	Confidence float64     `json:"confidence"`
}

// MappingResult is the engine's sole output per invocation. Absences are
// ordered by detector execution order, then insertion order within a
// detector. Names are unique only within a single detector; the same name
// surfacing from two detectors is kept twice.
type MappingResult struct {
	Statement       string    `json:"statement"`
	Absences        []Absence `json:"absences"`
	KernelCompliant bool      `json:"kernel_compliant"`
	Violation       string    `json:"violation,omitempty"`
}
