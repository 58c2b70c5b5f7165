// Package severity provides severity level constants for issues reported
// during code generation.
//
// All severity levels are re-exported by the public codegen package:
//   - SeverityInfo: Informational messages about choices made
//   - SeverityWarning: Fallback policies applied to ambiguous model states
//   - SeverityCritical: Model states that cannot be generated
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Critical
package severity

// Severity indicates the severity level of an issue found during generation.
type Severity int

const (
	// SeverityInfo indicates informational messages about generation choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a documented fallback policy was applied to an
	// ambiguous model state (e.g. a type-mismatched name collision was dropped).
	SeverityWarning

	// SeverityCritical indicates a model state that cannot be generated.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
