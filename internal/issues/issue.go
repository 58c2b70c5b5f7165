// Package issues provides a unified issue type for code generation problems.
package issues

import (
	"fmt"

	"github.com/oxidegen/oxidegen/internal/severity"
)

// Issue represents a single problem found during generation.
type Issue struct {
	// Path locates the problematic model element (e.g., "Pet./pets/{id}.GET")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Context provides additional information about the issue (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s [%s] %s", symbol, i.Path, i.Message)
	if i.Context != "" {
		result = fmt.Sprintf("%s (%s)", result, i.Context)
	}
	return result
}
