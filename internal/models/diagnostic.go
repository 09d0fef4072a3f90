package models

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Severity classifies a diagnostic.
type Severity string

const (
	// SeverityError marks a problem that makes part of the result incomplete
	// or untrustworthy. It never aborts extraction.
	SeverityError Severity = "error"
	// SeverityWarning marks a tolerated anomaly, such as an unrecognized
	// attribute or a value that could not be statically evaluated.
	SeverityWarning Severity = "warning"
)

// Diagnostic is a non-fatal, located report of a parsing, schema, or merge
// anomaly. Identical diagnostics are never deduplicated; each misconfiguration
// produces its own entry.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Summary  string   `json:"summary"`
	Detail   string   `json:"detail,omitempty"`

	// Pos is nil when the anomaly has no precise location, e.g. some
	// cross-file merge conflicts.
	Pos *SourcePos `json:"pos,omitempty"`
}

// Error returns a human-readable rendering of the diagnostic.
func (d *Diagnostic) Error() string {
	if d.Pos != nil {
		return fmt.Sprintf("%s: %s (%s:%d,%d)", d.Severity, d.Summary, d.Pos.Filename, d.Pos.Line, d.Pos.Column)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Summary)
}

// Diagnostics is an ordered collection of diagnostics.
type Diagnostics []*Diagnostic

// HasErrors reports whether the collection contains at least one
// error-severity diagnostic.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorDiag creates an error-severity diagnostic located at rng.
func ErrorDiag(summary, detail string, rng hcl.Range) *Diagnostic {
	pos := SourcePosHCL(rng)
	return &Diagnostic{Severity: SeverityError, Summary: summary, Detail: detail, Pos: &pos}
}

// WarnDiag creates a warning-severity diagnostic located at rng.
func WarnDiag(summary, detail string, rng hcl.Range) *Diagnostic {
	pos := SourcePosHCL(rng)
	return &Diagnostic{Severity: SeverityWarning, Summary: summary, Detail: detail, Pos: &pos}
}

// DiagnosticsHCL converts diagnostics produced by the HCL parser into the
// inspector's representation, preserving order and severity.
func DiagnosticsHCL(diags hcl.Diagnostics) Diagnostics {
	if len(diags) == 0 {
		return nil
	}
	out := make(Diagnostics, 0, len(diags))
	for _, diag := range diags {
		severity := SeverityWarning
		if diag.Severity == hcl.DiagError {
			severity = SeverityError
		}
		converted := &Diagnostic{
			Severity: severity,
			Summary:  diag.Summary,
			Detail:   diag.Detail,
		}
		if diag.Subject != nil {
			pos := SourcePosHCL(*diag.Subject)
			converted.Pos = &pos
		}
		out = append(out, converted)
	}
	return out
}
