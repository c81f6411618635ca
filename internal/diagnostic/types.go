package diagnostic

import (
	"fmt"
	"strings"

	"cd2-converter/internal/common"
)

// Codes for every advisory condition the converter can report.
const (
	CodeMissingField      = "missing-field"
	CodeUnsupportedField  = "unsupported-field"
	CodeDeprecatedField   = "deprecated-field"
	CodeUnsupportedStat   = "unsupported-pawn-stat"
	CodeInvalidControl    = "invalid-enemy-control"
	CodeNonVanillaElite   = "non-vanilla-elite-base"
	CodeMultilineDetected = "multiline-description"
	CodeUnterminatedSpan  = "unterminated-description"
)

// Diagnostic represents a single advisory message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Field identifies which source key or stat this relates to (if any).
	Field string
	// Suggestions are nearby known names the author may have meant.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// Infof builds an info diagnostic with a formatted message.
func Infof(code, field, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Warningf builds a warning diagnostic with a formatted message.
func Warningf(code, field, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Field != "" {
		msg = d.Field + ": " + msg
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	return d.Severity.String() + ": " + msg
}

// Sink receives advisory diagnostics during conversion. Implementations must
// not fail; reporting never influences control flow.
type Sink interface {
	Report(d Diagnostic)
}

// Collector is a Sink that accumulates diagnostics by severity.
type Collector struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Report appends the diagnostic to the slice matching its severity.
func (c *Collector) Report(d Diagnostic) {
	switch d.Severity {
	case SeverityWarning:
		c.Warnings = append(c.Warnings, d)
	default:
		c.Infos = append(c.Infos, d)
	}
}

// HasWarnings returns true if any warning diagnostics were collected.
func (c *Collector) HasWarnings() bool {
	return !common.IsEmpty(c.Warnings)
}

// Merge merges another Collector into this one.
func (c *Collector) Merge(other Collector) {
	c.Warnings = append(c.Warnings, other.Warnings...)
	c.Infos = append(c.Infos, other.Infos...)
}

// Discard is a Sink that drops every diagnostic.
type Discard struct{}

// Report implements Sink.
func (Discard) Report(Diagnostic) {}
