package taskwarrior

import (
	"fmt"
	"strings"
)

// FieldError names a single field that failed validation and the rule it violated.
type FieldError struct {
	Field string
	Rule  string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Rule
}

// ValidationError reports every schema rule a request violated. It is produced
// before any command is built; no process is spawned for an invalid request.
type ValidationError struct {
	Op     Operation
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("invalid arguments for %s: %s", e.Op, strings.Join(parts, "; "))
}

// DateFormatError reports a date field whose value matches none of the
// accepted shorthand grammars. It is raised by the argument builder
// immediately before the field would be emitted.
type DateFormatError struct {
	Field string
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid date; accepted forms: ISO-8601 (2025-01-31 or 2025-01-31T09:00), signed offset ([+-]<n><d|w|m|q|y>), a named date (eom, eoq, eoy, som, soq, soy, today, tomorrow, yesterday, now), a weekday name, a month name, or an ordinal day (1st..31st)",
		e.Field, e.Value)
}

// ExecutionError reports a failed engine invocation: a non-zero exit or output
// beyond the capture cap. Message carries the engine's own diagnostic text.
type ExecutionError struct {
	Message string
	Err     error
}

func (e *ExecutionError) Error() string {
	return e.Message
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// UnknownOperationError reports a dispatch against an operation name outside
// the closed catalog. No validation is attempted for unknown operations.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Name)
}
