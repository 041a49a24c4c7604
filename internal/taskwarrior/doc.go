// Package taskwarrior translates catalog operations into Taskwarrior
// command-line invocations.
//
// The package owns the full request pipeline: a schema validator that turns
// raw tool arguments into a typed Request, an argument builder that encodes
// the request as a shell-safe token sequence, and a runner that executes the
// resulting command line against the external `task` binary and captures its
// output. The operation catalog is closed: every supported operation is a
// compile-time constant with its own schema and builder.
//
// The engine's filter/query language is never parsed or validated here.
// Filter strings travel through the pipeline raw, as a documented trust
// boundary; free-text fields (descriptions, annotations) are always
// shell-escaped instead.
package taskwarrior
