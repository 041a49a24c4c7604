package taskwarrior

import "strings"

// Quote wraps free text so the shell treats it as one opaque word. The value
// is surrounded by single quotes and every embedded single quote becomes the
// sequence '\'': the quoted span is terminated, a literal quote is emitted,
// and the span is reopened. Evaluating the result in a POSIX shell reproduces
// the original text exactly.
//
//	Quote("It's a test") == `'It'\''s a test'`
//
// This is the only escaping mechanism in the translation layer. Fields that
// are not free text (project, tag, priority, dates) are constrained by
// pattern or enum instead, and filter expressions are deliberately left raw.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
