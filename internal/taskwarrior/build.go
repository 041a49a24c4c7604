package taskwarrior

import (
	"fmt"
	"strings"
	"unicode"
)

// Invocation is a fully-built engine command line: an ordered token sequence
// plus an optional shell override. Tokens are joined with single spaces by
// the runner; every token is already either shell-escaped, pattern-validated,
// or explicitly trusted raw text (filters).
type Invocation struct {
	Tokens []string

	// Shell overrides the runner's default shell. Only the bulk-modify
	// builder sets it, because its affirmative-answer pipe is a shell
	// construct rather than a plain argument vector.
	Shell string
}

// CommandLine returns the tokens joined into the literal command line.
func (inv *Invocation) CommandLine() string {
	return strings.Join(inv.Tokens, " ")
}

// modifierTokens emits the shared modifier sequence in its fixed order:
// description, the date fields (due, start, wait, until, scheduled), the stop
// flag, priority, project, depends, +tags, -tags, and finally cleared fields.
// Date values are validated against the shorthand grammar here, immediately
// before emission.
func modifierTokens(r *Request, addPath bool) ([]string, error) {
	var tokens []string

	if r.Description != "" {
		tokens = append(tokens, Quote(string(r.Description)))
	}

	dates := []struct{ name, value string }{
		{"due", r.Due}, {"start", r.Start}, {"wait", r.Wait},
		{"until", r.Until}, {"scheduled", r.Scheduled},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		if !ValidDate(d.value) {
			return nil, &DateFormatError{Field: d.name, Value: d.value}
		}
		tokens = append(tokens, d.name+":"+d.value)
	}

	if r.Stop {
		// An empty-valued modifier clears the active-start timestamp.
		tokens = append(tokens, "start:")
	}
	if r.Priority != "" {
		tokens = append(tokens, "priority:"+r.Priority)
	}
	if r.Project != "" {
		if addPath {
			tokens = append(tokens, Quote("project:"+r.Project))
		} else {
			tokens = append(tokens, "project:"+r.Project)
		}
	}
	if len(r.Depends) > 0 {
		tokens = append(tokens, "depends:"+strings.Join(r.Depends, ","))
	}
	for _, tag := range r.TagsAdd {
		tokens = append(tokens, "+"+tag)
	}
	for _, tag := range r.TagsRemove {
		tokens = append(tokens, "-"+tag)
	}
	for _, field := range r.ClearFields {
		tokens = append(tokens, field+":")
	}

	return tokens, nil
}

func buildAdd(bin string, r *Request) (*Invocation, error) {
	mods, err := modifierTokens(r, true)
	if err != nil {
		return nil, err
	}
	return &Invocation{Tokens: append([]string{bin, "add"}, mods...)}, nil
}

func buildModify(bin string, r *Request) (*Invocation, error) {
	mods, err := modifierTokens(r, false)
	if err != nil {
		return nil, err
	}
	return &Invocation{Tokens: append([]string{bin, r.ID, "modify"}, mods...)}, nil
}

// buildModifyBulk targets every task matched by the filter. The engine
// prompts for confirmation when a filter matches more than one task, so the
// command is prefixed with a piped affirmative answer; choosing this
// operation over modify_task is the caller's opt-in to that.
func buildModifyBulk(bin string, r *Request) (*Invocation, error) {
	mods, err := modifierTokens(r, false)
	if err != nil {
		return nil, err
	}
	tokens := []string{"echo", "'yes'", "|", bin, string(r.Filter), "modify"}
	return &Invocation{
		Tokens: append(tokens, mods...),
		Shell:  "/bin/bash",
	}, nil
}

func buildDelete(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: []string{bin, "rc.confirmation:off", r.ID, "delete"}}, nil
}

func buildDone(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: []string{bin, r.ID, "done"}}, nil
}

func buildStart(bin string, r *Request) (*Invocation, error) {
	if r.Stop {
		return &Invocation{Tokens: []string{bin, r.ID, "modify", "start:"}}, nil
	}
	return &Invocation{Tokens: []string{bin, r.ID, "start"}}, nil
}

func buildAnnotate(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: []string{bin, r.ID, "annotate", Quote(string(r.Annotation))}}, nil
}

func buildAppend(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: []string{bin, r.ID, "append", Quote(string(r.Text))}}, nil
}

func buildPrepend(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: []string{bin, r.ID, "prepend", Quote(string(r.Text))}}, nil
}

func buildDuplicate(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: []string{bin, "rc.confirmation:off", r.ID, "duplicate"}}, nil
}

func buildUndo(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: []string{bin, "rc.confirmation:off", "undo"}}, nil
}

func buildList(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: []string{bin, string(r.Filter), "export"}}, nil
}

func buildCount(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: filteredCommand(bin, r.Filter, "count")}, nil
}

func buildInfo(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: []string{bin, r.ID, "information"}}, nil
}

func buildNext(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: filteredCommand(bin, r.Filter, "next")}, nil
}

func buildReport(bin string, r *Request) (*Invocation, error) {
	return &Invocation{Tokens: filteredCommand(bin, r.Filter, r.Report)}, nil
}

// buildCustomReport runs a named report, optionally overriding its columns,
// labels and sort order for this invocation only. The overrides are rc
// settings scoped to the report, so nothing persists in the engine's
// configuration.
func buildCustomReport(bin string, r *Request) (*Invocation, error) {
	tokens := []string{bin}

	if len(r.Columns) > 0 {
		labels := make([]string, len(r.Columns))
		for i, col := range r.Columns {
			labels[i] = titleLabel(col)
		}
		tokens = append(tokens,
			fmt.Sprintf("rc.report.%s.columns:%s", r.Report, strings.Join(r.Columns, ",")),
			fmt.Sprintf("rc.report.%s.labels:%s", r.Report, strings.Join(labels, ",")),
		)
	}
	if len(r.Sort) > 0 {
		tokens = append(tokens, fmt.Sprintf("rc.report.%s.sort:%s", r.Report, strings.Join(r.Sort, ",")))
	}
	if r.Filter != "" {
		tokens = append(tokens, string(r.Filter))
	}
	return &Invocation{Tokens: append(tokens, r.Report)}, nil
}

// filteredCommand places an optional filter between the binary and the
// command name, matching the engine's `<filters> <command>` token order.
func filteredCommand(bin string, filter Filter, command string) []string {
	if filter == "" {
		return []string{bin, command}
	}
	return []string{bin, string(filter), command}
}

// titleLabel derives a column's display label by upper-casing its first rune.
func titleLabel(column string) string {
	if column == "" {
		return ""
	}
	runes := []rune(column)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
