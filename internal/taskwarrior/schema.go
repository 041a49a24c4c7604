package taskwarrior

import (
	"regexp"
	"strings"

	"github.com/taskwarden/taskwarden/internal/params"
)

// Field character sets. Pattern-constrained fields fail validation rather
// than being sanitized: the caller must supply well-formed values, this layer
// never coerces them. The constrained character sets are also what lets these
// fields go onto the command line unescaped.
var (
	identifierPattern = regexp.MustCompile(`^([0-9]+|[0-9a-fA-F]{8}(-[0-9a-fA-F]{4}){3}-[0-9a-fA-F]{12}|[0-9a-fA-F]{8})$`)
	projectPattern    = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	tagPattern        = regexp.MustCompile(`^[@A-Za-z0-9_-]+$`)
	reportNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	columnPattern     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._]*$`)
	sortColumnPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._]*[+-]?$`)
)

// clearableFields are the task attributes that may be reset to empty via
// clear_fields.
var clearableFields = []string{
	"due", "start", "wait", "until", "scheduled", "priority", "project", "depends",
}

type fieldKind int

const (
	kindFreeText fieldKind = iota
	kindFilter
	kindIdentifier
	kindDate
	kindEnum
	kindPattern
	kindBool
	kindList
	kindClearFields
)

// fieldSpec declares one accepted request field: its shape, its constraint,
// and how a valid value lands in the typed Request.
type fieldSpec struct {
	name      string
	kind      fieldKind
	required  bool
	enum      []string
	pattern   *regexp.Regexp
	rule      string // human-readable constraint for error messages
	setString func(r *Request, v string)
	setBool   func(r *Request, v bool)
	setList   func(r *Request, v []string)
}

func freeTextField(name string, required bool, set func(*Request, string)) fieldSpec {
	return fieldSpec{name: name, kind: kindFreeText, required: required, setString: set}
}

func filterField(required bool) fieldSpec {
	return fieldSpec{name: "filter", kind: kindFilter, required: required,
		setString: func(r *Request, v string) { r.Filter = Filter(v) }}
}

func identifierField(required bool) fieldSpec {
	return fieldSpec{name: "identifier", kind: kindIdentifier, required: required,
		setString: func(r *Request, v string) { r.ID = v }}
}

func dateField(name string) fieldSpec {
	// Format is checked by the builder immediately before emission; the
	// schema only pins down presence and shape.
	return fieldSpec{name: name, kind: kindDate, setString: func(r *Request, v string) {
		switch name {
		case "due":
			r.Due = v
		case "start":
			r.Start = v
		case "wait":
			r.Wait = v
		case "until":
			r.Until = v
		case "scheduled":
			r.Scheduled = v
		}
	}}
}

func enumField(name string, required bool, values []string, set func(*Request, string)) fieldSpec {
	return fieldSpec{name: name, kind: kindEnum, required: required, enum: values, setString: set}
}

func patternField(name string, required bool, p *regexp.Regexp, rule string, set func(*Request, string)) fieldSpec {
	return fieldSpec{name: name, kind: kindPattern, required: required, pattern: p, rule: rule, setString: set}
}

func boolField(name string, set func(*Request, bool)) fieldSpec {
	return fieldSpec{name: name, kind: kindBool, setBool: set}
}

func listField(name string, itemPattern *regexp.Regexp, rule string, set func(*Request, []string)) fieldSpec {
	return fieldSpec{name: name, kind: kindList, pattern: itemPattern, rule: rule, setList: set}
}

func clearFieldsField() fieldSpec {
	return fieldSpec{name: "clear_fields", kind: kindClearFields,
		setList: func(r *Request, v []string) { r.ClearFields = v }}
}

// validate checks raw arguments against an operation's field set and produces
// a typed Request. Every offending field is reported, not just the first.
// Absence is distinct from emptiness: an absent optional field is fine, an
// explicitly empty value never is. Unknown extra arguments are ignored.
func validate(op Operation, fields []fieldSpec, raw map[string]any) (*Request, error) {
	req := &Request{Op: op}
	var errs []FieldError

	fail := func(name, rule string) {
		errs = append(errs, FieldError{Field: name, Rule: rule})
	}

	for _, f := range fields {
		v, present := raw[f.name]
		if !present || v == nil {
			if f.required {
				fail(f.name, "required")
			}
			continue
		}

		switch f.kind {
		case kindBool:
			b, ok := v.(bool)
			if !ok {
				fail(f.name, "must be a boolean")
				continue
			}
			f.setBool(req, b)

		case kindList:
			items, err := params.StringOrList(v)
			if err != nil {
				fail(f.name, err.Error())
				continue
			}
			ok := true
			for _, item := range items {
				if !f.pattern.MatchString(item) {
					fail(f.name, "element "+quoted(item)+" must be "+f.rule)
					ok = false
				}
			}
			if ok {
				f.setList(req, items)
			}

		case kindClearFields:
			items, err := params.StringOrList(v)
			if err != nil {
				fail(f.name, err.Error())
				continue
			}
			ok := true
			for _, item := range items {
				if !containsString(clearableFields, item) {
					fail(f.name, quoted(item)+" is not clearable; clearable fields: "+strings.Join(clearableFields, ", "))
					ok = false
				}
			}
			if ok {
				f.setList(req, items)
			}

		default:
			s, ok := v.(string)
			if !ok {
				fail(f.name, "must be a string")
				continue
			}
			if s == "" {
				fail(f.name, "must not be empty")
				continue
			}
			switch f.kind {
			case kindIdentifier:
				if !identifierPattern.MatchString(s) {
					fail(f.name, "must be a positive integer id or a UUID")
					continue
				}
			case kindEnum:
				if !containsString(f.enum, s) {
					fail(f.name, "must be one of: "+strings.Join(f.enum, ", "))
					continue
				}
			case kindPattern:
				if !f.pattern.MatchString(s) {
					fail(f.name, "must contain only "+f.rule)
					continue
				}
			}
			f.setString(req, s)
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Op: op, Fields: errs}
	}
	return req, nil
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func quoted(s string) string {
	return `"` + s + `"`
}
