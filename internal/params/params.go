// Package params normalizes loosely-typed tool parameters.
//
// MCP clients send arguments as decoded JSON, so a list-valued parameter may
// arrive as a single string, a []any of strings, or (from internal callers) a
// []string. Validation happens elsewhere; this package only normalizes shape.
package params

import (
	"errors"
	"fmt"
)

// StringOrList normalizes a parameter that may be a single string or a list
// of strings. Empty strings and empty lists are rejected: an explicitly empty
// value is distinct from an absent one, and never silently accepted.
func StringOrList(v any) ([]string, error) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return nil, errors.New("must not be empty")
		}
		return []string{val}, nil
	case []string:
		if len(val) == 0 {
			return nil, errors.New("must not be empty")
		}
		for i, s := range val {
			if s == "" {
				return nil, fmt.Errorf("element %d must not be empty", i)
			}
		}
		return val, nil
	case []any:
		if len(val) == 0 {
			return nil, errors.New("must not be empty")
		}
		out := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d must be a string", i)
			}
			if s == "" {
				return nil, fmt.Errorf("element %d must not be empty", i)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New("must be a string or a list of strings")
	}
}
