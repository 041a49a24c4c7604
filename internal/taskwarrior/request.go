package taskwarrior

// FreeText is caller-supplied prose: task descriptions, annotations, appended
// or prepended text. A FreeText value is always shell-escaped before it is
// placed on a command line, regardless of content.
type FreeText string

// Filter is a raw expression in the engine's filter/query language. Filters
// are passed to the engine verbatim and are never escaped or validated; the
// caller is responsible for their well-formedness. Keeping Filter a distinct
// type from FreeText makes the trust boundary structural: a field cannot
// silently move from one side to the other.
type Filter string

// Request is a validated, typed request for a single catalog operation.
// Which fields are populated depends on the operation's schema; the builder
// for that operation reads only the fields its schema admits.
type Request struct {
	Op Operation

	// ID is a task identifier: a positive integer row id or a UUID.
	ID string

	Description FreeText
	Annotation  FreeText
	Text        FreeText // append/prepend text

	Filter Filter

	Priority string // H, M or L
	Project  string

	// Date shorthand fields, validated for format by the builder.
	Due       string
	Start     string
	Wait      string
	Until     string
	Scheduled string

	Depends     []string // task identifiers this task depends on
	TagsAdd     []string
	TagsRemove  []string
	ClearFields []string // attribute names to reset to empty

	// Stop, on start_task, clears the active-start timestamp instead of
	// setting one.
	Stop bool

	Report  string   // builtin, visualization or custom report name
	Columns []string // custom report column overrides
	Sort    []string // custom report sort overrides
}
