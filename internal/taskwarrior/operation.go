package taskwarrior

import "sort"

// Operation names one of the fixed task-management actions this layer
// supports. The catalog is closed: dispatching any other name yields
// UnknownOperationError without attempting validation.
type Operation string

const (
	OpAddTask                Operation = "add_task"
	OpModifyTask             Operation = "modify_task"
	OpModifyTasksBulk        Operation = "modify_tasks_bulk"
	OpDeleteTask             Operation = "delete_task"
	OpMarkTaskDone           Operation = "mark_task_done"
	OpStartTask              Operation = "start_task"
	OpAnnotateTask           Operation = "annotate_task"
	OpAppendToTask           Operation = "append_to_task"
	OpPrependToTask          Operation = "prepend_to_task"
	OpDuplicateTask          Operation = "duplicate_task"
	OpUndoLastAction         Operation = "undo_last_action"
	OpListTasks              Operation = "list_tasks"
	OpCountTasks             Operation = "count_tasks"
	OpGetTaskInfo            Operation = "get_task_info"
	OpGetNextTasks           Operation = "get_next_tasks"
	OpRunBuiltinReport       Operation = "run_builtin_report"
	OpRunVisualizationReport Operation = "run_visualization_report"
	OpRunCustomReport        Operation = "run_custom_report"
)

// BuiltinReports are the engine's built-in tabular reports accepted by
// run_builtin_report.
var BuiltinReports = []string{
	"active", "all", "blocked", "blocking", "completed", "list", "long",
	"ls", "minimal", "newest", "next", "oldest", "overdue", "ready",
	"recurring", "unblocked", "waiting",
}

// VisualizationReports are the engine's chart and calendar style reports
// accepted by run_visualization_report.
var VisualizationReports = []string{
	"burndown.daily", "burndown.weekly", "burndown.monthly",
	"calendar",
	"ghistory.annual", "ghistory.monthly",
	"history.annual", "history.monthly",
	"summary", "timesheet",
}

// operationSpec pairs an operation's input schema with its argument builder.
type operationSpec struct {
	fields []fieldSpec
	build  func(bin string, r *Request) (*Invocation, error)
	writes bool
}

// modifierFields is the field set shared by the modify-family operations.
func modifierFields() []fieldSpec {
	return []fieldSpec{
		freeTextField("description", false, assignDescription),
		dateField("due"), dateField("start"), dateField("wait"),
		dateField("until"), dateField("scheduled"),
		enumField("priority", false, []string{"H", "M", "L"}, func(r *Request, s string) { r.Priority = s }),
		patternField("project", false, projectPattern, "letters, digits, dots, hyphens and underscores", func(r *Request, s string) { r.Project = s }),
		listField("depends", identifierPattern, "a positive integer id or a UUID", func(r *Request, v []string) { r.Depends = v }),
		listField("tags", tagPattern, "tag characters ([@A-Za-z0-9_-])", func(r *Request, v []string) { r.TagsAdd = v }),
		listField("remove_tags", tagPattern, "tag characters ([@A-Za-z0-9_-])", func(r *Request, v []string) { r.TagsRemove = v }),
		clearFieldsField(),
	}
}

var catalog = map[Operation]operationSpec{
	OpAddTask: {
		writes: true,
		fields: append([]fieldSpec{
			freeTextField("description", true, assignDescription),
		}, modifierFieldsExcept("description", "clear_fields", "remove_tags")...),
		build: buildAdd,
	},
	OpModifyTask: {
		writes: true,
		fields: append([]fieldSpec{identifierField(true)}, modifierFields()...),
		build:  buildModify,
	},
	OpModifyTasksBulk: {
		writes: true,
		fields: append([]fieldSpec{filterField(true)}, modifierFields()...),
		build:  buildModifyBulk,
	},
	OpDeleteTask: {
		writes: true,
		fields: []fieldSpec{identifierField(true)},
		build:  buildDelete,
	},
	OpMarkTaskDone: {
		writes: true,
		fields: []fieldSpec{identifierField(true)},
		build:  buildDone,
	},
	OpStartTask: {
		writes: true,
		fields: []fieldSpec{
			identifierField(true),
			boolField("stop", func(r *Request, b bool) { r.Stop = b }),
		},
		build: buildStart,
	},
	OpAnnotateTask: {
		writes: true,
		fields: []fieldSpec{
			identifierField(true),
			freeTextField("annotation", true, func(r *Request, s string) { r.Annotation = FreeText(s) }),
		},
		build: buildAnnotate,
	},
	OpAppendToTask: {
		writes: true,
		fields: []fieldSpec{
			identifierField(true),
			freeTextField("text", true, assignText),
		},
		build: buildAppend,
	},
	OpPrependToTask: {
		writes: true,
		fields: []fieldSpec{
			identifierField(true),
			freeTextField("text", true, assignText),
		},
		build: buildPrepend,
	},
	OpDuplicateTask: {
		writes: true,
		fields: []fieldSpec{identifierField(true)},
		build:  buildDuplicate,
	},
	OpUndoLastAction: {
		writes: true,
		build:  buildUndo,
	},
	OpListTasks: {
		fields: []fieldSpec{filterField(true)},
		build:  buildList,
	},
	OpCountTasks: {
		fields: []fieldSpec{filterField(false)},
		build:  buildCount,
	},
	OpGetTaskInfo: {
		fields: []fieldSpec{identifierField(true)},
		build:  buildInfo,
	},
	OpGetNextTasks: {
		fields: []fieldSpec{filterField(false)},
		build:  buildNext,
	},
	OpRunBuiltinReport: {
		fields: []fieldSpec{
			enumField("report", true, BuiltinReports, assignReport),
			filterField(false),
		},
		build: buildReport,
	},
	OpRunVisualizationReport: {
		fields: []fieldSpec{
			enumField("report", true, VisualizationReports, assignReport),
			filterField(false),
		},
		build: buildReport,
	},
	OpRunCustomReport: {
		fields: []fieldSpec{
			patternField("report", true, reportNamePattern, "letters, digits, hyphens and underscores", assignReport),
			listField("columns", columnPattern, "a column name", func(r *Request, v []string) { r.Columns = v }),
			listField("sort", sortColumnPattern, "a column name with optional +/- suffix", func(r *Request, v []string) { r.Sort = v }),
			filterField(false),
		},
		build: buildCustomReport,
	},
}

// modifierFieldsExcept filters the shared modifier set; the add path has no
// prior state to remove tags from or fields to clear.
func modifierFieldsExcept(names ...string) []fieldSpec {
	excluded := make(map[string]bool, len(names))
	for _, n := range names {
		excluded[n] = true
	}
	var out []fieldSpec
	for _, f := range modifierFields() {
		if !excluded[f.name] {
			out = append(out, f)
		}
	}
	return out
}

func assignDescription(r *Request, s string) { r.Description = FreeText(s) }
func assignText(r *Request, s string)        { r.Text = FreeText(s) }
func assignReport(r *Request, s string)      { r.Report = s }

// Operations returns the catalog's operation names in sorted order.
func Operations() []Operation {
	ops := make([]Operation, 0, len(catalog))
	for op := range catalog {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Known reports whether op is part of the closed catalog.
func Known(op Operation) bool {
	_, ok := catalog[op]
	return ok
}

// Writes reports whether op mutates the engine's task store.
func Writes(op Operation) bool {
	return catalog[op].writes
}
