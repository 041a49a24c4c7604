package task_tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskwarden/taskwarden/internal/server"
	"github.com/taskwarden/taskwarden/internal/taskwarrior"
)

// dateDescription documents the formats the date fields accept.
const dateDescription = " Accepts ISO dates (2024-06-01, 2024-06-01T12:00), " +
	"named dates (today, tomorrow, eom, monday), ordinals (23rd), or signed offsets (+3d, -2w)."

// modifierOptions are the task attribute parameters shared by add_task,
// modify_task and modify_tasks_bulk. Tags, dependencies and clear_fields
// accept either a single string or an array of strings.
func modifierOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("due",
			mcp.Description("Due date."+dateDescription),
		),
		mcp.WithString("start",
			mcp.Description("Start date."+dateDescription),
		),
		mcp.WithString("wait",
			mcp.Description("Wait date: hide the task until this date."+dateDescription),
		),
		mcp.WithString("until",
			mcp.Description("Expiration date: delete the task after this date."+dateDescription),
		),
		mcp.WithString("scheduled",
			mcp.Description("Scheduled date: earliest opportunity to work on the task."+dateDescription),
		),
		mcp.WithString("priority",
			mcp.Description("Task priority"),
			mcp.Enum("H", "M", "L"),
		),
		mcp.WithString("project",
			mcp.Description("Project name. Dots create hierarchy, e.g. 'work.reports'."),
		),
		mcp.WithString("depends",
			mcp.Description("Task ID or UUID (string) or array of IDs this task depends on"),
		),
		mcp.WithString("tags",
			mcp.Description("Tag (string) or array of tags to add"),
		),
	}
}

// registerWriteTools registers the tools that mutate the task store.
func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	addTaskTool := mcp.NewTool("add_task",
		append([]mcp.ToolOption{
			mcp.WithDescription("Add a new task with a description and optional attributes"),
			mcp.WithString("description",
				mcp.Required(),
				mcp.Description("The task description"),
			),
		}, modifierOptions()...)...,
	)
	addOperationTool(s, sc, addTaskTool, taskwarrior.OpAddTask)

	modifyTaskTool := mcp.NewTool("modify_task",
		append([]mcp.ToolOption{
			mcp.WithDescription("Modify attributes of an existing task"),
			mcp.WithString("identifier",
				mcp.Required(),
				mcp.Description("Task ID (positive integer) or UUID"),
			),
			mcp.WithString("description",
				mcp.Description("New task description"),
			),
			mcp.WithString("remove_tags",
				mcp.Description("Tag (string) or array of tags to remove"),
			),
			mcp.WithString("clear_fields",
				mcp.Description("Attribute name (string) or array of attribute names to clear, e.g. 'due' or ['due', 'priority']"),
			),
		}, modifierOptions()...)...,
	)
	addOperationTool(s, sc, modifyTaskTool, taskwarrior.OpModifyTask)

	modifyTasksBulkTool := mcp.NewTool("modify_tasks_bulk",
		append([]mcp.ToolOption{
			mcp.WithDescription("Modify all tasks matching a filter expression. Confirmation is answered automatically."),
			mcp.WithString("filter",
				mcp.Required(),
				mcp.Description("Task filter expression, e.g. 'project:work +urgent' or 'status:pending due.before:eow'"),
			),
			mcp.WithString("description",
				mcp.Description("New task description"),
			),
			mcp.WithString("remove_tags",
				mcp.Description("Tag (string) or array of tags to remove"),
			),
			mcp.WithString("clear_fields",
				mcp.Description("Attribute name (string) or array of attribute names to clear"),
			),
		}, modifierOptions()...)...,
	)
	addOperationTool(s, sc, modifyTasksBulkTool, taskwarrior.OpModifyTasksBulk)

	deleteTaskTool := mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task. Confirmation is answered automatically."),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Task ID (positive integer) or UUID"),
		),
	)
	addOperationTool(s, sc, deleteTaskTool, taskwarrior.OpDeleteTask)

	markTaskDoneTool := mcp.NewTool("mark_task_done",
		mcp.WithDescription("Mark a task as completed"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Task ID (positive integer) or UUID"),
		),
	)
	addOperationTool(s, sc, markTaskDoneTool, taskwarrior.OpMarkTaskDone)

	startTaskTool := mcp.NewTool("start_task",
		mcp.WithDescription("Start working on a task, or stop with stop=true"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Task ID (positive integer) or UUID"),
		),
		mcp.WithBoolean("stop",
			mcp.Description("Stop the task instead of starting it (default: false)"),
		),
	)
	addOperationTool(s, sc, startTaskTool, taskwarrior.OpStartTask)

	annotateTaskTool := mcp.NewTool("annotate_task",
		mcp.WithDescription("Add a timestamped annotation to a task"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Task ID (positive integer) or UUID"),
		),
		mcp.WithString("annotation",
			mcp.Required(),
			mcp.Description("The annotation text"),
		),
	)
	addOperationTool(s, sc, annotateTaskTool, taskwarrior.OpAnnotateTask)

	appendToTaskTool := mcp.NewTool("append_to_task",
		mcp.WithDescription("Append text to a task's description"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Task ID (positive integer) or UUID"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to append"),
		),
	)
	addOperationTool(s, sc, appendToTaskTool, taskwarrior.OpAppendToTask)

	prependToTaskTool := mcp.NewTool("prepend_to_task",
		mcp.WithDescription("Prepend text to a task's description"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Task ID (positive integer) or UUID"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text to prepend"),
		),
	)
	addOperationTool(s, sc, prependToTaskTool, taskwarrior.OpPrependToTask)

	duplicateTaskTool := mcp.NewTool("duplicate_task",
		mcp.WithDescription("Duplicate a task. Confirmation is answered automatically."),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Task ID (positive integer) or UUID"),
		),
	)
	addOperationTool(s, sc, duplicateTaskTool, taskwarrior.OpDuplicateTask)

	undoLastActionTool := mcp.NewTool("undo_last_action",
		mcp.WithDescription("Undo the most recent change to the task store. Confirmation is answered automatically."),
	)
	addOperationTool(s, sc, undoLastActionTool, taskwarrior.OpUndoLastAction)

	return nil
}
