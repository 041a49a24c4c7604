package task_tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskwarden/taskwarden/internal/server"
	"github.com/taskwarden/taskwarden/internal/taskwarrior"
)

// registerQueryTools registers the read-only query tools.
func registerQueryTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTasksTool := mcp.NewTool("list_tasks",
		mcp.WithDescription("List tasks matching a filter expression as JSON"),
		mcp.WithString("filter",
			mcp.Required(),
			mcp.Description("Task filter expression, e.g. 'status:pending project:work' or '+urgent due.before:eow'"),
		),
	)
	addOperationTool(s, sc, listTasksTool, taskwarrior.OpListTasks)

	countTasksTool := mcp.NewTool("count_tasks",
		mcp.WithDescription("Count tasks matching a filter expression"),
		mcp.WithString("filter",
			mcp.Description("Task filter expression. Counts all tasks when omitted."),
		),
	)
	addOperationTool(s, sc, countTasksTool, taskwarrior.OpCountTasks)

	getTaskInfoTool := mcp.NewTool("get_task_info",
		mcp.WithDescription("Show detailed information about a single task, including annotations and history"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Task ID (positive integer) or UUID"),
		),
	)
	addOperationTool(s, sc, getTaskInfoTool, taskwarrior.OpGetTaskInfo)

	getNextTasksTool := mcp.NewTool("get_next_tasks",
		mcp.WithDescription("Show the most urgent tasks, ranked by the engine's urgency score"),
		mcp.WithString("filter",
			mcp.Description("Task filter expression to narrow the ranking"),
		),
	)
	addOperationTool(s, sc, getNextTasksTool, taskwarrior.OpGetNextTasks)

	return nil
}
