package task_tools

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskwarden/taskwarden/internal/server"
	"github.com/taskwarden/taskwarden/internal/taskwarrior"
)

// registerReportTools registers the read-only report tools.
func registerReportTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	runBuiltinReportTool := mcp.NewTool("run_builtin_report",
		mcp.WithDescription("Run one of the engine's built-in tabular reports: "+
			strings.Join(taskwarrior.BuiltinReports, ", ")),
		mcp.WithString("report",
			mcp.Required(),
			mcp.Description("The report name"),
			mcp.Enum(taskwarrior.BuiltinReports...),
		),
		mcp.WithString("filter",
			mcp.Description("Task filter expression to narrow the report"),
		),
	)
	addOperationTool(s, sc, runBuiltinReportTool, taskwarrior.OpRunBuiltinReport)

	runVisualizationReportTool := mcp.NewTool("run_visualization_report",
		mcp.WithDescription("Run one of the engine's chart or calendar reports: "+
			strings.Join(taskwarrior.VisualizationReports, ", ")),
		mcp.WithString("report",
			mcp.Required(),
			mcp.Description("The report name"),
			mcp.Enum(taskwarrior.VisualizationReports...),
		),
		mcp.WithString("filter",
			mcp.Description("Task filter expression to narrow the report"),
		),
	)
	addOperationTool(s, sc, runVisualizationReportTool, taskwarrior.OpRunVisualizationReport)

	runCustomReportTool := mcp.NewTool("run_custom_report",
		mcp.WithDescription("Run an ad-hoc report with custom columns and sort order, defined for this invocation only"),
		mcp.WithString("report",
			mcp.Required(),
			mcp.Description("A name for the report (letters, digits, hyphens and underscores)"),
		),
		mcp.WithString("columns",
			mcp.Description("Column name (string) or array of column names, e.g. ['id', 'project', 'due']"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort column (string) or array of sort columns, each with an optional +/- suffix, e.g. 'urgency-'"),
		),
		mcp.WithString("filter",
			mcp.Description("Task filter expression to narrow the report"),
		),
	)
	addOperationTool(s, sc, runCustomReportTool, taskwarrior.OpRunCustomReport)

	return nil
}
