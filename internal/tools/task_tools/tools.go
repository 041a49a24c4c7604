package task_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskwarden/taskwarden/internal/server"
	"github.com/taskwarden/taskwarden/internal/taskwarrior"
	"github.com/taskwarden/taskwarden/internal/tools/common"
)

// RegisterTaskTools registers all task management tools with the MCP server.
// Write tools are only registered when yolo is true.
func RegisterTaskTools(s *mcpserver.MCPServer, sc *server.ServerContext, yolo bool) error {
	if yolo {
		if err := registerWriteTools(s, sc); err != nil {
			return fmt.Errorf("failed to register write tools: %w", err)
		}
	}

	if err := registerQueryTools(s, sc); err != nil {
		return fmt.Errorf("failed to register query tools: %w", err)
	}

	if err := registerReportTools(s, sc); err != nil {
		return fmt.Errorf("failed to register report tools: %w", err)
	}

	return nil
}

// addOperationTool wires a tool to its catalog operation, wrapped with
// instrumentation. The tool name and the operation name are identical.
func addOperationTool(s *mcpserver.MCPServer, sc *server.ServerContext, tool mcp.Tool, op taskwarrior.Operation) {
	s.AddTool(tool, common.InstrumentedToolHandlerWithOperation(
		tool.Name, string(op), taskwarrior.Writes(op), sc,
		operationHandler(sc, op),
	))
}

// operationHandler returns a handler that runs op with the request's raw
// arguments. Validation, escaping and execution all happen inside the client;
// any error surfaces as an error result rather than a protocol failure.
func operationHandler(sc *server.ServerContext, op taskwarrior.Operation) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		out, err := sc.Client().Run(ctx, op, args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		return mcp.NewToolResultText(out), nil
	}
}
