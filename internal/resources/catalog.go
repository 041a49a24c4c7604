package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskwarden/taskwarden/internal/taskwarrior"
)

// RegisterCatalogResources registers the static catalog resources: the
// operation list and the report name lists. Clients can fetch these to
// discover what the server supports without probing the tools.
func RegisterCatalogResources(s *mcpserver.MCPServer) error {
	operationsResource := mcp.NewResource(
		"taskwarden://operations",
		"Supported Operations",
		mcp.WithResourceDescription("The fixed set of task operations this server supports, with their write/read classification"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(operationsResource, handleOperations)

	builtinReportsResource := mcp.NewResource(
		"taskwarden://reports/builtin",
		"Built-in Reports",
		mcp.WithResourceDescription("Report names accepted by the run_builtin_report tool"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(builtinReportsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleReportList(request, taskwarrior.BuiltinReports)
	})

	visualizationReportsResource := mcp.NewResource(
		"taskwarden://reports/visualizations",
		"Visualization Reports",
		mcp.WithResourceDescription("Report names accepted by the run_visualization_report tool"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(visualizationReportsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleReportList(request, taskwarrior.VisualizationReports)
	})

	return nil
}

// handleOperations returns the operation catalog as JSON.
func handleOperations(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	type operationInfo struct {
		Name   string `json:"name"`
		Writes bool   `json:"writes"`
	}

	ops := taskwarrior.Operations()
	infos := make([]operationInfo, 0, len(ops))
	for _, op := range ops {
		infos = append(infos, operationInfo{
			Name:   string(op),
			Writes: taskwarrior.Writes(op),
		})
	}

	jsonData, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal operations: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleReportList returns a report name list as JSON.
func handleReportList(request mcp.ReadResourceRequest, reports []string) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report names: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
