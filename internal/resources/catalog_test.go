package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func readRequest(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func TestRegisterCatalogResources(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.1")
	if err := RegisterCatalogResources(s); err != nil {
		t.Fatalf("RegisterCatalogResources() error = %v", err)
	}
}

func TestHandleOperations(t *testing.T) {
	contents, err := handleOperations(context.Background(), readRequest("taskwarden://operations"))
	if err != nil {
		t.Fatalf("handleOperations() error = %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected one content item, got %d", len(contents))
	}

	text, ok := contents[0].(*mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected text contents, got %T", contents[0])
	}
	if text.MIMEType != "application/json" {
		t.Errorf("MIME type = %q, want application/json", text.MIMEType)
	}

	var ops []struct {
		Name   string `json:"name"`
		Writes bool   `json:"writes"`
	}
	if err := json.Unmarshal([]byte(text.Text), &ops); err != nil {
		t.Fatalf("failed to decode operations: %v", err)
	}
	if len(ops) != 18 {
		t.Errorf("operation count = %d, want 18", len(ops))
	}

	byName := make(map[string]bool, len(ops))
	for _, op := range ops {
		byName[op.Name] = op.Writes
	}
	if !byName["add_task"] {
		t.Error("add_task should be classified as a write")
	}
	if byName["list_tasks"] {
		t.Error("list_tasks should be classified as read-only")
	}
}

func TestHandleReportList(t *testing.T) {
	contents, err := handleReportList(readRequest("taskwarden://reports/builtin"), []string{"next", "overdue"})
	if err != nil {
		t.Fatalf("handleReportList() error = %v", err)
	}

	text, ok := contents[0].(*mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected text contents, got %T", contents[0])
	}

	var reports []string
	if err := json.Unmarshal([]byte(text.Text), &reports); err != nil {
		t.Fatalf("failed to decode reports: %v", err)
	}
	if len(reports) != 2 || reports[0] != "next" || reports[1] != "overdue" {
		t.Errorf("reports = %v, want [next overdue]", reports)
	}
}
