package task_tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskwarden/taskwarden/internal/server"
	"github.com/taskwarden/taskwarden/internal/taskwarrior"
)

// fakeRunner records the last invocation and returns canned output.
type fakeRunner struct {
	out     string
	err     error
	lastInv *taskwarrior.Invocation
}

func (f *fakeRunner) Run(ctx context.Context, inv *taskwarrior.Invocation) (string, error) {
	f.lastInv = inv
	return f.out, f.err
}

func newTestContext(t *testing.T, runner *fakeRunner) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	sc.SetClient(taskwarrior.NewClient(taskwarrior.WithRunner(runner)))
	return sc
}

func callToolRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestOperationHandler_Success(t *testing.T) {
	runner := &fakeRunner{out: "Created task 7.\n"}
	sc := newTestContext(t, runner)

	handler := operationHandler(sc, taskwarrior.OpAddTask)
	result, err := handler(context.Background(), callToolRequest(map[string]interface{}{
		"description": "Write report",
		"due":         "tomorrow",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	if got := resultText(t, result); got != "Created task 7." {
		t.Errorf("result text = %q, want trimmed output", got)
	}
	if runner.lastInv == nil {
		t.Fatal("expected a command to be executed")
	}
	if got, want := runner.lastInv.CommandLine(), "task add 'Write report' due:tomorrow"; got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}

func TestOperationHandler_ValidationError(t *testing.T) {
	runner := &fakeRunner{}
	sc := newTestContext(t, runner)

	handler := operationHandler(sc, taskwarrior.OpAddTask)
	result, err := handler(context.Background(), callToolRequest(map[string]interface{}{
		"priority": "urgent",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	if got := resultText(t, result); !strings.HasPrefix(got, "Error: ") {
		t.Errorf("error text = %q, want 'Error: ' prefix", got)
	}
	if runner.lastInv != nil {
		t.Error("no command should run when validation fails")
	}
}

func TestOperationHandler_ExecutionError(t *testing.T) {
	runner := &fakeRunner{err: &taskwarrior.ExecutionError{Message: "No matches."}}
	sc := newTestContext(t, runner)

	handler := operationHandler(sc, taskwarrior.OpDeleteTask)
	result, err := handler(context.Background(), callToolRequest(map[string]interface{}{
		"identifier": "42",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	if got := resultText(t, result); !strings.Contains(got, "No matches.") {
		t.Errorf("error text = %q, want engine message included", got)
	}
}

func TestRegisterTaskTools(t *testing.T) {
	runner := &fakeRunner{}
	sc := newTestContext(t, runner)
	s := mcpserver.NewMCPServer("test", "0.0.1")

	if err := RegisterTaskTools(s, sc, true); err != nil {
		t.Fatalf("RegisterTaskTools() error = %v", err)
	}
}

func TestRegisterTaskTools_ReadOnly(t *testing.T) {
	runner := &fakeRunner{}
	sc := newTestContext(t, runner)
	s := mcpserver.NewMCPServer("test", "0.0.1")

	if err := RegisterTaskTools(s, sc, false); err != nil {
		t.Fatalf("RegisterTaskTools() error = %v", err)
	}
}

func TestRegisteredToolsCoverCatalog(t *testing.T) {
	writers := 0
	readers := 0
	for _, op := range taskwarrior.Operations() {
		if taskwarrior.Writes(op) {
			writers++
		} else {
			readers++
		}
	}
	if writers != 11 {
		t.Errorf("write operations = %d, want 11", writers)
	}
	if readers != 7 {
		t.Errorf("read operations = %d, want 7", readers)
	}
}

func TestOperationHandler_ErrorIsToolResultNotProtocolError(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 2")}
	sc := newTestContext(t, runner)

	handler := operationHandler(sc, taskwarrior.OpCountTasks)
	result, err := handler(context.Background(), callToolRequest(nil))
	if err != nil {
		t.Fatalf("handler should not surface execution failures as protocol errors, got %v", err)
	}
	if !result.IsError {
		t.Error("expected an error result")
	}
}
