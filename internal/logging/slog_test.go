package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestWithOperation(t *testing.T) {
	logger := slog.Default()
	result := WithOperation(logger, "add_task")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestWithTool(t *testing.T) {
	logger := slog.Default()
	result := WithTool(logger, "test_tool")
	if result == nil {
		t.Error("WithTool returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("list_tasks")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "list_tasks" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "list_tasks")
	}
}

func TestToolAttr(t *testing.T) {
	attr := Tool("add_task")
	if attr.Key != KeyTool {
		t.Errorf("Tool key = %q, want %q", attr.Key, KeyTool)
	}
	if attr.Value.String() != "add_task" {
		t.Errorf("Tool value = %q, want %q", attr.Value.String(), "add_task")
	}
}

func TestCommandAttr(t *testing.T) {
	attr := Command("task 1 done")
	if attr.Key != KeyCommand {
		t.Errorf("Command key = %q, want %q", attr.Key, KeyCommand)
	}
	if attr.Value.String() != "task 1 done" {
		t.Errorf("Command value = %q, want %q", attr.Value.String(), "task 1 done")
	}
}

func TestTransportAttr(t *testing.T) {
	attr := Transport("stdio")
	if attr.Key != KeyTransport {
		t.Errorf("Transport key = %q, want %q", attr.Key, KeyTransport)
	}
	if attr.Value.String() != "stdio" {
		t.Errorf("Transport value = %q, want %q", attr.Value.String(), "stdio")
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(StatusSuccess)
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
	if attr.Value.String() != StatusSuccess {
		t.Errorf("Status value = %q, want %q", attr.Value.String(), StatusSuccess)
	}
}

func TestErr(t *testing.T) {
	// Test with error
	err := errors.New("test error")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "test error" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "test error")
	}

	// Test with nil - should return an empty group that slog will omit
	attr = Err(nil)
	// Empty Group has empty key
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}
}

func TestStatusConstants(t *testing.T) {
	if StatusSuccess != "success" {
		t.Errorf("StatusSuccess = %q, want %q", StatusSuccess, "success")
	}
	if StatusError != "error" {
		t.Errorf("StatusError = %q, want %q", StatusError, "error")
	}
}
