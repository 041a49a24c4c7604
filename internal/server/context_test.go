package server

import (
	"context"
	"testing"

	"github.com/taskwarden/taskwarden/internal/taskwarrior"
)

func TestNewServerContext_Defaults(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.Client() == nil {
		t.Error("expected a default task engine client")
	}
	if sc.Yolo() {
		t.Error("write tools should be disabled by default")
	}
	if sc.IsShutdown() {
		t.Error("new context should not be shut down")
	}
}

func TestNewServerContext_Options(t *testing.T) {
	client := taskwarrior.NewClient(taskwarrior.WithBinary("/opt/task"))

	sc, err := NewServerContext(context.Background(),
		WithClient(client),
		WithYolo(true),
	)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.Client() != client {
		t.Error("expected the provided client")
	}
	if !sc.Yolo() {
		t.Error("expected write tools to be enabled")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() should be true after Shutdown()")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("context should be canceled after Shutdown()")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

func TestServerContext_SetClient(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	replacement := taskwarrior.NewClient()
	sc.SetClient(replacement)

	if sc.Client() != replacement {
		t.Error("expected the replacement client")
	}
}
