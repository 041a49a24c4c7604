package server

import (
	"context"
	"sync"

	"github.com/taskwarden/taskwarden/internal/instrumentation"
	"github.com/taskwarden/taskwarden/internal/taskwarrior"
)

// ServerContext holds the shared dependencies for the MCP server: the task
// engine client, the write-access policy, and the observability plumbing.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	client *taskwarrior.Client

	// yolo grants the write tools. When false only the query and report
	// tools are registered.
	yolo bool

	metrics *instrumentation.Metrics
	audit   *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// ContextOption configures a ServerContext.
type ContextOption func(*ServerContext)

// WithClient sets the task engine client.
func WithClient(client *taskwarrior.Client) ContextOption {
	return func(sc *ServerContext) {
		if client != nil {
			sc.client = client
		}
	}
}

// WithYolo enables the write tools.
func WithYolo(yolo bool) ContextOption {
	return func(sc *ServerContext) { sc.yolo = yolo }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *instrumentation.Metrics) ContextOption {
	return func(sc *ServerContext) { sc.metrics = m }
}

// WithAuditLogger sets the audit logger.
func WithAuditLogger(al *instrumentation.AuditLogger) ContextOption {
	return func(sc *ServerContext) { sc.audit = al }
}

// NewServerContext creates a new server context.
func NewServerContext(ctx context.Context, opts ...ContextOption) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		client: taskwarrior.NewClient(),
	}
	for _, opt := range opts {
		opt(sc)
	}

	return sc, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Client returns the task engine client.
func (sc *ServerContext) Client() *taskwarrior.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.client
}

// SetClient replaces the task engine client. Tests use this to substitute a
// client with a fake runner.
func (sc *ServerContext) SetClient(client *taskwarrior.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.client = client
}

// Yolo reports whether write tools are enabled.
func (sc *ServerContext) Yolo() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.yolo
}

// Metrics returns the metrics recorder, which may be nil.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// SetMetrics sets the metrics recorder.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.metrics = m
}

// SetAuditLogger sets the audit logger.
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.audit = al
}

// AuditLogger returns the audit logger, which may be nil.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	return sc.audit
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
