package server

import (
	"context"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskwarden/taskwarden/internal/instrumentation"
)

// HTTPServer serves the MCP protocol over streamable HTTP alongside the
// health endpoints. The server is local-trust: Taskwarrior is a single-user
// tool and the listener is expected to bind to loopback, so there is no
// authentication layer in front of /mcp.
type HTTPServer struct {
	mcpServer  *mcpserver.MCPServer
	httpServer *http.Server
	health     *HealthChecker
	metrics    *instrumentation.Metrics
}

// HTTPServerOption configures an HTTPServer.
type HTTPServerOption func(*HTTPServer)

// WithHealthChecker sets the health checker whose endpoints are registered
// alongside /mcp.
func WithHealthChecker(h *HealthChecker) HTTPServerOption {
	return func(s *HTTPServer) { s.health = h }
}

// WithHTTPMetrics sets the metrics recorder used by the request middleware.
func WithHTTPMetrics(m *instrumentation.Metrics) HTTPServerOption {
	return func(s *HTTPServer) { s.metrics = m }
}

// NewHTTPServer creates a new HTTP server for the given MCP server.
func NewHTTPServer(mcpServer *mcpserver.MCPServer, opts ...HTTPServerOption) *HTTPServer {
	s := &HTTPServer{mcpServer: mcpServer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start starts the HTTP server on the given address, blocking until it stops.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	streamable := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath("/mcp"),
	)
	mux.Handle("/mcp", s.instrument(streamable))

	if s.health != nil {
		s.health.RegisterHealthEndpoints(mux)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// instrument wraps a handler with HTTP request metrics recording.
func (s *HTTPServer) instrument(next http.Handler) http.Handler {
	if s.metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.metrics.RecordHTTPRequest(r.Context(), r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
