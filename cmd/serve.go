package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskwarden/taskwarden/internal/instrumentation"
	"github.com/taskwarden/taskwarden/internal/logging"
	"github.com/taskwarden/taskwarden/internal/resources"
	"github.com/taskwarden/taskwarden/internal/server"
	"github.com/taskwarden/taskwarden/internal/taskwarrior"
	"github.com/taskwarden/taskwarden/internal/tools/task_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

// EngineConfig holds configuration for the task engine child process
type EngineConfig struct {
	// Binary is the task executable path or name (default: "task")
	Binary string

	// Taskrc overrides the engine's configuration file location
	Taskrc string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode bool
		transport string
		httpAddr  string
		yolo      bool
		taskBin   string
		taskrc    string
		// Metrics server configuration
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server to provide Taskwarrior
task management tools for AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Safety Mode:
  By default, the server operates in read-only mode, providing only query
  and report tools. Use --yolo to enable write operations (adding, modifying
  and deleting tasks).

The server executes the local task binary and assumes a single-user,
local-trust environment. The HTTP transport carries no authentication and
should only be bound to loopback addresses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engineConfig := EngineConfig{
				Binary: taskBin,
				Taskrc: taskrc,
			}
			if engineConfig.Binary == "" {
				engineConfig.Binary = os.Getenv("TASK_BIN")
			}
			if engineConfig.Taskrc == "" {
				engineConfig.Taskrc = os.Getenv("TASKRC")
			}

			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}

			return runServe(transport, debugMode, httpAddr, yolo, engineConfig, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", "127.0.0.1:8080", "HTTP server address (for streamable-http transport)")
	cmd.Flags().BoolVar(&yolo, "yolo", false, "Enable write operations (adding, modifying, deleting tasks). Default is read-only mode.")
	cmd.Flags().StringVar(&taskBin, "task-bin", "", "Path to the task executable. Can also use TASK_BIN env var. Default: task from PATH.")
	cmd.Flags().StringVar(&taskrc, "taskrc", "", "Path to the engine configuration file. Can also use TASKRC env var.")

	// Metrics server flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

// engineEnv returns the environment for the task child process. A non-empty
// taskrc overrides the engine's configuration file location.
func engineEnv(taskrc string) []string {
	if taskrc == "" {
		return nil
	}
	return append(os.Environ(), "TASKRC="+taskrc)
}

// newEngineClient builds the taskwarrior client from the engine configuration.
func newEngineClient(config EngineConfig, logger *slog.Logger) *taskwarrior.Client {
	return taskwarrior.NewClient(
		taskwarrior.WithBinary(config.Binary),
		taskwarrior.WithRunner(&taskwarrior.ShellRunner{Env: engineEnv(config.Taskrc)}),
		taskwarrior.WithLogger(logger),
	)
}

func runServe(transport string, debugMode bool, httpAddr string, yolo bool, engineConfig EngineConfig, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logs go to stderr so the stdio transport keeps stdout clean
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	logger.Info("starting taskwarden", logging.Transport(transport), slog.String("version", version))

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled {
		if os.Getenv("METRICS_ENABLED") == "true" {
			metricsConfig.Enabled = true
		}
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == ":9090" {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			if transport != "stdio" {
				log.Printf("Error during instrumentation shutdown: %v", err)
			}
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if transport != "stdio" && metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		// Wait for metrics server to be ready or fail
		select {
		case <-metricsReady:
			log.Printf("Metrics server started on %s", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	// Create server context with the configured engine client
	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithClient(newEngineClient(engineConfig, logger)),
		server.WithYolo(yolo),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics and audit logger on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
		serverContext.SetAuditLogger(instrumentation.NewAuditLoggerWithConfig(nil, instrConfig.AuditLogging))
	}
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			if transport != "stdio" {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("taskwarden", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false), // Subscribe and listChanged
	)

	// Log the mode for visibility (only for non-stdio transports)
	if transport != "stdio" {
		if yolo {
			log.Println("Starting server with WRITE operations enabled (--yolo flag is set)")
		} else {
			log.Println("Starting server in READ-ONLY mode (use --yolo to enable write operations)")
		}
	}

	// Register all tools and resources
	if err := registerAll(mcpSrv, serverContext, yolo); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		return runStreamableHTTPServer(mcpSrv, serverContext, httpAddr, shutdownCtx, metricsConfig, provider)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// registerAll registers all MCP tools and resources
func registerAll(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext, yolo bool) error {
	if err := task_tools.RegisterTaskTools(mcpSrv, ctx, yolo); err != nil {
		return fmt.Errorf("failed to register task tools: %w", err)
	}

	if err := resources.RegisterCatalogResources(mcpSrv); err != nil {
		return fmt.Errorf("failed to register catalog resources: %w", err)
	}

	return nil
}

func runStreamableHTTPServer(mcpSrv *mcpserver.MCPServer, serverContext *server.ServerContext, addr string, ctx context.Context, metricsConfig MetricsConfig, instrProvider *instrumentation.Provider) error {
	// Set up health checker for health check endpoints
	healthChecker := server.NewHealthChecker(serverContext)

	opts := []server.HTTPServerOption{server.WithHealthChecker(healthChecker)}
	if instrProvider != nil && instrProvider.Enabled() {
		opts = append(opts, server.WithHTTPMetrics(instrProvider.Metrics()))
	}

	httpServer := server.NewHTTPServer(mcpSrv, opts...)

	fmt.Printf("Streamable HTTP server starting on %s\n", addr)
	fmt.Printf("  HTTP endpoint: /mcp\n")
	fmt.Printf("  Health endpoints: /healthz, /readyz\n")
	if metricsConfig.Enabled {
		fmt.Printf("  Metrics endpoint: %s/metrics\n", metricsConfig.Addr)
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Println("Shutdown signal received, stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		fmt.Println("HTTP server stopped normally")
	}

	fmt.Println("HTTP server gracefully stopped")
	return nil
}
