package taskwarrior

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/taskwarden/taskwarden/internal/logging"
)

// DefaultBinary is the task engine executable resolved via PATH when no
// explicit binary is configured.
const DefaultBinary = "task"

// Client is the full pipeline behind every operation: schema validation,
// command-line construction, synchronous execution, and output trimming.
// Invocations are serialized with a mutex; the engine's data files are not
// safe under concurrent writers.
type Client struct {
	bin    string
	runner Runner
	logger *slog.Logger

	mu sync.Mutex
}

// Option configures a Client.
type Option func(*Client)

// WithBinary sets the engine executable path or name.
func WithBinary(bin string) Option {
	return func(c *Client) {
		if bin != "" {
			c.bin = bin
		}
	}
}

// WithRunner replaces the process runner. Tests use this to substitute a
// fake.
func WithRunner(r Runner) Option {
	return func(c *Client) {
		if r != nil {
			c.runner = r
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient returns a Client executing commands via a ShellRunner unless
// overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		bin:    DefaultBinary,
		runner: &ShellRunner{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Build validates raw arguments for op and constructs the invocation without
// executing it. Unknown operations fail before any field is examined.
func (c *Client) Build(op Operation, raw map[string]any) (*Invocation, error) {
	spec, ok := catalog[op]
	if !ok {
		return nil, &UnknownOperationError{Name: string(op)}
	}
	req, err := validate(op, spec.fields, raw)
	if err != nil {
		return nil, err
	}
	return spec.build(c.bin, req)
}

// Run executes op with the given raw arguments and returns the engine's
// trimmed standard output.
func (c *Client) Run(ctx context.Context, op Operation, raw map[string]any) (string, error) {
	inv, err := c.Build(op, raw)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	out, err := c.runner.Run(ctx, inv)
	elapsed := time.Since(start)

	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelError, "command failed",
			logging.Operation(string(op)),
			logging.Command(inv.CommandLine()),
			slog.Duration(logging.KeyDuration, elapsed),
			logging.Err(err))
		return "", err
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "command completed",
		logging.Operation(string(op)),
		logging.Command(inv.CommandLine()),
		slog.Duration(logging.KeyDuration, elapsed),
		slog.Int("output_bytes", len(out)))
	return strings.TrimSpace(out), nil
}
