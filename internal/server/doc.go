// Package server provides the MCP server context, HTTP transport, and
// operational endpoints for the taskwarden application.
//
// # Key Components
//
// ServerContext carries the shared dependencies for tool handlers: the
// Taskwarrior client, the write-access policy (yolo flag), and the
// observability plumbing (metrics recorder, audit logger).
//
// HTTPServer exposes the MCP protocol over streamable HTTP at /mcp together
// with the Kubernetes-style health endpoints. Taskwarrior is a single-user
// local tool, so the HTTP transport is local-trust and expected to bind to
// loopback; there is no authentication layer.
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolating
// operational metrics from MCP traffic.
//
// HealthChecker implements liveness (/healthz), readiness (/readyz), and
// detailed (/healthz/detailed) probes.
package server
