// Package cmd implements the command-line interface for taskwarden.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide task management tools for AI assistants
//   - run: Execute a single task operation and print the result
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
