// Package task_tools registers the MCP tools that expose the task engine's
// operations. Query and report tools are always registered; write tools are
// registered only when the server runs with write access enabled.
//
// Each tool hands its raw arguments to the taskwarrior client, which owns
// validation and command construction. The tools themselves only map the
// outcome into a tool result: trimmed standard output on success, an
// "Error: ..." text result otherwise.
package task_tools
