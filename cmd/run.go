package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskwarden/taskwarden/internal/taskwarrior"
)

func newRunCmd() *cobra.Command {
	var (
		argsJSON string
		taskBin  string
		taskrc   string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "run <operation>",
		Short: "Execute a single task operation and print the result",
		Long: `Execute one of the supported task operations directly, without starting
the MCP server. Arguments are passed as a JSON object and validated the same
way the MCP tools validate them.

Examples:
  taskwarden run list_tasks --args '{"filter": "status:pending"}'
  taskwarden run add_task --args '{"description": "Write report", "due": "friday"}'
  taskwarden run count_tasks

Use --dry-run to print the command line that would be executed instead of
running it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := map[string]any{}
			if argsJSON != "" {
				if err := json.Unmarshal([]byte(argsJSON), &raw); err != nil {
					return fmt.Errorf("invalid --args JSON: %w", err)
				}
			}

			if taskBin == "" {
				taskBin = os.Getenv("TASK_BIN")
			}
			if taskrc == "" {
				taskrc = os.Getenv("TASKRC")
			}
			client := newEngineClient(EngineConfig{Binary: taskBin, Taskrc: taskrc}, slog.Default())

			op := taskwarrior.Operation(args[0])

			if dryRun {
				inv, err := client.Build(op, raw)
				if err != nil {
					return err
				}
				fmt.Println(inv.CommandLine())
				return nil
			}

			out, err := client.Run(context.Background(), op, raw)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Println(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&argsJSON, "args", "", "Operation arguments as a JSON object")
	cmd.Flags().StringVar(&taskBin, "task-bin", "", "Path to the task executable. Can also use TASK_BIN env var. Default: task from PATH.")
	cmd.Flags().StringVar(&taskrc, "taskrc", "", "Path to the engine configuration file. Can also use TASKRC env var.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the command line without executing it")

	return cmd
}
