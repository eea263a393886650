package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a task between done and reopened",
		Long: `Toggle completion. A pending task moves to done; a done task is
reopened into inprogress. Completing requires at least one assignee.`,
		Args: cobra.ExactArgs(1),
		RunE: runDone,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task ID only)")

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	formatter := cli.NewFormatter(jsonOutput, quiet)

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return formatter.Error("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	task, err := c.App.Board.ToggleComplete(cmd.Context(), args[0])
	if err != nil {
		return formatter.Error("TASK_COMPLETE_ERROR", err)
	}

	verb := "reopened"
	if task.Done() {
		verb = "completed"
	}
	return formatter.Success(task.ID,
		fmt.Sprintf("Task %q %s", task.Title, verb),
		task,
	)
}
