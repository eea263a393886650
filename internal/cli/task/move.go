package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to a specific column",
		Args:  cobra.ExactArgs(1),
		RunE:  runMove,
	}

	cmd.Flags().String("to", "", "Target column: backlog, inprogress, done (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task ID only)")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	formatter := cli.NewFormatter(jsonOutput, quiet)

	column, err := cli.ParseColumn(to)
	if err != nil {
		return formatter.Error("INVALID_COLUMN", err)
	}

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return formatter.Error("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	task, err := c.App.Board.MoveTask(cmd.Context(), args[0], column)
	if err != nil {
		return formatter.Error("TASK_MOVE_ERROR", err)
	}

	return formatter.Success(task.ID,
		fmt.Sprintf("Task %q moved to %s", task.Title, cli.ColumnLabel(task.Column)),
		task,
	)
}

// AdvanceCmd returns the task advance subcommand
func AdvanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance <task-id>",
		Short: "Advance a task to the next column",
		Long: `Advance a task through the board cycle:
backlog -> inprogress -> done -> backlog.`,
		Args: cobra.ExactArgs(1),
		RunE: runAdvance,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task ID only)")

	return cmd
}

func runAdvance(cmd *cobra.Command, args []string) error {
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

	task, err := c.App.Board.AdvanceTask(cmd.Context(), args[0])
	if err != nil {
		return formatter.Error("TASK_MOVE_ERROR", err)
	}

	return formatter.Success(task.ID,
		fmt.Sprintf("Task %q advanced to %s", task.Title, cli.ColumnLabel(task.Column)),
		task,
	)
}
