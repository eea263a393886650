package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	removed, err := c.App.Board.DeleteTask(cmd.Context(), args[0])
	if err != nil {
		return formatter.Error("TASK_DELETE_ERROR", err)
	}
	if !removed {
		return formatter.Error("TASK_NOT_FOUND", board.ErrTaskNotFound)
	}

	return formatter.Success("",
		fmt.Sprintf("Task %s deleted", args[0]),
		map[string]any{"deleted": args[0]},
	)
}

// ClearCmd returns the task clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks in the done column",
		RunE:  runClear,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (count only)")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
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

	count, err := c.App.Board.RemoveCompleted(cmd.Context())
	if err != nil {
		return formatter.Error("TASK_CLEAR_ERROR", err)
	}

	return formatter.Success(fmt.Sprintf("%d", count),
		fmt.Sprintf("Removed %d completed tasks", count),
		map[string]any{"removed": count},
	)
}
