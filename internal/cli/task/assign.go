package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// AssignCmd returns the task assign subcommand
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <task-id>",
		Short: "Add a user to a task's assignee set",
		Long: `Add a user to a task's assignee set. Assigning a user who is
already on the task changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: runAssign,
	}

	cmd.Flags().String("user", "", "User ID to assign (required)")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task ID only)")

	return cmd
}

func runAssign(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user")
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

	task, err := c.App.Board.Assign(cmd.Context(), args[0], userID)
	if err != nil {
		return formatter.Error("TASK_ASSIGN_ERROR", err)
	}

	return formatter.Success(task.ID,
		fmt.Sprintf("Assigned %s to %q (%d assignees)", userID, task.Title, len(task.Assignees)),
		task,
	)
}

// UnassignCmd returns the task unassign subcommand
func UnassignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unassign <task-id>",
		Short: "Remove a user from a task's assignee set",
		Args:  cobra.ExactArgs(1),
		RunE:  runUnassign,
	}

	cmd.Flags().String("user", "", "User ID to remove (required)")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task ID only)")

	return cmd
}

func runUnassign(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user")
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

	task, err := c.App.Board.Unassign(cmd.Context(), args[0], userID)
	if err != nil {
		return formatter.Error("TASK_UNASSIGN_ERROR", err)
	}

	return formatter.Success(task.ID,
		fmt.Sprintf("Removed %s from %q (%d assignees)", userID, task.Title, len(task.Assignees)),
		task,
	)
}
