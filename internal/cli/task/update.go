package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task's title, description, or column",
		Long: `Update a task. Only the provided flags change; everything else is
left as it was. The task ID itself cannot change.`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("column", "", "New column: backlog, inprogress, done")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	formatter := cli.NewFormatter(jsonOutput, quiet)

	req := board.UpdateTaskRequest{ID: args[0]}
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if cmd.Flags().Changed("column") {
		columnFlag, _ := cmd.Flags().GetString("column")
		parsed, err := cli.ParseColumn(columnFlag)
		if err != nil {
			return formatter.Error("INVALID_COLUMN", err)
		}
		column := models.Column(parsed)
		req.Column = &column
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

	task, err := c.App.Board.UpdateTask(cmd.Context(), req)
	if err != nil {
		return formatter.Error("TASK_UPDATE_ERROR", err)
	}

	return formatter.Success(task.ID,
		fmt.Sprintf("Task %q updated", task.Title),
		task,
	)
}
