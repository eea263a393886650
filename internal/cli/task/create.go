package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task. Without --column the task lands in the backlog.

Examples:
  tablero task create --title="Write spec"
  tablero task create --title="Fix login" --column=inprogress

  # Quiet mode for bash capture
  TASK_ID=$(tablero task create --title="Write spec" --quiet)`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("column", "", "Target column: backlog, inprogress, done")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	columnFlag, _ := cmd.Flags().GetString("column")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")

	formatter := cli.NewFormatter(jsonOutput, quiet)

	var column models.Column
	if columnFlag != "" {
		parsed, err := cli.ParseColumn(columnFlag)
		if err != nil {
			return formatter.Error("INVALID_COLUMN", err)
		}
		column = parsed
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

	task, err := c.App.Board.CreateTask(cmd.Context(), title, column)
	if err != nil {
		return formatter.Error("TASK_CREATE_ERROR", err)
	}

	return formatter.Success(task.ID,
		fmt.Sprintf("Task %q created in %s (%s)", task.Title, cli.ColumnLabel(task.Column), task.ID),
		task,
	)
}
