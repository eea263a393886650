package task

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by column",
		RunE:  runList,
	}

	cmd.Flags().String("column", "", "Only show one column: backlog, inprogress, done")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (task IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	columnFlag, _ := cmd.Flags().GetString("column")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")

	formatter := cli.NewFormatter(jsonOutput, quiet)

	var only models.Column
	if columnFlag != "" {
		parsed, err := cli.ParseColumn(columnFlag)
		if err != nil {
			return formatter.Error("INVALID_COLUMN", err)
		}
		only = parsed
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

	grouped := c.App.Board.TasksByColumn(cmd.Context())

	columns := models.ColumnOrder
	if only != "" {
		columns = []models.Column{only}
	}

	if quiet {
		for _, col := range columns {
			for _, t := range grouped[col] {
				fmt.Println(t.ID)
			}
		}
		return nil
	}

	if jsonOutput {
		out := make(map[string][]models.Task, len(columns))
		for _, col := range columns {
			out[string(col)] = grouped[col]
		}
		return formatter.Success("", "", out)
	}

	var b strings.Builder
	for _, col := range columns {
		tasks := grouped[col]
		b.WriteString(styles.ColumnStyle.Render(
			fmt.Sprintf("%s (%d)", cli.ColumnLabel(col), len(tasks))))
		b.WriteString("\n")

		if len(tasks) == 0 {
			b.WriteString(styles.SubtleStyle.Render("  (empty)"))
			b.WriteString("\n")
			continue
		}
		for _, t := range tasks {
			b.WriteString("  ")
			b.WriteString(renderTaskLine(&t))
			b.WriteString("\n")
		}
	}
	fmt.Print(b.String())
	return nil
}

func renderTaskLine(t *models.Task) string {
	title := styles.TitleStyle.Render(t.Title)
	if t.Done() {
		title = styles.DoneStyle.Render(t.Title)
	}

	line := fmt.Sprintf("%s %s", title, styles.SubtleStyle.Render(t.ID))
	if t.Assigned() {
		line += " " + styles.SubtleStyle.Render("["+strings.Join(t.Assignees, ", ")+"]")
	}
	return line
}
