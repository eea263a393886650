package stats

import (
	"fmt"
	"log"
	"sort"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/stats"
)

// Cmd returns the stats command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show board statistics",
		Long:  "Show completion counts, per-assignee workload, and a status breakdown for the board.",
		RunE:  runStats,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := cli.NewFormatter(jsonOutput, false)

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return formatter.Error("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	tasks := c.App.Board.Tasks(cmd.Context())

	split := stats.CompletionSplit(tasks)
	counts, mean := stats.PerAssigneeCounts(tasks)
	breakdown := stats.StatusBreakdown(tasks)

	if jsonOutput {
		return formatter.Success("", "", map[string]any{
			"completion": map[string]int{
				"completed": split.Completed,
				"pending":   split.Pending,
			},
			"assignees": map[string]any{
				"counts": counts,
				"mean":   mean,
			},
			"breakdown": map[string]int{
				"unassigned":       breakdown.Unassigned,
				"assigned_pending": breakdown.AssignedPending,
				"completed":        breakdown.Completed,
			},
		})
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.TitleStyle.Render("Completion"))
	fmt.Fprintf(out, "  Completed: %d\n", split.Completed)
	fmt.Fprintf(out, "  Pending:   %d\n", split.Pending)

	fmt.Fprintln(out, styles.TitleStyle.Render("Tasks per assignee"))
	if len(counts) == 0 {
		fmt.Fprintln(out, styles.SubtleStyle.Render("  (no tasks)"))
	} else {
		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %-20s %d\n", name, counts[name])
		}
		fmt.Fprintf(out, "  %s\n", styles.SubtleStyle.Render(fmt.Sprintf("mean %.2f", mean)))
	}

	fmt.Fprintln(out, styles.TitleStyle.Render("Status breakdown"))
	fmt.Fprintf(out, "  Unassigned:       %d\n", breakdown.Unassigned)
	fmt.Fprintf(out, "  Assigned pending: %d\n", breakdown.AssignedPending)
	fmt.Fprintf(out, "  Completed:        %d\n", breakdown.Completed)
	fmt.Fprintf(out, "  Total:            %d\n", breakdown.Total())

	return nil
}
