package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli/auth"
	"github.com/thenoetrevino/tablero/internal/cli/stats"
	"github.com/thenoetrevino/tablero/internal/cli/task"
	"github.com/thenoetrevino/tablero/internal/cli/theme"
)

var rootCmd = &cobra.Command{
	Use:           "tablero",
	Short:         "Tablero - a local-first task board",
	Long:          `Tablero is a local-first task board with accounts, columns, assignments, and statistics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(auth.Cmd())
	rootCmd.AddCommand(task.Cmd())
	rootCmd.AddCommand(stats.Cmd())
	rootCmd.AddCommand(theme.Cmd())
}

func Execute() error {
	return rootCmd.Execute()
}
