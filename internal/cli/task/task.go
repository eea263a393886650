// Package task provides the board subcommands: task CRUD, column
// moves, assignment, and completion.
package task

import "github.com/spf13/cobra"

// Cmd returns the task command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks on the board",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(AdvanceCmd())
	cmd.AddCommand(AssignCmd())
	cmd.AddCommand(UnassignCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}
