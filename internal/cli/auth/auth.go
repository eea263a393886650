// Package auth provides the account and session subcommands.
package auth

import "github.com/spf13/cobra"

// Cmd returns the auth command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage accounts and the active session",
	}

	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(LogoutCmd())
	cmd.AddCommand(WhoamiCmd())
	cmd.AddCommand(UsersCmd())

	return cmd
}
