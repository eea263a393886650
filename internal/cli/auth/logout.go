package auth

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// LogoutCmd returns the auth logout subcommand
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the active session",
		Long:  "End the active session. Logging out without a session is not an error.",
		RunE:  runLogout,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output")

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
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

	if err := c.App.Identity.Logout(cmd.Context()); err != nil {
		return formatter.Error("LOGOUT_FAILED", err)
	}

	return formatter.Success("", "Logged out", map[string]any{"logged_out": true})
}
