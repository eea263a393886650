package auth

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/services/identity"
)

// WhoamiCmd returns the auth whoami subcommand
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the user holding the active session",
		RunE:  runWhoami,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (user ID only)")

	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
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

	user, ok := c.App.Identity.CurrentUser(cmd.Context())
	if !ok {
		return formatter.Error("NOT_LOGGED_IN", identity.ErrNotLoggedIn)
	}

	return formatter.Success(user.ID,
		fmt.Sprintf("%s <%s>", user.Name, user.Email),
		map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
	)
}
