package auth

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// LoginCmd returns the auth login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE:  runLogin,
	}

	cmd.Flags().String("email", "", "Email address (required)")
	cmd.Flags().String("password", "", "Password (required)")
	for _, flag := range []string{"email", "password"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (user ID only)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
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

	user, err := c.App.Identity.Login(cmd.Context(), email, password)
	if err != nil {
		return formatter.Error("LOGIN_FAILED", err)
	}

	return formatter.Success(user.ID,
		fmt.Sprintf("Logged in as %s <%s>", user.Name, user.Email),
		map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
	)
}
