package auth

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/services/identity"
)

// RegisterCmd returns the auth register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account and log in",
		Long: `Register a new account. The new account becomes the active session.

Examples:
  tablero auth register --name="Ana" --email=ana@x.com --password=secret1 --confirm=secret1
  tablero auth register --name="Ana" --email=ana@x.com --password=secret1 --confirm=secret1 --quiet`,
		RunE: runRegister,
	}

	cmd.Flags().String("name", "", "Display name (required)")
	cmd.Flags().String("email", "", "Email address (required)")
	cmd.Flags().String("password", "", "Password, at least 6 characters (required)")
	cmd.Flags().String("confirm", "", "Password confirmation (required)")
	for _, flag := range []string{"name", "email", "password", "confirm"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (user ID only)")

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	confirm, _ := cmd.Flags().GetString("confirm")
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

	user, err := c.App.Identity.Register(cmd.Context(), identity.RegisterRequest{
		Name:      name,
		Email:     email,
		Password:  password,
		Password2: confirm,
	})
	if err != nil {
		return formatter.Error("REGISTRATION_FAILED", err)
	}

	return formatter.Success(user.ID,
		fmt.Sprintf("Registered and logged in as %s <%s>", user.Name, user.Email),
		map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
	)
}
