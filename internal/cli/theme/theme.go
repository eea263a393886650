package theme

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Cmd returns the theme command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ToggleCmd())

	return cmd
}

// ShowCmd returns the theme show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current theme",
		RunE:  runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Theme name only")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	current := c.App.Theme(cmd.Context())
	return formatter.Success(string(current),
		fmt.Sprintf("Current theme: %s", current),
		map[string]any{"theme": current},
	)
}

// SetCmd returns the theme set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <light|dark>",
		Short: "Set the theme",
		Args:  cobra.ExactArgs(1),
		RunE:  runSet,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output")

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
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

	next := models.Theme(args[0])
	if err := c.App.SetTheme(cmd.Context(), next); err != nil {
		return formatter.Error("THEME_ERROR", err)
	}

	return formatter.Success(string(next),
		fmt.Sprintf("Theme set to %s", next),
		map[string]any{"theme": next},
	)
}

// ToggleCmd returns the theme toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		RunE:  runToggle,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Theme name only")

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
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

	next, err := c.App.ToggleTheme(cmd.Context())
	if err != nil {
		return formatter.Error("THEME_ERROR", err)
	}

	return formatter.Success(string(next),
		fmt.Sprintf("Theme set to %s", next),
		map[string]any{"theme": next},
	)
}
