package auth

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
)

// UsersCmd returns the auth users subcommand
func UsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List registered users with their assigned task counts",
		RunE:  runUsers,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runUsers(cmd *cobra.Command, args []string) error {
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

	ctx := cmd.Context()
	users := c.App.Identity.Users(ctx)

	if jsonOutput {
		list := make([]map[string]any, 0, len(users))
		for _, u := range users {
			list = append(list, map[string]any{
				"id":        u.ID,
				"name":      u.Name,
				"email":     u.Email,
				"logged_in": u.LoggedIn,
				"tasks":     c.App.Board.CountByAssignee(ctx, u.ID),
			})
		}
		return formatter.Success("", "", list)
	}

	if len(users) == 0 {
		fmt.Println("No users registered.")
		return nil
	}

	var b strings.Builder
	for _, u := range users {
		marker := " "
		if u.LoggedIn {
			marker = "*"
		}
		count := c.App.Board.CountByAssignee(ctx, u.ID)
		b.WriteString(fmt.Sprintf("%s %s %s (%d tasks)\n",
			marker,
			styles.TitleStyle.Render(u.Name),
			styles.SubtleStyle.Render("<"+u.Email+">"),
			count,
		))
	}
	fmt.Print(b.String())
	return nil
}
