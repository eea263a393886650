// Package cli holds the shared plumbing for the tablero command line:
// application bootstrap, output formatting, and exit codes. The CLI is
// a thin consumer of the core services; board and identity rules live
// in the service packages.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/app"
)

// ctxKey is the context key type for test app injection.
type ctxKey struct{}

// AppContextKey carries a preconstructed *app.App through a command
// context. Integration tests use it to point commands at an in-memory
// store instead of the user's real data.
var AppContextKey = ctxKey{}

// CLI represents the CLI application context
type CLI struct {
	App *app.App

	// owned is false when the app was injected and must not be closed
	owned bool
}

// FromCommand resolves the application for a command: an injected test
// app when present on the command context, otherwise a freshly opened
// one backed by the configured store.
func FromCommand(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if injected, ok := ctx.Value(AppContextKey).(*app.App); ok && injected != nil {
		return &CLI{App: injected}, nil
	}

	application, err := app.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	application.LoadSeed(ctx)

	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
