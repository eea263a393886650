// Package cli provides helpers for CLI integration tests. It lives in
// its own package so service tests can import testutil without pulling
// in the command wiring.
package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// SetupCLITest builds an App over an in-memory store for command tests.
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	s := testutil.SetupTestStore(t)
	return app.New(s, events.NewBus(), config.Default())
}

// ExecuteCLICommand runs a command against an injected test app and
// returns the captured stdout. The injected app is not closed by the
// command, so one app can serve a whole test scenario.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := context.WithValue(context.Background(), cli.AppContextKey, testApp)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}
