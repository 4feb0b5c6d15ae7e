// Package cli runs hito commands against an in-memory App. It lives apart
// from testutil so service tests do not import the cli package.
package cli

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/app"
	hitocli "github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/database"
	"github.com/thenoetrevino/hito/internal/testutil"
)

// SetupCLITest creates an in-memory repository and an App over it.
// EventPublisher is nil; event publishing is tested in the services.
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return repo, app.New(repo, app.WithClock(func() time.Time { return time.Now().UTC() }))
}

// ExecuteCLICommand executes cmd with args under a context carrying
// testApp and returns what it printed to stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := hitocli.WithApp(context.Background(), testApp)
	cmd.SetArgs(args)
	cmd.SetContext(ctx)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})
	return output, executeErr
}
