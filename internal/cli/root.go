package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fiasuz/create-fias/internal/branding"
	"github.com/fiasuz/create-fias/internal/console"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [project-name]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new project from the fias-ui template repository.

It clones the selected template, starts a fresh git history, sets the
package.json name, installs dependencies, and records an initial commit.
When the project name is omitted it is asked for interactively.

Examples:
  ` + branding.CLIName() + ` my-app
  ` + branding.CLIName() + ` my-app --template react --package-manager pnpm`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

// reportedError marks an error that was already printed to the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Execute runs the root command with build info injected via ldflags. Errors
// not yet shown to the user are printed before returning.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		var re reportedError
		if !errors.As(err, &re) {
			rep := console.New()
			rep.Error("Unexpected error:")
			rep.Cause(err)
		}
	}
	return err
}

// versionString is the one-line version banner.
func versionString() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", branding.CLIName(), buildVersion, buildCommit, buildDate)
}
