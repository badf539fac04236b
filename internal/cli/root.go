package cli

import (
	"github.com/spf13/cobra"

	"github.com/flixkit-labs/flixkit/internal/branding"
	"github.com/flixkit-labs/flixkit/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` manages a collection of streaming addons: install them from their
manifest URLs, inspect and validate manifests, query which installed addon
can serve a resource request, and sync the collection with your account.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
