package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flixkit-labs/flixkit/internal/api"
	"github.com/flixkit-labs/flixkit/internal/config"
	"github.com/flixkit-labs/flixkit/internal/profile"
)

var syncPull bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the addon collection with your account",
	Long: `Push the local addon collection to the account backend, or with --pull
replace the local collection with the server-side one. Requires a logged-in
session key in the config.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncPull, "pull", false, "Replace the local collection with the server-side one")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	authKey := config.AuthKey()
	if authKey == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in — nothing to sync.")
		return nil
	}

	path := profile.DefaultPath()
	p, err := profile.Load(path)
	if err != nil {
		return err
	}

	c := api.New(config.APIBaseURL())

	if syncPull {
		addons, err := c.PullAddonCollection(authKey)
		if err != nil {
			return err
		}
		p.Addons = addons
		if err := profile.Save(path, p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Pulled %d addons.\n", len(addons))
		return nil
	}

	if err := c.PushAddonCollection(authKey, p.Addons); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Pushed %d addons.\n", len(p.Addons))
	return nil
}
