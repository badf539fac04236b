package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flixkit-labs/flixkit/internal/profile"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <addon-id-or-url>",
	Short: "Remove an addon from your collection",
	Long: `Remove an installed addon, identified either by its manifest id or by the
transport URL it was installed from. Protected addons cannot be removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	target := args[0]

	path := profile.DefaultPath()
	p, err := profile.Load(path)
	if err != nil {
		return err
	}

	// Accept a manifest id by resolving it to the transport URL first.
	transportURL := target
	if d, ok := p.Addons.FindByID(target); ok {
		transportURL = d.TransportURL
	}

	d, ok := p.Addons.Get(transportURL)
	if !ok {
		return fmt.Errorf("addon %q is not installed", target)
	}

	addons, removed := p.Addons.Uninstall(transportURL)
	if !removed {
		return fmt.Errorf("addon %q is protected and cannot be uninstalled", d.Manifest.Name)
	}

	p.Addons = addons
	if err := profile.Save(path, p); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Uninstalled %s.\n", d.Manifest.Name)
	return nil
}
