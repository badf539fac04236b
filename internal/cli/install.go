package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flixkit-labs/flixkit/internal/addon"
	"github.com/flixkit-labs/flixkit/internal/manifest"
	"github.com/flixkit-labs/flixkit/internal/profile"
	"github.com/flixkit-labs/flixkit/internal/transport"
)

var installYes bool

var installCmd = &cobra.Command{
	Use:   "install <transport-url>",
	Short: "Install an addon from its manifest URL",
	Long: `Fetch the manifest at the given transport URL, show a summary, and add the
addon to your collection. Installing from a URL that is already in the
collection replaces the stored manifest in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	transportURL := args[0]

	c := transport.New()
	data, err := c.Fetch(transportURL)
	if err != nil {
		return err
	}
	m, err := manifest.Decode(data)
	if err != nil {
		return fmt.Errorf("manifest from %s: %w", transportURL, err)
	}

	// Advisory lint; decode already accepted the manifest.
	if result, err := manifest.Validate(data); err == nil && !result.Valid {
		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "⚠ %s: %s\n", issue.Path, issue.Message)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) v%s\n", m.Name, m.ID, m.Version.String())
	if m.Description != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", *m.Description)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  types: %s\n", strings.Join(m.Types, ", "))
	names := make([]string, len(m.Resources))
	for i, r := range m.Resources {
		names[i] = r.Name
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  resources: %s\n", strings.Join(names, ", "))

	if !installYes {
		fmt.Fprint(cmd.OutOrStdout(), "? Install this addon? (Y/n) ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
			if answer != "" && answer != "y" && answer != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Installation cancelled.")
				return nil
			}
		}
	}

	path := profile.DefaultPath()
	p, err := profile.Load(path)
	if err != nil {
		return err
	}
	p.Addons = p.Addons.Install(addon.Descriptor{Manifest: *m, TransportURL: transportURL})
	if err := profile.Save(path, p); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed %s.\n", m.Name)
	return nil
}
