package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flixkit-labs/flixkit/internal/manifest"
	"github.com/flixkit-labs/flixkit/internal/profile"
)

var whichExtra []string

var whichCmd = &cobra.Command{
	Use:   "which <resource> <type> <id>",
	Short: "Show which installed addons can serve a request",
	Long: `Match a resource request against every installed addon's manifest and print
the ones that can serve it, in install order. Extra catalog properties are
passed as repeatable --extra name=value flags.`,
	Example: `  flixkit which stream movie tt0032138
  flixkit which catalog movie top --extra genre=Comedy`,
	Args: cobra.ExactArgs(3),
	RunE: runWhich,
}

func init() {
	whichCmd.Flags().StringArrayVar(&whichExtra, "extra", nil, "Extra property as name=value (repeatable)")
	rootCmd.AddCommand(whichCmd)
}

func runWhich(cmd *cobra.Command, args []string) error {
	ref := manifest.NewResourceRef(args[0], args[1], args[2])
	for _, pair := range whichExtra {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid --extra %q, expected name=value", pair)
		}
		ref.Extra = append(ref.Extra, manifest.ExtraValue{Name: name, Value: value})
	}

	p, err := profile.Load(profile.DefaultPath())
	if err != nil {
		return err
	}

	matches := p.Addons.Select(ref)
	if len(matches) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No installed addon supports %s.\n", ref.Path())
		return nil
	}

	for _, d := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", d.Manifest.Name, d.TransportURL)
	}
	return nil
}
