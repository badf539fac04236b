package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flixkit-labs/flixkit/internal/profile"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed addons",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the collection as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	p, err := profile.Load(profile.DefaultPath())
	if err != nil {
		return err
	}

	if listJSON {
		out, err := json.MarshalIndent(p.Addons, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling collection: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(p.Addons) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No addons installed.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVERSION\tURL")
	for _, d := range p.Addons {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Manifest.ID, d.Manifest.Name, d.Manifest.Version.String(), d.TransportURL)
	}
	return w.Flush()
}
