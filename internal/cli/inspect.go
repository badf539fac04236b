package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flixkit-labs/flixkit/internal/manifest"
	"github.com/flixkit-labs/flixkit/internal/transport"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file-or-url>",
	Short: "Decode and validate an addon manifest",
	Long: `Read a manifest from a local file or a transport URL, decode it, and report
schema validation issues. Both resource notations and both catalog extra
notations are accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	source := args[0]

	var data []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = transport.New().Fetch(source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	m, err := manifest.Decode(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) v%s\n", m.Name, m.ID, m.Version.String())
	fmt.Fprintf(cmd.OutOrStdout(), "  types: %s\n", strings.Join(m.Types, ", "))
	for _, r := range m.Resources {
		line := "  resource: " + r.Name
		if r.Types != nil {
			line += " types=" + strings.Join(r.Types, ",")
		}
		if r.IDPrefixes != nil {
			line += " idPrefixes=" + strings.Join(r.IDPrefixes, ",")
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	for _, c := range m.Catalogs {
		fmt.Fprintf(cmd.OutOrStdout(), "  catalog: %s/%s\n", c.Type, c.ID)
	}

	result, err := manifest.Validate(data)
	if err != nil {
		return err
	}
	if result.Valid {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Manifest is valid.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✗ %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", issue.Path, issue.Message)
	}
	return fmt.Errorf("manifest failed validation")
}
