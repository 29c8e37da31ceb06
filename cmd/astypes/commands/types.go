package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/astypes/display"
	"github.com/teranos/astypes/typemap"
)

// TypesCmd lists the registered vocabulary.
var TypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered vocabulary",
	Long: `List every facet known to the codec: its type name, base type, Go kind,
flags (implicit, anonymous, link) and the JSON properties it owns.`,
	Args: cobra.NoArgs,
	RunE: runTypes,
}

func runTypes(cmd *cobra.Command, args []string) error {
	reg := typemap.Default()

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), display.RegistryTypes(reg))
	}

	table, err := display.RenderTypes(reg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), table)
	return err
}
