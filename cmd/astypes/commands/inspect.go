package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/astypes/display"
	"github.com/teranos/astypes/typemap"
)

// InspectCmd shows how a document was decoded.
var InspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Show the facets and properties of a document",
	Long: `Decode a document and show which facet owns each property.

The default output is a tree: nested nodes appear under the property that
holds them and unknown properties are listed as unmapped. With --json a
summary of the root node is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

// NodeSummary is the --json form of inspect.
type NodeSummary struct {
	Types    []string `json:"types"`
	Facets   []string `json:"facets"`
	Context  any      `json:"context,omitempty"`
	Unmapped []string `json:"unmapped,omitempty"`
}

func summarize(tm *typemap.TypeMap) NodeSummary {
	sum := NodeSummary{
		Types:   tm.Types(),
		Context: tm.Context().Value(),
	}
	for _, e := range tm.AllEntities() {
		sum.Facets = append(sum.Facets, e.Descriptor.String())
	}
	if tm.HasUnmapped() {
		sum.Unmapped = tm.Unmapped().Keys()
	}
	return sum
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, tm, err := decode(cmd, args)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), summarize(tm))
	}

	tree, err := display.RenderTree(tm)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), tree)
	return err
}
