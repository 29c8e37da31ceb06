package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NormalizeCmd rewrites a document the way the codec emits it.
var NormalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Rewrite a document in canonical form",
	Long: `Read an ActivityStreams document and write it back in canonical form.

Base type names are dropped, "@context" is only repeated where it changes,
reference-only links collapse to their href, and unknown properties are
kept in document order. Reads stdin when no file (or "-") is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

var normalizeCompact bool

func init() {
	NormalizeCmd.Flags().BoolVarP(&normalizeCompact, "compact", "c", false, "Write compact JSON instead of indented")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	s, tm, err := decode(cmd, args)
	if err != nil {
		return err
	}

	var out []byte
	if normalizeCompact {
		out, err = s.Serialize(tm)
	} else {
		out, err = s.SerializeIndent(tm)
	}
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
