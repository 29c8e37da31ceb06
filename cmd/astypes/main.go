package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/astypes/am"
	_ "github.com/teranos/astypes/as/extended"
	"github.com/teranos/astypes/cmd/astypes/commands"
	"github.com/teranos/astypes/logger"
)

var rootCmd = &cobra.Command{
	Use:   "astypes",
	Short: "astypes - ActivityStreams 2.0 document codec",
	Long: `astypes - read, normalize and build ActivityStreams 2.0 JSON-LD documents.

Documents are decoded into multi-facet graph nodes: one facet per vocabulary
type, unknown properties and type names kept verbatim, and "@context"
tracked per nesting level. Writing them back yields the canonical form.

Available commands:
  normalize - Rewrite a document in canonical form
  inspect   - Show the facets and properties of a document
  types     - List the registered vocabulary
  new       - Create an empty document of a registered type
  am        - Manage astypes configuration ("I am")

Examples:
  astypes normalize note.jsonld       # Canonical form on stdout
  cat activity.json | astypes inspect # Tree of a document read from stdin
  astypes new Note --content hi       # Fresh Note with a urn:uuid id
  astypes types --json                # Registered types as JSON`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output reports as JSON")

	rootCmd.AddCommand(commands.NormalizeCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.TypesCmd)
	rootCmd.AddCommand(commands.NewCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

// initLogger configures the global logger from the am config, with -v
// taking precedence over log.level.
func initLogger(cmd *cobra.Command) error {
	cfg, err := am.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if verbosity, _ := cmd.Flags().GetCount("verbose"); verbosity > 0 {
		level = logger.VerbosityToLevel(verbosity)
	}

	if err := logger.InitializeWithLevel(cfg.Log.JSON, level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
