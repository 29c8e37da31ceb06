package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teranos/astypes/am"
	"github.com/teranos/astypes/as"
	"github.com/teranos/astypes/ld"
	"github.com/teranos/astypes/typemap"
)

// NewCmd creates an empty document of a registered type.
var NewCmd = &cobra.Command{
	Use:   "new <Type>",
	Short: "Create an empty document of a registered type",
	Long: `Create a document of the given type with a fresh urn:uuid id.

The context comes from codec.default_context in am.toml. Object types
accept --content and --published.

Examples:
  astypes new Note --content "hello"
  astypes new Create --id https://example.com/activities/1`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

var (
	newID        string
	newContent   string
	newPublished bool
)

func init() {
	NewCmd.Flags().StringVar(&newID, "id", "", "Use this id instead of a generated urn:uuid")
	NewCmd.Flags().StringVar(&newContent, "content", "", "Set the content of an Object")
	NewCmd.Flags().BoolVar(&newPublished, "published", false, "Stamp the current time as published")
}

// buildNode creates a node typed typeName with the requested properties.
func buildNode(typeName, id, content string, published *time.Time, context []string) (*typemap.TypeMap, error) {
	reg := typemap.Default()
	d, ok := reg.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("unknown type %q (see 'astypes types')", typeName)
	}

	tm := typemap.New(reg)
	if _, err := tm.ProjectTo(d, true); err != nil {
		return nil, err
	}

	if id == "" {
		id = "urn:uuid:" + uuid.New().String()
	}
	as.Base(tm).ID = id

	if content != "" || published != nil {
		obj, err := typemap.AsEntity[as.ObjectEntity](tm)
		if err != nil {
			return nil, fmt.Errorf("type %q is not an Object: --content and --published do not apply", typeName)
		}
		obj.Content = content
		obj.Published = published
	}

	if len(context) > 0 {
		tm.SetContext(tm.Context().Union(ld.IRI(context...)))
	}
	return tm, nil
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var published *time.Time
	if newPublished {
		now := time.Now().UTC().Truncate(time.Second)
		published = &now
	}

	tm, err := buildNode(args[0], newID, newContent, published, cfg.Codec.DefaultContext)
	if err != nil {
		return err
	}

	s, err := newSerializer()
	if err != nil {
		return err
	}
	out, err := s.SerializeIndent(tm)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
