package display_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/astypes/as"
	_ "github.com/teranos/astypes/as/extended"
	"github.com/teranos/astypes/conversion"
	"github.com/teranos/astypes/display"
	"github.com/teranos/astypes/typemap"
)

func TestShouldOutputJSON(t *testing.T) {
	newCmds := func() (*cobra.Command, *cobra.Command) {
		root := &cobra.Command{Use: "root"}
		root.PersistentFlags().Bool("json", false, "")
		child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
		child.Flags().Bool("json", false, "")
		root.AddCommand(child)
		return root, child
	}

	assert.False(t, display.ShouldOutputJSON(nil))

	_, child := newCmds()
	assert.False(t, display.ShouldOutputJSON(child))

	_, child = newCmds()
	require.NoError(t, child.Flags().Set("json", "true"))
	assert.True(t, display.ShouldOutputJSON(child))

	root, child := newCmds()
	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	assert.True(t, display.ShouldOutputJSON(child))
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.OutputJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestNodeTree(t *testing.T) {
	s := conversion.NewSerializer(conversion.DefaultOptions())
	tm, err := s.Deserialize([]byte(`{"type":"Create","id":"https://example.com/c/1",` +
		`"actor":"https://example.com/alice","object":{"type":"Note","content":"hi"},"extra":1}`))
	require.NoError(t, err)

	root, err := display.NodeTree(tm)
	require.NoError(t, err)
	assert.Equal(t, "Create https://example.com/c/1", root.Text)

	var labels []string
	for _, c := range root.Children {
		labels = append(labels, c.Text)
	}
	require.Len(t, labels, 4)
	assert.True(t, strings.HasPrefix(labels[0], "id ["))
	assert.True(t, strings.HasPrefix(labels[1], "actor [Activity"))
	assert.True(t, strings.HasPrefix(labels[2], "object [Activity"))
	assert.Equal(t, "unmapped: extra", labels[3])

	require.Len(t, root.Children[2].Children, 1)
	note := root.Children[2].Children[0]
	assert.Equal(t, "Note", note.Text)
	require.Len(t, note.Children, 1)
	assert.Contains(t, note.Children[0].Text, "= hi")

	out, err := display.RenderTree(tm)
	require.NoError(t, err)
	assert.Contains(t, out, "Create https://example.com/c/1")
}

func TestRegistryTypes(t *testing.T) {
	infos := display.RegistryTypes(typemap.Default())
	require.NotEmpty(t, infos)

	byName := make(map[string]display.TypeInfo)
	for _, info := range infos {
		if info.TypeName != "" {
			byName[info.TypeName] = info
		}
	}
	assert.Equal(t, as.ObjectType, byName["Note"].Base)
	assert.Equal(t, []string{"link"}, byName["Link"].Flags)
	assert.Contains(t, byName["Link"].Fields, "href")

	data := display.TypesTable(infos)
	assert.Equal(t, []string{"Type", "Base", "Kind", "Flags", "Fields"}, data[0])
	assert.Len(t, data, len(infos)+1)

	out, err := display.RenderTypes(typemap.Default())
	require.NoError(t, err)
	assert.Contains(t, out, "OrderedCollection")
}
