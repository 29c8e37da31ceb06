package conversion

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/astypes/errors"
	"github.com/teranos/astypes/jsontree"
	"github.com/teranos/astypes/typemap"
)

// nodeStub stands in for the reader and writer when nested nodes are not
// under test.
type nodeStub struct {
	compact bool
}

func (nodeStub) readNode(v jsontree.Value, path string) (*typemap.TypeMap, error) {
	return nil, errors.NewMalformedError(path, "unexpected nested node")
}

func (nodeStub) writeNode(tm *typemap.TypeMap, path string) (jsontree.Value, error) {
	return nil, errors.AssertionFailedf("unexpected nested node at %s", path)
}

func (n nodeStub) compactSingle() bool { return n.compact }

type scalarFields struct {
	Text    string            `json:"text,omitempty"`
	Flag    bool              `json:"flag,omitempty"`
	Count   int32             `json:"count,omitempty"`
	Size    *uint16           `json:"size,omitempty"`
	Ratio   float64           `json:"ratio,omitempty"`
	When    time.Time         `json:"when,omitempty"`
	Labels  []string          `json:"labels,omitempty"`
	Lang    map[string]string `json:"lang,omitempty"`
	Raw     jsontree.Value    `json:"raw,omitempty"`
	Channel chan int          `json:"channel,omitempty"`
	Skipped string            `json:"-"`
}

func fieldByName(t *testing.T, s *scalarFields, name string) reflect.Value {
	t.Helper()
	sv := reflect.ValueOf(s).Elem()
	for _, f := range fieldsOf(sv.Type()) {
		if f.name == name {
			return sv.Field(f.index)
		}
	}
	t.Fatalf("no field %q", name)
	return reflect.Value{}
}

func TestFieldsOf(t *testing.T) {
	var names []string
	for _, f := range fieldsOf(reflect.TypeOf(scalarFields{})) {
		names = append(names, f.name)
	}
	assert.Equal(t, []string{"text", "flag", "count", "size", "ratio", "when", "labels", "lang", "raw", "channel"}, names)
}

func TestScanValue(t *testing.T) {
	var s scalarFields
	stub := nodeStub{}

	require.NoError(t, scanValue(stub, fieldByName(t, &s, "text"), "hello", "$.text"))
	require.NoError(t, scanValue(stub, fieldByName(t, &s, "flag"), true, "$.flag"))
	require.NoError(t, scanValue(stub, fieldByName(t, &s, "count"), jsontree.MustParse(`-7`), "$.count"))
	require.NoError(t, scanValue(stub, fieldByName(t, &s, "size"), jsontree.MustParse(`12`), "$.size"))
	require.NoError(t, scanValue(stub, fieldByName(t, &s, "ratio"), jsontree.MustParse(`0.25`), "$.ratio"))
	require.NoError(t, scanValue(stub, fieldByName(t, &s, "when"), "2024-05-01T12:00:00+02:00", "$.when"))
	require.NoError(t, scanValue(stub, fieldByName(t, &s, "labels"), "single", "$.labels"))
	require.NoError(t, scanValue(stub, fieldByName(t, &s, "lang"), jsontree.MustParse(`{"en":"a","fr":null}`), "$.lang"))
	require.NoError(t, scanValue(stub, fieldByName(t, &s, "raw"), jsontree.MustParse(`{"k":[1]}`), "$.raw"))

	assert.Equal(t, "hello", s.Text)
	assert.True(t, s.Flag)
	assert.Equal(t, int32(-7), s.Count)
	require.NotNil(t, s.Size)
	assert.Equal(t, uint16(12), *s.Size)
	assert.Equal(t, 0.25, s.Ratio)
	assert.Equal(t, 10, s.When.UTC().Hour())
	assert.Equal(t, []string{"single"}, s.Labels)
	assert.Equal(t, map[string]string{"en": "a"}, s.Lang)
	assert.True(t, jsontree.Equal(jsontree.MustParse(`{"k":[1]}`), s.Raw))
}

func TestScanValue_Null(t *testing.T) {
	s := scalarFields{Text: "kept"}
	require.NoError(t, scanValue(nodeStub{}, fieldByName(t, &s, "text"), nil, "$.text"))
	assert.Equal(t, "kept", s.Text)
}

func TestScanValue_Mismatch(t *testing.T) {
	tests := []struct {
		field    string
		value    jsontree.Value
		wantPath string
	}{
		{"text", true, "$.text"},
		{"count", "7", "$.count"},
		{"count", jsontree.MustParse(`1.5`), "$.count"},
		{"size", jsontree.MustParse(`-1`), "$.size"},
		{"size", jsontree.MustParse(`70000`), "$.size"},
		{"when", "2024-05-01", "$.when"},
		{"labels", jsontree.MustParse(`["a",2]`), "$.labels[1]"},
		{"lang", "en", "$.lang"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			var s scalarFields
			err := scanValue(nodeStub{}, fieldByName(t, &s, tt.field), tt.value, "$."+tt.field)
			require.Error(t, err)
			assert.True(t, errors.IsMalformed(err))
			assert.Equal(t, tt.wantPath, errors.PathOf(err))
		})
	}
}

func TestUnsupportedFieldType(t *testing.T) {
	var s scalarFields
	err := scanValue(nodeStub{}, fieldByName(t, &s, "channel"), "x", "$.channel")
	require.Error(t, err)
	assert.True(t, errors.HasAssertionFailure(err))
	assert.False(t, errors.IsMalformed(err))

	s.Channel = make(chan int)
	_, err = formatValue(nodeStub{}, fieldByName(t, &s, "channel"), "$.channel")
	assert.True(t, errors.HasAssertionFailure(err))
}

func TestFormatValue(t *testing.T) {
	size := uint16(3)
	s := scalarFields{
		Text:   "hi",
		Count:  -2,
		Size:   &size,
		Ratio:  1.5,
		When:   time.Date(2024, 5, 1, 12, 0, 0, 500, time.UTC),
		Labels: []string{"one"},
		Lang:   map[string]string{"fr": "b", "en": "a"},
	}

	format := func(stub nodeStub, name string) string {
		v, err := formatValue(stub, fieldByName(t, &s, name), "$."+name)
		require.NoError(t, err)
		out, err := jsontree.Marshal(v)
		require.NoError(t, err)
		return string(out)
	}

	assert.Equal(t, `"hi"`, format(nodeStub{}, "text"))
	assert.Equal(t, `-2`, format(nodeStub{}, "count"))
	assert.Equal(t, `3`, format(nodeStub{}, "size"))
	assert.Equal(t, `1.5`, format(nodeStub{}, "ratio"))
	assert.Equal(t, `"2024-05-01T12:00:00.0000005Z"`, format(nodeStub{}, "when"))
	assert.Equal(t, `{"en":"a","fr":"b"}`, format(nodeStub{}, "lang"))
	assert.Equal(t, `"one"`, format(nodeStub{compact: true}, "labels"))
	assert.Equal(t, `["one"]`, format(nodeStub{compact: false}, "labels"))
}
