package jsontree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/astypes/errors"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z":1,"a":{"y":true,"b":null},"m":"x"}`))
	require.NoError(t, err)

	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())

	nested, _ := obj.Get("a")
	assert.Equal(t, []string{"y", "b"}, nested.(*Object).Keys())
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{`"hello"`, "hello"},
		{`"esc\"aped\n"`, "esc\"aped\n"},
		{`42`, json.Number("42")},
		{`-1.5e3`, json.Number("-1.5e3")},
		{`true`, true},
		{`false`, false},
		{`null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Arrays(t *testing.T) {
	v, err := Parse([]byte(`["a", 1, [true], {"k": "v"}, []]`))
	require.NoError(t, err)

	arr, ok := v.([]Value)
	require.True(t, ok)
	require.Len(t, arr, 5)
	assert.Equal(t, "a", arr[0])
	assert.Equal(t, json.Number("1"), arr[1])
	assert.Equal(t, []Value{true}, arr[2])
	assert.Equal(t, "object", Kind(arr[3]))
	assert.Equal(t, []Value{}, arr[4])
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{``, `   `, `{`, `{"a":}`, `[1,]`, `"unterminated`, `{} trailing`} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse([]byte(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrMalformedDocument))
		})
	}
}

func TestMarshal_RoundTripText(t *testing.T) {
	inputs := []string{
		`{"type":"Note","content":"<p>hi</p>","tag":[{"href":"x"},"y"],"n":1.50,"ok":false,"none":null}`,
		`"https://example.com/x"`,
		`[]`,
		`{}`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v, err := Parse([]byte(input))
			require.NoError(t, err)

			out, err := Marshal(v)
			require.NoError(t, err)
			assert.Equal(t, input, string(out))
		})
	}
}

func TestMarshalIndent(t *testing.T) {
	obj := NewObject()
	obj.Set("b", "x")
	obj.Set("a", []Value{json.Number("1")})

	out, err := MarshalIndent(obj, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": \"x\",\n  \"a\": [\n    1\n  ]\n}", string(out))
}

func TestObject_SetKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("first", 1)
	obj.Set("second", 2)
	obj.Set("first", 3)

	assert.Equal(t, []string{"first", "second"}, obj.Keys())
	v, _ := obj.Get("first")
	assert.Equal(t, 3, v)

	assert.False(t, obj.SetIfAbsent("second", 9))
	assert.True(t, obj.SetIfAbsent("third", 9))
	assert.Equal(t, []string{"first", "second", "third"}, obj.Keys())

	obj.Delete("first")
	assert.Equal(t, []string{"second", "third"}, obj.Keys())
}

func TestObject_NilReceiver(t *testing.T) {
	var obj *Object
	assert.Equal(t, 0, obj.Len())
	assert.Nil(t, obj.Keys())
	assert.False(t, obj.Has("x"))
	assert.Nil(t, obj.Clone())
}

func TestClone_IsDeep(t *testing.T) {
	orig := MustParse(`{"a":{"b":[1,2]}}`).(*Object)
	cp := orig.Clone()

	inner, _ := cp.Get("a")
	inner.(*Object).Set("b", "changed")

	origInner, _ := orig.Get("a")
	b, _ := origInner.(*Object).Get("b")
	assert.Equal(t, []Value{json.Number("1"), json.Number("2")}, b)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"key order ignored", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"numeric equality", `1.0`, `1`, true},
		{"array order matters", `[1,2]`, `[2,1]`, false},
		{"missing key", `{"a":1}`, `{"a":1,"b":2}`, false},
		{"type mismatch", `"1"`, `1`, false},
		{"nulls", `null`, `null`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(MustParse(tt.a), MustParse(tt.b)))
		})
	}
}

func TestFromAny(t *testing.T) {
	var decoded any
	require.NoError(t, json.Unmarshal([]byte(`{"b":[1,"x"],"a":true}`), &decoded))

	v := FromAny(decoded)
	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	assert.True(t, Equal(v, MustParse(`{"a":true,"b":[1,"x"]}`)))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "null", Kind(nil))
	assert.Equal(t, "bool", Kind(true))
	assert.Equal(t, "number", Kind(json.Number("1")))
	assert.Equal(t, "string", Kind("s"))
	assert.Equal(t, "array", Kind([]Value{}))
	assert.Equal(t, "object", Kind(NewObject()))
}
