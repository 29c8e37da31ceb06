// Package jsontree holds JSON documents as a generic value tree that keeps
// object keys in document order.
//
// A Value is one of:
//
//	nil          JSON null
//	bool         JSON true / false
//	json.Number  JSON number, literal text preserved
//	string       JSON string
//	[]Value      JSON array
//	*Object      JSON object, insertion ordered
//
// Key order matters for round trips: properties the codec does not understand
// are written back in the position they were read.
package jsontree

import (
	"encoding/json"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value is a node of a JSON tree. See the package documentation for the
// concrete types it may hold.
type Value = any

// Object is a JSON object whose keys iterate in insertion order.
type Object struct {
	m *orderedmap.OrderedMap[string, Value]
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{m: orderedmap.New[string, Value]()}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return o.m.Len()
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	return o.m.Get(key)
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores value under key. An existing key keeps its position.
func (o *Object) Set(key string, value Value) {
	o.m.Set(key, value)
}

// SetIfAbsent stores value only when key is not present yet.
// Returns true if the value was stored.
func (o *Object) SetIfAbsent(key string, value Value) bool {
	if o.Has(key) {
		return false
	}
	o.m.Set(key, value)
	return true
}

// Delete removes key.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	o.m.Delete(key)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every entry in insertion order, stopping at the first error.
func (o *Object) Each(fn func(key string, value Value) error) error {
	if o == nil {
		return nil
	}
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := NewObject()
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, Clone(pair.Value))
	}
	return out
}

// MarshalJSON writes the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	return Marshal(o)
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch t := v.(type) {
	case *Object:
		return t.Clone()
	case []Value:
		out := make([]Value, len(t))
		for i, item := range t {
			out[i] = Clone(item)
		}
		return out
	default:
		return v
	}
}

// Kind names the JSON type of v, for error messages.
func Kind(v Value) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case json.Number, float64, int, int64:
		return "number"
	case string:
		return "string"
	case []Value:
		return "array"
	case *Object:
		return "object"
	default:
		return "unknown"
	}
}

// Equal reports whether a and b hold the same JSON value.
// Object key order is not significant; numbers compare by numeric value.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case json.Number:
		y, ok := b.(json.Number)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		fx, errx := x.Float64()
		fy, erry := y.Float64()
		return errx == nil && erry == nil && fx == fy
	case []Value:
		y, ok := b.([]Value)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, key := range x.Keys() {
			xv, _ := x.Get(key)
			yv, present := y.Get(key)
			if !present || !Equal(xv, yv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FromAny converts a value produced by encoding/json (map[string]any,
// []any, float64, ...) into a tree. Map keys are sorted, since Go maps
// carry no order.
func FromAny(v any) Value {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, FromAny(t[k]))
		}
		return obj
	case []any:
		out := make([]Value, len(t))
		for i, item := range t {
			out[i] = FromAny(item)
		}
		return out
	case float64:
		data, _ := json.Marshal(t)
		return json.Number(data)
	case int:
		data, _ := json.Marshal(t)
		return json.Number(data)
	case int64:
		data, _ := json.Marshal(t)
		return json.Number(data)
	default:
		return v
	}
}
