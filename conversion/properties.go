package conversion

import (
	"reflect"

	"github.com/teranos/astypes/typemap"
)

// Property is one non-empty property of a node, attributed to the facet
// that owns it.
type Property struct {
	Name  string
	Facet *typemap.Descriptor
	// Value is the facet field with pointers dereferenced.
	Value any
	// Nodes lists the nested nodes the property refers to, if any.
	Nodes []*typemap.TypeMap
}

// Properties lists the set properties of tm in the order they are written.
func Properties(tm *typemap.TypeMap) ([]Property, error) {
	slots, order, err := route(tm)
	if err != nil {
		return nil, err
	}

	var out []Property
	for _, name := range order {
		s := slots[name]
		if s.value.IsZero() {
			continue
		}
		v := s.value
		for v.Kind() == reflect.Pointer && v.Type() != typeMapPtrType {
			v = v.Elem()
		}
		out = append(out, Property{
			Name:  name,
			Facet: s.entry.Descriptor,
			Value: v.Interface(),
			Nodes: nodesOf(v),
		})
	}
	return out, nil
}

func nodesOf(v reflect.Value) []*typemap.TypeMap {
	switch {
	case v.Type() == typeMapPtrType:
		return []*typemap.TypeMap{v.Interface().(*typemap.TypeMap)}
	case v.Kind() == reflect.Slice && v.Type().Elem() == typeMapPtrType:
		nodes := make([]*typemap.TypeMap, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if tm := v.Index(i).Interface().(*typemap.TypeMap); tm != nil {
				nodes = append(nodes, tm)
			}
		}
		return nodes
	}
	return nil
}
