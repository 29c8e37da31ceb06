package conversion

import (
	"reflect"

	"github.com/teranos/astypes/errors"
	"github.com/teranos/astypes/typemap"
)

// Reserved JSON-LD keys handled by the codec itself.
const (
	keyType    = "type"
	keyContext = "@context"
)

// slot is the struct field that owns one JSON property on a node.
type slot struct {
	entry typemap.Entry
	value reflect.Value
}

// route maps every property name to the most specific facet owning it.
// When two owned facets share a name, the one extending the other wins;
// facets that are unrelated may not share names.
func route(tm *typemap.TypeMap) (map[string]slot, []string, error) {
	reg := tm.Registry()
	slots := make(map[string]slot)
	var order []string

	for _, e := range tm.AllEntities() {
		sv := facetValue(e.Facet)
		for _, f := range fieldsOf(sv.Type()) {
			next := slot{entry: e, value: sv.Field(f.index)}
			prev, taken := slots[f.name]
			if !taken {
				slots[f.name] = next
				order = append(order, f.name)
				continue
			}
			switch {
			case reg.IsAncestor(prev.entry.Kind, e.Kind):
				slots[f.name] = next
			case reg.IsAncestor(e.Kind, prev.entry.Kind):
				// keep the descendant
			default:
				return nil, nil, errors.NewRegistryConflictError(
					"property %q is claimed by unrelated facets %s and %s",
					f.name, prev.entry.Descriptor, e.Descriptor)
			}
		}
	}
	return slots, order, nil
}
