package typemap

import (
	"reflect"
	"strings"

	"github.com/teranos/astypes/jsontree"
	"github.com/teranos/astypes/ld"
)

// Facet is the payload one vocabulary type contributes to a node. Facets are
// plain structs whose exported fields carry `json` tags; a facet never
// references the node that owns it.
type Facet interface {
	// RequiresObjectForm reports whether the facet's current state can only be
	// written as a JSON object. Only Link-like facets holding nothing but a
	// reference may return false, as may structural facets with no data.
	RequiresObjectForm() bool
}

// LinkFacet is implemented by the single facet kind that backs the Link
// shorthand: a bare JSON string is read as a Link whose href is that string.
type LinkFacet interface {
	Facet
	HRef() string
	SetHRef(href string)
}

// FacetPtr constrains type parameters to pointer-to-struct facets, so that
// generic helpers can be called as Extend[as.CreateEntity](tm).
type FacetPtr[F any] interface {
	*F
	Facet
}

// Kind identifies a facet type. A node owns at most one facet per Kind.
type Kind struct {
	rt reflect.Type
}

// KindOf returns the Kind of facet struct F.
func KindOf[F any]() Kind {
	return Kind{rt: reflect.TypeOf((*F)(nil)).Elem()}
}

// String returns the Go type name of the facet.
func (k Kind) String() string {
	if k.rt == nil {
		return "<nil>"
	}
	return k.rt.String()
}

// Predicate decides whether an anonymous facet applies to the properties of
// an object that no declared type has claimed.
type Predicate func(props *jsontree.Object) bool

// Descriptor describes one facet kind. Vocabulary packages fill in the
// exported fields and hand the descriptor to Register, which derives the rest.
type Descriptor struct {
	// TypeName is the ActivityStreams type name, e.g. "Create". Empty for
	// structural and anonymous facets.
	TypeName string

	// BaseTypeName names the facet this one extends. When both are present on
	// a node, the base name is hidden from the node's type list.
	BaseTypeName string

	// Context is the JSON-LD context defining the facet's terms.
	// Defaults to ActivityStreams.
	Context ld.Context

	// Implicit facets are created on every node (structural properties such
	// as "id" shared by objects and links).
	Implicit bool

	// Anonymous activates the facet by field presence instead of by type name.
	Anonymous Predicate

	kind   Kind
	newFn  func() Facet
	fields []string
	link   bool
}

// Kind returns the facet kind.
func (d *Descriptor) Kind() Kind { return d.kind }

// New creates an empty facet of this kind.
func (d *Descriptor) New() Facet { return d.newFn() }

// Fields returns the JSON property names the facet owns, in declaration order.
func (d *Descriptor) Fields() []string {
	out := make([]string, len(d.fields))
	copy(out, d.fields)
	return out
}

// Owns reports whether the facet claims JSON property name.
func (d *Descriptor) Owns(name string) bool {
	for _, f := range d.fields {
		if f == name {
			return true
		}
	}
	return false
}

// IsLink reports whether the facet backs the Link shorthand.
func (d *Descriptor) IsLink() bool { return d.link }

// IsAnonymous reports whether the facet is activated by a predicate.
func (d *Descriptor) IsAnonymous() bool { return d.Anonymous != nil }

// String names the descriptor for logs and errors.
func (d *Descriptor) String() string {
	if d.TypeName != "" {
		return d.TypeName
	}
	return d.kind.String()
}

// FieldNames lists the JSON property names of struct type rt, following the
// encoding/json tag rules for exported, non-embedded fields.
func FieldNames(rt reflect.Type) []string {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}
	names := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		if name, ok := FieldName(rt.Field(i)); ok {
			names = append(names, name)
		}
	}
	return names
}

// FieldName returns the JSON property name of a struct field and whether the
// field takes part in encoding at all.
func FieldName(f reflect.StructField) (string, bool) {
	if !f.IsExported() || f.Anonymous {
		return "", false
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, true
}
