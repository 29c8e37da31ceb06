// Package typemap implements the multi-facet graph node used to represent
// ActivityStreams objects.
//
// A TypeMap is one addressable node. It owns at most one facet per facet
// kind, the ordered list of type names declared for the node, its JSON-LD
// context, and the properties no facet claimed. Vocabulary packages describe
// their facets once, at startup, in a Registry; application code then reaches
// the typed payloads with Extend, Project, AsEntity and IsModel.
package typemap

import (
	"github.com/teranos/astypes/errors"
	"github.com/teranos/astypes/jsontree"
	"github.com/teranos/astypes/ld"
)

// Entry is one owned facet, as seen by serialization.
type Entry struct {
	Kind       Kind
	Descriptor *Descriptor
	Facet      Facet
}

// TypeMap is a graph node. It is not safe for concurrent use.
type TypeMap struct {
	reg *Registry

	facets map[Kind]Facet
	order  []Kind

	declared   []string
	suppressed map[string]bool

	ownContext ld.Context
	parent     ld.Context
	hasParent  bool

	unmapped *jsontree.Object
}

// New creates a root node bound to reg, or to Default() when reg is nil.
// Implicit facets are created immediately.
func New(reg *Registry) *TypeMap {
	if reg == nil {
		reg = Default()
	}
	tm := &TypeMap{
		reg:        reg,
		facets:     make(map[Kind]Facet),
		suppressed: make(map[string]bool),
	}
	for _, d := range reg.Implicit() {
		// cannot fail on an empty node
		_ = tm.extend(d)
	}
	return tm
}

// NewWithParent creates a nested node that inherits parent as its context
// until it gains one of its own.
func NewWithParent(reg *Registry, parent ld.Context) *TypeMap {
	tm := New(reg)
	tm.parent = parent
	tm.hasParent = true
	return tm
}

// Registry returns the registry the node resolves facets against.
func (tm *TypeMap) Registry() *Registry {
	return tm.reg
}

// Extend adds a new facet of kind F to tm and returns it.
// Fails with ErrFacetAlreadyPresent if the node already owns one.
func Extend[F any, P FacetPtr[F]](tm *TypeMap) (P, error) {
	d, err := tm.descriptorOf(KindOf[F]())
	if err != nil {
		return nil, err
	}
	f, err := tm.ExtendWith(d)
	if err != nil {
		return nil, err
	}
	return f.(P), nil
}

// Project returns the facet of kind F. When the node lacks it and
// allowCreate is set, the facet is created together with any missing
// ancestors, root first. Otherwise it fails with ErrFacetNotFound.
func Project[F any, P FacetPtr[F]](tm *TypeMap, allowCreate bool) (P, error) {
	d, err := tm.descriptorOf(KindOf[F]())
	if err != nil {
		return nil, err
	}
	f, err := tm.ProjectTo(d, allowCreate)
	if err != nil {
		return nil, err
	}
	return f.(P), nil
}

// AsEntity returns the facet of kind F, failing with ErrFacetNotFound when
// the node does not own it.
func AsEntity[F any, P FacetPtr[F]](tm *TypeMap) (P, error) {
	return Project[F, P](tm, false)
}

// IsModel reports whether the node owns a facet of kind F.
func IsModel[F any](tm *TypeMap) bool {
	_, ok := tm.facets[KindOf[F]()]
	return ok
}

func (tm *TypeMap) descriptorOf(k Kind) (*Descriptor, error) {
	d, ok := tm.reg.ByKind(k)
	if !ok {
		return nil, errors.AssertionFailedf("facet kind %s is not registered", k)
	}
	return d, nil
}

// ExtendWith is the non-generic form of Extend.
func (tm *TypeMap) ExtendWith(d *Descriptor) (Facet, error) {
	if err := tm.extend(d); err != nil {
		return nil, err
	}
	return tm.facets[d.kind], nil
}

func (tm *TypeMap) extend(d *Descriptor) error {
	if _, exists := tm.facets[d.kind]; exists {
		return errors.Wrapf(errors.ErrFacetAlreadyPresent, "extend %s", d)
	}

	tm.facets[d.kind] = d.New()
	tm.order = append(tm.order, d.kind)

	if d.TypeName != "" {
		tm.AddTypeName(d.TypeName)
	}
	if d.BaseTypeName != "" {
		tm.suppressed[d.BaseTypeName] = true
	}
	if tm.inheritsDefault(d) {
		return nil
	}
	if current := tm.Context(); !current.Includes(d.Context) {
		tm.ownContext = current.Union(d.Context)
	}
	return nil
}

// inheritsDefault reports whether d only asks for the default vocabulary on a
// nested node that still inherits its parent's context. Such a node keeps the
// parent's context even when it lacks ActivityStreams.
func (tm *TypeMap) inheritsDefault(d *Descriptor) bool {
	return tm.hasParent && tm.ownContext.IsEmpty() && d.Context.Equal(ld.ActivityStreams)
}

// ProjectTo is the non-generic form of Project.
func (tm *TypeMap) ProjectTo(d *Descriptor, allowCreate bool) (Facet, error) {
	if f, ok := tm.facets[d.kind]; ok {
		return f, nil
	}
	if !allowCreate {
		return nil, errors.Wrapf(errors.ErrFacetNotFound, "project %s", d)
	}
	for _, anc := range tm.reg.Chain(d) {
		if _, ok := tm.facets[anc.kind]; ok {
			continue
		}
		if err := tm.extend(anc); err != nil {
			return nil, err
		}
	}
	return tm.ExtendWith(d)
}

// Lookup returns the facet of kind k, if owned.
func (tm *TypeMap) Lookup(k Kind) (Facet, bool) {
	f, ok := tm.facets[k]
	return f, ok
}

// Has reports whether the node owns a facet of kind k.
func (tm *TypeMap) Has(k Kind) bool {
	_, ok := tm.facets[k]
	return ok
}

// AllEntities returns the owned facets in the order they were added.
func (tm *TypeMap) AllEntities() []Entry {
	out := make([]Entry, 0, len(tm.order))
	for _, k := range tm.order {
		d, _ := tm.reg.ByKind(k)
		out = append(out, Entry{Kind: k, Descriptor: d, Facet: tm.facets[k]})
	}
	return out
}

// Types returns the resolved type names: every declared name, in order,
// except those hidden by an owned facet's base type.
func (tm *TypeMap) Types() []string {
	out := make([]string, 0, len(tm.declared))
	for _, name := range tm.declared {
		if !tm.suppressed[name] {
			out = append(out, name)
		}
	}
	return out
}

// AddTypeName declares a type name on the node without creating a facet.
// Used for names missing from the registry so they survive a round trip.
// Adding a name twice is a no-op.
func (tm *TypeMap) AddTypeName(name string) {
	for _, existing := range tm.declared {
		if existing == name {
			return
		}
	}
	tm.declared = append(tm.declared, name)
}

// Context returns the node's effective JSON-LD context: its own context
// when set, otherwise the inherited one, otherwise ActivityStreams.
func (tm *TypeMap) Context() ld.Context {
	if !tm.ownContext.IsEmpty() {
		return tm.ownContext
	}
	if tm.hasParent {
		return tm.parent
	}
	return ld.ActivityStreams
}

// OwnContext returns the context set on this node, which is empty when the
// node inherits.
func (tm *TypeMap) OwnContext() ld.Context {
	return tm.ownContext
}

// SetContext replaces the node's own context.
func (tm *TypeMap) SetContext(c ld.Context) {
	tm.ownContext = c
}

// IsNested reports whether the node was created inside another node.
func (tm *TypeMap) IsNested() bool {
	return tm.hasParent
}

// Unmapped returns the properties no facet claimed, in document order.
// The result may be nil.
func (tm *TypeMap) Unmapped() *jsontree.Object {
	return tm.unmapped
}

// SetUnmapped stores a property that no facet claims.
func (tm *TypeMap) SetUnmapped(key string, value jsontree.Value) {
	if tm.unmapped == nil {
		tm.unmapped = jsontree.NewObject()
	}
	tm.unmapped.Set(key, value)
}

// HasUnmapped reports whether any unclaimed property is stored.
func (tm *TypeMap) HasUnmapped() bool {
	return tm.unmapped.Len() > 0
}
