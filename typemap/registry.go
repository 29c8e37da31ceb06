package typemap

import (
	"reflect"
	"sort"
	"sync"

	"github.com/teranos/astypes/errors"
	"github.com/teranos/astypes/ld"
	"github.com/teranos/astypes/logger"
)

// Registry maps vocabulary type names and facet kinds to their descriptors.
//
// A registry is filled during startup and then frozen. Freeze validates the
// whole table; afterwards the registry is read-only and may be shared by any
// number of concurrent reads and writes of independent documents.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Descriptor
	byKind map[Kind]*Descriptor
	order  []*Descriptor
	link   *Descriptor
	frozen bool
}

// NewRegistry creates an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Descriptor),
		byKind: make(map[Kind]*Descriptor),
	}
}

// Register adds facet kind F to r.
//
// Registering the same kind or type name twice, or registering into a frozen
// registry, fails with ErrRegistryConflict.
func Register[F any, P FacetPtr[F]](r *Registry, d Descriptor) error {
	d.kind = KindOf[F]()
	d.newFn = func() Facet { return P(new(F)) }
	d.fields = FieldNames(reflect.TypeOf((*F)(nil)).Elem())
	_, d.link = any(P(nil)).(LinkFacet)
	if d.Context.IsEmpty() {
		d.Context = ld.ActivityStreams
	}
	return r.add(&d)
}

// MustRegister is like Register but panics on error. Intended for init()
// registration of vocabulary types.
func MustRegister[F any, P FacetPtr[F]](r *Registry, d Descriptor) {
	if err := Register[F, P](r, d); err != nil {
		panic("failed to register facet: " + err.Error())
	}
}

func (r *Registry) add(d *Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.NewRegistryConflictError("cannot register %s: registry is frozen", d)
	}
	if _, exists := r.byKind[d.kind]; exists {
		return errors.NewRegistryConflictError("facet kind %s registered twice", d.kind)
	}
	if d.TypeName != "" {
		if _, exists := r.byName[d.TypeName]; exists {
			return errors.NewRegistryConflictError("type name %q registered twice", d.TypeName)
		}
		r.byName[d.TypeName] = d
	}
	r.byKind[d.kind] = d
	r.order = append(r.order, d)

	logger.Debugw("Registered facet",
		logger.FieldTypeName, d.TypeName,
		logger.FieldBaseType, d.BaseTypeName,
		logger.FieldKind, d.kind.String())
	return nil
}

// Freeze validates the registry and makes it read-only. It reports unknown
// or cyclic base types, more than one Link kind, and JSON property names
// shared by facets that do not extend one another. Freezing twice is a no-op.
func (r *Registry) Freeze() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return nil
	}

	var link *Descriptor
	for _, d := range r.order {
		if d.link {
			if link != nil {
				return errors.NewRegistryConflictError("both %s and %s implement the Link shorthand", link, d)
			}
			link = d
		}
		if d.BaseTypeName == "" {
			continue
		}
		if _, ok := r.byName[d.BaseTypeName]; !ok {
			return errors.NewRegistryConflictError("base type %q of %s is not registered", d.BaseTypeName, d)
		}
		if err := r.checkChain(d); err != nil {
			return err
		}
	}

	if err := r.checkFieldOverlap(); err != nil {
		return err
	}

	r.link = link
	r.frozen = true
	logger.Debugw("Facet registry frozen", "facets", len(r.order))
	return nil
}

// checkChain walks the base chain of d and fails if it revisits a type.
func (r *Registry) checkChain(d *Descriptor) error {
	seen := map[string]bool{}
	if d.TypeName != "" {
		seen[d.TypeName] = true
	}
	for base := d.BaseTypeName; base != ""; {
		if seen[base] {
			return errors.NewRegistryConflictError("base type chain of %s is cyclic at %q", d, base)
		}
		seen[base] = true
		next, ok := r.byName[base]
		if !ok {
			return errors.NewRegistryConflictError("base type %q is not registered", base)
		}
		base = next.BaseTypeName
	}
	return nil
}

func (r *Registry) checkFieldOverlap() error {
	owner := map[string]*Descriptor{}
	for _, d := range r.order {
		for _, name := range d.fields {
			prev, taken := owner[name]
			if !taken {
				owner[name] = d
				continue
			}
			if !r.related(prev, d) {
				return errors.WithHint(
					errors.NewRegistryConflictError("property %q is claimed by both %s and %s", name, prev, d),
					"facets may only share a property when one extends the other")
			}
		}
	}
	return nil
}

func (r *Registry) related(a, b *Descriptor) bool {
	return r.isAncestor(a, b) || r.isAncestor(b, a)
}

// isAncestor reports whether anc appears in the base chain of d.
// Callers must hold the lock.
func (r *Registry) isAncestor(anc, d *Descriptor) bool {
	if anc.TypeName == "" {
		return false
	}
	for base := d.BaseTypeName; base != ""; {
		if base == anc.TypeName {
			return true
		}
		next, ok := r.byName[base]
		if !ok {
			return false
		}
		base = next.BaseTypeName
	}
	return false
}

// IsAncestor reports whether facet kind anc is extended, directly or
// transitively, by facet kind k.
func (r *Registry) IsAncestor(anc, k Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byKind[anc]
	if !ok {
		return false
	}
	d, ok := r.byKind[k]
	if !ok {
		return false
	}
	return r.isAncestor(a, d)
}

// Frozen reports whether Freeze has completed.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Lookup returns the descriptor registered for an ActivityStreams type name.
func (r *Registry) Lookup(typeName string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[typeName]
	return d, ok
}

// ByKind returns the descriptor of a facet kind.
func (r *Registry) ByKind(k Kind) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byKind[k]
	return d, ok
}

// Chain returns the ancestors of d, root first, excluding d itself.
func (r *Registry) Chain(d *Descriptor) []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var chain []*Descriptor
	for base := d.BaseTypeName; base != ""; {
		next, ok := r.byName[base]
		if !ok || len(chain) > len(r.order) {
			break
		}
		chain = append(chain, next)
		base = next.BaseTypeName
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Link returns the descriptor backing the Link shorthand, if any.
// Only meaningful after Freeze.
func (r *Registry) Link() (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.link, r.link != nil
}

// Implicit returns the descriptors created on every node, in registration order.
func (r *Registry) Implicit() []*Descriptor {
	return r.filter(func(d *Descriptor) bool { return d.Implicit })
}

// Anonymous returns the predicate-activated descriptors, in registration order.
func (r *Registry) Anonymous() []*Descriptor {
	return r.filter(func(d *Descriptor) bool { return d.Anonymous != nil })
}

// Descriptors returns all descriptors, named types first sorted by name,
// then unnamed ones in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	all := r.filter(func(*Descriptor) bool { return true })
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i].TypeName, all[j].TypeName
		if (a == "") != (b == "") {
			return a != ""
		}
		return a < b
	})
	return all
}

func (r *Registry) filter(keep func(*Descriptor) bool) []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Descriptor
	for _, d := range r.order {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// Fork returns an unfrozen registry holding the same descriptors, so that
// more facets can be added without touching r.
func (r *Registry) Fork() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fork := NewRegistry()
	for _, d := range r.order {
		if d.TypeName != "" {
			fork.byName[d.TypeName] = d
		}
		fork.byKind[d.kind] = d
		fork.order = append(fork.order, d)
	}
	return fork
}
