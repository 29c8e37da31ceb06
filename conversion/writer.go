package conversion

import (
	"go.uber.org/zap"

	"github.com/teranos/astypes/errors"
	"github.com/teranos/astypes/jsontree"
	"github.com/teranos/astypes/ld"
	"github.com/teranos/astypes/logger"
	"github.com/teranos/astypes/typemap"
)

// Writer converts graph nodes into JSON trees. Like Reader it is stateless
// between calls.
type Writer struct {
	compact bool
	logger  *zap.SugaredLogger
}

// NewWriter creates a Writer. With compactSingle set, single-element lists
// are written as a bare value.
func NewWriter(compactSingle bool, log *zap.SugaredLogger) *Writer {
	if log == nil {
		log = logger.ComponentLogger("conversion.writer")
	}
	return &Writer{compact: compactSingle, logger: log}
}

// Write converts tm into a JSON string (Link shorthand) or object.
func (w *Writer) Write(tm *typemap.TypeMap) (jsontree.Value, error) {
	ws := &writeState{Writer: w, stack: ld.NewStack()}
	return ws.writeNode(tm, "$")
}

// writeState is the state of one Write call.
type writeState struct {
	*Writer
	stack *ld.Stack
}

func (ws *writeState) compactSingle() bool {
	return ws.compact
}

func (ws *writeState) writeNode(tm *typemap.TypeMap, path string) (jsontree.Value, error) {
	if ws.canCompact(tm) {
		return CompactLink(tm)
	}

	obj := jsontree.NewObject()

	// Nodes without a context of their own inherit the enclosing one; the
	// root always states its context.
	ctx := tm.OwnContext()
	switch {
	case ws.stack.Depth() == 0:
		ctx = tm.Context()
		if !ctx.IsEmpty() {
			obj.Set(keyContext, ctx.Value())
		}
	case ctx.IsEmpty():
		ctx = ws.stack.Peek()
	case !ctx.Equal(ws.stack.Peek()):
		obj.Set(keyContext, ctx.Value())
	}

	switch types := tm.Types(); len(types) {
	case 0:
	case 1:
		obj.Set(keyType, types[0])
	default:
		list := make([]jsontree.Value, len(types))
		for i, name := range types {
			list[i] = name
		}
		obj.Set(keyType, list)
	}

	slots, order, err := route(tm)
	if err != nil {
		return nil, err
	}

	ws.stack.Push(ctx)
	defer ws.stack.Pop()

	for _, name := range order {
		s := slots[name]
		if s.value.IsZero() {
			continue
		}
		v, err := formatValue(ws, s.value, childPath(path, name))
		if err != nil {
			return nil, err
		}
		obj.Set(name, v)
	}

	_ = tm.Unmapped().Each(func(key string, val jsontree.Value) error {
		if !obj.SetIfAbsent(key, jsontree.Clone(val)) {
			ws.logger.Debugw("Dropping unmapped property shadowed by a facet field",
				logger.FieldProperty, key,
				logger.FieldPath, path)
		}
		return nil
	})

	return obj, nil
}

// canCompact reports whether tm can be written as the Link shorthand: it
// owns the Link facet, nothing else needs object form, and no type name or
// context would be lost.
func (ws *writeState) canCompact(tm *typemap.TypeMap) bool {
	link, ok := tm.Registry().Link()
	if !ok || !tm.Has(link.Kind()) || tm.HasUnmapped() {
		return false
	}
	if types := tm.Types(); len(types) > 1 || (len(types) == 1 && types[0] != link.TypeName) {
		return false
	}
	if own := tm.OwnContext(); !own.IsEmpty() && !ws.stack.Peek().Includes(own) {
		return false
	}
	for _, e := range tm.AllEntities() {
		if e.Facet.RequiresObjectForm() {
			return false
		}
	}
	return true
}

// CompactLink returns the Link shorthand of tm. It fails with
// ErrUnsupportedLinkForm when tm has no Link facet or another facet holds
// data that a bare string cannot carry.
func CompactLink(tm *typemap.TypeMap) (string, error) {
	link, ok := tm.Registry().Link()
	if !ok {
		return "", errors.Wrap(errors.ErrUnsupportedLinkForm, "no Link type registered")
	}
	f, ok := tm.Lookup(link.Kind())
	if !ok {
		return "", errors.Wrapf(errors.ErrUnsupportedLinkForm, "node types %v do not include %s", tm.Types(), link)
	}
	for _, e := range tm.AllEntities() {
		if e.Facet.RequiresObjectForm() {
			return "", errors.Wrapf(errors.ErrUnsupportedLinkForm, "facet %s requires object form", e.Descriptor)
		}
	}
	return f.(typemap.LinkFacet).HRef(), nil
}
