package conversion

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/teranos/astypes/errors"
	"github.com/teranos/astypes/jsontree"
	"github.com/teranos/astypes/ld"
	"github.com/teranos/astypes/logger"
	"github.com/teranos/astypes/typemap"
)

// Reader converts JSON trees into graph nodes. A Reader holds no per-document
// state and may be used from several goroutines at once.
type Reader struct {
	reg    *typemap.Registry
	logger *zap.SugaredLogger
}

// NewReader creates a Reader resolving types against reg (Default() when nil).
func NewReader(reg *typemap.Registry, log *zap.SugaredLogger) *Reader {
	if reg == nil {
		reg = typemap.Default()
	}
	if log == nil {
		log = logger.ComponentLogger("conversion.reader")
	}
	return &Reader{reg: reg, logger: log}
}

// Read converts v, which must be a JSON string or object, into a node.
func (r *Reader) Read(v jsontree.Value) (*typemap.TypeMap, error) {
	rs := &readState{Reader: r, stack: ld.NewStack()}
	return rs.readNode(v, "$")
}

// readState is the state of one Read call.
type readState struct {
	*Reader
	stack *ld.Stack
}

func (rs *readState) newNode() *typemap.TypeMap {
	if rs.stack.Depth() == 0 {
		return typemap.New(rs.reg)
	}
	return typemap.NewWithParent(rs.reg, rs.stack.Peek())
}

func (rs *readState) readNode(v jsontree.Value, path string) (*typemap.TypeMap, error) {
	switch t := v.(type) {
	case string:
		return rs.readLink(t, path)
	case *jsontree.Object:
		return rs.readObject(t, path)
	default:
		return nil, errors.NewMalformedError(path, "expected string or object, got %s", jsontree.Kind(v))
	}
}

// readLink expands the string shorthand into a node owning the Link facet.
func (rs *readState) readLink(href, path string) (*typemap.TypeMap, error) {
	d, ok := rs.reg.Link()
	if !ok {
		return nil, errors.NewMalformedError(path, "string value %q needs a registered Link type", href)
	}
	tm := rs.newNode()
	f, err := tm.ProjectTo(d, true)
	if err != nil {
		return nil, err
	}
	f.(typemap.LinkFacet).SetHRef(href)
	return tm, nil
}

func (rs *readState) readObject(obj *jsontree.Object, path string) (*typemap.TypeMap, error) {
	tm := rs.newNode()

	names, err := typeNames(obj, path)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		d, known := rs.reg.Lookup(name)
		if !known {
			rs.logger.Debugw("Keeping unknown type name",
				logger.FieldTypeName, name,
				logger.FieldPath, path)
			tm.AddTypeName(name)
			continue
		}
		if _, err := tm.ProjectTo(d, true); err != nil {
			return nil, errors.Wrapf(err, "at %s", path)
		}
	}

	if err := rs.extendAnonymous(tm, obj, path); err != nil {
		return nil, err
	}

	if raw, ok := obj.Get(keyContext); ok {
		ctx, err := ld.ParseContext(raw)
		if err != nil {
			return nil, errors.NewMalformedError(path+"."+keyContext, "%s", err.Error())
		}
		tm.SetContext(ctx)
	}

	slots, _, err := route(tm)
	if err != nil {
		return nil, err
	}

	rs.stack.Push(tm.Context())
	defer rs.stack.Pop()

	err = obj.Each(func(key string, val jsontree.Value) error {
		if key == keyType || key == keyContext {
			return nil
		}
		s, claimed := slots[key]
		if !claimed {
			tm.SetUnmapped(key, jsontree.Clone(val))
			return nil
		}
		return scanValue(rs, s.value, val, childPath(path, key))
	})
	if err != nil {
		return nil, err
	}

	rs.logger.Debugw("Read node",
		logger.FieldPath, path,
		logger.FieldTypes, tm.Types(),
		logger.FieldDepth, rs.stack.Depth())
	return tm, nil
}

// extendAnonymous adds every anonymous facet whose predicate accepts the
// properties that no facet of tm claims yet. Properties claimed by one
// activation are hidden from the predicates that follow it.
func (rs *readState) extendAnonymous(tm *typemap.TypeMap, obj *jsontree.Object, path string) error {
	anonymous := rs.reg.Anonymous()
	if len(anonymous) == 0 {
		return nil
	}

	slots, _, err := route(tm)
	if err != nil {
		return err
	}
	unclaimed := jsontree.NewObject()
	_ = obj.Each(func(key string, val jsontree.Value) error {
		if _, claimed := slots[key]; !claimed && key != keyType && key != keyContext {
			unclaimed.Set(key, val)
		}
		return nil
	})

	for _, d := range anonymous {
		if tm.Has(d.Kind()) || !d.Anonymous(unclaimed) {
			continue
		}
		if _, err := tm.ExtendWith(d); err != nil {
			return errors.Wrapf(err, "at %s", path)
		}
		for _, name := range d.Fields() {
			unclaimed.Delete(name)
		}
		rs.logger.Debugw("Activated anonymous facet",
			logger.FieldKind, d.Kind().String(),
			logger.FieldPath, path)
	}
	return nil
}

// typeNames normalizes the "type" property into a list of names.
func typeNames(obj *jsontree.Object, path string) ([]string, error) {
	raw, ok := obj.Get(keyType)
	if !ok || raw == nil {
		return nil, nil
	}
	switch t := raw.(type) {
	case string:
		return []string{t}, nil
	case []jsontree.Value:
		names := make([]string, 0, len(t))
		for i, item := range t {
			name, ok := item.(string)
			if !ok {
				return nil, errors.NewMalformedError(fmt.Sprintf("%s.type[%d]", path, i),
					"type name must be a string, got %s", jsontree.Kind(item))
			}
			names = append(names, name)
		}
		return names, nil
	default:
		return nil, errors.NewMalformedError(path+"."+keyType,
			"type must be a string or array of strings, got %s", jsontree.Kind(raw))
	}
}

func childPath(path, key string) string {
	return path + "." + key
}
