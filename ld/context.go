// Package ld models the JSON-LD "@context" of ActivityStreams documents.
//
// The codec treats a context as opaque data: an ordered list of entries, each
// either an IRI string or an embedded context definition object. It never
// expands terms. Contexts matter only for deciding where "@context" has to be
// written so that every node keeps the value it was read with.
package ld

import (
	"github.com/teranos/astypes/errors"
	"github.com/teranos/astypes/jsontree"
)

// ActivityStreamsIRI is the normative ActivityStreams 2.0 context.
const ActivityStreamsIRI = "https://www.w3.org/ns/activitystreams"

// ActivityStreams is the default vocabulary context.
var ActivityStreams = IRI(ActivityStreamsIRI)

// Entry is one element of a context: an IRI or an embedded definition.
type Entry struct {
	IRI    string
	Object *jsontree.Object
}

// IsObject reports whether the entry is an embedded definition.
func (e Entry) IsObject() bool {
	return e.Object != nil
}

// Equal compares two entries by value.
func (e Entry) Equal(other Entry) bool {
	if e.IsObject() != other.IsObject() {
		return false
	}
	if e.IsObject() {
		return jsontree.Equal(e.Object, other.Object)
	}
	return e.IRI == other.IRI
}

func (e Entry) value() jsontree.Value {
	if e.IsObject() {
		return e.Object.Clone()
	}
	return e.IRI
}

// Context is an ordered list of context entries. Contexts parsed from a
// document keep their entries as written; With and Union never add an entry
// that is already present. The zero value is an empty context.
type Context struct {
	entries []Entry
}

// IRI returns a context made of the given IRIs.
func IRI(iris ...string) Context {
	var c Context
	for _, iri := range iris {
		c = c.With(Entry{IRI: iri})
	}
	return c
}

// ParseContext converts a "@context" value into a Context.
// Strings, embedded objects and arrays of both are accepted; null yields an
// empty context. Entries are kept in document order, repeats included.
func ParseContext(v jsontree.Value) (Context, error) {
	var c Context
	switch t := v.(type) {
	case nil:
		return c, nil
	case string:
		c.entries = []Entry{{IRI: t}}
		return c, nil
	case *jsontree.Object:
		c.entries = []Entry{{Object: t.Clone()}}
		return c, nil
	case []jsontree.Value:
		c.entries = make([]Entry, 0, len(t))
		for i, item := range t {
			switch entry := item.(type) {
			case string:
				c.entries = append(c.entries, Entry{IRI: entry})
			case *jsontree.Object:
				c.entries = append(c.entries, Entry{Object: entry.Clone()})
			default:
				return Context{}, errors.Newf("@context[%d] must be a string or object, got %s", i, jsontree.Kind(item))
			}
		}
		return c, nil
	default:
		return Context{}, errors.Newf("@context must be a string, object or array, got %s", jsontree.Kind(v))
	}
}

// Entries returns a copy of the entries in order.
func (c Context) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c Context) Len() int {
	return len(c.entries)
}

// IsEmpty reports whether the context has no entries.
func (c Context) IsEmpty() bool {
	return len(c.entries) == 0
}

// Contains reports whether e is one of the entries.
func (c Context) Contains(e Entry) bool {
	for _, existing := range c.entries {
		if existing.Equal(e) {
			return true
		}
	}
	return false
}

// Includes reports whether every entry of other is present in c.
func (c Context) Includes(other Context) bool {
	for _, e := range other.entries {
		if !c.Contains(e) {
			return false
		}
	}
	return true
}

// With returns c with e appended, unless already present.
func (c Context) With(e Entry) Context {
	if c.Contains(e) {
		return c
	}
	entries := make([]Entry, len(c.entries), len(c.entries)+1)
	copy(entries, c.entries)
	return Context{entries: append(entries, e)}
}

// Union returns the entries of c followed by those of other, each entry
// kept once.
func (c Context) Union(other Context) Context {
	var out Context
	for _, e := range c.entries {
		out = out.With(e)
	}
	for _, e := range other.entries {
		out = out.With(e)
	}
	return out
}

// Equal compares two contexts entry by entry, in order.
func (c Context) Equal(other Context) bool {
	if len(c.entries) != len(other.entries) {
		return false
	}
	for i := range c.entries {
		if !c.entries[i].Equal(other.entries[i]) {
			return false
		}
	}
	return true
}

// Value returns the compact JSON form: nil when empty, a bare string or
// object for a single entry, an array otherwise.
func (c Context) Value() jsontree.Value {
	switch len(c.entries) {
	case 0:
		return nil
	case 1:
		return c.entries[0].value()
	default:
		out := make([]jsontree.Value, len(c.entries))
		for i, e := range c.entries {
			out[i] = e.value()
		}
		return out
	}
}
