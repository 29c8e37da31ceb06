package conversion

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/teranos/astypes/errors"
	"github.com/teranos/astypes/jsontree"
	"github.com/teranos/astypes/typemap"
)

// Facets are plain structs whose exported fields carry `json` tags, e.g.
//
//	type NoteEntity struct {
//	    Content    string            `json:"content,omitempty"`
//	    ContentMap map[string]string `json:"contentMap,omitempty"`
//	    InReplyTo  *typemap.TypeMap  `json:"inReplyTo,omitempty"`
//	    Published  *time.Time        `json:"published,omitempty"`
//	}
//
// Reading scans JSON values into those fields; nested nodes are handed back
// to the reader so they get their own context frame. Writing skips zero
// values.

var (
	typeMapPtrType = reflect.TypeOf((*typemap.TypeMap)(nil))
	timeType       = reflect.TypeOf(time.Time{})
)

type field struct {
	name  string
	index int
}

var fieldCache sync.Map // reflect.Type -> []field

// fieldsOf returns the JSON fields of a facet struct type.
func fieldsOf(rt reflect.Type) []field {
	if cached, ok := fieldCache.Load(rt); ok {
		return cached.([]field)
	}
	var fields []field
	for i := 0; i < rt.NumField(); i++ {
		if name, ok := typemap.FieldName(rt.Field(i)); ok {
			fields = append(fields, field{name: name, index: i})
		}
	}
	actual, _ := fieldCache.LoadOrStore(rt, fields)
	return actual.([]field)
}

// nodeReader and nodeWriter recurse into nested nodes on behalf of the
// field codec.
type nodeReader interface {
	readNode(v jsontree.Value, path string) (*typemap.TypeMap, error)
}

type nodeWriter interface {
	writeNode(tm *typemap.TypeMap, path string) (jsontree.Value, error)
	compactSingle() bool
}

// scanValue stores JSON value val into fv. JSON null leaves fv untouched.
func scanValue(c nodeReader, fv reflect.Value, val jsontree.Value, path string) error {
	if val == nil {
		return nil
	}

	switch fv.Type() {
	case typeMapPtrType:
		tm, err := c.readNode(val, path)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(tm))
		return nil
	case timeType:
		s, ok := val.(string)
		if !ok {
			return mismatch(path, "date-time string", val)
		}
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return errors.NewMalformedError(path, "invalid date-time %q", s)
		}
		fv.Set(reflect.ValueOf(ts))
		return nil
	}

	switch fv.Kind() {
	case reflect.Interface:
		fv.Set(reflect.ValueOf(jsontree.Clone(val)))

	case reflect.Pointer:
		elem := reflect.New(fv.Type().Elem())
		if err := scanValue(c, elem.Elem(), val, path); err != nil {
			return err
		}
		fv.Set(elem)

	case reflect.String:
		s, ok := val.(string)
		if !ok {
			return mismatch(path, "string", val)
		}
		fv.SetString(s)

	case reflect.Bool:
		b, ok := val.(bool)
		if !ok {
			return mismatch(path, "boolean", val)
		}
		fv.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := val.(json.Number)
		if !ok {
			return mismatch(path, "integer", val)
		}
		i, err := strconv.ParseInt(n.String(), 10, fv.Type().Bits())
		if err != nil {
			return errors.NewMalformedError(path, "invalid integer %s", n)
		}
		fv.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := val.(json.Number)
		if !ok {
			return mismatch(path, "non-negative integer", val)
		}
		u, err := strconv.ParseUint(n.String(), 10, fv.Type().Bits())
		if err != nil {
			return errors.NewMalformedError(path, "invalid non-negative integer %s", n)
		}
		fv.SetUint(u)

	case reflect.Float32, reflect.Float64:
		n, ok := val.(json.Number)
		if !ok {
			return mismatch(path, "number", val)
		}
		f, err := strconv.ParseFloat(n.String(), fv.Type().Bits())
		if err != nil {
			return errors.NewMalformedError(path, "invalid number %s", n)
		}
		fv.SetFloat(f)

	case reflect.Slice:
		// ActivityStreams allows a single value wherever an array is allowed
		items, isArray := val.([]jsontree.Value)
		if !isArray {
			items = []jsontree.Value{val}
		}
		out := reflect.MakeSlice(fv.Type(), 0, len(items))
		for i, item := range items {
			if item == nil {
				continue
			}
			itemPath := path
			if isArray {
				itemPath = fmt.Sprintf("%s[%d]", path, i)
			}
			elem := reflect.New(fv.Type().Elem()).Elem()
			if err := scanValue(c, elem, item, itemPath); err != nil {
				return err
			}
			out = reflect.Append(out, elem)
		}
		fv.Set(out)

	case reflect.Map:
		if fv.Type().Key().Kind() != reflect.String {
			return errors.AssertionFailedf("unsupported map key type %s at %s", fv.Type().Key(), path)
		}
		obj, ok := val.(*jsontree.Object)
		if !ok {
			return mismatch(path, "object", val)
		}
		out := reflect.MakeMapWithSize(fv.Type(), obj.Len())
		err := obj.Each(func(key string, item jsontree.Value) error {
			if item == nil {
				return nil
			}
			elem := reflect.New(fv.Type().Elem()).Elem()
			if err := scanValue(c, elem, item, path+"."+key); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(key).Convert(fv.Type().Key()), elem)
			return nil
		})
		if err != nil {
			return err
		}
		fv.Set(out)

	default:
		return errors.AssertionFailedf("unsupported facet field type %s at %s", fv.Type(), path)
	}
	return nil
}

// formatValue converts fv to a JSON value. Callers skip zero fields first.
func formatValue(c nodeWriter, fv reflect.Value, path string) (jsontree.Value, error) {
	switch fv.Type() {
	case typeMapPtrType:
		if fv.IsNil() {
			return nil, nil
		}
		return c.writeNode(fv.Interface().(*typemap.TypeMap), path)
	case timeType:
		// The instant and offset survive a round trip; trailing zero
		// fractional digits do not.
		return fv.Interface().(time.Time).Format(time.RFC3339Nano), nil
	}

	switch fv.Kind() {
	case reflect.Interface:
		if fv.IsNil() {
			return nil, nil
		}
		return jsontree.Clone(fv.Interface()), nil

	case reflect.Pointer:
		if fv.IsNil() {
			return nil, nil
		}
		return formatValue(c, fv.Elem(), path)

	case reflect.String:
		return fv.String(), nil

	case reflect.Bool:
		return fv.Bool(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return json.Number(strconv.FormatInt(fv.Int(), 10)), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return json.Number(strconv.FormatUint(fv.Uint(), 10)), nil

	case reflect.Float32, reflect.Float64:
		return json.Number(strconv.FormatFloat(fv.Float(), 'g', -1, fv.Type().Bits())), nil

	case reflect.Slice:
		items := make([]jsontree.Value, 0, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			item, err := formatValue(c, fv.Index(i), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if len(items) == 1 && c.compactSingle() {
			return items[0], nil
		}
		return items, nil

	case reflect.Map:
		keys := make([]string, 0, fv.Len())
		for _, k := range fv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		obj := jsontree.NewObject()
		for _, k := range keys {
			item, err := formatValue(c, fv.MapIndex(reflect.ValueOf(k).Convert(fv.Type().Key())), path+"."+k)
			if err != nil {
				return nil, err
			}
			obj.Set(k, item)
		}
		return obj, nil

	default:
		return nil, errors.AssertionFailedf("unsupported facet field type %s at %s", fv.Type(), path)
	}
}

func mismatch(path, want string, got jsontree.Value) error {
	return errors.NewMalformedError(path, "expected %s, got %s", want, jsontree.Kind(got))
}

// facetValue returns the addressable struct behind a facet pointer.
func facetValue(f typemap.Facet) reflect.Value {
	return reflect.ValueOf(f).Elem()
}
