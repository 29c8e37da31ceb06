package jsontree

import (
	"bytes"
	"encoding/json"

	"github.com/buger/jsonparser"

	"github.com/teranos/astypes/errors"
)

// Parse reads a JSON document into a tree, keeping object keys in document
// order at every level.
func Parse(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.Wrap(errors.ErrMalformedDocument, "empty input")
	}
	// jsonparser is lenient about trailing bytes and some invalid tokens.
	if !json.Valid(data) {
		return nil, errors.Wrap(errors.ErrMalformedDocument, "invalid JSON")
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMalformedDocument, err.Error())
	}
	return convert(value, dataType)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(text string) Value {
	v, err := Parse([]byte(text))
	if err != nil {
		panic(err)
	}
	return v
}

func convert(raw []byte, dataType jsonparser.ValueType) (Value, error) {
	switch dataType {
	case jsonparser.Null:
		return nil, nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrMalformedDocument, err.Error())
		}
		return b, nil

	case jsonparser.Number:
		return json.Number(string(raw)), nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrMalformedDocument, err.Error())
		}
		return s, nil

	case jsonparser.Array:
		items := make([]Value, 0)
		var itemErr error
		_, err := jsonparser.ArrayEach(raw, func(value []byte, dt jsonparser.ValueType, _ int, cbErr error) {
			if itemErr != nil {
				return
			}
			if cbErr != nil {
				itemErr = cbErr
				return
			}
			item, convErr := convert(value, dt)
			if convErr != nil {
				itemErr = convErr
				return
			}
			items = append(items, item)
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrMalformedDocument, err.Error())
		}
		if itemErr != nil {
			return nil, itemErr
		}
		return items, nil

	case jsonparser.Object:
		obj := NewObject()
		err := jsonparser.ObjectEach(raw, func(key []byte, value []byte, dt jsonparser.ValueType, _ int) error {
			item, convErr := convert(value, dt)
			if convErr != nil {
				return convErr
			}
			obj.Set(string(key), item)
			return nil
		})
		if err != nil {
			if errors.Is(err, errors.ErrMalformedDocument) {
				return nil, err
			}
			return nil, errors.Wrap(errors.ErrMalformedDocument, err.Error())
		}
		return obj, nil

	default:
		return nil, errors.Wrapf(errors.ErrMalformedDocument, "unexpected JSON token %q", string(raw))
	}
}
