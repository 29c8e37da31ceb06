package jsontree

import (
	"bytes"
	"encoding/json"

	"github.com/teranos/astypes/errors"
)

// Marshal writes v as compact JSON, objects in insertion order.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	compact, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, errors.Wrap(err, "failed to indent JSON")
	}
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v Value) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case *Object:
		if t == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('{')
		first := true
		err := t.Each(func(key string, value Value) error {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := encodeScalar(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			return encode(buf, value)
		})
		if err != nil {
			return err
		}
		buf.WriteByte('}')
	case []Value:
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return encodeScalar(buf, t)
	}
	return nil
}

// encodeScalar defers to encoding/json for strings, numbers and booleans so
// escaping and number validation match the standard library.
func encodeScalar(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Wrapf(err, "failed to encode %T", v)
	}
	// Encoder.Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
