// Package conversion reads and writes ActivityStreams JSON-LD documents as
// typemap graph nodes.
//
// Reading resolves each object's "type" names against a facet registry,
// routes every property to the facet that owns it, keeps the rest verbatim,
// and tracks "@context" per nesting level. Writing is the inverse: facets are
// merged back into one flat object, base type names stay hidden, contexts
// are only repeated where they change, and reference-only links collapse to
// a bare string.
package conversion

import (
	"go.uber.org/zap"

	"github.com/teranos/astypes/am"
	"github.com/teranos/astypes/errors"
	"github.com/teranos/astypes/jsontree"
	"github.com/teranos/astypes/logger"
	"github.com/teranos/astypes/typemap"
)

// Options configures a Serializer.
type Options struct {
	// Registry used for type resolution. Defaults to typemap.Default().
	Registry *typemap.Registry

	// Logger for codec diagnostics. Defaults to a named child of logger.Logger.
	Logger *zap.SugaredLogger

	// CompactSingleValues writes one-element lists as a bare value.
	CompactSingleValues bool

	// Indent used by SerializeIndent. Empty means two spaces.
	Indent string
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		CompactSingleValues: true,
		Indent:              "  ",
	}
}

// OptionsFromConfig derives serializer options from the am configuration.
func OptionsFromConfig(cfg *am.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.CompactSingleValues = cfg.Codec.CompactSingleValues
	if cfg.Codec.Indent != "" {
		opts.Indent = cfg.Codec.Indent
	}
	return opts
}

// Serializer converts between JSON-LD bytes and graph nodes.
type Serializer struct {
	reader *Reader
	writer *Writer
	indent string
	logger *zap.SugaredLogger
}

// NewSerializer creates a Serializer from opts.
func NewSerializer(opts Options) *Serializer {
	log := opts.Logger
	if log == nil {
		log = logger.ComponentLogger("conversion")
	}
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	return &Serializer{
		reader: NewReader(opts.Registry, log.Named("reader")),
		writer: NewWriter(opts.CompactSingleValues, log.Named("writer")),
		indent: indent,
		logger: log,
	}
}

// Deserialize parses data and reads its top-level value into a node.
func (s *Serializer) Deserialize(data []byte) (*typemap.TypeMap, error) {
	v, err := jsontree.Parse(data)
	if err != nil {
		return nil, err
	}
	tm, err := s.reader.Read(v)
	if err != nil {
		s.logger.Debugw("Failed to read document",
			logger.FieldError, err,
			logger.FieldPath, errors.PathOf(err),
			logger.FieldSize, len(data))
		return nil, err
	}
	return tm, nil
}

// DeserializeValue reads an already parsed tree.
func (s *Serializer) DeserializeValue(v jsontree.Value) (*typemap.TypeMap, error) {
	return s.reader.Read(v)
}

// SerializeToValue writes tm as a JSON tree.
func (s *Serializer) SerializeToValue(tm *typemap.TypeMap) (jsontree.Value, error) {
	if tm == nil {
		return nil, errors.AssertionFailedf("serialize: nil node")
	}
	return s.writer.Write(tm)
}

// Serialize writes tm as compact JSON text.
func (s *Serializer) Serialize(tm *typemap.TypeMap) ([]byte, error) {
	v, err := s.SerializeToValue(tm)
	if err != nil {
		return nil, err
	}
	return jsontree.Marshal(v)
}

// SerializeIndent writes tm as indented JSON text.
func (s *Serializer) SerializeIndent(tm *typemap.TypeMap) ([]byte, error) {
	v, err := s.SerializeToValue(tm)
	if err != nil {
		return nil, err
	}
	return jsontree.MarshalIndent(v, "", s.indent)
}

// Normalize reads data and writes it back, the way the codec would emit it.
func (s *Serializer) Normalize(data []byte, indent bool) ([]byte, error) {
	tm, err := s.Deserialize(data)
	if err != nil {
		return nil, err
	}
	if indent {
		return s.SerializeIndent(tm)
	}
	return s.Serialize(tm)
}
