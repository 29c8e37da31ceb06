package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across astypes.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Documents
	FieldPath     = "path"     // property path inside a document, e.g. $.object.actor
	FieldFile     = "file"     // input file name
	FieldDepth    = "depth"    // node nesting depth
	FieldContext  = "context"  // JSON-LD context value
	FieldProperty = "property" // JSON property name

	// Vocabulary
	FieldTypeName = "type_name"
	FieldBaseType = "base_type"
	FieldKind     = "kind" // Go facet kind
	FieldTypes    = "types"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Reader struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewReader() *Reader {
//	    return &Reader{
//	        logger: logger.ComponentLogger("conversion.reader"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	docLogger := logger.ChildLogger(baseLogger, logger.FieldFile, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
