// Package errors provides error handling for astypes.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
//
// It also defines the error kinds raised by the codec. Every failure returned
// by the reader, writer, node or registry wraps exactly one of them, so callers
// branch with errors.Is:
//
//	tm, err := serializer.Deserialize(data)
//	if errors.Is(err, errors.ErrMalformedDocument) {
//	    // skip and report the document
//	}
//
// The offending property path is attached as a detail and can be read back
// with PathOf.
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Error kinds raised by the codec.
var (
	// ErrMalformedDocument means a JSON value has a shape the reader cannot
	// accept (e.g. a number where a node is required). Fatal for the document.
	ErrMalformedDocument = New("malformed document")

	// ErrFacetAlreadyPresent means Extend was called for a facet kind the node
	// already owns. Always a programming error.
	ErrFacetAlreadyPresent = New("facet already present")

	// ErrFacetNotFound means a projection without creation found no facet of
	// the requested kind. Callers usually treat it as "optional facet absent".
	ErrFacetNotFound = New("facet not found")

	// ErrRegistryConflict means the facet registry is inconsistent: duplicate
	// type names or kinds, cyclic base chains, or overlapping field names.
	// Detected while the registry is built and fatal to startup.
	ErrRegistryConflict = New("facet registry conflict")

	// ErrUnsupportedLinkForm means a node that requires object form was forced
	// into link string compaction.
	ErrUnsupportedLinkForm = New("unsupported link form")
)

const pathDetailPrefix = "path: "

// IsMalformed checks if an error is or wraps ErrMalformedDocument
func IsMalformed(err error) bool {
	return err != nil && Is(err, ErrMalformedDocument)
}

// IsFacetNotFound checks if an error is or wraps ErrFacetNotFound
func IsFacetNotFound(err error) bool {
	return err != nil && Is(err, ErrFacetNotFound)
}

// IsRegistryConflict checks if an error is or wraps ErrRegistryConflict
func IsRegistryConflict(err error) bool {
	return err != nil && Is(err, ErrRegistryConflict)
}

// NewMalformedError creates a malformed-document error located at path.
func NewMalformedError(path string, format string, args ...interface{}) error {
	err := Wrapf(ErrMalformedDocument, "at %s: %s", path, Newf(format, args...).Error())
	return WithDetail(err, pathDetailPrefix+path)
}

// NewRegistryConflictError creates a registry-conflict error with a formatted message
func NewRegistryConflictError(format string, args ...interface{}) error {
	return Wrap(ErrRegistryConflict, Newf(format, args...).Error())
}

// PathOf returns the innermost property path recorded on err, or "" if none.
func PathOf(err error) string {
	details := GetAllDetails(err)
	for i := len(details) - 1; i >= 0; i-- {
		if strings.HasPrefix(details[i], pathDetailPrefix) {
			return strings.TrimPrefix(details[i], pathDetailPrefix)
		}
	}
	return ""
}
