// Package errors provides structured error handling for the scenery engine.
package errors

import "fmt"

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates an unknown shape kind, capability, or relation
	// was requested. Configuration errors fail fast and are never retried.
	KindConfig
	// KindParse indicates malformed configuration input.
	KindParse
	// KindGeometry indicates degenerate geometry was reported where a
	// defined fallback could not apply.
	KindGeometry
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParse:
		return "parse"
	case KindGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the scenery engine.
type Error struct {
	// Op is the operation that failed (e.g., "shape.ParseKind").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with an operation name and kind.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Configf builds a configuration error from a format string.
func Configf(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindConfig, Err: fmt.Errorf(format, args...)}
}

// Parsef builds a parse error from a format string.
func Parsef(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindParse, Err: fmt.Errorf(format, args...)}
}

// Geometryf builds a geometry error from a format string.
func Geometryf(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindGeometry, Err: fmt.Errorf(format, args...)}
}
