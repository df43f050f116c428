package generator

import "github.com/pkg/errors"

// Diagnostics surfaced while scanning or generating. They are wrapped
// with file positions before reaching the user, so match with errors.Is.
var (
	// ErrMalformedDirective reports an errctx:context directive whose
	// argument is not a single Go string literal.
	ErrMalformedDirective = errors.New("malformed errctx:context directive")

	// ErrBadTemplate reports a context template with an unknown
	// placeholder or unbalanced braces.
	ErrBadTemplate = errors.New("invalid context template")

	// ErrInvalidEnum reports an annotated type that is not a sealed
	// error interface.
	ErrInvalidEnum = errors.New("annotated type is not a sealed error interface")

	// ErrNameCollision reports a user declaration that already uses one
	// of the identifiers reserved for generated code.
	ErrNameCollision = errors.New("declaration collides with a generated identifier")

	// ErrTypeNotFound reports a requested type with no annotated enum.
	ErrTypeNotFound = errors.New("no annotated error enum found for type")
)
