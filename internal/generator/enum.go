package generator

import (
	"go/ast"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Enum is one annotated sealed error interface, as found in source.
type Enum struct {
	// Name is the identifier of the interface type.
	Name string

	// Package is the name of the package declaring the enum.
	Package string

	// Marker is the unexported method that seals the variant set.
	Marker string

	// Template is the compiled context template from the directive.
	Template Template

	// Variants are the concrete types implementing Marker, in source
	// order. The generated context variant is not among them.
	Variants []Variant

	// Pos locates the type declaration, for diagnostics.
	Pos token.Position
}

// Variant is one pre-existing member of the enum.
type Variant struct {
	Name string
	Pos  token.Position
}

// Names is the set of identifiers the generator emits for an enum.
// Casing follows the enum's own visibility: an unexported enum gets
// unexported operations.
type Names struct {
	// Variant is the hidden context-carrying type, <Enum>Context.
	Variant string

	// With is the context-attach operation.
	With string

	// Unwrap is the peel operation.
	Unwrap string

	// Converter is the duck-typed conversion interface.
	Converter string

	// ConverterMethod is the single method of Converter.
	ConverterMethod string

	// Convert is the unexported conversion helper.
	Convert string
}

// Exported reports whether the enum type itself is exported.
func (e *Enum) Exported() bool {
	return ast.IsExported(e.Name)
}

// Names returns the generated identifiers for the enum.
func (e *Enum) Names() Names {
	capitalized := capitalize(e.Name)

	with := "With" + capitalized + "Context"
	unwrap := "Unwrap" + capitalized + "Context"

	if !e.Exported() {
		with = "with" + capitalized + "Context"
		unwrap = "unwrap" + capitalized + "Context"
	}

	return Names{
		Variant:         e.Name + "Context",
		With:            with,
		Unwrap:          unwrap,
		Converter:       e.Name + "Converter",
		ConverterMethod: "To" + capitalized,
		Convert:         "to" + capitalized,
	}
}

// Reserved lists every identifier generation will declare. A user
// declaration with any of these names is a collision.
func (e *Enum) Reserved() []string {
	n := e.Names()
	return []string{n.Variant, n.With, n.Unwrap, n.Converter, n.Convert}
}

// FileName is the generated file's name, next to the enum declaration.
func (e *Enum) FileName() string {
	return strings.ToLower(e.Name) + "_context.go"
}

// VariantNames returns the pre-existing variant identifiers in order.
func (e *Enum) VariantNames() []string {
	names := make([]string, 0, len(e.Variants))
	for _, v := range e.Variants {
		names = append(names, v.Name)
	}

	return names
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
