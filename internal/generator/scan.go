package generator

import (
	"go/ast"
	"go/token"
	"regexp"

	"github.com/pkg/errors"
)

// Package is a parsed package ready for scanning. Files previously
// emitted by the generator are recognized by their header and ignored,
// so regeneration over existing output stays legal.
type Package struct {
	Name  string
	Dir   string
	Fset  *token.FileSet
	Files []*ast.File
}

var generatedRx = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// Scan finds every annotated error enum in the package, together with
// its variant set. It fails on the first malformed directive, invalid
// enum shape or reserved-name collision.
func Scan(pkg *Package) ([]*Enum, error) {
	var enums []*Enum

	for _, file := range pkg.Files {
		if isGeneratedFile(file) {
			continue
		}

		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec := spec.(*ast.TypeSpec)

				enum, err := scanType(pkg, genDecl, typeSpec)
				if err != nil {
					return nil, err
				}

				if enum != nil {
					enums = append(enums, enum)
				}
			}
		}
	}

	for _, enum := range enums {
		if err := collectMembers(pkg, enum); err != nil {
			return nil, err
		}
	}

	return enums, nil
}

func scanType(pkg *Package, decl *ast.GenDecl, spec *ast.TypeSpec) (*Enum, error) {
	doc := spec.Doc
	if doc == nil && len(decl.Specs) == 1 {
		doc = decl.Doc
	}

	pos := pkg.Fset.Position(spec.Pos())

	raw, found, err := parseDirective(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: type %s", pos, spec.Name.Name)
	}

	if !found {
		return nil, nil
	}

	marker, err := sealedMarker(spec)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: type %s", pos, spec.Name.Name)
	}

	template, err := ParseTemplate(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: type %s", pos, spec.Name.Name)
	}

	return &Enum{
		Name:     spec.Name.Name,
		Package:  pkg.Name,
		Marker:   marker,
		Template: template,
		Pos:      pos,
	}, nil
}

// sealedMarker validates the enum shape and returns the marker method:
// the annotated type must be an interface embedding error plus exactly
// one unexported method with no parameters and no results.
func sealedMarker(spec *ast.TypeSpec) (string, error) {
	iface, ok := spec.Type.(*ast.InterfaceType)
	if !ok {
		return "", ErrInvalidEnum
	}

	var (
		marker     string
		embedError bool
	)

	for _, field := range iface.Methods.List {
		if len(field.Names) == 0 {
			ident, ok := field.Type.(*ast.Ident)
			if !ok || ident.Name != "error" {
				return "", errors.Wrap(ErrInvalidEnum, "only the error interface may be embedded")
			}

			embedError = true

			continue
		}

		name := field.Names[0].Name
		if ast.IsExported(name) {
			return "", errors.Wrapf(ErrInvalidEnum, "marker method %s must be unexported", name)
		}

		funcType, ok := field.Type.(*ast.FuncType)
		if !ok || funcType.Params.NumFields() != 0 || funcType.Results.NumFields() != 0 {
			return "", errors.Wrapf(ErrInvalidEnum, "marker method %s must take and return nothing", name)
		}

		if marker != "" {
			return "", errors.Wrapf(ErrInvalidEnum, "more than one marker method (%s, %s)", marker, name)
		}

		marker = name
	}

	if !embedError {
		return "", errors.Wrap(ErrInvalidEnum, "the interface must embed error")
	}

	if marker == "" {
		return "", errors.Wrap(ErrInvalidEnum, "an unexported marker method is required to seal the enum")
	}

	return marker, nil
}

// collectMembers walks the package once per enum, gathering variant
// types (receivers of the marker method) and rejecting user
// declarations that use reserved generated names.
func collectMembers(pkg *Package, enum *Enum) error {
	reserved := make(map[string]bool, len(enum.Reserved()))
	for _, name := range enum.Reserved() {
		reserved[name] = true
	}

	for _, file := range pkg.Files {
		if isGeneratedFile(file) {
			continue
		}

		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv == nil {
					if reserved[d.Name.Name] {
						return collision(pkg, enum, d.Name)
					}

					continue
				}

				recv := receiverName(d.Recv)

				if d.Name.Name == enum.Marker && recv != "" && recv != enum.Name {
					enum.Variants = append(enum.Variants, Variant{
						Name: recv,
						Pos:  pkg.Fset.Position(d.Pos()),
					})
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					for _, ident := range specNames(spec) {
						if reserved[ident.Name] {
							return collision(pkg, enum, ident)
						}
					}
				}
			}
		}
	}

	return nil
}

func collision(pkg *Package, enum *Enum, ident *ast.Ident) error {
	pos := pkg.Fset.Position(ident.Pos())
	return errors.Wrapf(ErrNameCollision, "%s: %s is reserved for the %s enum", pos, ident.Name, enum.Name)
}

func specNames(spec ast.Spec) []*ast.Ident {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		return []*ast.Ident{s.Name}
	case *ast.ValueSpec:
		return s.Names
	}

	return nil
}

func receiverName(recv *ast.FieldList) string {
	if recv.NumFields() != 1 {
		return ""
	}

	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}

	if index, ok := expr.(*ast.IndexExpr); ok {
		expr = index.X
	}

	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}

	return ""
}

func isGeneratedFile(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.End() >= file.Package {
			break
		}

		for _, comment := range group.List {
			if generatedRx.MatchString(comment.Text) {
				return true
			}
		}
	}

	return false
}
