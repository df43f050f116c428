package generator

import (
	"context"
	"go/token"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

// Load resolves package patterns (paths, ./... wildcards) into parsed
// packages ready for Scan. Patterns that match no Go files are skipped.
func Load(ctx context.Context, patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Fset:    token.NewFileSet(),
	}

	loaded, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "loading packages")
	}

	pkgs := make([]*Package, 0, len(loaded))

	for _, pkg := range loaded {
		for _, pkgErr := range pkg.Errors {
			// Type errors are tolerated: the scan is purely syntactic
			// and the enum's package may not compile before its
			// generated file exists.
			if pkgErr.Kind == packages.TypeError {
				continue
			}

			return nil, errors.Wrapf(errors.New(pkgErr.Msg), "loading %s", pkg.PkgPath)
		}

		if len(pkg.GoFiles) == 0 || len(pkg.Syntax) == 0 {
			continue
		}

		pkgs = append(pkgs, &Package{
			Name:  pkg.Name,
			Dir:   filepath.Dir(pkg.GoFiles[0]),
			Fset:  cfg.Fset,
			Files: pkg.Syntax,
		})
	}

	return pkgs, nil
}
