package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options controls one generator run.
type Options struct {
	// Types restricts generation to the named enums. Empty means every
	// annotated enum found.
	Types []string

	// Output overrides the generated file path. Only valid when the run
	// produces exactly one file.
	Output string

	// DryRun prints generated files to Stdout instead of writing them.
	DryRun bool

	// Stdout receives dry-run output. Defaults to os.Stdout.
	Stdout io.Writer

	// Logger reports per-file progress at debug level.
	Logger zerolog.Logger
}

// Result describes one generated file.
type Result struct {
	Path string
	Enum *Enum
}

// Run scans the packages and generates a context file per annotated
// enum. Packages are independent of each other, so they are processed
// concurrently. No file is written if any package fails.
func Run(ctx context.Context, pkgs []*Package, opts Options) ([]Result, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	wanted := make(map[string]bool, len(opts.Types))
	for _, name := range opts.Types {
		wanted[name] = true
	}

	type output struct {
		result Result
		src    []byte
	}

	var (
		mu      sync.Mutex
		outputs []output
		found   = make(map[string]bool, len(wanted))
	)

	g, ctx := errgroup.WithContext(ctx)

	for _, pkg := range pkgs {
		pkg := pkg

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			enums, err := Scan(pkg)
			if err != nil {
				return err
			}

			for _, enum := range enums {
				if len(wanted) > 0 && !wanted[enum.Name] {
					continue
				}

				src, err := Emit(enum)
				if err != nil {
					return err
				}

				mu.Lock()
				found[enum.Name] = true
				outputs = append(outputs, output{
					result: Result{Path: filepath.Join(pkg.Dir, enum.FileName()), Enum: enum},
					src:    src,
				})
				mu.Unlock()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for name := range wanted {
		if !found[name] {
			return nil, errors.Wrap(ErrTypeNotFound, name)
		}
	}

	sort.Slice(outputs, func(i, j int) bool { return outputs[i].result.Path < outputs[j].result.Path })

	if opts.Output != "" {
		if len(outputs) != 1 {
			return nil, errors.Errorf("-output needs exactly one generated file, got %d", len(outputs))
		}

		outputs[0].result.Path = opts.Output
	}

	results := make([]Result, 0, len(outputs))

	for _, out := range outputs {
		if opts.DryRun {
			fmt.Fprintf(opts.Stdout, "// -- %s --\n", out.result.Path)

			if _, err := opts.Stdout.Write(out.src); err != nil {
				return nil, errors.Wrap(err, "writing dry-run output")
			}
		} else {
			if err := os.WriteFile(out.result.Path, out.src, 0o644); err != nil {
				return nil, errors.Wrapf(err, "writing %s", out.result.Path)
			}
		}

		opts.Logger.Debug().
			Str("type", out.result.Enum.Name).
			Str("package", out.result.Enum.Package).
			Str("path", out.result.Path).
			Msg("generated context file")

		results = append(results, out.result)
	}

	return results, nil
}

// Inspect scans the packages without generating anything. It backs the
// CLI's list command.
func Inspect(pkgs []*Package) ([]*Enum, error) {
	var enums []*Enum

	for _, pkg := range pkgs {
		found, err := Scan(pkg)
		if err != nil {
			return nil, err
		}

		enums = append(enums, found...)
	}

	sort.Slice(enums, func(i, j int) bool {
		if enums[i].Package != enums[j].Package {
			return enums[i].Package < enums[j].Package
		}

		return enums[i].Name < enums[j].Name
	})

	return enums, nil
}
