package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const queueSrc = `package queue

//errctx:context "queue: {0}"
type QueueError interface {
	error
	isQueueError()
}

type ErrFull struct{}

func (ErrFull) Error() string { return "queue full" }
func (ErrFull) isQueueError() {}
`

func TestRunWritesGeneratedFile(t *testing.T) {
	assert := require.New(t)

	pkg := parsePkg(t, "store", storeSrc)

	results, err := Run(context.Background(), []*Package{pkg}, Options{Logger: zerolog.Nop()})
	assert.NoError(err)
	assert.Len(results, 1)
	assert.Equal(filepath.Join(pkg.Dir, "storeerror_context.go"), results[0].Path)

	src, err := os.ReadFile(results[0].Path)
	assert.NoError(err)
	assert.Contains(string(src), "type StoreErrorContext struct {")
}

func TestRunMultiplePackages(t *testing.T) {
	assert := require.New(t)

	pkgs := []*Package{
		parsePkg(t, "store", storeSrc),
		parsePkg(t, "queue", queueSrc),
	}

	results, err := Run(context.Background(), pkgs, Options{Logger: zerolog.Nop()})
	assert.NoError(err)
	assert.Len(results, 2)

	for _, result := range results {
		_, err := os.Stat(result.Path)
		assert.NoError(err)
	}
}

func TestRunDryRun(t *testing.T) {
	assert := require.New(t)

	pkg := parsePkg(t, "store", storeSrc)

	var buf bytes.Buffer

	results, err := Run(context.Background(), []*Package{pkg}, Options{
		DryRun: true,
		Stdout: &buf,
		Logger: zerolog.Nop(),
	})
	assert.NoError(err)
	assert.Len(results, 1)
	assert.Contains(buf.String(), "type StoreErrorContext struct {")

	// Nothing is written in dry-run mode.
	_, err = os.Stat(results[0].Path)
	assert.True(os.IsNotExist(err))
}

func TestRunTypeFilter(t *testing.T) {
	assert := require.New(t)

	pkg := parsePkg(t, "store", storeSrc+`
//errctx:context "index: {0}"
type IndexError interface {
	error
	isIndexError()
}
`)

	results, err := Run(context.Background(), []*Package{pkg}, Options{
		Types:  []string{"IndexError"},
		Logger: zerolog.Nop(),
	})
	assert.NoError(err)
	assert.Len(results, 1)
	assert.Equal("IndexError", results[0].Enum.Name)
}

func TestRunTypeNotFound(t *testing.T) {
	assert := require.New(t)

	pkg := parsePkg(t, "store", storeSrc)

	_, err := Run(context.Background(), []*Package{pkg}, Options{
		Types:  []string{"NoSuchError"},
		Logger: zerolog.Nop(),
	})
	assert.ErrorIs(err, ErrTypeNotFound)
}

func TestRunOutputOverride(t *testing.T) {
	assert := require.New(t)

	pkg := parsePkg(t, "store", storeSrc)
	dest := filepath.Join(t.TempDir(), "custom_name.go")

	results, err := Run(context.Background(), []*Package{pkg}, Options{
		Types:  []string{"StoreError"},
		Output: dest,
		Logger: zerolog.Nop(),
	})
	assert.NoError(err)
	assert.Len(results, 1)
	assert.Equal(dest, results[0].Path)

	_, err = os.Stat(dest)
	assert.NoError(err)
}

func TestRunOutputNeedsSingleFile(t *testing.T) {
	assert := require.New(t)

	pkgs := []*Package{
		parsePkg(t, "store", storeSrc),
		parsePkg(t, "queue", queueSrc),
	}

	_, err := Run(context.Background(), pkgs, Options{
		Output: filepath.Join(t.TempDir(), "out.go"),
		Logger: zerolog.Nop(),
	})
	assert.Error(err)
}

func TestRunScanFailureWritesNothing(t *testing.T) {
	assert := require.New(t)

	bad := parsePkg(t, "store", `package store

//errctx:context "{oops}"
type StoreError interface {
	error
	isStoreError()
}
`)
	good := parsePkg(t, "queue", queueSrc)

	_, err := Run(context.Background(), []*Package{bad, good}, Options{Logger: zerolog.Nop()})
	assert.ErrorIs(err, ErrBadTemplate)

	// The healthy package must not have been generated either.
	_, statErr := os.Stat(filepath.Join(good.Dir, "queueerror_context.go"))
	assert.True(os.IsNotExist(statErr))
}

func TestInspectSortsAcrossPackages(t *testing.T) {
	assert := require.New(t)

	enums, err := Inspect([]*Package{
		parsePkg(t, "store", storeSrc),
		parsePkg(t, "queue", queueSrc),
	})
	assert.NoError(err)
	assert.Len(enums, 2)
	assert.Equal("queue", enums[0].Package)
	assert.Equal("store", enums[1].Package)
}

func TestRunCanceledContext(t *testing.T) {
	assert := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []*Package{parsePkg(t, "store", storeSrc)}, Options{Logger: zerolog.Nop()})
	assert.ErrorIs(err, context.Canceled)
}
