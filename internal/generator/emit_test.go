package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func emitFor(t *testing.T, src string) string {
	t.Helper()

	enums, err := Scan(parsePkg(t, "store", src))
	require.NoError(t, err)
	require.Len(t, enums, 1)

	out, err := Emit(enums[0])
	require.NoError(t, err)

	return string(out)
}

func TestEmitCustomTemplate(t *testing.T) {
	assert := require.New(t)

	out := emitFor(t, storeSrc)

	assert.Contains(out, "// Code generated by errctx -type StoreError; DO NOT EDIT.")
	assert.Contains(out, "package store")
	assert.Contains(out, "type StoreErrorContext struct {")
	assert.Contains(out, "var _ StoreError = (*StoreErrorContext)(nil)")
	assert.Contains(out, "func (e *StoreErrorContext) isStoreError() {}")
	assert.Contains(out, `return fmt.Sprintf("while storing: %s", e.msg)`)
	assert.Contains(out, "func WithStoreErrorContext(err error, msg func() string) error {")
	assert.Contains(out, "func UnwrapStoreErrorContext(err error) (msg string, inner error, ok bool) {")
	assert.Contains(out, "type StoreErrorConverter interface {")
	assert.Contains(out, "ToStoreError() StoreError")
	assert.Contains(out, "func toStoreError(err error) error {")
}

func TestEmitDefaultTemplate(t *testing.T) {
	assert := require.New(t)

	out := emitFor(t, `package store

//errctx:context
type StoreError interface {
	error
	isStoreError()
}
`)

	assert.Contains(out, "return e.msg")
	assert.NotContains(out, `"fmt"`)
}

func TestEmitConstantTemplate(t *testing.T) {
	assert := require.New(t)

	out := emitFor(t, `package store

//errctx:context "operation failed"
type StoreError interface {
	error
	isStoreError()
}
`)

	assert.Contains(out, `return "operation failed"`)
	assert.NotContains(out, `"fmt"`)
}

func TestEmitWrappedPlaceholder(t *testing.T) {
	assert := require.New(t)

	out := emitFor(t, `package store

//errctx:context "{0}: {1}"
type StoreError interface {
	error
	isStoreError()
}
`)

	assert.Contains(out, `return fmt.Sprintf("%s: %s", e.msg, e.err)`)
}

func TestEmitUnexportedEnum(t *testing.T) {
	assert := require.New(t)

	out := emitFor(t, `package store

//errctx:context
type opError interface {
	error
	isOpError()
}
`)

	assert.Contains(out, "type opErrorContext struct {")
	assert.Contains(out, "func withOpErrorContext(err error, msg func() string) error {")
	assert.Contains(out, "func unwrapOpErrorContext(err error) (msg string, inner error, ok bool) {")
}

func TestEmitOutputIsScannableAsGenerated(t *testing.T) {
	assert := require.New(t)

	out := emitFor(t, storeSrc)

	// Feeding the output back in with the original source must neither
	// trip the collision check nor change the enum's variant set.
	enums, err := Scan(parsePkg(t, "store", storeSrc, out))
	assert.NoError(err)
	assert.Len(enums, 1)
	assert.Equal([]string{"ErrClosed", "ErrCorrupt"}, enums[0].VariantNames())
}
