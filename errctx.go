// Package errctx is the runtime companion of the errctx generator.
//
// The generator augments a sealed error enum (an interface embedding
// error plus an unexported marker method) with a hidden context-carrying
// variant, a peel operation and a lazy context-attach operation. Every
// generated variant satisfies the Wrapper interface below; this package
// provides the helpers that work across all generated enums.
package errctx

import (
	"errors"

	"github.com/rs/zerolog"
)

// Wrapper is implemented by every context variant emitted by the
// generator: it renders through the enum's context template, exposes the
// attached message, and reveals the wrapped error as its causal source.
type Wrapper interface {
	error
	Context() string
	Unwrap() error
}

// Message returns the context message closest to the surface of err's
// unwrap chain. The second return is false when no context is attached
// anywhere in the chain.
func Message(err error) (string, bool) {
	var w Wrapper
	if errors.As(err, &w) {
		return w.Context(), true
	}

	return "", false
}

// Messages collects every context message in err's unwrap chain,
// outermost first. It returns nil when the chain carries no context.
func Messages(err error) []string {
	var msgs []string

	for err != nil {
		if w, ok := err.(Wrapper); ok {
			msgs = append(msgs, w.Context())
		}

		err = errors.Unwrap(err)
	}

	return msgs
}

// Peel splits one context layer off err. For a context variant it
// returns the attached message, the wrapped error and true; any other
// error comes back unchanged with ok false, so callers can match
// uniformly whether or not context was ever attached.
func Peel(err error) (string, error, bool) {
	if w, ok := err.(Wrapper); ok {
		return w.Context(), w.Unwrap(), true
	}

	return "", err, false
}

// Root returns the error at the bottom of err's unwrap chain.
func Root(err error) error {
	if err == nil {
		return nil
	}

	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err
		}

		err = inner
	}
}

// Object adapts err for structured logging. The returned marshaler
// writes the rendered error, the context chain and the root cause.
//
//	logger.Error().Object("error", errctx.Object(err)).Msg("request failed")
func Object(err error) zerolog.LogObjectMarshaler {
	return logObject{err: err}
}

type logObject struct {
	err error
}

func (o logObject) MarshalZerologObject(event *zerolog.Event) {
	if o.err == nil {
		return
	}

	event.Str("error", o.err.Error())

	if msgs := Messages(o.err); len(msgs) > 0 {
		event.Strs("context", msgs)
	}

	if root := Root(o.err); root != o.err {
		event.Str("cause", root.Error())
	}
}
