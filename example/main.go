// Demo for the errctx generator: myerror_context.go is the committed
// output of running go generate on this package.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/errctx-dev/errctx"
)

func main() {
	err := WithMyErrorContext(checkValue(1), func() string {
		return "Crashing with value 1"
	})

	fmt.Println("rendered:", err)
	fmt.Println("source:  ", errors.Unwrap(err))

	msg, inner, ok := UnwrapMyErrorContext(err)
	fmt.Printf("peeled:   msg=%q inner=%v ok=%v\n", msg, inner, ok)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	logger.Error().Object("error", errctx.Object(err)).Msg("check failed")

	// The success path never builds the message.
	if err := WithMyErrorContext(checkValue(42), func() string {
		panic("never evaluated")
	}); err == nil {
		fmt.Println("value 42 is fine")
	}
}
