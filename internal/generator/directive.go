package generator

import (
	"go/ast"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DirectivePrefix marks an error enum for augmentation. It follows the
// go:generate convention: a //-comment with no space after the slashes,
// attached to the type declaration.
//
//	//errctx:context "while doing the thing: {0}"
//	type MyError interface { ... }
const DirectivePrefix = "errctx:context"

// DefaultTemplate renders the attached context message verbatim.
const DefaultTemplate = "{0}"

// parseDirective extracts the raw context template from a doc comment.
// The directive word alone selects DefaultTemplate; otherwise the
// argument must be exactly one Go string literal. found is false when
// the comment carries no directive at all.
func parseDirective(doc *ast.CommentGroup) (raw string, found bool, err error) {
	if doc == nil {
		return "", false, nil
	}

	for _, comment := range doc.List {
		text, ok := directiveText(comment.Text)
		if !ok {
			continue
		}

		if found {
			return "", true, errors.Wrap(ErrMalformedDirective, "directive given more than once")
		}

		found = true

		raw, err = parseDirectiveArg(text)
		if err != nil {
			return "", true, err
		}
	}

	return raw, found, nil
}

// directiveText returns the directive's argument text when the comment
// line is an errctx:context directive.
func directiveText(comment string) (string, bool) {
	text, ok := strings.CutPrefix(comment, "//"+DirectivePrefix)
	if !ok {
		return "", false
	}

	// Reject prefixes of longer words, e.g. //errctx:contextual.
	if text != "" && text[0] != ' ' && text[0] != '\t' {
		return "", false
	}

	return strings.TrimSpace(text), true
}

func parseDirectiveArg(arg string) (string, error) {
	if arg == "" {
		return DefaultTemplate, nil
	}

	raw, err := strconv.Unquote(arg)
	if err != nil {
		return "", errors.Wrapf(ErrMalformedDirective, "argument %q is not a single string literal", arg)
	}

	return raw, nil
}
