package generator

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Arg identifies a placeholder of the context template. Placeholders
// index the fields of the generated variant, message first.
type Arg int

const (
	// ArgMessage is the {0} placeholder: the attached context message.
	ArgMessage Arg = iota

	// ArgWrapped is the {1} placeholder: the wrapped error's rendered
	// text.
	ArgWrapped
)

// Template is a compiled context template. The grammar is small: {0}
// and {1} placeholders, {{ and }} for literal braces, everything else
// verbatim.
type Template struct {
	raw     string
	literal string
	format  string
	args    []Arg
}

// ParseTemplate compiles raw into a Template or reports ErrBadTemplate.
func ParseTemplate(raw string) (Template, error) {
	var (
		literal strings.Builder
		format  strings.Builder
		args    []Arg
	)

	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case '{':
			if i+1 < len(raw) && raw[i+1] == '{' {
				literal.WriteByte('{')
				format.WriteByte('{')
				i++

				continue
			}

			end := strings.IndexByte(raw[i:], '}')
			if end < 0 {
				return Template{}, errors.Wrapf(ErrBadTemplate, "unterminated placeholder in %q", raw)
			}

			switch raw[i+1 : i+end] {
			case "0":
				args = append(args, ArgMessage)
			case "1":
				args = append(args, ArgWrapped)
			default:
				return Template{}, errors.Wrapf(ErrBadTemplate, "unknown placeholder %q in %q", raw[i:i+end+1], raw)
			}

			format.WriteString("%s")

			i += end
		case '}':
			if i+1 < len(raw) && raw[i+1] == '}' {
				literal.WriteByte('}')
				format.WriteByte('}')
				i++

				continue
			}

			return Template{}, errors.Wrapf(ErrBadTemplate, "unmatched %q in %q", "}", raw)
		case '%':
			literal.WriteByte('%')
			format.WriteString("%%")
		default:
			literal.WriteByte(c)
			format.WriteByte(c)
		}
	}

	return Template{
		raw:     raw,
		literal: literal.String(),
		format:  format.String(),
		args:    args,
	}, nil
}

// Raw returns the template text as written in the directive.
func (t Template) Raw() string { return t.raw }

// Literal returns the template text with brace escapes resolved. It is
// the whole rendering when the template has no placeholders.
func (t Template) Literal() string { return t.literal }

// Format returns the fmt format string the template compiles to.
func (t Template) Format() string { return t.format }

// Args returns the placeholder order of the compiled format string.
func (t Template) Args() []Arg { return t.args }

// MessageOnly reports whether the template is exactly the {0}
// placeholder, in which case rendering is the bare message.
func (t Template) MessageOnly() bool {
	return t.format == "%s" && len(t.args) == 1 && t.args[0] == ArgMessage
}

// Render applies the template. It is the reference implementation of
// what the generated Error method inlines.
func (t Template) Render(msg string, wrapped error) string {
	if len(t.args) == 0 {
		return t.literal
	}

	values := make([]any, 0, len(t.args))

	for _, arg := range t.args {
		if arg == ArgMessage {
			values = append(values, msg)
		} else {
			values = append(values, wrapped)
		}
	}

	return fmt.Sprintf(t.format, values...)
}
