package generator

import (
	"bytes"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Emit produces the generated file for one enum: the hidden context
// variant, the context-attach operation and the peel operation. The
// output is gofmt-formatted; nothing is emitted on error.
func Emit(enum *Enum) ([]byte, error) {
	var buf bytes.Buffer

	if err := fileTemplate.Execute(&buf, newEmitData(enum)); err != nil {
		return nil, errors.Wrapf(err, "rendering %s", enum.Name)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "formatting generated code for %s", enum.Name)
	}

	return src, nil
}

type emitData struct {
	Type      string
	Package   string
	Marker    string
	NeedsFmt  bool
	ErrorExpr string
	Names
}

func newEmitData(enum *Enum) emitData {
	expr, needsFmt := errorExpr(enum.Template)

	return emitData{
		Type:      enum.Name,
		Package:   enum.Package,
		Marker:    enum.Marker,
		NeedsFmt:  needsFmt,
		ErrorExpr: expr,
		Names:     enum.Names(),
	}
}

// errorExpr builds the expression the generated Error method returns.
// The degenerate templates compile to direct field or constant access;
// everything else goes through fmt.Sprintf.
func errorExpr(t Template) (expr string, needsFmt bool) {
	if t.MessageOnly() {
		return "e.msg", false
	}

	if len(t.Args()) == 0 {
		return strconv.Quote(t.Literal()), false
	}

	values := make([]string, 0, len(t.Args()))

	for _, arg := range t.Args() {
		if arg == ArgMessage {
			values = append(values, "e.msg")
		} else {
			values = append(values, "e.err")
		}
	}

	return "fmt.Sprintf(" + strconv.Quote(t.Format()) + ", " + strings.Join(values, ", ") + ")", true
}

var fileTemplate = template.Must(template.New("context").Parse(`// Code generated by errctx -type {{.Type}}; DO NOT EDIT.

package {{.Package}}

{{if .NeedsFmt}}import "fmt"

{{end}}// {{.Variant}} carries a context message attached to a {{.Type}}. It is
// built by {{.With}} and remains a {{.Type}}, so matching through
// errors.Is, errors.As and type switches keeps working.
type {{.Variant}} struct {
	msg string
	err error
}

var _ {{.Type}} = (*{{.Variant}})(nil)

func (e *{{.Variant}}) {{.Marker}}() {}

// Error renders the enum's context template.
func (e *{{.Variant}}) Error() string {
	return {{.ErrorExpr}}
}

// Context returns the attached context message.
func (e *{{.Variant}}) Context() string { return e.msg }

// Unwrap returns the wrapped error as the causal source.
func (e *{{.Variant}}) Unwrap() error { return e.err }

// {{.Converter}} converts a foreign error into a {{.Type}} before
// {{.With}} wraps it.
type {{.Converter}} interface {
	{{.ConverterMethod}}() {{.Type}}
}

// {{.With}} attaches a context message to the error of a fallible call.
// The msg callback runs only when err is non-nil, so building an
// expensive message costs nothing on the success path. A nil err
// returns nil.
func {{.With}}(err error, msg func() string) error {
	if err == nil {
		return nil
	}

	return &{{.Variant}}{msg: msg(), err: {{.Convert}}(err)}
}

// {{.Unwrap}} peels one layer of context off err. The context variant
// yields its message and the wrapped error; any other error comes back
// unchanged with ok false.
func {{.Unwrap}}(err error) (msg string, inner error, ok bool) {
	if c, isContext := err.(*{{.Variant}}); isContext {
		return c.msg, c.err, true
	}

	return "", err, false
}

func {{.Convert}}(err error) error {
	switch e := err.(type) {
	case {{.Type}}:
		return e
	case {{.Converter}}:
		return e.{{.ConverterMethod}}()
	}

	return err
}
`))
