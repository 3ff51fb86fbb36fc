package output

import (
	"errors"
	"fmt"
	"io"

	"gallery-compiler/internal/web"
)

// ErrHTMLNeedsWeb is returned when HTML output is requested for anything
// other than web instructions.
var ErrHTMLNeedsWeb = errors.New("html output requires the web target")

// HTMLFormatter writes web instructions as HTML markup.
type HTMLFormatter struct {
	writer io.Writer
}

// NewHTMLFormatter creates a new HTML formatter.
func NewHTMLFormatter(w io.Writer) *HTMLFormatter {
	return &HTMLFormatter{writer: w}
}

// Format writes v, which must be web.Instructions.
func (f *HTMLFormatter) Format(v any) error {
	ins, ok := v.(web.Instructions)
	if !ok {
		return fmt.Errorf("%w (got %T)", ErrHTMLNeedsWeb, v)
	}

	return web.WriteHTML(f.writer, ins)
}
