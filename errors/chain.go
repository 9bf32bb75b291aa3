package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Chain is an append-only error record: a code, a message and the ordered
// causes attached to it. Causes are never removed or reordered.
//
//nolint:errname // public API name mirrors the error chain concept.
type Chain struct {
	Code   Code
	Text   string
	Path   string
	Causes []Chain

	err error
}

// New builds a leaf record.
func New(code Code, text string) Chain {
	return Chain{Code: code, Text: text}
}

// Newf formats a message and builds a leaf record.
func Newf(code Code, format string, args ...any) Chain {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap builds a leaf record that keeps err reachable through errors.Is and errors.As.
// When err already is a Chain it is returned unchanged.
func Wrap(code Code, err error) Chain {
	if err == nil {
		return Chain{}
	}
	if c, ok := AsChain(err); ok {
		return *c
	}
	return Chain{Code: code, Text: err.Error(), err: err}
}

// At returns a copy of c with its instance path set.
func (c Chain) At(path string) Chain {
	c.Path = path
	return c
}

// IsZero reports whether c holds no error.
func (c Chain) IsZero() bool {
	return c.Code == CodeNone
}

// Attach appends other as the newest cause of c.
func (c *Chain) Attach(other Chain) {
	c.Causes = append(c.Causes, other)
}

// AttachOrCreate sets target to a new (code, text) record when it is empty,
// otherwise it attaches the new record as a cause of target.
func AttachOrCreate(target *Chain, code Code, text string) {
	if target.IsZero() {
		*target = New(code, text)
		return
	}
	target.Attach(New(code, text))
}

// Err returns c as an error, or nil when c is empty.
func (c Chain) Err() error {
	if c.IsZero() {
		return nil
	}
	return &c
}

// Error returns a compact one-line summary: the record itself, the first
// underlying leaf cause and how many other leaf causes follow it.
func (c Chain) Error() string {
	var b strings.Builder
	c.writeHead(&b)
	if len(c.Causes) > 0 {
		leaves := c.Leaves()
		b.WriteString(": ")
		leaves[0].writeHead(&b)
		if len(leaves) > 1 {
			b.WriteString(fmt.Sprintf(" (and %d more)", len(leaves)-1))
		}
	}
	return b.String()
}

// Unwrap exposes the causes, and the wrapped error if any, to errors.Is and errors.As.
func (c Chain) Unwrap() []error {
	errs := make([]error, 0, len(c.Causes)+1)
	if c.err != nil {
		errs = append(errs, c.err)
	}
	for i := range c.Causes {
		errs = append(errs, &c.Causes[i])
	}
	return errs
}

// String renders the whole chain, one record per line, causes indented
// under their parent in attachment order.
func (c Chain) String() string {
	var b strings.Builder
	_ = c.Render(&b)
	return b.String()
}

// Render writes the whole chain to w depth first.
func (c Chain) Render(w io.Writer) error {
	return c.render(w, 0)
}

func (c Chain) render(w io.Writer, depth int) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	c.writeHead(&b)
	b.WriteByte('\n')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	for _, cause := range c.Causes {
		if err := cause.render(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (c Chain) writeHead(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("[%s] %s", c.Code, c.Text))
	if c.Path != "" {
		b.WriteString(" at ")
		b.WriteString(c.Path)
	}
}

// Leaves returns the records without causes in depth-first attachment order.
func (c Chain) Leaves() []Chain {
	if len(c.Causes) == 0 {
		return []Chain{c}
	}
	var out []Chain
	for _, cause := range c.Causes {
		out = append(out, cause.Leaves()...)
	}
	return out
}

// HasCode reports whether err is, or is caused by, a record with the given code.
func HasCode(err error, code Code) bool {
	c, ok := AsChain(err)
	if !ok {
		return false
	}
	return c.hasCode(code)
}

func (c Chain) hasCode(code Code) bool {
	if c.Code == code {
		return true
	}
	for _, cause := range c.Causes {
		if cause.hasCode(code) {
			return true
		}
	}
	return false
}

// AsChain extracts the outermost error chain from err.
func AsChain(err error) (*Chain, bool) {
	if err == nil {
		return nil, false
	}
	var ptr *Chain
	if errors.As(err, &ptr) && ptr != nil {
		return ptr, true
	}
	var val Chain
	if errors.As(err, &val) {
		return &val, true
	}
	return nil, false
}
