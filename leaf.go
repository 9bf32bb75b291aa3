package xmlbind

import (
	"github.com/cockroachdb/apd"

	binderrors "github.com/jacoelho/xmlbind/errors"
	"github.com/jacoelho/xmlbind/pkg/xmltree"
)

// Leaf is a scalar field converted from the text of one node.
type Leaf[T any] struct {
	conv    Converter[T]
	name    string
	node    *xmltree.Node
	value   T
	present bool
	err     error
}

// NewLeaf returns a leaf that converts with conv.
func NewLeaf[T any](conv Converter[T]) *Leaf[T] {
	if conv == nil {
		panic("xmlbind: nil converter")
	}
	return &Leaf[T]{conv: conv}
}

// String returns a leaf holding the node text unchanged.
func String() *Leaf[string] { return NewLeaf[string](StringConverter{}) }

// Int returns a strict int leaf.
func Int() *Leaf[int] { return Integer[int](Strict) }

// Short returns a strict int16 leaf.
func Short() *Leaf[int16] { return Integer[int16](Strict) }

// Long returns a strict int64 leaf.
func Long() *Leaf[int64] { return Integer[int64](Strict) }

// Float returns a strict float32 leaf.
func Float() *Leaf[float32] { return Number[float32](Strict) }

// Double returns a strict float64 leaf.
func Double() *Leaf[float64] { return Number[float64](Strict) }

// Bool returns a strict bool leaf.
func Bool() *Leaf[bool] { return NewLeaf[bool](BoolConverter{}) }

// Decimal returns an arbitrary-precision decimal leaf.
func Decimal() *Leaf[*apd.Decimal] { return NewLeaf[*apd.Decimal](DecimalConverter{}) }

// Integer returns an integer leaf of type T using mode.
func Integer[T Signed](mode Mode) *Leaf[T] {
	return NewLeaf[T](IntConverter[T]{Mode: mode})
}

// Number returns a floating-point leaf of type T using mode.
func Number[T Real](mode Mode) *Leaf[T] {
	return NewLeaf[T](FloatConverter[T]{Mode: mode})
}

// Bind converts the text of n. A nil n clears the leaf.
func (l *Leaf[T]) Bind(n *xmltree.Node) error {
	return l.bind(defaultState(), n)
}

func (l *Leaf[T]) bind(st *state, n *xmltree.Node) error {
	l.reset()
	if n == nil {
		return nil
	}
	st.visited()
	l.node = n
	l.present = true
	v, err := l.conv.Convert(n.Value)
	if err != nil {
		c := binderrors.Newf(binderrors.CodeMalformedValue, "malformed value %q for <%s>: %v", n.Value, n.Name, err).
			At(st.path(n))
		st.malformed(c, n.Value)
		l.err = c.Err()
		return l.err
	}
	l.value = v
	st.bound()
	return nil
}

func (l *Leaf[T]) reset() {
	var zero T
	l.node = nil
	l.value = zero
	l.present = false
	l.err = nil
}

func (l *Leaf[T]) setName(name string) {
	l.name = name
}

// Value returns the converted value, or the zero value when the leaf is
// absent or its text was rejected.
func (l *Leaf[T]) Value() T {
	return l.value
}

// Get returns the converted value and whether it is usable: the node was
// present and its text converted.
func (l *Leaf[T]) Get() (T, bool) {
	return l.value, l.present && l.err == nil
}

// Present reports whether the most recent bind matched a node, regardless of
// whether its text converted.
func (l *Leaf[T]) Present() bool {
	return l.present
}

// Err returns the conversion failure of the most recent bind, if any.
func (l *Leaf[T]) Err() error {
	return l.err
}

// Name returns the tag name of the matched node, or the registered name
// when nothing matched.
func (l *Leaf[T]) Name() string {
	if l.node != nil {
		return l.node.Name
	}
	return l.name
}

// RawText returns the unconverted text of the matched node.
func (l *Leaf[T]) RawText() string {
	if l.node == nil {
		return ""
	}
	return l.node.Value
}

// Node returns the matched node, or nil.
func (l *Leaf[T]) Node() *xmltree.Node {
	return l.node
}
