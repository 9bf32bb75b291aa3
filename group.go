package xmlbind

import (
	"fmt"
	"iter"
	"slices"

	binderrors "github.com/jacoelho/xmlbind/errors"
	"github.com/jacoelho/xmlbind/pkg/xmltree"
)

// Group is a repeated field: one item per element child carrying the
// group's name, kept in document order.
//
// Groups only grow. Binding again appends the new matches after the
// existing items, inside a composite as well as standalone; call Reset
// first to replace the contents.
type Group[T Field] struct {
	name    string
	newItem func() T
	items   []T
}

// NewGroup returns a group that builds each item with newItem. The group
// takes its name from the composite it is inserted into.
func NewGroup[T Field](newItem func() T) *Group[T] {
	if newItem == nil {
		panic("xmlbind: nil group item constructor")
	}
	return &Group[T]{newItem: newItem}
}

// NamedGroup returns a group that matches children called name, for use
// outside a composite.
func NamedGroup[T Field](name string, newItem func() T) *Group[T] {
	g := NewGroup(newItem)
	g.name = name
	return g
}

// Bind appends one bound item for every element child of n named like the
// group. Other children are ignored. Item failures do not stop the walk;
// they are returned together as one *errors.Chain with CodeBind.
func (g *Group[T]) Bind(n *xmltree.Node) error {
	return g.bind(defaultState(), n)
}

func (g *Group[T]) bind(st *state, n *xmltree.Node) error {
	if n == nil {
		return nil
	}
	if err := st.enter(n); err != nil {
		return err
	}
	defer st.leave()

	var failures binderrors.Chain
	for _, child := range n.Children {
		if child.Kind != xmltree.ElementNode || child.Name != g.name {
			continue
		}
		if err := g.collect(st, child); err != nil {
			if failures.IsZero() {
				failures = binderrors.Newf(binderrors.CodeBind, "bind <%s>*", g.name).At(st.current())
			}
			failures.Attach(binderrors.Wrap(binderrors.CodeBind, err))
		}
	}
	return failures.Err()
}

// collect binds n into a fresh item and appends it, even when the bind fails.
func (g *Group[T]) collect(st *state, n *xmltree.Node) error {
	item := g.newItem()
	item.setName(g.name)
	err := item.bind(st, n)
	g.items = append(g.items, item)
	return err
}

// reset is a no-op: groups are not cleared by rebinding their parent.
func (g *Group[T]) reset() {}

func (g *Group[T]) setName(name string) {
	g.name = name
}

// Reset drops every item.
func (g *Group[T]) Reset() {
	g.items = nil
}

// Present reports whether the group holds at least one item.
func (g *Group[T]) Present() bool {
	return len(g.items) > 0
}

// Name returns the tag name the group matches.
func (g *Group[T]) Name() string {
	return g.name
}

// Len returns the number of items.
func (g *Group[T]) Len() int {
	return len(g.items)
}

// Empty reports whether the group holds no items.
func (g *Group[T]) Empty() bool {
	return len(g.items) == 0
}

// At returns the i-th item in document order. It panics when i is out of range.
func (g *Group[T]) At(i int) T {
	if i < 0 || i >= len(g.items) {
		panic(fmt.Sprintf("xmlbind: group <%s> index %d out of range [0:%d]", g.name, i, len(g.items)))
	}
	return g.items[i]
}

// Items returns the items in document order. The slice is shared with the
// group and is only valid until the next bind or Reset.
func (g *Group[T]) Items() []T {
	return g.items
}

// All iterates over the items in document order.
func (g *Group[T]) All() iter.Seq2[int, T] {
	return slices.All(g.items)
}
