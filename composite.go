package xmlbind

import (
	"maps"
	"slices"

	binderrors "github.com/jacoelho/xmlbind/errors"
	"github.com/jacoelho/xmlbind/pkg/xmltree"
)

// Composite is a record: a registry from tag name to field. Record types
// embed it and register their fields with Insert and InsertAttr in their
// constructor. The registry must not change once binding starts.
type Composite struct {
	name    string
	elems   map[string]entry
	attrs   map[string]entry
	node    *xmltree.Node
	present bool
}

type entry struct {
	field Field
	bind  func(*state, *xmltree.Node) error
}

func newEntry(f Field) entry {
	if c, ok := f.(collector); ok {
		return entry{field: f, bind: c.collect}
	}
	return entry{field: f, bind: f.bind}
}

// Insert registers f under the element name. Registering a name twice
// replaces the earlier field.
func (c *Composite) Insert(name string, f Field) {
	if f == nil {
		panic("xmlbind: nil field for <" + name + ">")
	}
	if c.elems == nil {
		c.elems = make(map[string]entry)
	}
	f.setName(name)
	c.elems[name] = newEntry(f)
}

// InsertAttr registers f under the attribute name. Registering a name twice
// replaces the earlier field.
func (c *Composite) InsertAttr(name string, f Field) {
	if f == nil {
		panic("xmlbind: nil field for @" + name)
	}
	if c.attrs == nil {
		c.attrs = make(map[string]entry)
	}
	f.setName(name)
	c.attrs[name] = newEntry(f)
}

// Names returns the registered element names in sorted order.
func (c *Composite) Names() []string {
	return slices.Sorted(maps.Keys(c.elems))
}

// AttrNames returns the registered attribute names in sorted order.
func (c *Composite) AttrNames() []string {
	return slices.Sorted(maps.Keys(c.attrs))
}

// Bind populates the registered fields from the attributes and element
// children of n. Leaves and nested records not matched by this bind are
// cleared; repeated groups keep their items and grow.
//
// Every child is visited even when some fail; the failures are returned
// together as one *errors.Chain with CodeBind.
func (c *Composite) Bind(n *xmltree.Node) error {
	return c.bind(defaultState(), n)
}

func (c *Composite) bind(st *state, n *xmltree.Node) error {
	c.reset()
	if n == nil {
		return nil
	}
	st.visited()
	if err := st.enter(n); err != nil {
		return err
	}
	defer st.leave()

	c.node = n
	c.present = true

	var failures binderrors.Chain
	for _, a := range n.Attrs {
		c.dispatch(st, c.attrs, a, &failures)
	}
	for _, child := range n.Children {
		if child.Kind != xmltree.ElementNode {
			continue
		}
		c.dispatch(st, c.elems, child, &failures)
	}
	return failures.Err()
}

func (c *Composite) dispatch(st *state, registry map[string]entry, n *xmltree.Node, failures *binderrors.Chain) {
	e, ok := registry[n.Name]
	if !ok {
		st.unmapped(n)
		return
	}
	if err := e.bind(st, n); err != nil {
		if failures.IsZero() {
			*failures = binderrors.Newf(binderrors.CodeBind, "bind <%s>", c.node.Name).At(st.current())
		}
		failures.Attach(binderrors.Wrap(binderrors.CodeBind, err))
	}
}

func (c *Composite) reset() {
	c.node = nil
	c.present = false
	for _, e := range c.elems {
		e.field.reset()
	}
	for _, e := range c.attrs {
		e.field.reset()
	}
}

func (c *Composite) setName(name string) {
	c.name = name
}

// Present reports whether the most recent bind matched a node.
func (c *Composite) Present() bool {
	return c.present
}

// Name returns the tag name of the matched node, or the registered name
// when nothing matched.
func (c *Composite) Name() string {
	if c.node != nil {
		return c.node.Name
	}
	return c.name
}

// Text returns the direct text of the matched node.
func (c *Composite) Text() string {
	if c.node == nil {
		return ""
	}
	return c.node.Value
}

// Node returns the matched node, or nil.
func (c *Composite) Node() *xmltree.Node {
	return c.node
}
