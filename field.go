package xmlbind

import (
	"github.com/jacoelho/xmlbind/pkg/xmltree"
)

// Field is a schema element: a leaf, a composite record or a repeated group.
// The set of implementations is closed; records take part by embedding
// Composite.
type Field interface {
	// Bind populates the field from n. A nil n leaves the field absent.
	Bind(n *xmltree.Node) error
	// Present reports whether the most recent bind matched a node.
	Present() bool

	bind(st *state, n *xmltree.Node) error
	reset()
	setName(name string)
}

// collector is implemented by fields that take one item per matching child
// instead of being rebound by each one.
type collector interface {
	collect(st *state, n *xmltree.Node) error
}
