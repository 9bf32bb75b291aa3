package xmltree

import "strings"

// Kind classifies nodes in the tree.
type Kind uint8

const (
	// ElementNode identifies an element.
	ElementNode Kind = 1
	// AttributeNode identifies an attribute; attributes live in Node.Attrs.
	AttributeNode Kind = 2
	// TextNode identifies a run of character data inside an element.
	TextNode Kind = 3
)

// TextName is the name given to text nodes.
const TextName = "#text"

// String returns a stable label for the kind.
func (k Kind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case AttributeNode:
		return "attribute"
	case TextNode:
		return "text"
	default:
		return "unknown"
	}
}

// Node is a labeled tree node.
type Node struct {
	Kind     Kind
	Name     string
	Value    string
	Attrs    []*Node
	Children []*Node
}

// NewElement returns an element node with the given children.
// Attribute nodes among children are moved to Attrs and text nodes
// contribute to Value.
func NewElement(name string, children ...*Node) *Node {
	n := &Node{Kind: ElementNode, Name: name}
	for _, c := range children {
		if c == nil {
			continue
		}
		switch c.Kind {
		case AttributeNode:
			n.Attrs = append(n.Attrs, c)
		case TextNode:
			n.Value += c.Value
			n.Children = append(n.Children, c)
		default:
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// NewText returns a text node.
func NewText(value string) *Node {
	return &Node{Kind: TextNode, Name: TextName, Value: value}
}

// NewAttr returns an attribute node.
func NewAttr(name, value string) *Node {
	return &Node{Kind: AttributeNode, Name: name, Value: value}
}

// Leaf returns an element holding only text.
func Leaf(name, text string) *Node {
	return NewElement(name, NewText(text))
}

// Elements returns the element children in document order.
func (n *Node) Elements() []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first element child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == ElementNode && c.Name == name {
			return c
		}
	}
	return nil
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// TextContent returns the concatenated text content of the subtree.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind != ElementNode {
		return n.Value
	}
	var sb strings.Builder
	n.collectText(&sb)
	return sb.String()
}

func (n *Node) collectText(sb *strings.Builder) {
	for _, c := range n.Children {
		switch c.Kind {
		case TextNode:
			sb.WriteString(c.Value)
		case ElementNode:
			c.collectText(sb)
		}
	}
}
