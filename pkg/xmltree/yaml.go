package xmltree

import (
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	binderrors "github.com/jacoelho/xmlbind/errors"
)

const (
	yamlAttrPrefix = "@"
	yamlTextKey    = "#text"
)

// ParseYAML builds a tree from a YAML document whose top level is a mapping
// with a single key naming the root element.
func ParseYAML(r io.Reader) (*Node, error) {
	if r == nil {
		return nil, binderrors.New(binderrors.CodeParse, "nil reader").Err()
	}
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, binderrors.Wrap(binderrors.CodeNoRoot, io.ErrUnexpectedEOF).Err()
		}
		return nil, binderrors.Wrap(binderrors.CodeParse, pkgerrors.Wrap(err, "parse yaml")).Err()
	}
	return FromYAML(&doc)
}

// FromYAML converts a decoded YAML document into a tree.
//
// Mapping keys become elements, sequences become repeated elements sharing
// the key of the sequence, and scalars become element text. Keys starting
// with "@" become attributes and the key "#text" sets the element text.
func FromYAML(doc *yaml.Node) (*Node, error) {
	n := resolveAlias(doc)
	if n == nil {
		return nil, binderrors.New(binderrors.CodeNoRoot, "empty yaml document").Err()
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, binderrors.New(binderrors.CodeNoRoot, "empty yaml document").Err()
		}
		n = resolveAlias(n.Content[0])
	}
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, binderrors.Newf(binderrors.CodeNoRoot,
			"yaml document must be a mapping with a single root key (line %d)", n.Line).Err()
	}
	key := n.Content[0]
	if key.Kind != yaml.ScalarNode {
		return nil, binderrors.Newf(binderrors.CodeParse, "yaml root key must be a scalar (line %d)", key.Line).Err()
	}
	nodes, err := yamlElements(key.Value, n.Content[1])
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, binderrors.Newf(binderrors.CodeNoRoot, "yaml root %q must not be a sequence", key.Value).Err()
	}
	return nodes[0], nil
}

// yamlElements converts value into the elements named name: one element for
// scalars and mappings, one per item for sequences.
func yamlElements(name string, value *yaml.Node) ([]*Node, error) {
	value = resolveAlias(value)
	if value == nil {
		return []*Node{{Kind: ElementNode, Name: name}}, nil
	}
	switch value.Kind {
	case yaml.ScalarNode:
		return []*Node{yamlScalarElement(name, value)}, nil
	case yaml.SequenceNode:
		out := make([]*Node, 0, len(value.Content))
		for _, item := range value.Content {
			elems, err := yamlElements(name, item)
			if err != nil {
				return nil, err
			}
			out = append(out, elems...)
		}
		return out, nil
	case yaml.MappingNode:
		elem, err := yamlMappingElement(name, value)
		if err != nil {
			return nil, err
		}
		return []*Node{elem}, nil
	default:
		return nil, binderrors.Newf(binderrors.CodeParse, "unsupported yaml node for %q (line %d)", name, value.Line).Err()
	}
}

func yamlScalarElement(name string, value *yaml.Node) *Node {
	if value.Tag == "!!null" {
		return &Node{Kind: ElementNode, Name: name}
	}
	return Leaf(name, value.Value)
}

func yamlMappingElement(name string, m *yaml.Node) (*Node, error) {
	elem := &Node{Kind: ElementNode, Name: name}
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := resolveAlias(m.Content[i])
		val := resolveAlias(m.Content[i+1])
		if key == nil || key.Kind != yaml.ScalarNode {
			return nil, binderrors.Newf(binderrors.CodeParse, "yaml key under %q must be a scalar (line %d)", name, m.Line).Err()
		}
		switch {
		case key.Value == yamlTextKey:
			if val == nil || val.Kind != yaml.ScalarNode {
				return nil, binderrors.Newf(binderrors.CodeParse, "%s under %q must be a scalar (line %d)", yamlTextKey, name, key.Line).Err()
			}
			appendText(elem, val.Value)
		case strings.HasPrefix(key.Value, yamlAttrPrefix):
			if val == nil || val.Kind != yaml.ScalarNode {
				return nil, binderrors.Newf(binderrors.CodeParse, "attribute %s under %q must be a scalar (line %d)", key.Value, name, key.Line).Err()
			}
			elem.Attrs = append(elem.Attrs, NewAttr(strings.TrimPrefix(key.Value, yamlAttrPrefix), val.Value))
		default:
			children, err := yamlElements(key.Value, val)
			if err != nil {
				return nil, err
			}
			elem.Children = append(elem.Children, children...)
		}
	}
	return elem, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}
