package xmltree

import (
	"encoding/xml"
	"io"
	"strings"
	"unicode"

	pkgerrors "github.com/pkg/errors"

	binderrors "github.com/jacoelho/xmlbind/errors"
)

// Parse builds a tree from XML input. Failures are reported as
// *errors.Chain values with CodeParse, or CodeNoRoot for input without a
// root element.
func Parse(r io.Reader) (*Node, error) {
	if r == nil {
		return nil, binderrors.New(binderrors.CodeParse, "nil reader").Err()
	}
	decoder := xml.NewDecoder(r)

	var stack []*Node
	var root *Node
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(pkgerrors.Wrapf(err, "offset %d", decoder.InputOffset()))
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, parseError(pkgerrors.Errorf("unexpected element %s after document end", t.Name.Local))
			}
			elem := &Node{
				Kind:  ElementNode,
				Name:  t.Name.Local,
				Attrs: convertAttrs(t.Attr),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(string(t)) {
					return nil, parseError(pkgerrors.New("unexpected character data outside root element"))
				}
				continue
			}
			appendText(stack[len(stack)-1], string(t))
		}
	}

	if root == nil {
		return nil, binderrors.Wrap(binderrors.CodeNoRoot, io.ErrUnexpectedEOF).Err()
	}
	return root, nil
}

// ParseString builds a tree from an XML string.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

func parseError(err error) error {
	return binderrors.Wrap(binderrors.CodeParse, pkgerrors.Wrap(err, "parse xml")).Err()
}

// appendText adds character data to elem, merging it with a directly
// preceding text node so CDATA sections and entity splits stay one node.
func appendText(elem *Node, data string) {
	elem.Value += data
	if n := len(elem.Children); n > 0 && elem.Children[n-1].Kind == TextNode {
		elem.Children[n-1].Value += data
		return
	}
	elem.Children = append(elem.Children, NewText(data))
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func convertAttrs(xmlAttrs []xml.Attr) []*Node {
	attrs := make([]*Node, 0, len(xmlAttrs))
	for _, a := range xmlAttrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		attrs = append(attrs, NewAttr(a.Name.Local, a.Value))
	}
	return attrs
}
