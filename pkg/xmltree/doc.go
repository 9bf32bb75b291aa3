// Package xmltree holds the labeled tree consumed by the binding engine and
// the collaborators that produce it.
//
// A tree is built once per document by Parse (XML), ParseYAML (YAML) or
// ParseFile, and is read-only afterwards. Element nodes carry their direct
// text in Value, their attributes in Attrs and their element and text
// children, in document order, in Children. Namespaces are not tracked:
// names are local names and namespace declarations are dropped.
package xmltree
