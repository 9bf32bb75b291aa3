// Package xmlbind populates typed records from a labeled tree by name.
//
// A record declares its shape once, in its constructor, by embedding
// Composite and registering each field under the tag it binds from:
//
//	type Header struct {
//		xmlbind.Composite
//		Instrument *xmlbind.Leaf[string]
//		ID         *xmlbind.Leaf[int]
//		Tags       *xmlbind.Group[*xmlbind.Leaf[string]]
//	}
//
//	func NewHeader() *Header {
//		h := &Header{
//			Instrument: xmlbind.String(),
//			ID:         xmlbind.Int(),
//			Tags:       xmlbind.NewGroup(xmlbind.String),
//		}
//		h.Insert("Instrument", h.Instrument)
//		h.Insert("ID", h.ID)
//		h.Insert("Tag", h.Tags)
//		return h
//	}
//
// Binding walks the children of a node once, dispatching each element child
// to the field registered under its name. Unregistered children are ignored.
// Leaves convert the node text with their Converter; repeated groups append
// one item per matching child in document order.
//
// Conversion failures do not stop a bind: the failing leaf keeps its zero
// value and the error, and the enclosing composite returns every failure of
// the walk as one *errors.Chain. Whether a tag was present is reported by
// Present, independently of its converted value.
//
// A record instance and the tree it binds from must not be shared between
// goroutines during a bind. Distinct (tree, record) pairs bind concurrently.
package xmlbind
