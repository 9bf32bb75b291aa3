package errors

// Code classifies a binding or parse failure. The zero Code means no error.
type Code int

const (
	// CodeNone marks an empty, uninitialized error record.
	CodeNone Code = iota
	// CodeParse indicates the source document could not be parsed into a tree.
	CodeParse
	// CodeNoRoot indicates the source document has no root element.
	CodeNoRoot
	// CodeMalformedValue indicates text that the field converter rejected.
	CodeMalformedValue
	// CodeBind groups the failures of a composite or repeated group bind.
	CodeBind
	// CodeDepthLimit indicates the tree nests deeper than the configured limit.
	CodeDepthLimit
	// CodeIO indicates the source document could not be read.
	CodeIO
)

// String returns a stable label for the code.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeParse:
		return "parse"
	case CodeNoRoot:
		return "no-root"
	case CodeMalformedValue:
		return "malformed-value"
	case CodeBind:
		return "bind"
	case CodeDepthLimit:
		return "depth-limit"
	case CodeIO:
		return "io"
	default:
		return "unknown"
	}
}
