package xmlbind

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/cockroachdb/apd"

	"github.com/jacoelho/xmlbind/internal/num"
)

// Converter turns the text of a matched node into a typed value.
// Implementations are stateless and safe for concurrent use.
type Converter[T any] interface {
	Convert(text string) (T, error)
}

// ConverterFunc adapts a function to Converter.
type ConverterFunc[T any] func(text string) (T, error)

// Convert calls f(text).
func (f ConverterFunc[T]) Convert(text string) (T, error) {
	return f(text)
}

// Mode selects how numeric converters treat text that is not a clean number.
type Mode uint8

const (
	// Strict rejects anything but a complete numeric lexical value,
	// surrounded by optional XML whitespace, that fits the target type.
	Strict Mode = iota
	// Permissive reads the longest numeric prefix the way the C library's
	// atoi and atof do, yielding 0 when there is none. It never fails.
	// Integers beyond the target type saturate at its bounds.
	Permissive
)

// String returns a stable label for the mode.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Signed is the set of integer types IntConverter produces.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Real is the set of floating-point types FloatConverter produces.
type Real interface {
	~float32 | ~float64
}

// StringConverter passes the node text through unchanged.
type StringConverter struct{}

// Convert returns text.
func (StringConverter) Convert(text string) (string, error) {
	return text, nil
}

// IntConverter parses integer text into T.
type IntConverter[T Signed] struct {
	Mode Mode
}

// Convert parses text according to c.Mode.
func (c IntConverter[T]) Convert(text string) (T, error) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if c.Mode == Permissive {
		return T(num.ScanInt([]byte(text), bits)), nil
	}
	v, err := num.ParseInt([]byte(text), bits)
	if err != nil {
		return zero, fmt.Errorf("integer: %w", err)
	}
	return T(v), nil
}

// FloatConverter parses floating-point text into T.
type FloatConverter[T Real] struct {
	Mode Mode
}

// Convert parses text according to c.Mode.
func (c FloatConverter[T]) Convert(text string) (T, error) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if c.Mode == Permissive {
		return T(num.ScanFloat([]byte(text), bits)), nil
	}
	v, err := num.ParseFloat([]byte(text), bits)
	if err != nil {
		return zero, fmt.Errorf("float: %w", err)
	}
	return T(v), nil
}

// BoolConverter parses boolean text. Strict mode accepts the xsd:boolean
// lexical forms true, false, 1 and 0. Permissive mode treats a
// case-insensitive "true" or a non-zero integer prefix as true and anything
// else as false.
type BoolConverter struct {
	Mode Mode
}

// Convert parses text according to c.Mode.
func (c BoolConverter) Convert(text string) (bool, error) {
	trimmed := strings.Trim(text, " \t\r\n")
	if c.Mode == Permissive {
		if strings.EqualFold(trimmed, "true") {
			return true, nil
		}
		return num.ScanInt([]byte(trimmed), 64) != 0, nil
	}
	switch trimmed {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("boolean: %w", &num.ParseError{Kind: num.ParseBadChar})
	}
}

// DecimalConverter parses arbitrary-precision decimal text.
type DecimalConverter struct{}

// Convert parses text, surrounded by optional XML whitespace, into a new decimal.
func (DecimalConverter) Convert(text string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(strings.Trim(text, " \t\r\n"))
	if err != nil {
		return nil, fmt.Errorf("decimal: %w", err)
	}
	return d, nil
}
