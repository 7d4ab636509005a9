package attr

import "fmt"

// Kind describes the syntactic shape of a scanned attribute.
type Kind uint8

const (
	// DoubleQ is an attribute whose value was enclosed in double quotes
	// (`"`). This is a canonical XML-style attribute.
	DoubleQ Kind = iota
	// SingleQ is an attribute whose value was enclosed in single quotes
	// (`'`). This is an XML-style attribute.
	SingleQ
	// Unquoted is an attribute whose value was not enclosed in quotes.
	// This is an HTML-style attribute; it is produced in HTML mode only.
	// In XML mode an UnquotedValue error is reported instead.
	Unquoted
	// Empty is an attribute without a value, such as an HTML boolean
	// attribute. It is produced in HTML mode only. In XML mode an
	// ExpectedEq error is reported instead.
	Empty
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case DoubleQ:
		return "DoubleQ"
	case SingleQ:
		return "SingleQ"
	case Unquoted:
		return "Unquoted"
	case Empty:
		return "Empty"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Span is a [Start, End) byte range into a tag buffer. The scanner reports
// spans instead of slices so that it never has to hold the buffer itself.
type Span struct {
	Start int
	End   int
}

// Of resolves the span against buf.
func (s Span) Of(buf []byte) []byte {
	return buf[s.Start:s.End]
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Attr is one scanned attribute. The payload type T is a Span while
// scanning and a byte slice after materialization against the tag buffer.
//
// The value payload of an Empty attribute is the zero T.
type Attr[T any] struct {
	kind  Kind
	key   T
	value T
}

// NewDoubleQ returns a double-quoted attribute.
func NewDoubleQ[T any](key, value T) Attr[T] {
	return Attr[T]{kind: DoubleQ, key: key, value: value}
}

// NewSingleQ returns a single-quoted attribute.
func NewSingleQ[T any](key, value T) Attr[T] {
	return Attr[T]{kind: SingleQ, key: key, value: value}
}

// NewUnquoted returns an attribute with an unquoted value.
func NewUnquoted[T any](key, value T) Attr[T] {
	return Attr[T]{kind: Unquoted, key: key, value: value}
}

// NewEmpty returns a key-only attribute.
func NewEmpty[T any](key T) Attr[T] {
	return Attr[T]{kind: Empty, key: key}
}

// Kind returns the attribute's syntactic shape.
func (a Attr[T]) Kind() Kind {
	return a.kind
}

// Key returns the attribute key.
func (a Attr[T]) Key() T {
	return a.key
}

// Value returns the attribute value. For the Empty kind it returns the
// zero T, which materializes to an empty byte slice.
func (a Attr[T]) Value() T {
	return a.value
}

// Pair unpacks the attribute into its key and value. hasValue is false
// only for the Empty kind.
func (a Attr[T]) Pair() (key, value T, hasValue bool) {
	return a.key, a.value, a.kind != Empty
}

// Map returns a copy of a with f applied to every payload, preserving the
// kind. It is used to turn an Attr[Span] into an Attr[[]byte] once a buffer
// is at hand.
func Map[T, U any](a Attr[T], f func(T) U) Attr[U] {
	return Attr[U]{kind: a.kind, key: f(a.key), value: f(a.value)}
}

// String implements fmt.Stringer for materialized attributes.
func (a Attr[T]) String() string {
	if a.kind == Empty {
		return fmt.Sprintf("%s(%q)", a.kind, any(a.key))
	}
	return fmt.Sprintf("%s(%q, %q)", a.kind, any(a.key), any(a.value))
}
