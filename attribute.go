package tagattr

import "fmt"

// Attribute is one key/value attribute of a start tag. Value holds the
// raw, still-escaped bytes; run them through an entity decoder before use
// if literal text is needed.
//
// When duplicate checking is disabled the same Key may appear more than
// once in a scan.
type Attribute struct {
	Key   []byte
	Value []byte
}

// NewAttribute builds an attribute from raw bytes. Neither key nor value
// is transformed in any way.
func NewAttribute(key, value []byte) Attribute {
	return Attribute{Key: key, Value: value}
}

// Text builds an attribute from plain text for programmatic tag
// construction. The key is stored as-is; the value is escaped.
func Text(key, value string) Attribute {
	return Attribute{Key: []byte(key), Value: Escape([]byte(value))}
}

// String implements fmt.Stringer.
func (a Attribute) String() string {
	return fmt.Sprintf("Attribute { key: %q, value: %q }", a.Key, a.Value)
}
