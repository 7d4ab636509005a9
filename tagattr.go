package tagattr

import (
	"iter"

	"github.com/KimNorgaard/go-tagattr/attr"
	"github.com/KimNorgaard/go-tagattr/scanner"
)

// Attributes iterates over the attributes of a single start tag. It borrows
// the caller's buffer for its whole lifetime; the buffer must not be
// mutated while the iterator is in use.
//
// The iterator is fused: once Next reports ok=false it does so forever. A
// fresh Attributes over the same buffer always yields the same sequence.
type Attributes struct {
	buf  []byte
	scan *scanner.Scanner
}

// New returns an iterator over the attributes in buf, scanned in strict XML
// mode. pos must point just past the element name.
func New(buf []byte, pos int, opts ...Option) *Attributes {
	a := &Attributes{buf: buf, scan: scanner.New(pos, false)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewHTML returns an iterator over the attributes in buf, scanned in
// permissive HTML mode: unquoted values and key-only attributes are
// accepted. pos must point just past the element name.
func NewHTML(buf []byte, pos int, opts ...Option) *Attributes {
	a := &Attributes{buf: buf, scan: scanner.New(pos, true)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithChecks toggles duplicate-key detection and returns the iterator for
// chaining. Enabled by default; disabling it trades the Duplicated errors
// for fewer key comparisons per tag.
func (a *Attributes) WithChecks(v bool) *Attributes {
	a.scan.CheckDuplicates(v)
	return a
}

// Next returns the next attribute. ok is false once the input is
// exhausted. While ok is true, err is non-nil for a malformed attribute;
// scanning has already positioned itself to continue behind it where
// recovery is possible.
func (a *Attributes) Next() (Attribute, error, bool) {
	sa, err, ok := a.scan.Next(a.buf)
	if !ok {
		return Attribute{}, nil, false
	}
	if err != nil {
		return Attribute{}, err, true
	}
	m := attr.Map(sa, func(s attr.Span) []byte { return s.Of(a.buf) })
	return Attribute{Key: m.Key(), Value: m.Value()}, nil, true
}

// All returns the remaining attributes as a range-over-func sequence.
// Pairs with a non-nil error are malformed attributes; the sequence keeps
// going past them where recovery is possible.
func (a *Attributes) All() iter.Seq2[Attribute, error] {
	return func(yield func(Attribute, error) bool) {
		for {
			at, err, ok := a.Next()
			if !ok {
				return
			}
			if !yield(at, err) {
				return
			}
		}
	}
}
