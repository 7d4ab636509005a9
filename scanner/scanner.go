// Package scanner implements the attribute scanning state machine. A
// Scanner holds only cursor state and duplicate-key bookkeeping; the tag
// buffer is passed in on every call, so the same Scanner can be exercised,
// snapshotted, or cloned without owning any input.
package scanner

import (
	"bytes"

	"github.com/KimNorgaard/go-tagattr/attr"
	"github.com/KimNorgaard/go-tagattr/errors"
)

type stateKind uint8

const (
	// stateNext resumes scanning at offset after a successful attribute.
	stateNext stateKind = iota
	// stateDone means iteration finished; Next reports ok=false forever.
	stateDone
	// stateSkipValue recovers from UnquotedValue: offset points at the
	// beginning of the value, which must be discarded before resuming.
	stateSkipValue
	// stateSkipEqValue recovers from Duplicated: offset points at the
	// equals sign, and the sign plus the value must be discarded.
	stateSkipEqValue
)

// Scanner scans the raw content of a start tag into attribute spans.
type Scanner struct {
	kind   stateKind
	offset int
	// html enables unquoted values and key-only attributes.
	html bool
	// checkDuplicates enables reporting of repeated keys.
	checkDuplicates bool
	// keys holds the spans of attribute names seen so far, recorded only
	// while checkDuplicates is set. Spans rather than slices, so that the
	// previous occurrence's position can be reported.
	keys []attr.Span
}

// New returns a Scanner positioned at offset, which must point just past
// the element name inside the tag buffer. If html is true the permissive
// HTML dialect is scanned, otherwise strict XML. Duplicate checking starts
// enabled.
func New(offset int, html bool) *Scanner {
	return &Scanner{
		kind:            stateNext,
		offset:          offset,
		html:            html,
		checkDuplicates: true,
	}
}

// CheckDuplicates toggles duplicate-key detection. Disabling it skips the
// key comparisons entirely; repeated keys then pass through silently.
func (s *Scanner) CheckDuplicates(v bool) {
	s.checkDuplicates = v
}

// Clone returns an independent copy of the scanner, including the recorded
// key spans. Useful for snapshotting a scan for diagnostics or backtracking.
func (s *Scanner) Clone() *Scanner {
	c := *s
	c.keys = append([]attr.Span(nil), s.keys...)
	return &c
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\r' || b == '\n' || b == '\t'
}

// recover turns the current state into the offset scanning should continue
// from. ok=false means no input is left for this state.
func (s *Scanner) recover(buf []byte) (int, bool) {
	switch s.kind {
	case stateDone:
		return 0, false
	case stateNext:
		return s.offset, true
	case stateSkipValue:
		return skipValue(buf, s.offset)
	default:
		return skipEqValue(buf, s.offset)
	}
}

// skipValue returns the position of the first whitespace byte at or after
// offset.
func skipValue(buf []byte, offset int) (int, bool) {
	for i := offset; i < len(buf); i++ {
		if isWhitespace(buf[i]) {
			return i, true
		}
	}
	return 0, false
}

// skipEqValue skips whitespace and then a quoted value, if one follows.
// For anything unquoted it degrades to skipValue.
func skipEqValue(buf []byte, offset int) (int, bool) {
	i := offset
	for i < len(buf) && isWhitespace(buf[i]) {
		i++
	}
	if i == len(buf) {
		return 0, false
	}
	quote := buf[i]
	if quote != '"' && quote != '\'' {
		return skipValue(buf, i)
	}
	for j := i + 1; j < len(buf); j++ {
		if buf[j] == quote {
			return j, true
		}
	}
	return 0, false
}

// checkForDuplicates compares key against every previously recorded key of
// this scan and records it if it is new.
func (s *Scanner) checkForDuplicates(buf []byte, key attr.Span) error {
	if !s.checkDuplicates {
		return nil
	}
	for _, prev := range s.keys {
		if bytes.Equal(prev.Of(buf), key.Of(buf)) {
			return errors.Duplicated{Pos: key.Start, PrevPos: prev.Start}
		}
	}
	s.keys = append(s.keys, key)
	return nil
}

// keyOnly finishes an attribute that has no `=value` part. In HTML mode it
// is a legal key-only attribute (subject to the duplicate check); in XML
// mode it is an ExpectedEq error at offset.
func (s *Scanner) keyOnly(buf []byte, key attr.Span, offset int) (attr.Attr[attr.Span], error, bool) {
	if !s.html {
		return attr.Attr[attr.Span]{}, errors.ExpectedEq{Pos: offset}, true
	}
	if err := s.checkForDuplicates(buf, key); err != nil {
		return attr.Attr[attr.Span]{}, err, true
	}
	return attr.NewEmpty(key), nil, true
}

// Next scans the next attribute in buf. It returns ok=false once the input
// is exhausted; from then on every call returns ok=false. While ok is true,
// exactly one of a and err is meaningful. All positions inside err are
// absolute offsets into buf.
//
// buf must be the same buffer on every call for a given Scanner.
func (s *Scanner) Next(buf []byte) (a attr.Attr[attr.Span], err error, ok bool) {
	var zero attr.Attr[attr.Span]

	i, ok := s.recover(buf)
	if !ok {
		return zero, nil, false
	}

	// Key starts at the first byte that is not whitespace.
	for i < len(buf) && isWhitespace(buf[i]) {
		i++
	}
	if i == len(buf) {
		s.kind = stateDone
		return zero, nil, false
	}
	startKey := i
	i++ // the first key byte never terminates the key

	// The key runs until `=` or whitespace. eq ends up at the position of
	// the equals sign once one is found.
	var key attr.Span
	eq := -1
	for ; i < len(buf); i++ {
		if buf[i] == '=' {
			key = attr.Span{Start: startKey, End: i}
			eq = i
			i++
			break
		}
		if isWhitespace(buf[i]) {
			break
		}
	}
	switch {
	case eq >= 0:
		// fall through to the value
	case i == len(buf):
		s.kind = stateDone
		return s.keyOnly(buf, attr.Span{Start: startKey, End: i}, len(buf))
	default:
		// Whitespace ended the key; look past it for the equals sign.
		end := i
		i++
		for i < len(buf) && isWhitespace(buf[i]) {
			i++
		}
		if i == len(buf) {
			s.kind = stateDone
			return s.keyOnly(buf, attr.Span{Start: startKey, End: end}, len(buf))
		}
		if buf[i] != '=' {
			// A new attribute starts here; this one was key-only. The
			// byte at i is not consumed.
			s.kind, s.offset = stateNext, i
			return s.keyOnly(buf, attr.Span{Start: startKey, End: end}, i)
		}
		key = attr.Span{Start: startKey, End: end}
		eq = i
		i++
	}

	if err := s.checkForDuplicates(buf, key); err != nil {
		s.kind, s.offset = stateSkipEqValue, eq
		return zero, err, true
	}

	// Value starts at the first byte after `=` that is not whitespace.
	for i < len(buf) && isWhitespace(buf[i]) {
		i++
	}
	if i == len(buf) {
		s.kind = stateDone
		return zero, errors.ExpectedValue{Pos: len(buf)}, true
	}
	quote := buf[i]
	if quote != '"' && quote != '\'' {
		if !s.html {
			s.kind, s.offset = stateSkipValue, i
			return zero, errors.UnquotedValue{Pos: i}, true
		}
		// Unquoted token up to the next whitespace or the end of input.
		start := i
		end := len(buf)
		for i++; i < len(buf); i++ {
			if isWhitespace(buf[i]) {
				end = i
				break
			}
		}
		s.kind, s.offset = stateNext, end
		return attr.NewUnquoted(key, attr.Span{Start: start, End: end}), nil, true
	}
	startValue := i + 1

	// The closing quote is the next byte equal to the opening one; the
	// other quote character is ordinary content.
	for j := startValue; j < len(buf); j++ {
		if buf[j] != quote {
			continue
		}
		s.kind, s.offset = stateNext, j+1
		value := attr.Span{Start: startValue, End: j}
		if quote == '"' {
			return attr.NewDoubleQ(key, value), nil, true
		}
		return attr.NewSingleQ(key, value), nil, true
	}
	s.kind = stateDone
	return zero, errors.ExpectedQuote{Pos: len(buf), Quote: quote}, true
}
