// Package errors defines the closed set of errors that attribute scanning
// can report. Every error carries byte offsets relative to the start of the
// tag buffer, and scanning continues past all of them except ExpectedValue
// and ExpectedQuote, which can only occur at end of input.
package errors

import "fmt"

// AttrError is implemented by every attribute scanning error. The set is
// closed; callers may switch over the concrete types exhaustively.
type AttrError interface {
	error
	attrError()
}

// ExpectedEq reports an attribute key that was not followed by `=`.
//
// Raised only in XML mode; in HTML mode the same input produces a key-only
// attribute instead.
type ExpectedEq struct {
	Pos int
}

func (e ExpectedEq) Error() string {
	return fmt.Sprintf("position %d: attribute key must be directly followed by `=` or space", e.Pos)
}

// ExpectedValue reports a `=` that was not followed by any value. It can
// only be raised for the last attribute in a tag, because any other content
// after `=` would have been taken as a value.
type ExpectedValue struct {
	Pos int
}

func (e ExpectedValue) Error() string {
	return fmt.Sprintf("position %d: `=` must be followed by an attribute value", e.Pos)
}

// UnquotedValue reports an attribute value that was not enclosed in quotes.
//
// Raised only in XML mode; in HTML mode the bare token is accepted.
type UnquotedValue struct {
	Pos int
}

func (e UnquotedValue) Error() string {
	return fmt.Sprintf("position %d: attribute value must be enclosed in `\"` or `'`", e.Pos)
}

// ExpectedQuote reports a quoted value whose opening quote was never
// closed. Pos is always the tag buffer's length, since scanning for the
// closing quote consumes all remaining input.
type ExpectedQuote struct {
	Pos   int
	Quote byte
}

func (e ExpectedQuote) Error() string {
	return fmt.Sprintf("position %d: missing closing quote `%c` in attribute value", e.Pos, e.Quote)
}

// Duplicated reports an attribute key equal, byte for byte, to one already
// seen in the same tag. Pos is the start of the repeated key; PrevPos is the
// start of the earlier occurrence.
//
// Reported only while duplicate checking is enabled.
type Duplicated struct {
	Pos     int
	PrevPos int
}

func (e Duplicated) Error() string {
	return fmt.Sprintf("position %d: duplicated attribute, previous declaration at position %d", e.Pos, e.PrevPos)
}

func (ExpectedEq) attrError()    {}
func (ExpectedValue) attrError() {}
func (UnquotedValue) attrError() {}
func (ExpectedQuote) attrError() {}
func (Duplicated) attrError()    {}
