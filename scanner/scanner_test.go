package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-tagattr/attr"
	"github.com/KimNorgaard/go-tagattr/errors"
	"github.com/KimNorgaard/go-tagattr/scanner"
)

// step is one expected outcome of Scanner.Next. A nil err with ok=true
// means the attribute in a; ok=false means the sequence ended.
type step struct {
	a   attr.Attr[attr.Span]
	err error
	ok  bool
}

func run(t *testing.T, input string, pos int, html bool, steps []step) {
	t.Helper()
	buf := []byte(input)
	s := scanner.New(pos, html)
	for i, want := range steps {
		a, err, ok := s.Next(buf)
		require.Equal(t, want.ok, ok, "step[%d] - wrong ok", i)
		require.Equal(t, want.err, err, "step[%d] - wrong error", i)
		require.Equal(t, want.a, a, "step[%d] - wrong attribute", i)
	}
	// The scanner is fused.
	for range 2 {
		_, err, ok := s.Next(buf)
		require.False(t, ok)
		require.NoError(t, err)
	}
}

func span(start, end int) attr.Span { return attr.Span{Start: start, End: end} }

func TestXMLSingle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		steps []step
	}{
		{
			name:  "single quoted",
			input: `tag key='value'`,
			steps: []step{{a: attr.NewSingleQ(span(4, 7), span(9, 14)), ok: true}},
		},
		{
			name:  "double quoted",
			input: `tag key="value"`,
			steps: []step{{a: attr.NewDoubleQ(span(4, 7), span(9, 14)), ok: true}},
		},
		{
			name:  "unquoted value",
			input: `tag key=value`,
			steps: []step{{err: errors.UnquotedValue{Pos: 8}, ok: true}},
		},
		{
			name:  "key only",
			input: `tag key`,
			steps: []step{{err: errors.ExpectedEq{Pos: 7}, ok: true}},
		},
		{
			name:  "key starting with a quote is still a key",
			input: `tag 'key'='value'`,
			steps: []step{{a: attr.NewSingleQ(span(4, 9), span(11, 16)), ok: true}},
		},
		{
			name:  "key with a foreign byte inside",
			input: `tag key&jey='value'`,
			steps: []step{{a: attr.NewSingleQ(span(4, 11), span(13, 18)), ok: true}},
		},
		{
			name:  "missing value",
			input: `tag key=`,
			steps: []step{{err: errors.ExpectedValue{Pos: 8}, ok: true}},
		},
		{
			name:  "truncated quote",
			input: `tag key="value`,
			steps: []step{{err: errors.ExpectedQuote{Pos: 14, Quote: '"'}, ok: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run(t, tt.input, 3, false, tt.steps)
		})
	}
}

func TestXMLRecovery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		steps []step
	}{
		{
			name:  "attribute after unquoted value",
			input: `tag key=value regular='attribute'`,
			steps: []step{
				{err: errors.UnquotedValue{Pos: 8}, ok: true},
				{a: attr.NewSingleQ(span(14, 21), span(23, 32)), ok: true},
			},
		},
		{
			name:  "attribute after key only",
			input: `tag key regular='attribute'`,
			steps: []step{
				{err: errors.ExpectedEq{Pos: 8}, ok: true},
				{a: attr.NewSingleQ(span(8, 15), span(17, 26)), ok: true},
			},
		},
		{
			// The whole remainder is taken as the unquoted value, so
			// recovery finds no whitespace to resume behind.
			name:  "missing value swallows the rest",
			input: `tag key= regular='attribute'`,
			steps: []step{
				{err: errors.UnquotedValue{Pos: 9}, ok: true},
			},
		},
		{
			name:  "missing value with detached equals",
			input: `tag key= regular = 'attribute'`,
			steps: []step{
				{err: errors.UnquotedValue{Pos: 9}, ok: true},
				{err: errors.ExpectedEq{Pos: 19}, ok: true},
				{err: errors.ExpectedEq{Pos: 30}, ok: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run(t, tt.input, 3, false, tt.steps)
		})
	}
}

func TestXMLSparsed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		steps []step
	}{
		{
			name:  "single quoted",
			input: `tag key = 'value' `,
			steps: []step{{a: attr.NewSingleQ(span(4, 7), span(11, 16)), ok: true}},
		},
		{
			name:  "unquoted value",
			input: `tag key = value `,
			steps: []step{{err: errors.UnquotedValue{Pos: 10}, ok: true}},
		},
		{
			name:  "key only",
			input: `tag key `,
			steps: []step{{err: errors.ExpectedEq{Pos: 8}, ok: true}},
		},
		{
			name:  "missing value",
			input: `tag key = `,
			steps: []step{{err: errors.ExpectedValue{Pos: 10}, ok: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run(t, tt.input, 3, false, tt.steps)
		})
	}
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		steps []step
	}{
		{
			name:  "unquoted value",
			input: `tag key=value`,
			steps: []step{{a: attr.NewUnquoted(span(4, 7), span(8, 13)), ok: true}},
		},
		{
			name:  "unquoted value terminated by whitespace",
			input: `tag key = value `,
			steps: []step{{a: attr.NewUnquoted(span(4, 7), span(10, 15)), ok: true}},
		},
		{
			name:  "key only",
			input: `tag key`,
			steps: []step{{a: attr.NewEmpty(span(4, 7)), ok: true}},
		},
		{
			name:  "key only then regular attribute",
			input: `tag key regular='attribute'`,
			steps: []step{
				{a: attr.NewEmpty(span(4, 7)), ok: true},
				{a: attr.NewSingleQ(span(8, 15), span(17, 26)), ok: true},
			},
		},
		{
			name:  "rest of tag as one unquoted value",
			input: `tag key= regular='attribute'`,
			steps: []step{{a: attr.NewUnquoted(span(4, 7), span(9, 28)), ok: true}},
		},
		{
			name:  "detached equals starts a key-only attribute",
			input: `tag key= regular = 'attribute'`,
			steps: []step{
				{a: attr.NewUnquoted(span(4, 7), span(9, 16)), ok: true},
				{a: attr.NewEmpty(span(17, 18)), ok: true},
				{a: attr.NewEmpty(span(19, 30)), ok: true},
			},
		},
		{
			name:  "missing value is still an error",
			input: `tag key = `,
			steps: []step{{err: errors.ExpectedValue{Pos: 10}, ok: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run(t, tt.input, 3, true, tt.steps)
		})
	}
}

func TestDuplicates(t *testing.T) {
	input := `tag key='value' key='dup' another=''`
	steps := []step{
		{a: attr.NewSingleQ(span(4, 7), span(9, 14)), ok: true},
		{err: errors.Duplicated{Pos: 16, PrevPos: 4}, ok: true},
		{a: attr.NewSingleQ(span(26, 33), span(35, 35)), ok: true},
	}
	t.Run("xml", func(t *testing.T) {
		run(t, input, 3, false, steps)
	})
	t.Run("html", func(t *testing.T) {
		run(t, input, 3, true, steps)
	})
	t.Run("key only duplicate", func(t *testing.T) {
		run(t, `tag key='value' key another=''`, 3, true, []step{
			{a: attr.NewSingleQ(span(4, 7), span(9, 14)), ok: true},
			{err: errors.Duplicated{Pos: 16, PrevPos: 4}, ok: true},
			{a: attr.NewSingleQ(span(20, 27), span(29, 29)), ok: true},
		})
	})
}

func TestChecksDisabled(t *testing.T) {
	buf := []byte(`tag key='value' key='dup' another=''`)
	s := scanner.New(3, false)
	s.CheckDuplicates(false)

	a, err, ok := s.Next(buf)
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, attr.NewSingleQ(span(4, 7), span(9, 14)), a)

	a, err, ok = s.Next(buf)
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, attr.NewSingleQ(span(16, 19), span(21, 24)), a)

	a, err, ok = s.Next(buf)
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, attr.NewSingleQ(span(26, 33), span(35, 35)), a)

	_, _, ok = s.Next(buf)
	require.False(t, ok)
}

func TestMixedQuotes(t *testing.T) {
	// The closing quote is only ever the opening quote byte; the other
	// quote character is ordinary content.
	t.Run("double inside single", func(t *testing.T) {
		run(t, `tag c='cc"cc'`, 3, false, []step{
			{a: attr.NewSingleQ(span(4, 5), span(7, 12)), ok: true},
		})
	})
	t.Run("single inside double", func(t *testing.T) {
		run(t, `tag c="cc'cc"`, 3, false, []step{
			{a: attr.NewDoubleQ(span(4, 5), span(7, 12)), ok: true},
		})
	})
}

func TestExhaustedInput(t *testing.T) {
	for _, input := range []string{"", "   ", "tag", "tag \t\r\n "} {
		pos := min(3, len(input))
		run(t, input, pos, false, nil)
		run(t, input, pos, true, nil)
	}
}

func TestClone(t *testing.T) {
	buf := []byte(`tag a='1' b='2' a='3'`)
	s := scanner.New(3, false)

	_, err, ok := s.Next(buf)
	require.True(t, ok)
	require.NoError(t, err)

	// A clone taken mid-scan replays the rest independently, including
	// the duplicate bookkeeping accumulated so far.
	c := s.Clone()
	for _, sc := range []*scanner.Scanner{s, c} {
		a, err, ok := sc.Next(buf)
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, attr.NewSingleQ(span(10, 11), span(13, 14)), a)

		_, err, ok = sc.Next(buf)
		require.True(t, ok)
		require.Equal(t, errors.Duplicated{Pos: 16, PrevPos: 4}, err)
	}
}
