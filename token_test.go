package komand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	type testCase struct {
		tag      string
		input    string
		expected []Token
	}

	cases := []testCase{
		{
			tag:      "empty_input",
			input:    "",
			expected: nil,
		},
		{
			tag:      "blank_input",
			input:    " \t \r\n ",
			expected: nil,
		},
		{
			tag:   "single_word",
			input: "param1",
			expected: []Token{
				{Text: "param1", Start: 0, End: 6},
			},
		},
		{
			tag:   "multiple_words",
			input: "show segment loaded",
			expected: []Token{
				{Text: "show", Start: 0, End: 4},
				{Text: "segment", Start: 5, End: 12},
				{Text: "loaded", Start: 13, End: 19},
			},
		},
		{
			tag:   "surrounding_blanks",
			input: "  param1\t",
			expected: []Token{
				{Text: "param1", Start: 2, End: 8},
			},
		},
		{
			tag:   "tabs_and_newlines_separate",
			input: "a\tb\nc",
			expected: []Token{
				{Text: "a", Start: 0, End: 1},
				{Text: "b", Start: 2, End: 3},
				{Text: "c", Start: 4, End: 5},
			},
		},
		{
			tag:   "single_quoted_keeps_blanks",
			input: "-f 'flag1 parameter'",
			expected: []Token{
				{Text: "-f", Start: 0, End: 2},
				{Text: "flag1 parameter", Start: 3, End: 20, Quoted: true},
			},
		},
		{
			tag:   "double_quoted_keeps_blanks",
			input: `"a b" c`,
			expected: []Token{
				{Text: "a b", Start: 0, End: 5, Quoted: true},
				{Text: "c", Start: 6, End: 7},
			},
		},
		{
			tag:   "empty_quotes",
			input: `""`,
			expected: []Token{
				{Text: "", Start: 0, End: 2, Quoted: true},
			},
		},
		{
			tag:   "unterminated_quote_runs_to_end",
			input: "'flag1 par",
			expected: []Token{
				{Text: "flag1 par", Start: 0, End: 10, Quoted: true},
			},
		},
		{
			tag:   "closing_quote_ends_token",
			input: "'a b'c",
			expected: []Token{
				{Text: "a b", Start: 0, End: 5, Quoted: true},
				{Text: "c", Start: 5, End: 6},
			},
		},
		{
			tag:   "quote_inside_word_is_literal",
			input: "ab'cd ef",
			expected: []Token{
				{Text: "ab'cd", Start: 0, End: 5},
				{Text: "ef", Start: 6, End: 8},
			},
		},
		{
			tag:   "single_quotes_inside_double_quotes",
			input: `"it's fine"`,
			expected: []Token{
				{Text: "it's fine", Start: 0, End: 11, Quoted: true},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.input))
		})
	}
}

func TestTokenizeSpans(t *testing.T) {
	input := `alpha 'b c' "d e" tail`
	tokens := Tokenize(input)
	require.Len(t, tokens, 4)

	for _, token := range tokens {
		assert.GreaterOrEqual(t, token.End, token.Start)
		assert.LessOrEqual(t, token.End, len(input))
		if !token.Quoted {
			assert.Equal(t, token.Text, input[token.Start:token.End])
			continue
		}
		// quoted spans cover the quote characters
		assert.Equal(t, token.Text, input[token.Start+1:token.End-1])
	}
}
