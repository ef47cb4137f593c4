package ngrams

import "testing"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

type tokenizeCase struct {
	text     string
	expected []string
}

func TestSplitTokenizer(t *testing.T) {

	cases := []tokenizeCase{
		{"My short and exquisite sentence",
			[]string{"My", "short", "and", "exquisite", "sentence"}},
		{"  leading and trailing  ",
			[]string{"leading", "and", "trailing"}},
		{"tabs\tand\nnewlines\r\nmixed   runs",
			[]string{"tabs", "and", "newlines", "mixed", "runs"}},
		{"single", []string{"single"}},
		{"", []string{}},
		{"   \t\n  ", []string{}},
	}

	tok, err := NewSplitTokenizer("")
	require.NoError(t, err)

	for _, c := range cases {
		assert.Equal(t, c.expected, tok.Tokenize(c.text), "input %q", c.text)
	}
}

func TestSplitTokenizerCustomPattern(t *testing.T) {

	tok, err := NewSplitTokenizer(`,\s*`)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, tok.Tokenize("a, b,c"))
}

func TestSplitTokenizerBadPattern(t *testing.T) {

	_, err := NewSplitTokenizer(`[unclosed`)
	require.Error(t, err)
	assert.IsType(t, &InvalidConfigError{}, err)
}
