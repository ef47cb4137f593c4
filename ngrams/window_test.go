package ngrams

import "strings"
import "testing"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

var strategies = []Strategy{DirectStrategy{}, ShiftedStrategy{}}

func TestWindowCount(t *testing.T) {

	cases := []struct {
		l, n, expected int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{5, 1, 5},
		{5, 2, 4},
		{5, 3, 3},
		{5, 5, 1},
		{5, 6, 0},
		{5, 10, 0},
		{3, 0, 0},
		{3, -1, 0},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, WindowCount(c.l, c.n),
			"WindowCount(%d, %d)", c.l, c.n)
	}
}

func TestWindows(t *testing.T) {

	cases := []struct {
		tokens   []string
		n        int
		expected [][]string
	}{
		{
			strings.Fields("My short and exquisite sentence"), 2,
			[][]string{
				{"My", "short"},
				{"short", "and"},
				{"and", "exquisite"},
				{"exquisite", "sentence"},
			},
		},
		{
			strings.Fields("My short and exquisite sentence"), 3,
			[][]string{
				{"My", "short", "and"},
				{"short", "and", "exquisite"},
				{"and", "exquisite", "sentence"},
			},
		},
		{
			strings.Fields("a b c"), 1,
			[][]string{{"a"}, {"b"}, {"c"}},
		},
		{
			strings.Fields("a b c"), 3,
			[][]string{{"a", "b", "c"}},
		},
		{strings.Fields("a b c d e"), 10, nil},
		{nil, 2, nil},
		{[]string{}, 1, nil},
	}

	for _, strat := range strategies {
		for _, c := range cases {
			actual := strat.Windows(c.tokens, c.n)
			assert.Equal(t, c.expected, actual,
				"%s: Windows(%v, %d)", strat.Name(), c.tokens, c.n)
		}
	}
}

// The strategies must be interchangeable: identical output for
// identical input, across sizes and sequence lengths.
func TestStrategiesAgree(t *testing.T) {

	tokens := strings.Fields("one two three four five six seven eight nine ten")
	direct := DirectStrategy{}
	shifted := ShiftedStrategy{}

	for n := 1; n <= len(tokens)+2; n++ {
		for l := 0; l <= len(tokens); l++ {
			seq := tokens[:l]
			require.Equal(t, direct.Windows(seq, n), shifted.Windows(seq, n),
				"strategies disagree for l=%d n=%d", l, n)
		}
	}
}

/* The shifted strategy must not truncate to a shorter common length
than L-n+1: the final valid window has to come out. */
func TestShiftedKeepsFinalWindow(t *testing.T) {

	tokens := strings.Fields("a b c d e")
	windows := ShiftedStrategy{}.Windows(tokens, 2)

	require.Len(t, windows, 4)
	assert.Equal(t, []string{"d", "e"}, windows[3])
}

func TestOverlapLaw(t *testing.T) {

	tokens := strings.Fields("the quick brown fox jumps over the lazy dog")

	for _, strat := range strategies {
		for n := 2; n <= 4; n++ {
			windows := strat.Windows(tokens, n)
			require.Equal(t, len(tokens)-n+1, len(windows))

			for i := 0; i+1 < len(windows); i++ {
				assert.Equal(t, windows[i][1:], windows[i+1][:n-1],
					"%s: overlap violated at window %d for n=%d",
					strat.Name(), i, n)
			}
		}
	}
}

func TestWindowsMatchOriginalSlices(t *testing.T) {

	tokens := strings.Fields("w x y z")

	for _, strat := range strategies {
		for n := 1; n <= len(tokens); n++ {
			windows := strat.Windows(tokens, n)
			for i, w := range windows {
				assert.Equal(t, tokens[i:i+n], w,
					"%s: window %d is not tokens[%d:%d]",
					strat.Name(), i, i, i+n)
			}
		}
	}
}

func TestStrategyByName(t *testing.T) {

	strat, err := StrategyByName("direct")
	require.NoError(t, err)
	assert.IsType(t, DirectStrategy{}, strat)

	strat, err = StrategyByName("")
	require.NoError(t, err)
	assert.IsType(t, DirectStrategy{}, strat)

	strat, err = StrategyByName("shifted")
	require.NoError(t, err)
	assert.IsType(t, ShiftedStrategy{}, strat)

	_, err = StrategyByName("bogus")
	require.Error(t, err)
	assert.IsType(t, &InvalidConfigError{}, err)
}
