package ngrams

/* A Strategy enumerates the sliding windows of a token sequence.
Implementations must produce identical output for identical input;
they differ only in how they walk the sequence. */
type Strategy interface {
	Name() string
	Windows(tokens []string, n int) [][]string
}

// WindowCount is the number of windows a sequence of length l yields
// for window size n.
func WindowCount(l, n int) int {
	if n < 1 || l < n {
		return 0
	}
	return l - n + 1
}

func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "", StrategyDirect:
		return DirectStrategy{}, nil
	case StrategyShifted:
		return ShiftedStrategy{}, nil
	}
	return nil, NewInvalidConfigError("unknown window strategy: " + name)
}

/* DirectStrategy takes the contiguous slice tokens[i:i+n] for each
start index i. The windows share the input's backing array, so no
tokens are copied. This is the reference implementation the others
are tested against. */
type DirectStrategy struct{}

func (DirectStrategy) Name() string {
	return StrategyDirect
}

func (DirectStrategy) Windows(tokens []string, n int) [][]string {

	count := WindowCount(len(tokens), n)
	if count == 0 {
		return nil
	}

	windows := make([][]string, 0, count)
	for i := 0; i+n <= len(tokens); i++ {
		windows = append(windows, tokens[i:i+n:i+n])
	}

	return windows
}

/* ShiftedStrategy builds n views of the token sequence, the k-th
view advanced by k positions, and zips them elementwise. Every view
is truncated to the common valid length L-n+1 so that exactly that
many windows come out; anything shorter would drop the final window.
The views share the input's backing array. */
type ShiftedStrategy struct{}

func (ShiftedStrategy) Name() string {
	return StrategyShifted
}

func (ShiftedStrategy) Windows(tokens []string, n int) [][]string {

	count := WindowCount(len(tokens), n)
	if count == 0 {
		return nil
	}

	views := make([][]string, n)
	for k := 0; k < n; k++ {
		views[k] = tokens[k : k+count]
	}

	windows := make([][]string, count)
	for i := 0; i < count; i++ {
		w := make([]string, n)
		for k, view := range views {
			w[k] = view[i]
		}
		windows[i] = w
	}

	return windows
}
