package ngrams

import "fmt"
import "math/rand"
import "strings"
import "testing"

func benchTokens(count int) []string {
	rng := rand.New(rand.NewSource(1))
	tokens := make([]string, count)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok%d", rng.Intn(1000))
	}
	return tokens
}

func benchmarkStrategy(b *testing.B, strat Strategy, n int) {
	tokens := benchTokens(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strat.Windows(tokens, n)
	}
}

func BenchmarkDirectBigrams(b *testing.B)   { benchmarkStrategy(b, DirectStrategy{}, 2) }
func BenchmarkDirectFivegrams(b *testing.B) { benchmarkStrategy(b, DirectStrategy{}, 5) }

func BenchmarkShiftedBigrams(b *testing.B)   { benchmarkStrategy(b, ShiftedStrategy{}, 2) }
func BenchmarkShiftedFivegrams(b *testing.B) { benchmarkStrategy(b, ShiftedStrategy{}, 5) }

func BenchmarkGenerator(b *testing.B) {
	gen, err := NewGenerator(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	text := strings.Join(benchTokens(10000), " ")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.Ngrams("bench", text)
	}
}
