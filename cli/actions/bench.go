package actions

import "fmt"
import "math/rand"
import "os"
import "runtime/pprof"
import "strings"
import "time"
import "github.com/spf13/cobra"
import "github.com/cwacek/ngramengine/corpus"
import "github.com/cwacek/ngramengine/ngrams"

var benchWords = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"pack", "my", "box", "with", "five", "dozen", "liquor", "jugs",
}

func syntheticCorpus(docCount, docLen int) []corpus.Document {

	// Fixed seed so runs are comparable.
	rng := rand.New(rand.NewSource(42))

	docs := make([]corpus.Document, docCount)
	for i := range docs {
		words := make([]string, docLen)
		for j := range words {
			words[j] = benchWords[rng.Intn(len(benchWords))]
		}
		docs[i] = corpus.Document{
			Id:   fmt.Sprintf("doc%d", i),
			Text: strings.Join(words, " "),
		}
	}
	return docs
}

// Timing harness comparing the window strategies on a generated
// corpus. This lives entirely outside the core interface.
func benchCmd() *cobra.Command {

	var docCount, docLen, n, rounds, workers int
	var cpuprofile string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the window strategies against each other",
		RunE: func(cmd *cobra.Command, args []string) error {

			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return err
				}
				pprof.StartCPUProfile(f)
				defer pprof.StopCPUProfile()
			}

			docs := syntheticCorpus(docCount, docLen)

			for _, name := range []string{ngrams.StrategyDirect, ngrams.StrategyShifted} {

				conf := ngrams.DefaultConfig()
				conf.N = n
				conf.Strategy = name
				conf.Workers = workers

				proc, err := ngrams.NewBatchProcessor(conf)
				if err != nil {
					return err
				}

				var total int
				start := time.Now()
				for r := 0; r < rounds; r++ {
					total = len(proc.Process(docs))
				}
				elapsed := time.Since(start)

				fmt.Printf("%-8s %8d ngrams/round  %12v/round\n",
					name, total, elapsed/time.Duration(rounds))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&docCount, "bench.docs", 100, "Documents in the generated corpus")
	cmd.Flags().IntVar(&docLen, "bench.tokens", 1000, "Tokens per document")
	cmd.Flags().IntVar(&n, "bench.n", 2, "Window size")
	cmd.Flags().IntVar(&rounds, "bench.rounds", 10, "Rounds per strategy")
	cmd.Flags().IntVar(&workers, "bench.workers", 1, "Documents processed concurrently")
	cmd.Flags().StringVar(&cpuprofile, "cprofile", "", "write CPU profile to file")

	return cmd
}
