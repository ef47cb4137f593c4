package actions

import "errors"
import "sort"
import "github.com/spf13/cobra"
import "github.com/cwacek/ngramengine/corpus"
import "github.com/cwacek/ngramengine/ngrams"

// corpusFlags selects where documents come from: a directory of
// plain-text files, or a JSON-lines corpus.
type corpusFlags struct {
	docroot    string
	docpattern string
	jsonl      string
	idField    string
	textField  string
}

func (cf *corpusFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cf.docroot, "doc.root", "",
		"The root directory under which to find documents")
	cmd.Flags().StringVar(&cf.docpattern, "doc.pattern", `^[^\.].+`,
		"A regular expression to match document names")
	cmd.Flags().StringVar(&cf.jsonl, "doc.jsonl", "",
		"A file containing one JSON document per line")
	cmd.Flags().StringVar(&cf.idField, "doc.idfield", corpus.DefaultIdField,
		"The identifier field of JSON documents")
	cmd.Flags().StringVar(&cf.textField, "doc.textfield", corpus.DefaultTextField,
		"The text field of JSON documents")
}

func (cf *corpusFlags) load() ([]corpus.Document, error) {

	switch {
	case cf.jsonl != "":
		reader := corpus.NewJSONLReader(corpus.FieldConfig{
			IdField:   cf.idField,
			TextField: cf.textField,
		})
		return reader.ReadFile(cf.jsonl)

	case cf.docroot != "":
		docStream := make(chan corpus.Document)

		walker := new(corpus.DocWalker)
		walker.WalkDocuments(cf.docroot, cf.docpattern, docStream)

		docs := make([]corpus.Document, 0)
		for doc := range docStream {
			docs = append(docs, doc)
		}

		// Walk workers finish in arbitrary order.
		sort.Slice(docs, func(i, j int) bool {
			return docs[i].Id < docs[j].Id
		})
		return docs, nil
	}

	return nil, errors.New("one of --doc.root or --doc.jsonl is required")
}

type pipelineFlags struct {
	n         int
	separator string
	split     string
	strategy  string
	workers   int
}

func (pf *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&pf.n, "ngram.n", ngrams.DefaultN,
		"Window size")
	cmd.Flags().StringVar(&pf.separator, "ngram.separator", ngrams.DefaultSeparator,
		"Token-join delimiter")
	cmd.Flags().StringVar(&pf.split, "ngram.split", ngrams.DefaultSplitPattern,
		"Token boundary pattern")
	cmd.Flags().StringVar(&pf.strategy, "ngram.strategy", ngrams.StrategyDirect,
		"Window strategy (direct, shifted)")
	cmd.Flags().IntVar(&pf.workers, "ngram.workers", 1,
		"Number of documents processed concurrently")
}

func (pf *pipelineFlags) config() ngrams.Config {
	conf := ngrams.DefaultConfig()
	conf.N = pf.n
	conf.Separator = pf.separator
	conf.SplitPattern = pf.split
	conf.Strategy = pf.strategy
	conf.Workers = pf.workers
	return conf
}
