package ngrams

import "fmt"
import log "github.com/cihub/seelog"

/* A Record is one assembled n-gram, tagged with its source document
and the start index of its window within that document's token
sequence. */
type Record struct {
	DocId    string `json:"doc_id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

func (r Record) String() string {
	return fmt.Sprintf("(%s, '%s'@%d)", r.DocId, r.Text, r.Position)
}

/* A Generator runs Tokenizer -> Strategy -> Assembler for one
document at a time. It is immutable after construction; every method
is safe for concurrent use. */
type Generator struct {
	n     int
	strat Strategy
	asm   Assembler
	tok   Tokenizer
}

// NewGenerator validates conf and builds a generator. All
// configuration errors surface here, before any document is touched.
func NewGenerator(conf Config) (*Generator, error) {

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	strat, err := StrategyByName(conf.Strategy)
	if err != nil {
		return nil, err
	}

	tok, err := NewSplitTokenizer(conf.SplitPattern)
	if err != nil {
		return nil, err
	}

	g := new(Generator)
	g.n = conf.N
	g.strat = strat
	g.asm = Assembler{Separator: conf.Separator}
	g.tok = tok
	return g, nil
}

func (g *Generator) N() int {
	return g.n
}

/* Ngrams produces the ordered records for a single document. A
document with fewer than n tokens yields no records; that is not an
error. */
func (g *Generator) Ngrams(docid, text string) []Record {

	tokens := g.tok.Tokenize(text)
	windows := g.strat.Windows(tokens, g.n)

	log.Debugf("Document %s: %d tokens, %d windows", docid, len(tokens), len(windows))

	records := make([]Record, len(windows))
	for i, window := range windows {
		records[i] = Record{
			DocId:    docid,
			Text:     g.asm.Join(window),
			Position: i,
		}
	}

	return records
}
