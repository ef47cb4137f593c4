package index

import "encoding/json"
import "fmt"
import "io"
import "sort"
import "github.com/cwacek/ngramengine/ngrams"
import log "github.com/cihub/seelog"

type DocInfo struct {
	Id         string `json:"id"`
	NgramCount int    `json:"ngrams"`
}

type DocInfoMap map[string]*DocInfo

/* An Index is a positional inverted index over n-gram records: each
distinct n-gram maps to the documents it occurs in and the window
start positions within each. */
type Index struct {
	lexicon *Lexicon

	TermCount   int
	DocumentMap DocInfoMap
}

func NewIndex() *Index {
	ix := new(Index)
	ix.lexicon = NewLexicon()
	ix.TermCount = 0
	ix.DocumentMap = make(DocInfoMap)
	return ix
}

func (ix *Index) String() string {
	return fmt.Sprintf("{NgramIndex terms:%d docs:%d}",
		ix.lexicon.Len(),
		ix.DocumentCount())
}

// Add registers a stream of records, in order.
func (ix *Index) Add(records []ngrams.Record) {

	for _, rec := range records {
		ix.lexicon.InsertRecord(rec)
		ix.TermCount += 1

		info, ok := ix.DocumentMap[rec.DocId]
		if !ok {
			info = &DocInfo{Id: rec.DocId}
			ix.DocumentMap[rec.DocId] = info
		}
		info.NgramCount += 1
	}

	log.Infof("Index now holds %d distinct ngrams across %d documents",
		ix.lexicon.Len(), ix.DocumentCount())
}

func (ix *Index) DocumentCount() int {
	return len(ix.DocumentMap)
}

func (ix *Index) FindTerm(text string) (*Term, bool) {
	return ix.lexicon.FindTerm(text)
}

func (ix *Index) Len() int {
	return ix.lexicon.Len()
}

// PrintLexicon writes each term with its posting list, followed by
// summary statistics over the document frequencies.
func (ix *Index) PrintLexicon(w io.Writer) {

	if ix.lexicon.Len() == 0 {
		io.WriteString(w, "Empty lexicon\n")
		return
	}

	df_array := make([]int, 0, ix.lexicon.Len())
	dfSum := 0
	i := 0

	ix.lexicon.Walk(func(term *Term) {
		i += 1
		_, err := io.WriteString(w,
			fmt.Sprintf("%d. '%s' [%d]: %s\n",
				i, term.Text(),
				term.Tf(), term.PostingList()))

		if err != nil {
			panic(err)
		}

		dfSum += term.Df()
		df_array = append(df_array, term.Df())
	})

	sort.Ints(df_array)

	statsFmt := `
  Term Count: %d
  Max DF:     %d
  Min DF:     %d
  Mean DF:    %0.2f
  Median DF:  %d
  `

	io.WriteString(w, fmt.Sprintf(statsFmt,
		ix.lexicon.Len(),
		df_array[len(df_array)-1],
		df_array[0],
		float64(dfSum)/float64(len(df_array)),
		df_array[len(df_array)/2]))
}

type posting struct {
	Term string `json:"term"`
	Doc  string `json:"doc"`
	Tf   int    `json:"tf"`
	Pos  []int  `json:"pos"`
}

// Save writes the whole index as JSON, one entry per (term, doc)
// pair, in lexicographic term order.
func (ix *Index) Save(w io.Writer) error {

	postings := make([]posting, 0, ix.lexicon.Len())

	ix.lexicon.Walk(func(term *Term) {
		for i := term.PostingList().Iterator(); i.Next(); {
			entry := i.Value()
			postings = append(postings, posting{
				Term: term.Text(),
				Doc:  entry.DocId(),
				Tf:   entry.Frequency(),
				Pos:  entry.Positions(),
			})
		}
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(postings)
}
