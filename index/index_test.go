package index

import "bytes"
import "encoding/json"
import "flag"
import "os"
import "testing"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "github.com/cwacek/ngramengine/corpus"
import "github.com/cwacek/ngramengine/logging"
import "github.com/cwacek/ngramengine/ngrams"

func TestMain(m *testing.M) {
	flag.Parse()
	logging.SetupTestLogging()
	os.Exit(m.Run())
}

func testRecords(t *testing.T) []ngrams.Record {
	proc, err := ngrams.NewBatchProcessor(ngrams.DefaultConfig())
	require.NoError(t, err)

	return proc.Process([]corpus.Document{
		{Id: "A", Text: "to be or not to be"},
		{Id: "B", Text: "to be is to do"},
	})
}

func TestIndexAdd(t *testing.T) {

	ix := NewIndex()
	ix.Add(testRecords(t))

	assert.Equal(t, 2, ix.DocumentCount())
	assert.Equal(t, 9, ix.TermCount)

	// "to be" occurs twice in A and once in B
	term, ok := ix.FindTerm("to be")
	require.True(t, ok)
	assert.Equal(t, 3, term.Tf())
	assert.Equal(t, 2, term.Df())

	entry, ok := term.PostingList().GetEntry("A")
	require.True(t, ok)
	assert.Equal(t, []int{0, 4}, entry.Positions())

	entry, ok = term.PostingList().GetEntry("B")
	require.True(t, ok)
	assert.Equal(t, []int{0}, entry.Positions())

	_, ok = ix.FindTerm("be to")
	assert.False(t, ok)
}

func TestIndexDocumentMap(t *testing.T) {

	ix := NewIndex()
	ix.Add(testRecords(t))

	require.Contains(t, ix.DocumentMap, "A")
	require.Contains(t, ix.DocumentMap, "B")
	assert.Equal(t, 5, ix.DocumentMap["A"].NgramCount)
	assert.Equal(t, 4, ix.DocumentMap["B"].NgramCount)
}

func TestLexiconWalkIsSorted(t *testing.T) {

	ix := NewIndex()
	ix.Add(testRecords(t))

	var last string
	ix.lexicon.Walk(func(term *Term) {
		if last != "" {
			assert.Less(t, last, term.Text())
		}
		last = term.Text()
	})
}

func TestPrintLexicon(t *testing.T) {

	ix := NewIndex()

	buf := new(bytes.Buffer)
	ix.PrintLexicon(buf)
	assert.Contains(t, buf.String(), "Empty lexicon")

	ix.Add(testRecords(t))

	buf.Reset()
	ix.PrintLexicon(buf)
	assert.Contains(t, buf.String(), "'to be'")
	assert.Contains(t, buf.String(), "Term Count:")
}

func TestIndexSave(t *testing.T) {

	ix := NewIndex()
	ix.Add(testRecords(t))

	buf := new(bytes.Buffer)
	require.NoError(t, ix.Save(buf))

	var postings []struct {
		Term string `json:"term"`
		Doc  string `json:"doc"`
		Tf   int    `json:"tf"`
		Pos  []int  `json:"pos"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &postings))

	found := false
	for _, p := range postings {
		if p.Term == "to be" && p.Doc == "A" {
			found = true
			assert.Equal(t, 2, p.Tf)
			assert.Equal(t, []int{0, 4}, p.Pos)
		}
	}
	assert.True(t, found, "expected a posting for ('to be', A)")
}
