package index

import "fmt"
import "math"
import "github.com/ryszard/goskiplist/skiplist"
import "github.com/cwacek/ngramengine/ngrams"
import log "github.com/cihub/seelog"

// A Term is one distinct n-gram with its collection-wide frequency
// and positional posting list.
type Term struct {
	text string
	tf   int
	pl   PostingList
}

func NewTermFromRecord(rec ngrams.Record) *Term {
	term := new(Term)
	term.text = rec.Text
	term.tf = 0 // because we increment with Register
	term.pl = NewPositionalPostingList()

	term.Register(rec)
	return term
}

func (t *Term) Text() string {
	return t.text
}

func (t *Term) Register(rec ngrams.Record) {
	log.Debugf("Registering %s in Term", rec)
	t.pl.Insert(rec)
	t.tf += 1
}

func (t *Term) PostingList() PostingList {
	return t.pl
}

// Tf is the collection-wide occurrence count.
func (t *Term) Tf() int {
	return t.tf
}

// Df is the number of documents the term occurs in.
func (t *Term) Df() int {
	return t.pl.Len()
}

func (t *Term) Idf(totalDocCount int) float64 {
	return 1 + math.Log10(float64(totalDocCount)/float64(t.Df()))
}

func (t Term) String() string {
	return fmt.Sprintf("['%s' %s]", t.text, t.pl.String())
}

/* A Lexicon maps n-gram text to terms, kept sorted by text so walks
are deterministic. */
type Lexicon struct {
	terms *skiplist.SkipList
}

func NewLexicon() *Lexicon {
	lex := new(Lexicon)
	lex.terms = skiplist.NewStringMap()
	return lex
}

func (l *Lexicon) FindTerm(text string) (*Term, bool) {

	if elem, ok := l.terms.Get(text); ok {
		return elem.(*Term), true
	}

	return nil, false
}

/* Insert a record into the lexicon, creating the term if this is its
first occurrence. Returns the updated term. */
func (l *Lexicon) InsertRecord(rec ngrams.Record) *Term {

	if term, ok := l.FindTerm(rec.Text); ok {
		log.Debugf("Found '%s' in the lexicon", rec.Text)
		term.Register(rec)
		return term
	}

	term := NewTermFromRecord(rec)
	log.Debugf("Created new term: %s. Inserting into lexicon", term.String())
	l.terms.Set(term.Text(), term)
	return term
}

func (l *Lexicon) Len() int {
	return l.terms.Len()
}

// Walk visits every term in lexicographic order.
func (l *Lexicon) Walk(fn func(*Term)) {
	for i := l.terms.Iterator(); i.Next(); {
		fn(i.Value().(*Term))
	}
}
