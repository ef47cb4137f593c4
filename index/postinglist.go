package index

import "sort"
import "strconv"
import "strings"
import "github.com/ryszard/goskiplist/skiplist"
import "github.com/cwacek/ngramengine/ngrams"
import log "github.com/cihub/seelog"

type PostingEntry interface {
	DocId() string
	Frequency() int
	Positions() []int
	AddPosition(int)
	String() string
}

type PostingList interface {
	GetEntry(docid string) (PostingEntry, bool)
	Insert(rec ngrams.Record) bool
	Iterator() PostingIterator
	Len() int
	String() string
}

type PostingIterator interface {
	Next() bool
	Key() string
	Value() PostingEntry
}

type pl_iterator struct {
	sk_iter skiplist.Iterator
}

func (it *pl_iterator) Value() PostingEntry {
	return it.sk_iter.Value().(PostingEntry)
}

func (it *pl_iterator) Next() bool {
	return it.sk_iter.Next()
}

func (it *pl_iterator) Key() string {
	return it.sk_iter.Key().(string)
}

// A positional posting list, keyed by document identifier, holding
// the window start positions of one n-gram per document.
type positional_pl struct {
	list   *skiplist.SkipList
	length int
}

func NewPositionalPostingList() PostingList {
	pl := new(positional_pl)
	pl.list = skiplist.NewStringMap()
	return pl
}

func (pl *positional_pl) Iterator() PostingIterator {
	iter := new(pl_iterator)
	iter.sk_iter = pl.list.Iterator()
	return iter
}

func (pl *positional_pl) Len() int {
	return pl.length
}

func (pl *positional_pl) GetEntry(docid string) (PostingEntry, bool) {
	if elem, ok := pl.list.Get(docid); ok {
		return elem.(*skiplist_entry), true
	}
	return nil, false
}

/* Insert records one occurrence. Returns true if this was the first
posting for the record's document. */
func (pl *positional_pl) Insert(rec ngrams.Record) bool {

	if entry, ok := pl.GetEntry(rec.DocId); ok {
		log.Debugf("%s exists. Adding position %d", rec.DocId, rec.Position)
		entry.AddPosition(rec.Position)
		return false
	}

	entry := NewPositionalEntry(rec.DocId)
	entry.AddPosition(rec.Position)

	pl.list.Set(entry.DocId(), entry)
	pl.length += 1
	return true
}

func (pl positional_pl) String() string {
	entries := make([]string, 0)

	for i := pl.list.Iterator(); i.Next(); {
		entries = append(entries, i.Value().(*skiplist_entry).String())
	}
	return strings.Join(entries, " ")
}

type skiplist_entry struct {
	docId     string
	positions []int
}

func NewPositionalEntry(docId string) PostingEntry {
	entry := new(skiplist_entry)
	entry.docId = docId
	entry.positions = make([]int, 0)
	return entry
}

func (p *skiplist_entry) String() string {
	parts := make([]string, 0, 2)

	parts = append(parts, p.docId)
	parts = append(parts, strconv.Itoa(len(p.positions)))

	return "(" + strings.Join(parts, ", ") + ")"
}

func (p *skiplist_entry) Frequency() int {
	return len(p.positions)
}

func (p *skiplist_entry) Positions() []int {
	return p.positions
}

func (p *skiplist_entry) DocId() string {
	return p.docId
}

func (p *skiplist_entry) AddPosition(pos int) {
	p.positions = append(p.positions, pos)
	sort.Ints(p.positions)
}
