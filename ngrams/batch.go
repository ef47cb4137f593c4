package ngrams

import "sync"
import log "github.com/cihub/seelog"
import "github.com/cwacek/ngramengine/corpus"

/* A BatchProcessor applies the full pipeline to an ordered
collection of documents. Each document is processed independently;
its records are tagged with that document's identifier. The output
keeps documents in input order and windows in start-index order,
whether documents are processed sequentially or by a worker pool. */
type BatchProcessor struct {
	gen     *Generator
	workers int
}

func NewBatchProcessor(conf Config) (*BatchProcessor, error) {

	gen, err := NewGenerator(conf)
	if err != nil {
		return nil, err
	}

	b := new(BatchProcessor)
	b.gen = gen
	b.workers = conf.Workers
	return b, nil
}

// Process emits every document's records. A document yielding zero
// windows contributes nothing and does not affect any other
// document.
func (b *BatchProcessor) Process(docs []corpus.Document) []Record {

	if b.workers > 1 && len(docs) > 1 {
		return b.processParallel(docs)
	}

	records := make([]Record, 0)
	for _, doc := range docs {
		records = append(records, b.gen.Ngrams(doc.Id, doc.Text)...)
	}

	log.Infof("Extracted %d ngrams from %d documents", len(records), len(docs))
	return records
}

/* Documents have no data dependency on each other, so they are
fanned out to workers by collection index. Results land in a slice
indexed the same way, which restores input order no matter when each
worker finishes. */
func (b *BatchProcessor) processParallel(docs []corpus.Document) []Record {

	perDoc := make([][]Record, len(docs))

	jobs := make(chan int)
	wg := new(sync.WaitGroup)

	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perDoc[i] = b.gen.Ngrams(docs[i].Id, docs[i].Text)
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	records := make([]Record, 0)
	for _, recs := range perDoc {
		records = append(records, recs...)
	}

	log.Infof("Extracted %d ngrams from %d documents (%d workers)",
		len(records), len(docs), b.workers)
	return records
}

// ProcessText handles the single-document case: a bare text string
// processed under an implicit identifier.
func (b *BatchProcessor) ProcessText(text string) []Record {
	return b.gen.Ngrams(corpus.ImplicitId, text)
}

// Texts flattens records to their n-gram strings, for callers that
// only want the single-document list shape.
func Texts(records []Record) []string {
	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.Text
	}
	return texts
}
