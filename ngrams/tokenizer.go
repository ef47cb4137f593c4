package ngrams

import "regexp"

// A Tokenizer splits one document's raw text into an ordered token
// sequence.
type Tokenizer interface {
	Tokenize(text string) []string
}

/* A SplitTokenizer splits on maximal runs of a boundary pattern,
whitespace by default. Leading and trailing runs produce no empty
tokens, and empty input produces an empty sequence. */
type SplitTokenizer struct {
	boundary *regexp.Regexp
}

func NewSplitTokenizer(pattern string) (*SplitTokenizer, error) {

	if pattern == "" {
		pattern = DefaultSplitPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, NewInvalidConfigError("bad token boundary pattern: " + err.Error())
	}

	t := new(SplitTokenizer)
	t.boundary = re
	return t, nil
}

func (t *SplitTokenizer) Tokenize(text string) []string {

	parts := t.boundary.Split(text, -1)

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}

	return tokens
}
