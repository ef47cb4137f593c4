package ngrams

import "strings"

// An Assembler joins each window's tokens into a single delimited
// string, preserving token order.
type Assembler struct {
	Separator string
}

func (a Assembler) Join(window []string) string {
	return strings.Join(window, a.Separator)
}
