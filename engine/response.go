package engine

import "github.com/cwacek/ngramengine/ngrams"

/* A Request asks for the n-grams of one or more documents. Either
Docs or Text must be set; Docs wins when both are. Zero-valued
options fall back to the engine defaults. */
type Request struct {
	Docs      []map[string]interface{} `json:"docs"`
	Text      string                   `json:"text"`
	N         int                      `json:"n"`
	Separator string                   `json:"separator"`
	Strategy  string                   `json:"strategy"`
	IdField   string                   `json:"id_field"`
	TextField string                   `json:"text_field"`
}

// A Response carries the ordered record sequence for one request, or
// the first error encountered.
type Response struct {
	Records []ngrams.Record `json:"records"`
	Error   string          `json:"error,omitempty"`
}

func ErrorResponse(msg string) *Response {
	return &Response{nil, msg}
}

func NewResponse(records []ngrams.Record) *Response {
	return &Response{records, ""}
}

func (r *Response) Len() int {
	return len(r.Records)
}
