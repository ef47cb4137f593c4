package corpus

import "fmt"
import "strconv"

// ImplicitId tags records extracted from a bare text string passed
// without a document collection.
const ImplicitId = "doc0"

// Default field names for map-shaped document entries.
const (
	DefaultIdField   = "doc_id"
	DefaultTextField = "text"
)

// A Document is one unit of text with an associated identifier.
// Identifiers need not be unique within a collection; downstream
// records are tagged, never deduplicated.
type Document struct {
	Id   string
	Text string
}

func (d Document) String() string {
	return fmt.Sprintf("{Doc: %s, %d bytes}", d.Id, len(d.Text))
}

// FromText wraps a bare text string for single-document callers.
func FromText(text string) Document {
	return Document{Id: ImplicitId, Text: text}
}

/* FromMap builds a Document from a map-shaped entry. The position is
the entry's index within the enclosing collection and is used only
when reporting which entry was malformed. */
func FromMap(entry map[string]interface{}, idField, textField string, position int) (Document, error) {

	var doc Document

	rawId, ok := entry[idField]
	if !ok {
		return doc, NewMissingFieldError(position, idField)
	}

	switch id := rawId.(type) {
	case string:
		doc.Id = id
	case int:
		doc.Id = strconv.Itoa(id)
	case int64:
		doc.Id = strconv.FormatInt(id, 10)
	case float64:
		// encoding/json decodes all numbers as float64
		doc.Id = strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return doc, NewInvalidInputError(
			fmt.Sprintf("document %d: field '%s' is not usable as an identifier",
				position, idField))
	}

	rawText, ok := entry[textField]
	if !ok {
		return doc, NewMissingFieldError(position, textField)
	}

	if text, ok := rawText.(string); ok {
		doc.Text = text
	} else {
		return doc, NewInvalidInputError(
			fmt.Sprintf("document %d: field '%s' is not a string", position, textField))
	}

	return doc, nil
}

// FromMaps converts a whole collection, stopping at the first
// malformed entry.
func FromMaps(entries []map[string]interface{}, idField, textField string) ([]Document, error) {

	docs := make([]Document, 0, len(entries))

	for i, entry := range entries {
		doc, err := FromMap(entry, idField, textField, i)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
