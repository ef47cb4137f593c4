package corpus

import "bufio"
import "bytes"
import "encoding/json"
import "fmt"
import "io"
import "os"
import log "github.com/cihub/seelog"

// maxLineBytes bounds a single JSON document line.
const maxLineBytes = 16 * 1024 * 1024

// FieldConfig names the identifier and text fields of map-shaped
// document entries. Empty values fall back to the defaults.
type FieldConfig struct {
	IdField   string
	TextField string
}

func (fc FieldConfig) idField() string {
	if fc.IdField == "" {
		return DefaultIdField
	}
	return fc.IdField
}

func (fc FieldConfig) textField() string {
	if fc.TextField == "" {
		return DefaultTextField
	}
	return fc.TextField
}

/* A JSONLReader reads a corpus stored as one JSON object per line.
Blank lines are skipped. Entries keep their collection position, so
errors name the offending document. */
type JSONLReader struct {
	fields FieldConfig
}

func NewJSONLReader(fields FieldConfig) *JSONLReader {
	r := new(JSONLReader)
	r.fields = fields
	return r
}

func (r *JSONLReader) Read(rd io.Reader) ([]Document, error) {

	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	docs := make([]Document, 0)
	lineno := 0

	for scanner.Scan() {
		lineno += 1

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry map[string]interface{}
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, NewInvalidInputError(
				fmt.Sprintf("line %d: not a JSON object: %v", lineno, err))
		}

		doc, err := FromMap(entry, r.fields.idField(), r.fields.textField(), len(docs))
		if err != nil {
			return nil, err
		}

		log.Debugf("Read document %s from line %d", doc.Id, lineno)
		docs = append(docs, doc)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	log.Infof("Read %d documents from %d lines", len(docs), lineno)
	return docs, nil
}

func (r *JSONLReader) ReadFile(path string) ([]Document, error) {

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return r.Read(file)
}
