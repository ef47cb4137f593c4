package corpus

import "fmt"

/* A MissingFieldError indicates that an entry in a document
collection lacked the configured identifier or text field. Position
is the entry's index in the input collection. */
type MissingFieldError struct {
	Position int
	Field    string
}

func NewMissingFieldError(position int, field string) (e *MissingFieldError) {
	e = new(MissingFieldError)
	e.Position = position
	e.Field = field
	return e
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("document %d is missing field '%s'", e.Position, e.Field)
}

// An InvalidInputError indicates that a document entry was present
// but not usable, e.g. a text field holding something other than a
// string.
type InvalidInputError struct {
	msg string
}

func NewInvalidInputError(msg string) (e *InvalidInputError) {
	e = new(InvalidInputError)
	e.msg = msg
	return e
}

func (e *InvalidInputError) Error() string {
	return e.msg
}
