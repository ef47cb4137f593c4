package ngrams

// An InvalidConfigError indicates an unusable pipeline configuration:
// a non-positive window size, an unknown strategy, or a malformed
// token boundary pattern. It is always raised before any document is
// processed.
type InvalidConfigError struct {
	msg string
}

func NewInvalidConfigError(msg string) (e *InvalidConfigError) {
	e = new(InvalidConfigError)
	e.msg = msg
	return e
}

func (e *InvalidConfigError) Error() string {
	return e.msg
}
