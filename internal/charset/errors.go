package charset

import "fmt"

// CorpusReadError reports an unreadable corpus file. Unlike malformed UTF-8
// inside a readable file, an unreadable path fails the run.
type CorpusReadError struct {
	Path  string
	Cause error
}

func (e *CorpusReadError) Error() string {
	return fmt.Sprintf("corpus file unreadable: %s: %v", e.Path, e.Cause)
}

func (e *CorpusReadError) Unwrap() error {
	return e.Cause
}
