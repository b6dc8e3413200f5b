package fontio

import "fmt"

// UnreadableFontError reports a font path that is missing or whose contents
// could not be parsed as an SFNT font.
type UnreadableFontError struct {
	Path  string
	Cause error
}

func (e *UnreadableFontError) Error() string {
	return fmt.Sprintf("unreadable font: %s: %v", e.Path, e.Cause)
}

func (e *UnreadableFontError) Unwrap() error {
	return e.Cause
}

// TableError reports malformed table-directory structure while splicing
// tables in an SFNT binary.
type TableError struct {
	Message string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("sfnt table error: %s", e.Message)
}
