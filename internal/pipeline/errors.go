package pipeline

import "fmt"

// MergeError reports a failed external merge invocation, preserving the
// tool's own diagnostic output.
type MergeError struct {
	Command string
	Output  string
	Cause   error
}

func (e *MergeError) Error() string {
	msg := fmt.Sprintf("external merge failed.\nCommand: %s", e.Command)
	if e.Output != "" {
		msg += fmt.Sprintf("\nOutput:\n%s", e.Output)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf("\nCause: %v", e.Cause)
	}
	return msg
}

func (e *MergeError) Unwrap() error {
	return e.Cause
}

// NothingToMergeError reports that partitioning assigned no codepoint to any
// font, leaving no subset artifacts to merge.
type NothingToMergeError struct{}

func (e *NothingToMergeError) Error() string {
	return "no target codepoint is covered by any font in the prefer order"
}
