package ingestion

import "fmt"

// ReadError represents a failure to obtain job text from a file, stdin or URL.
type ReadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job text from %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("job text from %s: %s", e.Source, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
