package persistence

import "fmt"

// LoadError represents a failure to read the storage file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents a failure to write the storage file. The previous file, if
// any, is left intact.
type SaveError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Path)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
