package export

import "fmt"

// Error represents a failed export. No output file is left behind when it is
// returned.
type Error struct {
	Format  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s export failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s export failed: %s", e.Format, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError is returned for formats without an exporter.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q", e.Format)
}
