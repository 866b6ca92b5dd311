// Package export turns a résumé document into downloadable files.
package export

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/persistence"
	"github.com/jonathan/resume-studio/internal/types"
)

// Exporter encodes a document in one file format.
type Exporter interface {
	// Format is the format name, which is also the file extension.
	Format() string
	Export(doc types.ResumeDocument) ([]byte, error)
}

var exporters = map[string]Exporter{
	FormatText: TextExporter{},
}

// ForFormat returns the exporter for format (case-insensitive).
func ForFormat(format string) (Exporter, error) {
	if e, ok := exporters[strings.ToLower(format)]; ok {
		return e, nil
	}
	return nil, &UnsupportedFormatError{Format: format}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FileName derives the download name from the candidate's name:
// "Alex Doe" -> "Alex_Doe_Resume.txt".
func FileName(doc types.ResumeDocument, ext string) string {
	return whitespaceRun.ReplaceAllString(doc.Basics.Name, "_") + "_Resume." + ext
}

// WriteFile exports doc with e and writes it to path. Encoding happens before
// anything touches the disk, and the write itself is atomic, so a failure never
// leaves a partial file.
func WriteFile(e Exporter, doc types.ResumeDocument, path string) error {
	data, err := e.Export(doc)
	if err != nil {
		return &Error{Format: e.Format(), Message: "encoding failed", Cause: err}
	}
	if err := persistence.WriteFileAtomic(path, data); err != nil {
		return &Error{Format: e.Format(), Message: "failed to write " + path, Cause: err}
	}
	return nil
}
