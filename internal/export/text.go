package export

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/sections"
	"github.com/jonathan/resume-studio/internal/types"
)

// FormatText is the plain-text format name.
const FormatText = "txt"

// TextExporter renders a plain-text résumé: an upper-cased header, the summary, then
// every visible section in document order.
type TextExporter struct{}

// Format implements Exporter.
func (TextExporter) Format() string { return FormatText }

// Export implements Exporter. It never fails.
func (TextExporter) Export(doc types.ResumeDocument) ([]byte, error) {
	var sb strings.Builder
	b := doc.Basics

	sb.WriteString(strings.ToUpper(b.Name) + "\n")
	sb.WriteString(b.Label + "\n")
	sb.WriteString(b.Email + " | " + b.Phone + " | " + b.Location + "\n")
	sb.WriteString(b.URL + "\n\n")

	if b.Summary != "" {
		sb.WriteString("SUMMARY\n-------\n" + b.Summary + "\n\n")
	}

	for _, sec := range doc.Sections {
		if !sec.IsVisible {
			continue
		}
		sb.WriteString(strings.ToUpper(sec.Title) + "\n")
		sb.WriteString(strings.Repeat("-", utf8.RuneCountInString(sec.Title)) + "\n")

		for _, item := range sec.Items {
			writeTextItem(&sb, sec.Type, item)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

func writeTextItem(sb *strings.Builder, t types.SectionType, item types.Item) {
	switch {
	case sections.UsesEntryLayout(t):
		sb.WriteString(sections.PrimaryLabel(item) + "\n")
		sb.WriteString(sections.SecondaryLabel(item) + " | " + sections.DateRange(item) + "\n")
		for _, bullet := range item.Bullets {
			if bullet != "" {
				sb.WriteString("• " + bullet + "\n")
			}
		}
	case t == types.SectionSkills:
		sb.WriteString(item.Name + ": " + strings.Join(item.Skills, ", ") + "\n")
	default:
		sb.WriteString(sections.SimpleLabel(item) + "\n")
		if item.Description != "" {
			sb.WriteString(item.Description + "\n")
		}
	}
}
