// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/sections"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxIssuesToShow caps the issue list of a report box
	maxIssuesToShow = 12
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to width runes, marking the cut with "...".
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// PrintReport outputs the score, the breakdown and the issues of an evaluation.
func (p *Printer) PrintReport(title string, report types.Report) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ATS score: %d/100\n\n", report.Score))
	b := report.Breakdown
	sb.WriteString(fmt.Sprintf("Parse-ability  %2d/40\n", b.Parseability))
	sb.WriteString(fmt.Sprintf("Content        %2d/30\n", b.Content))
	sb.WriteString(fmt.Sprintf("Completeness   %2d/15\n", b.Completeness))
	sb.WriteString(fmt.Sprintf("Job match      %2d/15\n", b.JobMatch))

	if len(report.Issues) == 0 {
		sb.WriteString("\nNo issues found")
	} else {
		sb.WriteString(fmt.Sprintf("\n%d issue(s):\n", len(report.Issues)))
		count := min(len(report.Issues), maxIssuesToShow)
		for i := 0; i < count; i++ {
			issue := report.Issues[i]
			sb.WriteString(fmt.Sprintf("\n[%s] %-8s %s\n", issue.ID, issue.Severity, issue.Title))
			sb.WriteString(fmt.Sprintf("  %s: %s\n", issue.ImpactedSection, issue.SuggestedFix))
		}
		if len(report.Issues) > maxIssuesToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more issues\n", len(report.Issues)-maxIssuesToShow))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// ScoreRow is one line of a multi-résumé score table.
type ScoreRow struct {
	ResumeID string
	Title    string
	Score    int
	Issues   int
}

// PrintScoreTable outputs one line per résumé with its score and issue count.
func (p *Printer) PrintScoreTable(rows []ScoreRow) {
	if len(rows) == 0 {
		return
	}
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%3d  %-3d  %-30s %s\n", row.Score, row.Issues, clip(row.Title, 30), row.ResumeID))
	}
	p.printBox("SCORE  ISSUES  TITLE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumes lists every résumé, marking the selected one with "*".
func (p *Printer) PrintResumes(state *types.State) {
	if state == nil || len(state.Resumes) == 0 {
		p.printBox("RESUMES", "No resumes yet")
		return
	}

	var sb strings.Builder
	for _, r := range state.Resumes {
		marker := " "
		if r.ID == state.CurrentResumeID {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s  %s (%d version(s))", marker, r.ID, r.Title, len(r.Versions))
		if r.IsArchived {
			line += " [archived]"
		}
		sb.WriteString(line + "\n")
	}
	p.printBox("RESUMES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVersion outputs the outline of a version: basics, then every section with its
// ids so they can be used in editing commands.
func (p *Printer) PrintVersion(v types.ResumeVersion) {
	var sb strings.Builder
	b := v.Document.Basics

	sb.WriteString(fmt.Sprintf("Version:  %s (%s)\n", v.Name, v.ID))
	sb.WriteString(fmt.Sprintf("Template: %s\n\n", v.Settings.TemplateID))
	sb.WriteString(fmt.Sprintf("%s - %s\n", b.Name, b.Label))
	sb.WriteString(fmt.Sprintf("%s | %s | %s\n", b.Email, b.Phone, b.Location))
	for _, prof := range b.Profiles {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", prof.Network, prof.URL))
	}

	for _, sec := range v.Document.Sections {
		visibility := ""
		if !sec.IsVisible {
			visibility = " [hidden]"
		}
		sb.WriteString(fmt.Sprintf("\n%s  %s (%s)%s\n", sec.ID, sec.Title, sec.Type, visibility))
		for _, item := range sec.Items {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", item.ID, itemHeadline(item)))
			for i, bullet := range item.Bullets {
				sb.WriteString(fmt.Sprintf("    %d. %s\n", i, bullet))
			}
			for _, f := range item.Fields {
				sb.WriteString(fmt.Sprintf("    %s  %s: %s\n", f.ID, f.Label, f.Value))
			}
		}
	}

	p.printBox(strings.ToUpper(v.Document.Basics.Name), strings.TrimSuffix(sb.String(), "\n"))
}

func itemHeadline(item types.Item) string {
	if label := sections.PrimaryLabel(item); label != "" {
		if org := sections.SecondaryLabel(item); org != "" {
			return label + " @ " + org
		}
		return label
	}
	if len(item.Skills) > 0 {
		return strings.Join(item.Skills, ", ")
	}
	return "(untitled)"
}

// PrintTemplates lists the template registry with ATS risk levels.
func (p *Printer) PrintTemplates(list []templates.Template) {
	var sb strings.Builder
	for _, t := range list {
		sb.WriteString(fmt.Sprintf("%-14s %-22s %-9s %s\n", t.ID, t.Name, t.Category, t.RiskLevel))
	}
	p.printBox("TEMPLATES", strings.TrimSuffix(sb.String(), "\n"))
}
