package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport("ATS REPORT", types.Report{
		Score: 72,
		Issues: []types.Issue{
			{ID: "P01", Severity: types.SeverityCritical, Title: "Missing Contact: Email", ImpactedSection: "Header", SuggestedFix: "Add a professional email address."},
		},
		Breakdown: types.Breakdown{Parseability: 36, Content: 30, Completeness: 15, JobMatch: 12},
	})
	output := buf.String()

	assert.Contains(t, output, "ATS REPORT")
	assert.Contains(t, output, "ATS score: 72/100")
	assert.Contains(t, output, "Parse-ability  36/40")
	assert.Contains(t, output, "[P01] CRITICAL Missing Contact: Email")
	assert.Contains(t, output, "Header: Add a professional email address.")
}

func TestPrintReport_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport("ATS REPORT", types.Report{Score: 100, Issues: []types.Issue{}})

	assert.Contains(t, buf.String(), "No issues found")
}

func TestPrintReport_CapsIssueList(t *testing.T) {
	issues := make([]types.Issue, maxIssuesToShow+3)
	for i := range issues {
		issues[i] = types.Issue{ID: fmt.Sprintf("C%02d", i), Severity: types.SeverityLow, Title: "Bullet Too Brief"}
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport("ATS REPORT", types.Report{Issues: issues})

	assert.Contains(t, buf.String(), "... and 3 more issues")
}

func TestPrintBox_ClipsLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("é", boxWidth*2))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintResumes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumes(&types.State{
		Resumes: []types.Resume{
			{ID: "r1", Title: "Backend", Versions: make([]types.ResumeVersion, 2)},
			{ID: "r2", Title: "Old", Versions: make([]types.ResumeVersion, 1), IsArchived: true},
		},
		CurrentResumeID: "r1",
	})
	output := buf.String()

	assert.Contains(t, output, "* r1  Backend (2 version(s))")
	assert.Contains(t, output, "  r2  Old (1 version(s)) [archived]")
}

func TestPrintResumes_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumes(nil)

	assert.Contains(t, buf.String(), "No resumes yet")
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintVersion(types.ResumeVersion{
		ID:   "v1",
		Name: "V1.0",
		Document: types.ResumeDocument{
			Basics: types.Basics{Name: "Alex Doe", Label: "Engineer"},
			Sections: []types.Section{
				{ID: "s1", Type: types.SectionExperience, Title: "Experience", IsVisible: true, Items: []types.Item{
					{ID: "i1", Company: "Acme", Role: "Lead", Bullets: []string{"Cut costs 20%"}},
				}},
				{ID: "s2", Type: types.SectionSkills, Title: "Skills", Items: []types.Item{
					{ID: "i2", Skills: []string{"Go", "SQL"}},
				}},
				{ID: "s3", Type: types.SectionCustom, Title: "Extra", IsVisible: true, Items: []types.Item{
					{ID: "i3", Fields: []types.CustomField{{ID: "f1", Label: "Clearance", Value: "TS"}}},
				}},
			},
		},
		Settings: types.DefaultSettings(),
	})
	output := buf.String()

	assert.Contains(t, output, "ALEX DOE")
	assert.Contains(t, output, "s1  Experience (experience)")
	assert.Contains(t, output, "i1  Lead @ Acme")
	assert.Contains(t, output, "0. Cut costs 20%")
	assert.Contains(t, output, "s2  Skills (skills) [hidden]")
	assert.Contains(t, output, "i2  Go, SQL")
	assert.Contains(t, output, "f1  Clearance: TS")
	assert.Contains(t, output, "i3  (untitled)")
}

func TestPrintTemplates(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTemplates(templates.Registry())

	assert.Contains(t, buf.String(), "dark-console")
	assert.Contains(t, buf.String(), "RISKY")
}

func TestPrintScoreTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreTable(nil)
	assert.Empty(t, buf.String())

	p.PrintScoreTable([]ScoreRow{{ResumeID: "r1", Title: "Backend", Score: 88, Issues: 3}})
	assert.Contains(t, buf.String(), " 88  3    Backend")
}
