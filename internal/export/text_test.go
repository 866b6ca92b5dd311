package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func exportDocument() types.ResumeDocument {
	return types.ResumeDocument{
		Basics: types.Basics{
			Name:     "Alex  Doe",
			Label:    "Staff Engineer",
			Email:    "alex@example.com",
			Phone:    "555-0100",
			Location: "Denver, CO",
			URL:      "https://alexdoe.dev",
			Summary:  "Builds payment systems.",
		},
		Sections: []types.Section{
			{ID: "exp", Type: types.SectionExperience, Title: "Experience", IsVisible: true, Items: []types.Item{
				{ID: "j1", Company: "Acme", Role: "Engineer", StartDate: "2020", EndDate: "Present", Bullets: []string{"Cut costs 20%", ""}},
			}},
			{ID: "hidden", Type: types.SectionAwards, Title: "Awards", IsVisible: false, Items: []types.Item{
				{ID: "a1", Title: "Secret Award"},
			}},
			{ID: "edu", Type: types.SectionEducation, Title: "Education", IsVisible: true, Items: []types.Item{
				{ID: "e1", Institution: "State University", Degree: "BSc", EndDate: "2014"},
			}},
			{ID: "skl", Type: types.SectionSkills, Title: "Skills", IsVisible: true, Items: []types.Item{
				{ID: "s1", Name: "Languages", Skills: []string{"Go", "SQL"}},
			}},
			{ID: "cert", Type: types.SectionCertifications, Title: "Certs", IsVisible: true, Items: []types.Item{
				{ID: "c1", Title: "CKA", Description: "Kubernetes administrator"},
			}},
		},
	}
}

func TestTextExporter_Export(t *testing.T) {
	out, err := TextExporter{}.Export(exportDocument())
	require.NoError(t, err)

	expected := "ALEX  DOE\n" +
		"Staff Engineer\n" +
		"alex@example.com | 555-0100 | Denver, CO\n" +
		"https://alexdoe.dev\n\n" +
		"SUMMARY\n-------\nBuilds payment systems.\n\n" +
		"EXPERIENCE\n----------\n" +
		"Engineer\n" +
		"Acme | 2020 - Present\n" +
		"• Cut costs 20%\n\n\n" +
		"EDUCATION\n---------\n" +
		"BSc\n" +
		"State University |  - 2014\n\n\n" +
		"SKILLS\n------\n" +
		"Languages: Go, SQL\n\n\n" +
		"CERTS\n-----\n" +
		"CKA\n" +
		"Kubernetes administrator\n\n\n"
	assert.Equal(t, expected, string(out))
	assert.NotContains(t, string(out), "Secret Award")
}

func TestTextExporter_NoSummary(t *testing.T) {
	doc := exportDocument()
	doc.Basics.Summary = ""
	doc.Sections = nil

	out, err := TextExporter{}.Export(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "SUMMARY")
}

func TestForFormat(t *testing.T) {
	e, err := ForFormat("TXT")
	require.NoError(t, err)
	assert.Equal(t, FormatText, e.Format())

	_, err = ForFormat("docx")
	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "docx", unsupported.Format)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Alex_Doe_Resume.txt", FileName(exportDocument(), "txt"))
	assert.Equal(t, "_Resume.txt", FileName(types.ResumeDocument{}, "txt"))
}

type failingExporter struct{}

func (failingExporter) Format() string { return "broken" }

func (failingExporter) Export(types.ResumeDocument) ([]byte, error) {
	return nil, errors.New("encoder exploded")
}

func TestWriteFile(t *testing.T) {
	t.Run("writes the export", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "resume.txt")

		require.NoError(t, WriteFile(TextExporter{}, exportDocument(), path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "ALEX  DOE")
	})

	t.Run("encoder failure leaves no file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.broken")

		err := WriteFile(failingExporter{}, exportDocument(), path)
		require.Error(t, err)

		var exportErr *Error
		require.True(t, errors.As(err, &exportErr))
		assert.Equal(t, "broken", exportErr.Format)
		assert.NoFileExists(t, path)
	})
}
