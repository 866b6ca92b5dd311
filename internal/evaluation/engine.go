// Package evaluation scores a résumé document the way an automated applicant
// tracking parser would, producing a 0-100 score, a category breakdown and a list of
// actionable issues.
//
// Evaluate is a pure function: it keeps no state between calls, never modifies its
// inputs and may be called concurrently.
package evaluation

import (
	"math"

	"github.com/jonathan/resume-studio/internal/types"
)

const (
	startingScore = 100.0

	// noJobTextMatchScore is the job-match credit granted when no job description is
	// supplied.
	noJobTextMatchScore = 12
	maxJobMatchScore    = 15
)

var penalties = map[types.Severity]float64{
	types.SeverityLow:      1.5,
	types.SeverityMedium:   3,
	types.SeverityHigh:     7,
	types.SeverityCritical: 15,
}

// Penalty returns the score deduction for a severity.
func Penalty(sev types.Severity) float64 {
	return penalties[sev]
}

// input bundles what every rule looks at.
type input struct {
	doc      types.ResumeDocument
	settings types.TemplateSettings
	corpus   string // lower-cased serialized document
}

// firstVisible returns the first visible section of the given type.
func (in *input) firstVisible(t types.SectionType) (types.Section, bool) {
	for _, s := range in.doc.Sections {
		if s.Type == t && s.IsVisible {
			return s, true
		}
	}
	return types.Section{}, false
}

// accumulator collects issues and the running score.
type accumulator struct {
	issues []types.Issue
	score  float64
}

func (a *accumulator) add(issue types.Issue) {
	a.issues = append(a.issues, issue)
	a.score -= Penalty(issue.Severity)
}

// rule inspects the input and reports any issues it finds.
type rule func(in *input, acc *accumulator)

// battery is the fixed rule order; issue order in the report follows it.
var battery = []rule{
	// Parse-ability
	checkEmail,
	checkPhone,
	checkName,
	checkLinkedIn,
	checkTemplateRisk,
	checkInsecureLinks,
	// Content Quality
	checkExperience,
	// Completeness
	checkSummary,
	checkSkillCount,
	checkEducation,
	checkProjects,
	// Style
	checkFirstPerson,
	checkBuzzwords,
}

// Evaluate scores doc under settings. jobText is an optional job description; the
// empty string means none was supplied.
func Evaluate(doc types.ResumeDocument, settings types.TemplateSettings, jobText string) types.Report {
	in := &input{
		doc:      doc,
		settings: settings,
		corpus:   Corpus(doc),
	}
	acc := &accumulator{issues: []types.Issue{}, score: startingScore}
	for _, r := range battery {
		r(in, acc)
	}

	jobMatch := JobMatchScore(in.corpus, jobText)
	score := math.Floor(math.Max(0, math.Min(100, acc.score)))

	report := types.Report{
		Score:  int(score),
		Issues: acc.issues,
	}
	report.Breakdown = types.Breakdown{
		Parseability: int(math.Floor(40 - 4*float64(report.CountByCategory(types.CategoryParseability)))),
		Content:      int(math.Floor(30 - 3.5*float64(report.CountByCategory(types.CategoryContent)))),
		Completeness: int(math.Floor(15 - 2.5*float64(report.CountByCategory(types.CategoryCompleteness)))),
		JobMatch:     jobMatch,
	}
	return report
}
