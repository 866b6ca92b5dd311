// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity grades an issue and selects its score penalty.
type Severity string

// Issue severities, mildest first.
const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Issue categories, in evaluation order.
const (
	CategoryParseability = "Parse-ability"
	CategoryContent      = "Content Quality"
	CategoryCompleteness = "Completeness"
	CategoryStyle        = "Style"
)

// Issue is one flagged deficiency with a suggested remedy.
type Issue struct {
	ID              string   `json:"id"`
	Severity        Severity `json:"severity"`
	Category        string   `json:"category"`
	Title           string   `json:"title"`
	Explanation     string   `json:"explanation"`
	ImpactedSection string   `json:"impactedSection"`
	SuggestedFix    string   `json:"suggestedFix"`
}

// Breakdown holds the display sub-scores. They are derived from issue counts and are
// not expected to add up to Report.Score.
type Breakdown struct {
	Parseability int `json:"parseability"`
	Content      int `json:"content"`
	Completeness int `json:"completeness"`
	JobMatch     int `json:"jobMatch"`
}

// Report is the result of evaluating a document.
type Report struct {
	Score     int       `json:"score"`
	Issues    []Issue   `json:"issues"`
	Breakdown Breakdown `json:"breakdown"`
}

// CountByCategory returns how many issues fall in the given category.
func (r Report) CountByCategory(category string) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Category == category {
			n++
		}
	}
	return n
}
