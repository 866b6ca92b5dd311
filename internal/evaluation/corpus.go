package evaluation

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// minKeywordLength is exclusive: only job-text tokens longer than this count.
const minKeywordLength = 4

// keywordCoverage is the share of job keywords a document must contain to earn the
// full job-match score.
const keywordCoverage = 0.3

var nonWord = regexp.MustCompile(`\W+`)

// Corpus serializes the document to compact JSON and lower-cases it. Substring rules
// search this text, so field names are part of it just like field values.
func Corpus(doc types.ResumeDocument) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSuffix(buf.String(), "\n"))
}

// Keywords extracts the unique job-text tokens longer than four characters, in order
// of first appearance.
func Keywords(jobText string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, tok := range nonWord.Split(strings.ToLower(jobText), -1) {
		if len(tok) <= minKeywordLength || seen[tok] {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}
	return keywords
}

// JobMatchScore rates how well corpus covers the job text's keywords on a 0-15 scale.
// Matching 30% of the keywords earns the full score. Without job text the score is
// the fixed baseline of 12; job text without any qualifying keyword scores 0.
func JobMatchScore(corpus, jobText string) int {
	if jobText == "" {
		return noJobTextMatchScore
	}
	keywords := Keywords(jobText)
	if len(keywords) == 0 {
		return 0
	}
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(corpus, kw) {
			matched++
		}
	}
	raw := float64(matched) / (float64(len(keywords)) * keywordCoverage) * maxJobMatchScore
	return int(math.Min(maxJobMatchScore, math.Floor(raw+0.5)))
}
