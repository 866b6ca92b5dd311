package ingestion

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Board is a job board whose pages get dedicated selectors.
type Board string

// Known boards.
const (
	BoardGreenhouse Board = "greenhouse"
	BoardLever      Board = "lever"
	BoardWorkday    Board = "workday"
	BoardUnknown    Board = "unknown"
)

// DetectBoard identifies the job board from a posting URL.
func DetectBoard(rawURL string) Board {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return BoardUnknown
	}
	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "greenhouse.io"):
		return BoardGreenhouse
	case strings.Contains(host, "lever.co"):
		return BoardLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return BoardWorkday
	default:
		return BoardUnknown
	}
}

// postingSelectors locate the job description on generic pages, best match first.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ContentSelectors returns the description selectors for a board.
func ContentSelectors(b Board) []string {
	switch b {
	case BoardGreenhouse:
		return []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"}
	case BoardLever:
		return []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"}
	case BoardWorkday:
		return []string{"[data-automation-id='jobDescription']", ".job-description"}
	default:
		return postingSelectors
	}
}

// noiseSelectors cover application forms, legal boilerplate and share widgets,
// none of which describe the role.
var noiseSelectors = []string{
	"nav", "footer", "header", "script", "style", "noscript",
	"form", "#application-form", ".application-form", ".apply-button-container",
	".eeo-statement", ".eeo-section", ".voluntary-disclosure", ".legal-disclosure",
	".social-share", ".share-buttons", ".cookie-banner", ".cookie-consent",
	".sidebar", ".ad", ".advertisement",
}

// NoiseSelectors returns the elements stripped before extraction for a board.
func NoiseSelectors(b Board) []string {
	out := append([]string(nil), noiseSelectors...)
	switch b {
	case BoardGreenhouse:
		out = append(out, ".application--wrapper", ".voluntary-self-id", "#usa_self_id_section")
	case BoardLever:
		out = append(out, ".apply-section", ".posting-apply")
	case BoardWorkday:
		out = append(out, "[data-automation-id='applyButton']")
	}
	return out
}

// ExtractText parses html, removes noise and returns the text of the first element
// matching one of selectors, falling back to the whole body. Every line is trimmed
// and empty lines are dropped.
func ExtractText(html string, selectors, noise []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	if len(noise) > 0 {
		doc.Find(strings.Join(noise, ", ")).Remove()
	}

	var content *goquery.Selection
	for _, sel := range selectors {
		if found := doc.Find(sel); found.Length() > 0 {
			content = found.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	var lines []string
	for _, line := range strings.Split(content.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
