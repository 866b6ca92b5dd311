package evaluation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	minExperienceEntries = 2
	minLeadBullets       = 3
	maxBulletLength      = 250
	minBulletLength      = 30
	minSummaryLength     = 80
	minSkillCount        = 8
	projectsSkillCount   = 15
	maxBuzzwords         = 2
)

// metricSignal matches anything that reads as a quantified result. The bare letters
// k, m and b stand for scale suffixes such as 10k or 2M.
var metricSignal = regexp.MustCompile(`\d+|%|\$|k|m|b|improved|reduced|increased|growth|scale`)

var firstPersonPronoun = regexp.MustCompile(`(?i)\b(i|me|my|we|us|our)\b`)

var weakPhrases = []string{"helped", "assisted", "handled", "worked on", "responsible for", "tried to"}

var buzzwords = []string{"synergy", "disruptor", "world-class", "ninja", "rockstar", "guru", "passionate", "hard worker"}

// Parse-ability

func checkEmail(in *input, acc *accumulator) {
	if in.doc.Basics.Email != "" {
		return
	}
	acc.add(types.Issue{
		ID: "P01", Severity: types.SeverityCritical, Category: types.CategoryParseability,
		Title:           "Missing Contact: Email",
		Explanation:     "Recruiters and automated systems cannot reach you.",
		ImpactedSection: "Header",
		SuggestedFix:    "Add a professional email address.",
	})
}

func checkPhone(in *input, acc *accumulator) {
	if in.doc.Basics.Phone != "" {
		return
	}
	acc.add(types.Issue{
		ID: "P02", Severity: types.SeverityHigh, Category: types.CategoryParseability,
		Title:           "Missing Contact: Phone",
		Explanation:     "Phone number is a vital identifier for HR systems.",
		ImpactedSection: "Header",
		SuggestedFix:    "Include your primary phone number.",
	})
}

func checkName(in *input, acc *accumulator) {
	if in.doc.Basics.Name != "" {
		return
	}
	acc.add(types.Issue{
		ID: "P03", Severity: types.SeverityCritical, Category: types.CategoryParseability,
		Title:           "Missing Identity: Full Name",
		Explanation:     "The document lacks a primary identifier.",
		ImpactedSection: "Header",
		SuggestedFix:    "Enter your full legal name.",
	})
}

func checkLinkedIn(in *input, acc *accumulator) {
	for _, p := range in.doc.Basics.Profiles {
		if strings.Contains(strings.ToLower(p.Network), "linkedin") {
			return
		}
	}
	if strings.Contains(in.corpus, "linkedin.com") {
		return
	}
	acc.add(types.Issue{
		ID: "P04", Severity: types.SeverityMedium, Category: types.CategoryParseability,
		Title:           "No LinkedIn Found",
		Explanation:     "Modern ATS use LinkedIn for identity verification and profile enrichment.",
		ImpactedSection: "Header",
		SuggestedFix:    "Include your LinkedIn profile link.",
	})
}

func checkTemplateRisk(in *input, acc *accumulator) {
	if !templates.IsHighRisk(in.settings.TemplateID) {
		return
	}
	acc.add(types.Issue{
		ID: "P05", Severity: types.SeverityHigh, Category: types.CategoryParseability,
		Title:           "High-Risk Template Detected",
		Explanation:     "Graphic-heavy or non-standard layouts often break older legacy parsers.",
		ImpactedSection: "Design",
		SuggestedFix:    `Switch to a "Safe" category template for portal submissions.`,
	})
}

func checkInsecureLinks(in *input, acc *accumulator) {
	if !strings.Contains(in.corpus, "http://") || strings.Contains(in.corpus, "https://") {
		return
	}
	acc.add(types.Issue{
		ID: "P06", Severity: types.SeverityLow, Category: types.CategoryParseability,
		Title:           "Unsecured Links",
		Explanation:     "Use of non-HTTPS links can be flagged as a security risk by some firewalls.",
		ImpactedSection: "Links",
		SuggestedFix:    "Update all links to use HTTPS.",
	})
}

// Content Quality

// checkExperience covers the first visible experience section: entry count, bullet
// count of the most recent entry, and per-bullet length, metrics and wording.
func checkExperience(in *input, acc *accumulator) {
	exp, ok := in.firstVisible(types.SectionExperience)
	if !ok {
		return
	}
	if len(exp.Items) < minExperienceEntries {
		acc.add(types.Issue{
			ID: "C01", Severity: types.SeverityHigh, Category: types.CategoryContent,
			Title:           "Insufficient Experience Entries",
			Explanation:     "Listing fewer than two roles suggests a thin professional history.",
			ImpactedSection: "Experience",
			SuggestedFix:    "Add more professional roles or project work.",
		})
	}
	for idx, item := range exp.Items {
		if idx == 0 && len(item.Bullets) < minLeadBullets {
			acc.add(types.Issue{
				ID: "C02", Severity: types.SeverityMedium, Category: types.CategoryContent,
				Title:           fmt.Sprintf("Thin Bullet Count: %s", item.Company),
				Explanation:     "Your most recent role should have at least 3-5 high-impact bullets.",
				ImpactedSection: "Experience",
				SuggestedFix:    "Expand on your achievements in this role.",
			})
		}
		for _, b := range item.Bullets {
			checkBullet(b, acc)
		}
	}
}

func checkBullet(b string, acc *accumulator) {
	length := utf8.RuneCountInString(b)
	lower := strings.ToLower(b)

	if length > maxBulletLength {
		acc.add(types.Issue{
			ID: "C03", Severity: types.SeverityLow, Category: types.CategoryContent,
			Title:           "Excessive Bullet Length",
			Explanation:     "Paragraph-style bullets are harder for parsers to extract key skills from.",
			ImpactedSection: "Experience",
			SuggestedFix:    "Break this bullet into two separate achievements.",
		})
	}
	if length < minBulletLength {
		acc.add(types.Issue{
			ID: "C04", Severity: types.SeverityLow, Category: types.CategoryContent,
			Title:           "Bullet Too Brief",
			Explanation:     "Very short bullets lack the context needed to prove impact.",
			ImpactedSection: "Experience",
			SuggestedFix:    "Use the XYZ formula: Accomplished [X] as measured by [Y], by doing [Z].",
		})
	}
	if !metricSignal.MatchString(lower) {
		acc.add(types.Issue{
			ID: "C05", Severity: types.SeverityMedium, Category: types.CategoryContent,
			Title:           "Non-Quantified Achievement",
			Explanation:     "ATS and recruiters prioritize data-driven results over task descriptions.",
			ImpactedSection: "Experience",
			SuggestedFix:    "Add numbers, percentages, or currency values to this bullet.",
		})
	}
	if containsAny(lower, weakPhrases) {
		acc.add(types.Issue{
			ID: "C06", Severity: types.SeverityLow, Category: types.CategoryContent,
			Title:           "Passive Language Detected",
			Explanation:     "Passive verbs diminish the perceived ownership of your work.",
			ImpactedSection: "Experience",
			SuggestedFix:    `Replace with "Spearheaded", "Orchestrated", or "Executed".`,
		})
	}
}

// Completeness

func checkSummary(in *input, acc *accumulator) {
	if utf8.RuneCountInString(in.doc.Basics.Summary) >= minSummaryLength {
		return
	}
	acc.add(types.Issue{
		ID: "CO01", Severity: types.SeverityMedium, Category: types.CategoryCompleteness,
		Title:           "Summary Lacks Depth",
		Explanation:     "A weak summary misses the first opportunity for keyword matching.",
		ImpactedSection: "Summary",
		SuggestedFix:    `Write 3-4 impactful sentences highlighting your specific "Unique Selling Point".`,
	})
}

// skillCount totals the skill tags of the first visible skills section.
func (in *input) skillCount() int {
	skills, ok := in.firstVisible(types.SectionSkills)
	if !ok {
		return 0
	}
	total := 0
	for _, item := range skills.Items {
		total += len(item.Skills)
	}
	return total
}

func checkSkillCount(in *input, acc *accumulator) {
	if in.skillCount() >= minSkillCount {
		return
	}
	acc.add(types.Issue{
		ID: "CO02", Severity: types.SeverityHigh, Category: types.CategoryCompleteness,
		Title:           "Low Keyword Density",
		Explanation:     "Skills are the primary filter for ATS algorithms. You need more topical keywords.",
		ImpactedSection: "Skills",
		SuggestedFix:    "List at least 10-15 relevant technical and industry skills.",
	})
}

func checkEducation(in *input, acc *accumulator) {
	if edu, ok := in.firstVisible(types.SectionEducation); ok && len(edu.Items) > 0 {
		return
	}
	acc.add(types.Issue{
		ID: "CO03", Severity: types.SeverityHigh, Category: types.CategoryCompleteness,
		Title:           "Missing Academic History",
		Explanation:     "Most enterprise roles require verification of education levels.",
		ImpactedSection: "Education",
		SuggestedFix:    "Add your degree or most recent certification.",
	})
}

func checkProjects(in *input, acc *accumulator) {
	if _, ok := in.firstVisible(types.SectionProjects); ok || in.skillCount() <= projectsSkillCount {
		return
	}
	acc.add(types.Issue{
		ID: "CO04", Severity: types.SeverityLow, Category: types.CategoryCompleteness,
		Title:           "No Applied Evidence (Projects)",
		Explanation:     "You list many skills but no project work to prove application.",
		ImpactedSection: "Projects",
		SuggestedFix:    "Add a Projects section to showcase hands-on work.",
	})
}

// Style

func checkFirstPerson(in *input, acc *accumulator) {
	if !firstPersonPronoun.MatchString(in.corpus) {
		return
	}
	acc.add(types.Issue{
		ID: "S01", Severity: types.SeverityMedium, Category: types.CategoryStyle,
		Title:           "First-Person Pronouns Found",
		Explanation:     "Standard professional resumes should use third-person implied (omitted) pronouns.",
		ImpactedSection: "Global",
		SuggestedFix:    `Remove "I", "me", and "my" from your descriptions.`,
	})
}

func checkBuzzwords(in *input, acc *accumulator) {
	var found []string
	for _, w := range buzzwords {
		if strings.Contains(in.corpus, w) {
			found = append(found, w)
		}
	}
	if len(found) <= maxBuzzwords {
		return
	}
	acc.add(types.Issue{
		ID: "S02", Severity: types.SeverityLow, Category: types.CategoryStyle,
		Title:           "Buzzword Overload",
		Explanation:     "Vague buzzwords occupy valuable space and offer zero proof of competency.",
		ImpactedSection: "Global",
		SuggestedFix:    fmt.Sprintf("Replace %q with a concrete skill or achievement.", found[0]),
	})
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
