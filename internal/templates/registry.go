// Package templates holds the registry of visual templates and their ATS risk levels.
package templates

// RiskLevel grades how likely a template is to confuse résumé parsers.
type RiskLevel string

// Risk levels.
const (
	RiskSafe   RiskLevel = "SAFE"
	RiskMedium RiskLevel = "MEDIUM"
	RiskRisky  RiskLevel = "RISKY"
)

// Template describes one visual template.
type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	RiskLevel RiskLevel `json:"atsRiskLevel"`
	Tags      []string  `json:"tags"`
	IsActive  bool      `json:"isActive"`
}

var registry = []Template{
	{ID: "minimalist", Name: "Elite Minimalist", Category: "ATS Safe", RiskLevel: RiskSafe, Tags: []string{"Clean", "Standard"}, IsActive: true},
	{ID: "tech-pro", Name: "Tech Pro Sidebar", Category: "Modern", RiskLevel: RiskSafe, Tags: []string{"Developer", "Compact"}, IsActive: true},
	{ID: "executive", Name: "CEO Vision", Category: "ATS Safe", RiskLevel: RiskSafe, Tags: []string{"Leadership", "Serif"}, IsActive: true},
	{ID: "director", Name: "Director Suite", Category: "ATS Safe", RiskLevel: RiskSafe, Tags: []string{"Impact", "Senior"}, IsActive: true},
	{ID: "grid-master", Name: "Grid Master", Category: "ATS Safe", RiskLevel: RiskSafe, Tags: []string{"Cards", "Density"}, IsActive: true},
	{ID: "refined", Name: "Refined Classic", Category: "Modern", RiskLevel: RiskSafe, Tags: []string{"Elegant", "Balanced"}, IsActive: true},
	{ID: "columnist", Name: "Asymmetric Columnist", Category: "Modern", RiskLevel: RiskMedium, Tags: []string{"Bold", "Unique"}, IsActive: true},
	{ID: "dark-console", Name: "Dark Mode Console", Category: "Creative", RiskLevel: RiskRisky, Tags: []string{"Terminal", "Tech"}, IsActive: true},
	{ID: "graphic", Name: "Graphic Horizon", Category: "Creative", RiskLevel: RiskRisky, Tags: []string{"Visual", "Designer"}, IsActive: true},
	{ID: "academic", Name: "Scholar CV", Category: "ATS Safe", RiskLevel: RiskSafe, Tags: []string{"Research", "Detailed"}, IsActive: true},
}

// Registry returns a copy of all registered templates in display order.
func Registry() []Template {
	out := make([]Template, len(registry))
	for i, t := range registry {
		t.Tags = append([]string(nil), t.Tags...)
		out[i] = t
	}
	return out
}

// Lookup returns the template with the given id.
func Lookup(id string) (Template, bool) {
	for _, t := range registry {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// IsHighRisk reports whether id names a template graded RISKY. Unknown ids are not
// high risk.
func IsHighRisk(id string) bool {
	t, ok := Lookup(id)
	return ok && t.RiskLevel == RiskRisky
}
