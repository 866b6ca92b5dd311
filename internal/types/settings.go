// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TemplateSettings is the flat visual configuration of a version.
// Every combination of values is valid for rendering; the enum tags below are only
// enforced when settings come from outside the process (persisted state, CLI input).
// Empty values are tolerated and render with the template's own defaults.
type TemplateSettings struct {
	TemplateID     string `json:"templateId" validate:"required"`
	FontFamily     string `json:"fontFamily" validate:"omitempty,oneof=sans serif mono montserrat open-sans merriweather"`
	FontSize       string `json:"fontSize" validate:"omitempty,oneof=small medium large"`
	LineSpacing    string `json:"lineSpacing" validate:"omitempty,oneof=tight normal relaxed"`
	SectionSpacing string `json:"sectionSpacing" validate:"omitempty,oneof=compact normal spacious"`
	AccentColor    string `json:"accentColor" validate:"omitempty,hexcolor"`
	Margins        string `json:"margins" validate:"omitempty,oneof=standard compact wide"`
	PageSize       string `json:"pageSize" validate:"omitempty,oneof=A4 Letter"`
	HeaderLayout   string `json:"headerLayout" validate:"omitempty,oneof=centered left split"`
	SectionStyle   string `json:"sectionStyle" validate:"omitempty,oneof=standard underlined minimalist caps"`
	ATSSafeLock    bool   `json:"atsSafeLock"`
	Variant        string `json:"variant" validate:"omitempty,oneof=compact standard detailed"`
	BulletStyle    string `json:"bulletStyle" validate:"omitempty,oneof=dot dash square"`
	BorderRadius   string `json:"borderRadius" validate:"omitempty,oneof=none small full"`
}

// DefaultTemplateID is the template new résumés start with.
const DefaultTemplateID = "minimalist"

// DefaultSettings returns the settings a freshly created version starts with.
func DefaultSettings() TemplateSettings {
	return TemplateSettings{
		TemplateID:     DefaultTemplateID,
		FontFamily:     "sans",
		FontSize:       "medium",
		LineSpacing:    "normal",
		SectionSpacing: "normal",
		AccentColor:    "#2563eb",
		Margins:        "standard",
		PageSize:       "A4",
		HeaderLayout:   "left",
		SectionStyle:   "standard",
		ATSSafeLock:    true,
		Variant:        "standard",
		BulletStyle:    "dot",
		BorderRadius:   "small",
	}
}

// Validate checks enum membership and the accent color format.
func (s TemplateSettings) Validate() error {
	return validate.Struct(s)
}
