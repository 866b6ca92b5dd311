// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// SectionType identifies the kind of a section. The set is closed; see AllSectionTypes.
type SectionType string

// Section types understood by the editor, the evaluator and the exporters.
const (
	SectionBasics         SectionType = "basics"
	SectionSummary        SectionType = "summary"
	SectionObjective      SectionType = "objective"
	SectionHighlights     SectionType = "highlights"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionAwards         SectionType = "awards"
	SectionVolunteering   SectionType = "volunteering"
	SectionPublications   SectionType = "publications"
	SectionLanguages      SectionType = "languages"
	SectionCustom         SectionType = "custom"
	SectionLinks          SectionType = "links"
	SectionTraining       SectionType = "training"
	SectionLeadership     SectionType = "leadership"
	SectionPatents        SectionType = "patents"
	SectionSpeaking       SectionType = "speaking"
	SectionReferences     SectionType = "references"
	SectionInterests      SectionType = "interests"
	SectionAchievements   SectionType = "achievements"
	SectionResearch       SectionType = "research"
)

// AllSectionTypes lists every section type in editor order.
var AllSectionTypes = []SectionType{
	SectionBasics, SectionSummary, SectionObjective, SectionHighlights,
	SectionExperience, SectionEducation, SectionSkills, SectionProjects,
	SectionCertifications, SectionAwards, SectionVolunteering, SectionPublications,
	SectionLanguages, SectionCustom, SectionLinks, SectionTraining, SectionLeadership,
	SectionPatents, SectionSpeaking, SectionReferences, SectionInterests,
	SectionAchievements, SectionResearch,
}

// Valid reports whether t is a member of the closed section type set.
func (t SectionType) Valid() bool {
	for _, known := range AllSectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ResumeDocument is the structured content of one résumé version.
// Basics is a value and therefore always present; section order is user controlled.
type ResumeDocument struct {
	Basics   Basics    `json:"basics"`
	Sections []Section `json:"sections" validate:"dive"`
}

// Basics holds identity, contact details and the free-text summary.
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	URL      string    `json:"url"`
	Summary  string    `json:"summary"`
	Location string    `json:"location"`
	Profiles []Profile `json:"profiles"`
}

// Profile is a link to an external profile such as LinkedIn or GitHub.
type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// Section is a named, typed, orderable group of items.
type Section struct {
	ID        string      `json:"id" validate:"required"`
	Type      SectionType `json:"type" validate:"required,section_type"`
	Title     string      `json:"title"`
	IsVisible bool        `json:"isVisible"`
	Items     []Item      `json:"items" validate:"dive"`
	Variant   string      `json:"variant,omitempty" validate:"omitempty,oneof=compact standard detailed"`
}

// Item is one entry within a section. The owning section's type is the tag of the
// union: it decides which of the optional fields make up the item's shape (see the
// sections package). Fields outside that shape are simply left empty.
//
// An empty optional field is left out of the JSON form unless its key is listed in
// Blank, which is how a freshly added item keeps every key of its shape.
type Item struct {
	ID string `json:"id" validate:"required"`

	// position-like entries (experience, volunteering, leadership, research)
	Company      string `json:"company,omitempty"`
	Organization string `json:"organization,omitempty"`
	Role         string `json:"role,omitempty"`
	Location     string `json:"location,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Current      bool   `json:"current,omitempty"`

	// education
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`

	// shared descriptive fields
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`

	// links, projects and references
	Label string `json:"label,omitempty"`
	URL   string `json:"url,omitempty"`
	Link  string `json:"link,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	Bullets []string      `json:"bullets,omitempty"`
	Skills  []string      `json:"skills,omitempty"`
	Fields  []CustomField `json:"fields,omitempty" validate:"dive"`

	// Blank holds the JSON keys of optional fields that are present although empty.
	Blank []string `json:"-"`
}

// MarkBlank records key as present even when its field is empty. Blank stays sorted.
func (it *Item) MarkBlank(key string) {
	i, found := slices.BinarySearch(it.Blank, key)
	if !found {
		it.Blank = slices.Insert(it.Blank, i, key)
	}
}

// UnmarkBlank drops key from Blank, for a field that now holds a value.
func (it *Item) UnmarkBlank(key string) {
	if i, found := slices.BinarySearch(it.Blank, key); found {
		it.Blank = slices.Delete(it.Blank, i, i+1)
	}
}

// IsBlank reports whether key is kept in the JSON form while empty.
func (it Item) IsBlank(key string) bool {
	_, found := slices.BinarySearch(it.Blank, key)
	return found
}

// CustomField is a label/value pair inside a custom item.
type CustomField struct {
	ID    string `json:"id" validate:"required"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Clone returns a deep copy of the document.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Basics = d.Basics.Clone()
	if d.Sections != nil {
		out.Sections = make([]Section, len(d.Sections))
		for i, s := range d.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the basics block.
func (b Basics) Clone() Basics {
	out := b
	out.Profiles = cloneSlice(b.Profiles)
	return out
}

// Clone returns a deep copy of the section and all of its items.
func (s Section) Clone() Section {
	out := s
	if s.Items != nil {
		out.Items = make([]Item, len(s.Items))
		for i, it := range s.Items {
			out.Items[i] = it.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	out := it
	out.Bullets = cloneSlice(it.Bullets)
	out.Skills = cloneSlice(it.Skills)
	out.Fields = cloneSlice(it.Fields)
	out.Blank = cloneSlice(it.Blank)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
