// Package sections describes each section type: its display label and icon, the shape
// of items created in it, and which item fields renderers and exporters show first.
package sections

import (
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/types"
)

// Shape names the item layout used by a section type.
type Shape string

// Item shapes.
const (
	ShapePosition   Shape = "position"
	ShapeEducation  Shape = "education"
	ShapeSkillGroup Shape = "skill_group"
	ShapeProject    Shape = "project"
	ShapeLink       Shape = "link"
	ShapeCredential Shape = "credential"
	ShapeLanguage   Shape = "language"
	ShapeReference  Shape = "reference"
	ShapeInterest   Shape = "interest"
	ShapeCustom     Shape = "custom"
	ShapeGeneric    Shape = "generic"
)

// Definition is the catalog entry for one section type.
type Definition struct {
	Type  types.SectionType
	Label string // short label used in the "add section" palette
	Icon  string // icon identifier handed to the template renderer
	Shape Shape
}

// fallbackIcon is used by renderers for types without a dedicated icon.
const fallbackIcon = "layers"

var catalog = map[types.SectionType]Definition{
	types.SectionBasics:         {types.SectionBasics, "Basics", "user", ShapeGeneric},
	types.SectionSummary:        {types.SectionSummary, "Summary", "file-text", ShapeGeneric},
	types.SectionObjective:      {types.SectionObjective, "Objective", "target", ShapeGeneric},
	types.SectionHighlights:     {types.SectionHighlights, "Highlights", "lightbulb", ShapeGeneric},
	types.SectionExperience:     {types.SectionExperience, "Experience", "briefcase", ShapePosition},
	types.SectionEducation:      {types.SectionEducation, "Education", "graduation-cap", ShapeEducation},
	types.SectionSkills:         {types.SectionSkills, "Skills", "code", ShapeSkillGroup},
	types.SectionProjects:       {types.SectionProjects, "Projects", "folder-kanban", ShapeProject},
	types.SectionCertifications: {types.SectionCertifications, "Certs", "star", ShapeCredential},
	types.SectionAwards:         {types.SectionAwards, "Awards", "award", ShapeCredential},
	types.SectionVolunteering:   {types.SectionVolunteering, "Volunteering", "message-square", ShapePosition},
	types.SectionPublications:   {types.SectionPublications, "Publications", "book", ShapeCredential},
	types.SectionLanguages:      {types.SectionLanguages, "Languages", "globe", ShapeLanguage},
	types.SectionCustom:         {types.SectionCustom, "Custom", fallbackIcon, ShapeCustom},
	types.SectionLinks:          {types.SectionLinks, "Socials", "link", ShapeLink},
	types.SectionTraining:       {types.SectionTraining, "Training", fallbackIcon, ShapeGeneric},
	types.SectionLeadership:     {types.SectionLeadership, "Leadership", "shield-check", ShapePosition},
	types.SectionPatents:        {types.SectionPatents, "Patents", "hash", ShapeCredential},
	types.SectionSpeaking:       {types.SectionSpeaking, "Speaking", "users", ShapeGeneric},
	types.SectionReferences:     {types.SectionReferences, "References", "users", ShapeReference},
	types.SectionInterests:      {types.SectionInterests, "Interests", fallbackIcon, ShapeInterest},
	types.SectionAchievements:   {types.SectionAchievements, "Achievements", fallbackIcon, ShapeGeneric},
	types.SectionResearch:       {types.SectionResearch, "Research", "microscope", ShapePosition},
}

// Lookup returns the catalog entry for t. Unknown types get a generic definition and
// false, so callers can still render them.
func Lookup(t types.SectionType) (Definition, bool) {
	if def, ok := catalog[t]; ok {
		return def, true
	}
	return Definition{Type: t, Label: DefaultTitle(t), Icon: fallbackIcon, Shape: ShapeGeneric}, false
}

// shapeKeys lists the optional item fields a new item of each shape starts with.
var shapeKeys = map[Shape][]string{
	ShapePosition:   {"organization", "company", "role", "location", "startDate", "endDate", types.ItemKeyCurrent},
	ShapeEducation:  {"institution", "degree", "field", "location", "endDate"},
	ShapeSkillGroup: {"name"},
	ShapeProject:    {"name", "role", "link"},
	ShapeLink:       {"label", "url"},
	ShapeCredential: {"name", "title", "issuer", "organization", "date", "description"},
	ShapeLanguage:   {"name", "description"},
	ShapeReference:  {"name", "title", "company", "email", "phone"},
	ShapeCustom:     {"title"},
	ShapeGeneric:    {"title", "description"},
}

// ShapeOf returns the item shape for t.
func ShapeOf(t types.SectionType) Shape {
	def, _ := Lookup(t)
	return def.Shape
}

// DefaultTitle is the section title used when the user gives none: the type name with
// its first letter upper-cased ("custom" -> "Custom").
func DefaultTitle(t types.SectionType) string {
	s := string(t)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// NewItem builds an empty item with the default shape for t.
func NewItem(t types.SectionType, id string) types.Item {
	item := types.Item{ID: id}
	for _, key := range shapeKeys[ShapeOf(t)] {
		item.MarkBlank(key)
	}
	switch ShapeOf(t) {
	case ShapePosition, ShapeProject:
		item.Bullets = []string{""}
	case ShapeSkillGroup, ShapeInterest:
		item.Skills = []string{}
	case ShapeCustom:
		item.Fields = []types.CustomField{}
	case ShapeGeneric:
		item.Bullets = []string{}
	}
	return item
}

// PrimaryLabel is the headline of an item: role, else title, else name, else degree.
func PrimaryLabel(item types.Item) string {
	return firstNonEmpty(item.Role, item.Title, item.Name, item.Degree)
}

// SecondaryLabel is the organisation line of an item: company, else organization,
// else institution.
func SecondaryLabel(item types.Item) string {
	return firstNonEmpty(item.Company, item.Organization, item.Institution)
}

// DateRange formats start and end dates as "start - end"; missing ends stay blank.
func DateRange(item types.Item) string {
	return item.StartDate + " - " + item.EndDate
}

// SimpleLabel is the headline used for sections without a dedicated layout: name,
// else title.
func SimpleLabel(item types.Item) string {
	return firstNonEmpty(item.Name, item.Title)
}

// UsesEntryLayout reports whether exporters render t with the headline /
// organisation / bullets layout.
func UsesEntryLayout(t types.SectionType) bool {
	switch t {
	case types.SectionExperience, types.SectionProjects, types.SectionEducation:
		return true
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
