package store

import (
	"slices"

	"github.com/jonathan/resume-studio/internal/types"
)

// BasicsPatch lists the basics fields to overwrite. Nil fields are left alone; a
// non-nil Profiles replaces the whole list.
type BasicsPatch struct {
	Name     *string
	Label    *string
	Email    *string
	Phone    *string
	URL      *string
	Summary  *string
	Location *string
	Profiles []types.Profile
}

func (p BasicsPatch) apply(b *types.Basics) {
	setString(&b.Name, p.Name)
	setString(&b.Label, p.Label)
	setString(&b.Email, p.Email)
	setString(&b.Phone, p.Phone)
	setString(&b.URL, p.URL)
	setString(&b.Summary, p.Summary)
	setString(&b.Location, p.Location)
	if p.Profiles != nil {
		b.Profiles = slices.Clone(p.Profiles)
	}
}

// ItemPatch lists the item fields to overwrite. Any field may be set on any item; the
// owning section's type is not consulted. Non-nil slices replace the whole list.
type ItemPatch struct {
	Company      *string
	Organization *string
	Role         *string
	Location     *string
	StartDate    *string
	EndDate      *string
	Current      *bool
	Institution  *string
	Degree       *string
	Field        *string
	Name         *string
	Title        *string
	Issuer       *string
	Date         *string
	Description  *string
	Label        *string
	URL          *string
	Link         *string
	Email        *string
	Phone        *string
	Bullets      []string
	Skills       []string
	Fields       []types.CustomField
}

func (p ItemPatch) apply(it *types.Item) {
	setItemString(it, "company", &it.Company, p.Company)
	setItemString(it, "organization", &it.Organization, p.Organization)
	setItemString(it, "role", &it.Role, p.Role)
	setItemString(it, "location", &it.Location, p.Location)
	setItemString(it, "startDate", &it.StartDate, p.StartDate)
	setItemString(it, "endDate", &it.EndDate, p.EndDate)
	if p.Current != nil {
		it.Current = *p.Current
		markItemKey(it, types.ItemKeyCurrent, !it.Current)
	}
	setItemString(it, "institution", &it.Institution, p.Institution)
	setItemString(it, "degree", &it.Degree, p.Degree)
	setItemString(it, "field", &it.Field, p.Field)
	setItemString(it, "name", &it.Name, p.Name)
	setItemString(it, "title", &it.Title, p.Title)
	setItemString(it, "issuer", &it.Issuer, p.Issuer)
	setItemString(it, "date", &it.Date, p.Date)
	setItemString(it, "description", &it.Description, p.Description)
	setItemString(it, "label", &it.Label, p.Label)
	setItemString(it, "url", &it.URL, p.URL)
	setItemString(it, "link", &it.Link, p.Link)
	setItemString(it, "email", &it.Email, p.Email)
	setItemString(it, "phone", &it.Phone, p.Phone)
	if p.Bullets != nil {
		it.Bullets = slices.Clone(p.Bullets)
	}
	if p.Skills != nil {
		it.Skills = slices.Clone(p.Skills)
	}
	if p.Fields != nil {
		it.Fields = slices.Clone(p.Fields)
	}
}

// setItemString overwrites an item field. A field written as empty keeps its key.
func setItemString(it *types.Item, key string, dst *string, src *string) {
	if src != nil {
		*dst = *src
		markItemKey(it, key, *src == "")
	}
}

func markItemKey(it *types.Item, key string, blank bool) {
	if blank {
		it.MarkBlank(key)
	} else {
		it.UnmarkBlank(key)
	}
}

// FieldPatch lists the custom field attributes to overwrite.
type FieldPatch struct {
	Label *string
	Value *string
}

func (p FieldPatch) apply(f *types.CustomField) {
	setString(&f.Label, p.Label)
	setString(&f.Value, p.Value)
}

// SettingsPatch lists the template settings to overwrite.
type SettingsPatch struct {
	TemplateID     *string
	FontFamily     *string
	FontSize       *string
	LineSpacing    *string
	SectionSpacing *string
	AccentColor    *string
	Margins        *string
	PageSize       *string
	HeaderLayout   *string
	SectionStyle   *string
	ATSSafeLock    *bool
	Variant        *string
	BulletStyle    *string
	BorderRadius   *string
}

func (p SettingsPatch) apply(s *types.TemplateSettings) {
	setString(&s.TemplateID, p.TemplateID)
	setString(&s.FontFamily, p.FontFamily)
	setString(&s.FontSize, p.FontSize)
	setString(&s.LineSpacing, p.LineSpacing)
	setString(&s.SectionSpacing, p.SectionSpacing)
	setString(&s.AccentColor, p.AccentColor)
	setString(&s.Margins, p.Margins)
	setString(&s.PageSize, p.PageSize)
	setString(&s.HeaderLayout, p.HeaderLayout)
	setString(&s.SectionStyle, p.SectionStyle)
	if p.ATSSafeLock != nil {
		s.ATSSafeLock = *p.ATSSafeLock
	}
	setString(&s.Variant, p.Variant)
	setString(&s.BulletStyle, p.BulletStyle)
	setString(&s.BorderRadius, p.BorderRadius)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// String returns a pointer to v, for building patches.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to v, for building patches.
func Bool(v bool) *bool {
	return &v
}

// Merge returns s with the patch applied, leaving s untouched.
func (p SettingsPatch) Merge(s types.TemplateSettings) types.TemplateSettings {
	p.apply(&s)
	return s
}
