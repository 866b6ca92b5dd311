package store

import (
	"slices"

	"github.com/jonathan/resume-studio/internal/sections"
	"github.com/jonathan/resume-studio/internal/types"
)

// UpdateDocumentBasics merges patch into the active version's basics.
func (s *Store) UpdateDocumentBasics(patch BasicsPatch) Result {
	return s.editVersion(true, func(v *types.ResumeVersion) Result {
		patch.apply(&v.Document.Basics)
		return Applied
	})
}

// UpdateSettings merges patch into the active version's template settings.
func (s *Store) UpdateSettings(patch SettingsPatch) Result {
	return s.editVersion(true, func(v *types.ResumeVersion) Result {
		patch.apply(&v.Settings)
		return Applied
	})
}

// AddSection appends an empty, visible section. An empty title defaults to the type
// name with a capital first letter. Basics lives outside the section list, so asking
// for a basics section (or any unknown type) is Invalid.
func (s *Store) AddSection(sectionType types.SectionType, title string) (string, Result) {
	if !sectionType.Valid() || sectionType == types.SectionBasics {
		return "", Invalid
	}
	if title == "" {
		title = sections.DefaultTitle(sectionType)
	}
	id := s.newID()
	res := s.editVersion(true, func(v *types.ResumeVersion) Result {
		v.Document.Sections = append(v.Document.Sections, types.Section{
			ID:        id,
			Type:      sectionType,
			Title:     title,
			IsVisible: true,
			Items:     []types.Item{},
		})
		return Applied
	})
	if res != Applied {
		return "", res
	}
	return id, Applied
}

// UpdateSectionTitle renames a section.
func (s *Store) UpdateSectionTitle(sectionID, title string) Result {
	return s.editSection(sectionID, true, func(sec *types.Section) Result {
		sec.Title = title
		return Applied
	})
}

// RemoveSection deletes a section and its items.
func (s *Store) RemoveSection(sectionID string) Result {
	return s.editVersion(false, func(v *types.ResumeVersion) Result {
		si := sectionIndex(v.Document.Sections, sectionID)
		if si < 0 {
			return NotFound
		}
		v.Document.Sections = slices.Delete(v.Document.Sections, si, si+1)
		return Applied
	})
}

// ToggleSectionVisibility flips whether a section is rendered, exported and evaluated.
func (s *Store) ToggleSectionVisibility(sectionID string) Result {
	return s.editSection(sectionID, false, func(sec *types.Section) Result {
		sec.IsVisible = !sec.IsVisible
		return Applied
	})
}

// ReorderSections moves the section at from so that it ends up at index to.
func (s *Store) ReorderSections(from, to int) Result {
	return s.editVersion(false, func(v *types.ResumeVersion) Result {
		moved, ok := move(v.Document.Sections, from, to)
		if !ok {
			return NotFound
		}
		v.Document.Sections = moved
		return Applied
	})
}

// DuplicateSection inserts a deep copy of a section right after it. Only the section
// id is regenerated; the copied items keep their ids, which stay unique within their
// own section.
func (s *Store) DuplicateSection(sectionID string) (string, Result) {
	id := s.newID()
	res := s.editVersion(true, func(v *types.ResumeVersion) Result {
		si := sectionIndex(v.Document.Sections, sectionID)
		if si < 0 {
			return NotFound
		}
		dup := v.Document.Sections[si].Clone()
		dup.ID = id
		v.Document.Sections = slices.Insert(v.Document.Sections, si+1, dup)
		return Applied
	})
	if res != Applied {
		return "", res
	}
	return id, Applied
}
