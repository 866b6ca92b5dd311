// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ResumeVersion is one saved variant of a résumé's document and settings.
// Timestamps are unix milliseconds.
type ResumeVersion struct {
	ID        string           `json:"id" validate:"required"`
	Name      string           `json:"name"`
	Document  ResumeDocument   `json:"document"`
	Settings  TemplateSettings `json:"settings"`
	CreatedAt int64            `json:"createdAt"`
	UpdatedAt int64            `json:"updatedAt"`
}

// Resume owns its versions exclusively. CurrentVersionID names the version that is
// opened when the résumé is selected.
type Resume struct {
	ID               string          `json:"id" validate:"required"`
	Title            string          `json:"title"`
	Versions         []ResumeVersion `json:"versions" validate:"min=1,dive"`
	CurrentVersionID string          `json:"currentVersionId" validate:"required"`
	IsArchived       bool            `json:"isArchived"`
	CreatedAt        int64           `json:"createdAt"`
}

// State is the whole résumé collection plus the selection pointers.
// A State handed out by the store is never modified afterwards.
type State struct {
	Resumes         []Resume `json:"resumes" validate:"dive"`
	CurrentResumeID string   `json:"currentResumeId"`
	ActiveVersionID string   `json:"activeVersionId"`
}

// Clone returns a deep copy of the version.
func (v ResumeVersion) Clone() ResumeVersion {
	out := v
	out.Document = v.Document.Clone()
	return out
}

// Clone returns a deep copy of the résumé and all of its versions.
func (r Resume) Clone() Resume {
	out := r
	if r.Versions != nil {
		out.Versions = make([]ResumeVersion, len(r.Versions))
		for i, v := range r.Versions {
			out.Versions[i] = v.Clone()
		}
	}
	return out
}

// FindVersion returns the version with the given id.
func (r Resume) FindVersion(id string) (ResumeVersion, bool) {
	for _, v := range r.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return ResumeVersion{}, false
}

// FindResume returns the résumé with the given id.
func (s *State) FindResume(id string) (Resume, bool) {
	if s == nil {
		return Resume{}, false
	}
	for _, r := range s.Resumes {
		if r.ID == id {
			return r, true
		}
	}
	return Resume{}, false
}

// ActiveVersion resolves the selection pointers. The second result is false when the
// selection is empty or stale, which callers must tolerate.
func (s *State) ActiveVersion() (ResumeVersion, bool) {
	if s == nil {
		return ResumeVersion{}, false
	}
	r, ok := s.FindResume(s.CurrentResumeID)
	if !ok {
		return ResumeVersion{}, false
	}
	return r.FindVersion(s.ActiveVersionID)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("section_type", func(fl validator.FieldLevel) bool {
		return SectionType(fl.Field().String()).Valid()
	}); err != nil {
		panic(fmt.Sprintf("failed to register section_type validation: %v", err))
	}
	return v
}

// ValidateState checks the structural invariants of a state loaded from outside the
// process: required ids, at least one version per résumé, known section types and
// well-formed settings.
func ValidateState(s *State) error {
	if s == nil {
		return fmt.Errorf("state is nil")
	}
	if err := validate.Struct(s); err != nil {
		return err
	}
	for _, r := range s.Resumes {
		if _, ok := r.FindVersion(r.CurrentVersionID); !ok {
			return fmt.Errorf("resume %s: current version %s not found", r.ID, r.CurrentVersionID)
		}
		for _, v := range r.Versions {
			for _, sec := range v.Document.Sections {
				if sec.Type == SectionBasics {
					return fmt.Errorf("resume %s: basics cannot appear as a section", r.ID)
				}
			}
			if err := checkUniqueIDs(v.Document); err != nil {
				return fmt.Errorf("resume %s, version %s: %w", r.ID, v.ID, err)
			}
		}
	}
	return nil
}

// checkUniqueIDs rejects documents where two sections, two items of one section or
// two fields of one item share an id. Commands address the first match only.
func checkUniqueIDs(doc ResumeDocument) error {
	sectionIDs := make(map[string]bool, len(doc.Sections))
	for _, sec := range doc.Sections {
		if sectionIDs[sec.ID] {
			return fmt.Errorf("duplicate section id %s", sec.ID)
		}
		sectionIDs[sec.ID] = true

		itemIDs := make(map[string]bool, len(sec.Items))
		for _, it := range sec.Items {
			if itemIDs[it.ID] {
				return fmt.Errorf("section %s: duplicate item id %s", sec.ID, it.ID)
			}
			itemIDs[it.ID] = true

			fieldIDs := make(map[string]bool, len(it.Fields))
			for _, f := range it.Fields {
				if fieldIDs[f.ID] {
					return fmt.Errorf("item %s: duplicate field id %s", it.ID, f.ID)
				}
				fieldIDs[f.ID] = true
			}
		}
	}
	return nil
}
