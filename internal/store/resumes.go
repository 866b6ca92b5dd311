package store

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/types"
)

// AddResume creates a résumé with one version seeded from the sample document and the
// default settings, puts it first in the collection and selects it. An empty
// templateID keeps the default template.
func (s *Store) AddResume(title, templateID string) string {
	resumeID := s.newID()
	versionID := s.newID()
	now := s.nowMillis()

	settings := types.DefaultSettings()
	if templateID != "" {
		settings.TemplateID = templateID
	}
	if title == "" {
		title = defaultResumeTitle
	}

	resume := types.Resume{
		ID:    resumeID,
		Title: title,
		Versions: []types.ResumeVersion{{
			ID:        versionID,
			Name:      defaultVersionName,
			Document:  sampleDocument(s.newID),
			Settings:  settings,
			CreatedAt: now,
			UpdatedAt: now,
		}},
		CurrentVersionID: versionID,
		CreatedAt:        now,
	}

	s.editState(false, func(next *types.State) Result {
		next.Resumes = append([]types.Resume{resume}, next.Resumes...)
		next.CurrentResumeID = resumeID
		next.ActiveVersionID = versionID
		return Applied
	})
	s.logger.Debug("resume created", zap.String("resume_id", resumeID), zap.String("template", settings.TemplateID))
	return resumeID
}

// SelectResume points the selection at the résumé and its current version. Unknown
// ids leave the selection untouched and return NotFound.
func (s *Store) SelectResume(id string) Result {
	return s.editState(false, func(next *types.State) Result {
		r, ok := next.FindResume(id)
		if !ok {
			return NotFound
		}
		next.CurrentResumeID = r.ID
		next.ActiveVersionID = r.CurrentVersionID
		return Applied
	})
}

// DeleteResume removes the résumé and all of its versions. The selection is not moved
// to another résumé: if the deleted one was selected, the pointers go stale and commands
// on the active version return NotFound until something is selected.
func (s *Store) DeleteResume(id string) Result {
	return s.editState(false, func(next *types.State) Result {
		ri := resumeIndex(next.Resumes, id)
		if ri < 0 {
			return NotFound
		}
		next.Resumes = slices.Delete(next.Resumes, ri, ri+1)
		return Applied
	})
}

// Reset empties the collection and clears the selection.
func (s *Store) Reset() Result {
	return s.editState(false, func(next *types.State) Result {
		*next = *emptyState()
		return Applied
	})
}

// RenameResume changes a résumé's title.
func (s *Store) RenameResume(id, title string) Result {
	return s.editResume(id, true, func(r *types.Resume) Result {
		r.Title = title
		return Applied
	})
}

// SetArchived flags or unflags a résumé as archived.
func (s *Store) SetArchived(id string, archived bool) Result {
	return s.editResume(id, false, func(r *types.Resume) Result {
		r.IsArchived = archived
		return Applied
	})
}

// DuplicateResume deep-copies a résumé, assigning fresh résumé and version ids, and
// inserts the copy right after the original. The selection is unchanged.
func (s *Store) DuplicateResume(id string) (string, Result) {
	var copyID string
	res := s.editState(true, func(next *types.State) Result {
		ri := resumeIndex(next.Resumes, id)
		if ri < 0 {
			return NotFound
		}
		dup := next.Resumes[ri].Clone()
		dup.ID = s.newID()
		dup.Title = dup.Title + " (Copy)"
		dup.CreatedAt = s.nowMillis()
		for i := range dup.Versions {
			fresh := s.newID()
			if dup.Versions[i].ID == dup.CurrentVersionID {
				dup.CurrentVersionID = fresh
			}
			dup.Versions[i].ID = fresh
		}
		next.Resumes = slices.Insert(next.Resumes, ri+1, dup)
		copyID = dup.ID
		return Applied
	})
	return copyID, res
}

// ForkVersion copies the active version into a new version of the same résumé and
// makes it active. An empty name becomes "V<n>.0".
func (s *Store) ForkVersion(name string) (string, Result) {
	var versionID string
	res := s.editState(true, func(next *types.State) Result {
		ri := resumeIndex(next.Resumes, next.CurrentResumeID)
		if ri < 0 {
			return NotFound
		}
		r := next.Resumes[ri]
		vi := versionIndex(r.Versions, next.ActiveVersionID)
		if vi < 0 {
			return NotFound
		}
		fork := r.Versions[vi].Clone()
		fork.ID = s.newID()
		if name == "" {
			name = fmt.Sprintf("V%d.0", len(r.Versions)+1)
		}
		fork.Name = name
		now := s.nowMillis()
		fork.CreatedAt = now
		fork.UpdatedAt = now

		r.Versions = append(slices.Clone(r.Versions), fork)
		r.CurrentVersionID = fork.ID
		next.Resumes[ri] = r
		next.ActiveVersionID = fork.ID
		versionID = fork.ID
		return Applied
	})
	return versionID, res
}

// SelectVersion activates another version of the selected résumé.
func (s *Store) SelectVersion(id string) Result {
	return s.editState(false, func(next *types.State) Result {
		ri := resumeIndex(next.Resumes, next.CurrentResumeID)
		if ri < 0 {
			return NotFound
		}
		r := next.Resumes[ri]
		if versionIndex(r.Versions, id) < 0 {
			return NotFound
		}
		r.CurrentVersionID = id
		next.Resumes[ri] = r
		next.ActiveVersionID = id
		return Applied
	})
}
