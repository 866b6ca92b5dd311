package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestAddResume(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.AddResume("Backend", "")
	state := s.Snapshot()

	require.Len(t, state.Resumes, 1)
	r := state.Resumes[0]
	assert.Equal(t, id, r.ID)
	assert.Equal(t, "Backend", r.Title)
	assert.False(t, r.IsArchived)
	assert.Equal(t, int64(1_700_000_000_000), r.CreatedAt)

	require.Len(t, r.Versions, 1)
	v := r.Versions[0]
	assert.Equal(t, "V1.0", v.Name)
	assert.Equal(t, v.ID, r.CurrentVersionID)
	assert.Equal(t, types.DefaultSettings(), v.Settings)
	assert.Equal(t, r.CreatedAt, v.CreatedAt)
	assert.Equal(t, r.CreatedAt, v.UpdatedAt)
	assert.Equal(t, "Dr. Jonathan J. Sterling", v.Document.Basics.Name)
	assert.Len(t, v.Document.Sections, 3)

	assert.Equal(t, id, state.CurrentResumeID)
	assert.Equal(t, v.ID, state.ActiveVersionID)
}

func TestAddResume_DefaultsAndOrdering(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.AddResume("", "")
	second := s.AddResume("Design", "graphic")
	state := s.Snapshot()

	require.Len(t, state.Resumes, 2)
	assert.Equal(t, second, state.Resumes[0].ID, "new résumés go first")
	assert.Equal(t, first, state.Resumes[1].ID)
	assert.Equal(t, "New Resume", state.Resumes[1].Title)
	assert.Equal(t, "graphic", state.Resumes[0].Versions[0].Settings.TemplateID)
	assert.Equal(t, second, state.CurrentResumeID)
}

func TestAddResume_SeedsFreshIDs(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddResume("A", "")
	s.AddResume("B", "")

	seen := map[string]bool{}
	for _, r := range s.Snapshot().Resumes {
		for _, sec := range r.Versions[0].Document.Sections {
			assert.False(t, seen[sec.ID], "section id %s reused", sec.ID)
			seen[sec.ID] = true
			for _, it := range sec.Items {
				assert.False(t, seen[it.ID], "item id %s reused", it.ID)
				seen[it.ID] = true
			}
		}
	}
}

func TestSelectResume(t *testing.T) {
	s, _ := newTestStore(t)
	first := s.AddResume("First", "")
	s.AddResume("Second", "")

	assert.Equal(t, Applied, s.SelectResume(first))
	state := s.Snapshot()
	assert.Equal(t, first, state.CurrentResumeID)
	r, _ := state.FindResume(first)
	assert.Equal(t, r.CurrentVersionID, state.ActiveVersionID)
}

func TestSelectResume_UnknownLeavesSelection(t *testing.T) {
	s, _ := newSeededStore(t)
	before := s.Snapshot()

	assert.Equal(t, NotFound, s.SelectResume("nope"))
	assert.Same(t, before, s.Snapshot())
}

func TestDeleteResume_LeavesSelectionStale(t *testing.T) {
	s, _ := newTestStore(t)
	other := s.AddResume("Other", "")
	selected := s.AddResume("Selected", "")

	assert.Equal(t, Applied, s.DeleteResume(selected))
	state := s.Snapshot()

	require.Len(t, state.Resumes, 1)
	assert.Equal(t, other, state.Resumes[0].ID)
	assert.Equal(t, selected, state.CurrentResumeID, "selection is not migrated")

	_, ok := s.ActiveVersion()
	assert.False(t, ok)
	_, res := s.AddSection(types.SectionAwards, "")
	assert.Equal(t, NotFound, res)
	assert.Equal(t, NotFound, s.UpdateDocumentBasics(BasicsPatch{Name: String("x")}))
	assert.Equal(t, NotFound, s.DeleteResume(selected))
}

func TestReset(t *testing.T) {
	s, _ := newSeededStore(t)

	assert.Equal(t, Applied, s.Reset())
	state := s.Snapshot()
	assert.Empty(t, state.Resumes)
	assert.NotNil(t, state.Resumes)
	assert.Empty(t, state.CurrentResumeID)
	assert.Empty(t, state.ActiveVersionID)
}

func TestRenameAndArchive(t *testing.T) {
	s, _ := newSeededStore(t)
	id := s.Snapshot().CurrentResumeID

	assert.Equal(t, Applied, s.RenameResume(id, "Platform"))
	assert.True(t, s.Saving())
	s.ClearSaving()

	assert.Equal(t, Applied, s.SetArchived(id, true))
	assert.False(t, s.Saving(), "archiving is not a content edit")

	r, _ := s.Snapshot().FindResume(id)
	assert.Equal(t, "Platform", r.Title)
	assert.True(t, r.IsArchived)

	assert.Equal(t, NotFound, s.RenameResume("nope", "x"))
	assert.Equal(t, NotFound, s.SetArchived("nope", true))
}

func TestDuplicateResume(t *testing.T) {
	s, _ := newSeededStore(t)
	other := s.AddResume("Other", "")
	source := s.Snapshot().Resumes[1].ID

	copyID, res := s.DuplicateResume(source)
	require.Equal(t, Applied, res)
	state := s.Snapshot()

	require.Len(t, state.Resumes, 3)
	assert.Equal(t, []string{other, source, copyID}, []string{state.Resumes[0].ID, state.Resumes[1].ID, state.Resumes[2].ID})

	orig, dup := state.Resumes[1], state.Resumes[2]
	assert.Equal(t, "Backend (Copy)", dup.Title)
	assert.NotEqual(t, orig.Versions[0].ID, dup.Versions[0].ID)
	assert.Equal(t, dup.Versions[0].ID, dup.CurrentVersionID)
	assert.Equal(t, orig.Versions[0].Document, dup.Versions[0].Document)
	assert.Equal(t, other, state.CurrentResumeID, "selection unchanged")

	// The copy shares nothing with the original.
	require.Equal(t, Applied, s.SelectResume(copyID))
	exp := sectionByType(t, s, types.SectionExperience)
	require.Equal(t, Applied, s.UpdateBullet(exp.ID, exp.Items[0].ID, 0, "changed"))
	orig, _ = s.Snapshot().FindResume(source)
	assert.NotEqual(t, "changed", orig.Versions[0].Document.Sections[0].Items[0].Bullets[0])

	_, res = s.DuplicateResume("nope")
	assert.Equal(t, NotFound, res)
}

func TestForkAndSelectVersion(t *testing.T) {
	s, clock := newSeededStore(t)
	original := activeVersion(t, s)
	clock.Advance(time.Minute)

	forkID, res := s.ForkVersion("")
	require.Equal(t, Applied, res)

	fork := activeVersion(t, s)
	assert.Equal(t, forkID, fork.ID)
	assert.Equal(t, "V2.0", fork.Name)
	assert.Equal(t, original.Document, fork.Document)
	assert.Equal(t, clock.Now().UnixMilli(), fork.CreatedAt)

	r, _ := s.Snapshot().FindResume(s.Snapshot().CurrentResumeID)
	assert.Len(t, r.Versions, 2)
	assert.Equal(t, forkID, r.CurrentVersionID)

	// Editing the fork leaves the original version alone.
	require.Equal(t, Applied, s.UpdateDocumentBasics(BasicsPatch{Name: String("Forked")}))
	assert.Equal(t, Applied, s.SelectVersion(original.ID))
	assert.Equal(t, "Dr. Jonathan J. Sterling", activeVersion(t, s).Document.Basics.Name)

	named, res := s.ForkVersion("Tailored")
	require.Equal(t, Applied, res)
	r, _ = s.Snapshot().FindResume(s.Snapshot().CurrentResumeID)
	v, _ := r.FindVersion(named)
	assert.Equal(t, "Tailored", v.Name)

	assert.Equal(t, NotFound, s.SelectVersion("nope"))
}

func TestInit(t *testing.T) {
	loaded := &types.State{
		Resumes: []types.Resume{{
			ID: "r1", Title: "Stored", CurrentVersionID: "v1",
			Versions: []types.ResumeVersion{{ID: "v1", Settings: types.DefaultSettings()}},
		}},
		CurrentResumeID: "r1",
		ActiveVersionID: "v1",
	}

	t.Run("loads persisted state", func(t *testing.T) {
		s, _ := newTestStore(t, WithPersister(&memPersister{loaded: loaded}))
		s.Init()
		assert.Same(t, loaded, s.Snapshot())
		_, ok := s.ActiveVersion()
		assert.True(t, ok)
	})

	t.Run("load error falls back to empty", func(t *testing.T) {
		s, _ := newTestStore(t, WithPersister(&memPersister{loaded: loaded, loadErr: errors.New("disk on fire")}))
		s.Init()
		assert.Empty(t, s.Snapshot().Resumes)
		assert.NotNil(t, s.Snapshot().Resumes)
	})

	t.Run("nil state falls back to empty", func(t *testing.T) {
		s, _ := newTestStore(t, WithPersister(&memPersister{}))
		s.Init()
		assert.NotNil(t, s.Snapshot().Resumes)
	})

	t.Run("no persister", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.Init()
		assert.Empty(t, s.Snapshot().Resumes)
	})
}

func TestAutosave(t *testing.T) {
	p := &memPersister{}
	s, _ := newTestStore(t, WithPersister(p))

	s.AddResume("Backend", "")
	require.Len(t, p.saves, 1)
	assert.Same(t, s.Snapshot(), p.saves[0])

	assert.Equal(t, NotFound, s.SelectResume("nope"))
	assert.Len(t, p.saves, 1, "no-ops are not saved")

	p.saveErr = errors.New("read-only filesystem")
	assert.Equal(t, Applied, s.UpdateDocumentBasics(BasicsPatch{Name: String("Still applied")}))
	assert.Equal(t, "Still applied", activeVersion(t, s).Document.Basics.Name)
	assert.EqualError(t, s.LastSaveError(), "read-only filesystem")

	p.saveErr = nil
	require.NoError(t, s.Teardown())
	assert.NoError(t, s.LastSaveError())
	assert.False(t, s.Saving())
	assert.Same(t, s.Snapshot(), p.saves[len(p.saves)-1])
}

func TestTeardown_ReportsSaveError(t *testing.T) {
	p := &memPersister{saveErr: errors.New("quota exceeded")}
	s, _ := newTestStore(t, WithPersister(p))

	assert.EqualError(t, s.Teardown(), "quota exceeded")

	s2, _ := newTestStore(t)
	assert.NoError(t, s2.Teardown())
}
