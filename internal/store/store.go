// Package store owns the résumé collection and applies editing commands to it.
//
// Every command is an atomic copy-on-write transform: the successor state is built by
// copying only the path from the root to the edited node, then published with a single
// pointer swap. A *types.State returned by Snapshot is never modified afterwards, so
// readers can keep it for as long as they like.
package store

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/types"
)

// Persister loads and saves the whole collection. See the persistence package for the
// file-backed implementation.
type Persister interface {
	Load() (*types.State, error)
	Save(state *types.State) error
}

// Store is the single source of truth for all résumés.
type Store struct {
	mu     sync.Mutex // serialises writers
	state  atomic.Pointer[types.State]
	saving atomic.Bool

	now       func() time.Time
	newID     func() string
	persister Persister
	logger    *zap.Logger

	lastSaveErr error
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source used for new résumés, versions, sections,
// items and fields.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithPersister enables loading in Init and saving after every applied command.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a store holding an empty collection. Call Init to load persisted state.
func New(opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		newID:  uuid.NewString,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.Store(emptyState())
	return s
}

func emptyState() *types.State {
	return &types.State{Resumes: []types.Resume{}}
}

// Init replaces the collection with the persisted one. Missing or unreadable state
// falls back to an empty collection; Init never fails.
func (s *Store) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persister == nil {
		return
	}
	loaded, err := s.persister.Load()
	if err != nil {
		s.logger.Warn("discarding persisted state", zap.Error(err))
		loaded = nil
	}
	if loaded == nil {
		loaded = emptyState()
	}
	if loaded.Resumes == nil {
		loaded.Resumes = []types.Resume{}
	}
	s.state.Store(loaded)
	s.logger.Debug("store initialised", zap.Int("resumes", len(loaded.Resumes)))
}

// Teardown writes the current state one last time and reports the save error, if any.
func (s *Store) Teardown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(s.state.Load()); err != nil {
		s.lastSaveErr = err
		return err
	}
	s.lastSaveErr = nil
	s.saving.Store(false)
	return nil
}

// Snapshot returns the current immutable state.
func (s *Store) Snapshot() *types.State {
	return s.state.Load()
}

// ActiveVersion returns the selected version of the selected résumé, if any.
func (s *Store) ActiveVersion() (types.ResumeVersion, bool) {
	return s.Snapshot().ActiveVersion()
}

// Saving reports whether a content edit happened since the flag was last cleared.
func (s *Store) Saving() bool {
	return s.saving.Load()
}

// ClearSaving resets the saving flag. Collaborators call it once they consider the
// edit persisted.
func (s *Store) ClearSaving() {
	s.saving.Store(false)
}

// LastSaveError returns the error of the most recent autosave, or nil.
func (s *Store) LastSaveError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaveErr
}

func (s *Store) nowMillis() int64 {
	return s.now().UnixMilli()
}

// commit publishes next. Callers hold s.mu.
func (s *Store) commit(next *types.State, content bool) {
	s.state.Store(next)
	if content {
		s.saving.Store(true)
	}
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(next); err != nil {
		s.lastSaveErr = err
		s.logger.Error("autosave failed", zap.Error(err))
		return
	}
	s.lastSaveErr = nil
}

// editState runs fn on a shallow copy of the state whose Resumes slice is already a
// fresh copy. fn must copy anything below that before changing it.
func (s *Store) editState(content bool, fn func(next *types.State) Result) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.state.Load()
	next := *cur
	next.Resumes = slices.Clone(cur.Resumes)
	res := fn(&next)
	if res != Applied {
		return res
	}
	s.commit(&next, content)
	return Applied
}

// editResume runs fn on a copy of the résumé with the given id; its Versions slice is a
// fresh copy.
func (s *Store) editResume(id string, content bool, fn func(r *types.Resume) Result) Result {
	return s.editState(content, func(next *types.State) Result {
		ri := resumeIndex(next.Resumes, id)
		if ri < 0 {
			return NotFound
		}
		r := next.Resumes[ri]
		r.Versions = slices.Clone(r.Versions)
		res := fn(&r)
		if res == Applied {
			next.Resumes[ri] = r
		}
		return res
	})
}

// editVersion runs fn on a copy of the active version; its Sections slice is a fresh
// copy. Content edits stamp UpdatedAt.
func (s *Store) editVersion(content bool, fn func(v *types.ResumeVersion) Result) Result {
	return s.editState(content, func(next *types.State) Result {
		ri := resumeIndex(next.Resumes, next.CurrentResumeID)
		if ri < 0 {
			return NotFound
		}
		r := next.Resumes[ri]
		vi := versionIndex(r.Versions, next.ActiveVersionID)
		if vi < 0 {
			return NotFound
		}
		v := r.Versions[vi]
		v.Document.Sections = slices.Clone(v.Document.Sections)
		res := fn(&v)
		if res != Applied {
			return res
		}
		if content {
			v.UpdatedAt = s.nowMillis()
		}
		r.Versions = slices.Clone(r.Versions)
		r.Versions[vi] = v
		next.Resumes[ri] = r
		return Applied
	})
}

// editSection runs fn on a copy of a section of the active version; its Items slice
// is a fresh copy.
func (s *Store) editSection(sectionID string, content bool, fn func(sec *types.Section) Result) Result {
	return s.editVersion(content, func(v *types.ResumeVersion) Result {
		si := sectionIndex(v.Document.Sections, sectionID)
		if si < 0 {
			return NotFound
		}
		sec := v.Document.Sections[si]
		sec.Items = slices.Clone(sec.Items)
		res := fn(&sec)
		if res == Applied {
			v.Document.Sections[si] = sec
		}
		return res
	})
}

// editItem runs fn on a deep copy of an item.
func (s *Store) editItem(sectionID, itemID string, content bool, fn func(it *types.Item) Result) Result {
	return s.editSection(sectionID, content, func(sec *types.Section) Result {
		ii := itemIndex(sec.Items, itemID)
		if ii < 0 {
			return NotFound
		}
		it := sec.Items[ii].Clone()
		res := fn(&it)
		if res == Applied {
			sec.Items[ii] = it
		}
		return res
	})
}

func resumeIndex(resumes []types.Resume, id string) int {
	return slices.IndexFunc(resumes, func(r types.Resume) bool { return r.ID == id })
}

func versionIndex(versions []types.ResumeVersion, id string) int {
	return slices.IndexFunc(versions, func(v types.ResumeVersion) bool { return v.ID == id })
}

func sectionIndex(sections []types.Section, id string) int {
	return slices.IndexFunc(sections, func(s types.Section) bool { return s.ID == id })
}

func itemIndex(items []types.Item, id string) int {
	return slices.IndexFunc(items, func(it types.Item) bool { return it.ID == id })
}

func fieldIndex(fields []types.CustomField, id string) int {
	return slices.IndexFunc(fields, func(f types.CustomField) bool { return f.ID == id })
}

// move relocates list[from] so that it ends up at index to of the result: the
// element is removed first and then inserted into the shortened list. to is clamped to
// the valid insertion range. The list must already be a private copy.
func move[T any](list []T, from, to int) ([]T, bool) {
	if from < 0 || from >= len(list) {
		return list, false
	}
	el := list[from]
	list = slices.Delete(list, from, from+1)
	to = max(0, min(to, len(list)))
	return slices.Insert(list, to, el), true
}
