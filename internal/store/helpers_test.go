package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// sequentialIDs returns an id source yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// memPersister records saves and can be told to fail.
type memPersister struct {
	loaded  *types.State
	loadErr error
	saveErr error
	saves   []*types.State
}

func (m *memPersister) Load() (*types.State, error) {
	return m.loaded, m.loadErr
}

func (m *memPersister) Save(state *types.State) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves = append(m.saves, state)
	return nil
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
	base := []Option{WithClock(clock.Now), WithIDGenerator(sequentialIDs())}
	return New(append(base, opts...)...), clock
}

// newSeededStore returns a store holding one selected résumé.
func newSeededStore(t *testing.T, opts ...Option) (*Store, *fakeClock) {
	t.Helper()
	s, clock := newTestStore(t, opts...)
	s.AddResume("Backend", "")
	s.ClearSaving()
	return s, clock
}

func activeVersion(t *testing.T, s *Store) types.ResumeVersion {
	t.Helper()
	v, ok := s.ActiveVersion()
	require.True(t, ok, "no active version")
	return v
}

func sectionByType(t *testing.T, s *Store, st types.SectionType) types.Section {
	t.Helper()
	for _, sec := range activeVersion(t, s).Document.Sections {
		if sec.Type == st {
			return sec
		}
	}
	t.Fatalf("no %s section", st)
	return types.Section{}
}

func sectionIDs(v types.ResumeVersion) []string {
	ids := make([]string, len(v.Document.Sections))
	for i, sec := range v.Document.Sections {
		ids[i] = sec.ID
	}
	return ids
}
