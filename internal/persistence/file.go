// Package persistence stores the résumé collection in a JSON file on local disk.
package persistence

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// StorageKey names the storage file inside the data directory.
const StorageKey = "resume-pro-elite-v7-storage"

// FileStore loads and saves the whole collection as one JSON document.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore returns a store writing to <dir>/<StorageKey>.json. A nil logger
// discards output.
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{
		path:   filepath.Join(dir, StorageKey+".json"),
		logger: logger,
	}
}

// Path returns the storage file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the collection. A missing file yields an empty collection. A file that
// is not valid JSON, violates the state schema or breaks the model's invariants is
// discarded with a warning and also yields an empty collection. Only an unreadable
// file is reported as an error.
func (f *FileStore) Load() (*types.State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.logger.Debug("no stored state", zap.String("path", f.path))
			return Empty(), nil
		}
		return nil, &LoadError{Path: f.path, Message: "failed to read storage file", Cause: err}
	}

	state, err := Decode(data)
	if err != nil {
		f.logger.Warn("discarding malformed stored state", zap.String("path", f.path), zap.Error(err))
		return Empty(), nil
	}
	f.logger.Debug("loaded stored state", zap.String("path", f.path), zap.Int("resumes", len(state.Resumes)))
	return state, nil
}

// Save writes the collection atomically: the data goes to a temporary file in the
// same directory which then replaces the storage file.
func (f *FileStore) Save(state *types.State) error {
	if state == nil {
		state = Empty()
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return &SaveError{Path: f.path, Message: "failed to marshal state", Cause: err}
	}
	if err := WriteFileAtomic(f.path, data); err != nil {
		return &SaveError{Path: f.path, Message: "failed to write storage file", Cause: err}
	}
	return nil
}

// Decode parses persisted state, checking it against the state schema and the
// model's structural invariants.
func Decode(data []byte) (*types.State, error) {
	if err := schemas.ValidateState(data); err != nil {
		return nil, err
	}
	var state types.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if err := types.ValidateState(&state); err != nil {
		return nil, err
	}
	if state.Resumes == nil {
		state.Resumes = []types.Resume{}
	}
	return &state, nil
}

// Empty returns an empty collection with no selection.
func Empty() *types.State {
	return &types.State{Resumes: []types.Resume{}}
}

// WriteFileAtomic writes data to a temporary sibling of path and renames it into
// place, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
