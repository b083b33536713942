package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"marketflow/internal/application"
	"marketflow/internal/domain"
)

// FileStore persists the exchange snapshot as one JSON file. Writes go to a
// temporary file in the same directory and are atomically renamed into
// place, so a reader never observes a half-written snapshot. Failures never
// escape: load degrades to "absent", save and clear log and move on.
type FileStore struct {
	path string
	log  *zap.Logger
}

var _ application.SnapshotStore = (*FileStore)(nil)

func NewFileStore(path string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Save(exchanges []domain.Exchange) {
	data, err := json.Marshal(exchanges)
	if err != nil {
		s.log.Warn("snapshot marshal failed", zap.Error(err))
		return
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Warn("snapshot dir create failed", zap.String("dir", dir), zap.Error(err))
		return
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		s.log.Warn("snapshot temp create failed", zap.Error(err))
		return
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		s.log.Warn("snapshot write failed", zap.Error(err))
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		s.log.Warn("snapshot close failed", zap.Error(err))
		return
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		s.log.Warn("snapshot rename failed", zap.Error(err))
	}
}

func (s *FileStore) Load() ([]domain.Exchange, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("snapshot read failed", zap.Error(err))
		}
		return nil, false
	}
	var exchanges []domain.Exchange
	if err := json.Unmarshal(data, &exchanges); err != nil {
		// A corrupt file counts as no cache, never as a fatal condition.
		s.log.Warn("snapshot unmarshal failed", zap.Error(err))
		return nil, false
	}
	return exchanges, true
}

func (s *FileStore) Clear() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("snapshot remove failed", zap.Error(err))
	}
}
