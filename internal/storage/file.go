package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
)

// FileStore keeps the collection in one JSON file. Writes go through a
// temp file with fsync and rename so a crash never leaves a torn payload.
type FileStore struct {
	path   string
	mu     sync.RWMutex
	logger internal.Logger
}

func NewFileStore(path string, logger internal.Logger) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Errorf("storage: failed to create data dir %s: %v", dir, err)
			return nil, err
		}
	}
	return &FileStore{path: path, logger: logger}, nil
}

func (s *FileStore) Read(ctx context.Context) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *FileStore) Write(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return atomicWriteFile(s.path, data)
}

func (s *FileStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func atomicWriteFile(filePath string, data []byte) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

var _ Store = (*FileStore)(nil)
