// Package cas stores catalog resolutions on disk, one JSON file per asset.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResolutionStore = (*Store)(nil)

// Store implements ports.ResolutionStore using a file-per-asset strategy.
type Store struct {
	dir string
}

// entry is the on-disk form of one resolution.
type entry struct {
	ProjectID uint32            `json:"projectID"`
	FileID    uint32            `json:"fileID"`
	File      domain.RemoteFile `json:"file"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	clean := filepath.Clean(dir)
	if err := os.MkdirAll(clean, domain.DirPerm); err != nil {
		return nil, zerr.With(domain.Because(domain.ErrCacheCreateFailed, err), "path", clean)
	}
	return &Store{dir: clean}, nil
}

// Get returns the cached resolution for ref, or nil, nil if there is none.
// An entry recorded for a different asset under the same key is treated as missing.
func (s *Store) Get(ref domain.AssetRef) (*domain.RemoteFile, error) {
	path := s.path(ref)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.Because(domain.ErrCacheReadFailed, err), "path", path)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, zerr.With(domain.Because(domain.ErrCacheReadFailed, err), "path", path)
	}
	if e.ProjectID != ref.ProjectID || e.FileID != ref.FileID {
		return nil, nil
	}
	return &e.File, nil
}

// Put records the resolution for ref, replacing any previous entry atomically.
func (s *Store) Put(ref domain.AssetRef, file domain.RemoteFile) error {
	data, err := json.MarshalIndent(entry{
		ProjectID: ref.ProjectID,
		FileID:    ref.FileID,
		File:      file,
		Timestamp: time.Now(),
	}, "", "  ")
	if err != nil {
		return domain.Because(domain.ErrCacheWriteFailed, err)
	}

	path := s.path(ref)
	if err := atomicWriteFile(path, data); err != nil {
		return zerr.With(domain.Because(domain.ErrCacheWriteFailed, err), "path", path)
	}
	return nil
}

func (s *Store) path(ref domain.AssetRef) string {
	sum := xxhash.Sum64String(ref.Key())
	return filepath.Join(s.dir, strconv.FormatUint(sum, 16)+".json")
}

// atomicWriteFile writes data to a temp file next to path and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "catalog-cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
