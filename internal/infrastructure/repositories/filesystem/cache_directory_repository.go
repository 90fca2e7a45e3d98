package filesystem

import (
	"os"
	"path/filepath"
	"slices"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

// CacheDirectoryRepository implements repositories.CacheDirectoryRepository on an afero filesystem.
type CacheDirectoryRepository struct {
	fs afero.Fs
}

// NewCacheDirectoryRepository creates a cache directory repository on the given filesystem.
func NewCacheDirectoryRepository(fs afero.Fs) repositories.CacheDirectoryRepository {
	return &CacheDirectoryRepository{fs: fs}
}

// Find walks root and records every directory called name without descending into it,
// so caches nested inside a match are covered by the outer one.
// Unreadable subdirectories are logged and skipped; symlinks are not followed.
func (r *CacheDirectoryRepository) Find(root, name string) ([]string, error) {
	var found []string

	err := afero.Walk(r.fs, root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warnf("Skipping %s: %v", path, walkErr)
			return nil
		}
		if !info.IsDir() || path == root {
			return nil
		}
		if info.Name() == name {
			found = append(found, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(found)
	return found, nil
}

// Remove deletes the directory recursively.
func (r *CacheDirectoryRepository) Remove(path string) error {
	return r.fs.RemoveAll(path)
}
