//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

// StubCacheDirectoryRepository implements repositories.CacheDirectoryRepository with canned answers.
type StubCacheDirectoryRepository struct {
	// --- Find ---
	Found     []string
	FindErr   error
	FindRoots []string

	// --- Remove ---
	RemoveErrs map[string]error
	Removed    []string
}

var _ repositories.CacheDirectoryRepository = (*StubCacheDirectoryRepository)(nil)

func (s *StubCacheDirectoryRepository) Find(root, _ string) ([]string, error) {
	s.FindRoots = append(s.FindRoots, root)
	return s.Found, s.FindErr
}

func (s *StubCacheDirectoryRepository) Remove(path string) error {
	if err, ok := s.RemoveErrs[path]; ok {
		return err
	}
	s.Removed = append(s.Removed, path)
	return nil
}
