//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

// SpyManifestRepository implements repositories.ManifestRepository as a configurable spy.
type SpyManifestRepository struct {
	// --- Read ---
	Manifest  *entities.Manifest
	ReadErr   error
	ReadPaths []string

	// --- ApplyUpdates ---
	ApplyErr   error
	ApplyCalls []ApplyCall
}

// ApplyCall records a single invocation of ApplyUpdates.
type ApplyCall struct {
	Path string
	Deps []entities.Dependency
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (s *SpyManifestRepository) Read(path string) (*entities.Manifest, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return s.Manifest, nil
}

func (s *SpyManifestRepository) ApplyUpdates(path string, deps []entities.Dependency) error {
	s.ApplyCalls = append(s.ApplyCalls, ApplyCall{Path: path, Deps: deps})
	return s.ApplyErr
}
