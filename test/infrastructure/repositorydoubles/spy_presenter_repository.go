//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

// SpyPresenterRepository implements repositories.PresenterRepository as a configurable spy.
// A nil selection function selects everything that was offered.
type SpyPresenterRepository struct {
	// --- SelectDependencies ---
	SelectDependenciesFn  func([]entities.Dependency) []entities.Dependency
	SelectDependenciesErr error
	OfferedDependencies   []entities.Dependency

	// --- SelectDirectories ---
	SelectDirectoriesFn  func([]string) []string
	SelectDirectoriesErr error
	OfferedDirectories   []string

	// --- Confirm ---
	ConfirmResult   bool
	ConfirmErr      error
	ConfirmMessages []string
}

var _ repositories.PresenterRepository = (*SpyPresenterRepository)(nil)

func (s *SpyPresenterRepository) SelectDependencies(
	_ context.Context, deps []entities.Dependency,
) ([]entities.Dependency, error) {
	s.OfferedDependencies = deps
	if s.SelectDependenciesErr != nil {
		return nil, s.SelectDependenciesErr
	}
	if s.SelectDependenciesFn == nil {
		return deps, nil
	}
	return s.SelectDependenciesFn(deps), nil
}

func (s *SpyPresenterRepository) SelectDirectories(_ context.Context, dirs []string) ([]string, error) {
	s.OfferedDirectories = dirs
	if s.SelectDirectoriesErr != nil {
		return nil, s.SelectDirectoriesErr
	}
	if s.SelectDirectoriesFn == nil {
		return dirs, nil
	}
	return s.SelectDirectoriesFn(dirs), nil
}

func (s *SpyPresenterRepository) Confirm(_ context.Context, message string) (bool, error) {
	s.ConfirmMessages = append(s.ConfirmMessages, message)
	return s.ConfirmResult, s.ConfirmErr
}
