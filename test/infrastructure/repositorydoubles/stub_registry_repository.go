//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

// StubRegistryRepository implements repositories.RegistryRepository with canned answers.
// It is safe for concurrent use, as the scanner queries it from several goroutines.
type StubRegistryRepository struct {
	mu       sync.Mutex
	versions map[string]string
	errs     map[string]error
	calls    map[string]int
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

// NewStubRegistryRepository creates an empty stub; unknown packages answer with ErrRegistry.
func NewStubRegistryRepository() *StubRegistryRepository {
	return &StubRegistryRepository{
		versions: make(map[string]string),
		errs:     make(map[string]error),
		calls:    make(map[string]int),
	}
}

// WithVersion makes the stub answer the given latest version for the package.
func (s *StubRegistryRepository) WithVersion(name, version string) *StubRegistryRepository {
	s.versions[name] = version
	return s
}

// WithError makes the stub fail for the package.
func (s *StubRegistryRepository) WithError(name string, err error) *StubRegistryRepository {
	s.errs[name] = err
	return s
}

func (s *StubRegistryRepository) Name() string { return "stub" }

func (s *StubRegistryRepository) FetchLatest(_ context.Context, packageName string) (*semver.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[packageName]++
	if err, ok := s.errs[packageName]; ok {
		return nil, err
	}
	version, ok := s.versions[packageName]
	if !ok {
		return nil, fmt.Errorf("%w: %s not found", entities.ErrRegistry, packageName)
	}
	return entities.ParseExactVersion(version)
}

// CallCount returns how many times the package was fetched.
func (s *StubRegistryRepository) CallCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

// TotalCalls returns the number of fetches across all packages.
func (s *StubRegistryRepository) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, count := range s.calls {
		total += count
	}
	return total
}
