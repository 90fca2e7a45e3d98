package commands

import (
	"context"
	"fmt"
	"sync"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

// ManifestScanner reads a manifest and checks every declared dependency against a registry.
type ManifestScanner struct {
	manifests repositories.ManifestRepository
	registry  repositories.RegistryRepository
	settings  *entities.Settings
}

// NewManifestScanner creates a scanner bound to one registry client.
func NewManifestScanner(
	manifests repositories.ManifestRepository,
	registry repositories.RegistryRepository,
	settings *entities.Settings,
) *ManifestScanner {
	return &ManifestScanner{
		manifests: manifests,
		registry:  registry,
		settings:  settings,
	}
}

// Scan returns the dependencies of the manifest that have an update available, sorted by name.
//
// Manifest-level failures are returned as errors. A dependency whose lookup or
// classification fails is logged, recorded in ScanResult.Failures and skipped.
func (it *ManifestScanner) Scan(ctx context.Context, path string) (*entities.ScanResult, error) {
	manifest, err := it.manifests.Read(path)
	if err != nil {
		return nil, err
	}
	if !manifest.HasDependencies() {
		return nil, fmt.Errorf("%w: %s", entities.ErrNoDependencies, path)
	}

	pending := it.pendingByName(manifest.Entries)
	logger.Infof("[%s] Checking %d package(s) from %s", it.registry.Name(), len(pending), path)

	result := &entities.ScanResult{}
	var mu sync.Mutex

	// one task per package name: a name declared in both sections is fetched once
	var group errgroup.Group
	group.SetLimit(it.concurrency())
	for name, entries := range pending {
		group.Go(func() error {
			deps, failures := it.check(ctx, name, entries)

			mu.Lock()
			defer mu.Unlock()
			result.Dependencies = append(result.Dependencies, deps...)
			result.Failures = append(result.Failures, failures...)
			return nil
		})
	}
	_ = group.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	result.Sort()
	return result, nil
}

// pendingByName drops ignored, wildcard and upper-bound-only entries and groups the rest by package name.
func (it *ManifestScanner) pendingByName(entries []entities.ManifestEntry) map[string][]entities.ManifestEntry {
	pending := make(map[string][]entities.ManifestEntry)
	for _, entry := range entries {
		switch {
		case it.settings.IsIgnored(entry.Name):
			logger.Debugf("[%s] Ignoring %s (%s): listed in settings", it.registry.Name(), entry.Name, entry.Section)
		case entities.IsWildcard(entry.Specifier):
			logger.Debugf("[%s] Ignoring %s (%s): wildcard specifier", it.registry.Name(), entry.Name, entry.Section)
		case entities.IsUpperBoundOnly(entry.Specifier):
			logger.Debugf("[%s] Ignoring %s (%s): upper bound only", it.registry.Name(), entry.Name, entry.Section)
		default:
			pending[entry.Name] = append(pending[entry.Name], entry)
		}
	}
	return pending
}

// check fetches the latest version of a package and classifies each of its manifest entries.
func (it *ManifestScanner) check(
	ctx context.Context,
	name string,
	entries []entities.ManifestEntry,
) ([]entities.Dependency, []entities.ScanFailure) {
	var deps []entities.Dependency
	var failures []entities.ScanFailure

	latest, err := it.registry.FetchLatest(ctx, name)
	if err != nil {
		for _, entry := range entries {
			failures = append(failures, it.skip(entry, err))
		}
		return nil, failures
	}

	for _, entry := range entries {
		class, classifyErr := entities.Classify(entry.Specifier, latest)
		if classifyErr != nil {
			failures = append(failures, it.skip(entry, classifyErr))
			continue
		}

		logger.Debugf("[%s] %s (%s): %s -> %s (%s)",
			it.registry.Name(), entry.Name, entry.Section, entry.Specifier, latest, class.Severity)
		if class.UpdateAvailable {
			deps = append(deps, entities.NewDependency(entry, latest, class))
		}
	}
	return deps, failures
}

func (it *ManifestScanner) skip(entry entities.ManifestEntry, err error) entities.ScanFailure {
	logger.Warnf("[%s] Skipping %s (%s): %v", it.registry.Name(), entry.Name, entry.Section, err)
	return entities.ScanFailure{Name: entry.Name, Section: entry.Section, Err: err}
}

func (it *ManifestScanner) concurrency() int {
	if it.settings.Concurrency < 1 {
		return entities.DefaultConcurrency
	}
	return it.settings.Concurrency
}
