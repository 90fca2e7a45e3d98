package repositories

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

// RegistryRepository abstracts a package registry that publishes the latest version of a package.
// Implementations do not retry: a failed lookup is returned to the caller, which decides
// whether the package is skipped.
type RegistryRepository interface {
	// Name returns the registry identifier (e.g. "npm").
	Name() string

	// FetchLatest returns the exact version currently tagged as latest for the package.
	FetchLatest(ctx context.Context, packageName string) (*semver.Version, error)
}
