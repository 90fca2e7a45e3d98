package repositories

import (
	"github.com/rios0rios0/npmtoys/internal/domain/entities"
)

// ManifestRepository reads and rewrites the dependency sections of a package manifest.
type ManifestRepository interface {
	// Read parses the manifest at path into its ordered dependency entries.
	Read(path string) (*entities.Manifest, error)

	// ApplyUpdates rewrites the specifier of every given dependency in its own section,
	// leaving the rest of the document untouched.
	ApplyUpdates(path string, deps []entities.Dependency) error
}
