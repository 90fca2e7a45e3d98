//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/Masterminds/semver/v3"
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
)

// DependencyBuilder helps create update candidates with a fluent interface.
// The severity and breaking flag are derived from the specifier and latest
// version the same way the scanner does it.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name      string
	section   string
	specifier string
	latest    string
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-package",
		section:     entities.SectionDependencies,
		specifier:   "^1.0.0",
		latest:      "1.1.0",
	}
}

// WithName sets the package name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithSection sets the manifest section.
func (b *DependencyBuilder) WithSection(section string) *DependencyBuilder {
	b.section = section
	return b
}

// AsDev places the dependency in devDependencies.
func (b *DependencyBuilder) AsDev() *DependencyBuilder {
	b.section = entities.SectionDevDependencies
	return b
}

// WithSpecifier sets the declared specifier.
func (b *DependencyBuilder) WithSpecifier(specifier string) *DependencyBuilder {
	b.specifier = specifier
	return b
}

// WithLatest sets the latest published version.
func (b *DependencyBuilder) WithLatest(version string) *DependencyBuilder {
	b.latest = version
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
// It panics on an unparsable specifier or version, which is a test bug.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	latest := semver.MustParse(b.latest)
	class, err := entities.Classify(b.specifier, latest)
	if err != nil {
		panic(err)
	}
	entry := entities.ManifestEntry{Name: b.name, Section: b.section, Specifier: b.specifier}
	return entities.NewDependency(entry, latest, class)
}

// BuildEntry creates the manifest entry the dependency was read from.
func (b *DependencyBuilder) BuildEntry() entities.ManifestEntry {
	return entities.ManifestEntry{Name: b.name, Section: b.section, Specifier: b.specifier}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.section = entities.SectionDependencies
	b.specifier = "^1.0.0"
	b.latest = "1.1.0"
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		section:     b.section,
		specifier:   b.specifier,
		latest:      b.latest,
	}
}
