//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
)

// SettingsBuilder helps create Settings for tests, starting from the defaults.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder holding the default settings.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    *entities.NewDefaultSettings(),
	}
}

// WithRegistryURL sets the registry base URL.
func (b *SettingsBuilder) WithRegistryURL(url string) *SettingsBuilder {
	b.settings.Registry.URL = url
	return b
}

// WithRegistryType sets the registry client type.
func (b *SettingsBuilder) WithRegistryType(registryType string) *SettingsBuilder {
	b.settings.Registry.Type = registryType
	return b
}

// WithTimeout sets the per-request registry timeout.
func (b *SettingsBuilder) WithTimeout(timeout time.Duration) *SettingsBuilder {
	b.settings.Registry.Timeout = timeout
	return b
}

// WithConcurrency sets the maximum number of registry requests in flight.
func (b *SettingsBuilder) WithConcurrency(concurrency int) *SettingsBuilder {
	b.settings.Concurrency = concurrency
	return b
}

// WithIgnore sets the ignored package names.
func (b *SettingsBuilder) WithIgnore(names ...string) *SettingsBuilder {
	b.settings.Ignore = names
	return b
}

// WithManifest sets the manifest file name.
func (b *SettingsBuilder) WithManifest(manifest string) *SettingsBuilder {
	b.settings.Manifest = manifest
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	settings.Ignore = append([]string(nil), b.settings.Ignore...)
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = *entities.NewDefaultSettings()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	clone := &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    b.settings,
	}
	clone.settings.Ignore = append([]string(nil), b.settings.Ignore...)
	return clone
}
