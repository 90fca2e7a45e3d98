package entities

import (
	"github.com/Masterminds/semver/v3"
)

// Manifest section names. Each one is an independent namespace of package names.
const (
	SectionDependencies    = "dependencies"
	SectionDevDependencies = "devDependencies"
)

// Sections lists the manifest sections in the order they are scanned and reported.
var Sections = []string{SectionDependencies, SectionDevDependencies} //nolint:gochecknoglobals // fixed list

// Dependency represents a declared package whose latest registry version has been classified.
type Dependency struct {
	Name              string          // Package name as declared in the manifest
	Section           string          // "dependencies" or "devDependencies"
	DeclaredSpecifier string          // Raw specifier written in the manifest
	Prefix            string          // Leading range operator of the specifier ("^", "~", ...)
	LatestVersion     *semver.Version // Latest version published on the registry
	UpdateAvailable   bool
	Severity          Severity
	Breaking          bool
	FormattedLatest   string // Prefix + major.minor.patch, for display
}

// NewDependency builds a Dependency from a manifest entry and its classification.
func NewDependency(entry ManifestEntry, latest *semver.Version, class Classification) Dependency {
	return Dependency{
		Name:              entry.Name,
		Section:           entry.Section,
		DeclaredSpecifier: entry.Specifier,
		Prefix:            class.Prefix,
		LatestVersion:     latest,
		UpdateAvailable:   class.UpdateAvailable,
		Severity:          class.Severity,
		Breaking:          class.Breaking,
		FormattedLatest:   class.FormattedLatest,
	}
}

// UpdatedSpecifier returns the value written back to the manifest for this dependency.
func (d Dependency) UpdatedSpecifier() string {
	if d.LatestVersion == nil {
		return d.DeclaredSpecifier
	}
	return d.Prefix + d.LatestVersion.String()
}

// SectionRank orders sections the way they appear in a package.json.
func SectionRank(section string) int {
	for i, s := range Sections {
		if s == section {
			return i
		}
	}
	return len(Sections)
}
