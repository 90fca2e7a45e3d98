package entities

// ManifestEntry is a single name/specifier pair from one manifest section.
type ManifestEntry struct {
	Name      string
	Section   string
	Specifier string
}

// Manifest is the dependency view of a package.json, keeping declaration order.
type Manifest struct {
	Path    string
	Entries []ManifestEntry
	// present records which sections exist as JSON objects, even when empty
	present map[string]bool
}

// NewManifest creates a Manifest for the given path with no sections.
func NewManifest(path string) *Manifest {
	return &Manifest{Path: path, present: make(map[string]bool)}
}

// AddSection marks a section as present and appends its entries in order.
func (m *Manifest) AddSection(section string, entries []ManifestEntry) {
	m.present[section] = true
	m.Entries = append(m.Entries, entries...)
}

// HasSection reports whether the section exists as a JSON object.
func (m *Manifest) HasSection(section string) bool {
	return m.present[section]
}

// HasDependencies reports whether at least one dependency section is present.
func (m *Manifest) HasDependencies() bool {
	for _, section := range Sections {
		if m.present[section] {
			return true
		}
	}
	return false
}
