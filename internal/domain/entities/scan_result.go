package entities

import (
	"cmp"
	"slices"
)

// ScanFailure records a dependency that was skipped because fetching or classifying it failed.
type ScanFailure struct {
	Name    string
	Section string
	Err     error
}

// ScanResult holds the update candidates of a manifest and the dependencies that were skipped.
type ScanResult struct {
	Dependencies []Dependency
	Failures     []ScanFailure
}

// Sort orders candidates and failures by name, then by section.
func (r *ScanResult) Sort() {
	slices.SortFunc(r.Dependencies, func(a, b Dependency) int {
		return cmp.Or(
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(SectionRank(a.Section), SectionRank(b.Section)),
		)
	})
	slices.SortFunc(r.Failures, func(a, b ScanFailure) int {
		return cmp.Or(
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(SectionRank(a.Section), SectionRank(b.Section)),
		)
	})
}
