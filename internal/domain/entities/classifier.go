package entities

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// rangeOperators are the characters that may lead a specifier and are kept on rewrite.
const rangeOperators = "^~<>="

// versionTokenPattern matches version-like tokens inside a range, wildcards included.
var versionTokenPattern = regexp.MustCompile(`(\d+)(?:\.(\d+|[xX*]))?(?:\.(\d+|[xX*]))?`)

// Classification is the outcome of comparing a declared specifier with the latest version.
type Classification struct {
	Prefix          string
	MinVersion      *semver.Version
	UpdateAvailable bool
	Severity        Severity
	Breaking        bool
	FormattedLatest string
}

// Classify decides whether latest is an update over the lowest version the specifier allows.
//
// Wildcard and upper-bound-only specifiers are never updatable. A bump in major is breaking, and so is a
// bump in minor while the minimum version is still below 1.0.0.
func Classify(specifier string, latest *semver.Version) (Classification, error) {
	spec := strings.TrimSpace(specifier)
	if IsWildcard(spec) || IsUpperBoundOnly(spec) {
		return Classification{Prefix: SpecifierPrefix(spec), Severity: SeverityNone}, nil
	}
	if latest == nil {
		return Classification{}, fmt.Errorf("%w: missing latest version", ErrVersionParse)
	}

	minVersion, err := MinVersion(spec)
	if err != nil {
		return Classification{}, err
	}

	prefix := SpecifierPrefix(spec)
	class := Classification{
		Prefix:          prefix,
		MinVersion:      minVersion,
		Severity:        SeverityNone,
		FormattedLatest: fmt.Sprintf("%s%d.%d.%d", prefix, latest.Major(), latest.Minor(), latest.Patch()),
	}
	if !latest.GreaterThan(minVersion) {
		return class, nil
	}

	class.UpdateAvailable = true
	switch {
	case latest.Major() > minVersion.Major():
		class.Severity = SeverityMajor
		class.Breaking = true
	case latest.Minor() > minVersion.Minor():
		class.Severity = SeverityMinor
		class.Breaking = minVersion.Major() == 0
	default:
		// patch bump, or a release of the declared prerelease
		class.Severity = SeverityPatch
	}
	return class, nil
}

// IsWildcard reports whether the specifier accepts any version: empty, or every
// dot-separated part is one of "*", "x" or "X" ("*", "x.x", "*.*.*").
func IsWildcard(specifier string) bool {
	spec := strings.TrimSpace(specifier)
	if spec == "" {
		return true
	}
	for _, part := range strings.Split(spec, ".") {
		switch part {
		case "*", "x", "X":
		default:
			return false
		}
	}
	return true
}

// IsUpperBoundOnly reports whether the specifier only caps the version ("<2.0.0", "<=1.4").
// Such a range has no meaningful minimum, and rewriting it with the latest version
// would exclude that very version.
func IsUpperBoundOnly(specifier string) bool {
	return strings.HasPrefix(SpecifierPrefix(specifier), "<")
}

// SpecifierPrefix returns the leading range operator of a specifier, or "" when it starts with a digit.
func SpecifierPrefix(specifier string) string {
	spec := strings.TrimSpace(specifier)
	end := strings.IndexFunc(spec, func(r rune) bool {
		return !strings.ContainsRune(rangeOperators, r)
	})
	if end < 0 {
		return spec
	}
	return spec[:end]
}

// ParseExactVersion parses a registry version string as an exact semantic version.
func ParseExactVersion(raw string) (*semver.Version, error) {
	version, err := semver.StrictNewVersion(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrVersionParse, raw, err)
	}
	return version, nil
}

// MinVersion returns the lowest exact version that satisfies the range.
func MinVersion(rangeSpec string) (*semver.Version, error) {
	constraint, err := semver.NewConstraint(rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrRangeParse, rangeSpec, err)
	}

	candidates := minVersionCandidates(rangeSpec)
	slices.SortFunc(candidates, func(a, b *semver.Version) int {
		return a.Compare(b)
	})
	for _, candidate := range candidates {
		if constraint.Check(candidate) {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("%w: no version satisfies %q", ErrRangeParse, rangeSpec)
}

// minVersionCandidates lists every version that can be the lower bound of a comparator
// in the range: each mentioned version, its successors for exclusive bounds, and 0.0.0.
func minVersionCandidates(rangeSpec string) []*semver.Version {
	candidates := []*semver.Version{semver.New(0, 0, 0, "", "")}

	for _, match := range versionTokenPattern.FindAllStringSubmatch(rangeSpec, -1) {
		major, ok := parseComponent(match[1])
		if !ok {
			continue
		}
		minor, ok := parseComponent(match[2])
		if !ok {
			continue
		}
		patch, ok := parseComponent(match[3])
		if !ok {
			continue
		}
		candidates = append(candidates,
			semver.New(major, minor, patch, "", ""),
			semver.New(major, minor, patch+1, "", ""),
			semver.New(major, minor+1, 0, "", ""),
			semver.New(major+1, 0, 0, "", ""),
		)
	}

	// exact tokens keep their prerelease part, which the pattern above drops
	tokens := strings.FieldsFunc(rangeSpec, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '|'
	})
	for _, token := range tokens {
		token = strings.TrimLeft(token, rangeOperators)
		if version, err := semver.NewVersion(token); err == nil {
			candidates = append(candidates, version)
		}
	}

	return candidates
}

// parseComponent converts a version component; wildcards and missing parts count as zero.
func parseComponent(raw string) (uint64, bool) {
	switch raw {
	case "", "x", "X", "*":
		return 0, true
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	return value, err == nil
}
