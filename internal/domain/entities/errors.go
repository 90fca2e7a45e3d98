package entities

import "errors"

// Manifest-level errors abort the update command.
var (
	ErrManifestNotFound = errors.New("manifest not found")
	ErrManifestParse    = errors.New("manifest is not a valid JSON object")
	ErrNoDependencies   = errors.New("manifest declares no dependencies or devDependencies")
	ErrWrite            = errors.New("failed to write manifest")
)

// Per-dependency errors are reported as warnings and the dependency is skipped.
var (
	ErrNetwork      = errors.New("network error")
	ErrRegistry     = errors.New("registry error")
	ErrVersionParse = errors.New("invalid version")
	ErrRangeParse   = errors.New("invalid version range")
)

// ErrUnknownRegistry is returned when the configured registry type has no client.
var ErrUnknownRegistry = errors.New("unknown registry type")

// ErrSelectionCancelled is returned by a presenter when the user quits without choosing.
var ErrSelectionCancelled = errors.New("selection cancelled")
