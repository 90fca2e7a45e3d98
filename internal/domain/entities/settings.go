package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRegistryType    = "npm"
	DefaultRegistryURL     = "https://registry.npmjs.org"
	DefaultRegistryTimeout = 10 * time.Second
	DefaultConcurrency     = 8
	DefaultManifest        = "package.json"
	DefaultCacheDirectory  = "node_modules"
)

// Settings is the top-level configuration for npmtoys.
type Settings struct {
	Registry       RegistrySettings `yaml:"registry"`
	Concurrency    int              `yaml:"concurrency"`     // Max registry requests in flight
	Ignore         []string         `yaml:"ignore"`          // Package names never offered for update
	Manifest       string           `yaml:"manifest"`        // Manifest file name
	CacheDirectory string           `yaml:"cache_directory"` // Directory name removed by clean
}

// RegistrySettings describes the package registry queried for latest versions.
type RegistrySettings struct {
	Type    string        `yaml:"type"`    // Registry client implementation, "npm"
	URL     string        `yaml:"url"`     // Base URL, ${ENV_VAR} references are expanded
	Timeout time.Duration `yaml:"timeout"` // Per-request timeout
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no configuration file exists.
func NewDefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a configuration file, expanding environment variables
// and filling unset fields with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.applyDefaults()
	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// LoadSettings loads the given file, or the first file found in the default locations.
// Without any configuration file the defaults are returned.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		return NewSettings(path)
	}

	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return NewDefaultSettings(), nil
	}

	logger.Debugf("Using config file: %s", found)
	return NewSettings(found)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".npmtoys.yaml",
		".npmtoys.yml",
		"npmtoys.yaml",
		"npmtoys.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// IsIgnored reports whether the package is excluded from updates.
func (s *Settings) IsIgnored(name string) bool {
	for _, ignored := range s.Ignore {
		if ignored == name {
			return true
		}
	}
	return false
}

// Validate checks for usable configuration values.
func (s *Settings) Validate() error {
	if s.Registry.Type == "" {
		return errors.New("registry.type is required")
	}
	if s.Registry.URL == "" {
		return errors.New("registry.url is required")
	}
	if s.Registry.Timeout <= 0 {
		return fmt.Errorf("registry.timeout must be positive, got %s", s.Registry.Timeout)
	}
	if s.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", s.Concurrency)
	}
	if s.Manifest == "" {
		return errors.New("manifest is required")
	}
	if s.CacheDirectory == "" {
		return errors.New("cache_directory is required")
	}
	return nil
}

func (s *Settings) applyDefaults() {
	if s.Registry.Type == "" {
		s.Registry.Type = DefaultRegistryType
	}
	if s.Registry.URL == "" {
		s.Registry.URL = DefaultRegistryURL
	}
	if s.Registry.Timeout == 0 {
		s.Registry.Timeout = DefaultRegistryTimeout
	}
	if s.Concurrency == 0 {
		s.Concurrency = DefaultConcurrency
	}
	if s.Manifest == "" {
		s.Manifest = DefaultManifest
	}
	if s.CacheDirectory == "" {
		s.CacheDirectory = DefaultCacheDirectory
	}
}

// expandEnvVars replaces ${VAR} references with their environment values.
func expandEnvVars(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
