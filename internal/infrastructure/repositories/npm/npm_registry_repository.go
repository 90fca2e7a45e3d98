package npm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

const (
	// RegistryType is the settings key this client is registered under.
	RegistryType = "npm"

	userAgent = "npmtoys (+https://github.com/rios0rios0/npmtoys)"
)

// NpmRegistryRepository implements repositories.RegistryRepository against the
// npm registry "latest" endpoint: GET <base>/<name>/latest.
type NpmRegistryRepository struct {
	baseURL string
	client  *http.Client
}

// NewRegistryRepository creates an npm registry client from its settings.
func NewRegistryRepository(settings entities.RegistrySettings) repositories.RegistryRepository {
	return &NpmRegistryRepository{
		baseURL: strings.TrimSuffix(settings.URL, "/"),
		client:  &http.Client{Timeout: settings.Timeout},
	}
}

func (r *NpmRegistryRepository) Name() string { return RegistryType }

// latestManifest is the subset of the registry's version document we read.
type latestManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// FetchLatest returns the version the registry tags as latest for the package.
func (r *NpmRegistryRepository) FetchLatest(ctx context.Context, packageName string) (*semver.Version, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.latestURL(packageName), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request for %s: %v", entities.ErrNetwork, packageName, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch %s: %v", entities.ErrNetwork, packageName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status code %d for %s", entities.ErrRegistry, resp.StatusCode, packageName)
	}

	var latest latestManifest
	if decodeErr := json.NewDecoder(resp.Body).Decode(&latest); decodeErr != nil {
		var netErr net.Error
		if errors.As(decodeErr, &netErr) {
			return nil, fmt.Errorf("%w: failed to read response for %s: %v", entities.ErrNetwork, packageName, decodeErr)
		}
		return nil, fmt.Errorf("%w: failed to parse response for %s: %v", entities.ErrRegistry, packageName, decodeErr)
	}
	if latest.Version == "" {
		return nil, fmt.Errorf("%w: no version in response for %s", entities.ErrRegistry, packageName)
	}

	return entities.ParseExactVersion(latest.Version)
}

// latestURL builds the endpoint URL; the slash of a scoped name is escaped as the registry expects.
func (r *NpmRegistryRepository) latestURL(packageName string) string {
	return r.baseURL + "/" + url.PathEscape(packageName) + "/latest"
}
