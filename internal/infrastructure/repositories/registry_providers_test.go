//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	domainRepos "github.com/rios0rios0/npmtoys/internal/domain/repositories"
	"github.com/rios0rios0/npmtoys/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/npmtoys/test/infrastructure/repositorydoubles"
)

func TestRegistryProviders(t *testing.T) {
	t.Parallel()

	t.Run("should build the registry registered under the configured type", func(t *testing.T) {
		t.Parallel()

		// given
		stub := doubles.NewStubRegistryRepository()
		var gotSettings entities.RegistrySettings
		providers := repositories.NewRegistryProviders()
		providers.Register("npm", func(settings entities.RegistrySettings) domainRepos.RegistryRepository {
			gotSettings = settings
			return stub
		})
		settings := entities.RegistrySettings{Type: "npm", URL: "https://npm.example.com"}

		// when
		registry, err := providers.Get(settings)

		// then
		require.NoError(t, err)
		assert.Same(t, stub, registry)
		assert.Equal(t, settings, gotSettings)
		assert.Equal(t, []string{"npm"}, providers.Types())
	})

	t.Run("should return ErrUnknownRegistry for an unregistered type", func(t *testing.T) {
		t.Parallel()

		// given
		providers := repositories.NewRegistryProviders()
		providers.Register("npm", func(_ entities.RegistrySettings) domainRepos.RegistryRepository {
			return doubles.NewStubRegistryRepository()
		})
		providers.Register("github", func(_ entities.RegistrySettings) domainRepos.RegistryRepository {
			return doubles.NewStubRegistryRepository()
		})

		// when
		_, err := providers.Get(entities.RegistrySettings{Type: "pypi"})

		// then
		require.ErrorIs(t, err, entities.ErrUnknownRegistry)
		assert.Contains(t, err.Error(), `"pypi"`)
		assert.Contains(t, err.Error(), "known: github, npm")
	})
}
