//go:build unit

package manifest_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	"github.com/rios0rios0/npmtoys/internal/infrastructure/repositories/manifest"
	"github.com/rios0rios0/npmtoys/test/domain/entitybuilders"
)

const packageJSON = `{
  "name": "app",
  "version": "1.0.0",
  "scripts": {
    "test": "jest"
  },
  "dependencies": {
    "express": "^4.17.0",
    "@types/node": "~18.0.0",
    "local-lib": "file:../lib"
  },
  "devDependencies": {
    "express": "^4.0.0",
    "jest": "29.0.0",
    "broken": 42
  }
}
`

func newFs(t *testing.T, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/package.json", []byte(content), 0o644))
	return fs
}

func TestJSONManifestRepositoryRead(t *testing.T) {
	t.Parallel()

	t.Run("should read both sections in declaration order", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewManifestRepository(newFs(t, packageJSON))

		// when
		got, err := repo.Read("/project/package.json")

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.ManifestEntry{
			{Name: "express", Section: entities.SectionDependencies, Specifier: "^4.17.0"},
			{Name: "@types/node", Section: entities.SectionDependencies, Specifier: "~18.0.0"},
			{Name: "local-lib", Section: entities.SectionDependencies, Specifier: "file:../lib"},
			{Name: "express", Section: entities.SectionDevDependencies, Specifier: "^4.0.0"},
			{Name: "jest", Section: entities.SectionDevDependencies, Specifier: "29.0.0"},
		}, got.Entries)
		assert.True(t, got.HasDependencies())
	})

	t.Run("should report no dependencies when neither section exists", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewManifestRepository(newFs(t, `{"name":"empty","dependencies":"nope"}`))

		// when
		got, err := repo.Read("/project/package.json")

		// then
		require.NoError(t, err)
		assert.False(t, got.HasDependencies())
		assert.Empty(t, got.Entries)
	})

	t.Run("should return ErrManifestNotFound for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewManifestRepository(afero.NewMemMapFs())

		// when
		_, err := repo.Read("/project/package.json")

		// then
		require.ErrorIs(t, err, entities.ErrManifestNotFound)
	})

	t.Run("should return ErrManifestParse for invalid JSON", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewManifestRepository(newFs(t, `{"dependencies": {`))

		// when
		_, err := repo.Read("/project/package.json")

		// then
		require.ErrorIs(t, err, entities.ErrManifestParse)
	})

	t.Run("should return ErrManifestParse when the document is not an object", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewManifestRepository(newFs(t, `["express"]`))

		// when
		_, err := repo.Read("/project/package.json")

		// then
		require.ErrorIs(t, err, entities.ErrManifestParse)
	})
}

func TestJSONManifestRepositoryApplyUpdates(t *testing.T) {
	t.Parallel()

	t.Run("should rewrite only the selected entry and keep everything else", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newFs(t, packageJSON)
		repo := manifest.NewManifestRepository(fs)
		dep := entitybuilders.NewDependencyBuilder().
			WithName("express").
			WithSpecifier("^4.17.0").
			WithLatest("4.18.2").
			BuildDependency()

		// when
		err := repo.ApplyUpdates("/project/package.json", []entities.Dependency{dep})

		// then
		require.NoError(t, err)
		data, readErr := afero.ReadFile(fs, "/project/package.json")
		require.NoError(t, readErr)
		want := strings.Replace(packageJSON, `"express": "^4.17.0"`, `"express": "^4.18.2"`, 1)
		assert.Equal(t, want, string(data))
	})

	t.Run("should update the devDependencies entry without touching dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newFs(t, packageJSON)
		repo := manifest.NewManifestRepository(fs)
		dep := entitybuilders.NewDependencyBuilder().
			WithName("express").
			AsDev().
			WithSpecifier("^4.0.0").
			WithLatest("5.0.1").
			BuildDependency()

		// when
		err := repo.ApplyUpdates("/project/package.json", []entities.Dependency{dep})

		// then
		require.NoError(t, err)
		got, readErr := repo.Read("/project/package.json")
		require.NoError(t, readErr)
		assert.Equal(t, "^4.17.0", got.Entries[0].Specifier)
		assert.Equal(t, "^5.0.1", got.Entries[3].Specifier)
	})

	t.Run("should handle scoped package names", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newFs(t, packageJSON)
		repo := manifest.NewManifestRepository(fs)
		dep := entitybuilders.NewDependencyBuilder().
			WithName("@types/node").
			WithSpecifier("~18.0.0").
			WithLatest("20.11.5").
			BuildDependency()

		// when
		err := repo.ApplyUpdates("/project/package.json", []entities.Dependency{dep})

		// then
		require.NoError(t, err)
		data, readErr := afero.ReadFile(fs, "/project/package.json")
		require.NoError(t, readErr)
		assert.Contains(t, string(data), `"@types/node": "~20.11.5"`)
		assert.NotContains(t, string(data), "~18.0.0")
	})

	t.Run("should round-trip to no further updates", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newFs(t, packageJSON)
		repo := manifest.NewManifestRepository(fs)
		dep := entitybuilders.NewDependencyBuilder().
			WithName("jest").
			AsDev().
			WithSpecifier("29.0.0").
			WithLatest("29.7.0").
			BuildDependency()
		require.NoError(t, repo.ApplyUpdates("/project/package.json", []entities.Dependency{dep}))

		// when
		got, err := repo.Read("/project/package.json")

		// then
		require.NoError(t, err)
		var jest entities.ManifestEntry
		for _, e := range got.Entries {
			if e.Name == "jest" {
				jest = e
			}
		}
		class, classifyErr := entities.Classify(jest.Specifier, dep.LatestVersion)
		require.NoError(t, classifyErr)
		assert.Equal(t, "29.7.0", jest.Specifier)
		assert.False(t, class.UpdateAvailable)
	})

	t.Run("should leave the file untouched for an empty selection", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newFs(t, packageJSON)
		repo := manifest.NewManifestRepository(fs)

		// when
		err := repo.ApplyUpdates("/project/package.json", nil)

		// then
		require.NoError(t, err)
		data, readErr := afero.ReadFile(fs, "/project/package.json")
		require.NoError(t, readErr)
		assert.Equal(t, packageJSON, string(data))
		entries, dirErr := afero.ReadDir(fs, "/project")
		require.NoError(t, dirErr)
		assert.Len(t, entries, 1)
	})

	t.Run("should skip entries that are not declared in their section", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newFs(t, packageJSON)
		repo := manifest.NewManifestRepository(fs)
		dep := entitybuilders.NewDependencyBuilder().
			WithName("jest").
			WithSpecifier("29.0.0").
			WithLatest("29.7.0").
			BuildDependency()

		// when
		err := repo.ApplyUpdates("/project/package.json", []entities.Dependency{dep})

		// then
		require.NoError(t, err)
		data, readErr := afero.ReadFile(fs, "/project/package.json")
		require.NoError(t, readErr)
		assert.Equal(t, packageJSON, string(data))
	})

	t.Run("should keep the file mode on rewrite", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/project/package.json", []byte(packageJSON), 0o600))
		repo := manifest.NewManifestRepository(fs)
		dep := entitybuilders.NewDependencyBuilder().
			WithName("express").
			WithSpecifier("^4.17.0").
			WithLatest("4.18.2").
			BuildDependency()

		// when
		err := repo.ApplyUpdates("/project/package.json", []entities.Dependency{dep})

		// then
		require.NoError(t, err)
		info, statErr := fs.Stat("/project/package.json")
		require.NoError(t, statErr)
		assert.Equal(t, "-rw-------", info.Mode().Perm().String())
	})

	t.Run("should fail with ErrWrite on a read-only filesystem", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewReadOnlyFs(newFs(t, packageJSON))
		repo := manifest.NewManifestRepository(fs)
		dep := entitybuilders.NewDependencyBuilder().
			WithName("express").
			WithSpecifier("^4.17.0").
			WithLatest("4.18.2").
			BuildDependency()

		// when
		err := repo.ApplyUpdates("/project/package.json", []entities.Dependency{dep})

		// then
		require.ErrorIs(t, err, entities.ErrWrite)
	})

	t.Run("should return ErrManifestNotFound when the file is gone", func(t *testing.T) {
		t.Parallel()

		// given
		repo := manifest.NewManifestRepository(afero.NewMemMapFs())
		dep := entitybuilders.NewDependencyBuilder().BuildDependency()

		// when
		err := repo.ApplyUpdates("/project/package.json", []entities.Dependency{dep})

		// then
		require.ErrorIs(t, err, entities.ErrManifestNotFound)
	})
}
