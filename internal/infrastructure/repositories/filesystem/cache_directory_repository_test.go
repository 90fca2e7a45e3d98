//go:build unit

package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/npmtoys/internal/infrastructure/repositories/filesystem"
)

func newTree(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(filepath.FromSlash(dir), 0o755))
	}
	return fs
}

func TestCacheDirectoryRepositoryFind(t *testing.T) {
	t.Parallel()

	t.Run("should find top-level matches without descending into them", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newTree(t,
			"/work/web/node_modules/react/node_modules/loose-envify",
			"/work/api/node_modules",
			"/work/api/src",
			"/work/node_modules_backup",
			"/work/docs",
		)
		repo := filesystem.NewCacheDirectoryRepository(fs)

		// when
		found, err := repo.Find(filepath.FromSlash("/work"), "node_modules")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.FromSlash("/work/api/node_modules"),
			filepath.FromSlash("/work/web/node_modules"),
		}, found)
	})

	t.Run("should not report the root itself", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newTree(t, "/work/node_modules/pkg")
		repo := filesystem.NewCacheDirectoryRepository(fs)

		// when
		found, err := repo.Find(filepath.FromSlash("/work/node_modules"), "node_modules")

		// then
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("should ignore files with the target name", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newTree(t, "/work/app")
		require.NoError(t, afero.WriteFile(fs, filepath.FromSlash("/work/app/node_modules"), []byte("x"), 0o644))
		repo := filesystem.NewCacheDirectoryRepository(fs)

		// when
		found, err := repo.Find(filepath.FromSlash("/work"), "node_modules")

		// then
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("should fail when the root does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repo := filesystem.NewCacheDirectoryRepository(afero.NewMemMapFs())

		// when
		_, err := repo.Find(filepath.FromSlash("/missing"), "node_modules")

		// then
		require.Error(t, err)
	})
}

func TestCacheDirectoryRepositoryRemove(t *testing.T) {
	t.Parallel()

	t.Run("should delete the directory recursively", func(t *testing.T) {
		t.Parallel()

		// given
		fs := newTree(t, "/work/app/node_modules/react/dist", "/work/app/src")
		repo := filesystem.NewCacheDirectoryRepository(fs)

		// when
		err := repo.Remove(filepath.FromSlash("/work/app/node_modules"))

		// then
		require.NoError(t, err)
		exists, _ := afero.DirExists(fs, filepath.FromSlash("/work/app/node_modules"))
		assert.False(t, exists)
		kept, _ := afero.DirExists(fs, filepath.FromSlash("/work/app/src"))
		assert.True(t, kept)
	})
}
