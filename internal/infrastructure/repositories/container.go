package repositories

import (
	"github.com/spf13/afero"
	"go.uber.org/dig"

	fsRepo "github.com/rios0rios0/npmtoys/internal/infrastructure/repositories/filesystem"
	manifestRepo "github.com/rios0rios0/npmtoys/internal/infrastructure/repositories/manifest"
	npmRepo "github.com/rios0rios0/npmtoys/internal/infrastructure/repositories/npm"
	termRepo "github.com/rios0rios0/npmtoys/internal/infrastructure/repositories/terminal"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Every file-backed repository shares the host filesystem
	if err := container.Provide(afero.NewOsFs); err != nil {
		return err
	}

	// Register registry providers with all registry client factories
	if err := container.Provide(func() *RegistryProviders {
		reg := NewRegistryProviders()
		reg.Register(npmRepo.RegistryType, npmRepo.NewRegistryRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(manifestRepo.NewManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(fsRepo.NewCacheDirectoryRepository); err != nil {
		return err
	}
	if err := container.Provide(termRepo.NewPresenterRepository); err != nil {
		return err
	}

	return nil
}
