package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/npmtoys/internal/infrastructure/repositories"
)

// Update is the interface for the update command.
type Update interface {
	Execute(ctx context.Context, settings *entities.Settings, opts entities.UpdateOptions) error
}

// UpdateCommand orchestrates the manifest update flow:
// scan the manifest -> select candidates -> confirm -> rewrite the manifest.
type UpdateCommand struct {
	registryProviders *infraRepos.RegistryProviders
	manifests         repositories.ManifestRepository
	presenter         repositories.PresenterRepository
}

// NewUpdateCommand creates a new UpdateCommand.
func NewUpdateCommand(
	registryProviders *infraRepos.RegistryProviders,
	manifests repositories.ManifestRepository,
	presenter repositories.PresenterRepository,
) *UpdateCommand {
	return &UpdateCommand{
		registryProviders: registryProviders,
		manifests:         manifests,
		presenter:         presenter,
	}
}

// Execute runs one update cycle against the manifest in opts.Dir.
func (it *UpdateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts entities.UpdateOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	registry, err := it.registryProviders.Get(settings.Registry)
	if err != nil {
		return err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	manifestPath := filepath.Join(dir, settings.Manifest)

	result, err := NewManifestScanner(it.manifests, registry, settings).Scan(ctx, manifestPath)
	if err != nil {
		return err
	}

	if len(result.Failures) > 0 {
		logger.Warnf("%d package(s) could not be checked and were skipped", len(result.Failures))
	}
	if len(result.Dependencies) == 0 {
		logger.Info("No package updates available!")
		return nil
	}

	selected, err := it.selectDependencies(ctx, result.Dependencies, opts)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		logger.Info("No packages selected, nothing to do.")
		return nil
	}

	for _, dep := range selected {
		logger.Infof("  %s (%s): %s -> %s [%s]",
			dep.Name, dep.Section, dep.DeclaredSpecifier, dep.UpdatedSpecifier(), dep.Severity)
	}

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would update %d package(s) in %s", len(selected), manifestPath)
		return nil
	}

	if !opts.AssumeYes {
		confirmed, confirmErr := it.presenter.Confirm(
			ctx, fmt.Sprintf("Update %d package(s) in %s?", len(selected), manifestPath),
		)
		if confirmErr != nil {
			return fmt.Errorf("failed to confirm update: %w", confirmErr)
		}
		if !confirmed {
			logger.Infof("Aborted, %s left unchanged.", settings.Manifest)
			return nil
		}
	}

	if applyErr := it.manifests.ApplyUpdates(manifestPath, selected); applyErr != nil {
		return applyErr
	}

	logger.Infof("%s updated successfully. Run the install command to apply the updates.", settings.Manifest)
	return nil
}

// selectDependencies lets the presenter pick candidates; --yes takes all of them.
func (it *UpdateCommand) selectDependencies(
	ctx context.Context,
	candidates []entities.Dependency,
	opts entities.UpdateOptions,
) ([]entities.Dependency, error) {
	if opts.AssumeYes {
		return candidates, nil
	}

	selected, err := it.presenter.SelectDependencies(ctx, candidates)
	if errors.Is(err, entities.ErrSelectionCancelled) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select packages: %w", err)
	}
	return selected, nil
}
