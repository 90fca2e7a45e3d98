package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

// Clean is the interface for the clean command.
type Clean interface {
	Execute(ctx context.Context, settings *entities.Settings, opts entities.CleanOptions) error
}

// CleanCommand finds dependency-cache directories below a root and removes the chosen ones.
type CleanCommand struct {
	directories repositories.CacheDirectoryRepository
	presenter   repositories.PresenterRepository
}

// NewCleanCommand creates a new CleanCommand.
func NewCleanCommand(
	directories repositories.CacheDirectoryRepository,
	presenter repositories.PresenterRepository,
) *CleanCommand {
	return &CleanCommand{
		directories: directories,
		presenter:   presenter,
	}
}

// Execute runs the clean flow. Removal failures do not stop the remaining
// removals; they are counted and reported in the returned error.
func (it *CleanCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts entities.CleanOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	dirs, err := it.directories.Find(root, settings.CacheDirectory)
	if err != nil {
		return fmt.Errorf("failed to search %s: %w", root, err)
	}
	if len(dirs) == 0 {
		logger.Infof("No %s found under %s", settings.CacheDirectory, root)
		return nil
	}
	logger.Infof("Found %d %s director(ies) under %s", len(dirs), settings.CacheDirectory, root)

	selected, err := it.selectDirectories(ctx, dirs, opts)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		logger.Info("No directories selected, nothing to do.")
		return nil
	}

	if opts.DryRun {
		for _, dir := range selected {
			logger.Infof("[DRY RUN] Would remove %s", dir)
		}
		return nil
	}

	if !opts.AssumeYes {
		confirmed, confirmErr := it.presenter.Confirm(
			ctx, fmt.Sprintf("Remove %d director(ies)?", len(selected)),
		)
		if confirmErr != nil {
			return fmt.Errorf("failed to confirm removal: %w", confirmErr)
		}
		if !confirmed {
			logger.Info("Aborted, nothing removed.")
			return nil
		}
	}

	failures := 0
	for _, dir := range selected {
		if removeErr := it.directories.Remove(dir); removeErr != nil {
			logger.Errorf("Failed to remove %s: %v", dir, removeErr)
			failures++
			continue
		}
		logger.Infof("Deleted %s", dir)
	}

	if failures > 0 {
		return fmt.Errorf("failed to remove %d of %d director(ies)", failures, len(selected))
	}
	return nil
}

func (it *CleanCommand) selectDirectories(
	ctx context.Context,
	dirs []string,
	opts entities.CleanOptions,
) ([]string, error) {
	if opts.AssumeYes {
		return dirs, nil
	}

	selected, err := it.presenter.SelectDirectories(ctx, dirs)
	if errors.Is(err, entities.ErrSelectionCancelled) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select directories: %w", err)
	}
	return selected, nil
}
