package repositories

import (
	"context"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
)

// PresenterRepository is the interactive surface used by the commands to let the
// user pick candidates and confirm destructive actions.
type PresenterRepository interface {
	// SelectDependencies presents update candidates and returns the chosen ones.
	SelectDependencies(ctx context.Context, deps []entities.Dependency) ([]entities.Dependency, error)

	// SelectDirectories presents cache directories and returns the chosen ones.
	SelectDirectories(ctx context.Context, dirs []string) ([]string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, message string) (bool, error)
}
