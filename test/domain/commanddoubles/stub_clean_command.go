//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/npmtoys/internal/domain/commands"
	"github.com/rios0rios0/npmtoys/internal/domain/entities"
)

// StubCleanCommand is a stub implementation of commands.Clean.
type StubCleanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         entities.CleanOptions
}

var _ commands.Clean = (*StubCleanCommand)(nil)

func (s *StubCleanCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts entities.CleanOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
