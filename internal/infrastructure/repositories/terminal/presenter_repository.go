package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	"github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

// PresenterRepository implements repositories.PresenterRepository on a terminal.
type PresenterRepository struct {
	in  io.Reader
	out io.Writer
}

// NewPresenterRepository creates a presenter bound to the process standard streams.
func NewPresenterRepository() repositories.PresenterRepository {
	return NewPresenterRepositoryWithIO(os.Stdin, os.Stdout)
}

// NewPresenterRepositoryWithIO creates a presenter reading from in and drawing to out.
func NewPresenterRepositoryWithIO(in io.Reader, out io.Writer) *PresenterRepository {
	return &PresenterRepository{in: in, out: out}
}

// SelectDependencies shows the update candidates colored by severity.
func (p *PresenterRepository) SelectDependencies(
	ctx context.Context,
	deps []entities.Dependency,
) ([]entities.Dependency, error) {
	labels := make([]string, len(deps))
	for i, dep := range deps {
		labels[i] = dependencyLabel(dep)
	}

	indexes, err := p.selectIndexes(ctx, "Select package(s) to update", labels)
	if err != nil {
		return nil, err
	}

	selected := make([]entities.Dependency, 0, len(indexes))
	for _, i := range indexes {
		selected = append(selected, deps[i])
	}
	return selected, nil
}

// SelectDirectories shows the cache directories found by the walk.
func (p *PresenterRepository) SelectDirectories(ctx context.Context, dirs []string) ([]string, error) {
	indexes, err := p.selectIndexes(ctx, "Choose node_modules to remove", dirs)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(indexes))
	for _, i := range indexes {
		selected = append(selected, dirs[i])
	}
	return selected, nil
}

// Confirm asks a y/N question; anything but y or yes is a no.
func (p *PresenterRepository) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := fmt.Fprintf(p.out, "%s %s ", styleTitle.Render(message), styleDim.Render("[y/N]")); err != nil {
		return false, err
	}

	answer, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *PresenterRepository) selectIndexes(ctx context.Context, title string, labels []string) ([]int, error) {
	program := tea.NewProgram(
		newSelectModel(title, labels),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run selection: %w", err)
	}

	model, ok := final.(selectModel)
	if !ok || model.cancelled || !model.accepted {
		return nil, entities.ErrSelectionCancelled
	}
	return model.selectedIndexes(), nil
}
