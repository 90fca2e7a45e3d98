package terminal

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleCursor   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNormal   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleCurrent  = lipgloss.NewStyle().Foreground(colorCyan)
	styleBreaking = lipgloss.NewStyle().Foreground(colorRed)
	styleMinor    = lipgloss.NewStyle().Foreground(colorYellow)
	stylePatch    = lipgloss.NewStyle().Foreground(colorGreen)
)

// severityStyle colors an update by impact: breaking red, minor yellow, patch green.
func severityStyle(dep entities.Dependency) lipgloss.Style {
	switch {
	case dep.Breaking:
		return styleBreaking
	case dep.Severity == entities.SeverityMinor:
		return styleMinor
	default:
		return stylePatch
	}
}

// dependencyLabel renders "name (current -> latest)", tagging dev dependencies.
func dependencyLabel(dep entities.Dependency) string {
	label := fmt.Sprintf("%s (%s -> %s)",
		dep.Name,
		styleCurrent.Render(dep.DeclaredSpecifier),
		severityStyle(dep).Render(dep.FormattedLatest),
	)
	if dep.Section == entities.SectionDevDependencies {
		label += " " + styleDim.Render("dev")
	}
	return label
}
