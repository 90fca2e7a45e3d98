package terminal

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultListHeight = 15
	minListHeight     = 5
	// rows taken by the title, help line and spacing
	listChrome = 6
)

// selectModel is the bubbletea model for multi-selecting items from a list.
type selectModel struct {
	title     string
	labels    []string
	cursor    int
	offset    int
	height    int
	selected  map[int]bool
	accepted  bool
	cancelled bool
}

func newSelectModel(title string, labels []string) selectModel {
	return selectModel{
		title:    title,
		labels:   labels,
		height:   defaultListHeight,
		selected: make(map[int]bool),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.labels)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case " ", "space", "x":
			if len(m.labels) > 0 {
				m.selected[m.cursor] = !m.selected[m.cursor]
			}
		case "a":
			m.toggleAll()
		case "enter":
			m.accepted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-listChrome, minListHeight)
		m.clampOffset()
	}
	return m, nil
}

// clampOffset scrolls so the cursor stays inside [offset, offset+height).
func (m *selectModel) clampOffset() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// toggleAll selects every item, or clears the selection when everything is already selected.
func (m selectModel) toggleAll() {
	all := len(m.selectedIndexes()) == len(m.labels)
	for i := range m.labels {
		m.selected[i] = !all
	}
}

func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.labels))
	for i := m.offset; i < end; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = styleCursor.Render("▸ ")
		}
		check := "[ ]"
		if m.selected[i] {
			check = "[x]"
		}

		line := check + " " + m.labels[i]
		if i == m.cursor {
			b.WriteString(cursor + styleCursor.Render(check) + " " + m.labels[i])
		} else {
			b.WriteString(cursor + styleNormal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// selectedIndexes returns the chosen positions in list order.
func (m selectModel) selectedIndexes() []int {
	indexes := make([]int, 0, len(m.selected))
	for i, ok := range m.selected {
		if ok {
			indexes = append(indexes, i)
		}
	}
	slices.Sort(indexes)
	return indexes
}
