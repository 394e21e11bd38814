// Package gallery implements the interactive component gallery TUI.
package gallery

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/razvanlitianu/stylekit/pkg/styling"
	"github.com/razvanlitianu/stylekit/pkg/termrender"
	"github.com/razvanlitianu/stylekit/pkg/theme"
)

const listWidth = 28

// Model is the gallery's bubbletea model.
type Model struct {
	entries  []Entry
	themes   []theme.Theme
	themeIdx int

	cursor  int
	preview viewport.Model
	ready   bool

	width  int
	height int
}

// NewModel creates a gallery over the given entries and themes. At least one
// theme is required; the first is active initially.
func NewModel(entries []Entry, themes []theme.Theme) Model {
	if len(themes) == 0 {
		themes = []theme.Theme{theme.Default()}
	}
	return Model{entries: entries, themes: themes}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshPreview()
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.refreshPreview()
			}
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(m.themes)
			m.refreshPreview()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		previewWidth := msg.Width - listWidth - 4
		if previewWidth < 10 {
			previewWidth = 10
		}
		previewHeight := msg.Height - 4
		if previewHeight < 3 {
			previewHeight = 3
		}
		if !m.ready {
			m.preview = viewport.New(previewWidth, previewHeight)
			m.ready = true
		} else {
			m.preview.Width = previewWidth
			m.preview.Height = previewHeight
		}
		m.refreshPreview()
	}

	var cmd tea.Cmd
	if m.ready {
		m.preview, cmd = m.preview.Update(msg)
	}
	return m, cmd
}

// ActiveTheme returns the theme currently applied to previews.
func (m Model) ActiveTheme() theme.Theme {
	return m.themes[m.themeIdx]
}

func (m *Model) refreshPreview() {
	if !m.ready {
		return
	}
	m.preview.SetContent(m.renderEntry(m.cursor))
}

func (m Model) renderEntry(index int) string {
	if index < 0 || index >= len(m.entries) {
		return ""
	}
	entry := m.entries[index]

	dec, err := entry.Build(styling.NewEnvironment())
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("build failed: %v", err))
	}

	renderer := termrender.New(m.ActiveTheme())
	out, err := renderer.Render(dec)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("render failed: %v", err))
	}

	description := descriptionStyle.Render(entry.Description)
	body := lipgloss.JoinVertical(lipgloss.Left, description, "", out)

	if actions := renderer.Bindings(dec); len(actions) > 0 {
		hint := descriptionStyle.Render(fmt.Sprintf("bindings: %v", actions))
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", hint)
	}
	return body
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading gallery..."
	}

	rows := make([]string, 0, len(m.entries))
	for i, entry := range m.entries {
		label := "  " + entry.Title
		if i == m.cursor {
			label = selectedStyle.Render("▸ " + entry.Title)
		}
		rows = append(rows, label)
	}
	list := listStyle.Width(listWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	main := lipgloss.JoinHorizontal(lipgloss.Top, list, m.preview.View())

	status := statusStyle.Render(fmt.Sprintf(
		"theme: %s · ↑/↓ select · t theme · q quit", m.ActiveTheme().Name))

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("stylekit gallery"), main, status)
}
