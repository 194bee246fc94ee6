package preview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberhealth/medtheme/internal/token"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursorFamily > 0 {
				m.cursorFamily--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursorFamily < len(token.Families())-1 {
				m.cursorFamily++
			}

		case key.Matches(msg, m.keys.Left):
			if m.cursorShade > 0 {
				m.cursorShade--
			}

		case key.Matches(msg, m.keys.Right):
			if m.cursorShade < len(token.Shades())-1 {
				m.cursorShade++
			}

		case key.Matches(msg, m.keys.CycleContext):
			m.context = token.Context((int(m.context) + 1) % len(token.Contexts()))

		case key.Matches(msg, m.keys.CycleScheme):
			if m.scheme == token.SchemeLight {
				m.scheme = token.SchemeDark
			} else {
				m.scheme = token.SchemeLight
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}
