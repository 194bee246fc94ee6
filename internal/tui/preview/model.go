// Package preview is an interactive palette browser: families by shades for
// the active theme context and scheme, with live contrast verdicts for the
// selected token. It is read-only over the resolver's immutable tables.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberhealth/medtheme/internal/token"
)

// Model is the preview TUI model.
type Model struct {
	resolver *token.Resolver

	context token.Context
	scheme  token.Scheme

	cursorFamily int
	cursorShade  int

	width  int
	height int

	keys keyMap
	help help.Model
}

// NewModel creates a preview over the given resolver, starting at the
// supplied context and scheme.
func NewModel(resolver *token.Resolver, context token.Context, scheme token.Scheme) Model {
	return Model{
		resolver: resolver,
		context:  context,
		scheme:   scheme,
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) selected() (token.Family, token.Shade) {
	return token.Family(m.cursorFamily), token.Shade(m.cursorShade)
}
