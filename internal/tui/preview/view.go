package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emberhealth/medtheme/internal/audit"
	"github.com/emberhealth/medtheme/internal/contrast"
	"github.com/emberhealth/medtheme/internal/token"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("medtheme preview — %s / %s", m.context, m.scheme)))
	b.WriteString("\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderGrid() string {
	rows := make([]string, 0, len(token.Families()))

	for _, family := range token.Families() {
		cells := make([]string, 0, len(token.Shades())+1)
		cells = append(cells, familyLabelStyle.Render(family.String()))

		for _, shade := range token.Shades() {
			value, err := m.resolver.Resolve(family, shade, m.context, m.scheme)
			if err != nil {
				// Enum-driven iteration cannot produce unknown inputs.
				continue
			}

			swatch := lipgloss.NewStyle().
				Background(lipgloss.Color(value)).
				Render("    ")

			cell := swatch + " " + value
			if int(family) == m.cursorFamily && int(shade) == m.cursorShade {
				cells = append(cells, selectedCellStyle.Render(cell))
			} else {
				cells = append(cells, cellStyle.Render(cell))
			}
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderDetail() string {
	family, shade := m.selected()

	value, err := m.resolver.Resolve(family, shade, m.context, m.scheme)
	if err != nil {
		return detailStyle.Render(err.Error())
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("%s.%s = %s", family, shade, value))

	for _, background := range audit.DefaultBackgrounds(m.scheme) {
		ratio, err := contrast.Ratio(value, background)
		if err != nil {
			continue
		}

		c := contrast.Classify(ratio)
		verdict := failStyle.Render("fails AA")
		switch {
		case c.PassesAAA:
			verdict = passStyle.Render("AAA")
		case c.PassesAA:
			verdict = passStyle.Render("AA")
		case c.PassesLargeText:
			verdict = warnStyle.Render("large text only")
		}

		risk := contrast.AssessRisk(family.String(), ratio)
		lines = append(lines, fmt.Sprintf("vs %s  %5.2f:1  %s  %s",
			background, ratio, verdict, mutedStyle.Render(risk.Level.String()+" — "+risk.Message)))
	}

	return detailStyle.Render(strings.Join(lines, "\n"))
}
