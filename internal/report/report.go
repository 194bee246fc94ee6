// Package report renders audit output for terminals. Formatting lives here,
// outside the core: the resolver and auditor only supply values and verdicts.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emberhealth/medtheme/internal/audit"
	"github.com/emberhealth/medtheme/internal/contrast"
	"github.com/emberhealth/medtheme/internal/token"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			PaddingBottom(0)

	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	summaryStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			PaddingTop(0)
)

// Swatch renders a two-cell block in the given color so the hex value can be
// eyeballed directly in the terminal.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func verdict(result audit.Result) string {
	switch {
	case result.Classification.PassesAAA:
		return passStyle.Render("AAA")
	case result.Classification.PassesAA:
		return passStyle.Render("AA ")
	case result.Classification.PassesLargeText:
		return warnStyle.Render("LG ")
	default:
		return failStyle.Render("✗  ")
	}
}

func riskCell(risk contrast.Risk) string {
	label := fmt.Sprintf("%-6s", risk.Level)
	switch risk.Level {
	case contrast.RiskHigh:
		return failStyle.Render(label)
	case contrast.RiskMedium:
		return warnStyle.Render(label)
	case contrast.RiskLow:
		return mutedStyle.Render(label)
	default:
		return label
	}
}

// Render writes a full audit report. Width below 72 columns drops the
// per-row risk message to keep rows on one line.
func Render(w io.Writer, rep *audit.Report, width int) {
	wide := width >= 72

	title := fmt.Sprintf("Contrast audit — %s / %s", rep.Context, rep.Scheme)
	fmt.Fprintln(w, headerStyle.Render(title))

	for _, result := range rep.Results {
		row := fmt.Sprintf("%s %-15s %s %s on %s  %5.2f:1  %s  %s",
			Swatch(result.Value),
			result.Family.String()+"."+result.Shade.String(),
			verdict(result),
			result.Value,
			result.Background,
			result.Ratio,
			riskCell(result.Risk),
			"",
		)
		if wide {
			row += mutedStyle.Render(result.Risk.Message)
		}
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}

	status := passStyle.Render("compliant")
	if !rep.Summary.Compliant {
		status = failStyle.Render("NOT compliant")
	}
	fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf(
		"%d pass, %d warn, %d fail — %s (compliant = zero HIGH-risk pairs)",
		rep.Summary.Pass, rep.Summary.Warn, rep.Summary.Fail, status)))
}

// RenderOverrides writes the sparse override table of a theme context in
// slot order.
func RenderOverrides(w io.Writer, context token.Context, overrides map[token.Slot]string) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Overrides — %s", context)))

	if len(overrides) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("(none — baseline profile)"))
		return
	}

	slots := make([]token.Slot, 0, len(overrides))
	for slot := range overrides {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Family != slots[j].Family {
			return slots[i].Family < slots[j].Family
		}
		return slots[i].Shade < slots[j].Shade
	})

	for _, slot := range slots {
		fmt.Fprintf(w, "%s %-15s %s\n", Swatch(overrides[slot]), slot, overrides[slot])
	}
}
