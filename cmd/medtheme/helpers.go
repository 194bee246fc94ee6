package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/emberhealth/medtheme/internal/config"
	"github.com/emberhealth/medtheme/internal/token"
)

// loadResolver returns the embedded resolver or one built from --palette.
func loadResolver(app *appContext) (*token.Resolver, error) {
	if app.flags.palette == "" {
		return token.DefaultResolver(), nil
	}

	app.log.WithFields(map[string]any{"palette": app.flags.palette}).Debug("loading palette file")
	return config.LoadResolver(app.flags.palette)
}

// resolveScheme parses a scheme name, resolving the "system" preference via
// the terminal background. The core resolver only ever sees light or dark.
func resolveScheme(name string) (token.Scheme, error) {
	if name == "system" {
		if lipgloss.HasDarkBackground() {
			return token.SchemeDark, nil
		}
		return token.SchemeLight, nil
	}
	return token.ParseScheme(name)
}

// outputWidth reports the terminal width for report layout, or a conservative
// default when stdout is not a terminal.
func outputWidth(cmd *cobra.Command) int {
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(out.Fd())) {
		return 80
	}

	width, _, err := term.GetSize(int(out.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
