package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/emberhealth/medtheme/internal/token"
	"github.com/emberhealth/medtheme/internal/tui/preview"
)

func newPreviewCmd(app *appContext) *cobra.Command {
	var (
		contextName string
		schemeName  string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the palette interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := loadResolver(app)
			if err != nil {
				return err
			}

			context, err := token.ParseContext(contextName)
			if err != nil {
				return err
			}
			scheme, err := resolveScheme(schemeName)
			if err != nil {
				return err
			}

			program := tea.NewProgram(preview.NewModel(resolver, context, scheme), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&contextName, "context", "c", "clinical", "Theme context to start in")
	cmd.Flags().StringVarP(&schemeName, "scheme", "s", "system", "Color scheme to start in (light, dark, system)")

	return cmd
}
