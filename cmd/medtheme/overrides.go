package main

import (
	"github.com/spf13/cobra"

	"github.com/emberhealth/medtheme/internal/report"
	"github.com/emberhealth/medtheme/internal/token"
)

func newOverridesCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overrides CONTEXT",
		Short: "List the palette slots a theme context overrides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := loadResolver(app)
			if err != nil {
				return err
			}

			context, err := token.ParseContext(args[0])
			if err != nil {
				return err
			}

			overrides, err := resolver.ListOverrides(context)
			if err != nil {
				return err
			}

			report.RenderOverrides(cmd.OutOrStdout(), context, overrides)
			return nil
		},
	}

	return cmd
}
