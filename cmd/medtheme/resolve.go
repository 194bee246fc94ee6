package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberhealth/medtheme/internal/report"
	"github.com/emberhealth/medtheme/internal/token"
)

func newResolveCmd(app *appContext) *cobra.Command {
	var (
		contextName string
		schemeName  string
	)

	cmd := &cobra.Command{
		Use:   "resolve FAMILY SHADE",
		Short: "Resolve a semantic token to its concrete hex value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := loadResolver(app)
			if err != nil {
				return err
			}

			family, err := token.ParseFamily(args[0])
			if err != nil {
				return err
			}
			shade, err := token.ParseShade(args[1])
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

			value, err := resolver.Resolve(family, shade, context, scheme)
			if err != nil {
				return err
			}

			app.log.WithFields(map[string]any{
				"token":   token.Slot{Family: family, Shade: shade}.String(),
				"context": context.String(),
				"scheme":  scheme.String(),
			}).Debug("token resolved")

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", report.Swatch(value), value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&contextName, "context", "c", "clinical", "Theme context (clinical, comfort, high-contrast, vibrant)")
	cmd.Flags().StringVarP(&schemeName, "scheme", "s", "light", "Color scheme (light, dark, system)")

	return cmd
}
