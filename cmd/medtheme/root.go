package main

import (
	"github.com/spf13/cobra"

	"github.com/emberhealth/medtheme/internal/logger"
)

type rootFlags struct {
	verbose bool
	palette string
}

type appContext struct {
	flags *rootFlags
	log   *logger.Logger
}

func newRootCmd() *cobra.Command {
	app := &appContext{flags: &rootFlags{}}

	cmd := &cobra.Command{
		Use:           "medtheme",
		Short:         "medtheme resolves semantic color tokens and audits their WCAG contrast",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if app.flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{Level: level, Pretty: true})
			if err != nil {
				return err
			}
			app.log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&app.flags.palette, "palette", "p", "", "Palette YAML file (defaults to the embedded palette)")

	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newOverridesCmd(app))
	cmd.AddCommand(newAuditCmd(app))
	cmd.AddCommand(newBaselineCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
