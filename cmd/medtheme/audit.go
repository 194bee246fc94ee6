package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberhealth/medtheme/internal/audit"
	"github.com/emberhealth/medtheme/internal/report"
	"github.com/emberhealth/medtheme/internal/token"
)

func newAuditCmd(app *appContext) *cobra.Command {
	var (
		contextName    string
		schemeName     string
		backgrounds    []string
		allBackgrounds bool
		jsonOutput     bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit every token's contrast against reference backgrounds",
		Long: "Audit resolves the full family/shade matrix under one theme context and\n" +
			"scheme, then checks each value against reference backgrounds. The exit\n" +
			"status is non-zero when any pairing is HIGH risk.",
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

			if allBackgrounds {
				backgrounds = audit.AllBackgrounds()
			}

			rep, err := audit.Run(resolver, context, scheme, backgrounds...)
			if err != nil {
				return err
			}

			if jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(rep); err != nil {
					return err
				}
			} else {
				report.Render(cmd.OutOrStdout(), rep, outputWidth(cmd))
			}

			if !rep.Summary.Compliant {
				return fmt.Errorf("contrast audit failed: %d HIGH-risk pairs", rep.Summary.HighRisk)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&contextName, "context", "c", "clinical", "Theme context to audit")
	cmd.Flags().StringVarP(&schemeName, "scheme", "s", "light", "Color scheme to audit (light, dark, system)")
	cmd.Flags().StringSliceVarP(&backgrounds, "background", "b", nil, "Reference background hex values (defaults per scheme)")
	cmd.Flags().BoolVar(&allBackgrounds, "all-backgrounds", false, "Audit against all four reference backgrounds")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")

	return cmd
}
