package main

import (
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/spf13/cobra"

	"github.com/emberhealth/medtheme/internal/audit"
	"github.com/emberhealth/medtheme/internal/config"
	"github.com/emberhealth/medtheme/internal/contrast"
	"github.com/emberhealth/medtheme/internal/token"
)

// tokenChange records one slot whose resolved value differs from the baseline.
type tokenChange struct {
	Context    token.Context
	Scheme     token.Scheme
	Slot       token.Slot
	Before     string
	After      string
	Background string
	OldRatio   float64
	NewRatio   float64
	Regression bool
}

func newBaselineCmd(app *appContext) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Compare the working palette file against a committed baseline",
		Long: "Baseline reads the committed copy of the --palette file from git, resolves\n" +
			"both versions across every context and scheme, and reports changed tokens\n" +
			"and contrast regressions. Requires --palette to point inside a repository.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.flags.palette == "" {
				return fmt.Errorf("baseline requires --palette to name a version-controlled file")
			}

			current, err := config.LoadResolver(app.flags.palette)
			if err != nil {
				return err
			}

			baseline, err := loadBaselineResolver(app.flags.palette, ref)
			if err != nil {
				return err
			}

			changes, err := diffResolvers(baseline, current)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(changes) == 0 {
				fmt.Fprintf(out, "no token changes against %s\n", ref)
				return nil
			}

			regressions := 0
			for _, change := range changes {
				marker := " "
				if change.Regression {
					marker = "!"
					regressions++
				}
				fmt.Fprintf(out, "%s %s/%s %s: %s -> %s (%.2f:1 -> %.2f:1 on %s)\n",
					marker, change.Context, change.Scheme, change.Slot,
					change.Before, change.After,
					change.OldRatio, change.NewRatio, change.Background)
			}
			fmt.Fprintf(out, "%d changed tokens, %d contrast regressions against %s\n",
				len(changes), regressions, ref)

			if regressions > 0 {
				return fmt.Errorf("%d tokens regressed below their baseline compliance", regressions)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "HEAD", "Git revision to compare against")

	return cmd
}

// loadBaselineResolver reads the committed copy of the palette file at the
// given revision and builds a resolver from it.
func loadBaselineResolver(palettePath, ref string) (*token.Resolver, error) {
	abs, err := filepath.Abs(palettePath)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository for %s: %w", palettePath, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %q: %w", ref, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(worktree.Filesystem.Root(), abs)
	if err != nil {
		return nil, err
	}

	file, err := commit.File(filepath.ToSlash(rel))
	if err != nil {
		return nil, fmt.Errorf("reading %s at %s: %w", rel, ref, err)
	}
	content, err := file.Contents()
	if err != nil {
		return nil, err
	}

	palette, err := config.ParseBytes([]byte(content), ref+":"+filepath.ToSlash(rel))
	if err != nil {
		return nil, err
	}
	return token.NewResolver(palette)
}

// diffResolvers resolves every token under every context and scheme in both
// resolvers and records the slots whose values differ. A change is a
// regression when it loses AA on the scheme's primary reference background
// or escalates the clinical risk to HIGH.
func diffResolvers(baseline, current *token.Resolver) ([]tokenChange, error) {
	var changes []tokenChange

	for _, context := range token.Contexts() {
		for _, scheme := range []token.Scheme{token.SchemeLight, token.SchemeDark} {
			background := audit.DefaultBackgrounds(scheme)[0]

			for _, family := range token.Families() {
				for _, shade := range token.Shades() {
					before, err := baseline.Resolve(family, shade, context, scheme)
					if err != nil {
						return nil, err
					}
					after, err := current.Resolve(family, shade, context, scheme)
					if err != nil {
						return nil, err
					}
					if before == after {
						continue
					}

					oldRatio, err := contrast.Ratio(before, background)
					if err != nil {
						return nil, err
					}
					newRatio, err := contrast.Ratio(after, background)
					if err != nil {
						return nil, err
					}

					oldRisk := contrast.AssessRisk(family.String(), oldRatio)
					newRisk := contrast.AssessRisk(family.String(), newRatio)
					regression := (contrast.Classify(oldRatio).PassesAA && !contrast.Classify(newRatio).PassesAA) ||
						(newRisk.Level == contrast.RiskHigh && oldRisk.Level != contrast.RiskHigh)

					changes = append(changes, tokenChange{
						Context:    context,
						Scheme:     scheme,
						Slot:       token.Slot{Family: family, Shade: shade},
						Before:     before,
						After:      after,
						Background: background,
						OldRatio:   oldRatio,
						NewRatio:   newRatio,
						Regression: regression,
					})
				}
			}
		}
	}

	return changes, nil
}
