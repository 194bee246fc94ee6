// Package audit runs the contrast matrix over a resolved palette: every
// family/shade token under one theme context and scheme, checked against a
// fixed set of reference backgrounds. It composes the token and contrast
// packages; there is no algorithm of its own beyond iteration and tallying.
package audit

import (
	"github.com/emberhealth/medtheme/internal/contrast"
	"github.com/emberhealth/medtheme/internal/token"
)

// Reference backgrounds the matrix is checked against.
const (
	BackgroundWhite     = "#ffffff"
	BackgroundNearWhite = "#f8fafc"
	BackgroundNearBlack = "#0f172a"
	BackgroundBlack     = "#000000"
)

// DefaultBackgrounds returns the reference surfaces appropriate for a
// scheme: tokens render on light surfaces under the light scheme and dark
// surfaces under the dark scheme.
func DefaultBackgrounds(scheme token.Scheme) []string {
	if scheme == token.SchemeDark {
		return []string{BackgroundBlack, BackgroundNearBlack}
	}
	return []string{BackgroundWhite, BackgroundNearWhite}
}

// AllBackgrounds returns every reference surface, for exhaustive audits.
func AllBackgrounds() []string {
	return []string{BackgroundWhite, BackgroundNearWhite, BackgroundNearBlack, BackgroundBlack}
}

// Result is one audited (token, background) pair.
type Result struct {
	Family         token.Family
	Shade          token.Shade
	Context        token.Context
	Scheme         token.Scheme
	Background     string
	Value          string
	Ratio          float64
	Classification contrast.Classification
	Risk           contrast.Risk
}

// Summary tallies a report. A result fails when it misses AA, warns when it
// passes AA but still carries MEDIUM risk, and passes otherwise. Compliant
// means zero HIGH-risk results.
type Summary struct {
	Pass      int
	Warn      int
	Fail      int
	HighRisk  int
	Compliant bool
}

// Report is the output of one matrix run.
type Report struct {
	Context token.Context
	Scheme  token.Scheme
	Results []Result
	Summary Summary
}

// Run audits every family/shade token under the given context and scheme
// against the supplied backgrounds. With no backgrounds it uses the
// scheme-appropriate defaults. Results are ordered family-major, then shade,
// then background, so output is stable across runs.
func Run(resolver *token.Resolver, context token.Context, scheme token.Scheme, backgrounds ...string) (*Report, error) {
	if len(backgrounds) == 0 {
		backgrounds = DefaultBackgrounds(scheme)
	}

	report := &Report{
		Context: context,
		Scheme:  scheme,
		Results: make([]Result, 0, len(token.Families())*len(token.Shades())*len(backgrounds)),
	}
	report.Summary.Compliant = true

	for _, family := range token.Families() {
		for _, shade := range token.Shades() {
			value, err := resolver.Resolve(family, shade, context, scheme)
			if err != nil {
				return nil, err
			}

			for _, background := range backgrounds {
				ratio, err := contrast.Ratio(value, background)
				if err != nil {
					return nil, err
				}

				result := Result{
					Family:         family,
					Shade:          shade,
					Context:        context,
					Scheme:         scheme,
					Background:     background,
					Value:          value,
					Ratio:          ratio,
					Classification: contrast.Classify(ratio),
					Risk:           contrast.AssessRisk(family.String(), ratio),
				}
				report.Results = append(report.Results, result)
				report.tally(result)
			}
		}
	}

	return report, nil
}

func (r *Report) tally(result Result) {
	switch {
	case !result.Classification.PassesAA:
		r.Summary.Fail++
	case result.Risk.Level == contrast.RiskMedium:
		r.Summary.Warn++
	default:
		r.Summary.Pass++
	}
	if result.Risk.Level == contrast.RiskHigh {
		r.Summary.HighRisk++
		r.Summary.Compliant = false
	}
}
