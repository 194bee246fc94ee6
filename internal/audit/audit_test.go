package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhealth/medtheme/internal/contrast"
	"github.com/emberhealth/medtheme/internal/token"
)

func TestRunCoversFullMatrix(t *testing.T) {
	t.Parallel()

	report, err := Run(token.DefaultResolver(), token.ContextClinical, token.SchemeLight)
	require.NoError(t, err)

	// 6 families x 5 shades x 2 default light backgrounds.
	assert.Len(t, report.Results, 60)
	assert.Equal(t, 60, report.Summary.Pass+report.Summary.Warn+report.Summary.Fail)
}

func TestRunClinicalLightTally(t *testing.T) {
	t.Parallel()

	report, err := Run(token.DefaultResolver(), token.ContextClinical, token.SchemeLight)
	require.NoError(t, err)

	// The lighter tiers are surface colors and fail as text by design; the
	// audit exists to make that visible, so the full matrix is expected to
	// carry failures.
	assert.Equal(t, 35, report.Summary.Pass)
	assert.Equal(t, 1, report.Summary.Warn)
	assert.Equal(t, 24, report.Summary.Fail)
	assert.False(t, report.Summary.Compliant, "lighter alert tiers are HIGH risk as text on white")
}

func TestRunResultDetail(t *testing.T) {
	t.Parallel()

	report, err := Run(token.DefaultResolver(), token.ContextClinical, token.SchemeLight, BackgroundWhite)
	require.NoError(t, err)
	require.Len(t, report.Results, 30)

	var found bool
	for _, result := range report.Results {
		if result.Family != token.FamilyWarning || result.Shade != token.ShadeNormal {
			continue
		}
		found = true
		assert.Equal(t, "#b45309", result.Value)
		assert.Equal(t, BackgroundWhite, result.Background)
		assert.InDelta(t, 5.02, result.Ratio, 0.01)
		assert.True(t, result.Classification.PassesAA)
		assert.False(t, result.Classification.PassesAAA)
		assert.Equal(t, contrast.RiskLow, result.Risk.Level)
	}
	assert.True(t, found, "warning.normal should appear in the report")
}

func TestRunWarnBucket(t *testing.T) {
	t.Parallel()

	// warning.normal on near-white sits in [4.5, 5.0): AA passes but the
	// clinical policy still grades it MEDIUM.
	report, err := Run(token.DefaultResolver(), token.ContextClinical, token.SchemeLight, BackgroundNearWhite)
	require.NoError(t, err)

	var result Result
	for _, r := range report.Results {
		if r.Family == token.FamilyWarning && r.Shade == token.ShadeNormal {
			result = r
		}
	}
	assert.InDelta(t, 4.80, result.Ratio, 0.01)
	assert.True(t, result.Classification.PassesAA)
	assert.Equal(t, contrast.RiskMedium, result.Risk.Level)
	assert.Equal(t, 1, report.Summary.Warn)
}

func TestRunHighContrastDarkNormalsMeetAAA(t *testing.T) {
	t.Parallel()

	report, err := Run(token.DefaultResolver(), token.ContextHighContrast, token.SchemeDark, BackgroundBlack)
	require.NoError(t, err)

	for _, result := range report.Results {
		if result.Shade != token.ShadeNormal {
			continue
		}
		assert.True(t, result.Classification.PassesAAA,
			"%s.normal under high-contrast+dark should meet AAA on black, got %.2f", result.Family, result.Ratio)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Run(token.DefaultResolver(), token.ContextComfort, token.SchemeDark)
	require.NoError(t, err)
	second, err := Run(token.DefaultResolver(), token.ContextComfort, token.SchemeDark)
	require.NoError(t, err)

	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestDefaultBackgrounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{BackgroundWhite, BackgroundNearWhite}, DefaultBackgrounds(token.SchemeLight))
	assert.Equal(t, []string{BackgroundBlack, BackgroundNearBlack}, DefaultBackgrounds(token.SchemeDark))
	assert.Len(t, AllBackgrounds(), 4)
}

func TestRunRejectsUnknownContext(t *testing.T) {
	t.Parallel()

	_, err := Run(token.DefaultResolver(), token.Context(9), token.SchemeLight)
	require.Error(t, err)
}
