package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhealth/medtheme/internal/audit"
	"github.com/emberhealth/medtheme/internal/token"
)

func TestRenderIncludesTokensAndSummary(t *testing.T) {
	t.Parallel()

	rep, err := audit.Run(token.DefaultResolver(), token.ContextClinical, token.SchemeLight, audit.BackgroundWhite)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	Render(buf, rep, 100)

	out := buf.String()
	assert.Contains(t, out, "Contrast audit — clinical / light")
	assert.Contains(t, out, "warning.normal")
	assert.Contains(t, out, "#b45309")
	assert.Contains(t, out, "pass,")
	assert.Contains(t, out, "NOT compliant")
}

func TestRenderNarrowDropsMessages(t *testing.T) {
	t.Parallel()

	rep, err := audit.Run(token.DefaultResolver(), token.ContextClinical, token.SchemeLight, audit.BackgroundWhite)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	Render(buf, rep, 60)

	assert.NotContains(t, buf.String(), "patient safety critical")
}

func TestRenderOverrides(t *testing.T) {
	t.Parallel()

	resolver := token.DefaultResolver()

	overrides, err := resolver.ListOverrides(token.ContextHighContrast)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	RenderOverrides(buf, token.ContextHighContrast, overrides)
	assert.Contains(t, buf.String(), "error.normal")
	assert.Contains(t, buf.String(), "#7f1d1d")

	buf.Reset()
	RenderOverrides(buf, token.ContextClinical, map[token.Slot]string{})
	assert.Contains(t, buf.String(), "baseline profile")
}
