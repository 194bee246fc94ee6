package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	medthemeerrors "github.com/emberhealth/medtheme/pkg/errors"
)

func TestParseFamilyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, family := range Families() {
		parsed, err := ParseFamily(family.String())
		require.NoError(t, err)
		assert.Equal(t, family, parsed)
	}
}

func TestParseFamilyRejectsUnknownName(t *testing.T) {
	t.Parallel()

	_, err := ParseFamily("mauve")

	var familyErr *medthemeerrors.UnknownFamilyError
	require.ErrorAs(t, err, &familyErr)
	assert.Equal(t, "mauve", familyErr.Family)
}

func TestParseShadeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, shade := range Shades() {
		parsed, err := ParseShade(shade.String())
		require.NoError(t, err)
		assert.Equal(t, shade, parsed)
	}

	_, err := ParseShade("darkest")
	var shadeErr *medthemeerrors.UnknownShadeError
	require.ErrorAs(t, err, &shadeErr)
}

func TestParseContextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, context := range Contexts() {
		parsed, err := ParseContext(context.String())
		require.NoError(t, err)
		assert.Equal(t, context, parsed)
	}

	_, err := ParseContext("midnight")
	var contextErr *medthemeerrors.UnknownContextError
	require.ErrorAs(t, err, &contextErr)
}

func TestParseSchemeRejectsSystem(t *testing.T) {
	t.Parallel()

	// "system" is resolved to light or dark at the application boundary;
	// the core only accepts the two concrete schemes.
	_, err := ParseScheme("system")

	var schemeErr *medthemeerrors.UnknownSchemeError
	require.ErrorAs(t, err, &schemeErr)
}

func TestDefaultsAreZeroValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ContextClinical, Context(0))
	assert.Equal(t, SchemeLight, Scheme(0))
}

func TestParseSlot(t *testing.T) {
	t.Parallel()

	slot, err := ParseSlot("error.normal")
	require.NoError(t, err)
	assert.Equal(t, Slot{Family: FamilyError, Shade: ShadeNormal}, slot)
	assert.Equal(t, "error.normal", slot.String())

	_, err = ParseSlot("error")
	require.Error(t, err)

	_, err = ParseSlot("mauve.normal")
	var familyErr *medthemeerrors.UnknownFamilyError
	require.ErrorAs(t, err, &familyErr)

	_, err = ParseSlot("error.darkest")
	var shadeErr *medthemeerrors.UnknownShadeError
	require.ErrorAs(t, err, &shadeErr)
}
