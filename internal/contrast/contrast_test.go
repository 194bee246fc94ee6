package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	medthemeerrors "github.com/emberhealth/medtheme/pkg/errors"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	rgb, err := ParseHex("#1d4ed8")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x1d, G: 0x4e, B: 0xd8}, rgb)

	rgb, err = ParseHex("#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, rgb)
}

func TestParseHexRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "not-a-color", "#fff", "#1d4ed", "#1d4ed88", "1d4ed8", "#1d4eg8"} {
		_, err := ParseHex(value)

		var colorErr *medthemeerrors.InvalidColorError
		require.ErrorAs(t, err, &colorErr, "value %q should be rejected", value)
		assert.Equal(t, value, colorErr.Value)
	}
}

func TestRelativeLuminanceExtremes(t *testing.T) {
	t.Parallel()

	black, err := RelativeLuminance("#000000")
	require.NoError(t, err)
	assert.Equal(t, 0.0, black)

	white, err := RelativeLuminance("#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, white, 1e-9)
}

func TestRelativeLuminanceChannelWeights(t *testing.T) {
	t.Parallel()

	// A fully saturated channel linearizes to 1.0, so luminance equals the
	// channel coefficient from the WCAG formula.
	red, err := RelativeLuminance("#ff0000")
	require.NoError(t, err)
	assert.InDelta(t, 0.2126, red, 1e-9)

	green, err := RelativeLuminance("#00ff00")
	require.NoError(t, err)
	assert.InDelta(t, 0.7152, green, 1e-9)

	blue, err := RelativeLuminance("#0000ff")
	require.NoError(t, err)
	assert.InDelta(t, 0.0722, blue, 1e-9)
}

func TestRelativeLuminanceRejectsInvalidColor(t *testing.T) {
	t.Parallel()

	_, err := RelativeLuminance("white")

	var colorErr *medthemeerrors.InvalidColorError
	require.ErrorAs(t, err, &colorErr)
}

func TestRatioBlackOnWhite(t *testing.T) {
	t.Parallel()

	ratio, err := Ratio("#ffffff", "#000000")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 1e-9)
}

func TestRatioKnownPair(t *testing.T) {
	t.Parallel()

	ratio, err := Ratio("#1d4ed8", "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 6.70, ratio, 0.01)
}

func TestRatioSymmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"#1d4ed8", "#ffffff"},
		{"#b45309", "#f8fafc"},
		{"#0f172a", "#fbbf24"},
		{"#15803d", "#000000"},
	}

	for _, pair := range pairs {
		forward, err := Ratio(pair[0], pair[1])
		require.NoError(t, err)
		reverse, err := Ratio(pair[1], pair[0])
		require.NoError(t, err)
		assert.Equal(t, forward, reverse, "ratio of %s/%s should be symmetric", pair[0], pair[1])
	}
}

func TestRatioIdentity(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"#000000", "#ffffff", "#1d4ed8", "#b45309"} {
		ratio, err := Ratio(value, value)
		require.NoError(t, err)
		assert.Equal(t, 1.0, ratio, "ratio of %s against itself should be 1.0", value)
	}
}

func TestRatioRejectsInvalidColor(t *testing.T) {
	t.Parallel()

	_, err := Ratio("not-a-color", "#ffffff")
	var colorErr *medthemeerrors.InvalidColorError
	require.ErrorAs(t, err, &colorErr)

	_, err = Ratio("#ffffff", "#fff")
	require.ErrorAs(t, err, &colorErr)
}

func TestClassifyThresholdBoundaries(t *testing.T) {
	t.Parallel()

	assert.True(t, Classify(4.5).PassesAA)
	assert.False(t, Classify(4.49).PassesAA)

	assert.True(t, Classify(7.0).PassesAAA)
	assert.False(t, Classify(6.99).PassesAAA)

	assert.True(t, Classify(3.0).PassesLargeText)
	assert.False(t, Classify(2.99).PassesLargeText)
}

func TestClassifyMonotonicity(t *testing.T) {
	t.Parallel()

	c := Classify(21.0)
	assert.True(t, c.PassesAA)
	assert.True(t, c.PassesAAA)
	assert.True(t, c.PassesLargeText)

	c = Classify(1.0)
	assert.False(t, c.PassesAA)
	assert.False(t, c.PassesAAA)
	assert.False(t, c.PassesLargeText)
}
