// Package contrast implements WCAG 2.1 contrast math for six-digit sRGB hex
// colors: relative luminance, contrast ratios, and conformance
// classification. All functions are pure; results are never cached.
package contrast

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	medthemeerrors "github.com/emberhealth/medtheme/pkg/errors"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// WCAG 2.1 minimum contrast ratios for conformance.
const (
	ThresholdAA        = 4.5
	ThresholdAAA       = 7.0
	ThresholdLargeText = 3.0
)

// RGB holds 8-bit sRGB channel values.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// IsValidHex reports whether value is a #RRGGBB hex triplet.
func IsValidHex(value string) bool {
	return hexPattern.MatchString(value)
}

// ParseHex parses a #RRGGBB string into channel values.
func ParseHex(value string) (RGB, error) {
	if !IsValidHex(value) {
		return RGB{}, medthemeerrors.NewInvalidColorError(value)
	}

	hex := strings.TrimPrefix(value, "#")
	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// linearize converts a normalized sRGB channel to linear light using the
// piecewise transform from the WCAG 2.1 relative-luminance definition.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance computes the WCAG relative luminance of a hex color,
// in [0, 1] where #000000 is 0 and #ffffff is 1.
func RelativeLuminance(value string) (float64, error) {
	rgb, err := ParseHex(value)
	if err != nil {
		return 0, err
	}

	r := linearize(float64(rgb.R) / 255.0)
	g := linearize(float64(rgb.G) / 255.0)
	b := linearize(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// Ratio computes the contrast ratio between two hex colors, in [1, 21].
// The ratio is symmetric in its arguments.
func Ratio(a, b string) (float64, error) {
	la, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}

	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

// Classification reports which WCAG 2.1 conformance levels a ratio meets.
type Classification struct {
	PassesAA        bool
	PassesAAA       bool
	PassesLargeText bool
}

// Classify applies the fixed WCAG 2.1 thresholds to a contrast ratio.
// Thresholds are inclusive: a ratio of exactly 4.5 passes AA.
func Classify(ratio float64) Classification {
	return Classification{
		PassesAA:        ratio >= ThresholdAA,
		PassesAAA:       ratio >= ThresholdAAA,
		PassesLargeText: ratio >= ThresholdLargeText,
	}
}
