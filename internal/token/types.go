// Package token resolves semantic color tokens (family + shade) to concrete
// hex values under a theme context and color scheme. Resolution is a pure
// lookup over immutable tables; the package holds no mutable state.
package token

import (
	"fmt"
	"strings"

	medthemeerrors "github.com/emberhealth/medtheme/pkg/errors"
)

// Family is a semantic color role. Components reference roles, never raw
// colors, so the same role can map to different values per theme.
type Family int

const (
	FamilyPrimary Family = iota
	FamilyNeutral
	FamilySuccess
	FamilyWarning
	FamilyError
	FamilyInfo
)

var familyNames = [...]string{"primary", "neutral", "success", "warning", "error", "info"}

func (f Family) String() string {
	if !f.Valid() {
		return fmt.Sprintf("family(%d)", int(f))
	}
	return familyNames[f]
}

// Valid reports whether f is one of the declared families.
func (f Family) Valid() bool {
	return f >= 0 && int(f) < len(familyNames)
}

// ParseFamily maps a family name to its typed value.
func ParseFamily(name string) (Family, error) {
	for i, n := range familyNames {
		if n == name {
			return Family(i), nil
		}
	}
	return 0, medthemeerrors.NewUnknownFamilyError(name)
}

// Families returns every declared family in palette order.
func Families() []Family {
	families := make([]Family, len(familyNames))
	for i := range familyNames {
		families[i] = Family(i)
	}
	return families
}

// Shade is a lightness tier within a family. Every family defines all five.
type Shade int

const (
	ShadeLighter Shade = iota
	ShadeLight
	ShadeNormal
	ShadeDark
	ShadeDarker
)

var shadeNames = [...]string{"lighter", "light", "normal", "dark", "darker"}

func (s Shade) String() string {
	if !s.Valid() {
		return fmt.Sprintf("shade(%d)", int(s))
	}
	return shadeNames[s]
}

// Valid reports whether s is one of the declared shades.
func (s Shade) Valid() bool {
	return s >= 0 && int(s) < len(shadeNames)
}

// ParseShade maps a shade name to its typed value.
func ParseShade(name string) (Shade, error) {
	for i, n := range shadeNames {
		if n == name {
			return Shade(i), nil
		}
	}
	return 0, medthemeerrors.NewUnknownShadeError(name)
}

// Shades returns every declared shade from lightest to darkest.
func Shades() []Shade {
	shades := make([]Shade, len(shadeNames))
	for i := range shadeNames {
		shades[i] = Shade(i)
	}
	return shades
}

// Context is a named override profile layered on the base palette. The zero
// value, clinical, is the baseline profile with no overrides of its own.
type Context int

const (
	ContextClinical Context = iota
	ContextComfort
	ContextHighContrast
	ContextVibrant
)

var contextNames = [...]string{"clinical", "comfort", "high-contrast", "vibrant"}

func (c Context) String() string {
	if !c.Valid() {
		return fmt.Sprintf("context(%d)", int(c))
	}
	return contextNames[c]
}

// Valid reports whether c is one of the declared theme contexts.
func (c Context) Valid() bool {
	return c >= 0 && int(c) < len(contextNames)
}

// ParseContext maps a theme-context name to its typed value.
func ParseContext(name string) (Context, error) {
	for i, n := range contextNames {
		if n == name {
			return Context(i), nil
		}
	}
	return 0, medthemeerrors.NewUnknownContextError(name)
}

// Contexts returns every declared theme context.
func Contexts() []Context {
	contexts := make([]Context, len(contextNames))
	for i := range contextNames {
		contexts[i] = Context(i)
	}
	return contexts
}

// Scheme is the light/dark color-scheme axis. A "system" preference is an
// application-boundary concern: callers resolve it to one of the two via an
// external signal before calling the resolver.
type Scheme int

const (
	SchemeLight Scheme = iota
	SchemeDark
)

var schemeNames = [...]string{"light", "dark"}

func (s Scheme) String() string {
	if !s.Valid() {
		return fmt.Sprintf("scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// Valid reports whether s is one of the declared color schemes.
func (s Scheme) Valid() bool {
	return s >= 0 && int(s) < len(schemeNames)
}

// ParseScheme maps a color-scheme name to its typed value.
func ParseScheme(name string) (Scheme, error) {
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i), nil
		}
	}
	return 0, medthemeerrors.NewUnknownSchemeError(name)
}

// Slot identifies a single (family, shade) cell of the palette. Override
// tables are keyed by slot.
type Slot struct {
	Family Family
	Shade  Shade
}

func (s Slot) String() string {
	return s.Family.String() + "." + s.Shade.String()
}

// ParseSlot parses a "family.shade" key such as "error.normal".
func ParseSlot(name string) (Slot, error) {
	family, shade, ok := strings.Cut(name, ".")
	if !ok {
		return Slot{}, medthemeerrors.NewValidationError(name, "want family.shade", nil)
	}

	f, err := ParseFamily(family)
	if err != nil {
		return Slot{}, err
	}
	s, err := ParseShade(shade)
	if err != nil {
		return Slot{}, err
	}
	return Slot{Family: f, Shade: s}, nil
}
