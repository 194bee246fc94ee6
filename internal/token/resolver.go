package token

import (
	"fmt"
	"regexp"

	medthemeerrors "github.com/emberhealth/medtheme/pkg/errors"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Resolver maps (family, shade, context, scheme) to a concrete hex value.
// The tables it is built from are validated once at construction and never
// mutated afterwards, so resolution is deterministic and safe to call from
// any goroutine.
type Resolver struct {
	palette Palette
}

// NewResolver validates a palette and wraps it in a Resolver. The base table
// must be total (every family defines all five shades) and every value in
// every layer must be a #RRGGBB hex triplet.
func NewResolver(palette Palette) (*Resolver, error) {
	for _, family := range Families() {
		shades, ok := palette.Base[family]
		if !ok {
			return nil, medthemeerrors.NewValidationError(
				fmt.Sprintf("palette.%s", family), "family missing from base palette", nil)
		}
		for _, shade := range Shades() {
			value, ok := shades[shade]
			if !ok {
				return nil, medthemeerrors.NewValidationError(
					fmt.Sprintf("palette.%s.%s", family, shade), "missing shade", nil)
			}
			if !hexPattern.MatchString(value) {
				return nil, medthemeerrors.NewValidationError(
					fmt.Sprintf("palette.%s.%s", family, shade),
					fmt.Sprintf("invalid color value %q", value), nil)
			}
		}
	}

	for context, overrides := range palette.Contexts {
		if !context.Valid() {
			return nil, medthemeerrors.NewUnknownContextError(context.String())
		}
		if err := validateOverrides(fmt.Sprintf("contexts.%s", context), overrides); err != nil {
			return nil, err
		}
	}

	if err := validateOverrides("dark", palette.Dark); err != nil {
		return nil, err
	}

	for context, overrides := range palette.ContextDark {
		if !context.Valid() {
			return nil, medthemeerrors.NewUnknownContextError(context.String())
		}
		if err := validateOverrides(fmt.Sprintf("dark.%s", context), overrides); err != nil {
			return nil, err
		}
	}

	return &Resolver{palette: palette}, nil
}

func validateOverrides(layer string, overrides map[Slot]string) error {
	for slot, value := range overrides {
		if !slot.Family.Valid() {
			return medthemeerrors.NewUnknownFamilyError(slot.Family.String())
		}
		if !slot.Shade.Valid() {
			return medthemeerrors.NewUnknownShadeError(slot.Shade.String())
		}
		if !hexPattern.MatchString(value) {
			return medthemeerrors.NewValidationError(
				fmt.Sprintf("%s.%s", layer, slot),
				fmt.Sprintf("invalid color value %q", value), nil)
		}
	}
	return nil
}

// DefaultResolver returns a resolver over the canonical embedded palette.
func DefaultResolver() *Resolver {
	resolver, err := NewResolver(Default())
	if err != nil {
		// The embedded palette is covered by tests; reaching this means the
		// binary shipped with a broken table.
		panic(err)
	}
	return resolver
}

// Resolve returns the hex value for a token under the given context and
// scheme. Layers apply in fixed precedence: base palette, then the context
// override, then (dark scheme only) the context-specific dark override or,
// failing that, the generic dark override. Unknown inputs are surfaced as
// errors, never silently defaulted: a misnamed token should fail loudly
// rather than render a plausible wrong color.
func (r *Resolver) Resolve(family Family, shade Shade, context Context, scheme Scheme) (string, error) {
	if !family.Valid() {
		return "", medthemeerrors.NewUnknownFamilyError(family.String())
	}
	if !shade.Valid() {
		return "", medthemeerrors.NewUnknownShadeError(shade.String())
	}
	if !context.Valid() {
		return "", medthemeerrors.NewUnknownContextError(context.String())
	}
	if !scheme.Valid() {
		return "", medthemeerrors.NewUnknownSchemeError(scheme.String())
	}

	slot := Slot{Family: family, Shade: shade}
	value := r.palette.Base[family][shade]

	if override, ok := r.palette.Contexts[context][slot]; ok {
		value = override
	}

	if scheme == SchemeDark {
		if override, ok := r.palette.ContextDark[context][slot]; ok {
			value = override
		} else if override, ok := r.palette.Dark[slot]; ok {
			value = override
		}
	}

	return value, nil
}

// ResolveNames is Resolve over raw string inputs, for callers at the
// application boundary. Empty context and scheme default to clinical/light.
func (r *Resolver) ResolveNames(family, shade, context, scheme string) (string, error) {
	f, err := ParseFamily(family)
	if err != nil {
		return "", err
	}
	s, err := ParseShade(shade)
	if err != nil {
		return "", err
	}

	c := ContextClinical
	if context != "" {
		if c, err = ParseContext(context); err != nil {
			return "", err
		}
	}

	sch := SchemeLight
	if scheme != "" {
		if sch, err = ParseScheme(scheme); err != nil {
			return "", err
		}
	}

	return r.Resolve(f, s, c, sch)
}

// ListOverrides enumerates only the overrides a theme context defines, for
// diagnostics and documentation. Base-palette entries the context does not
// touch are excluded.
func (r *Resolver) ListOverrides(context Context) (map[Slot]string, error) {
	if !context.Valid() {
		return nil, medthemeerrors.NewUnknownContextError(context.String())
	}

	overrides := make(map[Slot]string, len(r.palette.Contexts[context]))
	for slot, value := range r.palette.Contexts[context] {
		overrides[slot] = value
	}
	return overrides, nil
}
