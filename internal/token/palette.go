package token

// Palette is the static data a resolver is built from: the base table plus
// sparse override layers. Override maps only contain the slots a layer
// changes; everything else falls through to the base table.
type Palette struct {
	// Base holds the full 6x5 family/shade table. Every family must define
	// all five shades.
	Base map[Family]map[Shade]string

	// Contexts holds per-theme-context overrides applied on top of Base.
	Contexts map[Context]map[Slot]string

	// Dark holds generic dark-scheme overrides, applied when no
	// context-specific dark override exists for a slot.
	Dark map[Slot]string

	// ContextDark holds (context, slot) dark-scheme overrides. A dark
	// composite like high-contrast+dark may re-override slots the context
	// already changed.
	ContextDark map[Context]map[Slot]string
}

// Default returns the canonical palette. warning.normal is #b45309, the
// AA-compliant candidate of the two values the design files carried
// (#ca8a04 measures 2.94:1 on white and fails AA).
func Default() Palette {
	return Palette{
		Base: map[Family]map[Shade]string{
			FamilyPrimary: {
				ShadeLighter: "#dbeafe",
				ShadeLight:   "#93c5fd",
				ShadeNormal:  "#1d4ed8",
				ShadeDark:    "#1e40af",
				ShadeDarker:  "#1e3a8a",
			},
			FamilyNeutral: {
				ShadeLighter: "#f1f5f9",
				ShadeLight:   "#cbd5e1",
				ShadeNormal:  "#64748b",
				ShadeDark:    "#334155",
				ShadeDarker:  "#0f172a",
			},
			FamilySuccess: {
				ShadeLighter: "#dcfce7",
				ShadeLight:   "#86efac",
				ShadeNormal:  "#15803d",
				ShadeDark:    "#166534",
				ShadeDarker:  "#14532d",
			},
			FamilyWarning: {
				ShadeLighter: "#fef3c7",
				ShadeLight:   "#fcd34d",
				ShadeNormal:  "#b45309",
				ShadeDark:    "#92400e",
				ShadeDarker:  "#78350f",
			},
			FamilyError: {
				ShadeLighter: "#fee2e2",
				ShadeLight:   "#fca5a5",
				ShadeNormal:  "#b91c1c",
				ShadeDark:    "#991b1b",
				ShadeDarker:  "#7f1d1d",
			},
			FamilyInfo: {
				ShadeLighter: "#cffafe",
				ShadeLight:   "#67e8f9",
				ShadeNormal:  "#0e7490",
				ShadeDark:    "#155e75",
				ShadeDarker:  "#164e63",
			},
		},
		Contexts: map[Context]map[Slot]string{
			// clinical is the baseline profile.
			ContextClinical: {},
			ContextComfort: {
				{FamilyPrimary, ShadeNormal}: "#2563eb",
				{FamilyNeutral, ShadeNormal}: "#475569",
				{FamilySuccess, ShadeNormal}: "#16a34a",
				{FamilyInfo, ShadeNormal}:    "#0891b2",
			},
			ContextHighContrast: {
				{FamilyPrimary, ShadeNormal}: "#1e3a8a",
				{FamilyNeutral, ShadeNormal}: "#0f172a",
				{FamilySuccess, ShadeNormal}: "#14532d",
				{FamilyWarning, ShadeNormal}: "#78350f",
				{FamilyError, ShadeNormal}:   "#7f1d1d",
				{FamilyInfo, ShadeNormal}:    "#164e63",
			},
			ContextVibrant: {
				{FamilyPrimary, ShadeLight}:  "#60a5fa",
				{FamilyPrimary, ShadeNormal}: "#2563eb",
				{FamilySuccess, ShadeNormal}: "#16a34a",
				{FamilyWarning, ShadeNormal}: "#d97706",
				{FamilyError, ShadeNormal}:   "#dc2626",
				{FamilyInfo, ShadeNormal}:    "#06b6d4",
			},
		},
		Dark: map[Slot]string{
			{FamilyPrimary, ShadeNormal}: "#60a5fa",
			{FamilyNeutral, ShadeNormal}: "#94a3b8",
			{FamilySuccess, ShadeNormal}: "#4ade80",
			{FamilyWarning, ShadeNormal}: "#fbbf24",
			{FamilyError, ShadeNormal}:   "#f87171",
			{FamilyInfo, ShadeNormal}:    "#22d3ee",
		},
		ContextDark: map[Context]map[Slot]string{
			ContextComfort: {
				{FamilyPrimary, ShadeNormal}: "#93c5fd",
				{FamilyError, ShadeNormal}:   "#fca5a5",
			},
			// Every high-contrast dark value measures at least 14:1 against
			// #000000, comfortably past the 7:1 AAA floor.
			ContextHighContrast: {
				{FamilyPrimary, ShadeNormal}: "#bfdbfe",
				{FamilyNeutral, ShadeNormal}: "#f1f5f9",
				{FamilySuccess, ShadeNormal}: "#bbf7d0",
				{FamilyWarning, ShadeNormal}: "#fde68a",
				{FamilyError, ShadeNormal}:   "#fecaca",
				{FamilyInfo, ShadeNormal}:    "#cffafe",
			},
		},
	}
}
