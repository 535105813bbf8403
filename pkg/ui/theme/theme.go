// Package theme provides colors, text effects and palettes for marquee views.
package theme

import "fmt"

// PaletteColor names a role in the palette.
type PaletteColor int

// Palette roles
const (
	Background        PaletteColor = iota // Screen background behind every layer
	Shadow                                // Layer drop shadows
	View                                  // Layer background
	Primary                               // Main text
	Secondary                             // Supporting text
	Tertiary                              // Hints
	TitlePrimary                          // Active titles
	TitleSecondary                        // Inactive titles
	Highlight                             // Focused selection
	HighlightInactive                     // Unfocused selection

	paletteColorCount
)

var paletteColorNames = [paletteColorCount]string{
	"background",
	"shadow",
	"view",
	"primary",
	"secondary",
	"tertiary",
	"title_primary",
	"title_secondary",
	"highlight",
	"highlight_inactive",
}

func (p PaletteColor) String() string {
	if p < 0 || p >= paletteColorCount {
		return fmt.Sprintf("PaletteColor(%d)", int(p))
	}
	return paletteColorNames[p]
}

// ParsePaletteColor returns the role with the given name.
func ParsePaletteColor(name string) (PaletteColor, bool) {
	for i, n := range paletteColorNames {
		if n == name {
			return PaletteColor(i), true
		}
	}
	return 0, false
}

// Palette maps every role to a color. The zero value is all black.
type Palette [paletteColorCount]Color

// Get returns the color assigned to a role.
func (p Palette) Get(role PaletteColor) Color {
	if role < 0 || role >= paletteColorCount {
		return ColorDefault
	}
	return p[role]
}

// Set assigns a color to a role.
func (p *Palette) Set(role PaletteColor, c Color) {
	if role < 0 || role >= paletteColorCount {
		return
	}
	p[role] = c
}

// ColorStyle is a semantic color role resolved against a theme.
type ColorStyle int

// Color styles
const (
	StyleBackground ColorStyle = iota
	StyleShadow
	StylePrimary
	StyleSecondary
	StyleTertiary
	StyleTitlePrimary
	StyleTitleSecondary
	StyleHighlight
	StyleHighlightInactive
)

// BorderStyle selects how boxes are drawn.
type BorderStyle int

// Border styles
const (
	BorderSimple BorderStyle = iota
	BorderOutset
	BorderNone
)

func (b BorderStyle) String() string {
	switch b {
	case BorderSimple:
		return "simple"
	case BorderOutset:
		return "outset"
	case BorderNone:
		return "none"
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorderStyle parses "simple", "outset" or "none".
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch s {
	case "simple", "":
		return BorderSimple, nil
	case "outset":
		return BorderOutset, nil
	case "none":
		return BorderNone, nil
	}
	return BorderSimple, fmt.Errorf("unknown border style %q", s)
}

// Theme is the visual configuration shared by every view.
type Theme struct {
	Shadow  bool
	Borders BorderStyle
	Palette Palette
}

// Default returns the built-in blue theme.
func Default() *Theme {
	t := &Theme{
		Shadow:  true,
		Borders: BorderSimple,
	}
	t.Palette.Set(Background, ColorBlue)
	t.Palette.Set(Shadow, ColorBlack)
	t.Palette.Set(View, ColorWhite)
	t.Palette.Set(Primary, ColorBlack)
	t.Palette.Set(Secondary, ColorBlue)
	t.Palette.Set(Tertiary, ColorWhite)
	t.Palette.Set(TitlePrimary, ColorRed)
	t.Palette.Set(TitleSecondary, ColorYellow)
	t.Palette.Set(Highlight, ColorRed)
	t.Palette.Set(HighlightInactive, ColorBlue)
	return t
}

// Clone returns an independent copy.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}

// Pair resolves a color style to a concrete pair.
func (t *Theme) Pair(style ColorStyle) ColorPair {
	p := t.Palette
	switch style {
	case StyleBackground:
		return ColorPair{Front: p.Get(Background), Back: p.Get(Background)}
	case StyleShadow:
		return ColorPair{Front: p.Get(Shadow), Back: p.Get(Shadow)}
	case StyleSecondary:
		return ColorPair{Front: p.Get(Secondary), Back: p.Get(View)}
	case StyleTertiary:
		return ColorPair{Front: p.Get(Tertiary), Back: p.Get(View)}
	case StyleTitlePrimary:
		return ColorPair{Front: p.Get(TitlePrimary), Back: p.Get(View)}
	case StyleTitleSecondary:
		return ColorPair{Front: p.Get(TitleSecondary), Back: p.Get(View)}
	case StyleHighlight:
		return ColorPair{Front: p.Get(View), Back: p.Get(Highlight)}
	case StyleHighlightInactive:
		return ColorPair{Front: p.Get(View), Back: p.Get(HighlightInactive)}
	default:
		return ColorPair{Front: p.Get(Primary), Back: p.Get(View)}
	}
}
