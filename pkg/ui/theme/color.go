package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents a terminal color.
// Values 0-255 are palette colors, values with the RGB flag set are true colors.
type Color int32

// Color constants
const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	// Bright variants
	ColorBrightBlack   Color = 8
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
)

const rgbFlag = 0x01000000

// RGB creates a true color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b) | rgbFlag)
}

// Indexed returns the 256-color palette entry n.
func Indexed(n uint8) Color {
	return Color(n)
}

// IsRGB returns true if this is a true color (not palette).
func (c Color) IsRGB() bool {
	return c != ColorDefault && c&rgbFlag != 0
}

// RGB returns the red, green, blue components of an RGB color.
// Returns 0, 0, 0 for non-RGB colors.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// Hex returns the #rrggbb form of a true color, or "" for palette colors.
func (c Color) Hex() string {
	if !c.IsRGB() {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

var baseColorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	switch {
	case c == ColorDefault:
		return "default"
	case c.IsRGB():
		return c.Hex()
	case c >= 0 && c < 8:
		return baseColorNames[c]
	case c >= 8 && c < 16:
		return "light " + baseColorNames[c-8]
	default:
		return fmt.Sprintf("x256:%d", int32(c))
	}
}

// ParseColor parses a color description:
//   - "default"
//   - a base name ("red") optionally prefixed with "light " or "bright "
//   - "#rgb" or "#rrggbb"
//   - "x256:N" or a bare integer N in 0..255
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ColorDefault, fmt.Errorf("empty color")
	}
	if name == "default" {
		return ColorDefault, nil
	}

	if strings.HasPrefix(name, "#") {
		return parseHex(name[1:])
	}

	if n, ok := strings.CutPrefix(name, "x256:"); ok {
		name = n
	}
	if v, err := strconv.Atoi(name); err == nil {
		if v < 0 || v > 255 {
			return ColorDefault, fmt.Errorf("palette index %d out of range 0..255", v)
		}
		return Indexed(uint8(v)), nil
	}

	bright := false
	for _, prefix := range []string{"light ", "bright ", "light_", "bright_"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			bright = true
			name = rest
			break
		}
	}
	for i, base := range baseColorNames {
		if name == base {
			if bright {
				return Color(i + 8), nil
			}
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", s)
}

func parseHex(h string) (Color, error) {
	switch len(h) {
	case 3:
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(h[i:i+1], 16, 8)
			if err != nil {
				return ColorDefault, fmt.Errorf("invalid hex color #%s", h)
			}
			rgb[i] = uint8(v * 17)
		}
		return RGB(rgb[0], rgb[1], rgb[2]), nil
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return ColorDefault, fmt.Errorf("invalid hex color #%s", h)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return ColorDefault, fmt.Errorf("invalid hex color #%s", h)
}

// ColorPair is a foreground/background combination.
type ColorPair struct {
	Front Color
	Back  Color
}

// Invert swaps foreground and background.
func (p ColorPair) Invert() ColorPair {
	return ColorPair{Front: p.Back, Back: p.Front}
}

// Effect is a set of text attributes.
type Effect uint32

// EffectSimple is plain text.
const EffectSimple Effect = 0

// Attribute flags
const (
	EffectReverse Effect = 1 << iota
	EffectBold
	EffectItalic
	EffectUnderline
	EffectDim
	EffectBlink
	EffectStrikethrough
)

// Has reports whether all bits of other are set.
func (e Effect) Has(other Effect) bool {
	return e&other == other
}
