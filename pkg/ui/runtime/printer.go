package runtime

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/marquee/pkg/ui/backend"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// Printer is a drawing context scoped to a rectangle of the screen.
// Coordinates passed to its methods are relative to that rectangle and
// output outside of it is clipped.
type Printer struct {
	backend backend.Backend
	theme   *theme.Theme
	offset  vec.Vec2
	size    vec.Vec2
	focused bool
}

// NewPrinter creates a focused printer covering size cells from the origin.
func NewPrinter(be backend.Backend, th *theme.Theme, size vec.Vec2) *Printer {
	if th == nil {
		th = theme.Default()
	}
	return &Printer{
		backend: be,
		theme:   th,
		size:    size,
		focused: true,
	}
}

// Size returns the drawable area.
func (p *Printer) Size() vec.Vec2 { return p.size }

// Origin returns the absolute screen position of the printer's (0, 0).
func (p *Printer) Origin() vec.Vec2 { return p.offset }

// Focused reports whether the area being drawn holds focus.
func (p *Printer) Focused() bool { return p.focused }

// Theme returns the active theme.
func (p *Printer) Theme() *theme.Theme { return p.theme }

// Print writes text at pos, clipped to the printer's area.
// Runes that do not fit entirely are dropped.
func (p *Printer) Print(pos vec.Vec2, text string) {
	if pos.Y < 0 || pos.Y >= p.size.Y || pos.X >= p.size.X {
		return
	}

	var b strings.Builder
	start := -1
	x := pos.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if start >= 0 {
				b.WriteRune(r)
			}
			continue
		}
		if x+w > p.size.X {
			break
		}
		if x >= 0 {
			if start < 0 {
				start = x
			}
			b.WriteRune(r)
		}
		x += w
	}
	if start < 0 {
		return
	}
	p.backend.PrintAt(p.offset.Add(vec.New(start, pos.Y)), b.String())
}

// PrintHLine repeats s for length cells starting at start.
func (p *Printer) PrintHLine(start vec.Vec2, length int, s string) {
	if length <= 0 || s == "" {
		return
	}
	w := runewidth.StringWidth(s)
	if w == 0 {
		return
	}
	p.Print(start, strings.Repeat(s, length/w))
}

// PrintVLine repeats s downward for length rows starting at start.
func (p *Printer) PrintVLine(start vec.Vec2, length int, s string) {
	for y := 0; y < length; y++ {
		p.Print(vec.New(start.X, start.Y+y), s)
	}
}

// Fill paints the whole area with spaces in the current color.
func (p *Printer) Fill() {
	for y := 0; y < p.size.Y; y++ {
		p.PrintHLine(vec.New(0, y), p.size.X, " ")
	}
}

// PrintBox draws a border of the given size at start using the theme's
// border style. Outset borders are lit from the top-left, or the
// bottom-right when invert is set.
func (p *Printer) PrintBox(start, size vec.Vec2, invert bool) {
	if size.X < 2 || size.Y < 2 || p.theme.Borders == theme.BorderNone {
		return
	}
	end := start.Add(size).Sub(vec.New(1, 1))

	topLeft := func(p *Printer) {
		p.Print(start, "┌")
		p.PrintHLine(vec.New(start.X+1, start.Y), size.X-2, "─")
		p.Print(vec.New(end.X, start.Y), "┐")
		p.PrintVLine(vec.New(start.X, start.Y+1), size.Y-2, "│")
	}
	bottomRight := func(p *Printer) {
		p.Print(vec.New(start.X, end.Y), "└")
		p.PrintHLine(vec.New(start.X+1, end.Y), size.X-2, "─")
		p.Print(end, "┘")
		p.PrintVLine(vec.New(end.X, start.Y+1), size.Y-2, "│")
	}

	if p.theme.Borders == theme.BorderSimple {
		topLeft(p)
		bottomRight(p)
		return
	}

	lit, shaded := theme.StyleTertiary, theme.StylePrimary
	if invert {
		lit, shaded = shaded, lit
	}
	p.WithColor(lit, topLeft)
	p.WithColor(shaded, bottomRight)
}

// WithColor runs fn with a theme style applied, restoring the previous
// colors afterwards.
func (p *Printer) WithColor(style theme.ColorStyle, fn func(*Printer)) {
	p.WithColorPair(p.theme.Pair(style), fn)
}

// WithColorPair runs fn with an explicit color pair applied.
func (p *Printer) WithColorPair(pair theme.ColorPair, fn func(*Printer)) {
	prev := p.backend.SetColor(pair)
	defer p.backend.SetColor(prev)
	fn(p)
}

// WithEffect runs fn with an effect enabled.
func (p *Printer) WithEffect(effect theme.Effect, fn func(*Printer)) {
	p.backend.SetEffect(effect)
	defer p.backend.UnsetEffect(effect)
	fn(p)
}

// WithSelection runs fn in the highlight style when selected. The highlight
// is dimmed when the printer is not focused.
func (p *Printer) WithSelection(selected bool, fn func(*Printer)) {
	style := theme.StylePrimary
	if selected {
		style = theme.StyleHighlightInactive
		if p.focused {
			style = theme.StyleHighlight
		}
	}
	p.WithColor(style, fn)
}

// Offset returns a printer shifted by o. The child is focused only if both
// this printer and focused are.
func (p *Printer) Offset(o vec.Vec2, focused bool) *Printer {
	return &Printer{
		backend: p.backend,
		theme:   p.theme,
		offset:  p.offset.Add(o),
		size:    p.size.SaturatingSub(o),
		focused: p.focused && focused,
	}
}

// Sub returns a printer for the rectangle at offset with the given size,
// cropped to this printer's area.
func (p *Printer) Sub(offset, size vec.Vec2, focused bool) *Printer {
	child := p.Offset(offset, focused)
	child.size = child.size.Min(size)
	return child
}
