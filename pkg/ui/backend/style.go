package backend

import "github.com/odvcencio/marquee/pkg/ui/theme"

// Style is the drawing state a backend applies to printed text.
type Style struct {
	Pair   theme.ColorPair
	Effect theme.Effect
}

// DefaultStyle returns the default style (default colors, no effects).
func DefaultStyle() Style {
	return Style{Pair: theme.ColorPair{Front: theme.ColorDefault, Back: theme.ColorDefault}}
}

// WithPair returns the style with a different color pair.
func (s Style) WithPair(p theme.ColorPair) Style {
	s.Pair = p
	return s
}

// With enables an effect.
func (s Style) With(e theme.Effect) Style {
	s.Effect |= e
	return s
}

// Without disables an effect.
func (s Style) Without(e theme.Effect) Style {
	s.Effect &^= e
	return s
}
