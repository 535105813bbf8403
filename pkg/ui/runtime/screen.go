package runtime

import (
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

type offsetKind int

const (
	offsetCenter offsetKind = iota
	offsetAbsolute
	offsetParent
)

// Offset places a layer along one axis.
type Offset struct {
	kind offsetKind
	n    int
}

// Center centers the layer in the available space.
func Center() Offset { return Offset{kind: offsetCenter} }

// Absolute places the layer n cells from the screen edge.
func Absolute(n int) Offset { return Offset{kind: offsetAbsolute, n: n} }

// Parent places the layer n cells from the layer below it.
func Parent(n int) Offset { return Offset{kind: offsetParent, n: n} }

func (o Offset) compute(size, available, parent int) int {
	room := available - size
	if room < 0 {
		room = 0
	}
	var v int
	switch o.kind {
	case offsetAbsolute:
		v = o.n
	case offsetParent:
		v = parent + o.n
	default:
		v = room / 2
	}
	if v > room {
		v = room
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Position places a layer on both axes.
type Position struct {
	X, Y Offset
}

// Centered returns the position used by AddLayer.
func Centered() Position { return Position{X: Center(), Y: Center()} }

// AbsoluteAt places a layer at a fixed screen position.
func AbsoluteAt(x, y int) Position { return Position{X: Absolute(x), Y: Absolute(y)} }

func (p Position) compute(size, available, parent vec.Vec2) vec.Vec2 {
	return vec.New(
		p.X.compute(size.X, available.X, parent.X),
		p.Y.compute(size.Y, available.Y, parent.Y),
	)
}

// layer is one overlay in the stack.
type layer struct {
	view       View
	position   Position
	fullscreen bool

	// computed by Layout
	offset vec.Vec2
	size   vec.Vec2
}

// Screen is a stack of overlay layers. The bottom layer is the background,
// the top layer receives events.
type Screen struct {
	layers []*layer
	size   vec.Vec2
}

// NewScreen creates an empty screen.
func NewScreen() *Screen {
	return &Screen{}
}

// AddLayer pushes a centered layer sized by its RequiredSize.
func (s *Screen) AddLayer(v View) {
	s.AddLayerAt(Centered(), v)
}

// AddLayerAt pushes a layer at a position.
func (s *Screen) AddLayerAt(pos Position, v View) {
	s.push(&layer{view: v, position: pos})
}

// AddFullscreenLayer pushes a layer covering the whole screen.
func (s *Screen) AddFullscreenLayer(v View) {
	s.push(&layer{view: v, position: AbsoluteAt(0, 0), fullscreen: true})
}

func (s *Screen) push(l *layer) {
	s.layers = append(s.layers, l)
	if !s.size.IsZero() {
		s.layoutLayer(len(s.layers)-1, s.size)
	}
	l.view.TakeFocus(DirNone)
}

// PopLayer removes and returns the top layer, or nil when empty.
// Focus returns to the new top layer.
func (s *Screen) PopLayer() View {
	if len(s.layers) == 0 {
		return nil
	}
	top := s.layers[len(s.layers)-1]
	s.layers[len(s.layers)-1] = nil
	s.layers = s.layers[:len(s.layers)-1]

	if n := len(s.layers); n > 0 {
		s.layers[n-1].view.TakeFocus(DirNone)
	}
	return top.view
}

// RepositionLayer moves layer i. Out of range indexes are ignored.
func (s *Screen) RepositionLayer(i int, pos Position) {
	if i < 0 || i >= len(s.layers) {
		return
	}
	s.layers[i].position = pos
	s.layers[i].fullscreen = false
	if !s.size.IsZero() {
		s.layoutLayer(i, s.size)
	}
}

// LayerCount returns the number of layers.
func (s *Screen) LayerCount() int {
	return len(s.layers)
}

// Layer returns the view of layer i, or nil.
func (s *Screen) Layer(i int) View {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i].view
}

// LayerOffset returns where layer i was placed by the last Layout.
func (s *Screen) LayerOffset(i int) vec.Vec2 {
	if i < 0 || i >= len(s.layers) {
		return vec.Zero()
	}
	return s.layers[i].offset
}

// LayerSizes returns the size of every layer, bottom first.
func (s *Screen) LayerSizes() []vec.Vec2 {
	sizes := make([]vec.Vec2, len(s.layers))
	for i, l := range s.layers {
		sizes[i] = l.size
	}
	return sizes
}

// Layout sizes and places every layer.
func (s *Screen) Layout(size vec.Vec2) {
	s.size = size
	for i := range s.layers {
		s.layoutLayer(i, size)
	}
}

func (s *Screen) layoutLayer(i int, size vec.Vec2) {
	l := s.layers[i]
	if l.fullscreen {
		l.offset = vec.Zero()
		l.size = size
	} else {
		l.size = l.view.RequiredSize(size).Min(size)
		parent := vec.Zero()
		if i > 0 {
			parent = s.layers[i-1].offset
		}
		l.offset = l.position.compute(l.size, size, parent)
	}
	l.view.Layout(l.size)
}

// NeedsRelayout reports whether any layer needs a new layout.
func (s *Screen) NeedsRelayout() bool {
	for _, l := range s.layers {
		if l.view.NeedsRelayout() {
			return true
		}
	}
	return false
}

// RequiredSize takes whatever is available.
func (s *Screen) RequiredSize(constraint vec.Vec2) vec.Vec2 {
	return constraint
}

// Draw paints every layer.
func (s *Screen) Draw(p *Printer) {
	s.DrawBG(p)
	s.DrawFG(p)
}

// DrawBG paints the bottom layer.
func (s *Screen) DrawBG(p *Printer) {
	if len(s.layers) == 0 {
		return
	}
	s.drawLayer(p, 0)
}

// DrawFG paints every layer above the bottom one, with shadows when the
// theme asks for them.
func (s *Screen) DrawFG(p *Printer) {
	for i := 1; i < len(s.layers); i++ {
		l := s.layers[i]
		if p.Theme().Shadow && !l.fullscreen {
			s.drawShadow(p, l)
		}
		s.drawLayer(p, i)
	}
}

func (s *Screen) drawLayer(p *Printer, i int) {
	l := s.layers[i]
	top := i == len(s.layers)-1
	lp := p.Sub(l.offset, l.size, top)
	lp.WithColor(theme.StylePrimary, func(lp *Printer) {
		lp.Fill()
		l.view.Draw(lp)
	})
}

func (s *Screen) drawShadow(p *Printer, l *layer) {
	if l.size.X == 0 || l.size.Y == 0 {
		return
	}
	p.WithColor(theme.StyleShadow, func(p *Printer) {
		// right edge then bottom edge, offset by one cell
		p.PrintVLine(vec.New(l.offset.X+l.size.X, l.offset.Y+1), l.size.Y, " ")
		p.PrintHLine(vec.New(l.offset.X+1, l.offset.Y+l.size.Y), l.size.X, " ")
	})
}

// OnEvent relativizes ev to the top layer and delegates to it.
func (s *Screen) OnEvent(ev terminal.Event) EventResult {
	if len(s.layers) == 0 {
		return Ignored()
	}
	top := s.layers[len(s.layers)-1]
	return top.view.OnEvent(terminal.Relativize(ev, top.offset))
}

// TakeFocus forwards to the top layer.
func (s *Screen) TakeFocus(dir Direction) bool {
	if len(s.layers) == 0 {
		return false
	}
	return s.layers[len(s.layers)-1].view.TakeFocus(dir)
}

// CallOnAny searches layers bottom-up.
func (s *Screen) CallOnAny(sel Selector, fn func(View)) bool {
	for _, l := range s.layers {
		if l.view.CallOnAny(sel, fn) {
			return true
		}
	}
	return false
}

// FocusView searches layers bottom-up.
func (s *Screen) FocusView(sel Selector) bool {
	for _, l := range s.layers {
		if l.view.FocusView(sel) {
			return true
		}
	}
	return false
}

var _ View = (*Screen)(nil)
