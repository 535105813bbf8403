package views

import (
	"github.com/odvcencio/marquee/pkg/ui/runtime"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// Orientation is the main axis of a LinearLayout.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

type linearChild struct {
	view runtime.View
	grow float64 // 0 = fixed at its required size

	// computed by Layout
	offset vec.Vec2
	size   vec.Vec2
}

// LinearLayout stacks children along one axis. Fixed children get their
// required size; expanded children share what is left in proportion to
// their grow factor. Focus moves between children with Tab, Shift+Tab and
// the arrow keys of the main axis.
type LinearLayout struct {
	orientation Orientation
	children    []*linearChild
	focus       int
	size        vec.Vec2
}

// NewLinearLayout creates an empty layout.
func NewLinearLayout(o Orientation) *LinearLayout {
	return &LinearLayout{orientation: o}
}

// NewVertical creates a top-to-bottom layout.
func NewVertical() *LinearLayout { return NewLinearLayout(Vertical) }

// NewHorizontal creates a left-to-right layout.
func NewHorizontal() *LinearLayout { return NewLinearLayout(Horizontal) }

// Add appends a fixed-size child.
func (l *LinearLayout) Add(v runtime.View) *LinearLayout {
	return l.AddWeighted(v, 0)
}

// AddExpanded appends a child that grows to fill remaining space.
func (l *LinearLayout) AddExpanded(v runtime.View) *LinearLayout {
	return l.AddWeighted(v, 1)
}

// AddWeighted appends a child with an explicit grow factor.
func (l *LinearLayout) AddWeighted(v runtime.View, grow float64) *LinearLayout {
	l.children = append(l.children, &linearChild{view: v, grow: max(0, grow)})
	return l
}

// Remove deletes child i and returns it, or nil when out of range.
func (l *LinearLayout) Remove(i int) runtime.View {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	v := l.children[i].view
	wasFocused := l.focus == i
	l.children = append(l.children[:i], l.children[i+1:]...)
	if l.focus > i || l.focus >= len(l.children) {
		l.focus = max(0, l.focus-1)
	}
	if wasFocused {
		l.refocus()
	}
	return v
}

// refocus hands focus to the first child accepting it, starting at the
// current index and wrapping.
func (l *LinearLayout) refocus() {
	n := len(l.children)
	for k := 0; k < n; k++ {
		i := (l.focus + k) % n
		if l.children[i].view.TakeFocus(runtime.DirNone) {
			l.focus = i
			return
		}
	}
}

// Len returns the number of children.
func (l *LinearLayout) Len() int { return len(l.children) }

// Child returns child i, or nil.
func (l *LinearLayout) Child(i int) runtime.View {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i].view
}

// FocusIndex returns the index of the focused child.
func (l *LinearLayout) FocusIndex() int { return l.focus }

// SetFocusIndex focuses child i if it accepts focus.
func (l *LinearLayout) SetFocusIndex(i int) bool {
	if i < 0 || i >= len(l.children) {
		return false
	}
	if !l.children[i].view.TakeFocus(runtime.DirNone) {
		return false
	}
	l.focus = i
	return true
}

func (l *LinearLayout) along(v vec.Vec2) int {
	if l.orientation == Vertical {
		return v.Y
	}
	return v.X
}

func (l *LinearLayout) across(v vec.Vec2) int {
	if l.orientation == Vertical {
		return v.X
	}
	return v.Y
}

func (l *LinearLayout) compose(along, across int) vec.Vec2 {
	if l.orientation == Vertical {
		return vec.New(across, along)
	}
	return vec.New(along, across)
}

// RequiredSize sums the children along the main axis and takes the widest
// across it.
func (l *LinearLayout) RequiredSize(constraint vec.Vec2) vec.Vec2 {
	total, widest := 0, 0
	for _, c := range l.children {
		req := c.view.RequiredSize(constraint)
		total += l.along(req)
		widest = max(widest, l.across(req))
	}
	return l.compose(total, widest).Min(constraint)
}

// Layout assigns each child its slice of size.
func (l *LinearLayout) Layout(size vec.Vec2) {
	l.size = size
	if len(l.children) == 0 {
		return
	}

	mains := make([]int, len(l.children))
	fixed, totalGrow := 0, 0.0
	for i, c := range l.children {
		if c.grow > 0 {
			totalGrow += c.grow
			continue
		}
		mains[i] = l.along(c.view.RequiredSize(size))
		fixed += mains[i]
	}

	// The last growing child absorbs the rounding remainder.
	available := max(0, l.along(size)-fixed)
	assigned, last := 0, -1
	for i, c := range l.children {
		if c.grow > 0 {
			mains[i] = int(float64(available) * c.grow / totalGrow)
			assigned += mains[i]
			last = i
		}
	}
	if last >= 0 {
		mains[last] += available - assigned
	}

	offset := 0
	for i, c := range l.children {
		m := min(mains[i], max(0, l.along(size)-offset))
		c.offset = l.compose(offset, 0)
		c.size = l.compose(m, l.across(size))
		c.view.Layout(c.size)
		offset += m
	}
}

// NeedsRelayout reports whether any child needs a new layout.
func (l *LinearLayout) NeedsRelayout() bool {
	for _, c := range l.children {
		if c.view.NeedsRelayout() {
			return true
		}
	}
	return false
}

// Draw paints every child in its slice. Only the focused child draws
// focused.
func (l *LinearLayout) Draw(p *runtime.Printer) {
	for i, c := range l.children {
		c.view.Draw(p.Sub(c.offset, c.size, i == l.focus))
	}
}

// OnEvent routes mouse events to the child under the pointer and other
// events to the focused child. Ignored navigation keys move focus.
func (l *LinearLayout) OnEvent(ev terminal.Event) runtime.EventResult {
	if len(l.children) == 0 {
		return runtime.Ignored()
	}

	if pos, ok := terminal.MousePosition(ev); ok {
		i := l.childAt(pos)
		if i < 0 {
			return runtime.Ignored()
		}
		if me := ev.(terminal.MouseEvent); me.Kind.GrabsFocus() && i != l.focus {
			if l.children[i].view.TakeFocus(runtime.DirNone) {
				l.focus = i
			}
		}
		return l.children[i].view.OnEvent(terminal.Relativize(ev, l.children[i].offset))
	}

	if res := l.children[l.focus].view.OnEvent(ev); res.IsConsumed() {
		return res
	}

	key, ok := ev.(terminal.KeyEvent)
	if !ok || key.Ctrl || key.Alt {
		return runtime.Ignored()
	}
	switch {
	case key.Key == terminal.KeyTab && !key.Shift:
		return l.moveFocus(1, runtime.DirFront, true)
	case key.Key == terminal.KeyTab && key.Shift:
		return l.moveFocus(-1, runtime.DirBack, true)
	case key.Shift:
		return runtime.Ignored()
	}

	prev, next := terminal.KeyUp, terminal.KeyDown
	if l.orientation == Horizontal {
		prev, next = terminal.KeyLeft, terminal.KeyRight
	}
	switch key.Key {
	case prev:
		return l.moveFocus(-1, l.arrival(-1), false)
	case next:
		return l.moveFocus(1, l.arrival(1), false)
	}
	return runtime.Ignored()
}

// arrival is the direction focus enters a child from when moving by delta.
func (l *LinearLayout) arrival(delta int) runtime.Direction {
	switch {
	case l.orientation == Vertical && delta > 0:
		return runtime.DirUp
	case l.orientation == Vertical:
		return runtime.DirDown
	case delta > 0:
		return runtime.DirLeft
	}
	return runtime.DirRight
}

// moveFocus gives focus to the next child accepting it. Tab wraps around;
// arrows stop at the ends so an enclosing view can handle them.
func (l *LinearLayout) moveFocus(delta int, dir runtime.Direction, wrap bool) runtime.EventResult {
	n := len(l.children)
	for step := 1; step < n || (wrap && step <= n); step++ {
		i := l.focus + delta*step
		if wrap {
			i = ((i % n) + n) % n
		} else if i < 0 || i >= n {
			break
		}
		if i == l.focus {
			break
		}
		if l.children[i].view.TakeFocus(dir) {
			l.focus = i
			return runtime.Consumed()
		}
	}
	return runtime.Ignored()
}

func (l *LinearLayout) childAt(pos vec.Vec2) int {
	for i, c := range l.children {
		if pos.X >= c.offset.X && pos.Y >= c.offset.Y &&
			pos.X < c.offset.X+c.size.X && pos.Y < c.offset.Y+c.size.Y {
			return i
		}
	}
	return -1
}

// TakeFocus focuses the first child accepting focus, searching from the
// end when focus arrives from behind.
func (l *LinearLayout) TakeFocus(dir runtime.Direction) bool {
	n := len(l.children)
	fromEnd := dir == runtime.DirBack ||
		(l.orientation == Vertical && dir == runtime.DirDown) ||
		(l.orientation == Horizontal && dir == runtime.DirRight)
	for k := 0; k < n; k++ {
		i := k
		if fromEnd {
			i = n - 1 - k
		}
		if l.children[i].view.TakeFocus(dir) {
			l.focus = i
			return true
		}
	}
	return false
}

// CallOnAny searches children in order and stops at the first match.
func (l *LinearLayout) CallOnAny(sel runtime.Selector, fn func(runtime.View)) bool {
	for _, c := range l.children {
		if c.view.CallOnAny(sel, fn) {
			return true
		}
	}
	return false
}

// FocusView focuses the first child containing a match.
func (l *LinearLayout) FocusView(sel runtime.Selector) bool {
	for i, c := range l.children {
		if c.view.FocusView(sel) {
			l.focus = i
			return true
		}
	}
	return false
}

var _ runtime.View = (*LinearLayout)(nil)
