package views

import (
	"github.com/odvcencio/marquee/pkg/ui/runtime"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// IDView registers a view under a stable identifier so it can be found
// with runtime.ID selectors. Everything else is forwarded to the wrapped
// view.
type IDView struct {
	id   string
	view runtime.View
}

// WithID wraps v under id.
func WithID(id string, v runtime.View) *IDView {
	return &IDView{id: id, view: v}
}

// ID returns the identifier.
func (n *IDView) ID() string { return n.id }

// Inner returns the wrapped view.
func (n *IDView) Inner() runtime.View { return n.view }

func (n *IDView) Draw(p *runtime.Printer)                       { n.view.Draw(p) }
func (n *IDView) Layout(size vec.Vec2)                          { n.view.Layout(size) }
func (n *IDView) NeedsRelayout() bool                           { return n.view.NeedsRelayout() }
func (n *IDView) RequiredSize(c vec.Vec2) vec.Vec2              { return n.view.RequiredSize(c) }
func (n *IDView) OnEvent(ev terminal.Event) runtime.EventResult { return n.view.OnEvent(ev) }
func (n *IDView) TakeFocus(dir runtime.Direction) bool          { return n.view.TakeFocus(dir) }

// CallOnAny runs fn on the wrapped view when sel names this id, otherwise
// it searches inside the wrapped view.
func (n *IDView) CallOnAny(sel runtime.Selector, fn func(runtime.View)) bool {
	if n.matches(sel) {
		fn(n.view)
		return true
	}
	return n.view.CallOnAny(sel, fn)
}

// FocusView focuses the wrapped view when sel names this id.
func (n *IDView) FocusView(sel runtime.Selector) bool {
	if n.matches(sel) {
		return n.view.TakeFocus(runtime.DirNone)
	}
	return n.view.FocusView(sel)
}

func (n *IDView) matches(sel runtime.Selector) bool {
	id, ok := sel.(runtime.ID)
	return ok && string(id) == n.id
}

var _ runtime.View = (*IDView)(nil)
