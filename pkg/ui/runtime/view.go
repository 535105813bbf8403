// Package runtime provides the view runtime for marquee terminal UIs.
// It owns the view tree contract, the overlay layer stack, the menu bar,
// the classic root composition and the single-threaded event loop.
package runtime

import (
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// View is the interface every node of the view tree implements.
type View interface {
	// Draw renders the view. It must not mutate view state.
	Draw(p *Printer)

	// Layout assigns the final size. Called before every draw.
	Layout(size vec.Vec2)

	// NeedsRelayout reports whether Layout must run again.
	NeedsRelayout() bool

	// RequiredSize returns the desired size given the available space.
	RequiredSize(constraint vec.Vec2) vec.Vec2

	// OnEvent handles an event in the view's own coordinate space.
	OnEvent(ev terminal.Event) EventResult

	// TakeFocus attempts to accept focus, arriving from dir.
	TakeFocus(dir Direction) bool

	// CallOnAny runs fn on the first view matching sel, searching children
	// in order. Returns false when nothing matched.
	CallOnAny(sel Selector, fn func(View)) bool

	// FocusView moves focus to the first view matching sel.
	FocusView(sel Selector) bool
}

// Direction describes where focus arrives from.
type Direction int

const (
	DirNone Direction = iota
	DirFront
	DirBack
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirFront:
		return "front"
	case DirBack:
		return "back"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Callback is a deferred action run against the application on the loop
// goroutine. Callbacks are plain function values, so one bound to a hotkey
// runs on every press.
type Callback func(app *App)

// EventResult is returned from OnEvent.
// Ignored is distinct from consumed without a callback.
type EventResult struct {
	consumed bool
	callback Callback
}

// Ignored returns a result indicating the event was not consumed.
func Ignored() EventResult {
	return EventResult{}
}

// Consumed returns a result indicating the event was consumed.
func Consumed() EventResult {
	return EventResult{consumed: true}
}

// ConsumedWith returns a consumed result carrying a deferred callback.
func ConsumedWith(cb Callback) EventResult {
	return EventResult{consumed: true, callback: cb}
}

// IsConsumed reports whether the event was consumed.
func (r EventResult) IsConsumed() bool {
	return r.consumed
}

// Callback returns the deferred action, or nil.
func (r EventResult) Callback() Callback {
	return r.callback
}

// Process runs the deferred callback, if any.
func (r EventResult) Process(app *App) {
	if r.callback != nil {
		r.callback(app)
	}
}

// And merges two results: consumed if either was, callbacks run in order.
func (r EventResult) And(other EventResult) EventResult {
	out := EventResult{consumed: r.consumed || other.consumed}
	switch {
	case r.callback == nil:
		out.callback = other.callback
	case other.callback == nil:
		out.callback = r.callback
	default:
		first, second := r.callback, other.callback
		out.callback = func(app *App) {
			first(app)
			second(app)
		}
	}
	return out
}

// Selector identifies views in the tree.
type Selector interface {
	selector()
}

// ID selects the view registered under a stable identifier.
type ID string

func (ID) selector() {}

// CallOn runs fn on the first view matching sel whose concrete type is V.
func CallOn[V View](root View, sel Selector, fn func(V)) bool {
	found := false
	root.CallOnAny(sel, func(v View) {
		if found {
			return
		}
		if tv, ok := v.(V); ok {
			found = true
			fn(tv)
		}
	})
	return found
}

// Find returns the first view matching sel with concrete type V.
func Find[V View](root View, sel Selector) (V, bool) {
	var out V
	ok := CallOn(root, sel, func(v V) { out = v })
	return out, ok
}

// BaseView provides defaults for optional View methods.
// Embed it and implement Draw.
type BaseView struct{}

// Layout is a no-op.
func (BaseView) Layout(vec.Vec2) {}

// NeedsRelayout always reports true.
func (BaseView) NeedsRelayout() bool { return true }

// RequiredSize asks for a single cell.
func (BaseView) RequiredSize(vec.Vec2) vec.Vec2 { return vec.New(1, 1) }

// OnEvent ignores every event.
func (BaseView) OnEvent(terminal.Event) EventResult { return Ignored() }

// TakeFocus refuses focus.
func (BaseView) TakeFocus(Direction) bool { return false }

// CallOnAny matches nothing.
func (BaseView) CallOnAny(Selector, func(View)) bool { return false }

// FocusView matches nothing.
func (BaseView) FocusView(Selector) bool { return false }
