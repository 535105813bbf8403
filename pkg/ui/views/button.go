package views

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/marquee/pkg/ui/runtime"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// Button is a focusable label that runs a callback when activated.
type Button struct {
	runtime.BaseView
	label    string
	callback runtime.Callback
	disabled bool
	size     vec.Vec2
}

// NewButton creates a button.
func NewButton(label string, cb runtime.Callback) *Button {
	return &Button{label: label, callback: cb}
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// SetLabel changes the button text.
func (b *Button) SetLabel(label string) { b.label = label }

// SetCallback replaces the activation callback.
func (b *Button) SetCallback(cb runtime.Callback) { b.callback = cb }

// SetEnabled enables or disables the button.
func (b *Button) SetEnabled(enabled bool) { b.disabled = !enabled }

// Enabled reports whether the button accepts focus and input.
func (b *Button) Enabled() bool { return !b.disabled }

// RequiredSize returns the width of "<label>".
func (b *Button) RequiredSize(vec.Vec2) vec.Vec2 {
	return vec.New(runewidth.StringWidth(b.label)+2, 1)
}

func (b *Button) Layout(size vec.Vec2) { b.size = size }

// Draw prints "<label>", highlighted when focused.
func (b *Button) Draw(p *runtime.Printer) {
	text := "<" + b.label + ">"
	if b.disabled {
		p.WithColor(theme.StyleSecondary, func(p *runtime.Printer) {
			p.Print(vec.Zero(), text)
		})
		return
	}
	p.WithSelection(p.Focused(), func(p *runtime.Printer) {
		p.Print(vec.Zero(), text)
	})
}

// TakeFocus accepts focus unless disabled.
func (b *Button) TakeFocus(runtime.Direction) bool {
	return !b.disabled
}

// OnEvent activates on Enter or a mouse press inside the button.
func (b *Button) OnEvent(ev terminal.Event) runtime.EventResult {
	if b.disabled {
		return runtime.Ignored()
	}
	switch e := ev.(type) {
	case terminal.KeyEvent:
		if e == terminal.KeyPress(terminal.KeyEnter) {
			return b.activate()
		}
	case terminal.MouseEvent:
		inside := e.Position.X >= 0 && e.Position.Y >= 0 &&
			e.Position.X < b.size.X && e.Position.Y < b.size.Y
		if inside && e.Kind == terminal.MousePress && e.Button == terminal.MouseLeft {
			return b.activate()
		}
	}
	return runtime.Ignored()
}

func (b *Button) activate() runtime.EventResult {
	if b.callback == nil {
		return runtime.Consumed()
	}
	return runtime.ConsumedWith(b.callback)
}

var _ runtime.View = (*Button)(nil)
