package views

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/marquee/pkg/ui/runtime"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

var border = vec.New(2, 2)

// Panel draws a border around a single child, with an optional title in
// the top edge.
type Panel struct {
	child runtime.View
	title string
	size  vec.Vec2
}

// NewPanel wraps child in a border.
func NewPanel(child runtime.View) *Panel {
	return &Panel{child: child}
}

// WithTitle sets the title and returns the panel for chaining.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	return p
}

// SetTitle sets the title.
func (p *Panel) SetTitle(title string) { p.title = title }

// Title returns the title.
func (p *Panel) Title() string { return p.title }

// Child returns the wrapped view.
func (p *Panel) Child() runtime.View { return p.child }

// RequiredSize is the child's size plus the border, and at least wide
// enough for the title.
func (p *Panel) RequiredSize(constraint vec.Vec2) vec.Vec2 {
	var inner vec.Vec2
	if p.child != nil {
		inner = p.child.RequiredSize(constraint.SaturatingSub(border))
	}
	size := inner.Add(border)
	if p.title != "" {
		size.X = max(size.X, runewidth.StringWidth(p.title)+6)
	}
	return size
}

// Layout gives the child the space inside the border.
func (p *Panel) Layout(size vec.Vec2) {
	p.size = size
	if p.child != nil {
		p.child.Layout(size.SaturatingSub(border))
	}
}

func (p *Panel) NeedsRelayout() bool {
	return p.child != nil && p.child.NeedsRelayout()
}

// Draw paints the border, the title and the child.
func (p *Panel) Draw(pr *runtime.Printer) {
	size := pr.Size()
	pr.PrintBox(vec.Zero(), size, true)

	if p.title != "" && size.X > 6 {
		title := runewidth.Truncate(p.title, size.X-6, "…")
		x := (size.X - runewidth.StringWidth(title) - 2) / 2
		pr.WithColor(theme.StyleTitlePrimary, func(pr *runtime.Printer) {
			pr.Print(vec.New(x, 0), " "+title+" ")
		})
	}

	if p.child != nil {
		p.child.Draw(pr.Sub(vec.New(1, 1), size.SaturatingSub(border), true))
	}
}

// OnEvent shifts mouse positions inside the border and delegates.
func (p *Panel) OnEvent(ev terminal.Event) runtime.EventResult {
	if p.child == nil {
		return runtime.Ignored()
	}
	return p.child.OnEvent(terminal.Relativize(ev, vec.New(1, 1)))
}

func (p *Panel) TakeFocus(dir runtime.Direction) bool {
	return p.child != nil && p.child.TakeFocus(dir)
}

func (p *Panel) CallOnAny(sel runtime.Selector, fn func(runtime.View)) bool {
	return p.child != nil && p.child.CallOnAny(sel, fn)
}

func (p *Panel) FocusView(sel runtime.Selector) bool {
	return p.child != nil && p.child.FocusView(sel)
}

var _ runtime.View = (*Panel)(nil)
