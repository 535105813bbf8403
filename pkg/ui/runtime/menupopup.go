package runtime

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// MenuPopup is a boxed vertical menu shown as a layer. Nested subtrees
// open further popups to the right.
type MenuPopup struct {
	tree  *MenuTree
	focus int
	depth int
	size  vec.Vec2

	onDismiss  Callback
	onClose    Callback
	onNeighbor func(app *App, delta int)
}

// NewMenuPopup creates a popup listing tree.
func NewMenuPopup(tree *MenuTree) *MenuPopup {
	if tree == nil {
		tree = NewMenuTree()
	}
	p := &MenuPopup{tree: tree, depth: 1}
	p.skipDelimiter(1)
	return p
}

// SelectedIndex returns the focused entry.
func (p *MenuPopup) SelectedIndex() int {
	return p.focus
}

// Draw paints the box and entries.
func (p *MenuPopup) Draw(pr *Printer) {
	size := pr.Size()
	pr.PrintBox(vec.Zero(), size, false)

	inner := size.X - 2
	for i, item := range p.tree.Items {
		y := i + 1
		if item.IsDelimiter() {
			pr.Print(vec.New(0, y), "├")
			pr.PrintHLine(vec.New(1, y), inner, "─")
			pr.Print(vec.New(size.X-1, y), "┤")
			continue
		}
		label := " " + item.Label
		pad := inner - runewidth.StringWidth(label)
		if item.IsSubtree() {
			pad--
		}
		if pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		if item.IsSubtree() {
			label += ">"
		}
		pr.WithSelection(i == p.focus, func(pr *Printer) {
			pr.Print(vec.New(1, y), label)
		})
	}
}

// Layout stores the assigned size.
func (p *MenuPopup) Layout(size vec.Vec2) {
	p.size = size
}

// NeedsRelayout always reports true.
func (p *MenuPopup) NeedsRelayout() bool { return true }

// RequiredSize fits the widest label plus borders and padding.
func (p *MenuPopup) RequiredSize(vec.Vec2) vec.Vec2 {
	return vec.New(p.tree.width()+5, p.tree.Len()+2)
}

// TakeFocus always accepts focus.
func (p *MenuPopup) TakeFocus(Direction) bool { return true }

// CallOnAny matches nothing.
func (p *MenuPopup) CallOnAny(Selector, func(View)) bool { return false }

// FocusView matches nothing.
func (p *MenuPopup) FocusView(Selector) bool { return false }

// OnEvent navigates and activates entries.
func (p *MenuPopup) OnEvent(ev terminal.Event) EventResult {
	switch e := ev.(type) {
	case terminal.KeyEvent:
		switch e.Key {
		case terminal.KeyUp:
			p.move(-1)
			return Consumed()
		case terminal.KeyDown:
			p.move(1)
			return Consumed()
		case terminal.KeyEnter:
			return p.activate(p.focus)
		case terminal.KeyEscape:
			return ConsumedWith(p.dismiss)
		case terminal.KeyLeft:
			if p.depth > 1 || p.onNeighbor == nil {
				return ConsumedWith(p.dismiss)
			}
			return ConsumedWith(func(app *App) {
				app.PopLayer()
				p.onNeighbor(app, -1)
			})
		case terminal.KeyRight:
			if p.focused().IsSubtree() {
				return p.activate(p.focus)
			}
			if p.onNeighbor != nil {
				return ConsumedWith(func(app *App) {
					for i := 0; i < p.depth; i++ {
						app.PopLayer()
					}
					p.onNeighbor(app, 1)
				})
			}
			return Consumed()
		}

	case terminal.MouseEvent:
		pos := e.Position
		inside := pos.X >= 0 && pos.Y >= 0 && pos.X < p.size.X && pos.Y < p.size.Y
		if !inside {
			if e.Kind == terminal.MousePress {
				return ConsumedWith(p.closeAll)
			}
			return Ignored()
		}
		i := pos.Y - 1
		if i < 0 || i >= p.tree.Len() || p.tree.Items[i].IsDelimiter() {
			return Consumed()
		}
		p.focus = i
		if e.Kind == terminal.MouseRelease {
			return p.activate(i)
		}
		return Consumed()
	}
	return Ignored()
}

func (p *MenuPopup) focused() MenuItem {
	if p.focus < 0 || p.focus >= p.tree.Len() {
		return MenuItem{delimiter: true}
	}
	return p.tree.Items[p.focus]
}

func (p *MenuPopup) move(delta int) {
	n := p.tree.Len()
	if n == 0 {
		return
	}
	p.focus = ((p.focus+delta)%n + n) % n
	p.skipDelimiter(delta)
}

func (p *MenuPopup) skipDelimiter(delta int) {
	n := p.tree.Len()
	for tries := 0; tries < n && p.tree.Items[p.focus].IsDelimiter(); tries++ {
		p.focus = ((p.focus+delta)%n + n) % n
	}
}

func (p *MenuPopup) activate(i int) EventResult {
	if i < 0 || i >= p.tree.Len() {
		return Consumed()
	}
	item := p.tree.Items[i]
	switch {
	case item.IsDelimiter():
		return Consumed()
	case item.IsLeaf():
		return ConsumedWith(func(app *App) {
			p.closeAll(app)
			if item.Callback != nil {
				item.Callback(app)
			}
		})
	}

	child := NewMenuPopup(item.Subtree)
	child.depth = p.depth + 1
	child.onClose = p.onClose
	child.onNeighbor = p.onNeighbor
	pos := Position{X: Parent(p.size.X), Y: Parent(i)}
	return ConsumedWith(func(app *App) {
		app.Root().AddLayerAt(pos, child)
	})
}

// dismiss closes this popup only.
func (p *MenuPopup) dismiss(app *App) {
	app.PopLayer()
	if p.depth == 1 && p.onDismiss != nil {
		p.onDismiss(app)
	}
}

// closeAll closes this popup and every parent popup.
func (p *MenuPopup) closeAll(app *App) {
	for i := 0; i < p.depth; i++ {
		app.PopLayer()
	}
	if p.onClose != nil {
		p.onClose(app)
	}
}

var _ View = (*MenuPopup)(nil)
