package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

type menubarState int

const (
	menubarInactive menubarState = iota
	menubarSelected
	menubarSubmenu
)

// Menubar is the single-row menu drawn over the top of the screen.
//
// When Autohide is set the bar is only shown while it holds focus;
// otherwise it is pinned and the screen below starts on the second row.
type Menubar struct {
	Autohide bool

	tree  *MenuTree
	state menubarState
	focus int
}

// NewMenubar creates an empty, autohiding menu bar.
func NewMenubar() *Menubar {
	return &Menubar{Autohide: true, tree: NewMenuTree()}
}

// AddSubtree appends a menu opening tree.
func (m *Menubar) AddSubtree(label string, tree *MenuTree) *Menubar {
	m.tree.Subtree(label, tree)
	return m
}

// AddLeaf appends a title that runs cb directly.
func (m *Menubar) AddLeaf(label string, cb Callback) *Menubar {
	m.tree.Leaf(label, cb)
	return m
}

// AddDelimiter appends a separator.
func (m *Menubar) AddDelimiter() *Menubar {
	m.tree.Delimiter()
	return m
}

// Clear removes every entry and releases focus.
func (m *Menubar) Clear() {
	m.tree.Clear()
	m.focus = 0
	m.state = menubarInactive
}

// Len returns the number of entries.
func (m *Menubar) Len() int {
	return m.tree.Len()
}

// Tree returns the underlying entries.
func (m *Menubar) Tree() *MenuTree {
	return m.tree
}

// Visible reports whether the bar should be drawn.
func (m *Menubar) Visible() bool {
	return !m.Autohide || m.state != menubarInactive
}

// ReceiveEvents reports whether the bar currently captures input.
func (m *Menubar) ReceiveEvents() bool {
	return m.state == menubarSelected
}

// HasSubmenu reports whether a menu popup is open.
func (m *Menubar) HasSubmenu() bool {
	return m.state == menubarSubmenu
}

// SelectedIndex returns the focused entry.
func (m *Menubar) SelectedIndex() int {
	return m.focus
}

// TakeFocus makes the bar capture input.
func (m *Menubar) TakeFocus() bool {
	m.state = menubarSelected
	if m.focus >= m.tree.Len() {
		m.focus = 0
	}
	m.skipDelimiter(1)
	return true
}

// Release gives focus back to the screen.
func (m *Menubar) Release() {
	m.state = menubarInactive
}

type titleSpan struct {
	x, width int
}

// spans returns where each entry is drawn, including one cell of padding
// on each side of a title.
func (m *Menubar) spans() []titleSpan {
	spans := make([]titleSpan, len(m.tree.Items))
	x := 1
	for i, item := range m.tree.Items {
		w := 1
		if !item.IsDelimiter() {
			w = runewidth.StringWidth(item.Label) + 2
		}
		spans[i] = titleSpan{x: x, width: w}
		x += w
	}
	return spans
}

// Draw paints the bar on the first row of p.
func (m *Menubar) Draw(p *Printer) {
	p.WithColor(theme.StylePrimary, func(p *Printer) {
		p.PrintHLine(vec.Zero(), p.Size().X, " ")
		for i, span := range m.spans() {
			item := m.tree.Items[i]
			if item.IsDelimiter() {
				p.Print(vec.New(span.x, 0), "|")
				continue
			}
			selected := m.state != menubarInactive && i == m.focus
			p.WithSelection(selected, func(p *Printer) {
				p.Print(vec.New(span.x, 0), " "+item.Label+" ")
			})
		}
	})
}

// OnEvent handles input while the bar is focused. Mouse positions are
// screen coordinates.
func (m *Menubar) OnEvent(ev terminal.Event) EventResult {
	switch e := ev.(type) {
	case terminal.KeyEvent:
		if e.Shift || e.Ctrl || e.Alt {
			break
		}
		switch e.Key {
		case terminal.KeyEscape:
			m.Release()
			return Consumed()
		case terminal.KeyLeft:
			m.move(-1)
			return Consumed()
		case terminal.KeyRight:
			m.move(1)
			return Consumed()
		case terminal.KeyDown, terminal.KeyEnter:
			return m.openFocused()
		}

	case terminal.MouseEvent:
		if e.Kind != terminal.MousePress {
			if e.Position.Y == 0 {
				return Consumed()
			}
			break
		}
		if e.Position.Y != 0 {
			m.Release()
			return Consumed()
		}
		if i := m.itemAt(e.Position.X); i >= 0 {
			m.focus = i
			return m.openFocused()
		}
		return Consumed()
	}
	return Ignored()
}

func (m *Menubar) itemAt(x int) int {
	for i, span := range m.spans() {
		if x >= span.x && x < span.x+span.width && !m.tree.Items[i].IsDelimiter() {
			return i
		}
	}
	return -1
}

func (m *Menubar) move(delta int) {
	n := m.tree.Len()
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.skipDelimiter(delta)
}

func (m *Menubar) skipDelimiter(delta int) {
	n := m.tree.Len()
	for tries := 0; tries < n && m.tree.Items[m.focus].IsDelimiter(); tries++ {
		m.focus = ((m.focus+delta)%n + n) % n
	}
}

// openFocused activates the focused entry: a leaf runs its callback and
// releases the bar, a subtree opens a popup on the active screen.
func (m *Menubar) openFocused() EventResult {
	if m.focus < 0 || m.focus >= m.tree.Len() {
		return Consumed()
	}
	item := m.tree.Items[m.focus]
	switch {
	case item.IsDelimiter():
		return Consumed()
	case item.IsLeaf():
		m.Release()
		if item.Callback == nil {
			return Consumed()
		}
		return ConsumedWith(item.Callback)
	}

	m.state = menubarSubmenu
	x := m.spans()[m.focus].x
	popup := NewMenuPopup(item.Subtree)
	popup.onDismiss = func(*App) { m.state = menubarSelected }
	popup.onClose = func(*App) { m.Release() }
	popup.onNeighbor = func(app *App, delta int) {
		m.state = menubarSelected
		m.move(delta)
		if m.tree.Items[m.focus].IsSubtree() {
			m.openFocused().Process(app)
		}
	}
	return ConsumedWith(func(app *App) {
		root := app.Root()
		root.AddLayerAt(AbsoluteAt(x, 1-root.MenubarOffset()), popup)
	})
}
