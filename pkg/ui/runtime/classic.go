package runtime

import (
	"fmt"

	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// ScreenID identifies a screen. IDs are stable: screens are never removed.
type ScreenID int

// Classic is the root view: an ordered set of screens with exactly one
// active, plus a menu bar drawn over the top row.
type Classic struct {
	screens []*Screen
	active  ScreenID
	menubar *Menubar
}

// NewClassic creates a root with one empty screen and an autohiding menu bar.
func NewClassic() *Classic {
	return &Classic{
		screens: []*Screen{NewScreen()},
		menubar: NewMenubar(),
	}
}

// AddScreen appends a screen and returns its id. The active screen is
// unchanged.
func (c *Classic) AddScreen() ScreenID {
	c.screens = append(c.screens, NewScreen())
	return ScreenID(len(c.screens) - 1)
}

// AddActiveScreen appends a screen and makes it active.
func (c *Classic) AddActiveScreen() ScreenID {
	id := c.AddScreen()
	c.SetScreen(id)
	return id
}

// SetScreen makes screen id active. It panics when id does not exist.
func (c *Classic) SetScreen(id ScreenID) {
	if id < 0 || int(id) >= len(c.screens) {
		panic(fmt.Sprintf("runtime: set_screen: invalid screen id %d (have %d screens)", id, len(c.screens)))
	}
	if id != c.active {
		c.closeMenu()
	}
	c.active = id
}

// closeMenu pops the menu popups left on the active screen and releases
// the bar, so an open submenu does not outlive a screen switch.
func (c *Classic) closeMenu() {
	if !c.menubar.HasSubmenu() {
		return
	}
	s := c.Screen()
	for s.LayerCount() > 0 {
		if _, ok := s.Layer(s.LayerCount() - 1).(*MenuPopup); !ok {
			break
		}
		s.PopLayer()
	}
	c.menubar.Release()
}

// ActiveScreen returns the id of the active screen.
func (c *Classic) ActiveScreen() ScreenID {
	return c.active
}

// Screen returns the active screen.
func (c *Classic) Screen() *Screen {
	return c.screens[c.active]
}

// ScreenAt returns screen id, or nil when it does not exist.
func (c *Classic) ScreenAt(id ScreenID) *Screen {
	if id < 0 || int(id) >= len(c.screens) {
		return nil
	}
	return c.screens[id]
}

// ScreenCount returns the number of screens.
func (c *Classic) ScreenCount() int {
	return len(c.screens)
}

// AddLayer adds a centered layer to the active screen.
func (c *Classic) AddLayer(v View) {
	c.Screen().AddLayer(v)
}

// AddLayerAt adds a positioned layer to the active screen.
func (c *Classic) AddLayerAt(pos Position, v View) {
	c.Screen().AddLayerAt(pos, v)
}

// AddFullscreenLayer adds a full-size layer to the active screen.
func (c *Classic) AddFullscreenLayer(v View) {
	c.Screen().AddFullscreenLayer(v)
}

// PopLayer removes the top layer of the active screen.
func (c *Classic) PopLayer() View {
	return c.Screen().PopLayer()
}

// RepositionLayer moves a layer of the active screen.
func (c *Classic) RepositionLayer(layer int, pos Position) {
	c.Screen().RepositionLayer(layer, pos)
}

// Menubar returns the menu bar.
func (c *Classic) Menubar() *Menubar {
	return c.menubar
}

// SelectMenubar gives focus to the menu bar.
func (c *Classic) SelectMenubar() {
	c.menubar.TakeFocus()
}

// SetAutohideMenu sets whether the menu bar hides when unfocused.
func (c *Classic) SetAutohideMenu(autohide bool) {
	c.menubar.Autohide = autohide
}

// MenubarOffset returns the rows reserved for the menu bar.
func (c *Classic) MenubarOffset() int {
	if c.menubar.Autohide {
		return 0
	}
	return 1
}

// UsableSize returns the space left for screens out of full.
func (c *Classic) UsableSize(full vec.Vec2) vec.Vec2 {
	return full.SaturatingSub(vec.New(0, c.MenubarOffset()))
}

// FocusID focuses the view registered under id on the active screen.
func (c *Classic) FocusID(id string) bool {
	return c.FocusView(ID(id))
}

// FocusView forwards to the active screen.
func (c *Classic) FocusView(sel Selector) bool {
	return c.Screen().FocusView(sel)
}

// CallOnAny forwards to the active screen.
func (c *Classic) CallOnAny(sel Selector, fn func(View)) bool {
	return c.Screen().CallOnAny(sel, fn)
}

// Draw paints the active screen's bottom layer, then the menu bar, then the
// remaining layers, so that popups opened from the menu cover it.
func (c *Classic) Draw(p *Printer) {
	selected := c.menubar.ReceiveEvents()
	sp := p.Offset(vec.New(0, c.MenubarOffset()), !selected)

	screen := c.Screen()
	screen.DrawBG(sp)
	if c.menubar.Visible() {
		c.menubar.Draw(p.Sub(vec.Zero(), vec.New(p.Size().X, 1), selected))
	}
	screen.DrawFG(sp)
}

// Layout lays out the active screen with exactly size. Callers pass
// UsableSize of the terminal.
func (c *Classic) Layout(size vec.Vec2) {
	c.Screen().Layout(size)
}

// NeedsRelayout always reports true.
func (c *Classic) NeedsRelayout() bool { return true }

// RequiredSize takes whatever is available.
func (c *Classic) RequiredSize(constraint vec.Vec2) vec.Vec2 { return constraint }

// TakeFocus always accepts.
func (c *Classic) TakeFocus(Direction) bool { return true }

// OnEvent routes ev to the menu bar when it captures input, otherwise to
// the active screen shifted below the menu bar row.
func (c *Classic) OnEvent(ev terminal.Event) EventResult {
	if c.menubar.ReceiveEvents() {
		return c.menubar.OnEvent(ev)
	}
	return c.Screen().OnEvent(terminal.Relativize(ev, vec.New(0, c.MenubarOffset())))
}

var _ View = (*Classic)(nil)
