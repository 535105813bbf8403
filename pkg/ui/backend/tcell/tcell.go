// Package tcell provides a Backend implementation using tcell.
package tcell

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/odvcencio/marquee/pkg/errors"
	"github.com/odvcencio/marquee/pkg/ui/backend"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

const eventBuffer = 64

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen  tcell.Screen
	profile termenv.Profile

	style backend.Style
	fps   atomic.Int32

	events   chan terminal.Event
	quit     chan struct{}
	readDone chan struct{}
	stopOnce sync.Once
}

// New creates a tcell backend on the controlling terminal.
// It refuses to start when stdin is not a terminal.
func New() (*Backend, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New(errors.ErrCodeBackendInit, "stdin is not a terminal")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeBackendInit, "failed to create screen")
	}
	b := NewWithScreen(screen)
	b.profile = termenv.ColorProfile()
	return b, nil
}

// NewWithScreen creates a backend with an existing tcell screen (for testing).
// True colors are passed through unchanged.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{
		screen:  screen,
		profile: termenv.TrueColor,
		style:   backend.DefaultStyle(),
	}
}

// SetColorProfile overrides the profile true colors are degraded to.
func (b *Backend) SetColorProfile(p termenv.Profile) {
	b.profile = p
}

// Init initializes the screen and starts the input reader.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return errors.Wrap(err, errors.ErrCodeBackendInit, "failed to initialize screen")
	}
	b.screen.EnableMouse()
	b.screen.HideCursor()

	b.events = make(chan terminal.Event, eventBuffer)
	b.quit = make(chan struct{})
	b.readDone = make(chan struct{})
	go b.readEvents()
	return nil
}

// Finish restores the terminal and stops the input reader.
func (b *Backend) Finish() {
	b.stopOnce.Do(func() {
		if b.quit != nil {
			close(b.quit)
		}
		b.screen.Fini()
		if b.readDone != nil {
			<-b.readDone
		}
	})
}

func (b *Backend) readEvents() {
	defer close(b.readDone)
	var conv converter
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		out := conv.convert(ev)
		if out == nil {
			continue
		}
		select {
		case b.events <- out:
		case <-b.quit:
			return
		}
	}
}

// Refresh shows pending output.
func (b *Backend) Refresh() {
	b.screen.Show()
}

// HasColors reports whether the screen supports colors.
func (b *Backend) HasColors() bool {
	return b.screen.Colors() > 0
}

// ScreenSize returns the terminal dimensions.
func (b *Backend) ScreenSize() vec.Vec2 {
	w, h := b.screen.Size()
	return vec.New(w, h)
}

// PollEvent blocks until input arrives or the refresh interval elapses.
// Returns terminal.ExitEvent once the backend is finished.
func (b *Backend) PollEvent() terminal.Event {
	fps := b.fps.Load()
	if fps <= 0 {
		select {
		case ev := <-b.events:
			return ev
		case <-b.quit:
			return terminal.ExitEvent{}
		}
	}

	timer := time.NewTimer(time.Second / time.Duration(fps))
	defer timer.Stop()
	select {
	case ev := <-b.events:
		return ev
	case <-timer.C:
		return terminal.RefreshEvent{}
	case <-b.quit:
		return terminal.ExitEvent{}
	}
}

// Interrupt wakes a blocked PollEvent with a RefreshEvent.
func (b *Backend) Interrupt() {
	_ = b.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// PrintAt writes text from pos, advancing by each rune's cell width.
func (b *Backend) PrintAt(pos vec.Vec2, text string) {
	st := b.convertStyle(b.style)
	x := pos.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.screen.SetContent(x, pos.Y, r, nil, st)
		x += w
	}
}

// Clear fills the screen with color.
func (b *Backend) Clear(color theme.Color) {
	st := tcell.StyleDefault.Background(b.convertColor(color))
	b.screen.Fill(' ', st)
}

// SetRefreshRate sets the idle refresh rate. Zero disables it.
func (b *Backend) SetRefreshRate(fps int) {
	if fps < 0 {
		fps = 0
	}
	b.fps.Store(int32(fps))
}

// SetColor sets the current pair and returns the previous one.
func (b *Backend) SetColor(pair theme.ColorPair) theme.ColorPair {
	prev := b.style.Pair
	b.style = b.style.WithPair(pair)
	return prev
}

// SetEffect enables an effect for subsequent prints.
func (b *Backend) SetEffect(effect theme.Effect) {
	b.style = b.style.With(effect)
}

// UnsetEffect disables an effect for subsequent prints.
func (b *Backend) UnsetEffect(effect theme.Effect) {
	b.style = b.style.Without(effect)
}

// Style returns the current drawing state.
func (b *Backend) Style() backend.Style {
	return b.style
}

// convertStyle converts backend.Style to tcell.Style.
func (b *Backend) convertStyle(s backend.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(b.convertColor(s.Pair.Front)).
		Background(b.convertColor(s.Pair.Back))

	e := s.Effect
	if e.Has(theme.EffectBold) {
		style = style.Bold(true)
	}
	if e.Has(theme.EffectItalic) {
		style = style.Italic(true)
	}
	if e.Has(theme.EffectUnderline) {
		style = style.Underline(true)
	}
	if e.Has(theme.EffectDim) {
		style = style.Dim(true)
	}
	if e.Has(theme.EffectBlink) {
		style = style.Blink(true)
	}
	if e.Has(theme.EffectReverse) {
		style = style.Reverse(true)
	}
	if e.Has(theme.EffectStrikethrough) {
		style = style.StrikeThrough(true)
	}
	return style
}

// convertColor converts theme.Color to tcell.Color, degrading true colors
// to the terminal's profile.
func (b *Backend) convertColor(c theme.Color) tcell.Color {
	c = degrade(b.profile, c)
	if c == theme.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, bl := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
	}
	return tcell.PaletteColor(int(c))
}

func degrade(p termenv.Profile, c theme.Color) theme.Color {
	if !c.IsRGB() || p == termenv.TrueColor {
		return c
	}
	switch v := p.Convert(termenv.RGBColor(c.Hex())).(type) {
	case termenv.ANSI256Color:
		return theme.Indexed(uint8(v))
	case termenv.ANSIColor:
		return theme.Color(v)
	default:
		return theme.ColorDefault
	}
}

// converter turns tcell events into terminal events. Mouse button state is
// tracked so a held button reports MouseHold and a release names its button.
type converter struct {
	pressed terminal.MouseButton
}

func (c *converter) convert(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e)
	case *tcell.EventResize:
		return terminal.ResizeEvent{}
	case *tcell.EventInterrupt:
		return terminal.RefreshEvent{}
	case *tcell.EventMouse:
		return c.convertMouse(e)
	default:
		return nil
	}
}

func convertKeyEvent(e *tcell.EventKey) terminal.Event {
	mods := e.Modifiers()
	shift := mods&tcell.ModShift != 0
	ctrl := mods&tcell.ModCtrl != 0
	alt := mods&tcell.ModAlt != 0

	k := e.Key()
	if k == tcell.KeyRune {
		return terminal.CharEvent{Rune: e.Rune(), Ctrl: ctrl, Alt: alt}
	}
	if k == tcell.KeyBacktab {
		return terminal.KeyEvent{Key: terminal.KeyTab, Shift: true, Ctrl: ctrl, Alt: alt}
	}
	if key := convertKey(k); key != terminal.KeyUnknown {
		return terminal.KeyEvent{Key: key, Shift: shift, Ctrl: ctrl, Alt: alt}
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return terminal.CharEvent{Rune: rune('a' + (k - tcell.KeyCtrlA)), Ctrl: true, Alt: alt}
	}
	return nil
}

// convertKey converts tcell.Key to terminal.Key.
func convertKey(k tcell.Key) terminal.Key {
	switch k {
	case tcell.KeyUp:
		return terminal.KeyUp
	case tcell.KeyDown:
		return terminal.KeyDown
	case tcell.KeyRight:
		return terminal.KeyRight
	case tcell.KeyLeft:
		return terminal.KeyLeft
	case tcell.KeyPgUp:
		return terminal.KeyPageUp
	case tcell.KeyPgDn:
		return terminal.KeyPageDown
	case tcell.KeyHome:
		return terminal.KeyHome
	case tcell.KeyEnd:
		return terminal.KeyEnd
	case tcell.KeyInsert:
		return terminal.KeyInsert
	case tcell.KeyDelete:
		return terminal.KeyDelete
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return terminal.KeyBackspace
	case tcell.KeyTab:
		return terminal.KeyTab
	case tcell.KeyEnter:
		return terminal.KeyEnter
	case tcell.KeyEscape:
		return terminal.KeyEscape
	case tcell.KeyF1:
		return terminal.KeyF1
	case tcell.KeyF2:
		return terminal.KeyF2
	case tcell.KeyF3:
		return terminal.KeyF3
	case tcell.KeyF4:
		return terminal.KeyF4
	case tcell.KeyF5:
		return terminal.KeyF5
	case tcell.KeyF6:
		return terminal.KeyF6
	case tcell.KeyF7:
		return terminal.KeyF7
	case tcell.KeyF8:
		return terminal.KeyF8
	case tcell.KeyF9:
		return terminal.KeyF9
	case tcell.KeyF10:
		return terminal.KeyF10
	case tcell.KeyF11:
		return terminal.KeyF11
	case tcell.KeyF12:
		return terminal.KeyF12
	default:
		return terminal.KeyUnknown
	}
}

func (c *converter) convertMouse(e *tcell.EventMouse) terminal.Event {
	x, y := e.Position()
	mods := e.Modifiers()
	out := terminal.MouseEvent{
		Position: vec.New(x, y),
		Shift:    mods&tcell.ModShift != 0,
		Ctrl:     mods&tcell.ModCtrl != 0,
		Alt:      mods&tcell.ModAlt != 0,
	}

	buttons := e.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		out.Kind = terminal.MouseWheelUp
		return out
	case buttons&tcell.WheelDown != 0:
		out.Kind = terminal.MouseWheelDown
		return out
	}

	button := convertMouseButton(buttons)
	switch {
	case button == terminal.MouseNone && c.pressed == terminal.MouseNone:
		// motion without a button
		return nil
	case button == terminal.MouseNone:
		out.Kind = terminal.MouseRelease
		out.Button = c.pressed
		c.pressed = terminal.MouseNone
	case button == c.pressed:
		out.Kind = terminal.MouseHold
		out.Button = button
	default:
		out.Kind = terminal.MousePress
		out.Button = button
		c.pressed = button
	}
	return out
}

// convertMouseButton converts tcell button mask to terminal.MouseButton.
func convertMouseButton(buttons tcell.ButtonMask) terminal.MouseButton {
	switch {
	case buttons&tcell.Button1 != 0:
		return terminal.MouseLeft
	case buttons&tcell.Button2 != 0:
		return terminal.MouseRight
	case buttons&tcell.Button3 != 0:
		return terminal.MouseMiddle
	default:
		return terminal.MouseNone
	}
}

// Ensure Backend implements backend.Backend
var (
	_ backend.Backend     = (*Backend)(nil)
	_ backend.Interrupter = (*Backend)(nil)
)
