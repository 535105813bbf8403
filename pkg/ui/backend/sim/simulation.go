// Package sim provides a simulation backend for testing.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/marquee/pkg/ui/backend"
	"github.com/odvcencio/marquee/pkg/ui/backend/tcell"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/theme"
)

// Backend is a testable backend using tcell's simulation screen.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	width  int
	height int
	mu     sync.Mutex
}

// New creates a new simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
		width:   width,
		height:  height,
	}
}

// Init initializes the simulation screen at the requested size.
func (s *Backend) Init() error {
	if err := s.Backend.Init(); err != nil {
		return err
	}
	s.mu.Lock()
	s.screen.SetSize(s.width, s.height)
	s.mu.Unlock()
	return nil
}

// Resize changes the simulation screen size without notifying the app.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
	s.screen.SetSize(width, height)
}

// InjectResize resizes the screen and queues a resize event.
func (s *Backend) InjectResize(width, height int) {
	s.Resize(width, height)
	_ = s.screen.PostEvent(tcellv2.NewEventResize(width, height))
}

// InjectRune injects a regular character keypress.
func (s *Backend) InjectRune(r rune) {
	s.screen.InjectKey(tcellv2.KeyRune, r, tcellv2.ModNone)
}

// InjectString injects a string as a sequence of key events.
func (s *Backend) InjectString(str string) {
	for _, r := range str {
		s.InjectRune(r)
	}
}

// InjectKey injects a named key.
func (s *Backend) InjectKey(key terminal.Key) {
	if k, ok := reverseKeys[key]; ok {
		s.screen.InjectKey(k, 0, tcellv2.ModNone)
	}
}

// InjectClick injects a left press followed by a release at (x, y).
func (s *Backend) InjectClick(x, y int) {
	s.screen.InjectMouse(x, y, tcellv2.Button1, tcellv2.ModNone)
	s.screen.InjectMouse(x, y, tcellv2.ButtonNone, tcellv2.ModNone)
}

var reverseKeys = map[terminal.Key]tcellv2.Key{
	terminal.KeyEnter:     tcellv2.KeyEnter,
	terminal.KeyBackspace: tcellv2.KeyBackspace2,
	terminal.KeyTab:       tcellv2.KeyTab,
	terminal.KeyEscape:    tcellv2.KeyEscape,
	terminal.KeyUp:        tcellv2.KeyUp,
	terminal.KeyDown:      tcellv2.KeyDown,
	terminal.KeyLeft:      tcellv2.KeyLeft,
	terminal.KeyRight:     tcellv2.KeyRight,
	terminal.KeyHome:      tcellv2.KeyHome,
	terminal.KeyEnd:       tcellv2.KeyEnd,
	terminal.KeyPageUp:    tcellv2.KeyPgUp,
	terminal.KeyPageDown:  tcellv2.KeyPgDn,
	terminal.KeyDelete:    tcellv2.KeyDelete,
	terminal.KeyInsert:    tcellv2.KeyInsert,
	terminal.KeyF1:        tcellv2.KeyF1,
	terminal.KeyF10:       tcellv2.KeyF10,
}

// Capture captures the current screen content as a string.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	return s.captureLocked(0, 0, w, h)
}

// CaptureRegion captures a rectangular region of the screen.
func (s *Backend) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captureLocked(x, y, w, h)
}

func (s *Backend) captureLocked(x, y, w, h int) string {
	lines := make([]string, 0, h)
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, comb, _, width := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
			if width > 1 {
				col += width - 1
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CaptureCell returns the content and style of a single cell.
func (s *Backend) CaptureCell(x, y int) (rune, backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, tcStyle, _ := s.screen.GetContent(x, y)
	return m, convertTcellStyle(tcStyle)
}

// FindText searches for text on the screen and returns its position.
func (s *Backend) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return len([]rune(line[:col])), row
		}
	}
	return -1, -1
}

// ContainsText returns true if the text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, y := s.FindText(text)
	return x >= 0 && y >= 0
}

// convertTcellStyle converts tcellv2.Style to backend.Style.
func convertTcellStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().WithPair(theme.ColorPair{
		Front: convertTcellColor(fg),
		Back:  convertTcellColor(bg),
	})

	flags := []struct {
		attr   tcellv2.AttrMask
		effect theme.Effect
	}{
		{tcellv2.AttrBold, theme.EffectBold},
		{tcellv2.AttrItalic, theme.EffectItalic},
		{tcellv2.AttrUnderline, theme.EffectUnderline},
		{tcellv2.AttrDim, theme.EffectDim},
		{tcellv2.AttrBlink, theme.EffectBlink},
		{tcellv2.AttrReverse, theme.EffectReverse},
		{tcellv2.AttrStrikeThrough, theme.EffectStrikethrough},
	}
	for _, f := range flags {
		if attrs&f.attr != 0 {
			style = style.With(f.effect)
		}
	}
	return style
}

// convertTcellColor converts tcellv2.Color to theme.Color.
func convertTcellColor(tc tcellv2.Color) theme.Color {
	if tc == tcellv2.ColorDefault {
		return theme.ColorDefault
	}
	if tc&tcellv2.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return theme.RGB(uint8(r), uint8(g), uint8(b))
	}
	return theme.Color(tc & 0xFF)
}

// Ensure Backend implements backend.Backend
var (
	_ backend.Backend     = (*Backend)(nil)
	_ backend.Interrupter = (*Backend)(nil)
)
