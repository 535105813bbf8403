// Package terminal provides the input event model consumed by the runtime.
//
// Events form a closed set of comparable value types, so any Event can be used
// as a map key. Equality is structural: two mouse events at different
// positions are different events.
package terminal

import (
	"fmt"
	"strings"

	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// Event represents a terminal input event.
type Event interface {
	eventMarker()
	String() string
}

// CharEvent is a printable character, optionally with Ctrl or Alt held.
type CharEvent struct {
	Rune rune
	Ctrl bool
	Alt  bool
}

func (CharEvent) eventMarker() {}

func (e CharEvent) String() string {
	return modifierPrefix(false, e.Ctrl, e.Alt) + fmt.Sprintf("Char(%q)", e.Rune)
}

// KeyEvent is a named, non-printable key.
type KeyEvent struct {
	Key   Key
	Shift bool
	Ctrl  bool
	Alt   bool
}

func (KeyEvent) eventMarker() {}

func (e KeyEvent) String() string {
	return modifierPrefix(e.Shift, e.Ctrl, e.Alt) + e.Key.String()
}

// MouseEvent is a mouse action at a cell position.
type MouseEvent struct {
	Kind     MouseKind
	Button   MouseButton
	Position vec.Vec2
	Shift    bool
	Ctrl     bool
	Alt      bool
}

func (MouseEvent) eventMarker() {}

func (e MouseEvent) String() string {
	return modifierPrefix(e.Shift, e.Ctrl, e.Alt) +
		fmt.Sprintf("Mouse(%s %s at %s)", e.Kind, e.Button, e.Position)
}

// ResizeEvent indicates the terminal size changed. The new size is read from
// the backend.
type ResizeEvent struct{}

func (ResizeEvent) eventMarker() {}

func (ResizeEvent) String() string { return "WindowResize" }

// RefreshEvent is the idle marker a backend returns when a refresh rate is
// configured and no input arrived in time.
type RefreshEvent struct{}

func (RefreshEvent) eventMarker() {}

func (RefreshEvent) String() string { return "Refresh" }

// ExitEvent asks the loop to stop.
type ExitEvent struct{}

func (ExitEvent) eventMarker() {}

func (ExitEvent) String() string { return "Exit" }

// MouseKind identifies what happened with the mouse.
type MouseKind int

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseHold
	MouseWheelUp
	MouseWheelDown
)

// GrabsFocus reports whether this kind of mouse event should move focus to
// whatever lies under the pointer.
func (k MouseKind) GrabsFocus() bool {
	return k == MousePress
}

func (k MouseKind) String() string {
	switch k {
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	case MouseHold:
		return "hold"
	case MouseWheelUp:
		return "wheel-up"
	case MouseWheelDown:
		return "wheel-down"
	}
	return "unknown"
}

// MouseButton identifies which mouse button was involved.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseMiddle:
		return "middle"
	case MouseRight:
		return "right"
	}
	return "none"
}

// Key represents special keys.
type Key int

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyEscape:    "Esc",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyDelete:    "Del",
	KeyInsert:    "Ins",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Char returns the event for a plain character.
func Char(r rune) CharEvent {
	return CharEvent{Rune: r}
}

// CtrlChar returns the event for Ctrl+r.
func CtrlChar(r rune) CharEvent {
	return CharEvent{Rune: r, Ctrl: true}
}

// AltChar returns the event for Alt+r.
func AltChar(r rune) CharEvent {
	return CharEvent{Rune: r, Alt: true}
}

// KeyPress returns the event for an unmodified named key.
func KeyPress(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// ShiftKey returns the event for Shift+k.
func ShiftKey(k Key) KeyEvent {
	return KeyEvent{Key: k, Shift: true}
}

// CtrlKey returns the event for Ctrl+k.
func CtrlKey(k Key) KeyEvent {
	return KeyEvent{Key: k, Ctrl: true}
}

// AltKey returns the event for Alt+k.
func AltKey(k Key) KeyEvent {
	return KeyEvent{Key: k, Alt: true}
}

// Relativize converts an event into a child's coordinate space: a mouse
// position is shifted by -offset, every other event is returned unchanged.
func Relativize(ev Event, offset vec.Vec2) Event {
	if m, ok := ev.(MouseEvent); ok {
		m.Position = m.Position.Sub(offset)
		return m
	}
	return ev
}

// MousePosition returns the position carried by a mouse event.
func MousePosition(ev Event) (vec.Vec2, bool) {
	if m, ok := ev.(MouseEvent); ok {
		return m.Position, true
	}
	return vec.Vec2{}, false
}

// Kind returns a short, bounded label for the event's variant.
func Kind(ev Event) string {
	switch ev.(type) {
	case CharEvent:
		return "char"
	case KeyEvent:
		return "key"
	case MouseEvent:
		return "mouse"
	case ResizeEvent:
		return "resize"
	case RefreshEvent:
		return "refresh"
	case ExitEvent:
		return "exit"
	case nil:
		return "none"
	}
	return "unknown"
}

func modifierPrefix(shift, ctrl, alt bool) string {
	var b strings.Builder
	if ctrl {
		b.WriteString("Ctrl+")
	}
	if alt {
		b.WriteString("Alt+")
	}
	if shift {
		b.WriteString("Shift+")
	}
	return b.String()
}
