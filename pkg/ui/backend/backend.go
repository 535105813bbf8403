// Package backend defines the terminal capability contract the runtime draws
// through. Implementations own the terminal: tcell for real terminals and a
// simulation screen for tests.
package backend

import (
	"github.com/odvcencio/marquee/pkg/errors"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// Refresh rate bounds, in frames per second. Zero disables idle refresh.
const (
	MinRefreshRate = 0
	MaxRefreshRate = 1000
)

// Backend is the terminal abstraction layer.
type Backend interface {
	// Init acquires the terminal (alt screen, raw mode, mouse).
	Init() error

	// Finish restores the terminal. Called exactly once per session.
	Finish()

	// Refresh flushes pending output to the terminal.
	Refresh()

	// HasColors reports whether the terminal supports colors.
	HasColors() bool

	// ScreenSize returns the terminal dimensions in cells.
	ScreenSize() vec.Vec2

	// PollEvent blocks until an event is available. With a nonzero refresh
	// rate it returns terminal.RefreshEvent when no input arrived in time.
	PollEvent() terminal.Event

	// PrintAt writes text starting at pos using the current color and effects.
	PrintAt(pos vec.Vec2, text string)

	// Clear fills the screen with the given background color.
	Clear(color theme.Color)

	// SetRefreshRate sets the idle refresh rate in frames per second.
	SetRefreshRate(fps int)

	// SetColor sets the current color pair and returns the previous one.
	SetColor(pair theme.ColorPair) theme.ColorPair

	// SetEffect enables a text effect.
	SetEffect(effect theme.Effect)

	// UnsetEffect disables a text effect.
	UnsetEffect(effect theme.Effect)
}

// Interrupter is implemented by backends that can wake a blocked PollEvent.
// The interrupted poll returns terminal.RefreshEvent.
type Interrupter interface {
	Interrupt()
}

// ValidateRefreshRate reports whether fps is within the accepted range.
func ValidateRefreshRate(fps int) error {
	if fps < MinRefreshRate || fps > MaxRefreshRate {
		return errors.Newf(errors.ErrCodeConfigInvalid,
			"refresh rate %d out of range %d..%d", fps, MinRefreshRate, MaxRefreshRate)
	}
	return nil
}
