package runtime

import (
	"context"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/odvcencio/marquee/pkg/errors"
	"github.com/odvcencio/marquee/pkg/logging"
	"github.com/odvcencio/marquee/pkg/ui/backend"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

//go:generate mockgen -package=runtime -destination=mock_backend_test.go github.com/odvcencio/marquee/pkg/ui/backend Backend

// LoopState tracks the lifecycle of the event loop.
type LoopState int

const (
	StateNotStarted LoopState = iota
	StateRunning
	StateStopped
)

func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return "not-started"
}

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend backend.Backend
	Theme   *theme.Theme

	// FPS is the idle refresh rate, 0..1000. Zero waits for real input.
	FPS int

	// AutohideMenu hides the menu bar while it is unfocused. When false the
	// bar is pinned to the first row.
	AutohideMenu bool

	Logger     *logging.Logger
	Registerer prometheus.Registerer
}

// App owns the backend, the root view and the loop state. Everything except
// Sink().Send must be called from the goroutine running the loop.
type App struct {
	backend backend.Backend
	root    *Classic
	theme   *theme.Theme
	globals map[terminal.Event][]Callback
	sink    *Sink
	logger  *logging.Logger
	metrics *Metrics

	running   bool
	state     LoopState
	lastSizes []vec.Vec2
	needClear bool
	fps       int

	watchers  []*theme.Watcher
	closeOnce sync.Once
	closed    bool
}

// New creates an App over be with default settings.
func New(be backend.Backend) (*App, error) {
	return NewApp(AppConfig{Backend: be, AutohideMenu: true})
}

// NewApp initializes the backend and builds an App. A backend that fails
// to initialize yields a BACKEND_INIT error and no App. An out of range
// FPS panics before the terminal is touched.
func NewApp(cfg AppConfig) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	if cfg.Backend == nil {
		return nil, errors.New(errors.ErrCodeBackendInit, "backend is required")
	}
	if err := backend.ValidateRefreshRate(cfg.FPS); err != nil {
		panic(err.Error())
	}
	if err := cfg.Backend.Init(); err != nil {
		logger.Error("backend init failed", "error", err)
		return nil, errors.Wrap(err, errors.ErrCodeBackendInit, "failed to initialize backend")
	}

	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}

	a := &App{
		backend:   cfg.Backend,
		root:      NewClassic(),
		theme:     th,
		globals:   make(map[terminal.Event][]Callback),
		logger:    logger,
		metrics:   NewMetrics(cfg.Registerer),
		running:   true,
		needClear: true,
	}

	var wake func()
	if in, ok := cfg.Backend.(backend.Interrupter); ok {
		wake = in.Interrupt
	}
	a.sink = newSink(wake)
	if a.metrics != nil {
		a.sink.onSend = a.metrics.depth
	}

	a.root.SetAutohideMenu(cfg.AutohideMenu)
	a.SetFPS(cfg.FPS)
	return a, nil
}

// Backend returns the backend the App draws through.
func (a *App) Backend() backend.Backend { return a.backend }

// Root returns the root view.
func (a *App) Root() *Classic { return a.root }

// Sink returns the queue other goroutines use to reach the loop.
func (a *App) Sink() *Sink { return a.sink }

// Logger returns the App's logger.
func (a *App) Logger() *logging.Logger { return a.logger }

// IsRunning returns true until Quit is called.
func (a *App) IsRunning() bool { return a.running }

// State returns the loop lifecycle state.
func (a *App) State() LoopState { return a.state }

// Quit stops the loop after the current step.
func (a *App) Quit() { a.running = false }

// ScreenSize returns the terminal size.
func (a *App) ScreenSize() vec.Vec2 { return a.backend.ScreenSize() }

// FPS returns the idle refresh rate.
func (a *App) FPS() int { return a.fps }

// SetFPS sets the idle refresh rate. It panics outside 0..1000.
func (a *App) SetFPS(fps int) {
	if err := backend.ValidateRefreshRate(fps); err != nil {
		panic(err.Error())
	}
	a.fps = fps
	a.backend.SetRefreshRate(fps)
}

// Clear fills the terminal with the theme background.
func (a *App) Clear() {
	a.backend.Clear(a.theme.Palette.Get(theme.Background))
	a.metrics.clear()
}

// Theme returns the active theme.
func (a *App) Theme() *theme.Theme { return a.theme }

// SetTheme replaces the theme and clears the screen.
func (a *App) SetTheme(th *theme.Theme) {
	if th == nil {
		return
	}
	a.theme = th
	a.Clear()
}

// LoadThemeFile loads a TOML or YAML theme file. On failure the current
// theme is kept.
func (a *App) LoadThemeFile(path string) error {
	th, err := theme.LoadFile(path)
	if err != nil {
		a.logger.Warn("theme load failed", "path", path, "code", errors.GetCode(err), "error", err)
		return err
	}
	a.SetTheme(th)
	return nil
}

// LoadTheme parses a TOML theme.
func (a *App) LoadTheme(content string) error {
	return a.applyTheme(theme.LoadTOML(content))
}

// LoadThemeYAML parses a YAML theme.
func (a *App) LoadThemeYAML(content string) error {
	return a.applyTheme(theme.LoadYAML(content))
}

func (a *App) applyTheme(th *theme.Theme, err error) error {
	if err != nil {
		a.logger.Warn("theme load failed", "code", errors.GetCode(err), "error", err)
		return err
	}
	a.SetTheme(th)
	return nil
}

// WatchThemeFile reloads path whenever it changes. Reloads go through the
// sink so they run on the loop goroutine. The returned function stops the
// watch.
func (a *App) WatchThemeFile(path string) (stop func() error, err error) {
	w, err := theme.Watch(path, func(p string) {
		_ = a.sink.Send(func(app *App) {
			if app.LoadThemeFile(p) == nil {
				app.logger.Info("theme reloaded", "path", p)
			}
		})
	}, theme.WatchOptions{
		OnError: func(err error) {
			a.logger.Warn("theme watch error", "path", path, "error", err)
		},
	})
	if err != nil {
		return nil, err
	}
	a.watchers = append(a.watchers, w)
	return w.Close, nil
}

// AddGlobalCallback binds cb to ev. Callbacks fire, in registration order,
// when the view tree ignores ev.
func (a *App) AddGlobalCallback(ev terminal.Event, cb Callback) {
	if cb == nil {
		return
	}
	a.globals[ev] = append(a.globals[ev], cb)
}

// ClearGlobalCallbacks removes every callback bound to ev.
func (a *App) ClearGlobalCallbacks(ev terminal.Event) {
	delete(a.globals, ev)
}

// GlobalCallbackCount returns how many callbacks are bound to ev.
func (a *App) GlobalCallbackCount(ev terminal.Event) int {
	return len(a.globals[ev])
}

// CallOnID runs fn on the view registered under id on the active screen.
func (a *App) CallOnID(id string, fn func(View)) bool {
	return a.root.CallOnAny(ID(id), fn)
}

// FocusID focuses the view registered under id on the active screen.
func (a *App) FocusID(id string) bool {
	return a.root.FocusID(id)
}

// Focus focuses the first view matching sel on the active screen.
func (a *App) Focus(sel Selector) bool {
	return a.root.FocusView(sel)
}

// AddScreen adds a screen without activating it.
func (a *App) AddScreen() ScreenID { return a.root.AddScreen() }

// AddActiveScreen adds a screen and activates it.
func (a *App) AddActiveScreen() ScreenID {
	id := a.root.AddScreen()
	a.SetScreen(id)
	return id
}

// SetScreen activates screen id. It panics when id does not exist.
func (a *App) SetScreen(id ScreenID) {
	prev := a.root.ActiveScreen()
	a.root.SetScreen(id)
	if prev != id {
		a.needClear = true
		a.logger.WithScreen(int(id)).Debug("screen switched", "from", int(prev))
	}
}

// ActiveScreen returns the id of the active screen.
func (a *App) ActiveScreen() ScreenID { return a.root.ActiveScreen() }

// Screen returns the active screen.
func (a *App) Screen() *Screen { return a.root.Screen() }

// AddLayer adds a centered layer to the active screen.
func (a *App) AddLayer(v View) { a.root.AddLayer(v) }

// AddLayerAt adds a positioned layer to the active screen.
func (a *App) AddLayerAt(pos Position, v View) { a.root.AddLayerAt(pos, v) }

// AddFullscreenLayer adds a full-size layer to the active screen.
func (a *App) AddFullscreenLayer(v View) { a.root.AddFullscreenLayer(v) }

// PopLayer removes the top layer of the active screen.
func (a *App) PopLayer() View { return a.root.PopLayer() }

// RepositionLayer moves a layer of the active screen.
func (a *App) RepositionLayer(layer int, pos Position) { a.root.RepositionLayer(layer, pos) }

// Menubar returns the menu bar.
func (a *App) Menubar() *Menubar { return a.root.Menubar() }

// SelectMenubar gives focus to the menu bar.
func (a *App) SelectMenubar() { a.root.SelectMenubar() }

// SetAutohideMenu sets whether the menu bar hides when unfocused.
func (a *App) SetAutohideMenu(autohide bool) { a.root.SetAutohideMenu(autohide) }

// Run steps the loop until Quit. Cancelling ctx sends a quit through the
// sink. If a step panics the backend is finished before the panic
// continues. Run may be called again after it returns, but not after
// Close: a closed App returns ErrSinkClosed without touching the backend.
func (a *App) Run(ctx context.Context) error {
	if a.closed {
		return ErrSinkClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}
	a.running = true
	a.state = StateRunning
	a.logger.Info("event loop started", "fps", a.fps)

	stop := context.AfterFunc(ctx, func() {
		_ = a.sink.Send(func(app *App) { app.Quit() })
	})
	defer stop()

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("event loop panic", "panic", r)
			_ = a.Close()
			panic(r)
		}
	}()

	for a.running {
		a.Step()
	}
	a.state = StateStopped
	a.logger.Info("event loop stopped")
	return ctx.Err()
}

// Step runs one tick: drain the sink, layout, draw, refresh, then wait for
// and dispatch one event. A drained callback that quits ends the tick
// before anything is drawn.
func (a *App) Step() {
	a.metrics.tick()

	a.metrics.async(a.sink.drain(a))
	a.metrics.depth(a.sink.Len())
	if !a.running {
		return
	}

	a.layout()
	a.draw()
	a.backend.Refresh()

	ev := a.backend.PollEvent()
	if ev == nil {
		return
	}
	a.metrics.event(ev)

	switch e := ev.(type) {
	case terminal.ExitEvent:
		a.Quit()
	case terminal.ResizeEvent:
		a.needClear = true
	case terminal.MouseEvent:
		mb := a.root.Menubar()
		if e.Kind.GrabsFocus() && !mb.Autohide && !mb.HasSubmenu() && e.Position.Y == 0 {
			a.root.SelectMenubar()
		}
	}

	a.dispatch(ev)
}

func (a *App) layout() {
	a.root.Layout(a.root.UsableSize(a.backend.ScreenSize()))
}

func (a *App) draw() {
	sizes := a.root.Screen().LayerSizes()
	if a.needClear || !slices.Equal(sizes, a.lastSizes) {
		a.Clear()
		a.lastSizes = sizes
		a.needClear = false
	}
	a.root.Draw(NewPrinter(a.backend, a.theme, a.backend.ScreenSize()))
}

// dispatch routes ev: the menu bar when it captures input, otherwise the
// active screen with the global table as fallback.
func (a *App) dispatch(ev terminal.Event) {
	if mb := a.root.Menubar(); mb.ReceiveEvents() {
		a.metrics.outcome(outcomeMenubar)
		mb.OnEvent(ev).Process(a)
		return
	}

	res := a.root.OnEvent(ev)
	if !res.IsConsumed() {
		a.metrics.outcome(outcomeIgnored)
		a.runGlobals(ev)
		return
	}
	a.metrics.outcome(outcomeConsumed)
	res.Process(a)
}

func (a *App) runGlobals(ev terminal.Event) {
	cbs := slices.Clone(a.globals[ev])
	for _, cb := range cbs {
		cb(a)
	}
	a.metrics.globals(len(cbs))
}

// Close stops theme watchers, closes the sink and finishes the backend.
// Only the first call has any effect.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		for _, w := range a.watchers {
			_ = w.Close()
		}
		a.sink.close()
		a.backend.Finish()
		a.running = false
		a.closed = true
		a.state = StateStopped
		a.logger.Debug("backend finished")
	})
	return nil
}
