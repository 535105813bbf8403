package runtime

import (
	"sync"

	"github.com/odvcencio/marquee/pkg/ui/backend"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// fakeBackend replays a scripted list of events. Once the script runs out
// it returns ExitEvent, or blocks until Interrupt when block is set.
type fakeBackend struct {
	mu     sync.Mutex
	size   vec.Vec2
	script []terminal.Event
	block  bool
	wake   chan struct{}

	initErr    error
	inits      int
	finishes   int
	clears     []theme.Color
	refreshes  int
	polls      int
	fps        int
	pair       theme.ColorPair
	effects    theme.Effect
	prints     []printed
	interrupts int
}

type printed struct {
	pos  vec.Vec2
	text string
	pair theme.ColorPair
}

func newFakeBackend(w, h int, script ...terminal.Event) *fakeBackend {
	return &fakeBackend{
		size:   vec.New(w, h),
		script: script,
		wake:   make(chan struct{}, 16),
	}
}

func (f *fakeBackend) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	return f.initErr
}

func (f *fakeBackend) Finish() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finishes++
}

func (f *fakeBackend) Refresh() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
}

func (f *fakeBackend) HasColors() bool { return true }

func (f *fakeBackend) ScreenSize() vec.Vec2 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size
}

func (f *fakeBackend) resize(w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.size = vec.New(w, h)
}

func (f *fakeBackend) PollEvent() terminal.Event {
	f.mu.Lock()
	f.polls++
	if len(f.script) > 0 {
		ev := f.script[0]
		f.script = f.script[1:]
		f.mu.Unlock()
		return ev
	}
	block := f.block
	f.mu.Unlock()

	if !block {
		return terminal.ExitEvent{}
	}
	<-f.wake
	return terminal.RefreshEvent{}
}

func (f *fakeBackend) Interrupt() {
	f.mu.Lock()
	f.interrupts++
	f.mu.Unlock()
	select {
	case f.wake <- struct{}{}:
	default:
	}
}

func (f *fakeBackend) PrintAt(pos vec.Vec2, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prints = append(f.prints, printed{pos: pos, text: text, pair: f.pair})
}

func (f *fakeBackend) Clear(color theme.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears = append(f.clears, color)
	f.prints = nil
}

func (f *fakeBackend) SetRefreshRate(fps int) { f.fps = fps }

func (f *fakeBackend) SetColor(pair theme.ColorPair) theme.ColorPair {
	prev := f.pair
	f.pair = pair
	return prev
}

func (f *fakeBackend) SetEffect(e theme.Effect)   { f.effects |= e }
func (f *fakeBackend) UnsetEffect(e theme.Effect) { f.effects &^= e }

func (f *fakeBackend) clearCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clears)
}

var (
	_ backend.Backend     = (*fakeBackend)(nil)
	_ backend.Interrupter = (*fakeBackend)(nil)
)

// probeView records what the runtime does to it.
type probeView struct {
	BaseView
	id      string
	req     vec.Vec2
	size    vec.Vec2
	layouts int
	draws   int
	focused int
	events  []terminal.Event
	onEvent func(ev terminal.Event) EventResult
	onDraw  func(p *Printer)
}

func (v *probeView) Draw(p *Printer) {
	v.draws++
	if v.onDraw != nil {
		v.onDraw(p)
	}
}

func (v *probeView) Layout(size vec.Vec2) {
	v.layouts++
	v.size = size
}

func (v *probeView) RequiredSize(c vec.Vec2) vec.Vec2 {
	if v.req.IsZero() {
		return c
	}
	return v.req
}

func (v *probeView) OnEvent(ev terminal.Event) EventResult {
	v.events = append(v.events, ev)
	if v.onEvent != nil {
		return v.onEvent(ev)
	}
	return Ignored()
}

func (v *probeView) TakeFocus(Direction) bool {
	v.focused++
	return true
}

func (v *probeView) CallOnAny(sel Selector, fn func(View)) bool {
	if id, ok := sel.(ID); ok && v.id != "" && string(id) == v.id {
		fn(v)
		return true
	}
	return false
}

func (v *probeView) FocusView(sel Selector) bool {
	if id, ok := sel.(ID); ok && v.id != "" && string(id) == v.id {
		v.focused++
		return true
	}
	return false
}
