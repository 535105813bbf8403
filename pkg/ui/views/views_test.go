package views

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/marquee/pkg/ui/backend/sim"
	"github.com/odvcencio/marquee/pkg/ui/runtime"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// render lays v out over the whole simulated screen, draws it and returns
// the captured frame.
func render(t *testing.T, v runtime.View, w, h int) (string, *sim.Backend) {
	t.Helper()
	be := sim.New(w, h)
	require.NoError(t, be.Init())
	t.Cleanup(be.Finish)

	size := vec.New(w, h)
	v.Layout(size)
	v.Draw(runtime.NewPrinter(be, theme.Default(), size))
	be.Refresh()
	return be.Capture(), be
}

func line(frame string, y int) string {
	return strings.Split(frame, "\n")[y]
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		want    []string
	}{
		{"empty", "", 10, nil},
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks at spaces", "hello world foo", 11, []string{"hello world", "foo"}},
		{"splits long words", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"keeps blank lines", "a\n\nb", 5, []string{"a", "", "b"}},
		{"collapses spaces", "  spaced   words ", 20, []string{"spaced words"}},
		{"wide runes", "日本語", 3, []string{"日", "本", "語"}},
		{"rune wider than line", "日", 1, []string{"日"}},
		{"no width", "a b c", 0, []string{"a b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.content, tt.width))
		})
	}
}

func TestTextView_SizeAndLayout(t *testing.T) {
	tv := NewTextView("hello world foo")
	assert.Equal(t, vec.New(11, 2), tv.RequiredSize(vec.New(11, 10)))
	assert.True(t, tv.NeedsRelayout())

	tv.Layout(vec.New(5, 3))
	assert.Equal(t, []string{"hello", "world", "foo"}, tv.Lines())
	assert.False(t, tv.NeedsRelayout())

	tv.SetContent("bye")
	assert.Equal(t, "bye", tv.Content())
	assert.True(t, tv.NeedsRelayout())
	tv.Layout(vec.New(5, 3))
	assert.Equal(t, []string{"bye"}, tv.Lines())
}

func TestTextView_Alignment(t *testing.T) {
	tests := []struct {
		align Alignment
		want  string
	}{
		{AlignLeft, "Hi        "},
		{AlignCenter, "    Hi    "},
		{AlignRight, "        Hi"},
	}
	for _, tt := range tests {
		frame, _ := render(t, NewTextView("Hi").WithAlignment(tt.align), 10, 1)
		assert.Equal(t, tt.want, frame)
	}
}

func TestIDView_Lookup(t *testing.T) {
	status := NewTextView("idle")
	ok := NewButton("OK", nil)
	layout := NewVertical().
		Add(WithID("status", status)).
		Add(WithID("ok", ok))

	found, hit := runtime.Find[*TextView](layout, runtime.ID("status"))
	require.True(t, hit)
	assert.Same(t, status, found)

	_, hit = runtime.Find[*Button](layout, runtime.ID("status"))
	assert.False(t, hit, "wrong concrete type")
	_, hit = runtime.Find[*TextView](layout, runtime.ID("missing"))
	assert.False(t, hit)

	assert.False(t, layout.FocusView(runtime.ID("status")), "text does not take focus")
	assert.True(t, layout.FocusView(runtime.ID("ok")))
	assert.Equal(t, 1, layout.FocusIndex())

	named := WithID("status", status)
	assert.Equal(t, "status", named.ID())
	assert.Same(t, status, named.Inner())
}

func TestButton_Activation(t *testing.T) {
	pressed := 0
	b := NewButton("Go", func(*runtime.App) { pressed++ })
	assert.Equal(t, vec.New(4, 1), b.RequiredSize(vec.New(10, 10)))
	b.Layout(vec.New(4, 1))
	require.True(t, b.TakeFocus(runtime.DirFront))

	b.OnEvent(terminal.KeyPress(terminal.KeyEnter)).Process(nil)
	assert.Equal(t, 1, pressed)

	press := func(x int) runtime.EventResult {
		return b.OnEvent(terminal.MouseEvent{Kind: terminal.MousePress, Button: terminal.MouseLeft, Position: vec.New(x, 0)})
	}
	press(3).Process(nil)
	assert.Equal(t, 2, pressed)
	assert.False(t, press(4).IsConsumed(), "outside the button")
	assert.False(t, b.OnEvent(terminal.Char('x')).IsConsumed())

	b.SetEnabled(false)
	assert.False(t, b.Enabled())
	assert.False(t, b.TakeFocus(runtime.DirFront))
	assert.False(t, b.OnEvent(terminal.KeyPress(terminal.KeyEnter)).IsConsumed())

	b.SetEnabled(true)
	b.SetCallback(nil)
	res := b.OnEvent(terminal.KeyPress(terminal.KeyEnter))
	assert.True(t, res.IsConsumed())
	assert.Nil(t, res.Callback())
}

func TestButton_Draw(t *testing.T) {
	frame, be := render(t, NewButton("OK", nil), 6, 1)
	assert.Equal(t, "<OK>  ", frame)

	th := theme.Default()
	_, style := be.CaptureCell(0, 0)
	assert.Equal(t, th.Pair(theme.StyleHighlight), style.Pair, "focused printer highlights")
}

func TestPanel(t *testing.T) {
	p := NewPanel(NewTextView("hello")).WithTitle("T")
	assert.Equal(t, vec.New(7, 3), p.RequiredSize(vec.New(20, 10)))

	p.SetTitle("A long title")
	assert.Equal(t, "A long title", p.Title())
	assert.Equal(t, vec.New(18, 3), p.RequiredSize(vec.New(20, 10)))

	p.SetTitle("Hi")
	frame, _ := render(t, p, 10, 3)
	assert.Equal(t, "┌── Hi ──┐", line(frame, 0))
	assert.Equal(t, "│hello   │", line(frame, 1))
	assert.Equal(t, "└────────┘", line(frame, 2))

	click := terminal.MouseEvent{Kind: terminal.MousePress, Button: terminal.MouseLeft, Position: vec.New(2, 1)}
	btn := NewButton("ok", nil)
	bp := NewPanel(btn)
	bp.Layout(vec.New(6, 3))
	assert.True(t, bp.OnEvent(click).IsConsumed(), "click shifted inside the border")
	assert.True(t, bp.TakeFocus(runtime.DirFront))

	empty := NewPanel(nil)
	assert.Equal(t, vec.New(2, 2), empty.RequiredSize(vec.New(10, 10)))
	assert.False(t, empty.OnEvent(click).IsConsumed())
	assert.False(t, empty.TakeFocus(runtime.DirFront))
}

func TestLinearLayout_Layout(t *testing.T) {
	t.Run("fixed and expanded", func(t *testing.T) {
		l := NewVertical().
			Add(NewTextView("title")).
			Add(NewButton("ok", nil)).
			AddExpanded(NewDummyView()).
			Add(NewButton("cancel", nil))
		assert.Equal(t, vec.New(8, 3), l.RequiredSize(vec.New(20, 10)))

		l.Layout(vec.New(20, 10))
		var offsets, sizes []vec.Vec2
		for _, c := range l.children {
			offsets = append(offsets, c.offset)
			sizes = append(sizes, c.size)
		}
		assert.Equal(t, []vec.Vec2{vec.New(0, 0), vec.New(0, 1), vec.New(0, 2), vec.New(0, 9)}, offsets)
		assert.Equal(t, []vec.Vec2{vec.New(20, 1), vec.New(20, 1), vec.New(20, 7), vec.New(20, 1)}, sizes)
	})

	t.Run("weights", func(t *testing.T) {
		a, b := NewDummyView(), NewDummyView()
		l := NewHorizontal().AddWeighted(a, 1).AddWeighted(b, 3)
		l.Layout(vec.New(8, 2))
		assert.Equal(t, vec.New(2, 2), l.children[0].size)
		assert.Equal(t, vec.New(6, 2), l.children[1].size)
		assert.Equal(t, vec.New(2, 0), l.children[1].offset)
	})

	t.Run("remainder goes to the last growing child", func(t *testing.T) {
		l := NewHorizontal().
			AddExpanded(NewDummyView()).
			AddExpanded(NewDummyView()).
			Add(NewButton("x", nil)).
			AddExpanded(NewDummyView())
		l.Layout(vec.New(13, 1))
		var widths []int
		for _, c := range l.children {
			widths = append(widths, c.size.X)
		}
		assert.Equal(t, []int{3, 3, 3, 4}, widths)
		assert.Equal(t, vec.New(9, 0), l.children[3].offset)
	})

	t.Run("overflow is cropped", func(t *testing.T) {
		l := NewVertical().Add(NewTextView("a")).Add(NewTextView("b")).Add(NewTextView("c"))
		l.Layout(vec.New(5, 2))
		assert.Equal(t, 0, l.children[2].size.Y)

		frame, _ := render(t, l, 5, 2)
		assert.Equal(t, "a    \nb    ", frame)
	})
}

func focusFixture() *LinearLayout {
	return NewVertical().
		Add(NewTextView("title")).
		Add(NewButton("ok", nil)).
		AddExpanded(NewDummyView()).
		Add(NewButton("cancel", nil))
}

func TestLinearLayout_FocusNavigation(t *testing.T) {
	l := focusFixture()
	l.Layout(vec.New(20, 10))
	require.True(t, l.TakeFocus(runtime.DirFront))
	assert.Equal(t, 1, l.FocusIndex(), "text and dummy views are skipped")

	key := func(ev terminal.Event) bool { return l.OnEvent(ev).IsConsumed() }

	assert.True(t, key(terminal.KeyPress(terminal.KeyTab)))
	assert.Equal(t, 3, l.FocusIndex())
	assert.True(t, key(terminal.KeyPress(terminal.KeyTab)), "tab wraps")
	assert.Equal(t, 1, l.FocusIndex())
	assert.True(t, key(terminal.ShiftKey(terminal.KeyTab)))
	assert.Equal(t, 3, l.FocusIndex())

	assert.False(t, key(terminal.KeyPress(terminal.KeyDown)), "arrows stop at the end")
	assert.True(t, key(terminal.KeyPress(terminal.KeyUp)))
	assert.Equal(t, 1, l.FocusIndex())
	assert.False(t, key(terminal.KeyPress(terminal.KeyUp)))
	assert.False(t, key(terminal.KeyPress(terminal.KeyLeft)), "cross axis keys are ignored")
	assert.False(t, key(terminal.CtrlKey(terminal.KeyTab)))

	require.True(t, l.TakeFocus(runtime.DirBack))
	assert.Equal(t, 3, l.FocusIndex())
}

func TestLinearLayout_HorizontalArrows(t *testing.T) {
	l := NewHorizontal().Add(NewButton("a", nil)).Add(NewButton("b", nil))
	l.Layout(vec.New(10, 1))
	require.True(t, l.TakeFocus(runtime.DirNone))

	assert.True(t, l.OnEvent(terminal.KeyPress(terminal.KeyRight)).IsConsumed())
	assert.Equal(t, 1, l.FocusIndex())
	assert.False(t, l.OnEvent(terminal.KeyPress(terminal.KeyDown)).IsConsumed())

	require.True(t, l.TakeFocus(runtime.DirLeft))
	assert.Equal(t, 0, l.FocusIndex())
	require.True(t, l.TakeFocus(runtime.DirRight))
	assert.Equal(t, 1, l.FocusIndex())
}

func TestLinearLayout_MouseFocusesChild(t *testing.T) {
	cancelled := false
	l := NewVertical().
		Add(NewButton("ok", nil)).
		AddExpanded(NewDummyView()).
		Add(NewButton("cancel", func(*runtime.App) { cancelled = true }))
	l.Layout(vec.New(10, 5))
	require.True(t, l.TakeFocus(runtime.DirFront))

	press := terminal.MouseEvent{Kind: terminal.MousePress, Button: terminal.MouseLeft, Position: vec.New(2, 4)}
	res := l.OnEvent(press)
	require.True(t, res.IsConsumed())
	assert.Equal(t, 2, l.FocusIndex())
	res.Process(nil)
	assert.True(t, cancelled)

	assert.False(t, l.OnEvent(terminal.MouseEvent{Kind: terminal.MousePress, Position: vec.New(20, 20)}).IsConsumed())
	assert.False(t, NewVertical().OnEvent(terminal.Char('x')).IsConsumed())
}

func TestLinearLayout_ChildrenManagement(t *testing.T) {
	l := focusFixture()
	assert.Equal(t, 4, l.Len())
	assert.Nil(t, l.Child(9))
	assert.False(t, l.SetFocusIndex(0), "text refuses focus")
	assert.True(t, l.SetFocusIndex(3))

	removed := l.Remove(1)
	require.NotNil(t, removed)
	assert.Equal(t, "ok", removed.(*Button).Label())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.FocusIndex(), "focus follows the shifted child")
	assert.Nil(t, l.Remove(7))
}

func TestLinearLayout_RemovingFocusedChildRefocuses(t *testing.T) {
	l := focusFixture()
	require.True(t, l.SetFocusIndex(1))

	l.Remove(1)
	assert.Equal(t, 2, l.FocusIndex(), "dummy view at the old index refuses focus")
	assert.Equal(t, "cancel", l.Child(l.FocusIndex()).(*Button).Label())

	l.Remove(2)
	assert.Equal(t, 1, l.FocusIndex(), "index stays clamped when nothing accepts focus")
	assert.Equal(t, 2, l.Len())
}

func TestLinearLayout_DrawsFocusedChildHighlighted(t *testing.T) {
	l := NewHorizontal().Add(NewButton("a", nil)).Add(NewButton("b", nil))
	require.True(t, l.SetFocusIndex(1))

	frame, be := render(t, l, 6, 1)
	assert.Equal(t, "<a><b>", frame)

	th := theme.Default()
	_, first := be.CaptureCell(0, 0)
	_, second := be.CaptureCell(3, 0)
	assert.Equal(t, th.Pair(theme.StylePrimary), first.Pair)
	assert.Equal(t, th.Pair(theme.StyleHighlight), second.Pair)
}

func TestDemoFrameThroughApp(t *testing.T) {
	be := sim.New(30, 8)
	app, err := runtime.NewApp(runtime.AppConfig{Backend: be})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	app.Menubar().AddLeaf("Quit", func(a *runtime.App) { a.Quit() })
	app.AddLayer(NewPanel(NewVertical().
		Add(WithID("status", NewTextView("ready"))).
		Add(NewButton("OK", func(a *runtime.App) {
			runtime.CallOn(a.Root(), runtime.ID("status"), func(tv *TextView) { tv.SetContent("done") })
			a.Quit()
		}))).WithTitle("Demo"))

	be.InjectKey(terminal.KeyEnter)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, app.Run(ctx))

	frame := be.Capture()
	assert.Equal(t, " Quit ", line(frame, 0)[1:7], "pinned menu bar on the first row")
	assert.True(t, be.ContainsText("Demo"))
	assert.True(t, be.ContainsText("<OK>"))
	assert.True(t, be.ContainsText("ready"), "frame drawn before the button fired")

	tv, ok := runtime.Find[*TextView](app.Root(), runtime.ID("status"))
	require.True(t, ok)
	assert.Equal(t, "done", tv.Content())
}
