// Package views provides reference views built on the runtime View contract.
package views

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/marquee/pkg/ui/runtime"
	"github.com/odvcencio/marquee/pkg/ui/theme"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// Alignment specifies horizontal text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// TextView displays static text, wrapped to the available width.
type TextView struct {
	runtime.BaseView
	content string
	style   theme.ColorStyle
	align   Alignment

	// Cached wrap
	lines     []string
	wrapWidth int
	dirty     bool
}

// NewTextView creates a text view.
func NewTextView(content string) *TextView {
	return &TextView{content: content, style: theme.StylePrimary, dirty: true}
}

// SetContent replaces the text.
func (t *TextView) SetContent(content string) {
	t.content = content
	t.dirty = true
}

// Content returns the current text.
func (t *TextView) Content() string {
	return t.content
}

// SetStyle sets the color style used to draw the text.
func (t *TextView) SetStyle(style theme.ColorStyle) {
	t.style = style
}

// WithStyle sets the style and returns the view for chaining.
func (t *TextView) WithStyle(style theme.ColorStyle) *TextView {
	t.style = style
	return t
}

// WithAlignment sets alignment and returns the view for chaining.
func (t *TextView) WithAlignment(align Alignment) *TextView {
	t.align = align
	return t
}

// Lines returns the text as wrapped by the last Layout.
func (t *TextView) Lines() []string {
	return t.lines
}

// RequiredSize returns the wrapped text size for the constraint width.
func (t *TextView) RequiredSize(constraint vec.Vec2) vec.Vec2 {
	lines := wrap(t.content, constraint.X)
	w := 0
	for _, line := range lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return vec.New(w, len(lines))
}

// Layout rewraps the text to size.X when needed.
func (t *TextView) Layout(size vec.Vec2) {
	if t.dirty || size.X != t.wrapWidth {
		t.lines = wrap(t.content, size.X)
		t.wrapWidth = size.X
		t.dirty = false
	}
}

// NeedsRelayout reports whether the content changed since the last layout.
func (t *TextView) NeedsRelayout() bool {
	return t.dirty
}

// Draw prints the wrapped lines.
func (t *TextView) Draw(p *runtime.Printer) {
	width := p.Size().X
	p.WithColor(t.style, func(p *runtime.Printer) {
		for y, line := range t.lines {
			x := 0
			switch t.align {
			case AlignCenter:
				x = (width - runewidth.StringWidth(line)) / 2
			case AlignRight:
				x = width - runewidth.StringWidth(line)
			}
			p.Print(vec.New(max(0, x), y), line)
		}
	})
}

// wrap breaks content into lines no wider than width cells. Words longer
// than width are split. A width <= 0 disables wrapping.
func wrap(content string, width int) []string {
	if content == "" {
		return nil
	}
	var out []string
	for _, para := range strings.Split(content, "\n") {
		if width <= 0 {
			out = append(out, para)
			continue
		}
		out = append(out, wrapLine(para, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var out []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if curW > 0 && curW+1+ww > width {
			flush()
		}
		for ww > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// a single rune wider than the line
				_, n := utf8.DecodeRuneInString(word)
				head = word[:n]
			}
			cur.WriteString(head)
			flush()
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	if cur.Len() > 0 {
		flush()
	}
	return out
}

var _ runtime.View = (*TextView)(nil)
