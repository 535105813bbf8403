package views

import (
	"github.com/odvcencio/marquee/pkg/ui/runtime"
	"github.com/odvcencio/marquee/pkg/ui/vec"
)

// DummyView draws nothing. Added with LinearLayout.AddExpanded it takes up
// the remaining space.
type DummyView struct {
	runtime.BaseView
}

// NewDummyView creates an empty view.
func NewDummyView() *DummyView {
	return &DummyView{}
}

func (*DummyView) Draw(*runtime.Printer) {}

// RequiredSize asks for nothing.
func (*DummyView) RequiredSize(vec.Vec2) vec.Vec2 { return vec.Zero() }

var _ runtime.View = (*DummyView)(nil)
