package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/marquee/pkg/ui/vec"
)

func TestEventResult(t *testing.T) {
	assert.False(t, Ignored().IsConsumed())
	assert.True(t, Consumed().IsConsumed())
	assert.Nil(t, Consumed().Callback())

	var order []string
	a := ConsumedWith(func(*App) { order = append(order, "a") })
	b := ConsumedWith(func(*App) { order = append(order, "b") })

	merged := a.And(b)
	assert.True(t, merged.IsConsumed())
	merged.Process(nil)
	assert.Equal(t, []string{"a", "b"}, order)

	assert.True(t, Ignored().And(Consumed()).IsConsumed())
	assert.False(t, Ignored().And(Ignored()).IsConsumed())
	assert.NotNil(t, Ignored().And(a).Callback())
	assert.NotPanics(t, func() { Ignored().Process(nil) })
}

func TestCallOnMatchesType(t *testing.T) {
	s := NewScreen()
	s.AddFullscreenLayer(&probeView{id: "a"})

	calls := 0
	assert.True(t, CallOn(s, ID("a"), func(v *probeView) {
		calls++
		v.req = vec.New(1, 1)
	}))
	assert.Equal(t, 1, calls)
	assert.False(t, CallOn(s, ID("b"), func(*probeView) { calls++ }))
	assert.Equal(t, 1, calls)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "front", DirFront.String())
	assert.Equal(t, "left", DirLeft.String())
}

func TestBaseViewDefaults(t *testing.T) {
	var v BaseView
	assert.Equal(t, vec.New(1, 1), v.RequiredSize(vec.New(10, 10)))
	assert.False(t, v.TakeFocus(DirFront))
	assert.True(t, v.NeedsRelayout())
	assert.False(t, v.OnEvent(nil).IsConsumed())
}
