package runtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_DrainRunsInSendOrder(t *testing.T) {
	s := newSink(nil)
	var got []int
	for i := range 5 {
		require.NoError(t, s.Send(func(*App) { got = append(got, i) }))
	}
	require.NoError(t, s.Send(nil))
	assert.Equal(t, 5, s.Len())

	assert.Equal(t, 5, s.drain(nil))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.drain(nil))
}

func TestSink_DrainIncludesCallbacksSentWhileDraining(t *testing.T) {
	s := newSink(nil)
	var got []string
	require.NoError(t, s.Send(func(*App) {
		got = append(got, "first")
		_ = s.Send(func(*App) { got = append(got, "nested") })
	}))
	require.NoError(t, s.Send(func(*App) { got = append(got, "second") }))

	assert.Equal(t, 3, s.drain(nil))
	assert.Equal(t, []string{"first", "second", "nested"}, got)
}

func TestSink_ConcurrentSendersKeepPerSenderOrder(t *testing.T) {
	wakes := 0
	var mu sync.Mutex
	s := newSink(func() {
		mu.Lock()
		wakes++
		mu.Unlock()
	})

	const senders, each = 8, 100
	var wg sync.WaitGroup
	seen := make([][]int, senders)
	for g := range senders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range each {
				assert.NoError(t, s.Send(func(*App) { seen[g] = append(seen[g], i) }))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, senders*each, s.drain(nil))
	assert.Equal(t, senders*each, wakes)
	for g := range senders {
		require.Len(t, seen[g], each)
		for i := range each {
			assert.Equal(t, i, seen[g][i])
		}
	}
}

func TestSink_SendAfterCloseFails(t *testing.T) {
	depths := []int{}
	s := newSink(nil)
	s.onSend = func(d int) { depths = append(depths, d) }

	require.NoError(t, s.Send(func(*App) {}))
	require.NoError(t, s.Send(func(*App) {}))
	assert.Equal(t, []int{1, 2}, depths)

	s.close()
	assert.ErrorIs(t, s.Send(func(*App) {}), ErrSinkClosed)
	assert.Equal(t, 0, s.Len(), "pending callbacks are dropped")
}
