package runtime

import (
	"errors"
	"sync"
)

// ErrSinkClosed is returned by Sink.Send after the application closed.
var ErrSinkClosed = errors.New("runtime: sink closed")

// Sink is the only way other goroutines may touch the view tree: they send
// callbacks, and the loop runs them in arrival order at the start of the
// next tick. The queue is unbounded so Send never blocks.
type Sink struct {
	mu     sync.Mutex
	queue  []Callback
	closed bool
	wake   func()
	onSend func(depth int)
}

func newSink(wake func()) *Sink {
	return &Sink{wake: wake}
}

// Send enqueues cb. Safe for concurrent use.
func (s *Sink) Send(cb Callback) error {
	if cb == nil {
		return nil
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSinkClosed
	}
	s.queue = append(s.queue, cb)
	depth := len(s.queue)
	onSend := s.onSend
	s.mu.Unlock()

	if onSend != nil {
		onSend(depth)
	}
	if s.wake != nil {
		s.wake()
	}
	return nil
}

// Len returns the number of pending callbacks.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// take removes every pending callback.
func (s *Sink) take() []Callback {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := s.queue
	s.queue = nil
	return batch
}

// drain runs pending callbacks until the queue is empty, including ones
// enqueued while draining. Returns how many ran.
func (s *Sink) drain(app *App) int {
	ran := 0
	for {
		batch := s.take()
		if len(batch) == 0 {
			return ran
		}
		for _, cb := range batch {
			cb(app)
			ran++
		}
	}
}

func (s *Sink) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.queue = nil
}
