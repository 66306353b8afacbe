package broadcast

import (
	"context"
	"sync"
	"sync/atomic"
)

// Message wraps a typed payload.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
type Subscriber[T any] interface {
	// Receive returns the channel messages arrive on. It is closed by Close.
	Receive() <-chan Message[T]

	// Dropped returns how many messages were discarded because the buffer was full.
	Dropped() uint64

	// Close detaches the subscriber. Safe to call more than once.
	Close() error
}

// Broadcaster fans messages out to subscribers without blocking the sender.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber that lives until Close is called on it
	// or ctx is done.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast offers msg to every subscriber. Full buffers drop the message.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close closes all subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch      chan Message[T]
	dropped atomic.Uint64
	closed  bool
	mu      sync.RWMutex
	detach  func()
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan Message[T], bufferSize)}
}

func (s *subscriber[T]) Receive() <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *subscriber[T]) Close() error {
	if s.detach != nil {
		s.detach()
	}
	s.shut()
	return nil
}

func (s *subscriber[T]) shut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

// offer tries a non-blocking send and reports whether the message was queued.
func (s *subscriber[T]) offer(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}
