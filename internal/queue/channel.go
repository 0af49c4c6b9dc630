package queue

import (
	"fmt"
	"sync"

	"github.com/randomizedcoder/msgqueue/internal/cancel"
)

// ChannelQueue wraps a buffered channel as a Queue.
//
// This is the standard library approach, kept as a baseline for Bounded.
// The data channel is never closed (a send on a closed channel panics);
// Close closes done instead, which every blocking select also waits on.
// Push and Pop hold mu for reading; Close takes it for writing after done
// is closed, so no send or receive completes once Close has returned.
// Matched extraction is not supported since a channel cannot be scanned.
type ChannelQueue[T any] struct {
	mu     sync.RWMutex
	ch     chan T
	done   chan struct{}
	once   sync.Once
	closed cancel.AtomicCanceler
}

var _ Queue[int] = (*ChannelQueue[int])(nil)

// NewChannel creates a ChannelQueue with the specified buffer size.
// Returns ErrInvalidCapacity if size < 1.
func NewChannel[T any](size int) (*ChannelQueue[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, size)
	}
	return &ChannelQueue[T]{
		ch:   make(chan T, size),
		done: make(chan struct{}),
	}, nil
}

// Push adds an item to the queue.
func (q *ChannelQueue[T]) Push(v T, p Policy) Result {
	if q.closed.Done() {
		return Closed
	}
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed.Done() {
		return Closed
	}
	if p == NonBlocking {
		select {
		case q.ch <- v:
			return Ok
		default:
			return Full
		}
	}
	select {
	case q.ch <- v:
		return Ok
	case <-q.done:
		return Closed
	}
}

// Pop removes and returns an item from the queue.
func (q *ChannelQueue[T]) Pop(p Policy) (T, Result) {
	var zero T
	if q.closed.Done() {
		return zero, Closed
	}
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed.Done() {
		return zero, Closed
	}
	if p == NonBlocking {
		select {
		case v := <-q.ch:
			return v, Ok
		default:
			return zero, Empty
		}
	}
	select {
	case v := <-q.ch:
		return v, Ok
	case <-q.done:
		return zero, Closed
	}
}

// Close marks the queue closed and releases blocked callers.
func (q *ChannelQueue[T]) Close() Result {
	q.closed.Cancel()
	q.once.Do(func() { close(q.done) })
	// wait out calls that passed the flag check before it was set
	q.mu.Lock()
	q.mu.Unlock() //nolint:staticcheck
	return Ok
}

// Len returns the current number of items in the queue.
func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
