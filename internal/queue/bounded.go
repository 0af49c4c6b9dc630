package queue

import (
	"fmt"
	"sync"

	"github.com/randomizedcoder/msgqueue/internal/cancel"
)

// Bounded is a fixed-capacity FIFO queue safe for any number of producers
// and consumers.
//
// The buffer is guarded by mu. Blocked producers wait on notFull, blocked
// consumers on notEmpty. The closed flag is read without the lock so a
// closed queue fails fast; Close sets it and then takes mu before
// broadcasting, so a waiter either sees the flag before it sleeps or is
// already registered on the condition when the broadcast fires.
type Bounded[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	buf      *list[T]
	capacity int

	closed cancel.AtomicCanceler
}

var _ Queue[int] = (*Bounded[int])(nil)

// New creates a Bounded queue holding at most capacity messages.
// Returns ErrInvalidCapacity if capacity < 1.
func New[T any](capacity int) (*Bounded[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	q := &Bounded[T]{
		buf:      newList[T](),
		capacity: capacity,
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Push appends v to the tail.
//
// With Blocking, a full queue suspends the caller until space frees up
// (Ok) or the queue is closed (Closed). With NonBlocking, a full queue
// returns Full immediately.
func (q *Bounded[T]) Push(v T, p Policy) Result {
	if q.closed.Done() {
		return Closed
	}

	q.mu.Lock()
	for {
		if q.closed.Done() {
			q.mu.Unlock()
			return Closed
		}
		if q.buf.Len() < q.capacity {
			break
		}
		if p == NonBlocking {
			q.mu.Unlock()
			return Full
		}
		q.notFull.Wait()
	}
	q.buf.PushBack(v)
	q.mu.Unlock()

	q.notEmpty.Signal()
	return Ok
}

// Pop removes and returns the head.
//
// With Blocking, an empty queue suspends the caller until a message
// arrives (Ok) or the queue is closed (Closed). With NonBlocking, an empty
// queue returns Empty immediately.
func (q *Bounded[T]) Pop(p Policy) (T, Result) {
	var zero T
	if q.closed.Done() {
		return zero, Closed
	}

	q.mu.Lock()
	for {
		if q.closed.Done() {
			q.mu.Unlock()
			return zero, Closed
		}
		if q.buf.Len() > 0 {
			break
		}
		if p == NonBlocking {
			q.mu.Unlock()
			return zero, Empty
		}
		q.notEmpty.Wait()
	}
	v := q.buf.Remove(q.buf.Front())
	q.mu.Unlock()

	q.notFull.Signal()
	return v, Ok
}

// PopMatch removes and returns the first message, scanning from head to
// tail, for which match returns true. The order of the remaining messages
// is unchanged. It never blocks.
//
// Returns Closed, Empty, NotFound (no mutation) or Ok. match is called
// with the queue lock held and must not call back into q.
func (q *Bounded[T]) PopMatch(match func(T) bool) (T, Result) {
	var zero T
	if q.closed.Done() {
		return zero, Closed
	}

	q.mu.Lock()
	if q.closed.Done() {
		q.mu.Unlock()
		return zero, Closed
	}
	if q.buf.Len() == 0 {
		q.mu.Unlock()
		return zero, Empty
	}
	if match == nil {
		q.mu.Unlock()
		return zero, NotFound
	}
	for e := q.buf.Front(); e != nil; e = q.buf.Next(e) {
		if match(e.value) {
			v := q.buf.Remove(e)
			q.mu.Unlock()
			q.notFull.Signal()
			return v, Ok
		}
	}
	q.mu.Unlock()
	return zero, NotFound
}

// Close permanently closes the queue and wakes every blocked Push and Pop
// so they return Closed. Safe to call multiple times; always returns Ok.
func (q *Bounded[T]) Close() Result {
	q.closed.Cancel()

	// Taking mu orders the flag write before any waiter's next re-check.
	q.mu.Lock()
	q.mu.Unlock() //nolint:staticcheck // empty critical section is the barrier

	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
	return Ok
}

// IsClosed reports whether Close has been called. It does not take the lock.
func (q *Bounded[T]) IsClosed() bool {
	return q.closed.Done()
}

// Len returns the current number of buffered messages.
func (q *Bounded[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Len()
}

// Cap returns the capacity of the queue.
func (q *Bounded[T]) Cap() int {
	return q.capacity
}
