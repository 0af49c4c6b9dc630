package cancel

import "sync/atomic"

// AtomicCanceler uses an atomic.Bool for cancellation signaling.
//
// Each call to Done() performs a single atomic load. Go atomics are
// sequentially consistent, so a Cancel() that happens before a mutex
// Unlock is visible to every goroutine that later acquires that mutex.
//
// The zero value is ready for use and not cancelled.
type AtomicCanceler struct {
	done atomic.Bool
}

// NewAtomic creates a new AtomicCanceler.
func NewAtomic() *AtomicCanceler {
	return &AtomicCanceler{}
}

// Done returns true if cancellation has been triggered.
func (a *AtomicCanceler) Done() bool {
	return a.done.Load()
}

// Cancel triggers cancellation.
//
// Safe to call multiple times; only the first call returns true.
func (a *AtomicCanceler) Cancel() bool {
	return a.done.CompareAndSwap(false, true)
}
