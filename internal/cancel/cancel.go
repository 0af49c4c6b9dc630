// Package cancel provides one-way cancellation flags.
//
// This package offers two implementations of the Canceler interface:
//   - AtomicCanceler: a single atomic.Bool, used as the queue's closed flag
//     so closed queues can reject calls without taking a lock
//   - ContextCanceler: wraps context.Context, for callers that also need
//     a channel to select on (sleeps, blocking I/O)
//
// Both are one-way: once cancelled they stay cancelled. There is no Reset.
package cancel

// Canceler provides cancellation signaling to workers.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Done() concurrently
//   - Cancel() may be called concurrently with Done() and with itself
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	// Returns true only for the call that performed the transition.
	Cancel() bool
}
