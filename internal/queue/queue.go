// Package queue provides a bounded, multi-producer multi-consumer FIFO
// message queue with blocking and non-blocking operations.
//
// This package offers two implementations of the Queue interface:
//   - Bounded: mutex + two condition variables over a linked list
//   - ChannelQueue: standard library approach using buffered channels
//
// # Close semantics
//
// Close is one-way and terminal. After Close returns, every Push, Pop and
// PopMatch returns Closed, and any messages still buffered become
// unreachable. Goroutines blocked in Push or Pop are released and return
// Closed.
//
// All outcomes are reported as Result values. Only construction fails with
// an error (ErrInvalidCapacity).
package queue

import "errors"

// ErrInvalidCapacity is returned by the constructors when capacity < 1.
var ErrInvalidCapacity = errors.New("queue: capacity must be greater than zero")

// Result is the outcome of a queue operation.
type Result uint8

const (
	Ok Result = iota
	Empty
	Full
	NotFound
	Closed
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case Empty:
		return "empty"
	case Full:
		return "full"
	case NotFound:
		return "not_found"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Policy selects whether Push and Pop may suspend the caller.
type Policy uint8

const (
	// Blocking waits until the operation can proceed or the queue closes.
	Blocking Policy = iota
	// NonBlocking returns Full or Empty immediately instead of waiting.
	NonBlocking
)

func (p Policy) String() string {
	if p == Blocking {
		return "blocking"
	}
	return "non_blocking"
}

// Queue is a bounded multi-producer multi-consumer queue.
//
// Implementations must be safe for concurrent use by any number of
// goroutines.
type Queue[T any] interface {
	// Push appends v to the tail.
	// Returns Ok, Full (NonBlocking only) or Closed.
	Push(v T, p Policy) Result

	// Pop removes and returns the head.
	// Returns Ok, Empty (NonBlocking only) or Closed.
	Pop(p Policy) (T, Result)

	// Close permanently disables the queue and releases blocked callers.
	// Safe to call multiple times; always returns Ok.
	Close() Result

	// Len returns the current number of buffered messages.
	Len() int

	// Cap returns the capacity of the queue.
	Cap() int
}
