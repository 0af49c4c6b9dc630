package cancel

import (
	"context"
	"sync/atomic"
)

// ContextCanceler wraps context.Context for cancellation signaling.
//
// Done() performs a non-blocking select on ctx.Done(). Use Context() where
// a worker needs to select on cancellation while sleeping.
type ContextCanceler struct {
	ctx       context.Context
	cancel    context.CancelFunc
	cancelled atomic.Bool
}

// NewContext creates a ContextCanceler from a parent context.
// Cancelling the parent also makes Done() report true.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancel(parent)
	return &ContextCanceler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Done returns true if the context has been cancelled.
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel triggers cancellation of the context.
// Only the first call returns true.
func (c *ContextCanceler) Cancel() bool {
	first := c.cancelled.CompareAndSwap(false, true)
	c.cancel()
	return first
}

// Context returns the underlying context.Context.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}
