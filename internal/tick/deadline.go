package tick

import "time"

// Deadline reports once a run duration has passed, reading the clock only
// every N calls. Once expired it stays expired.
type Deadline struct {
	ticker  *BatchTicker
	expired bool
}

// NewDeadline starts a Deadline that expires after d.
func NewDeadline(d time.Duration, every int) *Deadline {
	return &Deadline{ticker: NewBatch(d, every)}
}

// Expired returns true once the duration has elapsed.
func (d *Deadline) Expired() bool {
	if !d.expired && d.ticker.Tick() {
		d.expired = true
	}
	return d.expired
}
