// Package tick provides cheap elapsed-time checks for hot polling loops.
//
// Benchmark workers spin on non-blocking queue calls and must notice when
// their run time is up without paying for a clock read on every iteration:
//   - BatchTicker: reads the clock only every N calls
//   - Deadline: a one-shot BatchTicker that stays expired once it fires
//
// Neither type is safe for concurrent use; give each goroutine its own.
package tick
