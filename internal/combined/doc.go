// Package combined provides interaction benchmarks that test multiple
// components together.
//
// These benchmarks model a consumer hot loop: check the stop flag, check
// the run deadline, then take a message from the queue. They capture the
// cumulative cost of the three checks rather than each in isolation.
package combined
