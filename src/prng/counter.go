package prng

import "sync/atomic"

// Counter is an externally-owned, monotonically increasing index into a
// PRNG's deterministic sequence. A single prime search shares one Counter
// across every draw so that no position in the sequence is used twice.
// Safe for concurrent use; the ordering requirement is only uniqueness of
// the returned values, not cross-goroutine happens-before.
type Counter struct {
	v uint64
}

// NewCounter creates a Counter whose first FetchAndIncrement call returns
// start.
func NewCounter(start uint64) *Counter {
	return &Counter{v: start}
}

// FetchAndIncrement returns the counter's current value and advances it by
// one.
func (c *Counter) FetchAndIncrement() uint64 {
	return atomic.AddUint64(&c.v, 1) - 1
}
