// Package wrapnum provides a generic wraparound counter.
// A Counter holds a fixed-width integer that can be incremented and
// decremented past its representable range while keeping track of how many
// times, and in which direction, it has wrapped.
// Counters are ordered first by their wrap offset and then by their raw value,
// so a counter that has overflowed compares greater than one that has not,
// even when its raw value is smaller.
//
// The New function creates a new Counter.
package wrapnum

import "fmt"

// New returns a new Counter holding initial with a wrap offset of 0.
func New[T Integer](initial T) Counter[T] {
	return Counter[T]{value: initial}
}

// Counter is a wraparound counter over the integer type T.
//
// The zero value Counter is ready to use and is equal to New[T](0).
//
// Counter is a plain value type. It's not safe for concurrent use;
// callers sharing a Counter between goroutines must synchronize
// every WrappingAdd and WrappingSub call themselves.
//
// Two Counters are equal if both their raw values and wrap offsets are equal,
// so they can be compared with the == operator as well as with Equal.
//
// Example:
//
//	c := wrapnum.New[uint8](200)
//	c.WrappingAdd(70)
//	c.Get()    // 14
//	c.Offset() // 1
type Counter[T Integer] struct {
	value  T
	offset int64
}

// Get returns the current raw value.
func (c Counter[T]) Get() T {
	return c.value
}

// Offset returns the signed number of times the value has wrapped.
// It is positive if the value overflowed past the maximum of T more times
// than it underflowed past the minimum, negative otherwise.
func (c Counter[T]) Offset() int64 {
	return c.offset
}

func (c Counter[T]) String() string {
	return fmt.Sprintf("%d (offset %d)", c.value, c.offset)
}
