package wrapnum

// WrappingAdd adds delta to the value using wraparound arithmetic.
//
// If adding a positive delta rolled the value past the maximum of T,
// the wrap offset is incremented. If adding a negative delta rolled
// the value past the minimum of T, the wrap offset is decremented.
// A single call changes the wrap offset by at most one.
func (c *Counter[T]) WrappingAdd(delta T) {
	sum := c.value + delta
	// sum < value alone is not enough for signed types: 5 + (-1) < 5.
	if sum < c.value && isPositive(delta) {
		c.offset++
	} else if sum > c.value && isNegative(delta) {
		c.offset--
	}
	c.value = sum
}

// WrappingSub subtracts delta from the value using wraparound arithmetic.
//
// It mirrors WrappingAdd: subtracting a negative delta that rolls the value
// past the maximum of T increments the wrap offset, subtracting a positive
// delta that rolls it past the minimum of T decrements it.
func (c *Counter[T]) WrappingSub(delta T) {
	diff := c.value - delta
	if diff < c.value && isNegative(delta) {
		c.offset++
	} else if diff > c.value && isPositive(delta) {
		c.offset--
	}
	c.value = diff
}

// Inc increments the value by one.
func (c *Counter[T]) Inc() {
	c.WrappingAdd(1)
}

// Dec decrements the value by one.
func (c *Counter[T]) Dec() {
	c.WrappingSub(1)
}
