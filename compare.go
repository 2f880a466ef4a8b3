package wrapnum

import "cmp"

// Equal reports whether c and o have the same raw value and wrap offset.
func (c Counter[T]) Equal(o Counter[T]) bool {
	return c.offset == o.offset && c.value == o.value
}

// Compare returns
//
//	-1 if c is less than o,
//	 0 if c equals o,
//	+1 if c is greater than o.
//
// Counters are compared by wrap offset first and by raw value
// when the offsets are equal.
func (c Counter[T]) Compare(o Counter[T]) int {
	if r := cmp.Compare(c.offset, o.offset); r != 0 {
		return r
	}
	return cmp.Compare(c.value, o.value)
}

// Less reports whether c is less than o.
func (c Counter[T]) Less(o Counter[T]) bool {
	return c.Compare(o) < 0
}

// Compare compares a and b the way Counter.Compare does.
// It can be passed directly to slices.SortFunc.
func Compare[T Integer](a, b Counter[T]) int {
	return a.Compare(b)
}
