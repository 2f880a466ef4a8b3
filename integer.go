package wrapnum

import "golang.org/x/exp/constraints"

// Integer is a constraint that permits any fixed-width integer type,
// signed or unsigned.
//
// Addition and subtraction on these types wrap around silently,
// which is what Counter relies on.
type Integer interface {
	constraints.Integer
}

func isPositive[T Integer](n T) bool {
	var zero T
	return n > zero
}

func isNegative[T Integer](n T) bool {
	var zero T
	return n < zero
}
