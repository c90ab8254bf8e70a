package ds

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NearestDivisibleByM returns the smallest value >= n that is divisible by m.
func NearestDivisibleByM[T constraints.Integer](n T, m T) T {
	if m <= 0 {
		err := fmt.Errorf(
			`NearestDivisibleByM unreachable code with n = %d and m = %d`,
			n, m,
		)
		panic(err)
	}
	remainder := n % m
	if remainder == 0 {
		return n
	}
	return n + m - remainder
}

// PaddingLength is the number of bytes to append to n bytes to reach a multiple of m.
func PaddingLength[T constraints.Integer](n T, m T) T {
	return NearestDivisibleByM(n, m) - n
}
