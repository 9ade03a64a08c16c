// Package predicate provides the numeric tests used by the year filters.
package predicate

import (
	"errors"
	"math"
)

// ErrZeroDivisor is returned by IsDivisibleBy when the divisor is zero.
var ErrZeroDivisor = errors.New("integer division by zero")

// IsPrime reports whether n is a prime number.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	limit := int(math.Sqrt(float64(n)))
	for i := 2; i <= limit; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// IsDivisibleBy reports whether n is evenly divisible by d.
// A zero divisor is an error, never a false result.
func IsDivisibleBy(n, d int) (bool, error) {
	if d == 0 {
		return false, ErrZeroDivisor
	}
	return n%d == 0, nil
}
