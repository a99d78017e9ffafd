package numeric

import (
	"math"

	"github.com/example/bfhl-service/domain/operation"
)

// Sequence returns the first n terms of the Fibonacci sequence 0, 1, 1, 2, ...
//
// n <= 0 yields an empty slice. Terms are int64, so n is limited to
// operation.MaxSequenceTerms; larger counts return ErrOverflow instead of
// wrapping.
func Sequence(n int64) ([]int64, error) {
	if n <= 0 {
		return []int64{}, nil
	}
	if n > operation.MaxSequenceTerms {
		return nil, ErrOverflow
	}
	if n == 1 {
		return []int64{0}, nil
	}

	terms := make([]int64, 2, n)
	terms[0], terms[1] = 0, 1
	for i := int64(2); i < n; i++ {
		terms = append(terms, terms[i-1]+terms[i-2])
	}
	return terms, nil
}

// IsPrime reports whether v is prime using 6k±1 trial division up to √v.
func IsPrime(v int64) bool {
	if v <= 1 {
		return false
	}
	if v <= 3 {
		return true
	}
	if v%2 == 0 || v%3 == 0 {
		return false
	}
	// i <= v/i is i*i <= v without overflow.
	for i := int64(5); i <= v/i; i += 6 {
		if v%i == 0 || v%(i+2) == 0 {
			return false
		}
	}
	return true
}

// PrimeFilter returns the primes of xs in their original order.
func PrimeFilter(xs []int64) []int64 {
	primes := make([]int64, 0, len(xs))
	for _, x := range xs {
		if IsPrime(x) {
			primes = append(primes, x)
		}
	}
	return primes
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(a, 0) == |a|.
// Neither argument may be math.MinInt64.
func GCD(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|, or 0 when either is 0.
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	x := abs(a) / GCD(a, b)
	y := abs(b)
	if x > math.MaxInt64/y {
		return 0, ErrOverflow
	}
	return x * y, nil
}

// ReduceHCF folds GCD across xs. A single value yields its absolute value.
// xs must not be empty.
func ReduceHCF(xs []int64) (int64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	if err := checkRange(xs); err != nil {
		return 0, err
	}

	result := abs(xs[0])
	for _, x := range xs[1:] {
		result = GCD(result, x)
	}
	return result, nil
}

// ReduceLCM folds LCM across xs. A single value yields its absolute value.
// xs must not be empty.
func ReduceLCM(xs []int64) (int64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	if err := checkRange(xs); err != nil {
		return 0, err
	}

	result := abs(xs[0])
	for _, x := range xs[1:] {
		var err error
		if result, err = LCM(result, x); err != nil {
			return 0, err
		}
	}
	return result, nil
}

// checkRange rejects math.MinInt64, whose absolute value has no int64 form.
func checkRange(xs []int64) error {
	for _, x := range xs {
		if x == math.MinInt64 {
			return ErrOverflow
		}
	}
	return nil
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
