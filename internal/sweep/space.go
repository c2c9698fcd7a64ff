package sweep

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Linspace returns n evenly spaced values over [a, b]. The last value is
// exactly b. For n == 1 it returns [a].
func Linspace[T constraints.Float](a, b T, n int) ([]T, error) {
	if n < 1 {
		return nil, ErrSampleCount
	}
	if !finite(float64(a)) || !finite(float64(b)) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, a, b)
	}
	xs := make([]T, n)
	if n == 1 {
		xs[0] = a
		return xs, nil
	}
	step := (b - a) / T(n-1)
	for i := range xs {
		xs[i] = a + T(i)*step
	}
	xs[n-1] = b
	return xs, nil
}

// Logspace returns n values spaced evenly in log10 between a and b, both
// of which must be positive. Like Linspace, n == 1 gives [a].
func Logspace[T constraints.Float](a, b T, n int) ([]T, error) {
	if a <= 0 || b <= 0 {
		return nil, fmt.Errorf("%w: log bounds must be positive, got [%v, %v]", ErrInvalidRange, a, b)
	}
	exps, err := Linspace(math.Log10(float64(a)), math.Log10(float64(b)), n)
	if err != nil {
		return nil, err
	}
	xs := make([]T, n)
	for i, e := range exps {
		xs[i] = T(math.Pow(10, e))
	}
	xs[0] = a
	if n > 1 {
		xs[n-1] = b
	}
	return xs, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Normalize scales ys in place so the maximum is 1. A slice whose maximum
// is not positive is left untouched.
func Normalize(ys []float64) []float64 {
	peak := 0.0
	for _, y := range ys {
		peak = max(peak, y)
	}
	if peak <= 0 {
		return ys
	}
	for i := range ys {
		ys[i] /= peak
	}
	return ys
}
