package sweep

import "fmt"

// Series is a named curve: aligned X and Y values plus axis labels.
type Series struct {
	Name   string    `json:"name"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

func (s Series) Len() int {
	return len(s.X)
}

// Sweep pairs each sample point with the calculation result at that point.
type Sweep[R any] struct {
	X       []float64
	Results []R
}

// Generate evaluates fn at every x. The first failing sample aborts the
// sweep; its error is returned with the offending x.
func Generate[R any](xs []float64, fn func(x float64) (R, error)) (Sweep[R], error) {
	s := Sweep[R]{
		X:       make([]float64, len(xs)),
		Results: make([]R, len(xs)),
	}
	copy(s.X, xs)
	for i, x := range xs {
		r, err := fn(x)
		if err != nil {
			return Sweep[R]{}, fmt.Errorf("sample %d (x=%g): %w", i, x, err)
		}
		s.Results[i] = r
	}
	return s, nil
}

// Series projects one scalar out of every result.
func (s Sweep[R]) Series(name, xLabel, yLabel string, field func(R) float64) Series {
	out := Series{
		Name:   name,
		XLabel: xLabel,
		YLabel: yLabel,
		X:      make([]float64, len(s.X)),
		Y:      make([]float64, len(s.X)),
	}
	copy(out.X, s.X)
	for i, r := range s.Results {
		out.Y[i] = field(r)
	}
	return out
}

// Map builds a series from a closed-form shape function.
func Map(name, xLabel, yLabel string, xs []float64, fn func(x float64) float64) Series {
	out := Series{
		Name:   name,
		XLabel: xLabel,
		YLabel: yLabel,
		X:      make([]float64, len(xs)),
		Y:      make([]float64, len(xs)),
	}
	copy(out.X, xs)
	for i, x := range xs {
		out.Y[i] = fn(x)
	}
	return out
}
