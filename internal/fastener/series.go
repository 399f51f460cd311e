package fastener

import "math"

// Series is a sequence of values evaluated elementwise. A series of length one
// is a scalar and broadcasts against longer series in the same call.
type Series []float64

// Scalar wraps v as a one-element series.
func Scalar(v float64) Series {
	return Series{v}
}

// Linspace returns n samples start, start+step, ... with step = (stop-start)/n.
// stop itself is excluded.
func Linspace(start, stop float64, n int) Series {
	if n <= 0 {
		return Series{}
	}
	step := (stop - start) / float64(n)
	s := make(Series, n)
	for i := range s {
		s[i] = start + float64(i)*step
	}
	return s
}

// At returns element i, or the single value of a scalar series.
func (s Series) At(i int) float64 {
	if len(s) == 1 {
		return s[0]
	}
	return s[i]
}

func (s Series) IsScalar() bool { return len(s) == 1 }

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

// Min returns the elementwise minimum of the given series. A NaN in any series
// makes that element NaN, whatever its position in the arguments.
func Min(series ...Series) (Series, error) {
	n, err := broadcastLen("min", series...)
	if err != nil {
		return nil, err
	}
	out := make(Series, n)
	for i := range out {
		m := series[0].At(i)
		for _, s := range series[1:] {
			if v := s.At(i); v < m || math.IsNaN(v) {
				m = v
			}
		}
		out[i] = m
	}
	return out, nil
}

// ArgMax returns the index of the largest element. Ties resolve to the first
// occurrence and NaN elements are skipped; an all-NaN series returns 0. It
// returns -1 for an empty series.
func (s Series) ArgMax() int {
	if len(s) == 0 {
		return -1
	}
	best := -1
	for i, v := range s {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v > s[best] {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// broadcastLen returns the common length of the inputs. Scalars take any
// length; every other series must share one length.
func broadcastLen(op string, in ...Series) (int, error) {
	n := 1
	for _, s := range in {
		switch {
		case len(s) == 0:
			return 0, opError(op, ErrEmptySeries)
		case len(s) == 1:
		case n == 1:
			n = len(s)
		case len(s) != n:
			return 0, opError(op, ErrLengthMismatch)
		}
	}
	return n, nil
}
