// Package peaks implements delta-hysteresis peak picking and
// positive-to-negative zero-crossing detection on one-dimensional signals.
package peaks

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyInput indicates an empty input series.
	ErrEmptyInput = errors.New("peaks: empty input")
	// ErrInvalidDelta indicates a non-positive hysteresis sensitivity.
	ErrInvalidDelta = errors.New("peaks: delta must be > 0")
)

// Peak is a detected local extremum.
type Peak struct {
	Index int
	Value float64
}

// Detect scans series for local extrema using delta hysteresis: a point
// qualifies as a maximum only if the signal rises by at least delta before it
// and falls by at least delta after it, and symmetrically for minima.
//
// Maxima and minima are returned in order of appearance. Either slice may be
// empty for signals without sufficient excursion.
func Detect(series []float64, delta float64) (maxima, minima []Peak, err error) {
	if len(series) == 0 {
		return nil, nil, ErrEmptyInput
	}

	if delta <= 0 || math.IsNaN(delta) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidDelta, delta)
	}

	mn := math.Inf(1)
	mx := math.Inf(-1)
	mnPos := -1
	mxPos := -1
	lookForMax := true

	for i, v := range series {
		if v > mx {
			mx = v
			mxPos = i
		}

		if v < mn {
			mn = v
			mnPos = i
		}

		if lookForMax {
			if v < mx-delta {
				maxima = append(maxima, Peak{Index: mxPos, Value: mx})
				mn = v
				mnPos = i
				lookForMax = false
			}
		} else {
			if v > mn+delta {
				minima = append(minima, Peak{Index: mnPos, Value: mn})
				mx = v
				mxPos = i
				lookForMax = true
			}
		}
	}

	return maxima, minima, nil
}

// CrossingsPos2Neg returns the sorted indices i where the signal transitions
// from positive to non-positive between samples i and i+1.
func CrossingsPos2Neg(signal []float64) []int {
	var out []int

	for i := 0; i+1 < len(signal); i++ {
		if signal[i] > 0 && signal[i+1] <= 0 {
			out = append(out, i)
		}
	}

	return out
}
