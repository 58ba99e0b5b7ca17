// Package lowpass implements zero-phase Butterworth low-pass filtering for
// the heel-strike detector.
//
// The filter is designed as a cascade of second-order sections (Butterworth Q
// ladder, bilinear-transform lowpass per section) and applied forward and
// backward, which cancels the group delay and doubles the effective
// attenuation slope.
package lowpass

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyInput indicates an empty input signal.
	ErrEmptyInput = errors.New("lowpass: empty input")
	// ErrInvalidOrder indicates a non-positive filter order.
	ErrInvalidOrder = errors.New("lowpass: order must be > 0")
	// ErrInvalidCutoff indicates a cutoff outside (0, nyquist).
	ErrInvalidCutoff = errors.New("lowpass: cutoff must lie in (0, nyquist)")
)

// Coefficients holds the transfer function coefficients of one second-order
// section, normalized so a0 = 1. First-order tail sections set B2 = A2 = 0.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section is a single biquad with internal state, processed in Direct Form II
// Transposed.
type Section struct {
	Coefficients

	d0, d1 float64
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place.
func (s *Section) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// Reset clears the section state.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// Butterworth designs a lowpass Butterworth cascade of the given order.
// For odd orders the final section is first-order.
func Butterworth(cutoff float64, order int, sampleRate float64) ([]Coefficients, error) {
	if order <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	if sampleRate <= 0 || cutoff <= 0 || cutoff >= sampleRate/2 ||
		math.IsNaN(cutoff) || math.IsNaN(sampleRate) {
		return nil, fmt.Errorf("%w: cutoff=%v sampleRate=%v", ErrInvalidCutoff, cutoff, sampleRate)
	}

	sections := make([]Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, lowpassBiquad(cutoff, q, sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, firstOrderLP(cutoff, sampleRate))
	}

	return sections, nil
}

// FiltFilt applies a Butterworth lowpass of the given order and cutoff in a
// forward and a backward pass, yielding a zero-phase result of the same
// length as the input.
func FiltFilt(signal []float64, sampleRate, cutoff float64, order int) ([]float64, error) {
	coeffs, err := Butterworth(cutoff, order, sampleRate)
	if err != nil {
		return nil, err
	}

	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(signal))
	copy(out, signal)

	runCascade(out, coeffs)
	reverse(out)
	runCascade(out, coeffs)
	reverse(out)

	return out, nil
}

// runCascade processes buf through fresh (zero-state) sections in series.
func runCascade(buf []float64, coeffs []Coefficients) {
	for _, c := range coeffs {
		s := Section{Coefficients: c}
		s.ProcessBlock(buf)
	}
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// butterworthQ returns the quality factor for section index of a Butterworth
// cascade. index ranges over 0..(order/2 - 1).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}

	return 1 / (2 * s)
}

// lowpassBiquad designs a second-order lowpass section at freq with quality
// factor q via the bilinear transform.
func lowpassBiquad(freq, q, sampleRate float64) Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// firstOrderLP designs the first-order tail section used for odd orders.
func firstOrderLP(freq, sampleRate float64) Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return Coefficients{
		B0: k * norm,
		B1: k * norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}
}
