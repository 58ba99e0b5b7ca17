package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-gait/dsp/interp"
)

var (
	// ErrEmptyFrame indicates a frame with no samples.
	ErrEmptyFrame = errors.New("frame: empty frame")
	// ErrLengthMismatch indicates axis slices of differing lengths.
	ErrLengthMismatch = errors.New("frame: axis length mismatch")
	// ErrInvalidRate indicates a non-positive sampling rate.
	ErrInvalidRate = errors.New("frame: invalid sample rate")
)

// Frame is an ordered, uniformly sampled triaxial acceleration recording.
//
// X, Y and Z hold the per-axis linear acceleration. MagSumAcc holds the
// Euclidean resultant magnitude per sample, computed once at construction.
// Heel-strike oriented methods use the sum-of-absolutes resultant instead,
// available through [Frame.SumAbs].
//
// All slices have equal length and the samples are assumed gap-free at
// SampleRate. Frames are treated as read-only after construction.
type Frame struct {
	X, Y, Z    []float64
	MagSumAcc  []float64
	SampleRate float64
}

// New validates the axis data and builds a frame with its resultant
// magnitude column.
func New(x, y, z []float64, sampleRate float64) (*Frame, error) {
	if len(x) == 0 {
		return nil, ErrEmptyFrame
	}

	if len(y) != len(x) || len(z) != len(x) {
		return nil, fmt.Errorf("%w: x=%d y=%d z=%d", ErrLengthMismatch, len(x), len(y), len(z))
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, sampleRate)
	}

	mag := make([]float64, len(x))
	for i := range x {
		mag[i] = math.Sqrt(x[i]*x[i] + y[i]*y[i] + z[i]*z[i])
	}

	return &Frame{
		X:          x,
		Y:          y,
		Z:          z,
		MagSumAcc:  mag,
		SampleRate: sampleRate,
	}, nil
}

// Len returns the number of samples in the frame.
func (f *Frame) Len() int {
	return len(f.X)
}

// Duration returns the recording length in seconds.
func (f *Frame) Duration() float64 {
	return float64(f.Len()) / f.SampleRate
}

// SumAbs returns the |x|+|y|+|z| resultant series.
func (f *Frame) SumAbs() []float64 {
	out := make([]float64, f.Len())
	for i := range out {
		out[i] = math.Abs(f.X[i]) + math.Abs(f.Y[i]) + math.Abs(f.Z[i])
	}

	return out
}

// Resample returns a copy of the frame uniformly resampled to targetRate
// using linear interpolation. When targetRate equals the frame rate the
// receiver is returned unchanged, so the operation is idempotent.
func (f *Frame) Resample(targetRate float64) (*Frame, error) {
	if targetRate <= 0 || math.IsNaN(targetRate) || math.IsInf(targetRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, targetRate)
	}

	if targetRate == f.SampleRate {
		return f, nil
	}

	n := f.Len()
	duration := float64(n-1) / f.SampleRate
	m := int(math.Round(duration*targetRate)) + 1
	if m < 1 {
		m = 1
	}

	x := resampleLinear(f.X, f.SampleRate, targetRate, m)
	y := resampleLinear(f.Y, f.SampleRate, targetRate, m)
	z := resampleLinear(f.Z, f.SampleRate, targetRate, m)

	return New(x, y, z, targetRate)
}

// resampleLinear interpolates src onto a uniform grid of m samples spaced at
// 1/targetRate, clamping at both edges.
func resampleLinear(src []float64, srcRate, targetRate float64, m int) []float64 {
	out := make([]float64, m)
	last := len(src) - 1

	for i := range out {
		pos := float64(i) / targetRate * srcRate
		j := int(pos)

		if j >= last {
			out[i] = src[last]
			continue
		}

		frac := pos - float64(j)
		out[i] = interp.Linear(src[j], src[j+1], frac)
	}

	return out
}
