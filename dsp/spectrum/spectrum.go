// Package spectrum provides the frequency-domain primitives used by the gait
// extractors: two-sided power spectra and spectral interpeak-interval
// estimation.
package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyInput indicates an empty input signal.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrInvalidSize indicates an unsupported FFT size.
	ErrInvalidSize = errors.New("spectrum: invalid fft size")
	// ErrInvalidRate indicates a non-positive sampling rate.
	ErrInvalidRate = errors.New("spectrum: invalid sample rate")
	// ErrNoDominantFrequency indicates a signal without a usable spectral peak.
	ErrNoDominantFrequency = errors.New("spectrum: no dominant frequency")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Power returns the two-sided power spectrum |Y[k]|^2 / fftSize of the signal
// truncated or zero-padded to fftSize points.
//
// fftSize must be a power of two for the FFT backend. Squared magnitudes are
// unpacked with SIMD kernels when available; scratch buffers are pooled, so in
// steady state only the output slice is allocated.
func Power(signal []float64, fftSize int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d (power of two required)", ErrInvalidSize, fftSize)
	}

	in := make([]complex128, fftSize)

	n := len(signal)
	if n > fftSize {
		n = fftSize
	}

	for i := 0; i < n; i++ {
		in[i] = complex(signal[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	power := make([]float64, fftSize)
	re, im, buf := getScratch(fftSize)

	for i, c := range out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(power, re, im)
	putScratch(buf)

	inv := 1 / float64(fftSize)
	for i := range power {
		power[i] *= inv
	}

	return power, nil
}

// Interpeak estimates the dominant periodicity of the signal in samples from
// the largest non-DC spectral magnitude: round(sampleRate / peakFrequency).
//
// The result is always at least 1. Signals without any spectral content above
// DC yield [ErrNoDominantFrequency].
func Interpeak(signal []float64, sampleRate float64) (int, error) {
	if len(signal) < 2 {
		return 0, ErrEmptyInput
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, sampleRate)
	}

	// A constant signal has no periodicity to estimate.
	lo, hi := signal[0], signal[0]
	for _, v := range signal {
		if v < lo {
			lo = v
		}

		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		return 0, ErrNoDominantFrequency
	}

	fftSize := nextPowerOf2(len(signal))

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bestBin := 0
	bestMag := 0.0

	for k := 1; k <= fftSize/2; k++ {
		re := real(out[k])
		im := imag(out[k])

		mag := re*re + im*im
		if mag > bestMag {
			bestMag = mag
			bestBin = k
		}
	}

	if bestBin == 0 || bestMag == 0 {
		return 0, ErrNoDominantFrequency
	}

	interpeak := int(math.Round(float64(fftSize) / float64(bestBin)))
	if interpeak < 1 {
		interpeak = 1
	}

	return interpeak, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
