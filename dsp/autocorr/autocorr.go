// Package autocorr computes positive-lag autocorrelation sequences used by
// the gait regularity and symmetry analyzers.
//
// Two variants are provided. [Unbiased] demeans the signal and normalizes by
// variance and lag count, so the zero-lag coefficient is exactly 1 and later
// coefficients are comparable across lags. [Coefficients] exposes the raw
// positive-lag sequence with optional bias correction and zero-lag
// normalization, matching the lag-indexed regularity computation.
package autocorr

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

var (
	// ErrEmptyInput indicates an empty input signal.
	ErrEmptyInput = errors.New("autocorr: empty input")
	// ErrZeroVariance indicates a constant signal whose autocorrelation is
	// undefined after normalization.
	ErrZeroVariance = errors.New("autocorr: zero-variance signal")
)

// Unbiased returns the autocorrelation of the demeaned signal over lags
// 0..n-1, normalized by the signal variance and the per-lag sample count
// (n - lag). The zero-lag coefficient is exactly 1.
func Unbiased(signal []float64) ([]float64, error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	mean := 0.0
	for _, v := range signal {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	variance := 0.0

	for i, v := range signal {
		centered[i] = v - mean
		variance += centered[i] * centered[i]
	}
	variance /= float64(n)

	if variance == 0 {
		return nil, ErrZeroVariance
	}

	r, err := positiveLags(centered)
	if err != nil {
		return nil, err
	}

	for k := range r {
		r[k] /= variance * float64(n-k)
	}

	return r, nil
}

// Coefficients returns the positive-lag autocorrelation of the signal.
//
// With unbias, each lag k is divided by (n - k) to correct the shrinking
// overlap of the correlation window. With normalize, the sequence is divided
// by its zero-lag value so coefficients express relative cyclic similarity.
func Coefficients(signal []float64, unbias, normalize bool) ([]float64, error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	r, err := positiveLags(signal)
	if err != nil {
		return nil, err
	}

	if unbias {
		for k := range r {
			r[k] /= float64(n - k)
		}
	}

	if normalize {
		zeroLag := r[0]
		if zeroLag == 0 {
			return nil, ErrZeroVariance
		}

		for k := range r {
			r[k] /= zeroLag
		}
	}

	return r, nil
}

// positiveLags computes lags 0..n-1 of the linear autocorrelation via FFT:
// IFFT(FFT(x) * conj(FFT(x))), zero-padded to avoid circular wrap.
func positiveLags(signal []float64) ([]float64, error) {
	n := len(signal)
	fftSize := nextPowerOf2(2*n - 1)

	padded := make([]complex128, fftSize)
	for i, v := range signal {
		padded[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("autocorr: fft plan: %w", err)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("autocorr: forward fft: %w", err)
	}

	for i, c := range freq {
		re := real(c)
		im := imag(c)
		freq[i] = complex(re*re+im*im, 0)
	}

	timeDomain := make([]complex128, fftSize)
	if err := plan.Inverse(timeDomain, freq); err != nil {
		return nil, fmt.Errorf("autocorr: inverse fft: %w", err)
	}

	out := make([]float64, n)
	for k := range out {
		out[k] = real(timeDomain[k])
	}

	return out, nil
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
