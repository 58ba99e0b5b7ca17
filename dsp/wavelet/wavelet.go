// Package wavelet implements multilevel discrete wavelet decomposition with
// Daubechies filter banks, as used by the wavelet-energy gait speed
// estimator.
package wavelet

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyInput indicates an empty input signal.
	ErrEmptyInput = errors.New("wavelet: empty input")
	// ErrUnknownWavelet indicates an unsupported wavelet name.
	ErrUnknownWavelet = errors.New("wavelet: unknown wavelet")
	// ErrInvalidLevel indicates a non-positive decomposition level.
	ErrInvalidLevel = errors.New("wavelet: level must be > 0")
	// ErrInsufficientLength indicates a signal too short for the requested
	// number of decomposition levels.
	ErrInsufficientLength = errors.New("wavelet: signal too short for level")
)

// Wavelet is an orthogonal analysis filter bank.
type Wavelet struct {
	Name  string
	DecLo []float64 // scaling (low-pass) decomposition filter
	DecHi []float64 // wavelet (high-pass) decomposition filter
}

// Daubechies scaling filters, lowest index first. The high-pass filters are
// derived by quadrature mirroring at construction.
var daubechiesLo = map[int][]float64{
	1: {
		0.7071067811865476, 0.7071067811865476,
	},
	2: {
		-0.12940952255092145, 0.22414386804185735,
		0.836516303737469, 0.48296291314469025,
	},
	3: {
		0.035226291882100656, -0.08544127388224149,
		-0.13501102001039084, 0.4598775021193313,
		0.8068915093133388, 0.3326705529509569,
	},
	4: {
		-0.010597401784997278, 0.032883011666982945,
		0.030841381835986965, -0.18703481171888114,
		-0.02798376941698385, 0.6308807679295904,
		0.7148465705525415, 0.23037781330885523,
	},
}

// Daubechies returns the Daubechies wavelet with the given number of
// vanishing moments (1 to 4). db1 is the Haar wavelet.
func Daubechies(moments int) (Wavelet, error) {
	lo, ok := daubechiesLo[moments]
	if !ok {
		return Wavelet{}, fmt.Errorf("%w: db%d", ErrUnknownWavelet, moments)
	}

	n := len(lo)
	hi := make([]float64, n)

	for k := 0; k < n; k++ {
		hi[k] = lo[n-1-k]
		if k%2 != 0 {
			hi[k] = -hi[k]
		}
	}

	return Wavelet{
		Name:  fmt.Sprintf("db%d", moments),
		DecLo: lo,
		DecHi: hi,
	}, nil
}

// ByName resolves "haar" or "db1".."db4".
func ByName(name string) (Wavelet, error) {
	switch name {
	case "haar", "db1":
		return Daubechies(1)
	case "db2":
		return Daubechies(2)
	case "db3":
		return Daubechies(3)
	case "db4":
		return Daubechies(4)
	default:
		return Wavelet{}, fmt.Errorf("%w: %q", ErrUnknownWavelet, name)
	}
}

// Decomposition holds the result of a multilevel DWT. Details is ordered
// finest first: Details[0] is the level-1 detail band.
type Decomposition struct {
	Approx  []float64
	Details [][]float64
}

// Levels returns the number of decomposition levels.
func (d *Decomposition) Levels() int {
	return len(d.Details)
}

// DetailEnergies returns the per-level mean squared detail coefficient,
// finest level first.
func (d *Decomposition) DetailEnergies() []float64 {
	out := make([]float64, len(d.Details))

	for i, band := range d.Details {
		sum := 0.0
		for _, c := range band {
			sum += c * c
		}

		out[i] = sum / float64(len(band))
	}

	return out
}

// MaxLevel returns the deepest useful decomposition level for a signal of
// length n with the given filter length.
func MaxLevel(n, filterLen int) int {
	if n < filterLen || filterLen < 2 {
		return 0
	}

	return int(math.Floor(math.Log2(float64(n) / float64(filterLen-1))))
}

// Wavedec decomposes the signal into level detail bands and one approximation
// band, halving the band length per level with symmetric boundary extension.
func Wavedec(signal []float64, w Wavelet, level int) (*Decomposition, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	if level <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	if maxLevel := MaxLevel(len(signal), len(w.DecLo)); level > maxLevel {
		return nil, fmt.Errorf("%w: %d samples support %d levels, requested %d",
			ErrInsufficientLength, len(signal), maxLevel, level)
	}

	dec := &Decomposition{
		Details: make([][]float64, level),
	}

	approx := signal
	for l := 0; l < level; l++ {
		a, d := dwtStep(approx, w)
		dec.Details[l] = d
		approx = a
	}

	dec.Approx = approx

	return dec, nil
}

// dwtStep runs one analysis level: symmetric extension, filtering with the
// low- and high-pass banks, and downsampling by two.
func dwtStep(x []float64, w Wavelet) (approx, detail []float64) {
	n := len(x)
	m := len(w.DecLo)
	pad := m - 1

	ext := symmetricExtend(x, pad)

	outLen := (n + m - 1) / 2
	approx = make([]float64, outLen)
	detail = make([]float64, outLen)

	for i := 0; i < outLen; i++ {
		base := 2*i + m
		var lo, hi float64

		for k := 0; k < m; k++ {
			v := ext[base-k]
			lo += w.DecLo[k] * v
			hi += w.DecHi[k] * v
		}

		approx[i] = lo
		detail[i] = hi
	}

	return approx, detail
}

// symmetricExtend pads x with pad samples on each side by half-sample
// symmetric reflection (edge value repeated).
func symmetricExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)

	for i := range ext {
		j := i - pad

		for j < 0 || j >= n {
			if j < 0 {
				j = -j - 1
			}

			if j >= n {
				j = 2*n - 1 - j
			}
		}

		ext[i] = x[j]
	}

	return ext
}
