package gait

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-gait/dsp/frame"
	"github.com/cwbudde/algo-gait/dsp/wavelet"
)

// Weighting divisors of the six finest detail-band energies in the gait
// speed formula, from the short-time wavelet analysis the estimator encodes.
var speedWeights = [6]float64{5, 4, 3, 2, 1, 1}

// SpeedOfGait estimates gait speed from the detail-band energies of a
// discrete wavelet decomposition of the resultant-magnitude column.
//
// The configured wavelet (default db3) is decomposed WaveletLevel (default
// 6) times. Each of the six finest detail energies is divided by its
// sqrt(2)-scaled weight; the aggregate is
//
//	0.5 * sqrt(WEd1 + WEd2/2 + WEd3/3 + WEd4/4 + WEd5/5)
//
// The sixth weighted energy is computed but deliberately excluded from the
// aggregate, mirroring the published method.
//
// A frame too short for the configured decomposition depth yields
// [ErrInsufficientData].
func (p *Processor) SpeedOfGait(f *frame.Frame) (float64, error) {
	w, err := wavelet.ByName(p.cfg.Wavelet)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	dec, err := wavelet.Wavedec(f.MagSumAcc, w, p.cfg.WaveletLevel)
	if err != nil {
		if errors.Is(err, wavelet.ErrInsufficientLength) {
			return 0, fmt.Errorf("%w: %v", ErrInsufficientData, err)
		}

		return 0, fmt.Errorf("gait: speed of gait: %w", err)
	}

	energies := dec.DetailEnergies()

	var weighted [6]float64
	for i := range weighted {
		weighted[i] = energies[i] / (speedWeights[i] * math.Sqrt2)
	}

	sum := weighted[0]
	for i := 1; i < 5; i++ {
		sum += weighted[i] / float64(i+1)
	}

	return 0.5 * math.Sqrt(sum), nil
}
