package gait

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-gait/dsp/autocorr"
	"github.com/cwbudde/algo-gait/dsp/frame"
	"github.com/cwbudde/algo-gait/dsp/peaks"
)

// RegularitySymmetry holds per-axis step regularity, stride regularity and
// walk symmetry, in x, y, z order.
type RegularitySymmetry struct {
	StepRegularity   [3]float64
	StrideRegularity [3]float64
	WalkSymmetry     [3]float64
}

// WalkRegularitySymmetry measures cyclic consistency per axis from the
// unbiased autocorrelation curve: the second and third detected peaks are
// the step and stride regularity (the first is the zero-lag peak and is
// skipped), and walk symmetry is their difference.
//
// Fewer than three autocorrelation peaks on any axis yields
// [ErrInsufficientData]; a constant axis yields [ErrDegenerateSignal].
func (p *Processor) WalkRegularitySymmetry(f *frame.Frame) (RegularitySymmetry, error) {
	axes := [3][]float64{f.X, f.Y, f.Z}
	names := [3]string{"x", "y", "z"}

	var out RegularitySymmetry

	for i, axis := range axes {
		ac, err := autocorr.Unbiased(axis)
		if err != nil {
			if errors.Is(err, autocorr.ErrZeroVariance) {
				return RegularitySymmetry{}, fmt.Errorf("%w: constant %s axis", ErrDegenerateSignal, names[i])
			}

			return RegularitySymmetry{}, fmt.Errorf("gait: walk regularity: %s axis: %w", names[i], err)
		}

		maxima, _, err := peaks.Detect(ac, p.cfg.Delta)
		if err != nil {
			return RegularitySymmetry{}, fmt.Errorf("gait: walk regularity: %s axis: %w", names[i], err)
		}

		if len(maxima) < 3 {
			return RegularitySymmetry{}, fmt.Errorf("%w: %s axis has %d autocorrelation peaks, need 3",
				ErrInsufficientData, names[i], len(maxima))
		}

		step := maxima[1].Value
		stride := maxima[2].Value

		out.StepRegularity[i] = step
		out.StrideRegularity[i] = stride
		out.WalkSymmetry[i] = stride - step
	}

	return out, nil
}

// GaitRegularitySymmetry reads regularity directly from the bias-corrected,
// zero-lag-normalized autocorrelation of signal at two integer sample lags:
// stepPeriod for step regularity and stridePeriod for stride regularity.
// Symmetry is the absolute difference of the two coefficients.
//
// Non-positive lags fall back to the configured StepPeriod and StridePeriod.
// An autocorrelation shorter than the largest lag yields
// [ErrInsufficientData].
func (p *Processor) GaitRegularitySymmetry(signal []float64, stepPeriod, stridePeriod int) (stepRegularity, strideRegularity, symmetry float64, err error) {
	if stepPeriod <= 0 {
		stepPeriod = p.cfg.StepPeriod
	}

	if stridePeriod <= 0 {
		stridePeriod = p.cfg.StridePeriod
	}

	coefficients, err := autocorr.Coefficients(signal, true, true)
	if err != nil {
		switch {
		case errors.Is(err, autocorr.ErrEmptyInput):
			return 0, 0, 0, fmt.Errorf("%w: empty signal", ErrInsufficientData)
		case errors.Is(err, autocorr.ErrZeroVariance):
			return 0, 0, 0, fmt.Errorf("%w: zero-energy signal", ErrDegenerateSignal)
		default:
			return 0, 0, 0, fmt.Errorf("gait: gait regularity: %w", err)
		}
	}

	maxLag := stepPeriod
	if stridePeriod > maxLag {
		maxLag = stridePeriod
	}

	if len(coefficients) <= maxLag {
		return 0, 0, 0, fmt.Errorf("%w: %d autocorrelation coefficients, need %d",
			ErrInsufficientData, len(coefficients), maxLag+1)
	}

	stepRegularity = coefficients[stepPeriod]
	strideRegularity = coefficients[stridePeriod]
	symmetry = math.Abs(strideRegularity - stepRegularity)

	return stepRegularity, strideRegularity, symmetry, nil
}
