package gait

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-gait/dsp/frame"
)

// Spatial holds the distance-normalized gait features. It is only available
// when the walked distance is configured.
type Spatial struct {
	// Velocity is the walked distance over the frame duration, in
	// distance units per second.
	Velocity float64

	// AvgStepLength is the step count per distance unit.
	AvgStepLength float64

	// AvgStrideLength is the average stride count per distance unit.
	AvgStrideLength float64
}

// Features holds the aggregate temporal gait description derived from heel
// strikes, plus optional spatial features.
type Features struct {
	// NumberOfSteps is the count of detected heel strikes.
	NumberOfSteps int

	// Cadence is steps per second over the frame duration.
	Cadence float64

	// StepDurations holds the successive inter-strike intervals in seconds.
	StepDurations []float64

	AvgStepDuration float64
	SDStepDurations float64

	// Strides holds the strike times split by parity: Strides[0] are the
	// even-indexed strikes, Strides[1] the odd-indexed ones. Alternating
	// strikes belong to alternating feet, so each side is one foot's
	// stride sequence.
	Strides [2][]float64

	// StrideDurations holds the successive stride intervals per side.
	StrideDurations [2][]float64

	// AvgNumberOfStrides is the mean stride count across both sides.
	AvgNumberOfStrides float64

	AvgStrideDuration float64
	SDStrideDurations float64

	// StepRegularity, StrideRegularity and Symmetry come from the
	// autocorrelation of the vertical axis at lags matched to the measured
	// average durations.
	StepRegularity   float64
	StrideRegularity float64
	Symmetry         float64

	// Spatial is nil unless a walked distance was configured.
	Spatial *Spatial
}

// Gait derives the aggregate temporal gait features of a walking frame:
// heel strikes, step and stride durations with their statistics, cadence,
// and regularity read from the vertical-axis autocorrelation at lags
// matched to the measured average step and stride durations. If a walked
// distance is configured, spatial features are attached.
//
// Fewer than four heel strikes yields [ErrInsufficientData], as both sides
// need two strikes for a stride interval.
func (p *Processor) Gait(f *frame.Frame) (Features, error) {
	strikes, err := p.HeelStrikes(f)
	if err != nil {
		return Features{}, err
	}

	if len(strikes.Times) < 4 {
		return Features{}, fmt.Errorf("%w: %d heel strikes, need at least 4", ErrInsufficientData, len(strikes.Times))
	}

	out := Features{
		NumberOfSteps: len(strikes.Times),
		StepDurations: diffs(strikes.Times),
	}

	out.AvgStepDuration = stat.Mean(out.StepDurations, nil)
	out.SDStepDurations = stat.PopStdDev(out.StepDurations, nil)

	duration := f.Duration()
	out.Cadence = float64(out.NumberOfSteps) / duration

	for i, t := range strikes.Times {
		out.Strides[i%2] = append(out.Strides[i%2], t)
	}

	// Stride statistics are averaged across the two sides, not pooled:
	// each side gets its own mean and deviation first, keeping a slow foot
	// from inflating the spread of the other.
	var sideMean, sideSD [2]float64

	for side := range out.Strides {
		out.StrideDurations[side] = diffs(out.Strides[side])
		sideMean[side] = stat.Mean(out.StrideDurations[side], nil)
		sideSD[side] = stat.PopStdDev(out.StrideDurations[side], nil)
	}

	out.AvgNumberOfStrides = float64(len(out.Strides[0])+len(out.Strides[1])) / 2
	out.AvgStrideDuration = (sideMean[0] + sideMean[1]) / 2
	out.SDStrideDurations = (sideSD[0] + sideSD[1]) / 2

	stepLag := durationLag(out.AvgStepDuration)
	strideLag := durationLag(out.AvgStrideDuration)

	out.StepRegularity, out.StrideRegularity, out.Symmetry, err =
		p.GaitRegularitySymmetry(f.Y, stepLag, strideLag)
	if err != nil {
		return Features{}, err
	}

	if p.cfg.Distance > 0 {
		out.Spatial = &Spatial{
			Velocity:        p.cfg.Distance / duration,
			AvgStepLength:   float64(out.NumberOfSteps) / p.cfg.Distance,
			AvgStrideLength: out.AvgNumberOfStrides / p.cfg.Distance,
		}
	}

	return out, nil
}

// diffs returns the successive differences of a sequence.
func diffs(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}

	out := make([]float64, len(x)-1)
	for i := range out {
		out[i] = x[i+1] - x[i]
	}

	return out
}

// durationLag converts an average event duration in seconds to a positive
// integer autocorrelation lag.
func durationLag(avgDuration float64) int {
	if avgDuration <= 0 {
		return 1
	}

	lag := int(math.Round(1 / avgDuration))
	if lag < 1 {
		lag = 1
	}

	return lag
}
