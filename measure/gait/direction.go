package gait

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-gait/dsp/frame"
	"github.com/cwbudde/algo-gait/dsp/spectrum"
)

// WalkDirectionPreheel estimates the dominant walk direction as a unit
// vector in x, y, z order.
//
// Just before each heel strike the body decelerates along the line of
// progression. The estimator refines each strike to the resultant-signal
// peak within half an interpeak interval, averages the raw acceleration over
// a StrideFraction-scaled window before each refined peak, averages those
// per-strike vectors, and negates the result so it points along the walk
// rather than against it.
//
// Strikes whose pre-peak windows are empty are skipped; all windows empty
// yields [ErrInsufficientData], and a zero mean vector yields
// [ErrDegenerateSignal].
func (p *Processor) WalkDirectionPreheel(f *frame.Frame) ([3]float64, error) {
	strikes, err := p.HeelStrikes(f)
	if err != nil {
		return [3]float64{}, err
	}

	data := f.SumAbs()

	mean := stat.Mean(data, nil)
	for i := range data {
		data[i] -= mean
	}

	interpeak, err := spectrum.Interpeak(data, p.cfg.SampleRate)
	if err != nil {
		if errors.Is(err, spectrum.ErrNoDominantFrequency) {
			return [3]float64{}, fmt.Errorf("%w: no dominant periodicity", ErrDegenerateSignal)
		}

		return [3]float64{}, fmt.Errorf("gait: walk direction: %w", err)
	}

	decel := int(math.Round(p.cfg.StrideFraction * float64(interpeak)))
	if decel < 1 {
		decel = 1
	}

	var (
		sum   [3]float64
		count int
	)

	for _, strike := range strikes.Indices {
		lo := strike - decel
		if lo < 0 {
			lo = 0
		}

		hi := strike + decel
		if hi > len(data) {
			hi = len(data)
		}

		ipeak := argmax(data, lo, hi)

		wlo := ipeak - decel
		if wlo < 0 {
			wlo = 0
		}

		if wlo >= ipeak {
			continue
		}

		sum[0] += stat.Mean(f.X[wlo:ipeak], nil)
		sum[1] += stat.Mean(f.Y[wlo:ipeak], nil)
		sum[2] += stat.Mean(f.Z[wlo:ipeak], nil)
		count++
	}

	if count == 0 {
		return [3]float64{}, fmt.Errorf("%w: no usable pre-strike deceleration windows", ErrInsufficientData)
	}

	// Deceleration opposes the direction of travel.
	var direction [3]float64
	for i := range direction {
		direction[i] = -sum[i] / float64(count)
	}

	norm := math.Sqrt(direction[0]*direction[0] + direction[1]*direction[1] + direction[2]*direction[2])
	if norm == 0 {
		return [3]float64{}, fmt.Errorf("%w: zero mean deceleration vector", ErrDegenerateSignal)
	}

	for i := range direction {
		direction[i] /= norm
	}

	return direction, nil
}
