package gait

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-gait/dsp/frame"
	"github.com/cwbudde/algo-gait/dsp/spectrum"
)

// FreezeResult holds the windowed freeze-of-gait analysis. The three slices
// run in parallel, one entry per analysis window.
type FreezeResult struct {
	// WindowEnds holds the window end positions in resampled samples, a
	// time proxy for each entry.
	WindowEnds []int

	// FreezeIndex is the freeze-band to locomotor-band power ratio per
	// window.
	FreezeIndex []float64

	// LocomotionFreeze is the summed freeze- and locomotor-band power per
	// window, a gate for overall movement intensity.
	LocomotionFreeze []float64
}

// FreezeOfGait slides an FFT window across the vertical (y) axis and rates
// each window by the ratio of freeze-band to locomotor-band power, following
// the wearable freeze-of-gait analysis of Bächlin et al.
//
// The frame is first resampled to the configured sample rate. Windows of
// Window samples advance by StepSize, starting with the window ending at
// Window+1. Each window is demeaned, transformed at Window points, and its
// two-sided power spectrum integrated over the configured band bins.
//
// A frame shorter than one full window yields [ErrInsufficientData]; a
// window without locomotor-band energy yields [ErrDegenerateSignal] instead
// of a non-finite index.
func (p *Processor) FreezeOfGait(f *frame.Frame) (FreezeResult, error) {
	resampled, err := f.Resample(p.cfg.SampleRate)
	if err != nil {
		return FreezeResult{}, fmt.Errorf("gait: freeze of gait: %w", err)
	}

	data := resampled.Y
	window := p.cfg.Window

	if len(data) < window+2 {
		return FreezeResult{}, fmt.Errorf("%w: %d samples, need more than %d for one window",
			ErrInsufficientData, len(data), window+1)
	}

	fRes := p.cfg.SampleRate / float64(window)
	locoLow := int(p.cfg.LocoBand.Low / fRes)
	locoHigh := int(p.cfg.LocoBand.High / fRes)
	freezeLow := int(p.cfg.FreezeBand.Low / fRes)
	freezeHigh := int(p.cfg.FreezeBand.High / fRes)

	var result FreezeResult

	for jPos := window + 1; jPos < len(data); jPos += p.cfg.StepSize {
		segment := data[jPos-window : jPos]

		y := make([]float64, window)
		mean := stat.Mean(segment, nil)
		for i, v := range segment {
			y[i] = v - mean
		}

		pyy, err := spectrum.Power(y, window)
		if err != nil {
			return FreezeResult{}, fmt.Errorf("gait: freeze of gait: %w", err)
		}

		locoArea := bandArea(pyy[locoLow-1:locoHigh], p.cfg.SampleRate)
		freezeArea := bandArea(pyy[freezeLow-1:freezeHigh], p.cfg.SampleRate)

		if locoArea == 0 {
			return FreezeResult{}, fmt.Errorf("%w: zero locomotor-band energy in window ending at sample %d",
				ErrDegenerateSignal, jPos)
		}

		result.WindowEnds = append(result.WindowEnds, jPos)
		result.FreezeIndex = append(result.FreezeIndex, freezeArea/locoArea)
		result.LocomotionFreeze = append(result.LocomotionFreeze, freezeArea+locoArea)
	}

	return result, nil
}

// bandArea integrates a power-spectrum segment trapezoidally against the
// implied 1/sampleRate bin spacing.
func bandArea(segment []float64, sampleRate float64) float64 {
	if len(segment) < 2 {
		return 0
	}

	x := make([]float64, len(segment))
	for i := range x {
		x[i] = float64(i) / sampleRate
	}

	return integrate.Trapezoidal(x, segment)
}
