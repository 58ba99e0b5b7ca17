package gait

import (
	"fmt"

	"github.com/cwbudde/algo-gait/dsp/frame"
	"github.com/cwbudde/algo-gait/dsp/peaks"
)

// FrequencyOfPeaks estimates the rate of oscillation peaks on the x axis.
//
// StartOffset and EndOffset samples are trimmed from the ends to suppress
// edge artifacts before delta-hysteresis peak detection. The result is the
// reciprocal of the mean inter-peak spacing, by default in per-sample units
// as published; configure [Hertz] as PeakRateUnit for cycles per second.
//
// Fewer than two detected peaks yields [ErrInsufficientData].
func (p *Processor) FrequencyOfPeaks(f *frame.Frame) (float64, error) {
	n := f.Len()

	trimmed := n - p.cfg.StartOffset - p.cfg.EndOffset
	if trimmed < 2 {
		return 0, fmt.Errorf("%w: %d samples left after trimming offsets [%d, %d]",
			ErrInsufficientData, trimmed, p.cfg.StartOffset, p.cfg.EndOffset)
	}

	data := f.X[p.cfg.StartOffset : n-p.cfg.EndOffset]

	maxima, _, err := peaks.Detect(data, p.cfg.Delta)
	if err != nil {
		return 0, fmt.Errorf("gait: frequency of peaks: %w", err)
	}

	if len(maxima) < 2 {
		return 0, fmt.Errorf("%w: %d peaks detected, need at least 2", ErrInsufficientData, len(maxima))
	}

	// Mean of successive position differences telescopes to the span over
	// the interval count.
	span := maxima[len(maxima)-1].Index - maxima[0].Index
	meanSpacing := float64(span) / float64(len(maxima)-1)

	rate := 1 / meanSpacing
	if p.cfg.PeakRateUnit == Hertz {
		rate *= p.cfg.SampleRate
	}

	return rate, nil
}
