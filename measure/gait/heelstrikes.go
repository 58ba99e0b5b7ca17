package gait

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-gait/dsp/frame"
	"github.com/cwbudde/algo-gait/dsp/filter/lowpass"
	"github.com/cwbudde/algo-gait/dsp/peaks"
	"github.com/cwbudde/algo-gait/dsp/spectrum"
)

// HeelStrikeResult holds detected heel strikes as parallel, strictly
// increasing sequences.
type HeelStrikeResult struct {
	// Times holds strike times in seconds, re-based so the first strike is
	// exactly 0.
	Times []float64

	// Indices holds the strike sample indices into the frame.
	Indices []int
}

// HeelStrikes locates initial-contact events in the walking signal.
//
// The detector runs a fixed sequence over the sum-of-absolutes resultant:
// demean, zero-phase Butterworth low-pass (Order, CutoffFrequency),
// positive-to-negative zero crossings delimiting candidate segments, segment
// maxima kept only above Threshold of the filtered peak amplitude, and a
// final refinement of each candidate to the raw-signal maximum within half a
// spectral interpeak interval.
//
// Fewer than two zero crossings or no candidate above threshold yields
// [ErrInsufficientData]; a signal without dominant periodicity yields
// [ErrDegenerateSignal].
func (p *Processor) HeelStrikes(f *frame.Frame) (HeelStrikeResult, error) {
	data := f.SumAbs()

	mean := stat.Mean(data, nil)
	for i := range data {
		data[i] -= mean
	}

	filtered, err := lowpass.FiltFilt(data, p.cfg.SampleRate, p.cfg.CutoffFrequency, p.cfg.Order)
	if err != nil {
		return HeelStrikeResult{}, fmt.Errorf("gait: heel strikes: %w", err)
	}

	transitions := peaks.CrossingsPos2Neg(filtered)
	if len(transitions) < 2 {
		return HeelStrikeResult{}, fmt.Errorf("%w: %d zero crossings, need at least 2",
			ErrInsufficientData, len(transitions))
	}

	maxFiltered := filtered[0]
	for _, v := range filtered {
		if v > maxFiltered {
			maxFiltered = v
		}
	}

	threshold := p.cfg.Threshold * maxFiltered

	var smoothed []int

	for i := 1; i < len(transitions); i++ {
		segmentMax := argmax(filtered, transitions[i-1], transitions[i])
		if filtered[segmentMax] > threshold {
			smoothed = append(smoothed, segmentMax)
		}
	}

	if len(smoothed) == 0 {
		return HeelStrikeResult{}, fmt.Errorf("%w: no strike candidate above threshold %v",
			ErrInsufficientData, threshold)
	}

	interpeak, err := spectrum.Interpeak(data, p.cfg.SampleRate)
	if err != nil {
		if errors.Is(err, spectrum.ErrNoDominantFrequency) {
			return HeelStrikeResult{}, fmt.Errorf("%w: no dominant periodicity", ErrDegenerateSignal)
		}

		return HeelStrikeResult{}, fmt.Errorf("gait: heel strikes: %w", err)
	}

	decel := interpeak / 2
	if decel < 1 {
		decel = 1
	}

	indices := make([]int, 0, len(smoothed))

	for _, ismooth := range smoothed {
		lo := ismooth - decel
		if lo < 0 {
			lo = 0
		}

		hi := ismooth + decel
		if hi > len(data) {
			hi = len(data)
		}

		indices = append(indices, argmax(data, lo, hi))
	}

	// Refinement can collapse neighboring candidates onto one raw-signal
	// peak; keep the series strictly increasing.
	sort.Ints(indices)
	indices = dedupe(indices)

	times := make([]float64, len(indices))
	for i, idx := range indices {
		times[i] = float64(idx-indices[0]) / p.cfg.SampleRate
	}

	return HeelStrikeResult{Times: times, Indices: indices}, nil
}

// argmax returns the index of the maximum of data[lo:hi].
func argmax(data []float64, lo, hi int) int {
	best := lo
	for i := lo + 1; i < hi; i++ {
		if data[i] > data[best] {
			best = i
		}
	}

	return best
}

func dedupe(sorted []int) []int {
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}
