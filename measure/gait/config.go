package gait

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gait/dsp/wavelet"
)

// Band is a frequency band in Hz with inclusive lower and exclusive upper
// edge, as mapped onto FFT bins by the freeze detector.
type Band struct {
	Low  float64
	High float64
}

// PeakRateUnit selects the unit of [Processor.FrequencyOfPeaks] results.
type PeakRateUnit int

const (
	// PerSample reports the reciprocal of the mean inter-peak spacing in
	// sample units, matching the published formulation. Multiply by the
	// sampling rate to obtain Hz.
	PerSample PeakRateUnit = iota
	// Hertz converts the per-sample rate to cycles per second.
	Hertz
)

// Config bundles the physiological and signal constants of the pipeline.
// It is a value type: configured once at processor construction and never
// mutated afterwards.
//
// The defaults follow the pilot-study parameterization: 100 Hz sampling,
// 256-sample freeze windows, a 0.5-3 Hz locomotor band against a 3-8 Hz
// freeze band, and a 4th-order 2 Hz Butterworth low-pass for heel strikes.
type Config struct {
	// SampleRate is the sampling frequency in Hz that frames are resampled
	// to for spectral analysis.
	SampleRate float64

	// CutoffFrequency is the heel-strike low-pass cutoff in Hz.
	CutoffFrequency float64

	// FilterOrder is the processor-level filter order. Distinct from Order,
	// which the heel-strike Butterworth uses.
	FilterOrder int

	// Window is the freeze-detector FFT window length in samples. Must be a
	// power of two for the FFT backend.
	Window int

	// LowerFrequency and UpperFrequency bound the analysis range in Hz.
	LowerFrequency float64
	UpperFrequency float64

	// StepSize is the freeze-detector window hop in samples.
	StepSize int

	// StartOffset and EndOffset are the sample counts trimmed from each end
	// by the peak-frequency estimator to suppress edge artifacts.
	StartOffset int
	EndOffset   int

	// Delta is the hysteresis sensitivity of peak detection.
	Delta float64

	// LocoBand and FreezeBand are the locomotor and freeze frequency bands.
	LocoBand   Band
	FreezeBand Band

	// StrideFraction scales the interpeak estimate into the deceleration
	// window of the direction estimator.
	StrideFraction float64

	// Order is the Butterworth order used by heel-strike filtering.
	Order int

	// Threshold is the fraction of the maximum filtered amplitude a
	// candidate heel strike must exceed.
	Threshold float64

	// Distance is the traversed distance in meters. Zero leaves the
	// distance-normalized gait features unset.
	Distance float64

	// StepPeriod and StridePeriod are the default autocorrelation lag
	// indices of the lag-indexed regularity computation.
	StepPeriod   int
	StridePeriod int

	// Wavelet and WaveletLevel parameterize the gait speed decomposition.
	Wavelet      string
	WaveletLevel int

	// PeakRateUnit selects the FrequencyOfPeaks output unit.
	PeakRateUnit PeakRateUnit
}

// DefaultConfig returns the pilot-study defaults. Band and offset defaults
// are fresh values per call, never shared.
func DefaultConfig() Config {
	return Config{
		SampleRate:      100,
		CutoffFrequency: 2,
		FilterOrder:     2,
		Window:          256,
		LowerFrequency:  2,
		UpperFrequency:  10,
		StepSize:        50,
		StartOffset:     100,
		EndOffset:       100,
		Delta:           0.5,
		LocoBand:        Band{Low: 0.5, High: 3},
		FreezeBand:      Band{Low: 3, High: 8},
		StrideFraction:  1.0 / 8.0,
		Order:           4,
		Threshold:       0.5,
		StepPeriod:      2,
		StridePeriod:    1,
		Wavelet:         "db3",
		WaveletLevel:    6,
	}
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithSampleRate sets the analysis sampling frequency in Hz.
func WithSampleRate(rate float64) Option {
	return func(cfg *Config) { cfg.SampleRate = rate }
}

// WithCutoffFrequency sets the heel-strike low-pass cutoff in Hz.
func WithCutoffFrequency(cutoff float64) Option {
	return func(cfg *Config) { cfg.CutoffFrequency = cutoff }
}

// WithWindow sets the freeze-detector window length in samples.
func WithWindow(window int) Option {
	return func(cfg *Config) { cfg.Window = window }
}

// WithStepSize sets the freeze-detector window hop in samples.
func WithStepSize(step int) Option {
	return func(cfg *Config) { cfg.StepSize = step }
}

// WithOffsets sets the start and end trim of the peak-frequency estimator.
func WithOffsets(start, end int) Option {
	return func(cfg *Config) {
		cfg.StartOffset = start
		cfg.EndOffset = end
	}
}

// WithDelta sets the peak-detection hysteresis sensitivity.
func WithDelta(delta float64) Option {
	return func(cfg *Config) { cfg.Delta = delta }
}

// WithLocoBand sets the locomotor frequency band.
func WithLocoBand(b Band) Option {
	return func(cfg *Config) { cfg.LocoBand = b }
}

// WithFreezeBand sets the freeze frequency band.
func WithFreezeBand(b Band) Option {
	return func(cfg *Config) { cfg.FreezeBand = b }
}

// WithStrideFraction sets the deceleration-window fraction of the direction
// estimator.
func WithStrideFraction(fraction float64) Option {
	return func(cfg *Config) { cfg.StrideFraction = fraction }
}

// WithOrder sets the heel-strike Butterworth order.
func WithOrder(order int) Option {
	return func(cfg *Config) { cfg.Order = order }
}

// WithThreshold sets the heel-strike amplitude threshold fraction.
func WithThreshold(threshold float64) Option {
	return func(cfg *Config) { cfg.Threshold = threshold }
}

// WithDistance sets the traversed distance in meters, enabling the
// distance-normalized length and velocity features.
func WithDistance(distance float64) Option {
	return func(cfg *Config) { cfg.Distance = distance }
}

// WithPeriods sets the default step and stride autocorrelation lag indices.
func WithPeriods(stepPeriod, stridePeriod int) Option {
	return func(cfg *Config) {
		cfg.StepPeriod = stepPeriod
		cfg.StridePeriod = stridePeriod
	}
}

// WithWavelet sets the wavelet family and decomposition level of the speed
// estimator.
func WithWavelet(name string, level int) Option {
	return func(cfg *Config) {
		cfg.Wavelet = name
		cfg.WaveletLevel = level
	}
}

// WithPeakRateUnit selects the FrequencyOfPeaks output unit.
func WithPeakRateUnit(unit PeakRateUnit) Option {
	return func(cfg *Config) { cfg.PeakRateUnit = unit }
}

// Validate checks every parameter against its valid domain and reports the
// first violation wrapped in [ErrInvalidConfig].
func (c Config) Validate() error {
	if c.SampleRate <= 0 || math.IsNaN(c.SampleRate) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, c.SampleRate)
	}

	nyquist := c.SampleRate / 2

	if c.Window <= 0 || c.Window&(c.Window-1) != 0 {
		return fmt.Errorf("%w: window %d must be a positive power of two", ErrInvalidConfig, c.Window)
	}

	if c.StepSize <= 0 {
		return fmt.Errorf("%w: step size %d", ErrInvalidConfig, c.StepSize)
	}

	if c.Delta <= 0 || math.IsNaN(c.Delta) {
		return fmt.Errorf("%w: delta %v", ErrInvalidConfig, c.Delta)
	}

	if c.StartOffset < 0 || c.EndOffset < 0 {
		return fmt.Errorf("%w: offsets [%d, %d]", ErrInvalidConfig, c.StartOffset, c.EndOffset)
	}

	if c.CutoffFrequency <= 0 || c.CutoffFrequency >= nyquist {
		return fmt.Errorf("%w: cutoff %v outside (0, %v)", ErrInvalidConfig, c.CutoffFrequency, nyquist)
	}

	if c.FilterOrder <= 0 || c.Order <= 0 {
		return fmt.Errorf("%w: filter orders %d/%d", ErrInvalidConfig, c.FilterOrder, c.Order)
	}

	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v outside (0, 1]", ErrInvalidConfig, c.Threshold)
	}

	if c.StrideFraction <= 0 || c.StrideFraction > 1 {
		return fmt.Errorf("%w: stride fraction %v outside (0, 1]", ErrInvalidConfig, c.StrideFraction)
	}

	if c.LowerFrequency <= 0 || c.UpperFrequency <= c.LowerFrequency || c.UpperFrequency > nyquist {
		return fmt.Errorf("%w: frequency range [%v, %v] outside (0, %v]",
			ErrInvalidConfig, c.LowerFrequency, c.UpperFrequency, nyquist)
	}

	for _, band := range []struct {
		name string
		b    Band
	}{
		{"locomotor band", c.LocoBand},
		{"freeze band", c.FreezeBand},
	} {
		if band.b.Low <= 0 || band.b.High <= band.b.Low || band.b.High > nyquist {
			return fmt.Errorf("%w: %s [%v, %v] outside (0, %v]",
				ErrInvalidConfig, band.name, band.b.Low, band.b.High, nyquist)
		}

		// The low edge must map to bin 1 or above once quantized by the
		// window's frequency resolution.
		if fRes := c.SampleRate / float64(c.Window); band.b.Low < fRes {
			return fmt.Errorf("%w: %s low edge %v below frequency resolution %v",
				ErrInvalidConfig, band.name, band.b.Low, fRes)
		}
	}

	if c.Distance < 0 {
		return fmt.Errorf("%w: distance %v", ErrInvalidConfig, c.Distance)
	}

	if c.StepPeriod < 1 || c.StridePeriod < 1 {
		return fmt.Errorf("%w: lag indices %d/%d", ErrInvalidConfig, c.StepPeriod, c.StridePeriod)
	}

	if _, err := wavelet.ByName(c.Wavelet); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// The speed formula weighs six detail bands.
	if c.WaveletLevel < 6 {
		return fmt.Errorf("%w: wavelet level %d must be at least 6", ErrInvalidConfig, c.WaveletLevel)
	}

	return nil
}
