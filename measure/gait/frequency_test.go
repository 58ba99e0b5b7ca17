package gait

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-gait/internal/testutil"
)

func TestFrequencyOfPeaksSine(t *testing.T) {
	// 2.5 Hz at 100 Hz puts a sample exactly on every crest, so the
	// inter-peak spacing is exactly 40 samples even after trimming.
	x := testutil.DeterministicSine(2.5, testRate, 1, 1200)
	f := mustFrame(t, x, x, x, testRate)

	rate, err := mustProcessor(t).FrequencyOfPeaks(f)
	if err != nil {
		t.Fatalf("FrequencyOfPeaks: %v", err)
	}

	if math.Abs(rate-1.0/40.0) > 1e-9 {
		t.Fatalf("rate = %v, want %v", rate, 1.0/40.0)
	}
}

func TestFrequencyOfPeaksHertz(t *testing.T) {
	x := testutil.DeterministicSine(2.5, testRate, 1, 1200)
	f := mustFrame(t, x, x, x, testRate)

	rate, err := mustProcessor(t, WithPeakRateUnit(Hertz)).FrequencyOfPeaks(f)
	if err != nil {
		t.Fatalf("FrequencyOfPeaks: %v", err)
	}

	if math.Abs(rate-2.5) > 1e-9 {
		t.Fatalf("rate = %v Hz, want 2.5", rate)
	}
}

func TestFrequencyOfPeaksWalk(t *testing.T) {
	f := walkFrame(t)

	rate, err := mustProcessor(t, WithPeakRateUnit(Hertz)).FrequencyOfPeaks(f)
	if err != nil {
		t.Fatalf("FrequencyOfPeaks: %v", err)
	}

	if math.Abs(rate-1.5) > 0.15 {
		t.Fatalf("rate = %v Hz, want about 1.5", rate)
	}
}

func TestFrequencyOfPeaksTooShort(t *testing.T) {
	// 150 samples leave nothing after the default 100+100 trim.
	x := testutil.DeterministicSine(2.5, testRate, 1, 150)
	f := mustFrame(t, x, x, x, testRate)

	_, err := mustProcessor(t).FrequencyOfPeaks(f)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("FrequencyOfPeaks = %v, want ErrInsufficientData", err)
	}
}

func TestFrequencyOfPeaksBelowDelta(t *testing.T) {
	// Amplitude under the hysteresis sensitivity yields no peaks.
	x := testutil.DeterministicSine(2.5, testRate, 0.3, 1200)
	f := mustFrame(t, x, x, x, testRate)

	_, err := mustProcessor(t).FrequencyOfPeaks(f)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("FrequencyOfPeaks = %v, want ErrInsufficientData", err)
	}
}
