package peaks

import (
	"errors"
	"math"
	"testing"
)

func TestDetectSineFindsAllCycles(t *testing.T) {
	const n = 1000

	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * 5 * float64(i) / n)
	}

	maxima, minima, err := Detect(series, 0.5)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if len(maxima) != 5 {
		t.Fatalf("maxima count: got %d, want 5", len(maxima))
	}

	if len(minima) != 5 {
		t.Fatalf("minima count: got %d, want 5", len(minima))
	}

	for _, p := range maxima {
		if math.Abs(p.Value-1) > 1e-3 {
			t.Fatalf("maximum value at %d: got %v, want ~1", p.Index, p.Value)
		}
	}

	// Successive maxima should be one period (200 samples) apart.
	for i := 1; i < len(maxima); i++ {
		spacing := maxima[i].Index - maxima[i-1].Index
		if spacing < 198 || spacing > 202 {
			t.Fatalf("maxima spacing: got %d, want ~200", spacing)
		}
	}
}

func TestDetectHysteresisIgnoresSmallRipples(t *testing.T) {
	// A single large bump with small ripple superimposed.
	series := make([]float64, 200)
	for i := range series {
		x := float64(i) / 199
		series[i] = math.Sin(math.Pi*x) + 0.05*math.Sin(40*math.Pi*x)
	}

	maxima, _, err := Detect(series, 0.3)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if len(maxima) != 1 {
		t.Fatalf("maxima count: got %d, want 1 (ripple below delta)", len(maxima))
	}
}

func TestDetectEmptyInput(t *testing.T) {
	_, _, err := Detect(nil, 0.5)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestDetectInvalidDelta(t *testing.T) {
	_, _, err := Detect([]float64{1, 2, 1}, 0)
	if !errors.Is(err, ErrInvalidDelta) {
		t.Fatalf("expected ErrInvalidDelta, got %v", err)
	}
}

func TestCrossingsPos2Neg(t *testing.T) {
	signal := []float64{1, 2, -1, -2, 3, 0, 4, -4}

	got := CrossingsPos2Neg(signal)
	want := []int{1, 4, 6}

	if len(got) != len(want) {
		t.Fatalf("crossing count: got %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("crossing %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCrossingsPos2NegNoCrossings(t *testing.T) {
	if got := CrossingsPos2Neg([]float64{1, 2, 3}); got != nil {
		t.Fatalf("expected no crossings, got %v", got)
	}

	if got := CrossingsPos2Neg([]float64{-1, -2}); got != nil {
		t.Fatalf("expected no crossings, got %v", got)
	}
}
