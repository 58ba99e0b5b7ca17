package frame

import (
	"errors"
	"math"
	"testing"
)

func TestNewComputesMagnitude(t *testing.T) {
	f, err := New([]float64{3, 0}, []float64{4, 0}, []float64{0, 2}, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if f.MagSumAcc[0] != 5 || f.MagSumAcc[1] != 2 {
		t.Fatalf("MagSumAcc = %v, want [5 2]", f.MagSumAcc)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, nil, nil, 100); !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("empty: %v, want ErrEmptyFrame", err)
	}

	if _, err := New([]float64{1, 2}, []float64{1}, []float64{1, 2}, 100); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("mismatch: %v, want ErrLengthMismatch", err)
	}

	if _, err := New([]float64{1}, []float64{1}, []float64{1}, 0); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("zero rate: %v, want ErrInvalidRate", err)
	}

	if _, err := New([]float64{1}, []float64{1}, []float64{1}, math.NaN()); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("nan rate: %v, want ErrInvalidRate", err)
	}
}

func TestDuration(t *testing.T) {
	f, err := New(make([]float64, 250), make([]float64, 250), make([]float64, 250), 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if f.Duration() != 2.5 {
		t.Fatalf("Duration = %v, want 2.5", f.Duration())
	}
}

func TestSumAbs(t *testing.T) {
	f, err := New([]float64{-1, 2}, []float64{3, -4}, []float64{-5, 6}, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := f.SumAbs()
	if got[0] != 9 || got[1] != 12 {
		t.Fatalf("SumAbs = %v, want [9 12]", got)
	}
}

func TestResampleIdentity(t *testing.T) {
	f, err := New(make([]float64, 64), make([]float64, 64), make([]float64, 64), 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r, err := f.Resample(100)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	if r != f {
		t.Fatal("identity resample allocated a new frame")
	}
}

func TestResampleHalvesRate(t *testing.T) {
	n := 101

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	f, err := New(x, x, x, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r, err := f.Resample(50)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	if r.Len() != 51 {
		t.Fatalf("resampled length = %d, want 51", r.Len())
	}

	if r.SampleRate != 50 {
		t.Fatalf("resampled rate = %v, want 50", r.SampleRate)
	}

	// A linear ramp survives linear interpolation exactly.
	for i, v := range r.X {
		want := float64(2 * i)
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("X[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestResampleSine(t *testing.T) {
	n := 200

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 2 * float64(i) / 100)
	}

	f, err := New(x, x, x, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r, err := f.Resample(200)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	// Every other upsampled point coincides with a source sample.
	for i := 0; i < r.Len(); i += 2 {
		if math.Abs(r.X[i]-x[i/2]) > 1e-12 {
			t.Fatalf("X[%d] = %v, want %v", i, r.X[i], x[i/2])
		}
	}
}

func TestResampleInvalidRate(t *testing.T) {
	f, err := New([]float64{1, 2}, []float64{1, 2}, []float64{1, 2}, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := f.Resample(-1); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("Resample = %v, want ErrInvalidRate", err)
	}
}
