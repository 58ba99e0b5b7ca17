package interp

import "testing"

func TestLinear(t *testing.T) {
	if got := Linear(2, 4, 0.25); got != 2.5 {
		t.Fatalf("got %v want 2.5", got)
	}
	if got := Linear(1, 1, 0.7); got != 1 {
		t.Fatalf("constant endpoints: got %v want 1", got)
	}
	if got := Linear(-1, 1, 0.5); got != 0 {
		t.Fatalf("midpoint: got %v want 0", got)
	}
}

func TestLinearEndpoints(t *testing.T) {
	if got := Linear(3, 7, 0); got != 3 {
		t.Fatalf("frac 0: got %v want 3", got)
	}
	if got := Linear(3, 7, 1); got != 7 {
		t.Fatalf("frac 1: got %v want 7", got)
	}
}

func TestLinearRampExact(t *testing.T) {
	// A linear function is reproduced exactly at any fraction.
	f := func(x float64) float64 { return 3*x - 2 }
	for _, frac := range []float64{0, 0.125, 0.5, 0.875, 1} {
		if got, want := Linear(f(0), f(1), frac), f(frac); got != want {
			t.Fatalf("frac %v: got %v want %v", frac, got, want)
		}
	}
}
