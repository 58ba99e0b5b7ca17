package gait

import (
	"testing"

	"github.com/cwbudde/algo-gait/dsp/frame"
	"github.com/cwbudde/algo-gait/internal/testutil"
)

const testRate = 100.0

func mustProcessor(t *testing.T, opts ...Option) *Processor {
	t.Helper()

	p, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return p
}

func mustFrame(t *testing.T, x, y, z []float64, rate float64) *frame.Frame {
	t.Helper()

	f, err := frame.New(x, y, z, rate)
	if err != nil {
		t.Fatalf("frame.New: %v", err)
	}

	return f
}

// walkFrame builds a deterministic 20.48 s walking recording at 1.5 steps
// per second.
func walkFrame(t *testing.T) *frame.Frame {
	t.Helper()

	x, y, z := testutil.Walk(1.5, testRate, 2048, 11)

	return mustFrame(t, x, y, z, testRate)
}
