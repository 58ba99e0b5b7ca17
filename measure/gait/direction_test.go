package gait

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-gait/internal/testutil"
)

func TestWalkDirectionPreheelUnitNorm(t *testing.T) {
	f := walkFrame(t)

	dir, err := mustProcessor(t).WalkDirectionPreheel(f)
	if err != nil {
		t.Fatalf("WalkDirectionPreheel: %v", err)
	}

	norm := math.Sqrt(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2])
	if math.Abs(norm-1) > 1e-12 {
		t.Fatalf("norm = %v, want 1", norm)
	}
}

func TestWalkDirectionPreheelDeterministic(t *testing.T) {
	f := walkFrame(t)
	p := mustProcessor(t)

	a, err := p.WalkDirectionPreheel(f)
	if err != nil {
		t.Fatalf("WalkDirectionPreheel: %v", err)
	}

	b, err := p.WalkDirectionPreheel(f)
	if err != nil {
		t.Fatalf("WalkDirectionPreheel: %v", err)
	}

	if a != b {
		t.Fatalf("repeated analysis diverged: %v vs %v", a, b)
	}
}

func TestWalkDirectionPreheelConstantSignal(t *testing.T) {
	c := testutil.DC(1, 1024)
	f := mustFrame(t, c, c, c, testRate)

	_, err := mustProcessor(t).WalkDirectionPreheel(f)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("WalkDirectionPreheel = %v, want ErrInsufficientData", err)
	}
}
