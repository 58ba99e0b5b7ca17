package gait

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-gait/internal/testutil"
)

func TestGaitWalk(t *testing.T) {
	f := walkFrame(t)

	feat, err := mustProcessor(t).Gait(f)
	if err != nil {
		t.Fatalf("Gait: %v", err)
	}

	if feat.NumberOfSteps < 10 {
		t.Fatalf("%d steps, want at least 10", feat.NumberOfSteps)
	}

	if len(feat.StepDurations) != feat.NumberOfSteps-1 {
		t.Fatalf("%d step durations for %d steps", len(feat.StepDurations), feat.NumberOfSteps)
	}

	wantCadence := float64(feat.NumberOfSteps) / f.Duration()
	if math.Abs(feat.Cadence-wantCadence) > 1e-12 {
		t.Fatalf("cadence = %v, want %v", feat.Cadence, wantCadence)
	}

	// Step period of a 1.5 steps/s walk.
	if feat.AvgStepDuration < 0.45 || feat.AvgStepDuration > 0.95 {
		t.Fatalf("average step duration %v s, want near 0.67 s", feat.AvgStepDuration)
	}

	if feat.SDStepDurations < 0 {
		t.Fatalf("negative step duration deviation %v", feat.SDStepDurations)
	}

	// Alternating strikes split into two stride sequences covering all steps.
	if len(feat.Strides[0])+len(feat.Strides[1]) != feat.NumberOfSteps {
		t.Fatalf("stride split %d+%d does not cover %d steps",
			len(feat.Strides[0]), len(feat.Strides[1]), feat.NumberOfSteps)
	}

	wantAvgStrides := float64(feat.NumberOfSteps) / 2
	if feat.AvgNumberOfStrides != wantAvgStrides {
		t.Fatalf("average strides = %v, want %v", feat.AvgNumberOfStrides, wantAvgStrides)
	}

	// Strides span two steps.
	if feat.AvgStrideDuration < 1.5*feat.AvgStepDuration {
		t.Fatalf("stride duration %v not longer than step duration %v",
			feat.AvgStrideDuration, feat.AvgStepDuration)
	}

	if feat.Symmetry < 0 {
		t.Fatalf("symmetry = %v, want non-negative", feat.Symmetry)
	}

	testutil.RequireFinite(t, []float64{feat.StepRegularity, feat.StrideRegularity, feat.Symmetry})

	if feat.Spatial != nil {
		t.Fatal("spatial features present without a configured distance")
	}
}

// TestGaitStrideStatsAveragePerSide pins the side-wise semantics of the
// stride statistics: each foot's sequence gets its own mean and deviation,
// and the reported values average the two scalars. Pooling the sequences
// would absorb between-side differences into the deviation.
func TestGaitStrideStatsAveragePerSide(t *testing.T) {
	f := walkFrame(t)

	feat, err := mustProcessor(t).Gait(f)
	if err != nil {
		t.Fatalf("Gait: %v", err)
	}

	var meanSum, sdSum float64

	for side := range feat.StrideDurations {
		durations := feat.StrideDurations[side]
		if len(durations) == 0 {
			t.Fatalf("side %d has no stride durations", side)
		}

		meanSum += stat.Mean(durations, nil)
		sdSum += stat.PopStdDev(durations, nil)
	}

	testutil.RequireInDelta(t, feat.AvgStrideDuration, meanSum/2, 1e-15)
	testutil.RequireInDelta(t, feat.SDStrideDurations, sdSum/2, 1e-15)

	// An uneven split leaves the sides with different counts, so pooled
	// statistics would disagree; guard against silently reverting.
	if feat.NumberOfSteps%2 == 1 {
		var pooled []float64
		for side := range feat.StrideDurations {
			pooled = append(pooled, feat.StrideDurations[side]...)
		}

		if feat.SDStrideDurations == stat.PopStdDev(pooled, nil) &&
			feat.AvgStrideDuration == stat.Mean(pooled, nil) {
			t.Fatal("stride statistics match pooled computation on an uneven side split")
		}
	}
}

func TestGaitSpatial(t *testing.T) {
	const distance = 15.0

	f := walkFrame(t)

	feat, err := mustProcessor(t, WithDistance(distance)).Gait(f)
	if err != nil {
		t.Fatalf("Gait: %v", err)
	}

	if feat.Spatial == nil {
		t.Fatal("no spatial features despite configured distance")
	}

	if want := distance / f.Duration(); feat.Spatial.Velocity != want {
		t.Fatalf("velocity = %v, want %v", feat.Spatial.Velocity, want)
	}

	if want := float64(feat.NumberOfSteps) / distance; feat.Spatial.AvgStepLength != want {
		t.Fatalf("step length = %v, want %v", feat.Spatial.AvgStepLength, want)
	}

	if want := feat.AvgNumberOfStrides / distance; feat.Spatial.AvgStrideLength != want {
		t.Fatalf("stride length = %v, want %v", feat.Spatial.AvgStrideLength, want)
	}
}

func TestGaitConstantSignal(t *testing.T) {
	c := testutil.DC(1, 1024)
	f := mustFrame(t, c, c, c, testRate)

	_, err := mustProcessor(t).Gait(f)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("Gait = %v, want ErrInsufficientData", err)
	}
}
