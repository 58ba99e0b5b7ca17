package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Walk synthesizes a triaxial accelerometer walking record with stepHz steps
// per second. The vertical (y) axis rides on a 1 g offset with step-frequency
// bounce, the forward (x) axis sways at the step frequency with a mild
// alternating-step asymmetry, and the lateral (z) axis sways at the stride
// frequency. A small seeded noise floor keeps the record from being
// pathologically clean.
func Walk(stepHz, sampleRate float64, length int, seed int64) (x, y, z []float64) {
	x = make([]float64, length)
	y = make([]float64, length)
	z = make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	strideHz := stepHz / 2

	for i := range x {
		t := float64(i) / sampleRate

		sway := math.Sin(2 * math.Pi * stepHz * t)
		asym := 1 + 0.2*math.Sin(2*math.Pi*strideHz*t)

		x[i] = sway*asym + 0.02*(rng.Float64()*2-1)
		y[i] = 1 + 0.6*math.Sin(2*math.Pi*stepHz*t) + 0.2*math.Sin(4*math.Pi*stepHz*t) +
			0.02*(rng.Float64()*2-1)
		z[i] = 0.8*math.Sin(2*math.Pi*strideHz*t) + 0.02*(rng.Float64()*2-1)
	}

	return x, y, z
}
