package interp

// Linear interpolates between a and b at frac in [0, 1].
func Linear(a, b, frac float64) float64 {
	return a + frac*(b-a)
}
