// Package frame defines the acceleration frame consumed by the gait
// measurement pipeline: a uniformly sampled triaxial time series with a
// precomputed resultant-magnitude column and a linear-interpolation
// resampler.
package frame
