// Package gait extracts clinical gait metrics from triaxial accelerometer
// recordings of a walking task: freeze-of-gait likelihood, stride and step
// regularity and symmetry, wavelet-energy gait speed, cadence, heel-strike
// timing and distance-normalized step/stride length.
//
// A [Processor] owns an immutable [Config] of physiological and signal
// constants and exposes one method per metric. All methods are pure
// functions of the supplied acceleration frame and are safe for concurrent
// use on a shared Processor.
//
// The band edges, wavelet weighting divisors and threshold fractions follow
// the parameterizations published for remote Parkinson's disease assessment
// (Kassavetis et al.), the Welch-style freeze-band analysis of Bächlin et
// al., and the iGAIT heel-strike feature set.
package gait
