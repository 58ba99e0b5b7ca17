package gait

import "errors"

var (
	// ErrInsufficientData indicates too few samples, peaks, strikes or
	// wavelet levels for the requested computation.
	ErrInsufficientData = errors.New("gait: insufficient data")

	// ErrDegenerateSignal indicates a numerically degenerate input, such as
	// a zero-energy locomotor band or a zero-magnitude direction vector.
	// It is always raised explicitly instead of returning non-finite values.
	ErrDegenerateSignal = errors.New("gait: degenerate signal")

	// ErrInvalidConfig indicates configuration outside its valid domain,
	// such as band edges beyond the Nyquist frequency.
	ErrInvalidConfig = errors.New("gait: invalid configuration")
)
