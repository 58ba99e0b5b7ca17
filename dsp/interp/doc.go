// Package interp provides the interpolation primitive used when regridding
// accelerometer recordings.
package interp
