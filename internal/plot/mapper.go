// Package plot maps stellar temperature and luminosity onto 2-D diagram
// coordinates.
//
// The temperature axis runs hot-to-cool from left to right. The luminosity
// axis is logarithmic and split at the Sun (L = 1): the upper half spans
// 10^0..10^LumMax and the lower half 10^LumMin..10^0, each with its own
// scale.
package plot

import "math"

// XForTemperature returns the pixel column for starTemp on an axis of
// pixelWidth pixels covering tempRange Kelvin above tempOffset. Hotter stars
// get smaller x. The result is truncated toward zero.
//
// tempRange must be non-zero.
func XForTemperature(tempOffset, pixelWidth, tempRange, starTemp int) int {
	return int(float64(pixelWidth) / float64(tempRange) * float64(tempRange-(starTemp-tempOffset)))
}

// YForLuminosity returns the pixel row for starLum, measured down from
// yOffset, with pixelHeight pixels per lumRange decades. Brighter stars get
// smaller y. The result is truncated toward zero.
//
// starLum must be > 0 and lumRange non-zero. A negative lumRange mirrors the
// mapping below yOffset.
func YForLuminosity(yOffset, pixelHeight, lumRange int, starLum float64) int {
	return int(float64(yOffset) - float64(pixelHeight)/float64(lumRange)*math.Log10(starLum))
}
