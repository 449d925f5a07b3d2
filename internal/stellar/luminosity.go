package stellar

import (
	"errors"
	"math"
)

const (
	// SolarAbsoluteMagnitude is the Sun's absolute visual magnitude.
	SolarAbsoluteMagnitude = 4.83

	// PogsonRatio is the brightness ratio of one magnitude step (100^(1/5)).
	PogsonRatio = 2.51188643150958
)

// ErrNonPositiveLuminosity is returned for luminosities that have no
// magnitude: zero, negative, NaN or infinite.
var ErrNonPositiveLuminosity = errors.New("luminosity must be a positive finite number")

// logPogson is ln(PogsonRatio); shared by both directions so they are exact
// inverses of each other.
var logPogson = math.Log(PogsonRatio)

// AbsoluteMagnitude returns the absolute magnitude of a star with the given
// luminosity relative to the Sun. AbsoluteMagnitude(1) is 4.83.
//
// The result is 4.83 - 2.5·log10(L), so each factor of 100 in luminosity is
// exactly five magnitudes. This is not 4.83 - 2.51188643150958·log10(L),
// which puts the Pogson ratio where the 2.5 belongs: for L=100 that form
// gives -0.194 where this returns -0.17, and for L=1e6 it gives -10.24
// where this returns -10.17.
//
// relativeLuminosity must be > 0. Zero yields +Inf and negative values yield
// NaN; use MagnitudeForLuminosity for checked input.
func AbsoluteMagnitude(relativeLuminosity float64) float64 {
	return SolarAbsoluteMagnitude - math.Log(relativeLuminosity)/logPogson
}

// RelativeLuminosity returns the luminosity relative to the Sun for an
// absolute magnitude. RelativeLuminosity(4.83) is 1.
func RelativeLuminosity(absoluteMagnitude float64) float64 {
	return math.Pow(PogsonRatio, SolarAbsoluteMagnitude-absoluteMagnitude)
}

// MagnitudeForLuminosity is AbsoluteMagnitude with the precondition checked.
func MagnitudeForLuminosity(relativeLuminosity float64) (float64, error) {
	if !(relativeLuminosity > 0) || math.IsInf(relativeLuminosity, 1) {
		return 0, ErrNonPositiveLuminosity
	}
	return AbsoluteMagnitude(relativeLuminosity), nil
}
