package stellar

// Star holds the two independent physical quantities of a plotted star.
// Spectral class and absolute magnitude are always derived from them.
type Star struct {
	Name         string
	TemperatureK int     // Effective temperature in Kelvin
	Luminosity   float64 // Relative to the Sun (Sun = 1.0)
}

// SpectralClass returns the classification bucket for the star's
// temperature. Temperatures outside the table clamp to M9 or O0.
func (s Star) SpectralClass() SpectralClass {
	c, _ := ClassifyTemperature(s.TemperatureK)
	return c
}

// AbsoluteMagnitude derives the star's absolute magnitude.
func (s Star) AbsoluteMagnitude() (float64, error) {
	return MagnitudeForLuminosity(s.Luminosity)
}
