package catalog

import "github.com/litescript/ls-stargraph/internal/stellar"

// DefaultStars returns a sample list of well-known stars spanning the main
// sequence, giants, supergiants and white dwarfs.
// Temperatures and luminosities are rounded literature values.
func DefaultStars() []stellar.Star {
	out := make([]stellar.Star, len(defaultStars))
	copy(out, defaultStars)
	return out
}

// DefaultEntries derives entries for DefaultStars.
func DefaultEntries() []Entry {
	stars := DefaultStars()
	entries := make([]Entry, 0, len(stars))
	for _, s := range stars {
		entries = append(entries, entryFor(s))
	}
	return entries
}

// defaultStars is ordered roughly by luminosity (brightest first).
var defaultStars = []stellar.Star{
	// Supergiants
	{Name: "Deneb", TemperatureK: 8525, Luminosity: 196000},
	{Name: "Rigel", TemperatureK: 12100, Luminosity: 120000},
	{Name: "Betelgeuse", TemperatureK: 3500, Luminosity: 126000},
	{Name: "Antares", TemperatureK: 3660, Luminosity: 75900},
	{Name: "Spica", TemperatureK: 22400, Luminosity: 20500},
	{Name: "Canopus", TemperatureK: 7350, Luminosity: 10700},

	// Giants and bright main sequence
	{Name: "Achernar", TemperatureK: 15000, Luminosity: 3150},
	{Name: "Polaris", TemperatureK: 6015, Luminosity: 1260},
	{Name: "Aldebaran", TemperatureK: 3910, Luminosity: 439},
	{Name: "Regulus", TemperatureK: 12460, Luminosity: 288},
	{Name: "Arcturus", TemperatureK: 4290, Luminosity: 170},
	{Name: "Capella", TemperatureK: 4970, Luminosity: 78.7},
	{Name: "Vega", TemperatureK: 9600, Luminosity: 40.1},
	{Name: "Sirius A", TemperatureK: 9940, Luminosity: 25.4},
	{Name: "Altair", TemperatureK: 7670, Luminosity: 10.6},
	{Name: "Procyon A", TemperatureK: 6530, Luminosity: 6.93},

	// Sun-like and cooler dwarfs
	{Name: "Sun", TemperatureK: 5800, Luminosity: 1},
	{Name: "Tau Ceti", TemperatureK: 5344, Luminosity: 0.52},
	{Name: "Epsilon Eridani", TemperatureK: 5084, Luminosity: 0.34},
	{Name: "Barnard's Star", TemperatureK: 3134, Luminosity: 0.0035},
	{Name: "Proxima Centauri", TemperatureK: 3042, Luminosity: 0.0017},

	// White dwarfs
	{Name: "Sirius B", TemperatureK: 25000, Luminosity: 0.056},
	{Name: "Procyon B", TemperatureK: 7740, Luminosity: 0.00049},
}
