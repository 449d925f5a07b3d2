// Package stellar converts between stellar temperature, spectral type,
// relative luminosity and absolute magnitude.
//
// Every function in this package is pure and safe for concurrent use.
package stellar

import (
	"errors"
	"fmt"
	"strings"
)

// Temperature limits of the classification table (Kelvin).
const (
	MinTableTemperature = 2600  // M9, coolest bucket
	MaxTableTemperature = 60000 // O0, hottest bucket (exclusive upper bound)
)

// Packed sentinels returned by SpectralTypeForTemperature for temperatures
// outside the table.
const (
	PackedCoolerThanM9 = 79
	PackedHotterThanO0 = 10
)

// classLetters lists the spectral classes from hottest to coolest.
// Index 0 is O, which packs as class index 1.
const classLetters = "OBAFGKM"

// temperatureTable holds base temperatures in tens of Kelvin.
// Rows are classes O..M, columns are subclasses 0..9.
var temperatureTable = [7][10]int{
	{6000, 5700, 5400, 5100, 4800, 4500, 4200, 3900, 3600, 3300}, // O
	{3000, 2800, 2600, 2400, 2200, 2000, 1800, 1600, 1400, 1200}, // B
	{1000, 975, 950, 925, 900, 875, 850, 825, 800, 775},          // A
	{750, 735, 720, 705, 690, 675, 660, 645, 630, 615},           // F
	{600, 590, 580, 570, 560, 550, 540, 530, 520, 510},           // G
	{500, 485, 470, 455, 440, 425, 410, 395, 380, 365},           // K
	{350, 340, 330, 320, 310, 300, 290, 280, 270, 260},           // M
}

// ErrInvalidSpectralType is returned when a spectral class cannot be parsed
// or is outside O0..M9.
var ErrInvalidSpectralType = errors.New("invalid spectral type")

// Bound reports where a temperature falls relative to the table.
type Bound int

const (
	InTable    Bound = iota // Temperature has a matching bucket
	BelowTable              // Cooler than M9
	AboveTable              // Hotter than O0
)

func (b Bound) String() string {
	switch b {
	case InTable:
		return "in table"
	case BelowTable:
		return "cooler than M9"
	case AboveTable:
		return "hotter than O0"
	default:
		return "unknown"
	}
}

// SpectralClass is a classification letter plus subclass digit, e.g. G2.
type SpectralClass struct {
	Letter   byte // One of O, B, A, F, G, K, M
	Subclass int  // 0..9
}

// ParseSpectralClass parses a two-character class such as "G2" or "m5".
func ParseSpectralClass(s string) (SpectralClass, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return SpectralClass{}, fmt.Errorf("%w: %q", ErrInvalidSpectralType, s)
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if strings.IndexByte(classLetters, letter) < 0 {
		return SpectralClass{}, fmt.Errorf("%w: %q", ErrInvalidSpectralType, s)
	}
	if s[1] < '0' || s[1] > '9' {
		return SpectralClass{}, fmt.Errorf("%w: %q", ErrInvalidSpectralType, s)
	}
	return SpectralClass{Letter: letter, Subclass: int(s[1] - '0')}, nil
}

// FromPacked decodes classIndex*10+subclass (class index 1..7 for O..M).
func FromPacked(packed int) (SpectralClass, error) {
	idx, sub := packed/10, packed%10
	if packed < 0 || idx < 1 || idx > len(classLetters) {
		return SpectralClass{}, fmt.Errorf("%w: packed %d", ErrInvalidSpectralType, packed)
	}
	return SpectralClass{Letter: classLetters[idx-1], Subclass: sub}, nil
}

// Index returns the 1-based class index (O=1 .. M=7), or 0 if the letter is
// not a known class.
func (c SpectralClass) Index() int {
	return strings.IndexByte(classLetters, c.Letter) + 1
}

// Valid reports whether c names a cell of the classification table.
func (c SpectralClass) Valid() bool {
	return c.Index() > 0 && c.Subclass >= 0 && c.Subclass <= 9
}

// Packed returns classIndex*10+subclass, e.g. 52 for G2.
func (c SpectralClass) Packed() int {
	return c.Index()*10 + c.Subclass
}

// String formats the class as letter+digit, e.g. "G2".
func (c SpectralClass) String() string {
	if !c.Valid() {
		return "??"
	}
	return fmt.Sprintf("%c%d", c.Letter, c.Subclass)
}

// Temperature returns the table temperature for the class in Kelvin.
// Invalid classes return 0.
func (c SpectralClass) Temperature() int {
	if !c.Valid() {
		return 0
	}
	return TemperatureForSpectralType(c.Index(), c.Subclass)
}

// TemperatureForSpectralType returns the table temperature in Kelvin for a
// class index (1..7 for O..M) and subclass digit (0..9). For example
// TemperatureForSpectralType(5, 2) is G2 and returns 5800.
//
// Arguments outside those ranges panic with an index error; callers holding
// unchecked input should go through SpectralClass.
func TemperatureForSpectralType(classIndex, subclass int) int {
	return temperatureTable[classIndex-1][subclass] * 10
}

// TemperatureForPacked returns the table temperature for a packed class.
func TemperatureForPacked(packed int) (int, error) {
	c, err := FromPacked(packed)
	if err != nil {
		return 0, err
	}
	return c.Temperature(), nil
}

// SpectralTypeForTemperature returns the packed spectral type whose bucket
// contains tempK. A bucket spans from its own table value (inclusive) up to
// the next hotter table value (exclusive), so 5800 K is G2 and 5899 K is
// still G2.
//
// Temperatures below 2600 K return PackedCoolerThanM9 (79) and temperatures
// at or above 60000 K return PackedHotterThanO0 (10).
//
// Many temperatures share a bucket, so TemperatureForSpectralType applied to
// the result only recovers tempK to within one bucket.
func SpectralTypeForTemperature(tempK int) int {
	if tempK < MinTableTemperature {
		return PackedCoolerThanM9
	}
	if tempK >= MaxTableTemperature {
		return PackedHotterThanO0
	}

	for i := range temperatureTable {
		for j := range temperatureTable[i] {
			lower := temperatureTable[i][j] * 10
			upper, ok := hotterNeighbour(i, j)
			if !ok {
				continue
			}
			if tempK >= lower && tempK < upper {
				return (i+1)*10 + j
			}
		}
	}

	// Unreachable: the buckets tile [2600, 60000).
	return PackedCoolerThanM9
}

// hotterNeighbour returns the table temperature one step hotter than cell
// (i, j), wrapping to the previous row's last column at j == 0. O0 has no
// hotter neighbour.
func hotterNeighbour(i, j int) (int, bool) {
	switch {
	case j > 0:
		return temperatureTable[i][j-1] * 10, true
	case i > 0:
		return temperatureTable[i-1][len(temperatureTable[i-1])-1] * 10, true
	default:
		return 0, false
	}
}

// ClassifyTemperature is the typed form of SpectralTypeForTemperature.
// Out-of-table temperatures clamp to M9 or O0 and report the Bound.
func ClassifyTemperature(tempK int) (SpectralClass, Bound) {
	bound := InTable
	switch {
	case tempK < MinTableTemperature:
		bound = BelowTable
	case tempK >= MaxTableTemperature:
		bound = AboveTable
	}
	// SpectralTypeForTemperature only returns packed values in 10..79.
	c, _ := FromPacked(SpectralTypeForTemperature(tempK))
	return c, bound
}
