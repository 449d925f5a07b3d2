// Package catalog turns user input into fully derived star entries.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/litescript/ls-stargraph/internal/stellar"
)

// Input limits accepted from the user.
const (
	MaxNameLength   = 16
	MinTemperatureK = 3000
	MaxTemperatureK = 200000
	MinLuminosity   = 0.000001
	MaxLuminosity   = 1000000
	MinMagnitude    = -100
	MaxMagnitude    = 100
)

var (
	// ErrMissingField is returned when any input field is empty.
	ErrMissingField = errors.New("all the fields must be filled")

	// ErrOutOfRange is returned when a numeric field is outside its limits.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotANumber is returned when a numeric field does not parse.
	ErrNotANumber = errors.New("not a number")

	// ErrNameTooLong is returned for names over MaxNameLength runes.
	ErrNameTooLong = errors.New("name too long")
)

// Input is one row as typed by the user. Temperature holds either a
// temperature in Kelvin or, with SpectralMode, a class such as "G2".
// Luminosity holds either a relative luminosity or, with MagnitudeMode, an
// absolute magnitude.
type Input struct {
	Name          string
	Temperature   string
	Luminosity    string
	SpectralMode  bool
	MagnitudeMode bool
}

// Entry is a star with every derived column filled in.
type Entry struct {
	Star              stellar.Star
	Class             stellar.SpectralClass
	Bound             stellar.Bound
	AbsoluteMagnitude float64
}

// NewEntry derives the spectral class and magnitude of s.
func NewEntry(s stellar.Star) (Entry, error) {
	if _, err := s.AbsoluteMagnitude(); err != nil {
		return Entry{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	return entryFor(s), nil
}

// entryFor fills the derived columns of a star with positive luminosity.
func entryFor(s stellar.Star) Entry {
	class, bound := stellar.ClassifyTemperature(s.TemperatureK)
	return Entry{
		Star:              s,
		Class:             class,
		Bound:             bound,
		AbsoluteMagnitude: stellar.AbsoluteMagnitude(s.Luminosity),
	}
}

// Derive validates in and computes the two columns the user did not type.
func Derive(in Input) (Entry, error) {
	name := strings.TrimSpace(in.Name)
	tempStr := strings.TrimSpace(in.Temperature)
	lumStr := strings.TrimSpace(in.Luminosity)
	if name == "" || tempStr == "" || lumStr == "" {
		return Entry{}, ErrMissingField
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Entry{}, fmt.Errorf("%w: %d characters, limit %d", ErrNameTooLong, utf8.RuneCountInString(name), MaxNameLength)
	}

	var (
		class stellar.SpectralClass
		temp  int
		err   error
	)
	if in.SpectralMode {
		class, err = stellar.ParseSpectralClass(tempStr)
		temp = class.Temperature()
	} else {
		temp, err = parseTemperature(tempStr)
	}
	if err != nil {
		return Entry{}, err
	}

	lum, err := parseLuminosity(lumStr, in.MagnitudeMode)
	if err != nil {
		return Entry{}, err
	}

	e, err := NewEntry(stellar.Star{Name: name, TemperatureK: temp, Luminosity: lum})
	if err != nil {
		return Entry{}, err
	}
	if in.SpectralMode {
		// O0 sits on the hot table edge; keep the class as typed.
		e.Class, e.Bound = class, stellar.InTable
	}
	return e, nil
}

func parseTemperature(s string) (int, error) {
	temp, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("temperature %q: %w", s, ErrNotANumber)
	}
	if temp < MinTemperatureK || temp > MaxTemperatureK {
		return 0, fmt.Errorf("temperature %d K: %w (%d-%d)", temp, ErrOutOfRange, MinTemperatureK, MaxTemperatureK)
	}
	return temp, nil
}

func parseLuminosity(s string, magnitude bool) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		field := "luminosity"
		if magnitude {
			field = "magnitude"
		}
		return 0, fmt.Errorf("%s %q: %w", field, s, ErrNotANumber)
	}

	if magnitude {
		if v < MinMagnitude || v > MaxMagnitude {
			return 0, fmt.Errorf("magnitude %g: %w (%d to %d)", v, ErrOutOfRange, MinMagnitude, MaxMagnitude)
		}
		return stellar.RelativeLuminosity(v), nil
	}

	if v < MinLuminosity || v > MaxLuminosity {
		return 0, fmt.Errorf("luminosity %g: %w (%g-%g)", v, ErrOutOfRange, float64(MinLuminosity), float64(MaxLuminosity))
	}
	return v, nil
}
