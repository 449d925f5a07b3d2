package plot

import (
	"errors"
	"fmt"
	"math"

	"github.com/litescript/ls-stargraph/internal/stellar"
)

const (
	// maxVerticalLines caps the temperature grid.
	maxVerticalLines = 50
	// maxHorizontalLines caps the luminosity grid on each side of L = 1.
	maxHorizontalLines = 8
)

// ErrInvalidAxes is returned when an Axes value cannot be used for mapping.
var ErrInvalidAxes = errors.New("invalid axes")

// Point is a position in the inner plot area. (0, 0) is the top-left
// corner; x grows right and y grows down.
type Point struct {
	X, Y int
}

// Axes is the diagram configuration supplied by the caller for each draw.
type Axes struct {
	TempMin int // Kelvin at the right edge
	TempMax int // Kelvin at the left edge
	LumMin  int // log10 luminosity at the bottom edge (negative)
	LumMax  int // log10 luminosity at the top edge (positive)

	Width  int // Full diagram width including margins
	Height int // Full diagram height including margins
	Margin int // Frame inset on every side

	HStep       int // Kelvin between vertical grid lines
	VStep       int // Luminosity ratio between horizontal grid lines
	LineOpacity int // Grid line brightness, 0..100

	ShowNames  bool
	ShowVLines bool
	ShowHLines bool
}

// DefaultAxes returns the stock 640x640 diagram: 3000-25000 K and
// 10^-6..10^6 L☉ with a vertical grid every 2500 K.
func DefaultAxes() Axes {
	return Axes{
		TempMin:     3000,
		TempMax:     25000,
		LumMin:      -6,
		LumMax:      6,
		Width:       640,
		Height:      640,
		Margin:      32,
		HStep:       2500,
		VStep:       10,
		LineOpacity: 25,
		ShowVLines:  true,
	}
}

// Validate reports the first reason the axes cannot be used.
func (a Axes) Validate() error {
	switch {
	case a.TempMax <= a.TempMin:
		return fmt.Errorf("%w: temperature max %d must exceed min %d", ErrInvalidAxes, a.TempMax, a.TempMin)
	case a.LumMin >= 0:
		return fmt.Errorf("%w: luminosity min exponent %d must be negative", ErrInvalidAxes, a.LumMin)
	case a.LumMax <= 0:
		return fmt.Errorf("%w: luminosity max exponent %d must be positive", ErrInvalidAxes, a.LumMax)
	case a.InnerWidth() <= 0 || a.InnerHeight() < 2:
		return fmt.Errorf("%w: %dx%d with margin %d leaves no plot area", ErrInvalidAxes, a.Width, a.Height, a.Margin)
	case a.HStep <= 0:
		return fmt.Errorf("%w: temperature grid step %d must be positive", ErrInvalidAxes, a.HStep)
	case a.VStep < 2:
		return fmt.Errorf("%w: luminosity grid ratio %d must be at least 2", ErrInvalidAxes, a.VStep)
	case a.LineOpacity < 0 || a.LineOpacity > 100:
		return fmt.Errorf("%w: line opacity %d outside 0..100", ErrInvalidAxes, a.LineOpacity)
	}
	return nil
}

// InnerWidth is the plot area width inside the frame.
func (a Axes) InnerWidth() int { return a.Width - 2*a.Margin }

// InnerHeight is the plot area height inside the frame.
func (a Axes) InnerHeight() int { return a.Height - 2*a.Margin }

// TemperatureRange is TempMax - TempMin.
func (a Axes) TemperatureRange() int { return a.TempMax - a.TempMin }

// CenterY is the row where L = 1 is plotted.
func (a Axes) CenterY() int { return a.InnerHeight() / 2 }

// halfHeight is the pixel height of each luminosity half.
func (a Axes) halfHeight() int { return a.InnerHeight() / 2 }

// LuminosityHalfRange selects the decade span for the half of the axis that
// lum falls in: -LumMin below the Sun, LumMax at or above it.
func (a Axes) LuminosityHalfRange(lum float64) int {
	if lum < 1 {
		return -a.LumMin
	}
	return a.LumMax
}

// X maps a temperature to a plot column.
func (a Axes) X(tempK int) int {
	return XForTemperature(a.TempMin, a.InnerWidth(), a.TemperatureRange(), tempK)
}

// Y maps a luminosity to a plot row. lum must be > 0.
func (a Axes) Y(lum float64) int {
	return YForLuminosity(a.CenterY(), a.halfHeight(), a.LuminosityHalfRange(lum), lum)
}

// Project maps a star into the plot area. The point may fall outside the
// area; see Contains.
func (a Axes) Project(s stellar.Star) (Point, error) {
	if !(s.Luminosity > 0) || math.IsInf(s.Luminosity, 1) {
		return Point{}, fmt.Errorf("project %q: %w", s.Name, stellar.ErrNonPositiveLuminosity)
	}
	if a.TemperatureRange() == 0 || a.LuminosityHalfRange(s.Luminosity) == 0 {
		return Point{}, fmt.Errorf("project %q: %w: zero range", s.Name, ErrInvalidAxes)
	}
	return Point{X: a.X(s.TemperatureK), Y: a.Y(s.Luminosity)}, nil
}

// Contains reports whether p lies inside the plot area, edges included.
func (a Axes) Contains(p Point) bool {
	return p.X >= 0 && p.X <= a.InnerWidth() && p.Y >= 0 && p.Y <= a.InnerHeight()
}

// VerticalLines returns the plot columns of the temperature grid, one line
// every HStep Kelvin starting at 0 K, limited to the plot area.
func (a Axes) VerticalLines() []int {
	if a.HStep <= 0 || a.TemperatureRange() == 0 {
		return nil
	}
	var xs []int
	for i := 0; i < maxVerticalLines; i++ {
		x := a.X(a.HStep * i)
		if x < 0 || x > a.InnerWidth() {
			continue
		}
		xs = append(xs, x)
	}
	return xs
}

// HorizontalLines returns the plot rows of the luminosity grid. Lines sit at
// VStep^i above the Sun and are mirrored below it by mapping the same value
// through the negated lower half-range.
func (a Axes) HorizontalLines() []int {
	if a.VStep < 2 || a.LumMax == 0 || a.LumMin == 0 {
		return nil
	}
	seen := make(map[int]bool)
	var ys []int
	add := func(y int) {
		if y < 0 || y > a.InnerHeight() || seen[y] {
			return
		}
		seen[y] = true
		ys = append(ys, y)
	}
	for i := 0; i < maxHorizontalLines; i++ {
		v := math.Pow(float64(a.VStep), float64(i))
		add(YForLuminosity(a.CenterY(), a.halfHeight(), a.LumMax, v))
		add(YForLuminosity(a.CenterY(), a.halfHeight(), a.LumMin, v))
	}
	return ys
}

// TemperatureAtX is the inverse of X. TemperatureAtX(0) is TempMax and
// TemperatureAtX(InnerWidth()) is TempMin.
func (a Axes) TemperatureAtX(x int) int {
	if a.InnerWidth() == 0 {
		return a.TempMax
	}
	return a.TempMax - int(float64(x)*float64(a.TemperatureRange())/float64(a.InnerWidth()))
}

// LuminosityAtY is the inverse of Y. Row 0 gives 10^LumMax and row
// 2*CenterY() gives 10^LumMin.
func (a Axes) LuminosityAtY(y int) float64 {
	half := a.halfHeight()
	if half == 0 {
		return 1
	}
	d := float64(a.CenterY() - y)
	if d >= 0 {
		return math.Pow(10, d*float64(a.LumMax)/float64(half))
	}
	return math.Pow(10, d*float64(-a.LumMin)/float64(half))
}
