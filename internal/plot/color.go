package plot

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour with channels in 0..1.
type RGB struct {
	R, G, B float64
}

// Hex returns the colour as "#rrggbb", clamping out-of-range channels.
func (c RGB) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// StarColor returns the plot colour for a star: red for 3000 K shading
// through to blue-white at 17000 K and beyond.
func StarColor(tempK int) RGB {
	col := (1.0 / 14000) * float64(tempK-3000)
	return RGB{
		R: clamp01(1 - col),
		G: clamp01(col/2 + 0.5),
		B: clamp01(col),
	}
}

// GridColor returns the grey used for grid lines at the given opacity
// (0..100) over a black background.
func GridColor(opacity int) RGB {
	black := colorful.Color{}
	white := colorful.Color{R: 1, G: 1, B: 1}
	c := black.BlendRgb(white, clamp01(float64(opacity)/100))
	return RGB{R: c.R, G: c.G, B: c.B}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
