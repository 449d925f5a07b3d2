package diagram

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/plot"
)

const (
	// Gutter is the number of columns left of the plot for luminosity labels.
	Gutter = 8
	// FooterRows is the number of rows below the plot for temperature labels.
	FooterRows = 1

	glyphStar     = '✶'
	glyphSelected = '◆'
	glyphVLine    = '│'
	glyphHLine    = '─'
	glyphCross    = '┼'

	colorFrame = "#ffffff"
	colorLabel = "#c0c0c0"
	colorName  = "#d0c8ff"
	colorFocus = "#ffffaf"
)

// NoSelection is the Options.Selected value for no highlighted star.
const NoSelection = -1

// Options controls per-render choices that are not part of the axes.
type Options struct {
	Selected int // Index of the highlighted entry, or NoSelection
}

// Fit returns a copy of a sized for a cols x rows character grid, leaving
// room for the label gutter and footer.
func Fit(a plot.Axes, cols, rows int) plot.Axes {
	a.Width = cols - Gutter
	a.Height = rows - FooterRows
	a.Margin = 1
	return a
}

// Render draws entries on a canvas of (Gutter+a.Width) x (a.Height+FooterRows)
// cells. The plot area starts at (Gutter+a.Margin, a.Margin) and the frame
// runs along its edges. Stars outside the axes are clipped.
func Render(entries []catalog.Entry, a plot.Axes, opts Options) *Canvas {
	c := NewCanvas(Gutter+a.Width, a.Height+FooterRows)
	w, h := a.InnerWidth(), a.InnerHeight()
	if w <= 0 || h <= 0 || a.TemperatureRange() <= 0 {
		return c
	}
	ox, oy := Gutter+a.Margin, a.Margin

	drawGrid(c, a, ox, oy)
	drawFrame(c, ox, oy, ox+w, oy+h)
	drawScale(c, a, ox, oy)

	type placed struct {
		x, y  int
		name  string
		focus bool
	}
	var labels []placed

	for i, e := range entries {
		p, err := a.Project(e.Star)
		if err != nil || !a.Contains(p) {
			continue
		}
		x, y := ox+p.X, oy+p.Y
		focus := i == opts.Selected
		if focus {
			c.Set(x, y, glyphSelected, colorFocus)
			c.Embolden(x, y)
		} else {
			c.Set(x, y, glyphStar, plot.StarColor(e.Star.TemperatureK).Hex())
		}
		if a.ShowNames || focus {
			labels = append(labels, placed{x: x, y: y, name: e.Star.Name, focus: focus})
		}
	}

	// Focused label goes last so it wins any overlap.
	for _, focusPass := range []bool{false, true} {
		for _, l := range labels {
			if l.focus != focusPass {
				continue
			}
			start := l.x + 2
			avail := ox + w - start
			if avail <= 0 {
				continue
			}
			color := colorName
			if l.focus {
				color = colorFocus
			}
			c.Text(start, l.y, runewidth.Truncate(l.name, avail, "…"), color)
		}
	}

	return c
}

func drawGrid(c *Canvas, a plot.Axes, ox, oy int) {
	color := plot.GridColor(a.LineOpacity).Hex()
	w, h := a.InnerWidth(), a.InnerHeight()

	if a.ShowVLines {
		for _, x := range a.VerticalLines() {
			for y := 0; y <= h; y++ {
				c.Set(ox+x, oy+y, glyphVLine, color)
			}
		}
	}
	if a.ShowHLines {
		for _, y := range a.HorizontalLines() {
			for x := 0; x <= w; x++ {
				r := glyphHLine
				if c.At(ox+x, oy+y).Rune == glyphVLine {
					r = glyphCross
				}
				c.Set(ox+x, oy+y, r, color)
			}
		}
	}
}

func drawFrame(c *Canvas, x0, y0, x1, y1 int) {
	for x := x0 + 1; x < x1; x++ {
		c.Set(x, y0, '─', colorFrame)
		c.Set(x, y1, '─', colorFrame)
	}
	for y := y0 + 1; y < y1; y++ {
		c.Set(x0, y, '│', colorFrame)
		c.Set(x1, y, '│', colorFrame)
	}
	c.Set(x0, y0, '┌', colorFrame)
	c.Set(x1, y0, '┐', colorFrame)
	c.Set(x0, y1, '└', colorFrame)
	c.Set(x1, y1, '┘', colorFrame)
}

// drawScale writes the luminosity labels in the gutter and the temperature
// labels in the footer.
func drawScale(c *Canvas, a plot.Axes, ox, oy int) {
	w, h := a.InnerWidth(), a.InnerHeight()
	labelW := Gutter - 1

	left := func(y int, s string) {
		c.Text(0, y, runewidth.FillLeft(runewidth.Truncate(s, labelW, ""), labelW), colorLabel)
	}
	power := func(y int) string {
		return fmt.Sprintf("10^%d", int(math.Round(math.Log10(a.LuminosityAtY(y)))))
	}
	left(oy, power(0))
	left(oy+a.CenterY(), "1 L☉")
	// With an odd height row h is one below the end of the lower half.
	left(oy+h, power(2*a.CenterY()))

	footer := c.Height - 1
	hot := TemperatureLabel(a.TemperatureAtX(0))
	cool := TemperatureLabel(a.TemperatureAtX(w))
	title := "Temperature"

	c.Text(ox, footer, hot, colorLabel)
	coolX := ox + w - runewidth.StringWidth(cool) + 1
	c.Text(coolX, footer, cool, colorLabel)

	titleX := ox + (w-runewidth.StringWidth(title))/2
	if titleX > ox+runewidth.StringWidth(hot) && titleX+runewidth.StringWidth(title) < coolX {
		c.Text(titleX, footer, title, colorLabel)
	}
}

// TemperatureLabel formats a temperature with digit grouping, e.g. "25,000 K".
func TemperatureLabel(tempK int) string {
	return message.NewPrinter(language.English).Sprintf("%d K", tempK)
}
