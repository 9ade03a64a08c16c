package chart

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Register the image backends used by plot.Save.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Default figure size in inches.
const (
	DefaultWidth  = 12.0
	DefaultHeight = 6.0
)

var (
	barColor     = color.RGBA{R: 70, G: 130, B: 180, A: 255} // steel blue
	averageColor = color.RGBA{R: 255, A: 255}
	gridColor    = color.Gray{Y: 200}
)

// SupportedFormats lists the file extensions Save can write.
var SupportedFormats = []string{".png", ".svg", ".pdf", ".jpg", ".jpeg", ".tif", ".tiff", ".eps"}

// Options controls file rendering.
type Options struct {
	Width  float64 // inches
	Height float64 // inches
	Title  string  // overrides the chart title when set
}

// Save renders c to path. The image format follows the file extension.
func Save(c *Chart, path string, opts Options) error {
	if c == nil || len(c.Points) == 0 {
		return fmt.Errorf("chart has no data")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !isSupported(ext) {
		return fmt.Errorf("unsupported chart format %q (supported: %s)", ext, strings.Join(SupportedFormats, ", "))
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	p, err := newPlot(c, opts.Title)
	if err != nil {
		return err
	}

	w := vg.Length(opts.Width) * vg.Inch
	h := vg.Length(opts.Height) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", path, err)
	}
	return nil
}

func isSupported(ext string) bool {
	for _, f := range SupportedFormats {
		if f == ext {
			return true
		}
	}
	return false
}

// newPlot lays out one bar per year, the average line and a dashed grid.
func newPlot(c *Chart, title string) (*plot.Plot, error) {
	if title == "" {
		title = c.Title
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Success Rate (%)"

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	values := make(plotter.Values, len(c.Points))
	labels := make([]string, len(c.Points))
	for i, pt := range c.Points {
		values[i] = pt.Rate
		labels[i] = strconv.Itoa(pt.Year)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth(len(values))))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)

	avg := plotter.NewFunction(func(float64) float64 { return c.Average })
	avg.Color = averageColor
	avg.Width = vg.Points(1.5)
	p.Add(avg)
	p.Legend.Add("Average", avg)
	p.Legend.Top = true

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	p.Y.Min = 0
	p.Y.Max = YMax

	return p, nil
}

// barWidth shrinks bars as the number of years grows.
func barWidth(n int) float64 {
	switch {
	case n <= 10:
		return 40
	case n <= 20:
		return 24
	default:
		return 14
	}
}
