// Package chart draws a quadratic equation with gonum/plot: the
// parabola, its vertex and its intercepts.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	quad "github.com/njchilds90/goquadratic"
)

// Options controls the drawn range and output size.
type Options struct {
	// Width and Height are in inches.
	Width, Height float64
	Samples       int
	// Span is the half-width of the x range around the vertex. The range
	// grows to include every x-intercept.
	Span float64
}

func DefaultOptions() Options {
	return Options{Width: 6, Height: 4, Samples: 200, Span: 5}
}

// Formats lists the output formats WriteTo accepts.
var Formats = []string{"png", "svg", "pdf"}

// XRange returns the x interval drawn for e.
func XRange(e *quad.Equation, span float64) (xmin, xmax float64) {
	h, _ := e.VertexPoint()
	xmin, xmax = h-span, h+span
	if xs, ok := e.XIntercepts(); ok {
		for _, x := range xs.Values() {
			xmin = math.Min(xmin, x-1)
			xmax = math.Max(xmax, x+1)
		}
	}
	return xmin, xmax
}

// YRange samples e over [xmin, xmax] and pads the extremes by 10%.
func YRange(e *quad.Equation, xmin, xmax float64, samples int) (ymin, ymax float64) {
	s := e.Standard()
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i := 0; i < samples; i++ {
		x := xmin + (float64(i)/float64(samples-1))*(xmax-xmin)
		y := s.EvaluateAt(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		ymin = math.Min(ymin, y)
		ymax = math.Max(ymax, y)
	}
	// keep the x-axis in view
	ymin = math.Min(ymin, 0)
	ymax = math.Max(ymax, 0)
	pad := (ymax - ymin) * 0.1
	if pad == 0 {
		pad = 1
	}
	return ymin - pad, ymax + pad
}

// New builds the plot for e.
func New(e *quad.Equation, opts Options) (*plot.Plot, error) {
	if opts.Samples < 2 {
		return nil, fmt.Errorf("chart: samples must be >= 2, got %d", opts.Samples)
	}
	if opts.Span <= 0 {
		return nil, fmt.Errorf("chart: span must be > 0, got %g", opts.Span)
	}

	p := plot.New()
	p.Title.Text = e.Standard().String()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = XRange(e, opts.Span)
	p.Y.Min, p.Y.Max = YRange(e, p.X.Min, p.X.Max, opts.Samples)
	p.Add(plotter.NewGrid())

	curve := plotter.NewFunction(e.Standard().EvaluateAt)
	curve.Samples = opts.Samples
	curve.XMin, curve.XMax = p.X.Min, p.X.Max
	curve.Width = vg.Points(2)
	curve.Color = color.RGBA{B: 200, A: 255}
	p.Add(curve)
	p.Legend.Add("f(x)", curve)

	vx, vy := e.VertexPoint()
	if err := addPoints(p, "vertex", color.RGBA{R: 200, A: 255}, plotter.XY{X: vx, Y: vy}); err != nil {
		return nil, err
	}

	intercepts := []plotter.XY{{X: 0, Y: e.YIntercept()}}
	if xs, ok := e.XIntercepts(); ok {
		for _, x := range xs.Values() {
			intercepts = append(intercepts, plotter.XY{X: x, Y: 0})
		}
	}
	if err := addPoints(p, "intercepts", color.RGBA{G: 150, A: 255}, intercepts...); err != nil {
		return nil, err
	}
	return p, nil
}

func addPoints(p *plot.Plot, name string, c color.Color, pts ...plotter.XY) error {
	s, err := plotter.NewScatter(plotter.XYs(pts))
	if err != nil {
		return fmt.Errorf("chart: %s: %w", name, err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(3)
	p.Add(s)
	p.Legend.Add(name, s)
	return nil
}

// WriteTo renders e in format (png, svg or pdf) to w.
func WriteTo(w io.Writer, e *quad.Equation, opts Options, format string) error {
	p, err := New(e, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders e to path; the format follows the file extension.
func Save(path string, e *quad.Equation, opts Options) error {
	p, err := New(e, opts)
	if err != nil {
		return err
	}
	return p.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, path)
}
