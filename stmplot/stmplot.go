/*
 * stmplot.go, part of gostm.
 *
 * Copyright 2015 The gostm developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package stmplot renders resampled STM planes as grayscale PNG heat maps
//(uses the gonum plot library).
package stmplot

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Options sets the physical extent, axis labels and color range of a heat
// map. Nil Vmin/Vmax means the range of the finite data values.
type Options struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
	Xlabel     string
	Ylabel     string
	Vmin       *float64
	Vmax       *float64
}

// grays is a grayscale palette, the usual color map for STM images.
type grays int

func (g grays) Colors() []color.Color {
	cs := make([]color.Color, int(g))
	for i := range cs {
		v := uint8(i * 255 / (int(g) - 1))
		cs[i] = color.Gray{Y: v}
	}
	return cs
}

// planeGrid adapts a resampled plane, whose row 0 is the maximum y, to the
// bottom-up grid the plotter expects. NaN cells (outside the convex hull of
// the source samples) are drawn at the bottom of the color range; they mark
// missing data, so they must never influence the range itself.
type planeGrid struct {
	m          *mat.Dense
	xmin, xmax float64
	ymin, ymax float64
	fill       float64
}

func (p planeGrid) Dims() (int, int) {
	r, c := p.m.Dims()
	return c, r
}

func (p planeGrid) X(c int) float64 {
	nc, _ := p.Dims()
	return p.xmin + float64(c)*(p.xmax-p.xmin)/float64(nc-1)
}

func (p planeGrid) Y(r int) float64 {
	_, nr := p.Dims()
	return p.ymin + float64(r)*(p.ymax-p.ymin)/float64(nr-1)
}

func (p planeGrid) Z(c, r int) float64 {
	_, nr := p.Dims()
	v := p.m.At(nr-1-r, c)
	if math.IsNaN(v) {
		return p.fill
	}
	return v
}

// HeatMap renders the matrix as a grayscale heat map PNG. Row 0 of the
// matrix is drawn at the top (maximum y), matching the resampler's
// convention.
func HeatMap(m *mat.Dense, opts Options, path string) error {
	vmin, vmax := finiteRange(m)
	if opts.Vmin != nil {
		vmin = *opts.Vmin
	}
	if opts.Vmax != nil {
		vmax = *opts.Vmax
	}
	g := planeGrid{m: m, xmin: opts.Xmin, xmax: opts.Xmax,
		ymin: opts.Ymin, ymax: opts.Ymax, fill: vmin}
	h := plotter.NewHeatMap(g, grays(256))
	h.Min = vmin
	h.Max = vmax

	p := plot.New()
	p.X.Label.Text = opts.Xlabel
	p.Y.Label.Text = opts.Ylabel
	p.Add(h)
	return p.Save(14*vg.Centimeter, 14*vg.Centimeter, path)
}

// finiteRange is the min and max over the finite values of m.
func finiteRange(m *mat.Dense) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi { //all NaN
		return 0, 1
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}
