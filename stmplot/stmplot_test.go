/*
 * stmplot_test.go, part of gostm.
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

package stmplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFiniteRange(Te *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, math.NaN(), -3, 2})
	lo, hi := finiteRange(m)
	if lo != -3 || hi != 2 {
		Te.Errorf("range [%g,%g], want [-3,2] (NaN must be ignored)", lo, hi)
	}
	flat := mat.NewDense(1, 2, []float64{5, 5})
	if lo, hi = finiteRange(flat); lo >= hi {
		Te.Error("constant data must still give a usable range")
	}
	allNaN := mat.NewDense(1, 1, []float64{math.NaN()})
	if lo, hi = finiteRange(allNaN); lo >= hi {
		Te.Error("all-NaN data must still give a usable range")
	}
}

func TestPlaneGridOrientation(Te *testing.T) {
	//row 0 of the matrix is the top of the image, i.e. the highest y
	m := mat.NewDense(2, 2, []float64{
		10, 20, //top row
		30, 40, //bottom row
	})
	g := planeGrid{m: m, xmin: 0, xmax: 1, ymin: 0, ymax: 1}
	nc, nr := g.Dims()
	if nc != 2 || nr != 2 {
		Te.Fatalf("dims (%d,%d)", nc, nr)
	}
	if g.Z(0, nr-1) != 10 {
		Te.Errorf("top-left of the image is %g, want 10", g.Z(0, nr-1))
	}
	if g.Z(0, 0) != 30 {
		Te.Errorf("bottom-left of the image is %g, want 30", g.Z(0, 0))
	}
	if g.Y(nr-1) != 1 || g.X(0) != 0 {
		Te.Error("axis coordinates off")
	}
	withNaN := planeGrid{m: mat.NewDense(1, 1, []float64{math.NaN()}), fill: -7}
	if withNaN.Z(0, 0) != -7 {
		Te.Error("NaN cell not replaced by the fill value")
	}
}

func TestHeatMap(Te *testing.T) {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, float64(i*4+j))
		}
	}
	m.Set(3, 3, math.NaN()) //sheared-border cell
	path := filepath.Join(Te.TempDir(), "plane.png")
	opts := Options{Xmax: 3, Ymax: 3, Xlabel: "x [A]", Ylabel: "y [A]"}
	if err := HeatMap(m, opts, path); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("empty png written")
	}
}
