/*
 * grid_test.go, part of gostm.
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

package stm

import (
	"math"
	"testing"
)

// layerGrid is a 2x2x4 grid in a 2x2x4 A cell with one atom at z = 1.0 and
// every field value equal to its z layer index. Several tests key off this
// geometry, where layer boundaries sit at integer heights.
func layerGrid() *Grid {
	g := NewGrid([3]int{2, 2, 4},
		[3][3]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 4}},
		[3]float64{0, 0, 0},
		[]Atom{{Number: 6, Charge: 6, X: 1, Y: 1, Z: 1.0}})
	for ix := 0; ix < 2; ix++ {
		for iy := 0; iy < 2; iy++ {
			for iz := 0; iz < 4; iz++ {
				g.Set(ix, iy, iz, float64(iz))
			}
		}
	}
	return g
}

func TestGridLayout(Te *testing.T) {
	g := layerGrid()
	if g.At(1, 1, 3) != 3 || g.At(0, 1, 2) != 2 {
		Te.Errorf("indexing broken: got %g and %g", g.At(1, 1, 3), g.At(0, 1, 2))
	}
	g.Set(1, 0, 2, 42)
	if g.Data[(1*2+0)*4+2] != 42 {
		Te.Error("Set does not follow the cube layout (x slowest, z fastest)")
	}
	if g.Spacing(2) != 1.0 || g.Spacing(0) != 1.0 {
		Te.Errorf("wrong spacings: %g %g", g.Spacing(0), g.Spacing(2))
	}
	top, err := g.TopAtomZ()
	if err != nil {
		Te.Error(err)
	}
	if top != 1.0 {
		Te.Errorf("topmost atom at %g, want 1.0", top)
	}
	if _, err := (&Grid{}).TopAtomZ(); err == nil {
		Te.Error("TopAtomZ accepted a grid without atoms")
	}
}

func TestGridRelease(Te *testing.T) {
	g := layerGrid()
	h := g.HeaderCopy()
	if h.HasData() {
		Te.Error("header copy carries data")
	}
	if h.Shape != g.Shape || h.Cell != g.Cell {
		Te.Error("header copy lost the geometry")
	}
	g.Release()
	if g.HasData() {
		Te.Error("grid still has data after Release")
	}
	if _, err := g.ExtractPlane(HeightPlane(1.0), nil); err == nil {
		Te.Error("extraction from a released grid did not fail")
	}
}

//TestHeightPlane checks the layer rule on the 2x2x4 cell: the tip at
//height h above the atom at z = 1.0 reads the layer containing z = 1+h.
func TestHeightPlane(Te *testing.T) {
	g := layerGrid()
	cases := []struct {
		height float64
		layer  float64
	}{
		{1.0, 1},   //z = 2.0, exactly on a boundary: layer below
		{0.5, 1},   //z = 1.5
		{2.999, 3}, //z = 3.999
	}
	for _, c := range cases {
		p, err := g.ExtractPlane(HeightPlane(c.height), nil)
		if err != nil {
			Te.Error(err)
			continue
		}
		if v := p.Data.At(0, 0); v != c.layer {
			Te.Errorf("height %g read layer %g, want %g", c.height, v, c.layer)
		}
		r, c2 := p.Data.Dims()
		if r != 2 || c2 != 2 {
			Te.Errorf("plane is %dx%d, want 2x2", r, c2)
		}
	}
	if _, err := g.ExtractPlane(HeightPlane(3.5), nil); err == nil {
		Te.Error("height outside the cell did not fail")
	}
	if _, err := g.ExtractPlane(HeightPlane(-1.5), nil); err == nil {
		Te.Error("height below the cell did not fail")
	}
}

func TestHeightPlaneDeterminism(Te *testing.T) {
	g := layerGrid()
	a, err := g.ExtractPlane(HeightPlane(1.0), nil)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := g.ExtractPlane(HeightPlane(1.0), nil)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if a.Data.At(i, j) != b.Data.At(i, j) {
				Te.Fatal("repeated extraction differs")
			}
		}
	}
}

//TestIsoPlane scans the layer grid, whose values grow with z, so the
//first crossing from the top is well defined.
func TestIsoPlane(Te *testing.T) {
	g := layerGrid()
	p, err := g.ExtractPlane(IsoPlane(2.5, 0), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if v := p.Data.At(0, 0); v != 3.0 {
		Te.Errorf("isovalue 2.5 first reached at z = %g, want 3.0", v)
	}
	//zmin above every crossing: no point qualifies
	p, err = g.ExtractPlane(IsoPlane(2.5, 3.5), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !math.IsNaN(p.Data.At(1, 1)) {
		Te.Errorf("point without crossing holds %g, want NaN", p.Data.At(1, 1))
	}
	//isovalue never reached at all
	p, err = g.ExtractPlane(IsoPlane(10, 0), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !math.IsNaN(p.Data.At(0, 1)) {
		Te.Error("unreachable isovalue did not produce NaN")
	}
}

//TestReplication checks that extracting with a replica equals tiling the
//unreplicated plane, and that the extent grows with the tiling.
func TestReplication(Te *testing.T) {
	g := layerGrid()
	plain, err := g.ExtractPlane(HeightPlane(1.0), nil)
	if err != nil {
		Te.Fatal(err)
	}
	rep, err := g.ExtractPlane(HeightPlane(1.0), &Replica{2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	r, c := rep.Data.Dims()
	if r != 4 || c != 6 {
		Te.Fatalf("replicated plane is %dx%d, want 4x6", r, c)
	}
	pr, pc := plain.Data.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rep.Data.At(i, j) != plain.Data.At(i%pr, j%pc) {
				Te.Fatalf("tile mismatch at (%d,%d)", i, j)
			}
		}
	}
	want := Extent{0, 3, 0, 5} //4 and 6 points of spacing 1 along x and y
	if rep.Extent != want {
		Te.Errorf("replicated extent %v, want %v", rep.Extent, want)
	}
}

func TestParseReplica(Te *testing.T) {
	if r, err := ParseReplica(nil); err != nil || r != nil {
		Te.Error("empty replica option should be nil and accepted")
	}
	r, err := ParseReplica([]int{3})
	if err != nil || *r != (Replica{3, 3}) {
		Te.Errorf("single value not expanded to both axes: %v %v", r, err)
	}
	r, err = ParseReplica([]int{2, 5})
	if err != nil || *r != (Replica{2, 5}) {
		Te.Errorf("pair not taken as (nx,ny): %v %v", r, err)
	}
	for _, bad := range [][]int{{0}, {-1, 2}, {1, 2, 3}} {
		if _, err := ParseReplica(bad); err == nil {
			Te.Errorf("replica %v accepted", bad)
		}
	}
}
