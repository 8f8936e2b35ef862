/*
 * plane.go, part of gostm.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Extent is the physical bounding box of a plane, (xmin,xmax,ymin,ymax) in
// Angstrom.
type Extent [4]float64

// Plane is a 2D cut through a volume: rows follow the first lateral lattice
// axis, columns the second. STS planes are tagged with the energy and spin of
// the level they were extracted from.
type Plane struct {
	Data   *mat.Dense
	Extent Extent
	Energy float64
	Spin   int
}

// PlaneKind selects the STM imaging mode of a PlaneSpec.
type PlaneKind int

const (
	//ConstantHeight samples the field at a fixed tip height above the
	//topmost atom.
	ConstantHeight PlaneKind = iota
	//ConstantCurrent samples the height at which the field first reaches an
	//isovalue, scanning from the top of the cell downward.
	ConstantCurrent
)

// PlaneSpec is the tagged description of a plane extraction: either a
// constant-height plane (Height set) or a constant-current plane (Isovalue
// and ZMin set). Use HeightPlane and IsoPlane to build one.
type PlaneSpec struct {
	Kind     PlaneKind
	Height   float64 //tip height above the topmost atom, Angstrom
	Isovalue float64
	ZMin     float64 //lowest tip height considered in constant-current mode
}

// HeightPlane returns a PlaneSpec for a constant-height extraction.
func HeightPlane(height float64) PlaneSpec {
	return PlaneSpec{Kind: ConstantHeight, Height: height}
}

// IsoPlane returns a PlaneSpec for a constant-current extraction. Lateral points
// where the field never reaches isovalue at or above zmin end up as NaN in
// the extracted plane.
func IsoPlane(isovalue, zmin float64) PlaneSpec {
	return PlaneSpec{Kind: ConstantCurrent, Isovalue: isovalue, ZMin: zmin}
}

// CacheSuffix returns the suffix identifying this extraction in plane file
// names, e.g. ".dz2.5" for a constant-height plane at 2.5 Angstrom.
func (s PlaneSpec) CacheSuffix() string {
	if s.Kind == ConstantHeight {
		return fmt.Sprintf(".dz%g", s.Height)
	}
	return fmt.Sprintf(".iso%g", s.Isovalue)
}

// String describes the extraction for output headers.
func (s PlaneSpec) String() string {
	if s.Kind == ConstantHeight {
		return fmt.Sprintf("z = %g [A]", s.Height)
	}
	return fmt.Sprintf("isovalue %g, zmin %g [A]", s.Isovalue, s.ZMin)
}

// Replica is the number of periodic repetitions of a plane along the two
// lateral axes.
type Replica [2]int

// ParseReplica validates a replication option. One value is taken for both
// axes, two values are taken as (nx,ny); anything else is rejected. A nil or
// empty slice means no replication. This runs before any file is touched.
func ParseReplica(vals []int) (*Replica, error) {
	switch len(vals) {
	case 0:
		return nil, nil
	case 1:
		if vals[0] < 1 {
			return nil, newError("ParseReplica", "replica count %d is not positive", vals[0])
		}
		return &Replica{vals[0], vals[0]}, nil
	case 2:
		if vals[0] < 1 || vals[1] < 1 {
			return nil, newError("ParseReplica", "replica counts %v are not positive", vals)
		}
		return &Replica{vals[0], vals[1]}, nil
	default:
		return nil, newError("ParseReplica", "invalid replica specification %v: give one or two values", vals)
	}
}

// ExtractPlane computes a 2D plane from the volume according to spec. With a
// non-nil replica the plane is tiled periodically along the lateral axes and
// the extent grows proportionally; the edge of one tile abuts the start of
// the next, so periodic continuity is preserved.
//
// Constant-height mode reads the lattice layer containing the physical
// height (topmost atom z + spec.Height); a height that falls outside the
// cell is an error. Constant-current mode records, per lateral point, the
// first height at or above spec.ZMin at which the field reaches
// spec.Isovalue when scanning downward from the top of the cell; points with
// no such crossing hold NaN.
func (g *Grid) ExtractPlane(spec PlaneSpec, rep *Replica) (*Plane, error) {
	if !g.HasData() {
		return nil, newError("ExtractPlane", "grid holds no data (header-only read?)")
	}
	var data *mat.Dense
	var err error
	switch spec.Kind {
	case ConstantHeight:
		data, err = g.heightPlane(spec.Height)
	case ConstantCurrent:
		data, err = g.isoPlane(spec.Isovalue, spec.ZMin)
	default:
		err = newError("ExtractPlane", "unknown plane kind %d", spec.Kind)
	}
	if err != nil {
		return nil, errDecorate(err, "ExtractPlane")
	}
	nx, ny := 1, 1
	if rep != nil {
		nx, ny = rep[0], rep[1]
		data = tile(data, nx, ny)
	}
	p := &Plane{Data: data}
	p.Extent = latticeExtent(g, g.Shape[0]*nx, g.Shape[1]*ny)
	return p, nil
}

func (g *Grid) heightPlane(height float64) (*mat.Dense, error) {
	top, err := g.TopAtomZ()
	if err != nil {
		return nil, err
	}
	dz := g.Spacing(2)
	zrel := top + height - g.Origin[2]
	// A height exactly on a layer boundary belongs to the layer below it;
	// the 1e-9 guards against FP noise at the boundary.
	iz := int(math.Ceil(zrel/dz-1e-9)) - 1
	if iz < 0 || iz >= g.Shape[2] {
		return nil, newError("heightPlane",
			"plane at z = %.3f A (layer %d) lies outside the cell (0 <= layer < %d)",
			top+height, iz, g.Shape[2])
	}
	out := mat.NewDense(g.Shape[0], g.Shape[1], nil)
	for ix := 0; ix < g.Shape[0]; ix++ {
		for iy := 0; iy < g.Shape[1]; iy++ {
			out.Set(ix, iy, g.At(ix, iy, iz))
		}
	}
	return out, nil
}

func (g *Grid) isoPlane(isovalue, zmin float64) (*mat.Dense, error) {
	dz := g.Spacing(2)
	out := mat.NewDense(g.Shape[0], g.Shape[1], nil)
	for ix := 0; ix < g.Shape[0]; ix++ {
		for iy := 0; iy < g.Shape[1]; iy++ {
			z := math.NaN()
			for iz := g.Shape[2] - 1; iz >= 0; iz-- {
				zc := g.Origin[2] + float64(iz)*dz
				if zc < zmin {
					break
				}
				if g.At(ix, iy, iz) >= isovalue {
					z = zc
					break
				}
			}
			out.Set(ix, iy, z)
		}
	}
	return out, nil
}

// tile repeats m nx times along the rows and ny times along the columns,
// with the layout of numpy's tile.
func tile(m *mat.Dense, nx, ny int) *mat.Dense {
	if nx == 1 && ny == 1 {
		return m
	}
	r, c := m.Dims()
	out := mat.NewDense(r*nx, c*ny, nil)
	for i := 0; i < r*nx; i++ {
		for j := 0; j < c*ny; j++ {
			out.Set(i, j, m.At(i%r, j%c))
		}
	}
	return out
}

// latticeExtent is the bounding box of the lateral lattice points
// i*a + j*b for i < nx, j < ny, where a and b are the per-step lattice
// vectors of the grid.
func latticeExtent(g *Grid, nx, ny int) Extent {
	a := g.LatticeVector(0)
	b := g.LatticeVector(1)
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	// The extrema are reached at the corners of the lattice.
	for _, i := range []float64{0, float64(nx - 1)} {
		for _, j := range []float64{0, float64(ny - 1)} {
			x := i*a[0] + j*b[0]
			y := i*a[1] + j*b[1]
			xmin = math.Min(xmin, x)
			xmax = math.Max(xmax, x)
			ymin = math.Min(ymin, y)
			ymax = math.Max(ymax, y)
		}
	}
	return Extent{xmin, xmax, ymin, ymax}
}
