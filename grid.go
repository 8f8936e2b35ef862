/*
 * grid.go, part of gostm.
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

import "math"

// Atom is one nucleus of the structure a volume is anchored to. Coordinates
// are absolute, in Angstrom.
type Atom struct {
	Number int     //atomic number
	Charge float64 //nuclear charge, as stored in the cube file
	X      float64
	Y      float64
	Z      float64
}

// Grid is a scalar field sampled on a regular lattice. The data block is laid
// out as in the cube format: x is the slowest index, z the fastest. A Grid
// read header-only has Data == nil; everything but the field itself is still
// usable.
//
// The third axis usually is the spatial z direction, but an STS volume
// re-purposes it as an energy axis, with Origin[2] holding the lower end of
// the axis. The invariant Spacing(i) == Cell[i][i]/Shape[i] holds either way.
type Grid struct {
	Data   []float64
	Shape  [3]int
	Cell   [3][3]float64 //full cell vectors, Angstrom
	Origin [3]float64
	Atoms  []Atom
}

// NewGrid returns a grid of the given geometry with a zeroed data block.
func NewGrid(shape [3]int, cell [3][3]float64, origin [3]float64, atoms []Atom) *Grid {
	g := &Grid{Shape: shape, Cell: cell, Origin: origin, Atoms: atoms}
	g.Data = make([]float64, shape[0]*shape[1]*shape[2])
	return g
}

// At returns the field value at lattice point (ix,iy,iz). As other
// fundamental accessors in this package, it does not check bounds.
func (g *Grid) At(ix, iy, iz int) float64 {
	return g.Data[(ix*g.Shape[1]+iy)*g.Shape[2]+iz]
}

// Set sets the field value at lattice point (ix,iy,iz).
func (g *Grid) Set(ix, iy, iz int, v float64) {
	g.Data[(ix*g.Shape[1]+iy)*g.Shape[2]+iz] = v
}

// Spacing returns the lattice spacing along axis i, the i-th diagonal cell
// component divided by the number of points along that axis.
func (g *Grid) Spacing(i int) float64 {
	return g.Cell[i][i] / float64(g.Shape[i])
}

// LatticeVector returns the step vector between neighboring points along
// axis i, i.e. the i-th cell vector divided by the axis length. Only the
// lateral (x,y) components are ever used by the callers.
func (g *Grid) LatticeVector(i int) [3]float64 {
	n := float64(g.Shape[i])
	return [3]float64{g.Cell[i][0] / n, g.Cell[i][1] / n, g.Cell[i][2] / n}
}

// TopAtomZ returns the z coordinate of the topmost atom.
func (g *Grid) TopAtomZ() (float64, error) {
	if len(g.Atoms) == 0 {
		return 0, newError("TopAtomZ", "grid has no atoms")
	}
	top := math.Inf(-1)
	for _, a := range g.Atoms {
		if a.Z > top {
			top = a.Z
		}
	}
	return top, nil
}

// Release drops the data block, returning the grid to its header-only form.
// The driver calls it as soon as a plane has been extracted, so that at most
// one full volume is resident at a time.
func (g *Grid) Release() {
	g.Data = nil
}

// HasData reports whether the full field is loaded.
func (g *Grid) HasData() bool {
	return g.Data != nil
}

// HeaderCopy returns a header-only copy of the grid (geometry and atoms, no
// data block). The atom slice is shared; atoms are never mutated.
func (g *Grid) HeaderCopy() *Grid {
	return &Grid{Shape: g.Shape, Cell: g.Cell, Origin: g.Origin, Atoms: g.Atoms}
}

// Square replaces every field value by its square. Cube files from CP2K
// contain the wave function itself; squaring yields the density the STM/STS
// observables are built from.
func (g *Grid) Square() {
	for i, v := range g.Data {
		g.Data[i] = v * v
	}
}

// Sum returns the sum over all field values.
func (g *Grid) Sum() float64 {
	s := 0.0
	for _, v := range g.Data {
		s += v
	}
	return s
}

// Scale multiplies every field value by f.
func (g *Grid) Scale(f float64) {
	for i := range g.Data {
		g.Data[i] *= f
	}
}
