/*
 * resample.go, part of gostm.
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

	"gonum.org/v1/gonum/mat"
)

// Resample interpolates a plane, sampled on the (possibly non-orthogonal)
// lateral lattice of grid g, onto a uniform nsamples x nsamples Cartesian
// mesh spanning the bounding box of the lattice points. A non-nil replica
// tiles the plane first; pass nil if the plane is already replicated.
//
// Interpolation is linear and never extrapolates: mesh points outside the
// convex hull of the lattice (the sheared border of a non-orthogonal cell)
// hold NaN. Row 0 of the result corresponds to the maximum y, the image
// convention expected by plotting.
//
// Rather than solving a general scattered-data problem per mesh point, the
// mesh point is mapped back to fractional lattice coordinates through the
// inverse of the 2x2 lateral cell matrix and interpolated bilinearly; for
// lattice input this is the same linear interpolant at a fraction of the
// cost, which matters since this is the most expensive step for replicated
// planes.
func Resample(p *Plane, g *Grid, rep *Replica, nsamples int) (*mat.Dense, Extent, error) {
	var ext Extent
	if nsamples < 2 {
		return nil, ext, newError("Resample", "need at least 2 samples per axis, got %d", nsamples)
	}
	data := p.Data
	if rep != nil {
		data = tile(data, rep[0], rep[1])
	}
	r, c := data.Dims()
	a := g.LatticeVector(0)
	b := g.LatticeVector(1)
	// Lattice-to-Cartesian matrix; columns are the lateral step vectors.
	m := mat.NewDense(2, 2, []float64{a[0], b[0], a[1], b[1]})
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, ext, newError("Resample", "lateral cell vectors are singular: %v", err)
	}
	ext = latticeExtent(g, r, c)

	out := mat.NewDense(nsamples, nsamples, nil)
	dx := (ext[1] - ext[0]) / float64(nsamples-1)
	dy := (ext[3] - ext[2]) / float64(nsamples-1)
	for row := 0; row < nsamples; row++ {
		y := ext[3] - float64(row)*dy //row 0 = top of the image
		for col := 0; col < nsamples; col++ {
			x := ext[0] + float64(col)*dx
			u := inv.At(0, 0)*x + inv.At(0, 1)*y
			v := inv.At(1, 0)*x + inv.At(1, 1)*y
			out.Set(row, col, bilinear(data, r, c, u, v))
		}
	}
	return out, ext, nil
}

// bilinear interpolates data at fractional lattice coordinates (u,v),
// returning NaN outside [0,r-1]x[0,c-1].
func bilinear(data *mat.Dense, r, c int, u, v float64) float64 {
	const eps = 1e-9 //tolerate FP noise on the hull boundary
	if u < -eps || u > float64(r-1)+eps || v < -eps || v > float64(c-1)+eps {
		return math.NaN()
	}
	u = math.Min(math.Max(u, 0), float64(r-1))
	v = math.Min(math.Max(v, 0), float64(c-1))
	i0 := int(math.Floor(u))
	j0 := int(math.Floor(v))
	i1 := i0 + 1
	j1 := j0 + 1
	if i1 > r-1 {
		i1 = r - 1
	}
	if j1 > c-1 {
		j1 = c - 1
	}
	fu := u - float64(i0)
	fv := v - float64(j0)
	v00 := data.At(i0, j0)
	v10 := data.At(i1, j0)
	v01 := data.At(i0, j1)
	v11 := data.At(i1, j1)
	return v00*(1-fu)*(1-fv) + v10*fu*(1-fv) + v01*(1-fu)*fv + v11*fu*fv
}
