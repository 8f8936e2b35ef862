/*
 * sts.go, part of gostm.
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
	"log"
	"math"
)

// NewEnergyAxis discretizes [emin,emax] with step de: bin i sits at
// emin + i*de, and the number of bins is floor((emax-emin)/de) + 1.
func NewEnergyAxis(emin, emax, de float64) ([]float64, error) {
	if de <= 0 || emax < emin {
		return nil, newError("NewEnergyAxis", "invalid axis [%g,%g] step %g", emin, emax, de)
	}
	// The small offset keeps a span that is an exact multiple of de from
	// losing its last bin to FP rounding (e.g. 2/0.1 = 19.999...).
	n := int(math.Floor((emax-emin)/de+1e-9)) + 1
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = emin + float64(i)*de
	}
	return axis, nil
}

// nearestIndex returns the index of the axis bin closest to e, the argmin of
// |axis - e|. Lookup against the discretized axis tolerates energies that do
// not align exactly with the step.
func nearestIndex(axis []float64, e float64) int {
	best := 0
	bestd := math.Abs(axis[0] - e)
	for i, a := range axis[1:] {
		if d := math.Abs(a - e); d < bestd {
			bestd = d
			best = i + 1
		}
	}
	return best
}

// gaussian is the normalized broadening kernel with standard deviation
// sigma, evaluated at distance x from the center.
func gaussian(x, sigma float64) float64 {
	return math.Exp(-x*x/(2*sigma*sigma)) / (sigma * math.Sqrt(2*math.Pi))
}

// NewSpectralVolume re-purposes the geometry of a cube as an STS volume: the
// third axis becomes the given energy axis, with Origin[2] at its lower end,
// and the data block is zeroed. The lateral geometry and atoms are kept.
func NewSpectralVolume(header *Grid, axis []float64) *Grid {
	g := header.HeaderCopy()
	g.Shape[2] = len(axis)
	g.Origin[2] = axis[0]
	g.Data = make([]float64, g.Shape[0]*g.Shape[1]*g.Shape[2])
	return g
}

// Accumulate folds one level's plane into the STS volume: for every axis bin
// within sigma*nsigmacut of the level energy, plane * gaussian(bin - energy)
// is added into the volume's slice at that bin. The operation is linear and
// additive, so the final volume does not depend on the order in which levels
// are folded in (up to FP rounding; a parallel port must still serialize the
// writes). Window parts beyond the ends of the axis are clipped silently.
func Accumulate(vol *Grid, p *Plane, energy float64, axis []float64, sigma float64, nsigmacut int) error {
	r, c := p.Data.Dims()
	if r != vol.Shape[0] || c != vol.Shape[1] {
		return newError("Accumulate", "plane is %dx%d but volume is %dx%d laterally",
			r, c, vol.Shape[0], vol.Shape[1])
	}
	if len(axis) != vol.Shape[2] {
		return newError("Accumulate", "axis has %d bins but volume has %d", len(axis), vol.Shape[2])
	}
	cut := sigma * float64(nsigmacut)
	imin := nearestIndex(axis, energy-cut)
	imax := nearestIndex(axis, energy+cut)
	// Nearest lookup can round outward; bins strictly outside the window
	// must receive no contribution from this level.
	const slack = 1e-12
	for imin <= imax && axis[imin] < energy-cut-slack {
		imin++
	}
	for imax >= imin && axis[imax] > energy+cut+slack {
		imax--
	}
	for i := imin; i <= imax; i++ {
		w := gaussian(axis[i]-energy, sigma)
		for ix := 0; ix < vol.Shape[0]; ix++ {
			for iy := 0; iy < vol.Shape[1]; iy++ {
				vol.Set(ix, iy, i, vol.At(ix, iy, i)+p.Data.At(ix, iy)*w)
			}
		}
	}
	return nil
}

// RunSTS performs the full STS simulation: parse and reference-shift the
// spectrum, match levels to cube files, fold every matched level's plane
// into a fresh spectral volume and write it as a cube file to outPath.
//
// Cube data is read at most once per file and at most one full volume is
// resident at any time: each cube is loaded, its plane extracted and cached
// on disk, and the volume released before the next file is touched. On a
// later run the cached planes are used and no cube data is read at all.
func RunSTS(par *Params, cubePaths []string, levelsPath, outPath string) error {
	if err := par.Validate(); err != nil {
		return errDecorate(err, "RunSTS")
	}
	spectrum, err := ReadMOLog(levelsPath)
	if err != nil {
		return errDecorate(err, "RunSTS")
	}
	log.Printf("Read spectrum from %s\n%s", levelsPath, spectrum)
	if par.ERef != nil {
		spectrum.Shift(-*par.ERef)
		log.Printf("Taking %g eV as zero energy reference.", *par.ERef)
	} else {
		for _, ch := range spectrum.Channels {
			ch.Shift(-ch.Fermi)
		}
		log.Printf("Fermi energy is taken as zero energy reference.")
	}

	log.Printf("Reading headers of %d cube files", len(cubePaths))
	headers := make([]*CubeHeader, 0, len(cubePaths))
	for _, p := range cubePaths {
		h, err := ReadCubeHeader(p)
		if err != nil {
			return errDecorate(err, "RunSTS")
		}
		headers = append(headers, h)
	}

	matches, _ := MatchLevels(spectrum, headers, par.Emin, par.Emax, par.Sigma, par.NSigmaCut)
	if len(matches) == 0 {
		return newError("RunSTS", "no cube file matches any level in [%g,%g] eV", par.Emin, par.Emax)
	}

	axis, err := NewEnergyAxis(par.Emin, par.Emax, par.De)
	if err != nil {
		return errDecorate(err, "RunSTS")
	}
	vol := NewSpectralVolume(matches[0].Header.Grid, axis)

	log.Printf("Reading data of %d cube files", len(matches))
	for _, m := range matches {
		plane, err := levelPlane(m, par)
		if err != nil {
			return errDecorate(err, "RunSTS")
		}
		if err := Accumulate(vol, plane, m.Level.Energy, axis, par.Sigma, par.NSigmaCut); err != nil {
			return errDecorate(err, "RunSTS")
		}
	}
	if par.Normalize {
		if s := vol.Sum(); s != 0 {
			vol.Scale(1 / s)
		}
	}
	comment := fmt.Sprintf("Range [%4.2f V, %4.2f V], de %4.3f V, sigma %4.3f V",
		par.Emin, par.Emax, par.De, par.Sigma)
	log.Printf("Writing %s", outPath)
	return WriteCube(outPath, vol, "STS data (z axis = energy)", comment)
}

// levelPlane returns the constant-height plane for one matched level, from
// the disk cache when possible. On a cache miss the cube is loaded in full,
// squared unless the files already hold the density, and released again as
// soon as the plane is out, whether or not extraction succeeded.
func levelPlane(m LevelMatch, par *Params) (*Plane, error) {
	spec := HeightPlane(par.Dz)
	if p, ok := LoadCachedPlane(m.Header.Path, spec); ok {
		p.Energy = m.Level.Energy
		p.Spin = m.Level.Spin
		return p, nil
	}
	h, err := ReadCube(m.Header.Path)
	if err != nil {
		return nil, errDecorate(err, "levelPlane")
	}
	defer h.Grid.Release()
	if !par.PsiSquared {
		h.Grid.Square()
	}
	p, err := h.Grid.ExtractPlane(spec, nil)
	if err != nil {
		return nil, errDecorate(err, "levelPlane")
	}
	p.Energy = m.Level.Energy
	p.Spin = m.Level.Spin
	if err := StoreCachedPlane(m.Header.Path, spec, p); err != nil {
		// Failing to cache costs time on the next run, not correctness.
		log.Printf("Could not cache plane for %s: %v", m.Header.Path, err)
	}
	return p, nil
}
