/*
 * stm.go, part of gostm.
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

	"github.com/gostm/gostm/igor"
	"github.com/gostm/gostm/stmplot"
)

// RunSTM produces STM images from cube files holding the local density of
// states: for every cube and every requested job (constant-height or
// constant-current) it extracts the plane, writes it in the requested format
// and, unless plotting is off, also resamples it onto a Cartesian mesh,
// saves a PNG heat map and the resampled matrix.
//
// Cubes are processed one at a time and released as soon as their planes are
// out.
func RunSTM(par *Params, cubePaths []string) error {
	if err := par.Validate(); err != nil {
		return errDecorate(err, "RunSTM")
	}
	var jobs []PlaneSpec
	for _, h := range par.Heights {
		jobs = append(jobs, HeightPlane(h))
	}
	for _, v := range par.Isovalues {
		jobs = append(jobs, IsoPlane(v, par.ZMin))
	}
	if len(jobs) == 0 {
		return newError("RunSTM", "no heights or isovalues requested")
	}
	rep := par.Replica()
	for _, path := range cubePaths {
		log.Printf("Reading %s", path)
		h, err := ReadCube(path)
		if err != nil {
			return errDecorate(err, "RunSTM")
		}
		for _, job := range jobs {
			if err := stmJob(par, h, job, rep); err != nil {
				h.Grid.Release()
				return errDecorate(err, "RunSTM")
			}
		}
		h.Grid.Release()
	}
	return nil
}

func stmJob(par *Params, h *CubeHeader, job PlaneSpec, rep *Replica) error {
	header := fmt.Sprintf("STM simulation based on %s, %s", h.Path, job)
	plane, err := h.Grid.ExtractPlane(job, rep)
	if err != nil {
		return errDecorate(err, "stmJob")
	}
	base := h.Path + job.CacheSuffix()

	switch par.Format {
	case "igor":
		wave := igor.Wave2d{
			Data: plane.Data,
			Xmin: plane.Extent[0], Xmax: plane.Extent[1], Xlabel: "x [Angstroms]",
			Ymin: plane.Extent[2], Ymax: plane.Extent[3], Ylabel: "y [Angstroms]",
		}
		log.Printf("Writing %s.itx", base)
		if err := wave.Save(base + ".itx"); err != nil {
			return errDecorate(err, "stmJob")
		}
	default: //plain
		log.Printf("Writing %s.dat", base)
		if err := WriteMatrixFile(base+".dat", plane.Data, header); err != nil {
			return errDecorate(err, "stmJob")
		}
	}

	if !par.Plot {
		return nil
	}
	resampled, ext, err := Resample(plane, h.Grid, nil, par.NSamples)
	if err != nil {
		return errDecorate(err, "stmJob")
	}
	opts := stmplot.Options{
		Xmin: ext[0], Xmax: ext[1], Ymin: ext[2], Ymax: ext[3],
		Xlabel: "x [A]", Ylabel: "y [A]",
	}
	if len(par.PlotRange) == 2 {
		opts.Vmin = &par.PlotRange[0]
		opts.Vmax = &par.PlotRange[1]
	}
	log.Printf("Plotting into %s.png", base)
	if err := stmplot.HeatMap(resampled, opts, base+".png"); err != nil {
		return errDecorate(err, "stmJob")
	}
	resHeader := header + fmt.Sprintf(
		"\nDimensions after resampling: %.3f < x < %.3f, %.3f < y < %.3f [A]",
		ext[0], ext[1], ext[2], ext[3])
	log.Printf("Saving resampled data to %s.res", base)
	if err := WriteMatrixFile(base+".res", resampled, resHeader); err != nil {
		return errDecorate(err, "stmJob")
	}
	return nil
}
