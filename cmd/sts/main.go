/*
 * main.go, part of gostm.
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

// Command sts performs a Scanning Tunneling Spectroscopy simulation from
// single-level cube files and a CP2K energy-level file:
//
//	sts -levels levels.MOLog [options] wfn*.cube
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	stm "github.com/gostm/gostm"
)

func main() {
	par := stm.DefaultParams()
	paramFile := flag.String("params", "", "YAML file with run parameters; flags override it")
	levels := flag.String("levels", "", "file containing the energy levels (required)")
	out := flag.String("out", "sts.cube", "name of the STS output cube")
	emin := flag.Float64("emin", par.Emin, "minimum bias for STS [V]")
	emax := flag.Float64("emax", par.Emax, "maximum bias for STS [V]")
	de := flag.Float64("de", par.De, "bias step for STS [V]")
	sigma := flag.Float64("sigma", par.Sigma, "sigma of Gaussian broadening [V]; FWHM = 2.355 sigma")
	nsigmacut := flag.Int("nsigmacut", par.NSigmaCut, "cut the Gaussian kernel at nsigmacut*sigma")
	dz := flag.Float64("dz", par.Dz, "height above the topmost atom where the plane is extracted [A]")
	eref := flag.Float64("eref", 0, "zero-energy reference [eV]; Fermi energy if not given")
	normalize := flag.Bool("normalize", false, "normalize the STS intensity to 1")
	psisquared := flag.Bool("psisquared", false, "cube files already contain the density (psi squared)")
	flag.Parse()

	if *paramFile != "" {
		loaded, err := stm.LoadParams(*paramFile)
		if err != nil {
			log.Fatal(err)
		}
		par = loaded
	}
	// Flags win over the parameter file, but only where actually set.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "emin":
			par.Emin = *emin
		case "emax":
			par.Emax = *emax
		case "de":
			par.De = *de
		case "sigma":
			par.Sigma = *sigma
		case "nsigmacut":
			par.NSigmaCut = *nsigmacut
		case "dz":
			par.Dz = *dz
		case "eref":
			par.ERef = eref
		case "normalize":
			par.Normalize = *normalize
		case "psisquared":
			par.PsiSquared = *psisquared
		}
	})

	cubes := flag.Args()
	if *levels == "" || len(cubes) == 0 {
		fmt.Fprintln(os.Stderr, "usage: sts -levels FILE [options] CUBEFILE...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := stm.RunSTS(par, cubes, *levels, *out); err != nil {
		log.Fatal(err)
	}
}
