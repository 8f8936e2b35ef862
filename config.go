/*
 * config.go, part of gostm.
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
	"os"

	"gopkg.in/yaml.v3"
)

// Params collects the numeric configuration of a run. Each option does
// exactly what its name says; there is no hidden coupling between them.
// Energy options are in eV (equivalently volts of sample bias), lengths in
// Angstrom.
type Params struct {
	Emin      float64 `yaml:"emin"`      //lower end of the STS energy axis
	Emax      float64 `yaml:"emax"`      //upper end of the STS energy axis
	De        float64 `yaml:"de"`        //energy axis step
	Sigma     float64 `yaml:"sigma"`     //Gaussian broadening; FWHM = 2.355 sigma
	NSigmaCut int     `yaml:"nsigmacut"` //kernel support, in units of sigma

	Dz   float64  `yaml:"dz"`   //tip height above the topmost atom (STS)
	ERef *float64 `yaml:"eref"` //zero-energy reference; nil = Fermi per spin

	Normalize  bool `yaml:"normalize"`  //divide the STS volume by its sum
	PsiSquared bool `yaml:"psisquared"` //cube files already hold the density

	Heights   []float64 `yaml:"heights"`   //constant-height STM jobs
	Isovalues []float64 `yaml:"isovalues"` //constant-current STM jobs
	ZMin      float64   `yaml:"zmin"`      //lowest tip height in constant-current mode

	Replicate []int     `yaml:"replicate"` //lateral replication, 1 or 2 values
	NSamples  int       `yaml:"nsamples"`  //resampling mesh points per axis
	PlotRange []float64 `yaml:"plotrange"` //color scale min,max; empty = automatic
	Format    string    `yaml:"format"`    //"plain" or "igor"
	Plot      bool      `yaml:"plot"`      //write PNG images of resampled planes
}

// DefaultParams mirrors the defaults of the command line tools.
func DefaultParams() *Params {
	return &Params{
		Emin:      -3.0,
		Emax:      3.0,
		De:        0.01,
		Sigma:     0.075,
		NSigmaCut: 5,
		Dz:        2.5,
		NSamples:  1000,
		Format:    "plain",
		Plot:      true,
	}
}

// LoadParams reads parameters from a YAML file, on top of the defaults.
func LoadParams(path string) (*Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pathError{err.Error(), path, []string{"LoadParams"}, true}
	}
	par := DefaultParams()
	if err := yaml.Unmarshal(raw, par); err != nil {
		return nil, pathError{"malformed parameter file: " + err.Error(), path, []string{"LoadParams"}, true}
	}
	if err := par.Validate(); err != nil {
		return nil, errDecorate(err, "LoadParams")
	}
	return par, nil
}

// Validate rejects malformed options before any file I/O happens.
func (p *Params) Validate() error {
	if _, err := ParseReplica(p.Replicate); err != nil {
		return errDecorate(err, "Validate")
	}
	if p.Sigma <= 0 {
		return newError("Validate", "sigma must be positive, got %g", p.Sigma)
	}
	if p.NSigmaCut <= 0 {
		return newError("Validate", "nsigmacut must be positive, got %d", p.NSigmaCut)
	}
	if p.De <= 0 {
		return newError("Validate", "de must be positive, got %g", p.De)
	}
	if p.Emax < p.Emin {
		return newError("Validate", "emax %g below emin %g", p.Emax, p.Emin)
	}
	if len(p.PlotRange) != 0 && len(p.PlotRange) != 2 {
		return newError("Validate", "plotrange needs exactly min and max, got %v", p.PlotRange)
	}
	if p.Format != "" && p.Format != "plain" && p.Format != "igor" {
		return newError("Validate", "unknown output format %q", p.Format)
	}
	return nil
}

// Replica returns the validated replication option, nil when unset.
// Validate must have accepted the parameters first.
func (p *Params) Replica() *Replica {
	r, _ := ParseReplica(p.Replicate)
	return r
}
