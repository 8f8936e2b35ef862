/*
 * spectrum.go, part of gostm.
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
	"os"
	"regexp"
	"strconv"
	"strings"
)

// EnergyLevel is one Kohn-Sham level: spin channel (0-based), band index as
// enumerated by the producing code (1-based in CP2K output), energy in eV and
// occupation.
type EnergyLevel struct {
	Spin       int
	Index      int
	Energy     float64
	Occupation float64
}

// Levels is the ordered level sequence of one spin channel plus its Fermi
// energy, in eV. Energies are assumed non-decreasing, as CP2K writes them;
// the parser does not sort.
type Levels struct {
	Levels []EnergyLevel
	Fermi  float64
}

// Shift moves all energies of the channel, Fermi included, by de.
func (l *Levels) Shift(de float64) {
	for i := range l.Levels {
		l.Levels[i].Energy += de
	}
	l.Fermi += de
}

// Spectrum is a collection of energy levels grouped by spin channel.
type Spectrum struct {
	Spins    []int
	Channels []*Levels
}

// Shift moves all energies of all channels by de.
func (s *Spectrum) Shift(de float64) {
	for _, c := range s.Channels {
		c.Shift(de)
	}
}

func (s *Spectrum) String() string {
	text := fmt.Sprintf("Spectrum containing %d spins\n", len(s.Channels))
	for i, c := range s.Channels {
		text += fmt.Sprintf("spin %d : %d levels, Fermi %.4f eV\n",
			s.Spins[i], len(c.Levels), c.Fermi)
	}
	return text
}

// eigenvalueBlocks matches one EIGENVALUES block per spin: the header line,
// two lines to skip, the numeric level rows, then (lazily) the Fermi energy
// line. The same pattern appears in CP2K's MOLog files and regular output.
var eigenvalueBlocks = regexp.MustCompile(
	`(?s)EIGENVALUES([^\n]*)\n[^\n]*\n[^\n]*\n([-.\s\d]*).*?Fermi energy:(\s*[-\d.]+)`)

// ReadMOLog parses CP2K energy levels from an MOLog file or regular output.
// Only the converged blocks (those not marked SCF) are taken, one per spin
// channel and in channel order. Energies and Fermi are converted from
// Hartree to eV.
func ReadMOLog(path string) (*Spectrum, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pathError{err.Error(), path, []string{"ReadMOLog"}, true}
	}
	s := &Spectrum{}
	spin := 0
	for _, m := range eigenvalueBlocks.FindAllStringSubmatch(string(raw), -1) {
		if strings.Contains(m[1], "SCF") {
			continue
		}
		levels, err := parseLevelRows(m[2], spin)
		if err != nil {
			return nil, pathError{err.Error(), path, []string{"ReadMOLog"}, true}
		}
		fermi, err := strconv.ParseFloat(strings.TrimSpace(m[3]), 64)
		if err != nil {
			return nil, pathError{"malformed Fermi energy: " + err.Error(), path, []string{"ReadMOLog"}, true}
		}
		s.Channels = append(s.Channels, &Levels{Levels: levels, Fermi: fermi * Ha2eV})
		s.Spins = append(s.Spins, spin)
		spin++
	}
	if len(s.Channels) == 0 {
		return nil, pathError{"no eigenvalue blocks found", path, []string{"ReadMOLog"}, true}
	}
	return s, nil
}

// parseLevelRows reads "index energy occupation" rows, converting energies
// from Hartree to eV.
func parseLevelRows(block string, spin int) ([]EnergyLevel, error) {
	var levels []EnergyLevel
	for _, line := range strings.Split(block, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed level row %q", line)
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("malformed level index in row %q", line)
		}
		e, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed energy in row %q", line)
		}
		occ, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed occupation in row %q", line)
		}
		levels = append(levels, EnergyLevel{Spin: spin, Index: idx, Energy: e * Ha2eV, Occupation: occ})
	}
	return levels, nil
}
