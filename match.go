/*
 * match.go, part of gostm.
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

import "log"

// LevelMatch pairs an energy level with the header of the cube file holding
// its wave function.
type LevelMatch struct {
	Level  EnergyLevel
	Header *CubeHeader
}

// MatchLevels selects the levels within [emin - sigma*nsigmacut,
// emax + sigma*nsigmacut] and pairs each with its cube header. A header
// matches a level when its wave function index equals the level's band index
// and its spin equals the level's spin channel plus one: cube files count
// spins from 1, spin channels count from 0.
//
// Levels inside the window without a cube file are logged and returned as
// the second value; they are excluded from the result but do not abort the
// run, since a partial spectrum is still useful. Only the returned matches
// will ever be opened with full data, which bounds memory and I/O.
func MatchLevels(s *Spectrum, headers []*CubeHeader, emin, emax, sigma float64, nsigmacut int) ([]LevelMatch, []EnergyLevel) {
	lo := emin - sigma*float64(nsigmacut)
	hi := emax + sigma*float64(nsigmacut)
	var matches []LevelMatch
	var missing []EnergyLevel
	for ci, ch := range s.Channels {
		spin := s.Spins[ci]
		for _, l := range ch.Levels {
			if l.Energy < lo || l.Energy > hi {
				continue
			}
			found := false
			for _, h := range headers {
				if h.Wfn == l.Index && h.Spin == spin+1 {
					matches = append(matches, LevelMatch{Level: l, Header: h})
					found = true
					log.Printf("Found cube file for spin %d, energy %f, occupation %f",
						spin+1, l.Energy, l.Occupation)
					break
				}
			}
			if !found {
				missing = append(missing, l)
				log.Printf("Missing cube file for spin %d, energy %f, occupation %f",
					spin+1, l.Energy, l.Occupation)
			}
		}
	}
	return matches, missing
}
