/*
 * match_test.go, part of gostm.
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

import "testing"

//TestMatchLevels checks the pairing rule: a cube header matches a level
//when its wave function index is the level's band index and its spin tag is
//the 0-based spin channel plus one.
func TestMatchLevels(Te *testing.T) {
	s := &Spectrum{
		Spins: []int{0, 1},
		Channels: []*Levels{
			{Levels: []EnergyLevel{
				{Spin: 0, Index: 1, Energy: -0.5},
				{Spin: 0, Index: 2, Energy: 0.2},
				{Spin: 0, Index: 3, Energy: 5.0}, //far outside any window
			}},
			{Levels: []EnergyLevel{
				{Spin: 1, Index: 1, Energy: 0.1},
			}},
		},
	}
	headers := []*CubeHeader{
		{Path: "a.cube", Wfn: 1, Spin: 1},
		{Path: "b.cube", Wfn: 1, Spin: 2},
		{Path: "c.cube", Wfn: 3, Spin: 1},
	}
	matches, missing := MatchLevels(s, headers, -1, 1, 0.075, 5)
	if len(matches) != 2 {
		Te.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Header.Path != "a.cube" || matches[0].Level.Spin != 0 {
		Te.Errorf("spin 0 level paired with %s", matches[0].Header.Path)
	}
	if matches[1].Header.Path != "b.cube" || matches[1].Level.Spin != 1 {
		Te.Errorf("spin 1 level paired with %s", matches[1].Header.Path)
	}
	//level (0,2) is in the window but has no cube: reported, not fatal
	if len(missing) != 1 || missing[0].Index != 2 {
		Te.Fatalf("missing levels %v, want just band 2 of spin 0", missing)
	}
}

//TestMatchWindow checks that the level window is widened by
//sigma*nsigmacut on both sides, so levels whose broadened weight reaches
//into [emin,emax] are kept.
func TestMatchWindow(Te *testing.T) {
	s := &Spectrum{
		Spins: []int{0},
		Channels: []*Levels{
			{Levels: []EnergyLevel{
				{Spin: 0, Index: 1, Energy: -1.3},  //inside the widened window
				{Spin: 0, Index: 2, Energy: -1.45}, //outside even widened
			}},
		},
	}
	headers := []*CubeHeader{
		{Path: "a.cube", Wfn: 1, Spin: 1},
		{Path: "b.cube", Wfn: 2, Spin: 1},
	}
	matches, missing := MatchLevels(s, headers, -1, 1, 0.075, 5) //window edge at -1.375
	if len(matches) != 1 || matches[0].Level.Index != 1 {
		Te.Fatalf("got matches %v, want only band 1", matches)
	}
	if len(missing) != 0 {
		Te.Errorf("levels outside the window reported missing: %v", missing)
	}
}
