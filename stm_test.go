/*
 * stm_test.go, part of gostm.
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
	"path/filepath"
	"strings"
	"testing"
)

//TestRunSTM drives the image pipeline end to end on one cube with one
//constant-height and one constant-current job, without plotting.
func TestRunSTM(Te *testing.T) {
	dir := Te.TempDir()
	cube := filepath.Join(dir, "stm.cube")
	g := layerGrid()
	if err := WriteCube(cube, g, "ldos", "no tag"); err != nil {
		Te.Fatal(err)
	}

	par := DefaultParams()
	par.Heights = []float64{0.75}
	par.Isovalues = []float64{2.5}
	par.Plot = false
	if err := RunSTM(par, []string{cube}); err != nil {
		Te.Fatal(err)
	}

	dat := cube + ".dz0.75.dat"
	raw, err := os.ReadFile(dat)
	if err != nil {
		Te.Fatal("constant-height output missing:", err)
	}
	text := string(raw)
	if !strings.HasPrefix(text, "# STM simulation based on ") {
		Te.Errorf("output header missing:\n%s", text[:60])
	}
	m, err := ReadMatrix(strings.NewReader(text))
	if err != nil {
		Te.Fatal(err)
	}
	if r, c := m.Dims(); r != 2 || c != 2 {
		Te.Errorf("plane written as %dx%d, want 2x2", r, c)
	}
	if _, err := os.Stat(cube + ".iso2.5.dat"); err != nil {
		Te.Error("constant-current output missing:", err)
	}
	//no plotting requested: no png, no resampled matrix
	if _, err := os.Stat(cube + ".dz0.75.png"); err == nil {
		Te.Error("png written although plotting is off")
	}
}

func TestRunSTMIgor(Te *testing.T) {
	dir := Te.TempDir()
	cube := filepath.Join(dir, "stm.cube")
	if err := WriteCube(cube, layerGrid(), "ldos", "no tag"); err != nil {
		Te.Fatal(err)
	}
	par := DefaultParams()
	par.Heights = []float64{0.75}
	par.Format = "igor"
	par.Plot = false
	if err := RunSTM(par, []string{cube}); err != nil {
		Te.Fatal(err)
	}
	raw, err := os.ReadFile(cube + ".dz0.75.itx")
	if err != nil {
		Te.Fatal("igor output missing:", err)
	}
	if !strings.HasPrefix(string(raw), "IGOR\n") {
		Te.Error("output is not an Igor text file")
	}
}

func TestRunSTMRejects(Te *testing.T) {
	par := DefaultParams() //neither heights nor isovalues
	if err := RunSTM(par, []string{"whatever.cube"}); err == nil {
		Te.Error("run without jobs accepted")
	}
	par.Heights = []float64{2.5}
	par.Sigma = -1
	if err := RunSTM(par, []string{"whatever.cube"}); err == nil {
		Te.Error("invalid parameters accepted")
	}
	par = DefaultParams()
	par.Heights = []float64{2.5}
	if err := RunSTM(par, []string{"does-not-exist.cube"}); err == nil {
		Te.Error("missing cube file accepted")
	}
}
