/*
 * cube.go, part of gostm.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// CubeHeader is the cheap, header-only view of a cube file: everything but
// the volumetric data. CP2K tags each wave function cube with its level and
// spin index in the comment line; Wfn and Spin hold those (both 1-based), or
// zero if the comment carries no tag.
type CubeHeader struct {
	Path    string
	Title   string
	Comment string
	Wfn     int
	Spin    int
	Grid    *Grid //header-only unless filled by ReadCube
}

var wfnComment = regexp.MustCompile(`WAVEFUNCTION\s+(\d+)\s+spin\s+(\d+)`)

// ReadCubeHeader reads the header of a cube file without loading the data,
// so many files can be inspected before deciding which to load in full.
func ReadCubeHeader(path string) (*CubeHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pathError{err.Error(), path, []string{"ReadCubeHeader"}, true}
	}
	defer f.Close()
	r := bufio.NewReader(f)
	h, _, err := readCube(r, path, false)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// ReadCube reads a cube file including the volumetric data. The returned
// header's Grid carries the full field, in Angstrom, with the cube layout
// (x slowest, z fastest).
func ReadCube(path string) (*CubeHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pathError{err.Error(), path, []string{"ReadCube"}, true}
	}
	defer f.Close()
	r := bufio.NewReader(f)
	h, _, err := readCube(r, path, true)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func readCube(r *bufio.Reader, path string, readData bool) (*CubeHeader, int, error) {
	fail := func(msg string) (*CubeHeader, int, error) {
		return nil, 0, pathError{msg, path, []string{"readCube"}, true}
	}
	title, err := r.ReadString('\n')
	if err != nil {
		return fail("missing title line: " + err.Error())
	}
	comment, err := r.ReadString('\n')
	if err != nil {
		return fail("missing comment line: " + err.Error())
	}
	h := &CubeHeader{Path: path, Title: strings.TrimSpace(title), Comment: strings.TrimSpace(comment)}
	if m := wfnComment.FindStringSubmatch(h.Comment); m != nil {
		h.Wfn, _ = strconv.Atoi(m[1])
		h.Spin, _ = strconv.Atoi(m[2])
	}
	words := bufio.NewScanner(r)
	words.Buffer(make([]byte, 64*1024), 64*1024)
	words.Split(bufio.ScanWords)
	nextInt := func() (int, error) {
		if !words.Scan() {
			return 0, fmt.Errorf("truncated header")
		}
		return strconv.Atoi(words.Text())
	}
	nextFloat := func() (float64, error) {
		if !words.Scan() {
			return 0, fmt.Errorf("truncated file")
		}
		return strconv.ParseFloat(words.Text(), 64)
	}
	natoms, err := nextInt()
	if err != nil {
		return fail("malformed atom count: " + err.Error())
	}
	if natoms < 0 {
		// Cube files with per-point value counts (negative natoms) are not
		// written by the codes this package targets.
		return fail(fmt.Sprintf("unsupported cube variant (natoms = %d)", natoms))
	}
	g := &Grid{}
	for i := 0; i < 3; i++ {
		if g.Origin[i], err = nextFloat(); err != nil {
			return fail("malformed origin: " + err.Error())
		}
		g.Origin[i] *= Bohr2A
	}
	for i := 0; i < 3; i++ {
		n, err := nextInt()
		if err != nil || n < 1 {
			return fail(fmt.Sprintf("malformed axis %d length", i))
		}
		g.Shape[i] = n
		for j := 0; j < 3; j++ {
			v, err := nextFloat()
			if err != nil {
				return fail(fmt.Sprintf("malformed axis %d vector: %s", i, err.Error()))
			}
			//the cube stores the per-step vector; the cell is n steps long
			g.Cell[i][j] = v * Bohr2A * float64(n)
		}
	}
	g.Atoms = make([]Atom, natoms)
	for i := range g.Atoms {
		a := &g.Atoms[i]
		if a.Number, err = nextInt(); err != nil {
			return fail(fmt.Sprintf("malformed atom %d: %s", i, err.Error()))
		}
		if a.Charge, err = nextFloat(); err != nil {
			return fail(fmt.Sprintf("malformed atom %d charge: %s", i, err.Error()))
		}
		var pos [3]float64
		for j := 0; j < 3; j++ {
			if pos[j], err = nextFloat(); err != nil {
				return fail(fmt.Sprintf("malformed atom %d position: %s", i, err.Error()))
			}
			pos[j] *= Bohr2A
		}
		a.X, a.Y, a.Z = pos[0], pos[1], pos[2]
	}
	h.Grid = g
	if !readData {
		return h, natoms, nil
	}
	n := g.Shape[0] * g.Shape[1] * g.Shape[2]
	g.Data = make([]float64, n)
	for i := 0; i < n; i++ {
		if g.Data[i], err = nextFloat(); err != nil {
			return fail(fmt.Sprintf("truncated data block at value %d of %d: %s", i, n, err.Error()))
		}
	}
	return h, natoms, nil
}

// WriteCube writes grid g as a Gaussian cube file. Lengths are converted
// back to Bohr. Title and comment each occupy one line; newlines in them are
// replaced by spaces.
func WriteCube(path string, g *Grid, title, comment string) error {
	f, err := os.Create(path)
	if err != nil {
		return pathError{err.Error(), path, []string{"WriteCube"}, true}
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := writeCube(w, g, title, comment); err != nil {
		return pathError{err.Error(), path, []string{"WriteCube"}, true}
	}
	if err := w.Flush(); err != nil {
		return pathError{err.Error(), path, []string{"WriteCube"}, true}
	}
	return nil
}

func writeCube(w io.Writer, g *Grid, title, comment string) error {
	if !g.HasData() {
		return fmt.Errorf("grid holds no data")
	}
	oneline := func(s string) string { return strings.ReplaceAll(s, "\n", " ") }
	if _, err := fmt.Fprintf(w, "%s\n%s\n", oneline(title), oneline(comment)); err != nil {
		return err
	}
	fmt.Fprintf(w, "%5d%12.6f%12.6f%12.6f\n", len(g.Atoms),
		g.Origin[0]*A2Bohr, g.Origin[1]*A2Bohr, g.Origin[2]*A2Bohr)
	for i := 0; i < 3; i++ {
		n := float64(g.Shape[i])
		fmt.Fprintf(w, "%5d%12.6f%12.6f%12.6f\n", g.Shape[i],
			g.Cell[i][0]*A2Bohr/n, g.Cell[i][1]*A2Bohr/n, g.Cell[i][2]*A2Bohr/n)
	}
	for _, a := range g.Atoms {
		fmt.Fprintf(w, "%5d%12.6f%12.6f%12.6f%12.6f\n", a.Number, a.Charge,
			a.X*A2Bohr, a.Y*A2Bohr, a.Z*A2Bohr)
	}
	col := 0
	for _, v := range g.Data {
		if _, err := fmt.Fprintf(w, "%13.5e", v); err != nil {
			return err
		}
		col++
		if col == 6 {
			fmt.Fprint(w, "\n")
			col = 0
		}
	}
	if col != 0 {
		fmt.Fprint(w, "\n")
	}
	return nil
}
