/*
 * igor.go, part of gostm.
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

//Package igor writes Igor Pro text files (.itx) for import into Igor Pro.
//Only the 2D wave subset needed for STM images is implemented.
package igor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Wave2d is a two-dimensional Igor wave: a matrix plus the physical scaling
// and labels of its two axes.
type Wave2d struct {
	Data   *mat.Dense
	Name   string //wave name inside Igor; default "wave0"
	Xmin   float64
	Xmax   float64
	Xlabel string
	Ymin   float64
	Ymax   float64
	Ylabel string
}

// Write emits the wave in Igor text format.
func (w *Wave2d) Write(out io.Writer) error {
	if w.Data == nil {
		return fmt.Errorf("igor.Write: nil wave data")
	}
	name := w.Name
	if name == "" {
		name = "wave0"
	}
	bw := bufio.NewWriter(out)
	r, c := w.Data.Dims()
	fmt.Fprintf(bw, "IGOR\n")
	fmt.Fprintf(bw, "WAVES/N=(%d,%d) %s\n", r, c, name)
	fmt.Fprintf(bw, "BEGIN\n")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%.12e", w.Data.At(i, j))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "END\n")
	fmt.Fprintf(bw, "X SetScale/I x %g,%g, %q, %s\n", w.Xmin, w.Xmax, w.Xlabel, name)
	fmt.Fprintf(bw, "X SetScale/I y %g,%g, %q, %s\n", w.Ymin, w.Ymax, w.Ylabel, name)
	return bw.Flush()
}

// Save writes the wave to a file. Igor wave names may not contain dots, so
// any in the chosen name are replaced by underscores.
func (w *Wave2d) Save(path string) error {
	if w.Name != "" {
		w.Name = strings.ReplaceAll(w.Name, ".", "_")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return w.Write(f)
}
