/*
 * matrixio.go, part of gostm.
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
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// WriteMatrix writes m as plain text, one row per line, values in %.18e.
// Each line of header is written first, prefixed with "# ". The format is
// interchangeable with numpy's savetxt/genfromtxt; NaN is spelled "nan".
func WriteMatrix(w io.Writer, m *mat.Dense, header string) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		for _, line := range strings.Split(header, "\n") {
			if _, err := fmt.Fprintf(bw, "# %s\n", line); err != nil {
				return err
			}
		}
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%.18e", m.At(i, j))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadMatrix reads a plain-text matrix as written by WriteMatrix, skipping
// "#" header lines. All rows must have the same number of fields.
func ReadMatrix(r io.Reader) (*mat.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	var rows [][]float64
	cols := -1
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if cols == -1 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, newError("ReadMatrix", "row %d has %d fields, expected %d", len(rows), len(fields), cols)
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, newError("ReadMatrix", "bad value %q in row %d", f, len(rows))
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errDecorate(err, "ReadMatrix")
	}
	if len(rows) == 0 {
		return nil, newError("ReadMatrix", "no data rows")
	}
	flat := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return mat.NewDense(len(rows), cols, flat), nil
}

// WriteMatrixFile is WriteMatrix into a newly created file.
func WriteMatrixFile(path string, m *mat.Dense, header string) error {
	f, err := os.Create(path)
	if err != nil {
		return pathError{err.Error(), path, []string{"WriteMatrixFile"}, true}
	}
	defer f.Close()
	if err := WriteMatrix(f, m, header); err != nil {
		return pathError{err.Error(), path, []string{"WriteMatrixFile"}, true}
	}
	return nil
}
