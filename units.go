/*
 * units.go, part of gostm.
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

// Conversion factors between the units of the file formats (atomic units)
// and the units used by this package (Angstrom, eV).
const (
	Bohr2A = 0.52917721092 //Bohr radius in Angstrom
	A2Bohr = 1 / Bohr2A
	Ha2eV  = 27.21138505 //Hartree energy in eV
)
