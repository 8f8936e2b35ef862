/*
 * doc.go, part of gostm.
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

/*Package stm post-processes volumetric electronic-structure data (Gaussian
cube files, as written by CP2K and similar DFT codes) into Scanning Tunneling
Microscopy and Spectroscopy observables.


	**goSTM capabilities**

    Reads and writes Gaussian cube files, including the CP2K convention of
	tagging each file with its wave function index and spin in the comment
	line. Headers can be read without loading the volumetric data, so a large
	set of cube files can be inspected cheaply before deciding which ones to
	load.

    Extracts constant-height planes (the scalar field at a fixed tip height
	above the topmost atom) and constant-current planes (the height at which
	the field first reaches a given isovalue) from a volume, with optional
	periodic replication along the lateral axes.

    Resamples planes from the (possibly non-orthogonal) lattice onto a
	uniform Cartesian mesh for plotting and analysis.

    Assembles Scanning Tunneling Spectroscopy cubes: planes extracted from
	many single-level cube files are folded into one energy-resolved volume
	with Gaussian broadening, reading one volume at a time and caching
	extracted planes on disk so repeated runs skip the expensive cube reads.

    Parses CP2K energy-level output (MOLog or regular output) into spectra
	grouped by spin channel.

    Writes plain-text matrices, Igor Pro waves (subpackage igor) and PNG
	heat maps (subpackage stmplot).

All lengths used by this package are in Angstrom and all energies in eV;
cube files are converted from Bohr on read and back on write.
*/
package stm
