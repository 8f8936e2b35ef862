/*
 * cache.go, part of gostm.
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

	"github.com/klauspost/compress/zstd"
)

// Extracted planes are persisted next to their cube files, keyed by source
// file name and extraction parameter (e.g. "slab.cube.dz2.5.zst" for a
// constant-height plane at 2.5 A). Reading a full cube only to keep one
// plane of it is by far the dominant cost of an STS run; with the cache a
// repeated run reads no cube data at all.
//
// An existing cache file is trusted as is: neither the cube's modification
// time nor its content is checked against it. If the cube files are
// regenerated in place, stale planes will be served; call
// InvalidateCachedPlane (or remove the .zst files) when inputs change.

const cacheExt = ".zst"

// CachedPlanePath returns the cache file path for the given cube file and
// extraction.
func CachedPlanePath(cubePath string, spec PlaneSpec) string {
	return cubePath + spec.CacheSuffix() + cacheExt
}

// LoadCachedPlane returns the cached plane for the given cube file and
// extraction, or ok == false if there is no usable cache entry. The extent
// is restored from the header-independent matrix alone, so callers that
// need it must recompute it from the grid; the STS path never does.
func LoadCachedPlane(cubePath string, spec PlaneSpec) (*Plane, bool) {
	f, err := os.Open(CachedPlanePath(cubePath, spec))
	if err != nil {
		return nil, false
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, false
	}
	defer dec.Close()
	m, err := ReadMatrix(dec)
	if err != nil {
		// An unreadable entry is treated as a miss; the plane will be
		// re-extracted and the entry rewritten.
		return nil, false
	}
	return &Plane{Data: m}, true
}

// StoreCachedPlane persists an extracted plane for reuse by later runs.
func StoreCachedPlane(cubePath string, spec PlaneSpec, p *Plane) error {
	path := CachedPlanePath(cubePath, spec)
	f, err := os.Create(path)
	if err != nil {
		return pathError{err.Error(), path, []string{"StoreCachedPlane"}, true}
	}
	defer f.Close()
	enc, err := zstd.NewWriter(f)
	if err != nil {
		return pathError{err.Error(), path, []string{"StoreCachedPlane"}, true}
	}
	if err := WriteMatrix(enc, p.Data, ""); err != nil {
		enc.Close()
		return pathError{err.Error(), path, []string{"StoreCachedPlane"}, true}
	}
	return enc.Close()
}

// InvalidateCachedPlane removes the cache entry for the given cube file and
// extraction, if present.
func InvalidateCachedPlane(cubePath string, spec PlaneSpec) error {
	err := os.Remove(CachedPlanePath(cubePath, spec))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
