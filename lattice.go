/*
Copyright © 2026 the ALD authors.
This file is part of ALD.

ALD is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ALD is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ALD.  If not, see <http://www.gnu.org/licenses/>.
*/

package ald

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ctessum/sparse"
)

// Lattice holds the site graph the engine operates on: coordinates, the
// neighbor lists, and the mapping from site index to solver index. The
// engine never modifies a Lattice.
type Lattice struct {
	// Nlocal is the number of owned sites.
	Nlocal int

	// MaxNeigh is the maximum neighbor-list length over all sites.
	MaxNeigh int

	// NumNeigh[i] is the number of neighbors of site i.
	NumNeigh []int

	// Neighbor[i][0:NumNeigh[i]] are the first-shell neighbors of site i.
	Neighbor [][]int

	// XYZ[i] is the coordinate of site i.
	XYZ [][3]float64

	// I2Site maps a site index to its index in the solver's propensity
	// array. Entries may be -1 for ghost sites owned by another domain.
	I2Site []int
}

// Check verifies that the lattice arrays are mutually consistent.
func (l *Lattice) Check() error {
	if l.Nlocal <= 0 {
		return fmt.Errorf("ald: lattice has no sites")
	}
	if len(l.NumNeigh) < l.Nlocal || len(l.Neighbor) < l.Nlocal ||
		len(l.XYZ) < l.Nlocal || len(l.I2Site) < l.Nlocal {
		return fmt.Errorf("ald: lattice arrays are shorter than Nlocal (%d)", l.Nlocal)
	}
	for i := 0; i < l.Nlocal; i++ {
		if l.NumNeigh[i] > len(l.Neighbor[i]) {
			return fmt.Errorf("ald: site %d has NumNeigh %d but neighbor list of length %d",
				i, l.NumNeigh[i], len(l.Neighbor[i]))
		}
		if l.NumNeigh[i] > l.MaxNeigh {
			return fmt.Errorf("ald: site %d has NumNeigh %d > MaxNeigh %d",
				i, l.NumNeigh[i], l.MaxNeigh)
		}
	}
	return nil
}

// SimpleCubic creates an nx × ny × nz simple-cubic lattice with spacing a
// and 6-fold connectivity (non-periodic). Site indices increase fastest in
// z, so sites in one vertical column are contiguous. I2Site is the
// identity mapping: all sites are owned.
func SimpleCubic(nx, ny, nz int, a float64) *Lattice {
	n := nx * ny * nz
	l := &Lattice{
		Nlocal:   n,
		MaxNeigh: 6,
		NumNeigh: make([]int, n),
		Neighbor: make([][]int, n),
		XYZ:      make([][3]float64, n),
		I2Site:   make([]int, n),
	}

	// Site id grid used to look up neighbors by integer coordinates.
	ids := sparse.ZerosDense(nx, ny, nz)
	i := 0
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				ids.Set(float64(i), ix, iy, iz)
				l.XYZ[i] = [3]float64{float64(ix) * a, float64(iy) * a, float64(iz) * a}
				l.I2Site[i] = i
				i++
			}
		}
	}

	i = 0
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				var nn []int
				if ix > 0 {
					nn = append(nn, int(ids.Get(ix-1, iy, iz)))
				}
				if ix < nx-1 {
					nn = append(nn, int(ids.Get(ix+1, iy, iz)))
				}
				if iy > 0 {
					nn = append(nn, int(ids.Get(ix, iy-1, iz)))
				}
				if iy < ny-1 {
					nn = append(nn, int(ids.Get(ix, iy+1, iz)))
				}
				if iz > 0 {
					nn = append(nn, int(ids.Get(ix, iy, iz-1)))
				}
				if iz < nz-1 {
					nn = append(nn, int(ids.Get(ix, iy, iz+1)))
				}
				l.Neighbor[i] = nn
				l.NumNeigh[i] = len(nn)
				i++
			}
		}
	}
	return l
}

// ReadSites reads site state from r. Each non-empty line holds
// "id element coord" where id is a zero-based site index, element is a
// species label, and coord is an integer. Lines starting with '#' are
// skipped. Sites not mentioned keep their current state.
func (a *App) ReadSites(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return fmt.Errorf("ald: site file line %d: expected 3 fields, got %d", line, len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil || id < 0 || id >= a.Lattice.Nlocal {
			return fmt.Errorf("ald: site file line %d: bad site id %q", line, fields[0])
		}
		sp, err := SpeciesFromName(fields[1])
		if err != nil {
			return fmt.Errorf("ald: site file line %d: %v", line, err)
		}
		c, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("ald: site file line %d: bad coord %q", line, fields[2])
		}
		a.Element[id] = sp
		a.Coord[id] = c
	}
	return scanner.Err()
}
