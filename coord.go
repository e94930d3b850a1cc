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

// cphys extracts the physical coordination from a packed coord value:
// the units digit under a positive modulus, so negative masked values
// still map into [0, 10).
func cphys(c int) int {
	return (c%10 + 10) % 10
}

// CountCoord recounts the physical coordination of site i. The mask decade
// is first canonicalized by flooring to its multiple of ten (a non-negative
// value carries no mask and resets to zero), then the units digit is set to
// the number of non-VACANCY first-shell neighbors.
func (a *App) CountCoord(i int) {
	c := a.Coord[i]
	switch {
	case c >= 0:
		c = 0
	default:
		c -= cphys(c)
	}
	for s := 0; s < a.Lattice.NumNeigh[i]; s++ {
		if a.Element[a.Lattice.Neighbor[i][s]] != VACANCY {
			c++
		}
	}
	a.Coord[i] = c
}

// maskShells walks the first and second neighbor shells of site i and
// shifts the coord of each distinct visited site: first-shell sites by
// delta1 and second-shell sites by delta2. Site i itself is excluded.
func (a *App) maskShells(i, delta1, delta2 int) {
	l := a.Lattice
	nsites := 0
	isite := l.I2Site[i]
	a.echeck[isite] = 1
	a.esites = append(a.esites[:0], isite)
	nsites++
	for s := 0; s < l.NumNeigh[i]; s++ {
		nn := l.Neighbor[i][s]
		isite = l.I2Site[nn]
		if isite >= 0 && a.echeck[isite] == 0 {
			a.echeck[isite] = 1
			a.esites = append(a.esites, isite)
			nsites++
			a.Coord[nn] += delta1
		}
		for ss := 0; ss < l.NumNeigh[nn]; ss++ {
			nnn := l.Neighbor[nn][ss]
			isite = l.I2Site[nnn]
			if isite >= 0 && a.echeck[isite] == 0 {
				a.echeck[isite] = 1
				a.esites = append(a.esites, isite)
				nsites++
				a.Coord[nnn] += delta2
			}
		}
	}
	for m := 0; m < nsites; m++ {
		a.echeck[a.esites[m]] = 0
	}
	a.esites = a.esites[:0]
}

// PutMask marks the neighborhood of site i as sterically blocked by a
// freshly adsorbed bulky group: second-shell sites lose 50 from coord. The
// first-shell shift is zero but the walk is kept for symmetry with the
// same-z mask.
func (a *App) PutMask(i int) {
	a.maskShells(i, 0, -50)
}

// RemoveMask undoes PutMask.
func (a *App) RemoveMask(i int) {
	a.maskShells(i, 0, 50)
}

// maskSameZ shifts the coord of each distinct same-z neighbor of site i
// by delta.
func (a *App) maskSameZ(i, delta int) {
	l := a.Lattice
	nsites := 0
	isite := l.I2Site[i]
	a.echeck[isite] = 1
	a.esites = append(a.esites[:0], isite)
	nsites++
	for _, nn := range a.sameZ[i] {
		isite = l.I2Site[nn]
		if isite >= 0 && a.echeck[isite] == 0 {
			a.echeck[isite] = 1
			a.esites = append(a.esites, isite)
			nsites++
			a.Coord[nn] += delta
		}
	}
	for m := 0; m < nsites; m++ {
		a.echeck[a.esites[m]] = 0
	}
	a.esites = a.esites[:0]
}

// PutMask2 blocks the in-plane neighbors of site i: each same-z neighbor
// loses 10 from coord.
func (a *App) PutMask2(i int) {
	a.maskSameZ(i, -10)
}

// RemoveMask2 undoes PutMask2.
func (a *App) RemoveMask2(i int) {
	a.maskSameZ(i, 10)
}
