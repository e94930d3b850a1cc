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

// dpair identifies a second-shell event already added during one
// SitePropensity call, for duplicate suppression when a partner is
// reachable through more than one intermediate.
type dpair struct {
	partner int
	which   int
}

// SitePropensity rebuilds the candidate event list of site i and returns
// the total propensity: the sum over admissible reactions of the four
// classes plus the null event floor.
func (a *App) SitePropensity(i int) float64 {
	l := a.Lattice
	a.clearEvents(i)
	proball := 0.0

	// Single-site reactions.
	coordi := cphys(a.Coord[i])
	for m, r := range a.sreact {
		if r.propensity == 0 {
			continue
		}
		if a.Element[i] == r.In[0] &&
			coordMatches(a.Coord[i], r.Coord) &&
			(r.PressOn == a.pressureOn || r.PressOn == 0) &&
			coordi <= l.NumNeigh[i] {
			a.addEvent(i, styleSingle, m, r.propensity, -1, -1, -1)
			proball += r.propensity
		}
	}

	// Second-shell pairs. A partner k reachable through two intermediates
	// would be counted twice without the dseen filter.
	a.dseen = a.dseen[:0]
	for jj := 0; jj < l.NumNeigh[i]; jj++ {
		j := l.Neighbor[i][jj]
		for kk := 0; kk < l.NumNeigh[j]; kk++ {
			k := l.Neighbor[j][kk]
			if k == i {
				continue
			}
			coordk := cphys(a.Coord[k])
			for m, r := range a.dreact {
				if r.propensity == 0 {
					continue
				}
				if a.Element[i] == r.In[0] && a.Element[k] == r.In[1] &&
					(r.PressOn == a.pressureOn || r.PressOn == 0) &&
					coordMatches(a.Coord[i], r.Coord) &&
					coordMatches(a.Coord[k], r.Coord2) &&
					coordi <= l.NumNeigh[i] && coordk < l.NumNeigh[k] {
					seen := false
					for _, p := range a.dseen {
						if p.partner == k && p.which == m {
							seen = true
							break
						}
					}
					if !seen {
						a.addEvent(i, styleSecond, m, r.propensity, -1, k, -1)
						proball += r.propensity
						a.dseen = append(a.dseen, dpair{partner: k, which: m})
					}
				}
			}
		}
	}

	// First-shell pairs. No duplicate suppression: each neighbor is a
	// distinct pairing.
	for jj := 0; jj < l.NumNeigh[i]; jj++ {
		j := l.Neighbor[i][jj]
		coordj := cphys(a.Coord[j])
		for m, r := range a.vreact {
			if r.propensity == 0 {
				continue
			}
			if a.Element[i] == r.In[0] && a.Element[j] == r.In[1] &&
				coordMatches(a.Coord[i], r.Coord) &&
				coordMatches(a.Coord[j], r.Coord2) &&
				(r.PressOn == a.pressureOn || r.PressOn == 0) &&
				coordi <= l.NumNeigh[i] && coordj < l.NumNeigh[j] {
				a.addEvent(i, styleFirst, m, r.propensity, j, -1, -1)
				proball += r.propensity
			}
		}
	}

	// Same-z-plane pairs.
	for _, g := range a.sameZ[i] {
		coordg := cphys(a.Coord[g])
		for m, r := range a.freact {
			if r.propensity == 0 {
				continue
			}
			if a.Element[i] == r.In[0] && a.Element[g] == r.In[1] &&
				coordMatches(a.Coord[i], r.Coord) &&
				coordMatches(a.Coord[g], r.Coord2) &&
				(r.PressOn == a.pressureOn || r.PressOn == 0) &&
				coordi <= l.NumNeigh[i] && coordg < l.NumNeigh[g] {
				a.addEvent(i, styleSameZ, m, r.propensity, -1, -1, g)
				proball += r.propensity
			}
		}
	}

	// Null event.
	a.addEvent(i, styleNull, 0, nullPropensity, -1, -1, -1)
	proball += nullPropensity

	return proball
}
