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

// refreshDepth is how many neighbor hops around a fired site have their
// propensities recomputed. Mask side-effects reach the second shell, and
// second-shell reactions see two hops beyond that.
const refreshDepth = 4

// noSpecies is the pre-transition species recorded for an absent partner.
const noSpecies Species = -1

// SiteEvent selects one event from site i's candidate list with
// probability proportional to propensity, applies its species mutation and
// mask side-effects, advances the pulse phase from the current simulated
// time, and recomputes the propensity of every site within refreshDepth
// hops of i, reporting the touched sites to the solver.
func (a *App) SiteEvent(i int, rng Uniform) {
	l := a.Lattice

	threshold := rng.Uniform() * a.Propensity[l.I2Site[i]]
	proball := 0.0
	ievent := a.firstevent[i]
	for {
		proball += a.events[ievent].prop
		if proball >= threshold {
			break
		}
		ievent = a.events[ievent].next
	}

	ev := &a.events[ievent]
	which := ev.which
	j := ev.jpartner
	k := ev.kpartner
	g := ev.gpartner

	elI := a.Element[i]
	elG := noSpecies
	if g >= 0 {
		elG = a.Element[g]
	}

	rstyle := ev.style
	switch {
	case rstyle == styleSingle:
		a.Element[i] = a.sreact[which].Out[0]
		a.sreact[which].count++
	case rstyle == styleSecond && j == -1:
		a.Element[i] = a.dreact[which].Out[0]
		a.Element[k] = a.dreact[which].Out[1]
		a.dreact[which].count++
	case rstyle == styleFirst && k == -1:
		a.Element[i] = a.vreact[which].Out[0]
		a.Element[j] = a.vreact[which].Out[1]
		a.vreact[which].count++
	case rstyle == styleSameZ:
		a.Element[i] = a.freact[which].Out[0]
		a.Element[g] = a.freact[which].Out[1]
		a.freact[which].count++
	case rstyle == styleNull:
		// no mutation
	default:
		panic("ald: illegal execution event")
	}

	a.advancePulse(a.Time)

	// Steric mask side-effects. A bulky adsorbate blocks its neighborhood
	// when it lands and frees it when a ligand is stripped.
	switch rstyle {
	case styleSingle:
		if (elI == OHAlaX3 || elI == OHAlbX3) && a.Element[i] == OH {
			a.RemoveMask(i)
			a.RemoveMask2(i)
		} else if (elI == OAlaX2H2O || elI == OAlbX2H2O) &&
			(a.Element[i] == OAlaXOH || a.Element[i] == OAlbXOH) {
			a.RemoveMask(i)
			a.RemoveMask2(i)
		}
	case styleFirst:
		if elI == OH && (a.Element[i] == OHAlaX3 || a.Element[i] == OHAlbX3) {
			a.PutMask(i)
			a.PutMask2(i)
		}
	case styleSameZ:
		if (elG == OAlaX2 || elG == OAlbX2) && (a.Element[g] == OAlaX || a.Element[g] == OAlbX) {
			a.RemoveMask(g)
			a.RemoveMask2(g)
		}
	}

	// Breadth-first propensity refresh around i.
	touched := a.esites[:0]
	frontier := []int{i}
	isite := l.I2Site[i]
	a.CountCoord(i)
	a.Propensity[isite] = a.SitePropensity(i)
	touched = append(touched, isite)
	a.echeck[isite] = 1
	for depth := 0; depth < refreshDepth; depth++ {
		var next []int
		for _, s := range frontier {
			for n := 0; n < l.NumNeigh[s]; n++ {
				m := l.Neighbor[s][n]
				isite = l.I2Site[m]
				if isite >= 0 && a.echeck[isite] == 0 {
					a.CountCoord(m)
					a.Propensity[isite] = a.SitePropensity(m)
					touched = append(touched, isite)
					a.echeck[isite] = 1
					next = append(next, m)
				}
			}
		}
		frontier = next
	}

	if a.Solver != nil {
		a.Solver.Update(touched, a.Propensity)
	}

	for _, s := range touched {
		a.echeck[s] = 0
	}
	a.esites = touched[:0]
}
