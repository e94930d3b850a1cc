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

// deltaEvent is the event arena growth increment.
const deltaEvent = 100000

// nullPropensity keeps every site's total propensity strictly positive so
// the solver never stalls on a site with no admissible reaction.
const nullPropensity = 0.1

// event is one candidate firing at a site. Partner fields hold site
// indices for the two-site classes and -1 when unused. Events are arena
// allocated; next links either the owning site's chain or the free chain.
type event struct {
	style    int
	which    int
	jpartner int
	kpartner int
	gpartner int
	next     int
	prop     float64
}

// clearEvents returns all events of site i to the free chain.
func (a *App) clearEvents(i int) {
	index := a.firstevent[i]
	for index >= 0 {
		next := a.events[index].next
		a.events[index].next = a.freeevent
		a.freeevent = index
		a.nevents--
		index = next
	}
	a.firstevent[i] = -1
}

// addEvent pushes an event onto site i's chain, growing the arena when the
// free chain is exhausted. A zero propensity here is a program error:
// inadmissible reactions must be filtered before this point.
func (a *App) addEvent(i, style, which int, prop float64, jpartner, kpartner, gpartner int) {
	if prop == 0 {
		panic("ald: zero propensity in addEvent")
	}
	if a.nevents == len(a.events) {
		grown := make([]event, len(a.events)+deltaEvent)
		copy(grown, a.events)
		a.events = grown
		for m := a.nevents; m < len(a.events); m++ {
			a.events[m].next = m + 1
		}
		a.freeevent = a.nevents
	}

	ev := a.freeevent
	next := a.events[ev].next

	a.events[ev] = event{
		style:    style,
		which:    which,
		jpartner: jpartner,
		kpartner: kpartner,
		gpartner: gpartner,
		next:     a.firstevent[i],
		prop:     prop,
	}
	a.firstevent[i] = ev
	a.freeevent = next
	a.nevents++
}
