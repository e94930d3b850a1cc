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
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// qcmWeight is the per-species mass weight used for the quartz crystal
// microbalance signal. The values are integer molar masses [g/mol] and
// must stay as they are for output compatibility.
var qcmWeight = [numSpecies]int{
	0,  // VAC
	16, // O
	17, // OH
	27, // Ala
	89, // OHAlaX3
	73, // OAlaX2
	91, // OAlaX2H2O
	75, // OAlaXOH
	58, // OAlaX
	60, // OAlaOH
	77, // OAlaOH2
	44, // AlaOH
	61, // AlaOH2
	27, // Alb
	89, // OHAlbX3
	73, // OAlbX2
	91, // OAlbX2H2O
	75, // OAlbXOH
	58, // OAlbX
	60, // OAlbOH
	77, // OAlbOH2
	44, // AlbOH
	61, // AlbOH2
	43, // OAla
	43, // OAlb
	18, // H2O
}

// ohgWeight counts hydroxyl groups per species.
var ohgWeight = [numSpecies]int{
	OH: 1, OHAlaX3: 1, OAlaXOH: 1, OAlaOH: 1, OAlaOH2: 2, AlaOH: 1, AlaOH2: 2,
	OHAlbX3: 1, OAlbXOH: 1, OAlbOH: 1, OAlbOH2: 2, AlbOH: 1, AlbOH2: 2,
}

// xgWeight counts methyl ligands per species.
var xgWeight = [numSpecies]int{
	OHAlaX3: 3, OAlaX2: 2, OAlaX2H2O: 2, OAlaXOH: 1, OAlaX: 1,
	OHAlbX3: 3, OAlbX2: 2, OAlbX2H2O: 2, OAlbXOH: 1, OAlbX: 1,
}

// alaSpecies marks the species containing the first aluminum variant.
var alaSpecies = [numSpecies]bool{
	Ala: true, OHAlaX3: true, OAlaX2: true, OAlaX2H2O: true, OAlaXOH: true,
	OAlaX: true, OAlaOH: true, OAlaOH2: true, AlaOH: true, AlaOH2: true, OAla: true,
}

// albSpecies marks the species containing the second aluminum variant.
var albSpecies = [numSpecies]bool{
	Alb: true, OHAlbX3: true, OAlbX2: true, OAlbX2H2O: true, OAlbXOH: true,
	OAlbX: true, OAlbOH: true, OAlbOH2: true, AlbOH: true, AlbOH2: true, OAlb: true,
}

// SpeciesHistogram counts the owned sites holding each species.
func (a *App) SpeciesHistogram() [numSpecies]int {
	var sites [numSpecies]int
	for i := 0; i < a.Lattice.Nlocal; i++ {
		sites[a.Element[i]]++
	}
	return sites
}

// TotalPropensity returns the sum of the per-site propensities currently
// known to the engine.
func (a *App) TotalPropensity() float64 {
	return floats.Sum(a.Propensity)
}

func weightedSum(sites *[numSpecies]int, w *[numSpecies]int) int {
	total := 0
	for i := 0; i < numSpecies; i++ {
		total += sites[i] * w[i]
	}
	return total
}

// QCM returns the mass-weighted species sum, the simulated quartz crystal
// microbalance signal.
func (a *App) QCM() int {
	sites := a.SpeciesHistogram()
	return weightedSum(&sites, &qcmWeight)
}

// OHG returns the hydroxyl group count over all owned sites.
func (a *App) OHG() int {
	sites := a.SpeciesHistogram()
	return weightedSum(&sites, &ohgWeight)
}

// XG returns the methyl ligand count over all owned sites.
func (a *App) XG() int {
	sites := a.SpeciesHistogram()
	return weightedSum(&sites, &xgWeight)
}

// Diagnostic kinds.
const (
	diagSpecies = iota
	diagEvents
	diagQCM
	diagOHG
	diagXG
	diagType1Total
	diagType2Total
	diagType3Total
	diagType4Total
	diagAllEvents
	diagAlaTotal
	diagAlbTotal
	diagOne
	diagTwo
	diagThree
	diagFour
)

// Diagnostic evaluates a list of named quantities against an engine:
// species counts, per-reaction fire counts (s1.., d1.., v1.., f1..),
// class and grand totals, live event count, and the derived QCM, OHG and
// XG signals.
type Diagnostic struct {
	app   *App
	list  []string
	which []int
	index []int
}

// NewDiagnostic validates the requested quantity names against the
// engine's declared reactions.
func NewDiagnostic(a *App, names ...string) (*Diagnostic, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("ald: diagnostic needs at least one quantity")
	}
	d := &Diagnostic{
		app:   a,
		list:  names,
		which: make([]int, len(names)),
		index: make([]int, len(names)),
	}
	for i, name := range names {
		switch name {
		case "events":
			d.which[i] = diagEvents
		case "QCM":
			d.which[i] = diagQCM
		case "OHG":
			d.which[i] = diagOHG
		case "XG":
			d.which[i] = diagXG
		case "type1_total":
			d.which[i] = diagType1Total
		case "type2_total":
			d.which[i] = diagType2Total
		case "type3_total":
			d.which[i] = diagType3Total
		case "type4_total":
			d.which[i] = diagType4Total
		case "all_events":
			d.which[i] = diagAllEvents
		case "ala_total":
			d.which[i] = diagAlaTotal
		case "alb_total":
			d.which[i] = diagAlbTotal
		default:
			if sp, err := SpeciesFromName(name); err == nil {
				d.which[i] = diagSpecies
				d.index[i] = int(sp)
				continue
			}
			kind, reactions, ok := counterClass(a, name)
			if !ok {
				return nil, fmt.Errorf("ald: invalid diagnostic quantity %q", name)
			}
			n, err := strconv.Atoi(name[1:])
			if err != nil || n < 1 || n > len(reactions) {
				return nil, fmt.Errorf("ald: invalid diagnostic quantity %q", name)
			}
			d.which[i] = kind
			d.index[i] = n - 1
		}
	}
	return d, nil
}

func counterClass(a *App, name string) (kind int, reactions []*Reaction, ok bool) {
	if len(name) < 2 {
		return 0, nil, false
	}
	switch name[0] {
	case 's':
		return diagOne, a.sreact, true
	case 'd':
		return diagTwo, a.dreact, true
	case 'v':
		return diagThree, a.vreact, true
	case 'f':
		return diagFour, a.freact, true
	}
	return 0, nil, false
}

func countTotal(reactions []*Reaction) int {
	total := 0
	for _, r := range reactions {
		total += r.count
	}
	return total
}

// Compute evaluates the diagnostic quantities in list order.
func (d *Diagnostic) Compute() []int {
	a := d.app
	sites := a.SpeciesHistogram()
	values := make([]int, len(d.list))
	for i := range d.list {
		switch d.which[i] {
		case diagSpecies:
			values[i] = sites[d.index[i]]
		case diagEvents:
			values[i] = a.nevents
		case diagQCM:
			values[i] = weightedSum(&sites, &qcmWeight)
		case diagOHG:
			values[i] = weightedSum(&sites, &ohgWeight)
		case diagXG:
			values[i] = weightedSum(&sites, &xgWeight)
		case diagType1Total:
			values[i] = countTotal(a.sreact)
		case diagType2Total:
			values[i] = countTotal(a.dreact)
		case diagType3Total:
			values[i] = countTotal(a.vreact)
		case diagType4Total:
			values[i] = countTotal(a.freact)
		case diagAllEvents:
			values[i] = countTotal(a.sreact) + countTotal(a.dreact) +
				countTotal(a.vreact) + countTotal(a.freact)
		case diagAlaTotal:
			for sp := 0; sp < numSpecies; sp++ {
				if alaSpecies[sp] {
					values[i] += sites[sp]
				}
			}
		case diagAlbTotal:
			for sp := 0; sp < numSpecies; sp++ {
				if albSpecies[sp] {
					values[i] += sites[sp]
				}
			}
		case diagOne:
			values[i] = a.sreact[d.index[i]].count
		case diagTwo:
			values[i] = a.dreact[d.index[i]].count
		case diagThree:
			values[i] = a.vreact[d.index[i]].count
		case diagFour:
			values[i] = a.freact[d.index[i]].count
		}
	}
	return values
}

// Header returns the column header line for Stats.
func (d *Diagnostic) Header() string {
	var b strings.Builder
	for _, name := range d.list {
		fmt.Fprintf(&b, " %6s ", name)
	}
	return b.String()
}

// Stats returns the current values formatted under Header.
func (d *Diagnostic) Stats() string {
	var b strings.Builder
	for _, v := range d.Compute() {
		fmt.Fprintf(&b, " %6d ", v)
	}
	return b.String()
}
