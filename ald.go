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

// Package ald implements a lattice kinetic Monte Carlo engine for atomic
// layer deposition of a trimethylaluminum precursor followed by an
// oxidizer. The engine keeps per-site chemical state, enumerates candidate
// reactions under four geometric event classes, computes Arrhenius
// propensities, and advances a cyclic precursor/purge/oxidizer/purge
// pressure schedule. Site selection and time advancement belong to a
// stochastic solver such as the ones in package solve.
package ald

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Version is this module's version.
const Version = "1.2.1"

// Boltzmann is the Boltzmann constant in eV/K, used to evaluate Arrhenius
// rates.
const Boltzmann = 8.617333262e-5

const (
	// zTolerance is the maximum difference between two z coordinates for
	// the sites to be considered in the same plane.
	zTolerance = 1e-6

	// maxSameZNeighbors is the number of in-plane neighbors kept per site.
	maxSameZNeighbors = 6
)

// Uniform is a source of uniform random numbers in [0, 1).
type Uniform interface {
	Uniform() float64
}

// Solver receives propensity updates for the sites touched by an event.
// sites holds solver indices (I2Site values), and propensity is the full
// per-solver-index propensity array.
type Solver interface {
	Update(sites []int, propensity []float64)
}

// App is the KMC site–event engine. Reactions are declared through Command
// before Setup; after Setup the host alternates between solver selection
// and SiteEvent.
type App struct {
	Lattice *Lattice

	// Temperature is the run temperature [K]. It is fixed for the run and
	// must be nonzero at Setup.
	Temperature float64

	// Time is the current simulated time [s]. The host loop advances it
	// after each solver step; SiteEvent reads it to update the pulse phase.
	Time float64

	// Solver, if non-nil, is notified of propensity changes after each
	// event.
	Solver Solver

	// Log receives setup reports and warnings. If nil, the standard
	// logger is used.
	Log logrus.FieldLogger

	// Element[i] is the chemical identity of site i.
	Element []Species

	// Coord[i] is the signed coordination counter of site i. The units
	// digit (positive modulus) is the physical coordination; the tens
	// digits carry the steric mask level.
	Coord []int

	// Propensity[isite] is the total event propensity of the site with
	// solver index isite.
	Propensity []float64

	// Reactions by class: single-site, double second-shell, double
	// first-shell, and double same-z-shell.
	sreact, dreact, vreact, freact []*Reaction

	// ALD pulse schedule: precursor, purge, oxidizer, purge durations and
	// the accumulated cycle start time.
	T1, T2, T3, T4 float64
	cycle          float64
	pressureOn     int

	// sameZ[i] holds up to maxSameZNeighbors sites in the same z plane as
	// i, ordered by increasing horizontal distance.
	sameZ [][]int

	// Event arena. firstevent[i] heads the chain of candidate events for
	// site i; freeevent heads the free chain.
	events     []event
	firstevent []int
	freeevent  int
	nevents    int

	// Scratch. echeck marks visited solver indices within one call;
	// entries touched during a call are cleared before it returns.
	echeck []int
	esites []int
	dseen  []dpair

	initDone bool
}

// New creates an engine for the given lattice and allocates the per-site
// state, with every site VACANCY at coordination zero.
func New(l *Lattice) (*App, error) {
	if l == nil {
		return nil, fmt.Errorf("ald: nil lattice")
	}
	if err := l.Check(); err != nil {
		return nil, err
	}
	a := &App{
		Lattice:    l,
		Element:    make([]Species, l.Nlocal),
		Coord:      make([]int, l.Nlocal),
		Propensity: make([]float64, l.Nlocal),
		pressureOn: PressurePrecursor,
	}
	return a, nil
}

func (a *App) logger() logrus.FieldLogger {
	if a.Log == nil {
		return logrus.StandardLogger()
	}
	return a.Log
}

// Init validates the site values and allocates the event bookkeeping.
// It must be called after the initial site state is in place and before
// Setup.
func (a *App) Init() error {
	n := a.Lattice.Nlocal
	for i := 0; i < n; i++ {
		if a.Coord[i] < -1 || a.Coord[i] > 8 {
			return fmt.Errorf("ald: site %d has invalid coord %d", i, a.Coord[i])
		}
		if a.Element[i] < VACANCY || int(a.Element[i]) >= numSpecies {
			return fmt.Errorf("ald: site %d has invalid element %d", i, int(a.Element[i]))
		}
	}
	if !a.initDone {
		a.initDone = true
		a.echeck = make([]int, n)
		a.firstevent = make([]int, n)
		a.esites = make([]int, 0, 12*a.Lattice.MaxNeigh)
		a.dseen = make([]dpair, 0, 12*a.Lattice.MaxNeigh)
	}
	return nil
}

// Setup freezes the reaction catalog: it computes the Arrhenius propensity
// of every declared reaction at the run temperature, resets the event
// arena and the per-reaction counters, and builds the same-z neighbor
// table. The host seeds its solver by calling SitePropensity for every
// owned site afterwards.
func (a *App) Setup() error {
	if !a.initDone {
		return fmt.Errorf("ald: Setup called before Init")
	}
	for i := range a.echeck {
		a.echeck[i] = 0
	}

	a.nevents = 0
	for i := range a.firstevent {
		a.firstevent[i] = -1
	}
	for m := range a.events {
		a.events[m].next = m + 1
	}
	a.freeevent = 0

	a.precomputeSameZNeighbors()

	if a.Temperature == 0 {
		return fmt.Errorf("ald: temperature cannot be 0.0")
	}
	for _, group := range [][]*Reaction{a.sreact, a.dreact, a.vreact, a.freact} {
		for _, r := range group {
			r.propensity = r.A * math.Pow(a.Temperature, float64(r.N)) *
				math.Exp(-r.Ea/(a.Temperature*Boltzmann))
			r.count = 0
			if r.propensity == 0 {
				a.logger().Warnf("ald: reaction %v -> %v has zero propensity at %g K and will never fire",
					r.In[:r.arity()], r.Out[:r.arity()], a.Temperature)
			}
		}
	}

	a.reportPropensities()
	return nil
}

// SiteEnergy returns the energy of site i. The ALD model carries no
// explicit energetics.
func (a *App) SiteEnergy(i int) float64 { return 0 }

// NEvents returns the current number of live candidate events.
func (a *App) NEvents() int { return a.nevents }

// precomputeSameZNeighbors builds the same-z neighbor table: for each site,
// the up to maxSameZNeighbors other sites within zTolerance of its z
// coordinate, ordered by increasing horizontal distance. Ties keep the
// original index order.
func (a *App) precomputeSameZNeighbors() {
	l := a.Lattice
	a.sameZ = make([][]int, l.Nlocal)
	for i := 0; i < l.Nlocal; i++ {
		zi := l.XYZ[i][2]
		var cand []int
		var dist []float64
		for j := 0; j < l.Nlocal; j++ {
			if j == i {
				continue
			}
			if math.Abs(zi-l.XYZ[j][2]) <= zTolerance {
				cand = append(cand, j)
				dist = append(dist, a.horizontalDistance(i, j))
			}
		}
		// Insertion sort keeps the scan stable so equidistant sites stay
		// in index order.
		for j := 1; j < len(cand); j++ {
			for k := j; k > 0 && dist[k] < dist[k-1]; k-- {
				dist[k], dist[k-1] = dist[k-1], dist[k]
				cand[k], cand[k-1] = cand[k-1], cand[k]
			}
		}
		if len(cand) > maxSameZNeighbors {
			cand = cand[:maxSameZNeighbors]
		}
		a.sameZ[i] = cand
	}
}

func (a *App) horizontalDistance(i, j int) float64 {
	dx := a.Lattice.XYZ[i][0] - a.Lattice.XYZ[j][0]
	dy := a.Lattice.XYZ[i][1] - a.Lattice.XYZ[j][1]
	return math.Sqrt(dx*dx + dy*dy)
}

// SameZNeighbors returns the same-z neighbor list of site i. The returned
// slice is owned by the engine and must not be modified.
func (a *App) SameZNeighbors(i int) []int { return a.sameZ[i] }
