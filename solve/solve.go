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

// Package solve provides stochastic solvers for variable-timestep kinetic
// Monte Carlo: given per-site propensities, a solver selects the next site
// with probability proportional to its propensity and draws the
// exponentially distributed time increment. Linear scans the propensity
// array; Tree keeps a binary sum tree for large lattices.
package solve

import (
	"math"

	"github.com/spatialmodel/ald"
)

// None is returned by Event when the total propensity is zero and no site
// can fire.
const None = -1

// Linear selects events by scanning the propensity array. Selection is
// O(n); updates are O(1) per touched site.
type Linear struct {
	rng  ald.Uniform
	prop []float64
	sum  float64
}

// NewLinear creates a linear solver over a copy of the given propensities.
func NewLinear(rng ald.Uniform, propensity []float64) *Linear {
	s := &Linear{
		rng:  rng,
		prop: make([]float64, len(propensity)),
	}
	copy(s.prop, propensity)
	for _, p := range s.prop {
		s.sum += p
	}
	return s
}

// Update refreshes the solver's view of the listed sites.
func (s *Linear) Update(sites []int, propensity []float64) {
	for _, i := range sites {
		s.sum -= s.prop[i]
		s.prop[i] = propensity[i]
		s.sum += s.prop[i]
	}
}

// Event returns the next site to fire and the elapsed time increment.
func (s *Linear) Event() (site int, dt float64) {
	if s.sum <= 0 {
		return None, 0
	}
	threshold := s.rng.Uniform() * s.sum
	partial := 0.0
	site = len(s.prop) - 1
	for i, p := range s.prop {
		partial += p
		if partial >= threshold {
			site = i
			break
		}
	}
	dt = -math.Log(s.rng.Uniform()) / s.sum
	return site, dt
}

// Total returns the total propensity over all sites.
func (s *Linear) Total() float64 { return s.sum }

// Tree selects events with a binary sum tree. Selection and updates are
// O(log n).
type Tree struct {
	rng    ald.Uniform
	n      int
	offset int       // index of the first leaf
	tree   []float64 // tree[1] is the root
}

// NewTree creates a tree solver over a copy of the given propensities.
func NewTree(rng ald.Uniform, propensity []float64) *Tree {
	n := len(propensity)
	offset := 1
	for offset < n {
		offset *= 2
	}
	s := &Tree{
		rng:    rng,
		n:      n,
		offset: offset,
		tree:   make([]float64, 2*offset),
	}
	copy(s.tree[offset:], propensity)
	for i := offset - 1; i >= 1; i-- {
		s.tree[i] = s.tree[2*i] + s.tree[2*i+1]
	}
	return s
}

// Update refreshes the solver's view of the listed sites.
func (s *Tree) Update(sites []int, propensity []float64) {
	for _, i := range sites {
		s.set(i, propensity[i])
	}
}

func (s *Tree) set(i int, p float64) {
	node := s.offset + i
	s.tree[node] = p
	for node > 1 {
		node /= 2
		s.tree[node] = s.tree[2*node] + s.tree[2*node+1]
	}
}

// Event returns the next site to fire and the elapsed time increment.
func (s *Tree) Event() (site int, dt float64) {
	sum := s.tree[1]
	if sum <= 0 {
		return None, 0
	}
	value := s.rng.Uniform() * sum
	node := 1
	for node < s.offset {
		left := 2 * node
		if value < s.tree[left] {
			node = left
		} else {
			value -= s.tree[left]
			node = left + 1
		}
	}
	site = node - s.offset
	if site >= s.n {
		site = s.n - 1
	}
	dt = -math.Log(s.rng.Uniform()) / sum
	return site, dt
}

// Total returns the total propensity over all sites.
func (s *Tree) Total() float64 { return s.tree[1] }
