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

// Package random provides the Park–Miller minimal standard linear
// congruential generator. It is deliberately simple and fully
// deterministic for a given seed, so simulations are reproducible across
// platforms.
package random

// Park–Miller constants, with Schrage's decomposition of the modulus to
// avoid 32-bit overflow in the update.
const (
	ia = 16807
	im = 2147483647
	am = 1.0 / im
	iq = 127773
	ir = 2836
)

// Park is a Park–Miller uniform random number generator.
type Park struct {
	seed int32
}

// NewPark creates a generator. The seed is reduced modulo 2^31-1; a
// nonpositive result is shifted up by 2^31-2.
func NewPark(seed int64) *Park {
	s := int32(seed % im)
	if s <= 0 {
		s += im - 1
	}
	return &Park{seed: s}
}

// Uniform returns the next number in [0, 1).
func (p *Park) Uniform() float64 {
	k := p.seed / iq
	p.seed = ia*(p.seed-k*iq) - ir*k
	if p.seed < 0 {
		p.seed += im
	}
	return am * float64(p.seed)
}

// IRandom returns a uniform integer in [1, n].
func (p *Park) IRandom(n int) int {
	i := int(p.Uniform()*float64(n)) + 1
	if i > n {
		i = n
	}
	return i
}
