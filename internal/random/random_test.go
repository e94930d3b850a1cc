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

package random

import (
	"math"
	"testing"
)

func TestUniformRange(t *testing.T) {
	p := NewPark(1)
	for i := 0; i < 100000; i++ {
		u := p.Uniform()
		if u <= 0 || u >= 1 {
			t.Fatalf("draw %d out of range: %g", i, u)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := NewPark(12345)
	b := NewPark(12345)
	for i := 0; i < 1000; i++ {
		if a.Uniform() != b.Uniform() {
			t.Fatal("same seed produced different sequences")
		}
	}
	c := NewPark(54321)
	same := 0
	a = NewPark(12345)
	for i := 0; i < 1000; i++ {
		if a.Uniform() == c.Uniform() {
			same++
		}
	}
	if same == 1000 {
		t.Error("different seeds produced the same sequence")
	}
}

func TestFirstDraw(t *testing.T) {
	// The minimal standard generator maps seed 1 to 16807.
	p := NewPark(1)
	want := 16807.0 / 2147483647.0
	if got := p.Uniform(); math.Abs(got-want) > 1e-15 {
		t.Errorf("first draw from seed 1: have %g, want %g", got, want)
	}
}

func TestMean(t *testing.T) {
	p := NewPark(977)
	sum := 0.0
	const n = 200000
	for i := 0; i < n; i++ {
		sum += p.Uniform()
	}
	mean := sum / n
	if math.Abs(mean-0.5) > 0.005 {
		t.Errorf("mean of %d draws: have %g, want 0.5", n, mean)
	}
}

func TestIRandom(t *testing.T) {
	p := NewPark(7)
	for i := 0; i < 10000; i++ {
		v := p.IRandom(6)
		if v < 1 || v > 6 {
			t.Fatalf("IRandom(6) out of range: %d", v)
		}
	}
}

func TestSeedNormalization(t *testing.T) {
	// Nonpositive seeds are folded into the generator's period rather
	// than producing the degenerate all-zero sequence.
	for _, seed := range []int64{0, -5} {
		p := NewPark(seed)
		if u := p.Uniform(); u <= 0 || u >= 1 {
			t.Errorf("seed %d: first draw %g out of range", seed, u)
		}
	}
}
