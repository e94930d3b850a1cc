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
	"math"
	"testing"
)

func TestEventCommandParsing(t *testing.T) {
	a := newTestApp(t, oneSiteLattice(), 300)
	if err := a.Command("event", "1", "OH", "OHAlaX3", "5.0e3", "0", "0.15", "2", "1", "_"); err != nil {
		t.Fatal(err)
	}
	if err := a.Command("event", "2", "OAlaX2", "OAlaX", "OH", "O", "1.0e13", "0", "0.9", "all", "1", "2", "_"); err != nil {
		t.Fatal(err)
	}
	if err := a.Command("event", "3", "OH", "OHAlaX3", "O", "O", "2.0e4", "1", "0.2", "all", "all", "1", "_"); err != nil {
		t.Fatal(err)
	}
	if err := a.Command("event", "4", "OAlaX2", "OAlaX", "OH", "H2O", "3.0e5", "0", "0.3", "all", "0", "2", "_"); err != nil {
		t.Fatal(err)
	}

	if len(a.sreact) != 1 || len(a.dreact) != 1 || len(a.vreact) != 1 || len(a.freact) != 1 {
		t.Fatalf("reaction counts: have %d/%d/%d/%d, want 1/1/1/1",
			len(a.sreact), len(a.dreact), len(a.vreact), len(a.freact))
	}

	s := a.sreact[0]
	if s.In[0] != OH || s.Out[0] != OHAlaX3 || s.A != 5.0e3 || s.N != 0 ||
		s.Ea != 0.15 || s.Coord != 2 || s.PressOn != 1 {
		t.Errorf("class 1 reaction parsed wrong: %+v", s)
	}
	d := a.dreact[0]
	if d.In != [2]Species{OAlaX2, OH} || d.Out != [2]Species{OAlaX, O} ||
		d.Coord != CoordAll || d.Coord2 != 1 || d.PressOn != 2 {
		t.Errorf("class 2 reaction parsed wrong: %+v", d)
	}
	f := a.freact[0]
	if f.Coord != CoordAll || f.Coord2 != 0 || f.PressOn != 2 {
		t.Errorf("class 4 reaction parsed wrong: %+v", f)
	}
}

func TestCommandErrors(t *testing.T) {
	a := newTestApp(t, oneSiteLattice(), 300)
	cases := [][]string{
		{"event"},
		{"event", "1", "O", "OH", "1.0", "0", "0.0", "all", "0"},                               // class 1 with 8 args
		{"event", "2", "O", "OH", "O", "OH", "1.0", "0", "0.0", "all", "0", "_"},               // class 2 with 11 args
		{"event", "1", "Hf", "OH", "1.0", "0", "0.0", "all", "0", "_"},                         // unknown species
		{"event", "1", "O", "OH", "1.0", "0", "0.0", "some", "0", "_"},                         // bad coord literal
		{"event", "7", "O", "OH", "O", "OH", "1.0", "0", "0.0", "all", "all", "0"},             // unknown class
		{"pulse_time", "1.0"},
		{"purge_time", "1.0", "2.0", "3.0"},
		{"pressure", "1.0", "2.0"}, // unknown command
	}
	for _, c := range cases {
		if err := a.Command(c[0], c[1:]...); err == nil {
			t.Errorf("command %v did not error", c)
		}
	}
}

func TestCoordLiteralAll(t *testing.T) {
	for _, s := range []string{"all", "ALL"} {
		c, err := parseCoordValue(s)
		if err != nil {
			t.Fatal(err)
		}
		if c != CoordAll {
			t.Errorf("%q: have %d, want %d", s, c, CoordAll)
		}
	}
	if !coordMatches(-37, CoordAll) {
		t.Error("CoordAll does not match an arbitrary coord")
	}
	if coordMatches(3, 2) {
		t.Error("mismatched coord accepted")
	}
	if !coordMatches(2, 2) {
		t.Error("matching coord rejected")
	}
}

func TestArrheniusPropensity(t *testing.T) {
	a := newTestApp(t, oneSiteLattice(), 533)
	if err := a.Command("event", "1", "O", "OH", "2.0e6", "1", "0.5", "all", "0", "_"); err != nil {
		t.Fatal(err)
	}
	setupApp(t, a)

	want := 2.0e6 * 533 * math.Exp(-0.5/(533*Boltzmann))
	if got := a.sreact[0].Propensity(); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("propensity: have %g, want %g", got, want)
	}
}

func TestSetupZeroTemperature(t *testing.T) {
	a := newTestApp(t, oneSiteLattice(), 0)
	if err := a.Init(); err != nil {
		t.Fatal(err)
	}
	if err := a.Setup(); err == nil {
		t.Error("Setup with zero temperature did not error")
	}
}

// A reaction whose rate underflows to zero is a warning, not an error,
// and never enters an event list.
func TestZeroPropensityReactionWarns(t *testing.T) {
	a := newTestApp(t, oneSiteLattice(), 300)
	if err := a.Command("event", "1", "O", "OH", "1.0", "0", "1000.0", "all", "0", "_"); err != nil {
		t.Fatal(err)
	}
	a.Element[0] = O
	setupApp(t, a)
	if p := a.sreact[0].Propensity(); p != 0 {
		t.Fatalf("propensity: have %g, want underflow to 0", p)
	}
	if p := a.SitePropensity(0); p != 0.1 {
		t.Errorf("site propensity: have %g, want 0.1 (null only)", p)
	}
	counts := countEvents(a, 0)
	if counts[styleSingle] != 0 {
		t.Errorf("zero-rate reaction produced %d events", counts[styleSingle])
	}
}

func TestInitRejectsBadSites(t *testing.T) {
	a := newTestApp(t, oneSiteLattice(), 300)
	a.Coord[0] = 9
	if err := a.Init(); err == nil {
		t.Error("coord 9 accepted at Init")
	}
	a.Coord[0] = -2
	if err := a.Init(); err == nil {
		t.Error("coord -2 accepted at Init")
	}
	a.Coord[0] = 0
	a.Element[0] = Species(-1)
	if err := a.Init(); err == nil {
		t.Error("negative element accepted at Init")
	}
}
