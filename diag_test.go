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
	"strings"
	"testing"
)

func TestQCMWeights(t *testing.T) {
	// The mass table is part of the output format.
	want := map[Species]int{
		VACANCY: 0, O: 16, OH: 17, Ala: 27, OHAlaX3: 89, OAlaX2: 73,
		OAlaX2H2O: 91, OAlaXOH: 75, OAlaX: 58, OAlaOH: 60, OAlaOH2: 77,
		AlaOH: 44, AlaOH2: 61, Alb: 27, OHAlbX3: 89, OAlbX2: 73,
		OAlbX2H2O: 91, OAlbXOH: 75, OAlbX: 58, OAlbOH: 60, OAlbOH2: 77,
		AlbOH: 44, AlbOH2: 61, OAla: 43, OAlb: 43, H2O: 18,
	}
	for sp, w := range want {
		if qcmWeight[sp] != w {
			t.Errorf("QCM weight of %v: have %d, want %d", sp, qcmWeight[sp], w)
		}
	}
}

func TestDerivedQuantities(t *testing.T) {
	l := chainLattice(6)
	a := newTestApp(t, l, 300)
	a.Element[0] = OH
	a.Element[1] = OHAlaX3
	a.Element[2] = OAlaOH2
	a.Element[3] = OAlbX2
	a.Element[4] = H2O
	a.Element[5] = VACANCY
	setupApp(t, a)

	if got, want := a.QCM(), 17+89+77+73+18; got != want {
		t.Errorf("QCM: have %d, want %d", got, want)
	}
	if got, want := a.OHG(), 1+1+2; got != want {
		t.Errorf("OHG: have %d, want %d", got, want)
	}
	if got, want := a.XG(), 3+2; got != want {
		t.Errorf("XG: have %d, want %d", got, want)
	}
}

func TestDiagnosticCompute(t *testing.T) {
	l := chainLattice(4)
	a := newTestApp(t, l, 300)
	if err := a.Command("event", "1", "O", "OH", "1000.0", "0", "0.0", "all", "0", "_"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < l.Nlocal; i++ {
		a.Element[i] = O
	}
	setupApp(t, a)
	for i := 0; i < l.Nlocal; i++ {
		a.CountCoord(i)
	}
	for i := 0; i < l.Nlocal; i++ {
		a.Propensity[i] = a.SitePropensity(i)
	}

	d, err := NewDiagnostic(a, "O", "OH", "s1", "type1_total", "all_events", "events", "ala_total")
	if err != nil {
		t.Fatal(err)
	}

	v := d.Compute()
	if v[0] != 4 || v[1] != 0 {
		t.Errorf("initial species counts: have O=%d OH=%d, want 4 and 0", v[0], v[1])
	}
	if v[6] != 0 {
		t.Errorf("ala_total: have %d, want 0", v[6])
	}

	a.SiteEvent(1, fixedRNG(0.5))
	v = d.Compute()
	if v[0] != 3 || v[1] != 1 {
		t.Errorf("species counts after firing: have O=%d OH=%d, want 3 and 1", v[0], v[1])
	}
	if v[2] != 1 || v[3] != 1 || v[4] != 1 {
		t.Errorf("counters after firing: have s1=%d type1_total=%d all_events=%d, want 1 1 1",
			v[2], v[3], v[4])
	}
	if v[5] == 0 {
		t.Error("live event count is zero")
	}
}

func TestDiagnosticAlaAlbTotals(t *testing.T) {
	l := chainLattice(5)
	a := newTestApp(t, l, 300)
	a.Element[0] = OAlaX2
	a.Element[1] = AlaOH2
	a.Element[2] = OAla
	a.Element[3] = OHAlbX3
	a.Element[4] = O
	setupApp(t, a)

	d, err := NewDiagnostic(a, "ala_total", "alb_total")
	if err != nil {
		t.Fatal(err)
	}
	v := d.Compute()
	if v[0] != 3 {
		t.Errorf("ala_total: have %d, want 3", v[0])
	}
	if v[1] != 1 {
		t.Errorf("alb_total: have %d, want 1", v[1])
	}
}

func TestDiagnosticValidation(t *testing.T) {
	a := newTestApp(t, oneSiteLattice(), 300)
	if err := a.Command("event", "1", "O", "OH", "1.0", "0", "0.0", "all", "0", "_"); err != nil {
		t.Fatal(err)
	}
	setupApp(t, a)

	if _, err := NewDiagnostic(a, "s1"); err != nil {
		t.Errorf("s1 rejected: %v", err)
	}
	for _, bad := range []string{"s2", "d1", "v0", "coverage", "s"} {
		if _, err := NewDiagnostic(a, bad); err == nil {
			t.Errorf("diagnostic %q accepted", bad)
		}
	}
	if _, err := NewDiagnostic(a); err == nil {
		t.Error("empty diagnostic list accepted")
	}
}

func TestDiagnosticHeaderAndStats(t *testing.T) {
	a := newTestApp(t, oneSiteLattice(), 300)
	a.Element[0] = OH
	setupApp(t, a)

	d, err := NewDiagnostic(a, "OH", "QCM")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Header(), "     OH     QCM "; got != want {
		t.Errorf("header: have %q, want %q", got, want)
	}
	if got, want := d.Stats(), "      1      17 "; got != want {
		t.Errorf("stats: have %q, want %q", got, want)
	}
	if !strings.HasPrefix(strings.TrimSpace(d.Header()), "OH") {
		t.Error("header does not start with first quantity")
	}
}
