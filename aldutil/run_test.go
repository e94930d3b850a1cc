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

package aldutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spatialmodel/ald"
)

const testScript = `# TMA half-cycle, heavily simplified
temperature 533
pulse_time 1.0 1.0
purge_time 0.5 0.5
event 1 OH OHAlaX3 1.0e4 0 0.1 all 1 _
event 1 OHAlaX3 OH 1.0e4 0 0.1 all 0 _
event 3 OH OHAlaX3 O O 5.0e3 0 0.2 all all 1 _
diag QCM OHG XG all_events
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApplyScript(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "process.txt", testScript)

	l := ald.SimpleCubic(3, 3, 2, 1.0)
	app, err := ald.New(l)
	if err != nil {
		t.Fatal(err)
	}
	diagNames, err := applyScript(app, path)
	if err != nil {
		t.Fatal(err)
	}
	if app.Temperature != 533 {
		t.Errorf("temperature: have %g, want 533", app.Temperature)
	}
	if app.T1 != 1.0 || app.T2 != 0.5 || app.T3 != 1.0 || app.T4 != 0.5 {
		t.Errorf("pulse schedule: have %g/%g/%g/%g, want 1/0.5/1/0.5",
			app.T1, app.T2, app.T3, app.T4)
	}
	if len(app.Reactions(1)) != 2 || len(app.Reactions(3)) != 1 {
		t.Errorf("reactions: have %d single and %d first-shell, want 2 and 1",
			len(app.Reactions(1)), len(app.Reactions(3)))
	}
	want := []string{"QCM", "OHG", "XG", "all_events"}
	if len(diagNames) != len(want) {
		t.Fatalf("diag names: have %v, want %v", diagNames, want)
	}
	for i := range want {
		if diagNames[i] != want[i] {
			t.Errorf("diag name %d: have %q, want %q", i, diagNames[i], want[i])
		}
	}
}

func TestApplyScriptErrors(t *testing.T) {
	dir := t.TempDir()
	l := ald.SimpleCubic(2, 2, 1, 1.0)
	for _, bad := range []string{
		"temperature",
		"temperature warm",
		"diag",
		"event 1 O OH 1.0 0 0.0 all 0", // bad arity
		"densify 1 2 3",                // unknown command
	} {
		app, err := ald.New(l)
		if err != nil {
			t.Fatal(err)
		}
		path := writeFile(t, dir, "bad.txt", bad+"\n")
		if _, err := applyScript(app, path); err == nil {
			t.Errorf("script %q accepted", bad)
		}
	}
}

func TestReadLatticeConfigTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lattice.toml", "Nx = 4\nNy = 5\nNz = 3\nSpacing = 2.5\n")

	lc, err := readLatticeConfig(path, Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if lc.Nx != 4 || lc.Ny != 5 || lc.Nz != 3 || lc.Spacing != 2.5 {
		t.Errorf("lattice config: have %+v", lc)
	}

	badPath := writeFile(t, dir, "bad.toml", "Nx = 0\nNy = 5\nNz = 3\nSpacing = 1.0\n")
	if _, err := readLatticeConfig(badPath, Cfg); err == nil {
		t.Error("zero dimension accepted")
	}
}

func TestReadLatticeConfigDefaults(t *testing.T) {
	lc, err := readLatticeConfig("", Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if lc.Nx != 10 || lc.Ny != 10 || lc.Nz != 6 || lc.Spacing != 1.0 {
		t.Errorf("default lattice config: have %+v", lc)
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "process.txt", testScript)
	output := filepath.Join(dir, "diag.tsv")
	logFile := filepath.Join(dir, "run.log")
	plotFile := filepath.Join(dir, "qcm.png")

	lc := &latticeConfig{Nx: 4, Ny: 4, Nz: 3, Spacing: 1.0}
	err := Run(script, "", logFile, output, plotFile, lc, 533, 0.05, 0.01, 42, "tree")
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 2 {
		t.Fatalf("output has %d lines, want header plus rows", len(lines))
	}
	if !strings.Contains(lines[0], "QCM") {
		t.Errorf("header missing QCM: %q", lines[0])
	}
	if _, err := os.Stat(plotFile); err != nil {
		t.Errorf("QCM plot not written: %v", err)
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("log file not written: %v", err)
	}
}

func TestRunUnknownSolver(t *testing.T) {
	lc := &latticeConfig{Nx: 2, Ny: 2, Nz: 1, Spacing: 1.0}
	dir := t.TempDir()
	out := filepath.Join(dir, "out.tsv")
	if err := Run("", "", "", out, "", lc, 300, 0.01, 0.01, 1, "quadratic"); err == nil {
		t.Error("unknown solver accepted")
	}
}
