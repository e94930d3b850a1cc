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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/ald"
	"github.com/spatialmodel/ald/internal/random"
	"github.com/spatialmodel/ald/solve"
)

// kmcSolver is the union of the solver types in package solve: the
// engine-facing Update plus event selection for the outer loop.
type kmcSolver interface {
	ald.Solver
	Event() (site int, dt float64)
	Total() float64
}

// Run performs a complete simulation: lattice construction, script
// application, engine setup, and the KMC loop until the simulated time
// reaches totalTime. It writes a diagnostic row every diagPeriod of
// simulated time to outputFile and, if qcmPlot is non-empty, a plot of
// the QCM signal.
func Run(scriptFile, sitesFile, logFile, outputFile, qcmPlot string,
	lc *latticeConfig, temperature, totalTime, diagPeriod float64,
	seed int64, solverName string) error {

	log := logrus.New()
	log.SetOutput(os.Stdout)
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return fmt.Errorf("ald: problem creating log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	l := ald.SimpleCubic(lc.Nx, lc.Ny, lc.Nz, lc.Spacing)
	log.WithFields(logrus.Fields{
		"sites": l.Nlocal, "nx": lc.Nx, "ny": lc.Ny, "nz": lc.Nz,
	}).Info("ald: lattice built")

	app, err := ald.New(l)
	if err != nil {
		return err
	}
	app.Log = log
	app.Temperature = temperature

	// The default initial surface: the top z plane is hydroxylated, the
	// rest of the lattice is bare oxygen.
	top := float64(lc.Nz-1) * lc.Spacing
	for i := 0; i < l.Nlocal; i++ {
		if l.XYZ[i][2] == top {
			app.Element[i] = ald.OH
		} else {
			app.Element[i] = ald.O
		}
	}

	diagNames, err := applyScript(app, scriptFile)
	if err != nil {
		return err
	}
	if sitesFile != "" {
		f, err := os.Open(sitesFile)
		if err != nil {
			return fmt.Errorf("ald: problem opening sites file: %v", err)
		}
		err = app.ReadSites(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	if err := app.Init(); err != nil {
		return err
	}
	if err := app.Setup(); err != nil {
		return err
	}
	for i := 0; i < l.Nlocal; i++ {
		app.CountCoord(i)
	}
	for i := 0; i < l.Nlocal; i++ {
		app.Propensity[l.I2Site[i]] = app.SitePropensity(i)
	}

	rng := random.NewPark(seed)
	var solver kmcSolver
	switch solverName {
	case "linear":
		solver = solve.NewLinear(rng, app.Propensity)
	case "tree":
		solver = solve.NewTree(rng, app.Propensity)
	default:
		return fmt.Errorf("ald: unknown solver %q; valid options are linear and tree", solverName)
	}
	app.Solver = solver

	if len(diagNames) == 0 {
		diagNames = []string{"QCM", "OHG", "XG", "all_events", "events"}
	}
	diag, err := ald.NewDiagnostic(app, diagNames...)
	if err != nil {
		return err
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("ald: problem creating output file: %v", err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	defer w.Flush()
	fmt.Fprintf(w, "#   time %s\n", diag.Header())

	var times, qcms []float64
	var dtStats stats.Stats
	nextDiag := diagPeriod
	nsteps := 0

	record := func() {
		fmt.Fprintf(w, "%8.4f %s\n", app.Time, diag.Stats())
		times = append(times, app.Time)
		qcms = append(qcms, float64(app.QCM()))
	}
	record()

	for app.Time < totalTime {
		site, dt := solver.Event()
		if site == solve.None {
			log.Warn("ald: total propensity is zero; stopping early")
			break
		}
		app.Time += dt
		dtStats.Update(dt)
		app.SiteEvent(site, rng)
		nsteps++
		for app.Time >= nextDiag {
			record()
			nextDiag += diagPeriod
		}
	}

	log.WithFields(logrus.Fields{
		"steps":        nsteps,
		"time":         app.Time,
		"mean_dt":      dtStats.Mean(),
		"stddev_dt":    dtStats.SampleStandardDeviation(),
		"total_rate":   solver.Total(),
		"final_QCM":    app.QCM(),
		"final_OH":     app.OHG(),
		"final_ligand": app.XG(),
	}).Info("ald: run finished")

	if len(times) > 1 {
		// Net deposition rate over the run.
		slope, intercept, rsq, _, _, _ := stats.LinearRegression(times, qcms)
		log.WithFields(logrus.Fields{
			"slope": slope, "intercept": intercept, "r2": rsq,
		}).Info("ald: QCM growth fit")
	}

	if qcmPlot != "" {
		if err := plotQCM(qcmPlot, times, qcms); err != nil {
			return err
		}
		log.Infof("ald: wrote QCM plot to %s", qcmPlot)
	}
	return nil
}

// applyScript reads the process script and applies each command to the
// engine. Beyond the engine's own commands the script may set
// "temperature T" and "diag name..." for the run loop. It returns the
// diagnostic quantity names, if any.
func applyScript(app *ald.App, path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ald: problem opening script file: %v", err)
	}
	defer f.Close()

	var diagNames []string
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "temperature":
			if len(fields) != 2 {
				return nil, fmt.Errorf("ald: script line %d: illegal temperature command", line)
			}
			t, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("ald: script line %d: bad temperature %q", line, fields[1])
			}
			app.Temperature = t
		case "diag":
			if len(fields) < 2 {
				return nil, fmt.Errorf("ald: script line %d: illegal diag command", line)
			}
			diagNames = fields[1:]
		default:
			if err := app.Command(fields[0], fields[1:]...); err != nil {
				return nil, fmt.Errorf("ald: script line %d: %v", line, err)
			}
		}
	}
	return diagNames, scanner.Err()
}
