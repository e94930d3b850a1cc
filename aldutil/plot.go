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
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotQCM writes a line plot of the QCM mass signal against simulated
// time.
func plotQCM(path string, times, qcms []float64) error {
	if len(times) != len(qcms) {
		return fmt.Errorf("ald: plot series length mismatch: %d != %d", len(times), len(qcms))
	}
	pts := make(plotter.XYs, len(times))
	for i := range times {
		pts[i].X = times[i]
		pts[i].Y = qcms[i]
	}

	p := plot.New()
	p.Title.Text = "QCM mass signal"
	p.X.Label.Text = "time [s]"
	p.Y.Label.Text = "mass [amu]"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("ald: problem building QCM plot: %v", err)
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("ald: problem saving QCM plot: %v", err)
	}
	return nil
}
