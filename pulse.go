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

// advancePulse maps simulated time t onto the cyclic
// precursor/purge/oxidizer/purge schedule. When t runs past the end of the
// current cycle, the cycle origin advances and pressureOn keeps its
// previous value until the next call.
func (a *App) advancePulse(t float64) {
	switch {
	case t < a.cycle+a.T1:
		a.pressureOn = PressurePrecursor
	case t < a.cycle+a.T1+a.T2:
		a.pressureOn = PressurePurge
	case t < a.cycle+a.T1+a.T2+a.T3:
		a.pressureOn = PressureOxidizer
	case t < a.cycle+a.T1+a.T2+a.T3+a.T4:
		a.pressureOn = PressurePurge
	default:
		a.cycle += a.T1 + a.T2 + a.T3 + a.T4
	}
}

// PressureOn returns the current pressure regime: PressurePrecursor,
// PressureOxidizer, or PressurePurge.
func (a *App) PressureOn() int { return a.pressureOn }

// Cycle returns the start time of the current ALD cycle.
func (a *App) Cycle() float64 { return a.cycle }
