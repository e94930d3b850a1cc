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
	"fmt"
	"strconv"
	"strings"
)

// CoordAll is the coordination constraint sentinel that matches any value.
const CoordAll = -999

// Reaction classes. The numeric values are the first argument of the event
// command.
const (
	styleSingle = 1 // one site
	styleSecond = 2 // pair through a second-shell partner
	styleFirst  = 3 // pair through a first-shell partner
	styleSameZ  = 4 // pair through a same-z-plane partner
	styleNull   = 5 // the null event
)

// Pressure regimes of the ALD cycle. A reaction with PressOn 0 is
// admissible in every regime.
const (
	PressurePrecursor = 1
	PressureOxidizer  = 2
	PressurePurge     = 3
)

// Reaction is one declared reaction. Single-site reactions use only the
// first entry of In and Out.
type Reaction struct {
	In, Out [2]Species

	// Arrhenius parameters: prefactor, temperature exponent, and
	// activation energy [eV].
	A  float64
	N  int
	Ea float64

	// Coordination constraints on the site and its partner. CoordAll
	// matches any value.
	Coord, Coord2 int

	// PressOn restricts the reaction to one pressure regime; 0 admits it
	// always.
	PressOn int

	style      int
	propensity float64
	count      int
}

func (r *Reaction) arity() int {
	if r.style == styleSingle {
		return 1
	}
	return 2
}

// coordMatches reports whether a site's raw coord value satisfies a
// declared constraint.
func coordMatches(siteCoord, required int) bool {
	if required == CoordAll {
		return true
	}
	return siteCoord == required
}

// parseCoordValue parses a coordination constraint: an integer or the
// literal "all"/"ALL".
func parseCoordValue(s string) (int, error) {
	if s == "all" || s == "ALL" {
		return CoordAll, nil
	}
	c, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("ald: invalid coord value %q", s)
	}
	return c, nil
}

// Command applies one declarative input command. The commands are:
//
//	event 1 input output A n Ea coord press_on _
//	event 2|3|4 in1 out1 in2 out2 A n Ea coord coord2 press_on _
//	pulse_time T1 T3
//	purge_time T2 T4
//
// where the trailing "_" argument is accepted and ignored. Commands must
// be issued before Setup.
func (a *App) Command(command string, args ...string) error {
	switch command {
	case "event":
		return a.eventCommand(args)
	case "pulse_time":
		if len(args) != 2 {
			return fmt.Errorf("ald: illegal pulse_time command")
		}
		var err1, err2 error
		a.T1, err1 = strconv.ParseFloat(args[0], 64)
		a.T3, err2 = strconv.ParseFloat(args[1], 64)
		if err1 != nil || err2 != nil {
			return fmt.Errorf("ald: illegal pulse_time command")
		}
		return nil
	case "purge_time":
		if len(args) != 2 {
			return fmt.Errorf("ald: illegal purge_time command")
		}
		var err1, err2 error
		a.T2, err1 = strconv.ParseFloat(args[0], 64)
		a.T4, err2 = strconv.ParseFloat(args[1], 64)
		if err1 != nil || err2 != nil {
			return fmt.Errorf("ald: illegal purge_time command")
		}
		return nil
	}
	return fmt.Errorf("ald: unrecognized command %q", command)
}

func (a *App) eventCommand(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("ald: illegal event command")
	}
	style, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("ald: illegal event command")
	}

	if style == styleSingle {
		if len(args) != 9 {
			return fmt.Errorf("ald: illegal event command: class 1 needs 9 args, got %d", len(args))
		}
		r := &Reaction{style: styleSingle}
		if r.In[0], err = SpeciesFromName(args[1]); err != nil {
			return err
		}
		if r.Out[0], err = SpeciesFromName(args[2]); err != nil {
			return err
		}
		if err = parseArrhenius(r, args[3], args[4], args[5]); err != nil {
			return err
		}
		if r.Coord, err = parseCoordValue(args[6]); err != nil {
			return err
		}
		if r.PressOn, err = strconv.Atoi(args[7]); err != nil {
			return fmt.Errorf("ald: illegal event command: bad press_on %q", args[7])
		}
		a.sreact = append(a.sreact, r)
		return nil
	}

	if style != styleSecond && style != styleFirst && style != styleSameZ {
		return fmt.Errorf("ald: illegal event command: unknown class %d", style)
	}
	if len(args) != 12 {
		return fmt.Errorf("ald: illegal event command: class %d needs 12 args, got %d", style, len(args))
	}
	r := &Reaction{style: style}
	if r.In[0], err = SpeciesFromName(args[1]); err != nil {
		return err
	}
	if r.Out[0], err = SpeciesFromName(args[2]); err != nil {
		return err
	}
	if r.In[1], err = SpeciesFromName(args[3]); err != nil {
		return err
	}
	if r.Out[1], err = SpeciesFromName(args[4]); err != nil {
		return err
	}
	if err = parseArrhenius(r, args[5], args[6], args[7]); err != nil {
		return err
	}
	if r.Coord, err = parseCoordValue(args[8]); err != nil {
		return err
	}
	if r.Coord2, err = parseCoordValue(args[9]); err != nil {
		return err
	}
	if r.PressOn, err = strconv.Atoi(args[10]); err != nil {
		return fmt.Errorf("ald: illegal event command: bad press_on %q", args[10])
	}
	switch style {
	case styleSecond:
		a.dreact = append(a.dreact, r)
	case styleFirst:
		a.vreact = append(a.vreact, r)
	case styleSameZ:
		a.freact = append(a.freact, r)
	}
	return nil
}

func parseArrhenius(r *Reaction, aStr, nStr, eaStr string) error {
	var err error
	if r.A, err = strconv.ParseFloat(aStr, 64); err != nil {
		return fmt.Errorf("ald: illegal event command: bad prefactor %q", aStr)
	}
	if r.N, err = strconv.Atoi(nStr); err != nil {
		return fmt.Errorf("ald: illegal event command: bad temperature exponent %q", nStr)
	}
	if r.Ea, err = strconv.ParseFloat(eaStr, 64); err != nil {
		return fmt.Errorf("ald: illegal event command: bad activation energy %q", eaStr)
	}
	return nil
}

// Propensity returns the reaction's rate at the run temperature, computed
// at Setup.
func (r *Reaction) Propensity() float64 { return r.propensity }

// Count returns how many times the reaction has fired.
func (r *Reaction) Count() int { return r.count }

// Reactions returns the declared reactions of one class: 1 for single-site,
// 2 for second-shell, 3 for first-shell, 4 for same-z.
func (a *App) Reactions(style int) []*Reaction {
	switch style {
	case styleSingle:
		return a.sreact
	case styleSecond:
		return a.dreact
	case styleFirst:
		return a.vreact
	case styleSameZ:
		return a.freact
	}
	return nil
}

// reportPropensities logs the per-reaction propensity table computed at
// Setup, one line per class, in the s1../d1../v1../f1.. naming used by the
// diagnostics.
func (a *App) reportPropensities() {
	log := a.logger()
	log.Infof("ald: event propensities at temperature %.2f K", a.Temperature)
	classes := []struct {
		label     string
		reactions []*Reaction
	}{
		{"s", a.sreact}, {"d", a.dreact}, {"v", a.vreact}, {"f", a.freact},
	}
	for _, c := range classes {
		if len(c.reactions) == 0 {
			continue
		}
		var b strings.Builder
		for m, r := range c.reactions {
			if m > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s%d:%.3e", c.label, m+1, r.propensity)
		}
		log.Infof("ald: %s", b.String())
	}
}
