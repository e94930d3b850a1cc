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

// Package aldutil holds the configuration and command plumbing for the ald
// command-line interface.
package aldutil

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the ald commands.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ScriptFile",
			usage: `
              ScriptFile is the path to the process script holding the
              event, pulse_time, purge_time, temperature, and diag
              commands for the run.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "SitesFile",
			usage: `
              SitesFile is the path to a file holding the initial site
              state ("id element coord" per line). Sites not listed, or
              every site if empty, start as OH on the top z plane and as
              O elsewhere.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "LogFile",
			usage: `
              LogFile is the path of the run log. If empty, logging goes
              to standard output only.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path of the diagnostic series written
              during the run, in space-padded columns.`,
			defaultVal: "ald_diag.tsv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "QCMPlot",
			usage: `
              QCMPlot is the path of a PNG plot of the QCM mass signal
              against simulated time. If empty, no plot is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Temperature",
			usage: `
              Temperature is the run temperature [K]. A temperature
              command in the script takes precedence.`,
			defaultVal: 533.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "TotalTime",
			usage: `
              TotalTime is the simulated time horizon [s].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "DiagPeriod",
			usage: `
              DiagPeriod is the simulated-time interval between
              diagnostic rows [s].`,
			defaultVal: 0.1,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Seed",
			usage: `
              Seed seeds the random number generator.`,
			defaultVal: 12345,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Solver",
			usage: `
              Solver selects the KMC solver: "linear" or "tree".`,
			defaultVal: "tree",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "LatticeFile",
			usage: `
              LatticeFile is the path to a TOML lattice description
              (nx, ny, nz, spacing). If empty, the Lattice.* options
              are used directly.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), gridCmd.Flags()},
		},
		{
			name: "Lattice.Nx",
			usage: `
              Lattice.Nx is the number of sites in the x direction.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), gridCmd.Flags()},
		},
		{
			name: "Lattice.Ny",
			usage: `
              Lattice.Ny is the number of sites in the y direction.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), gridCmd.Flags()},
		},
		{
			name: "Lattice.Nz",
			usage: `
              Lattice.Nz is the number of sites in the z direction.`,
			defaultVal: 6,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), gridCmd.Flags()},
		},
		{
			name: "Lattice.Spacing",
			usage: `
              Lattice.Spacing is the lattice constant [arbitrary length
              units; only ratios matter to the engine].`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), gridCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ALD")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("ald: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// latticeConfig describes a simple-cubic lattice in a TOML file.
type latticeConfig struct {
	Nx, Ny, Nz int
	Spacing    float64
}

func (c *latticeConfig) check() error {
	if c.Nx < 1 || c.Ny < 1 || c.Nz < 1 {
		return fmt.Errorf("ald: lattice dimensions must be positive, got %d×%d×%d", c.Nx, c.Ny, c.Nz)
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("ald: lattice spacing must be positive, got %g", c.Spacing)
	}
	return nil
}

// readLatticeConfig loads a lattice description, either from the TOML file
// at path or, when path is empty, from the Lattice.* configuration
// options.
func readLatticeConfig(path string, cfg *viper.Viper) (*latticeConfig, error) {
	c := new(latticeConfig)
	if path != "" {
		if _, err := toml.DecodeFile(os.ExpandEnv(path), c); err != nil {
			return nil, fmt.Errorf("ald: problem reading lattice file: %v", err)
		}
	} else {
		c.Nx = cfg.GetInt("Lattice.Nx")
		c.Ny = cfg.GetInt("Lattice.Ny")
		c.Nz = cfg.GetInt("Lattice.Nz")
		c.Spacing = cfg.GetFloat64("Lattice.Spacing")
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}
