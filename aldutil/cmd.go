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
	"os"

	"github.com/spatialmodel/ald"
	"github.com/spf13/cobra"
)

// Root is the main command.
var Root = &cobra.Command{
	Use:   "ald",
	Short: "A lattice kinetic Monte Carlo model of atomic layer deposition.",
	Long: `ALD simulates atomic layer deposition of a trimethylaluminum
precursor followed by an oxidizer on a lattice of surface sites, using
variable-timestep kinetic Monte Carlo.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'ALD_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of ALD.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("ALD v%s\n", ald.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the model.",
	Long: `run performs an ALD simulation: it builds the lattice, applies the
process script, and steps the kinetic Monte Carlo loop until the
configured simulated-time horizon, writing periodic diagnostics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lc, err := readLatticeConfig(Cfg.GetString("LatticeFile"), Cfg)
		if err != nil {
			return err
		}
		return Run(
			os.ExpandEnv(Cfg.GetString("ScriptFile")),
			os.ExpandEnv(Cfg.GetString("SitesFile")),
			os.ExpandEnv(Cfg.GetString("LogFile")),
			os.ExpandEnv(Cfg.GetString("OutputFile")),
			os.ExpandEnv(Cfg.GetString("QCMPlot")),
			lc,
			Cfg.GetFloat64("Temperature"),
			Cfg.GetFloat64("TotalTime"),
			Cfg.GetFloat64("DiagPeriod"),
			int64(Cfg.GetInt("Seed")),
			Cfg.GetString("Solver"),
		)
	},
	DisableAutoGenTag: true,
}

// gridCmd reports the lattice that the current configuration would
// produce, so site files can be prepared against the right indexing.
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Describe the simulation lattice",
	Long: `grid builds the lattice from the current configuration and prints
one line per site with its index, coordinates, and neighbor count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lc, err := readLatticeConfig(Cfg.GetString("LatticeFile"), Cfg)
		if err != nil {
			return err
		}
		l := ald.SimpleCubic(lc.Nx, lc.Ny, lc.Nz, lc.Spacing)
		fmt.Fprintf(cmd.OutOrStdout(), "# %d sites, max %d neighbors\n", l.Nlocal, l.MaxNeigh)
		for i := 0; i < l.Nlocal; i++ {
			fmt.Fprintf(cmd.OutOrStdout(), "%d %g %g %g %d\n",
				i, l.XYZ[i][0], l.XYZ[i][1], l.XYZ[i][2], l.NumNeigh[i])
		}
		return nil
	},
	DisableAutoGenTag: true,
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(gridCmd)
}
