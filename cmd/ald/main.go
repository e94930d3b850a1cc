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

// Command ald runs lattice kinetic Monte Carlo simulations of atomic
// layer deposition.
package main

import (
	"os"

	"github.com/spatialmodel/ald/aldutil"
)

func main() {
	if err := aldutil.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
