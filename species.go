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

import "fmt"

// Species is the chemical identity of a lattice site. The set is closed:
// it covers the bare surface states plus every intermediate of the
// TMA/oxidizer reaction network, with two chemically distinct aluminum
// variants (Ala, Alb).
type Species int

// The surface species. The integer values are stable identifiers: site
// files and diagnostic output rely on this ordering.
const (
	VACANCY Species = iota
	O
	OH
	Ala
	OHAlaX3
	OAlaX2
	OAlaX2H2O
	OAlaXOH
	OAlaX
	OAlaOH
	OAlaOH2
	AlaOH
	AlaOH2
	Alb
	OHAlbX3
	OAlbX2
	OAlbX2H2O
	OAlbXOH
	OAlbX
	OAlbOH
	OAlbOH2
	AlbOH
	AlbOH2
	OAla
	OAlb
	H2O

	numSpecies int = iota
)

// speciesNames maps Species values to the labels used in input commands,
// site files, and diagnostic headers. VACANCY is spelled "VAC" in all of
// those places.
var speciesNames = [numSpecies]string{
	"VAC", "O", "OH", "Ala", "OHAlaX3", "OAlaX2", "OAlaX2H2O", "OAlaXOH",
	"OAlaX", "OAlaOH", "OAlaOH2", "AlaOH", "AlaOH2", "Alb", "OHAlbX3",
	"OAlbX2", "OAlbX2H2O", "OAlbXOH", "OAlbX", "OAlbOH", "OAlbOH2",
	"AlbOH", "AlbOH2", "OAla", "OAlb", "H2O",
}

var speciesFromName map[string]Species

func init() {
	speciesFromName = make(map[string]Species, numSpecies+1)
	for i, n := range speciesNames {
		speciesFromName[n] = Species(i)
	}
	speciesFromName["VACANCY"] = VACANCY
}

func (s Species) String() string {
	if s < 0 || int(s) >= numSpecies {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return speciesNames[s]
}

// SpeciesFromName returns the Species with the given label.
func SpeciesFromName(name string) (Species, error) {
	s, ok := speciesFromName[name]
	if !ok {
		return -1, fmt.Errorf("ald: unknown species name %q", name)
	}
	return s, nil
}
