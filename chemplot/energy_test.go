/*
 * energy_test.go, part of gogaussian.
 *
 *
 * Copyright 2024 The gogaussian Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemplot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnergyProfile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "profile")
	energies := []float64{-76.3801, -76.4062, -76.4089533870, -76.4089565310}
	if err := EnergyProfile(energies, "Water optimization", name); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Errorf("empty plot")
	}
	if err := EnergyProfile(nil, "nothing", name); err == nil {
		Te.Errorf("expected an error with no energies")
	}
}
