/*
 * config_test.go, part of gogaussian.
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

package qm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(Te *testing.T, name, text string) string {
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestLoadCalc(Te *testing.T) {
	toml := `method = "opt b3lyp/6-31g(d)"
memory = "1gb"
nprocs = 4
command = "g16"
`
	yaml := `method: opt b3lyp/6-31g(d)
memory: 1gb
nprocs: 4
command: g16
`
	for _, path := range []string{writeConfig(Te, "job.toml", toml), writeConfig(Te, "job.yaml", yaml), writeConfig(Te, "job.yml", yaml)} {
		Q, err := LoadCalc(path)
		if err != nil {
			Te.Errorf("%s: %v", path, err)
			continue
		}
		want := Calc{Method: "opt b3lyp/6-31g(d)", Memory: "1gb", ChargeMult: "0 1", NCPU: 4, Title: "fafoom", Command: "g16"}
		if Q != want {
			Te.Errorf("%s: got %+v, wanted %+v", path, Q, want)
		}
	}
}

func TestLoadCalcErrors(Te *testing.T) {
	cases := map[string]string{
		"nomethod.toml": "memory = \"1gb\"\n",
		"negative.yaml": "method: opt\nnprocs: -1\n",
		"zero.toml":     "method = \"opt\"\nnprocs = 0\n",
		"zero.yaml":     "method: opt\nnprocs: 0\n",
		"broken.toml":   "method = \n",
		"job.json":      "{\"method\": \"opt\"}",
	}
	for name, text := range cases {
		if _, err := LoadCalc(writeConfig(Te, name, text)); !errors.Is(err, ErrBadConfig) {
			Te.Errorf("%s: expected ErrBadConfig, got %v", name, err)
		}
	}
	if _, err := LoadCalc(filepath.Join(Te.TempDir(), "missing.toml")); !errors.Is(err, ErrBadConfig) {
		Te.Errorf("expected ErrBadConfig for a missing file, got %v", err)
	}
}
