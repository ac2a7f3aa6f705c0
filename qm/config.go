/*
 * config.go, part of gogaussian.
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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//LoadCalc reads the settings for a calculation from filename, which can be
//a TOML (.toml) or YAML (.yaml, .yml) file. The keys are method, memory,
//chargemult, nprocs, title and command. Missing keys, except for method,
//take the default values. Keys present in the file are used as given, so
//nprocs = 0 is an error rather than the default.
func LoadCalc(filename string) (Calc, error) {
	var Q Calc
	Q.SetDefaults()
	cont, err := os.ReadFile(filename)
	if err != nil {
		return Q, Error{kind: ErrBadConfig, filename: filename, deco: []string{"os.ReadFile", "LoadCalc"}, critical: true, cause: err}
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(cont, &Q)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(cont, &Q)
	default:
		err = fmt.Errorf("unknown configuration format %q", ext)
	}
	if err != nil {
		return Q, Error{kind: ErrBadConfig, filename: filename, deco: []string{"LoadCalc"}, critical: true, cause: err}
	}
	if err := Q.Validate(); err != nil {
		e := err.(Error)
		e.filename = filename
		return Q, errDecorate(e, "LoadCalc")
	}
	return Q, nil
}
