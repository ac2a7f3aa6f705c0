/*
 * errors.go, part of gogaussian.
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
	"fmt"
)

//Kinds of errors. Every Error wraps one of these, so they can be checked with errors.Is.
var (
	ErrMissingInput       = errors.New("required input file not present")
	ErrMissingOutput      = errors.New("output file not present")
	ErrCantInput          = errors.New("can't build input")
	ErrCantWrite          = errors.New("can't write file")
	ErrNotRunning         = errors.New("can't run the QM program")
	ErrNotAvailable       = errors.New("the calculation wasn't performed yet")
	ErrInconsistentOutput = errors.New("inconsistent QM program output")
	ErrBadConfig          = errors.New("invalid calculation settings")
)

//Error is the error type of this package. The Decorate method allows to add and retrieve
//the list of callers the error went through, without changing its type.
type Error struct {
	kind     error
	program  string
	filename string //the file that has problems, or empty string if none.
	message  string
	deco     []string
	critical bool
	cause    error
}

func (err Error) Error() string {
	ret := err.kind.Error()
	if err.program != "" {
		ret = fmt.Sprintf("%s: %s", err.program, ret)
	}
	if err.filename != "" {
		ret = fmt.Sprintf("%s (%s)", ret, err.filename)
	}
	if err.message != "" {
		ret = ret + ": " + err.message
	}
	if err.cause != nil {
		ret = ret + ": " + err.cause.Error()
	}
	return ret
}

//Unwrap returns the kind of the error and, if present, its cause.
func (err Error) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}

//Decorate returns the list of callers of the error plus deco. If deco is empty
//it just returns the current list. Error is a value, so use errDecorate to keep
//the new decoration.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//errDecorate adds the caller's name to the decorations of err, if err
//is an Error, and returns it.
func errDecorate(err error, caller string) error {
	var e Error
	if !errors.As(err, &e) {
		return err
	}
	e.deco = append(e.deco, caller)
	return e
}
