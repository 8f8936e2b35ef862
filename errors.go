/*
 * errors.go, part of gostm.
 *
 * Copyright 2015 The gostm developers
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

package stm

import "fmt"

// Error is the interface implemented by errors of this library. The Decorate
// method allows adding information to the error as it is passed up the calling
// stack, without changing its type or wrapping it. Each call returns the
// current decoration slice; passing an empty string only queries it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is the interface for errors tied to an input or output file.
// Critical distinguishes errors that must abort the run from recoverable
// conditions.
type FileError interface {
	Error
	FileName() string
	Critical() bool
}

// CError is the concrete error type used throughout the package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds new information to the error.
func (err CError) Decorate(deco string) []string {
	// The receiver is not a pointer, but deco is a slice, so the append
	// is visible to the caller holding the same backing array.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func newError(caller, format string, args ...interface{}) CError {
	return CError{fmt.Sprintf(caller+": "+format, args...), []string{caller}}
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name. Errors from outside the library are wrapped instead.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return CError{caller + ": " + err.Error(), []string{caller}}
	}
	err2.Decorate(caller)
	return err2
}

// pathError is the concrete FileError. It marks fatal I/O and format problems
// (critical) apart from conditions a run can survive.
type pathError struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err pathError) Error() string {
	return fmt.Sprintf("file %s: %s", err.filename, err.message)
}

func (err pathError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err pathError) FileName() string { return err.filename }

func (err pathError) Critical() bool { return err.critical }
