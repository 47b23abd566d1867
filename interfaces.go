/*
 * interfaces.go, part of gopoly.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
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

package poly

import "fmt"

//PairPotential is the contract for a pairwise interaction between two atoms
//with sizes si and sj. All radial functions take the scalar distance r and
//the mixed interaction length lambda of the pair, as returned by MixedLength.
//Beyond Cutoff(lambda) the energy and both derivatives must be identically
//zero.
type PairPotential interface {
	//MixedLength returns the effective interaction length of a pair with
	//sizes si and sj.
	MixedLength(si, sj float64) float64
	//Cutoff returns the absolute cutoff distance for a pair with mixed
	//length lambda.
	Cutoff(lambda float64) float64
	//Energy returns the pair energy at distance r.
	Energy(r, lambda float64) float64
	//Gradient returns the first derivative of the pair energy with
	//respect to r.
	Gradient(r, lambda float64) float64
	//Curvature returns the second derivative of the pair energy with
	//respect to r.
	Curvature(r, lambda float64) float64
}

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve info from the
//error as it is passed up the calling stack. Each call returns the current
//"decoration" slice of strings. If passed an empty string, Decorate just
//returns the current value, without adding the empty string to the slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type of the library. It fulfills the Error
//interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds new information to the error.
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer receiver, and tries to
	//alter the receiver, it works, since err.deco is a slice, and hence a
	//pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Common error messages. Errors carrying these messages abort the evaluation
//before any numeric work (missing attributes, invalid parameters) or as soon
//as the offending geometry is found (overlapping atoms).
const (
	ErrNilConfiguration = "nil configuration given"
	ErrMissingSizes     = "per-atom sizes not set"
	ErrMissingMasses    = "per-atom masses not set"
	ErrZeroDistance     = "degenerate geometry: atoms at zero distance"
	ErrBadParameter     = "invalid potential parameter"
	ErrBadCell          = "ill-defined periodic cell"
)

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return CError{fmt.Sprintf("%s: %s", caller, err.Error()), []string{caller}}
	}
	err2.Decorate(caller)
	return err2
}
