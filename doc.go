/*
 * doc.go, part of gopoly.
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

/*Package poly is the main package of the goPoly library. It implements an
interatomic potential calculator for polydisperse systems, where each atom
carries a continuous size parameter entering the interaction range, instead of
belonging to a fixed chemical species.


	**goPoly capabilities**

    Evaluates a size-dependent, smoothly truncated inverse-power-law pair
	potential, together with its analytical first and second derivatives.

    Computes the total potential energy, per-atom forces and the virial
	stress tensor of a periodic atomic configuration.

    Assembles the sparse 3Nx3N Hessian matrix, optionally mass-normalized
	into the dynamical matrix.

    Computes the non-affine forces (the mixed derivative of the energy with
	respect to atomic positions and affine strain) and the Birch, i.e.
	purely affine, elastic constant tensor, with conversion of symmetric
	rank-4 tensors to the 6x6 Voigt form.

    Provides finite-difference counterparts for forces, stress, Hessian,
	non-affine forces and Born constants, so every analytical derivative
	can be verified numerically.

    Reads and writes extended-XYZ files with per-atom sizes and masses,
	transparently compressed with zstd when the file name ends in ".zst".

All evaluations are pure functions of the configuration and the potential
parameters; nothing is cached between calls, so a Calculator can be shared
between goroutines evaluating different configurations.

goPoly uses a row-major convention: atomic positions are Nx3 matrices
(the v3 subpackage) where each row is one atom, and the periodic cell is a
3x3 matrix where each row is one lattice vector.
*/
package poly
