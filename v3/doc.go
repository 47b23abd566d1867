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

/*Package v3 implements a simple matrix type for sets of vectors in 3D space,
built on the gonum mat.Dense type. Within the package it is understood that a
"vector" is a row of the matrix, i.e. the cartesian coordinates of a point in
3D space. The type is used across gopoly for atomic positions, forces and
separation vectors.

Several functions here panic instead of returning errors. They are
"fundamental" functions, so, if something goes wrong with them, the program is
way-most likely wrong and should crash.
*/
package v3
