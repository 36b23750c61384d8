/*
 * doc.go, part of molgeo.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

/*
Package chem is the main package of the molgeo library. It provides a Molecule
structure (labeled atoms with cartesian coordinates) and derives the list of
bonds of the molecule from the interatomic distances.

	**molgeo Capabilities**

	Builds a bond list from a simple distance window: two atoms are bonded if
	their distance is strictly between a minimum and a maximum bond length.
	The bond list is recalculated every time the coordinates of a molecule
	are replaced, so it is never out of date.

	Distances and angles between points in space.

	Reads and writes (multi-)XYZ files, optionally gzip or zstd compressed
	(package xyz).

	Encodes and decodes molecules as JSON (package chemjson).

	Builds the bond graph of a molecule, to obtain fragments and bonded
	paths (package chemgraph), statistics of bond lengths (package chemstat)
	and histograms of them (package chemplot).

Cartesian coordinates are given as v3.Vec values, one per atom. The v3 package
also offers a Matrix type, based on gonum's Dense, to exchange whole sets of
coordinates.
*/
package chem

// Version is the semantic version of the library.
const Version = "0.3.0"
