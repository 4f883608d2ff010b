// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

// sphericalToXYZ maps spherical angles to the Cartesian point on the unit
// sphere:
//
//	x = sin(theta)*cos(phi)
//	y = sin(theta)*sin(phi)
//	z = cos(theta)
//
// The result satisfies x*x + y*y + z*z == 1 up to rounding. Out-of-range
// angles are not rejected; they wrap through the trigonometric identities.
func sphericalToXYZ[T Floats](theta, phi T) (x, y, z T) {
	sinTheta := sin(theta)
	return sinTheta * cos(phi), sinTheta * sin(phi), cos(theta)
}
