// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

// FornbergF1 is a smooth polynomial in the Cartesian coordinates:
//
//	1 + x + y^2 + x^2*y + x^4 + y^5 + x^2*y^2*z^2
func FornbergF1[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return 1 + x + y*y + x*x*y + x*x*x*x + y*y*y*y*y + x*x*y*y*z*z
}

// FornbergF4 is piecewise constant with a jump across the great circle
// -x - y + z = 0; its values are 0, 1/9, and 2/9.
func FornbergF4[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return (1 + sgn(-9*x-9*y+9*z)) / 9
}
