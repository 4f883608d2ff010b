// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

// Franke is the classic Franke test function carried over to the sphere:
// four weighted Gaussians in the Cartesian coordinates, with the 9x scaling
// of the original planar formulation. Note the second term is linear in y
// and z inside the exponent, as in Franke's original definition.
func Franke[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return 0.75*exp(-(9*x-2)*(9*x-2)/4-
		(9*y-2)*(9*y-2)/4-
		(9*z-2)*(9*z-2)/4) +
		0.75*exp(-(9*x+1)*(9*x+1)/49-
			(9*y+1)/10-
			(9*z+1)/10) +
		0.5*exp(-(9*x-7)*(9*x-7)/4-
			(9*y-3)*(9*y-3)/4-
			(9*z-5)*(9*z-5)/4) -
		0.2*exp(-(9*x-4)*(9*x-4)-
			(9*y-7)*(9*y-7)-
			(9*z-5)*(9*z-5))
}
