// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

import stdmath "math"

// ReegarF2 is (2/pi)*atan(z), from "Numerical quadrature over smooth
// surfaces with boundaries". Bounded in [-0.5, 0.5] on the unit sphere.
func ReegarF2[T Floats](theta, phi T) T {
	_, _, z := sphericalToXYZ(theta, phi)
	return 2 / T(stdmath.Pi) * atan(z)
}

// ReegarF3 is a near-step atan front close to the north pole, from
// "Numerical Quadrature over the Surface of a Sphere":
//
//	(pi/2 + atan(300*(z - 9999/10000))) / pi
//
// The 9999/10000 offset is taken verbatim from the paper.
func ReegarF3[T Floats](theta, phi T) T {
	_, _, z := sphericalToXYZ(theta, phi)
	return (T(stdmath.Pi)/2 + atan(300*(z-9999.0/10000.0))) / T(stdmath.Pi)
}

// ReegarF4 is the steeper companion front, from "Numerical quadrature over
// smooth surfaces with boundaries":
//
//	0.5 + atan(1000*(z - 9999/(10000*2*sqrt(2)))) / pi
//
// As with ReegarF3, the offset constant is kept exactly as published.
func ReegarF4[T Floats](theta, phi T) T {
	_, _, z := sphericalToXYZ(theta, phi)
	return 0.5 + atan(1000*(z-9999.0/(10000.0*2*T(stdmath.Sqrt2))))/T(stdmath.Pi)
}
