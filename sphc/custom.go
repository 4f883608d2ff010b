// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

import stdmath "math"

// Custom-designed test functions. CfF1 through CfF6 are defined directly in
// the spherical angles; the rest go through the Cartesian coordinates.

// CfF1 is |sin(cos(2*phi) - 2*theta)| + |cos(2*theta)|.
func CfF1[T Floats](theta, phi T) T {
	return abs(sin(cos(2*phi)-2*theta)) + abs(cos(2*theta))
}

// CfF2 is |sin(2*phi - theta)| + |cos(2*theta)|.
func CfF2[T Floats](theta, phi T) T {
	return abs(sin(2*phi-theta)) + abs(cos(2*theta))
}

// CfF3 is 1 + sin(5*phi)/5, constant along theta.
func CfF3[T Floats](_, phi T) T {
	return 1 + sin(5*phi)/5
}

// CfF4 is 1 + cos(5*phi)/5 + sin(5*theta).
func CfF4[T Floats](theta, phi T) T {
	return 1 + cos(5*phi)/5 + sin(5*theta)
}

// CfF5 sums three directional exponentials against fixed reference vectors
// with exp(theta) and a rapid |cos| oscillation on top.
func CfF5[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return exp(2*dot(x, y, z, -1, -1, 0.8)) +
		exp(1.5*dot(x, y, z, 1, -1, 0.8)) +
		exp(theta) +
		10*exp(dot(x, y, z, 0.8, 0.3, -4)-1) +
		4*abs(cos(45*theta+45*phi))
}

// CfF6 is 1 + 0.5*cos(theta) + 0.3*cos(2*phi).
func CfF6[T Floats](theta, phi T) T {
	return 1 + 0.5*cos(theta) + 0.3*cos(2*phi)
}

// CfF7 is |cos(3x) + sin(2y) + 0.5*z^2|.
func CfF7[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return abs(cos(3*x) + sin(2*y) + 0.5*z*z)
}

// CfF8 is |sin(2x)*cos(3y) + 0.5*z^2 + 0.3*sin(5x)*cos(4z)|.
func CfF8[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return abs(sin(2*x)*cos(3*y) + 0.5*z*z + 0.3*sin(5*x)*cos(4*z))
}

// CfF9 is the folded quadric |x^2 - y^2 + 0.5*x*z - 0.3*y*z|.
func CfF9[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return abs(x*x - y*y + 0.5*x*z - 0.3*y*z)
}

// CfF10 is x^2 + y^2 + z^2 + 5 + 2.5*cos((theta-pi)/2)*sin(16*theta). The
// quadratic part is identically 1 on the sphere; it is kept for parity with
// the published form.
func CfF10[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return x*x + y*y + z*z + 5 + 2.5*cos((theta-T(stdmath.Pi))/2)*sin(16*theta)
}

// CfF11 is |sin(10x)*cos(12y)*sin(15z) + cos(20x)|.
func CfF11[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return abs(sin(10*x)*cos(12*y)*sin(15*z) + cos(20*x))
}

// CfF12 is sin(10x) + cos(12y) - sin(15z) + 0.2*cos(18x) + 3.
func CfF12[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return sin(10*x) + cos(12*y) - sin(15*z) + 0.2*cos(18*x) + 3
}

// CfF13 is exp(-sin(5x) - cos(6y)) + 0.3*sin(10z).
func CfF13[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return exp(-sin(5*x)-cos(6*y)) + 0.3*sin(10*z)
}

// CfF14 is exp(-2*(x^2 + y^2)) * sin(4z).
func CfF14[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return exp(-2*(x*x+y*y)) * sin(4*z)
}

// Cf15 is (x^2 + y^2) * exp(-3*z^2). The name skips the F to match the
// source catalog's labeling of this entry.
func Cf15[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return (x*x + y*y) * exp(-3*z*z)
}
