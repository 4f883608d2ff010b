// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

// RenkaF3 is |(1.25 + cos(5.4y)) * cos(6z) / (6 + 6*(3x - 1)^2)|.
func RenkaF3[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return abs((1.25 + cos(5.4*y)) * cos(6*z) / (6 + 6*(3*x-1)*(3*x-1)))
}

// RenkaF4 is a wide Gaussian bump centered at (0.5, 0.5, 0.5):
//
//	exp(-(81/16)*((x-0.5)^2 + (y-0.5)^2 + (z-0.5)^2)) / 3
func RenkaF4[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return exp(-(81.0/16.0)*((x-0.5)*(x-0.5)+(y-0.5)*(y-0.5)+(z-0.5)*(z-0.5))) / 3
}

// RenkaF5 is the narrow variant of RenkaF4:
//
//	exp(-(81/4)*((x-0.5)^2 + (y-0.5)^2 + (z-0.5)^2)) / 3
func RenkaF5[T Floats](theta, phi T) T {
	x, y, z := sphericalToXYZ(theta, phi)
	return exp(-(81.0/4.0)*((x-0.5)*(x-0.5)+(y-0.5)*(y-0.5)+(z-0.5)*(z-0.5))) / 3
}
