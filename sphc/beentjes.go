// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

import stdmath "math"

// BeentjesF3 is the smooth tanh front (1 + tanh(-9x - 9y + 9z)) / 9, a
// steep but continuous version of the FornbergF4 jump.
func BeentjesF3[T Floats](theta, phi T) T {
	const alpha = 9
	x, y, z := sphericalToXYZ(theta, phi)
	return (1 + tanh(-alpha*x-alpha*y+alpha*z)) / alpha
}

// BeentjesF4 is piecewise constant: (1 - sgn(x + y - z)) / 9.
func BeentjesF4[T Floats](theta, phi T) T {
	const alpha = 9
	x, y, z := sphericalToXYZ(theta, phi)
	return (1 - sgn(x+y-z)) / alpha
}

// BeentjesF5 is piecewise constant: (1 - sgn(pi*x + y)) / 9.
func BeentjesF5[T Floats](theta, phi T) T {
	const alpha = 9
	x, y, _ := sphericalToXYZ(theta, phi)
	return (1 - sgn(T(stdmath.Pi)*x+y)) / alpha
}
