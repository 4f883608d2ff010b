// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

// BelletF4 is the indicator-style step 0.5*(1 + sgn(x - 0.5)), from
// "Spherical Harmonics Collocation: A Computational Intercomparison of
// Several Grids". Values are 0, 0.5, and 1.
func BelletF4[T Floats](theta, phi T) T {
	x, _, _ := sphericalToXYZ(theta, phi)
	return 0.5 * (1 + sgn(x-0.5))
}
