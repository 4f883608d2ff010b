// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

import stdmath "math"

// Generic-width wrappers over the stdlib math package. Arithmetic in the
// catalog stays in T; only the transcendental calls round-trip through
// float64.

func sin[T Floats](x T) T { return T(stdmath.Sin(float64(x))) }

func cos[T Floats](x T) T { return T(stdmath.Cos(float64(x))) }

func tanh[T Floats](x T) T { return T(stdmath.Tanh(float64(x))) }

func atan[T Floats](x T) T { return T(stdmath.Atan(float64(x))) }

func exp[T Floats](x T) T { return T(stdmath.Exp(float64(x))) }

func abs[T Floats](x T) T { return T(stdmath.Abs(float64(x))) }

// sgn reports the sign of v as a value of the same precision: 1 for v > 0,
// -1 for v < 0, 0 for v == 0. NaN compares false against zero in both
// directions, so sgn(NaN) = 0.
func sgn[T Floats](v T) T {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// dot is the Euclidean inner product of two 3-vectors given componentwise.
// No normalization is applied.
func dot[T Floats](x1, y1, z1, x2, y2, z2 T) T {
	return x1*x2 + y1*y2 + z1*z2
}
