// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package sphc

// Floats is a constraint for the floating-point precisions the catalog
// supports.
type Floats interface {
	~float32 | ~float64
}

// Func is the signature shared by every catalog entry: a scalar field over
// the unit sphere, evaluated at spherical angles (theta, phi).
type Func[T Floats] func(theta, phi T) T
