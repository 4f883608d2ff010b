// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

// Package sphc is a catalog of scalar test functions on the unit sphere,
// parameterized by the polar angle theta in [0, pi] and the azimuthal angle
// phi in [0, 2*pi). The entries are reference integrands for spherical
// quadrature and interpolation benchmarks, drawn from the test sets of
// Fornberg, Beentjes, Renka, Reegar, Bellet, and Franke, plus a set of
// custom-designed functions (the CfF* family).
//
// Every entry is generic over the evaluation precision:
//
//	import "github.com/quadbench/go-sphc/sphc"
//
//	v32 := sphc.FornbergF1[float32](0.23, 0.42)
//	v64 := sphc.FornbergF1(0.2, 0.1) // float64 inferred
//
// Entries can also be selected by their literature name through the
// registry:
//
//	fn, ok := sphc.Lookup[float64]("beentjes_f4")
//	if ok {
//	    fmt.Println(fn(0.5, 1.0))
//	}
//
// All functions are pure and total over finite inputs: there is no input
// validation, no error return, and no shared state. Non-finite inputs
// propagate per IEEE-754 (typically to NaN). The sgn-based entries are
// intentionally discontinuous; their jumps sit exactly on the zero-set of
// the sgn argument, which is what makes them useful for stressing
// quadrature rules near discontinuities.
package sphc
