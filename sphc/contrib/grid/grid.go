// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

// Package grid evaluates catalog functions over equiangular spherical
// grids. Quadrature experiments typically sample an integrand at every node
// of a theta x phi lattice; doing that one call at a time from the caller's
// loop is the common case, but for large grids the rows can be spread over
// a bounded set of goroutines since every catalog entry is pure.
package grid

import (
	stdmath "math"
	"runtime"
	"sync"

	"github.com/quadbench/go-sphc/sphc"
)

// Theta returns the i-th polar node of an nTheta-row grid, placed at cell
// midpoints: pi*(i + 1/2)/nTheta.
func Theta[T sphc.Floats](i, nTheta int) T {
	return T(stdmath.Pi * (float64(i) + 0.5) / float64(nTheta))
}

// Phi returns the j-th azimuthal node of an nPhi-column grid: 2*pi*j/nPhi.
func Phi[T sphc.Floats](j, nPhi int) T {
	return T(2 * stdmath.Pi * float64(j) / float64(nPhi))
}

// Eval evaluates fn at every node of an nTheta x nPhi grid and returns the
// values in row-major order (theta index outer, phi index inner). A grid
// with no rows or no columns yields nil.
func Eval[T sphc.Floats](fn sphc.Func[T], nTheta, nPhi int) []T {
	if nTheta <= 0 || nPhi <= 0 {
		return nil
	}
	out := make([]T, nTheta*nPhi)
	evalRows(fn, out, 0, nTheta, nTheta, nPhi)
	return out
}

// EvalParallel is Eval with the rows distributed over up to workers
// goroutines, each taking a contiguous chunk of rows. workers <= 0 means
// GOMAXPROCS. The output is identical to Eval: the catalog functions are
// pure and each row is written by exactly one goroutine.
func EvalParallel[T sphc.Floats](fn sphc.Func[T], nTheta, nPhi, workers int) []T {
	if nTheta <= 0 || nPhi <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > nTheta {
		workers = nTheta
	}
	out := make([]T, nTheta*nPhi)
	if workers == 1 {
		evalRows(fn, out, 0, nTheta, nTheta, nPhi)
		return out
	}

	chunk := (nTheta + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < nTheta; start += chunk {
		end := min(start+chunk, nTheta)
		wg.Add(1)
		go func() {
			defer wg.Done()
			evalRows(fn, out, start, end, nTheta, nPhi)
		}()
	}
	wg.Wait()
	return out
}

// evalRows fills out for theta rows [start, end).
func evalRows[T sphc.Floats](fn sphc.Func[T], out []T, start, end, nTheta, nPhi int) {
	for i := start; i < end; i++ {
		theta := Theta[T](i, nTheta)
		row := out[i*nPhi : (i+1)*nPhi]
		for j := range row {
			row[j] = fn(theta, Phi[T](j, nPhi))
		}
	}
}
