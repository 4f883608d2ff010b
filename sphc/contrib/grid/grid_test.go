// Copyright 2025 The go-sphc Authors. SPDX-License-Identifier: Apache-2.0

package grid

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quadbench/go-sphc/sphc"
)

func TestNodeAngles(t *testing.T) {
	const nTheta, nPhi = 10, 12
	for i := range nTheta {
		theta := Theta[float64](i, nTheta)
		require.Greater(t, theta, 0.0)
		require.Less(t, theta, stdmath.Pi)
	}
	require.InDelta(t, stdmath.Pi/20, Theta[float64](0, nTheta), 1e-15)

	require.Zero(t, Phi[float64](0, nPhi))
	for j := range nPhi {
		phi := Phi[float64](j, nPhi)
		require.GreaterOrEqual(t, phi, 0.0)
		require.Less(t, phi, 2*stdmath.Pi)
	}
}

func TestEvalMatchesDirectCalls(t *testing.T) {
	const nTheta, nPhi = 7, 9
	out := Eval(sphc.Franke[float64], nTheta, nPhi)
	require.Len(t, out, nTheta*nPhi)

	for i := range nTheta {
		for j := range nPhi {
			want := sphc.Franke(Theta[float64](i, nTheta), Phi[float64](j, nPhi))
			require.Equal(t, want, out[i*nPhi+j], "node (%d, %d)", i, j)
		}
	}
}

func TestEvalParallelMatchesEval(t *testing.T) {
	const nTheta, nPhi = 33, 17
	seq := Eval(sphc.CfF5[float64], nTheta, nPhi)

	for _, workers := range []int{0, 1, 2, 3, 8, nTheta, nTheta + 5} {
		par := EvalParallel(sphc.CfF5[float64], nTheta, nPhi, workers)
		require.Equal(t, seq, par, "workers=%d", workers)
	}
}

func TestEvalParallelFloat32(t *testing.T) {
	const nTheta, nPhi = 16, 16
	seq := Eval(sphc.CfF6[float32], nTheta, nPhi)
	par := EvalParallel(sphc.CfF6[float32], nTheta, nPhi, 4)
	require.Equal(t, seq, par)
}

func TestEvalEmptyGrid(t *testing.T) {
	require.Nil(t, Eval(sphc.Franke[float64], 0, 8))
	require.Nil(t, Eval(sphc.Franke[float64], 8, 0))
	require.Nil(t, EvalParallel(sphc.Franke[float64], 0, 8, 4))
	require.Nil(t, EvalParallel(sphc.Franke[float64], -1, 8, 4))
}
