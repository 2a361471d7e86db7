// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdet/matrix"
	"github.com/stretchr/testify/require"
)

func TestResolve_Defaults(t *testing.T) {
	o := matrix.Resolve()
	require.Equal(t, matrix.DefaultThreads, o.Threads())
	require.Equal(t, matrix.DefaultMethod, o.Method())
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
}

func TestResolve_LastWins_AndClamp(t *testing.T) {
	o := matrix.Resolve(matrix.WithThreads(8), matrix.WithThreads(-2), matrix.WithMethod(matrix.Laplace))
	require.Equal(t, 1, o.Threads())
	require.Equal(t, matrix.Laplace, o.Method())

	o = matrix.Resolve(matrix.WithEpsilon(0), matrix.WithLogger(nil), matrix.WithClock(nil))
	require.Zero(t, o.Epsilon())
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	const msg = "matrix: WithEpsilon: eps must be finite, non-negative"
	require.PanicsWithValue(t, msg, func() { matrix.WithEpsilon(-1e-9) })
	require.PanicsWithValue(t, msg, func() { matrix.WithEpsilon(math.NaN()) })
	require.PanicsWithValue(t, msg, func() { matrix.WithEpsilon(math.Inf(1)) })
}

func TestParseMethod(t *testing.T) {
	m, err := matrix.ParseMethod("LU")
	require.NoError(t, err)
	require.Equal(t, matrix.LU, m)

	m, err = matrix.ParseMethod(" laplace ")
	require.NoError(t, err)
	require.Equal(t, matrix.Laplace, m)

	_, err = matrix.ParseMethod("qr")
	require.ErrorIs(t, err, matrix.ErrUnknownMethod)
}

func TestMethod_String(t *testing.T) {
	require.Equal(t, "lu", matrix.LU.String())
	require.Equal(t, "laplace", matrix.Laplace.String())
	require.Equal(t, "method(7)", matrix.Method(7).String())
}
