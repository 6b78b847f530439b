// Copyright 2025 The Feemodel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feemodel-ml/feemodel/matrix"
	"github.com/feemodel-ml/feemodel/model"
)

// TestPublicRoundTrip drives a small record through the public codec and
// compiler surface.
func TestPublicRoundTrip(t *testing.T) {
	identity, err := matrix.FromBuffer([]float32{1, 0, 0, 1}, 2, 2)
	require.NoError(t, err)
	sum, err := matrix.FromBuffer([]float32{1, 1}, 1, 2)
	require.NoError(t, err)

	rec := &model.Record{
		Mean:     map[string]float32{"a": 0, "b": 0},
		Std:      map[string]float32{"a": 1, "b": 1},
		Fields:   []string{"a", "b"},
		Alpha:    0.5,
		L0Kernel: identity,
		L0Bias:   matrix.FromArray([]float32{0, 0}),
		L1Kernel: identity,
		L1Bias:   matrix.FromArray([]float32{0, 0}),
		L2Kernel: sum,
		L2Bias:   matrix.FromArray([]float32{0}),
	}

	data, err := model.Encode(rec)
	require.NoError(t, err)
	decoded, err := model.Decode(data)
	require.NoError(t, err)

	m := model.Compile(decoded)
	require.Equal(t, 2, m.InputSize())
	require.Equal(t, 2, m.HiddenSize())
	require.Equal(t, 1, m.OutputSize())

	got, err := m.NormPredict(map[string]float32{"a": 2, "b": 3})
	require.NoError(t, err)
	require.Equal(t, float32(5), got)
}
