package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feemodel-ml/feemodel/internal/matrix"
)

// identityModel is a hand-checkable model: I=2, N=2, O=1, alpha=0.5,
// identity kernels on both hidden layers. All constants are dyadic so the
// float32 arithmetic is exact.
func identityModel(t *testing.T) *Model {
	t.Helper()
	return New(Params{
		Mean:   map[string]float32{"a": 2, "b": -4},
		Std:    map[string]float32{"a": 0.5, "b": 2},
		Fields: []string{"a", "b"},
		Alpha:  0.5,
		L0Kernel: mustMatrix(t, []float32{
			1, 0,
			0, 1,
		}, 2, 2),
		L0Bias: mustMatrix(t, []float32{0.5, -2.5}, 2, 1),
		L1Kernel: mustMatrix(t, []float32{
			1, 0,
			0, 1,
		}, 2, 2),
		L1Bias:   mustMatrix(t, []float32{0, 0}, 2, 1),
		L2Kernel: mustMatrix(t, []float32{2, 1}, 1, 2),
		L2Bias:   mustMatrix(t, []float32{0.25}, 1, 1),
	})
}

func TestNormalizeAffine(t *testing.T) {
	m := identityModel(t)
	// An input equal to the field's mean normalizes to exactly zero.
	x, err := m.Normalize(map[string]float32{"a": 2, "b": -4})
	require.NoError(t, err)
	assert.Equal(t, float32(0), x.At(0, 0))
	assert.Equal(t, float32(0), x.At(0, 1))

	x, err = m.Normalize(map[string]float32{"a": 3, "b": 0})
	require.NoError(t, err)
	assert.Equal(t, float32(2), x.At(0, 0)) // (3-2)/0.5
	assert.Equal(t, float32(2), x.At(0, 1)) // (0-(-4))/2
}

func TestNormalizeMissingInputDefaultsToZero(t *testing.T) {
	m := identityModel(t)
	x, err := m.Normalize(map[string]float32{"a": 2})
	require.NoError(t, err)
	// b absent: x = 0, normalized (0-(-4))/2 = 2.
	assert.Equal(t, float32(2), x.At(0, 1))
}

func TestNormalizeMissingStat(t *testing.T) {
	m := identityModel(t)

	broken := New(Params{
		Mean:     map[string]float32{"a": 2}, // no mean for b
		Std:      map[string]float32{"a": 0.5, "b": 2},
		Fields:   []string{"a", "b"},
		Alpha:    m.alpha,
		L0Kernel: m.l0Kernel, L0Bias: m.l0Bias,
		L1Kernel: m.l1Kernel, L1Bias: m.l1Bias,
		L2Kernel: m.l2Kernel, L2Bias: m.l2Bias,
	})
	_, err := broken.Normalize(map[string]float32{"a": 2, "b": 1})
	var statErr *MissingStatError
	require.True(t, errors.As(err, &statErr), "got %v", err)
	assert.Equal(t, "b", statErr.Field)
	assert.Equal(t, "mean", statErr.Stat)
}

func TestPredict(t *testing.T) {
	m := identityModel(t)
	// x = [1, -1]:
	//   layer 0: [1.5, -3.5] -> relu(0.5) -> [1.5, -1.75]
	//   layer 1: identity    -> relu(0.5) -> [1.5, -0.875]
	//   layer 2: 2*1.5 + 1*(-0.875) + 0.25 = 2.375
	got, err := m.Predict(matrix.FromArray([]float32{1, -1}))
	require.NoError(t, err)
	assert.Equal(t, float32(2.375), got)
}

func TestPredictReturnsRawValue(t *testing.T) {
	m := identityModel(t)
	// Strongly negative input drives the regression output below 1.
	// The evaluator must report it as-is; any floor is caller policy.
	got, err := m.Predict(matrix.FromArray([]float32{-4, 0}))
	require.NoError(t, err)
	assert.Less(t, got, float32(1))
}

func TestPredictShapeMismatch(t *testing.T) {
	m := identityModel(t)
	_, err := m.Predict(matrix.FromArray([]float32{1, 2, 3}))
	var shapeErr *matrix.ShapeError
	require.True(t, errors.As(err, &shapeErr), "got %v", err)
}

func TestNormPredict(t *testing.T) {
	m := identityModel(t)
	// a=2.5 -> (2.5-2)/0.5 = 1; b=-6 -> (-6+4)/2 = -1. Same as TestPredict.
	got, err := m.NormPredict(map[string]float32{"a": 2.5, "b": -6})
	require.NoError(t, err)
	assert.Equal(t, float32(2.375), got)
}

func TestCompileFromRecord(t *testing.T) {
	rec := smallRecord(t)
	m := Compile(rec)
	assert.Equal(t, rec.Fields, m.Fields())
	assert.Equal(t, rec.Alpha, m.Alpha())
	assert.Equal(t, 2, m.InputSize())
	assert.Equal(t, 2, m.HiddenSize())
	assert.Equal(t, 1, m.OutputSize())
}

func TestModelCopiesParams(t *testing.T) {
	mean := map[string]float32{"a": 1, "b": 2}
	m := New(Params{
		Mean:     mean,
		Std:      map[string]float32{"a": 1, "b": 1},
		Fields:   []string{"a", "b"},
		L0Kernel: mustMatrix(t, []float32{1, 0, 0, 1}, 2, 2),
		L0Bias:   mustMatrix(t, []float32{0, 0}, 2, 1),
		L1Kernel: mustMatrix(t, []float32{1, 0, 0, 1}, 2, 2),
		L1Bias:   mustMatrix(t, []float32{0, 0}, 2, 1),
		L2Kernel: mustMatrix(t, []float32{1, 1}, 1, 2),
		L2Bias:   mustMatrix(t, []float32{0}, 1, 1),
	})
	mean["a"] = 99
	x, err := m.Normalize(map[string]float32{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, float32(0), x.At(0, 0), "model must not alias caller maps")
}
