package model

import (
	"errors"
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feemodel-ml/feemodel/internal/matrix"
)

func mustMatrix(t *testing.T, buf []float32, w, h matrix.Dim) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromBuffer(buf, w, h)
	require.NoError(t, err)
	return m
}

// smallRecord builds a minimal consistent record: I=2, N=2, O=1.
func smallRecord(t *testing.T) *Record {
	t.Helper()
	return &Record{
		Mean:   map[string]float32{"a": 1.5, "b": -2},
		Std:    map[string]float32{"a": 0.5, "b": 4},
		Fields: []string{"a", "b"},
		Alpha:  0.01,
		L0Kernel: mustMatrix(t, []float32{
			0.25, -1.5,
			2, 0.125,
		}, 2, 2),
		L0Bias: mustMatrix(t, []float32{0.5, -0.5}, 2, 1),
		L1Kernel: mustMatrix(t, []float32{
			1, 0,
			0, 1,
		}, 2, 2),
		L1Bias:   mustMatrix(t, []float32{0, 0.75}, 2, 1),
		L2Kernel: mustMatrix(t, []float32{2, -1}, 1, 2),
		L2Bias:   mustMatrix(t, []float32{0.25}, 1, 1),
	}
}

func assertBitEqual(t *testing.T, want, got *matrix.Matrix, name string) {
	t.Helper()
	require.Equal(t, want.Size(), got.Size(), name)
	wd, gd := want.Data(), got.Data()
	for i := range wd {
		assert.Equal(t, math.Float32bits(wd[i]), math.Float32bits(gd[i]),
			"%s element %d", name, i)
	}
}

func TestRoundTrip(t *testing.T) {
	rec := smallRecord(t)
	data, err := Encode(rec)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, rec.Mean, got.Mean)
	assert.Equal(t, rec.Std, got.Std)
	assert.Equal(t, rec.Fields, got.Fields)
	assert.Equal(t, rec.Alpha, got.Alpha)
	assertBitEqual(t, rec.L0Kernel, got.L0Kernel, KeyL0Kernel)
	assertBitEqual(t, rec.L0Bias, got.L0Bias, KeyL0Bias)
	assertBitEqual(t, rec.L1Kernel, got.L1Kernel, KeyL1Kernel)
	assertBitEqual(t, rec.L1Bias, got.L1Bias, KeyL1Bias)
	assertBitEqual(t, rec.L2Kernel, got.L2Kernel, KeyL2Kernel)
	assertBitEqual(t, rec.L2Bias, got.L2Bias, KeyL2Bias)
}

func TestRoundTripPreservesFloatBits(t *testing.T) {
	rec := smallRecord(t)
	// Awkward bit patterns must survive: negative zero and subnormals.
	rec.L0Kernel = mustMatrix(t, []float32{
		float32(math.Copysign(0, -1)), math.Float32frombits(0x00000001),
		-1.5e-42, math.Float32frombits(0x007fffff),
	}, 2, 2)

	data, err := Encode(rec)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	assertBitEqual(t, rec.L0Kernel, got.L0Kernel, KeyL0Kernel)
}

func TestDecodeMalformedContainer(t *testing.T) {
	_, err := Decode([]byte{0xff, 0x00, 0x01})
	assert.Error(t, err)
}

func TestDecodeMissingTensor(t *testing.T) {
	rec := smallRecord(t)
	data, err := Encode(rec)
	require.NoError(t, err)

	// Re-encode the container without the layer-1 kernel.
	var c wireContainer
	require.NoError(t, cbor.Unmarshal(data, &c))
	delete(c.Weights, KeyL1Kernel)
	data, err = encMode.Marshal(&c)
	require.NoError(t, err)

	_, err = Decode(data)
	assert.ErrorIs(t, err, ErrMissingTensor)
}

func TestDecodeRowWidthMismatch(t *testing.T) {
	rec := smallRecord(t)
	data, err := Encode(rec)
	require.NoError(t, err)

	var c wireContainer
	require.NoError(t, cbor.Unmarshal(data, &c))
	raw, err := encMode.Marshal([][]float32{{1, 2}, {3}})
	require.NoError(t, err)
	c.Weights[KeyL0Kernel] = raw
	data, err = encMode.Marshal(&c)
	require.NoError(t, err)

	_, err = Decode(data)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr), "got %v", err)
	assert.True(t, decodeErr.IsRow)
	assert.Equal(t, 1, decodeErr.Row)
	assert.Equal(t, 2, decodeErr.Expected)
	assert.Equal(t, 1, decodeErr.Found)
}

func TestDecodeRowCountMismatch(t *testing.T) {
	rec := smallRecord(t)
	data, err := Encode(rec)
	require.NoError(t, err)

	var c wireContainer
	require.NoError(t, cbor.Unmarshal(data, &c))
	raw, err := encMode.Marshal([][]float32{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	c.Weights[KeyL0Kernel] = raw
	data, err = encMode.Marshal(&c)
	require.NoError(t, err)

	_, err = Decode(data)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr), "got %v", err)
	assert.False(t, decodeErr.IsRow)
	assert.Equal(t, 2, decodeErr.Expected)
	assert.Equal(t, 3, decodeErr.Found)
}

func TestHeightOneEncodedFlat(t *testing.T) {
	rec := smallRecord(t)
	data, err := Encode(rec)
	require.NoError(t, err)

	var c wireContainer
	require.NoError(t, cbor.Unmarshal(data, &c))

	// Biases are height 1 and must decode as a plain float sequence,
	// not a one-element sequence of rows.
	var flat []float32
	require.NoError(t, cbor.Unmarshal(c.Weights[KeyL0Bias], &flat))
	assert.Equal(t, []float32{0.5, -0.5}, flat)

	// Kernels taller than one row must decode as a sequence of rows.
	var rows [][]float32
	require.NoError(t, cbor.Unmarshal(c.Weights[KeyL0Kernel], &rows))
	assert.Len(t, rows, 2)
}
