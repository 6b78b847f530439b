package model

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/feemodel-ml/feemodel/internal/matrix"
)

// Wire layout of the persisted container. Tensors stay raw until their
// expected shapes are known; a height-1 tensor is a flat sequence of floats
// on the wire, indistinguishable by content from a sequence of rows, so the
// destination shape must drive the decoding (never content inspection).
type wireContainer struct {
	Norm    wireNorm                   `cbor:"norm"`
	Weights map[string]cbor.RawMessage `cbor:"weights"`
	Fields  []string                   `cbor:"fields"`
	Alpha   float32                    `cbor:"alpha"`
}

type wireNorm struct {
	Mean map[string]float32 `cbor:"mean"`
	Std  map[string]float32 `cbor:"std"`
}

// encMode keeps the storage path free of any float rewriting: no shortest
// form conversion, no NaN or Inf canonicalization. Raw bit patterns survive
// the round trip.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortBytewiseLexical,
		ShortestFloat: cbor.ShortestFloatNone,
		NaNConvert:    cbor.NaNConvertNone,
		InfConvert:    cbor.InfConvertNone,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("model: cbor encoder options: %v", err))
	}
}

// Decode parses a persisted model container.
//
// Shapes are resolved in dependency order: the field list fixes I, the bias
// lengths fix N and O, and only then are the kernels decoded against their
// fully known destination shapes.
func Decode(data []byte) (*Record, error) {
	var c wireContainer
	if err := cbor.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("model: decode container: %w", err)
	}

	l0Bias, err := decodeBias(c.Weights, KeyL0Bias)
	if err != nil {
		return nil, err
	}
	l1Bias, err := decodeBias(c.Weights, KeyL1Bias)
	if err != nil {
		return nil, err
	}
	l2Bias, err := decodeBias(c.Weights, KeyL2Bias)
	if err != nil {
		return nil, err
	}

	i := len(c.Fields)
	n := l0Bias.Width()
	o := l2Bias.Width()

	l0Kernel, err := decodeMatrix(c.Weights, KeyL0Kernel, n, i)
	if err != nil {
		return nil, err
	}
	l1Kernel, err := decodeMatrix(c.Weights, KeyL1Kernel, l1Bias.Width(), n)
	if err != nil {
		return nil, err
	}
	l2Kernel, err := decodeMatrix(c.Weights, KeyL2Kernel, o, l1Bias.Width())
	if err != nil {
		return nil, err
	}

	return &Record{
		Mean:     c.Norm.Mean,
		Std:      c.Norm.Std,
		Fields:   c.Fields,
		Alpha:    c.Alpha,
		L0Kernel: l0Kernel,
		L0Bias:   l0Bias,
		L1Kernel: l1Kernel,
		L1Bias:   l1Bias,
		L2Kernel: l2Kernel,
		L2Bias:   l2Bias,
	}, nil
}

// Encode serializes a record back into the container form Decode accepts.
// Height-1 tensors are written as flat sequences, taller tensors as
// sequences of rows, mirroring the training pipeline's output.
func Encode(r *Record) ([]byte, error) {
	weights := make(map[string]cbor.RawMessage, 6)
	for _, t := range []struct {
		key string
		m   *matrix.Matrix
	}{
		{KeyL0Kernel, r.L0Kernel},
		{KeyL0Bias, r.L0Bias},
		{KeyL1Kernel, r.L1Kernel},
		{KeyL1Bias, r.L1Bias},
		{KeyL2Kernel, r.L2Kernel},
		{KeyL2Bias, r.L2Bias},
	} {
		raw, err := encodeMatrix(t.m)
		if err != nil {
			return nil, fmt.Errorf("model: encode %s: %w", t.key, err)
		}
		weights[t.key] = raw
	}

	c := wireContainer{
		Norm:    wireNorm{Mean: r.Mean, Std: r.Std},
		Weights: weights,
		Fields:  r.Fields,
		Alpha:   r.Alpha,
	}
	data, err := encMode.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("model: encode container: %w", err)
	}
	return data, nil
}

// decodeBias reads a height-1 tensor whose width is determined by the wire
// data itself (the bias length is what fixes the layer size).
func decodeBias(weights map[string]cbor.RawMessage, key string) (*matrix.Matrix, error) {
	raw, ok := weights[key]
	if !ok {
		return nil, fmt.Errorf("model: %w %q", ErrMissingTensor, key)
	}
	var row []float32
	if err := cbor.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("model: decode %s: %w", key, err)
	}
	return matrix.FromArray(row), nil
}

// decodeMatrix reads a tensor against a fully known destination shape.
// The expected height arrives out of band: a flat list of floats is
// bit-for-bit ambiguous between one row of w and w scalars, so height 1
// selects the flat form and anything else the row form.
func decodeMatrix(weights map[string]cbor.RawMessage, key string, w, h matrix.Dim) (*matrix.Matrix, error) {
	raw, ok := weights[key]
	if !ok {
		return nil, fmt.Errorf("model: %w %q", ErrMissingTensor, key)
	}

	if h == 1 {
		var row []float32
		if err := cbor.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("model: decode %s: %w", key, err)
		}
		if len(row) != w {
			return nil, &DecodeError{Tensor: key, IsRow: true, Row: 0, Expected: w, Found: len(row)}
		}
		return matrix.FromArray(row), nil
	}

	var rows [][]float32
	if err := cbor.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("model: decode %s: %w", key, err)
	}
	if len(rows) != h {
		return nil, &DecodeError{Tensor: key, Expected: h, Found: len(rows)}
	}
	buf := make([]float32, 0, w*h)
	for i, row := range rows {
		if len(row) != w {
			return nil, &DecodeError{Tensor: key, IsRow: true, Row: i, Expected: w, Found: len(row)}
		}
		buf = append(buf, row...)
	}
	m, err := matrix.FromBuffer(buf, w, h)
	if err != nil {
		return nil, fmt.Errorf("model: decode %s: %w", key, err)
	}
	return m, nil
}

// encodeMatrix writes a tensor in its wire form.
func encodeMatrix(m *matrix.Matrix) (cbor.RawMessage, error) {
	if m.Height() == 1 {
		return encMode.Marshal(m.Data())
	}
	rows := make([][]float32, m.Height())
	data := m.Data()
	for i := range rows {
		rows[i] = data[i*m.Width() : (i+1)*m.Width()]
	}
	return encMode.Marshal(rows)
}
