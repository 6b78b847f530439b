// Copyright 2025 The Feemodel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the dense float32 matrix
// engine the fee models are evaluated with.
//
// Matrices are immutable after construction and carry their shape at
// runtime; every operation validates shapes and reports mismatches as a
// *ShapeError.
//
// Example:
//
//	x := matrix.FromArray([]float32{1, 2, 3})
//	w, err := matrix.FromBuffer(buf, 3, 4)
//	y, err := x.Dot(w)
package matrix

import (
	"github.com/feemodel-ml/feemodel/internal/matrix"
)

// Dim is a matrix dimension.
type Dim = matrix.Dim

// Size is a width by height matrix shape.
type Size = matrix.Size

// Matrix is a dense row-major float32 matrix.
type Matrix = matrix.Matrix

// ShapeError reports an operation on incompatible shapes.
type ShapeError = matrix.ShapeError

// New returns a zero matrix of the given shape.
func New(w, h Dim) *Matrix {
	return matrix.New(w, h)
}

// FromArray returns a height-1 matrix over a copy of values.
func FromArray(values []float32) *Matrix {
	return matrix.FromArray(values)
}

// FromBuffer returns a matrix over a copy of buf, which must hold exactly
// w*h values.
func FromBuffer(buf []float32, w, h Dim) (*Matrix, error) {
	return matrix.FromBuffer(buf, w, h)
}

// FromBlob decodes a matrix from little-endian float32 bytes.
func FromBlob(blob string, w, h Dim) (*Matrix, error) {
	return matrix.FromBlob(blob, w, h)
}

// MustFromBlob is FromBlob for trusted, generated blobs. It panics on a
// malformed blob.
func MustFromBlob(blob string, w, h Dim) *Matrix {
	return matrix.MustFromBlob(blob, w, h)
}
