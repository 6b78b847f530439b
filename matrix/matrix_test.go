// Copyright 2025 The Feemodel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/feemodel-ml/feemodel/matrix"
)

// TestPublicAPI exercises the matrix surface through the public package.
func TestPublicAPI(t *testing.T) {
	x := matrix.FromArray([]float32{1, 2})
	if got := x.Size(); got != (matrix.Size{W: 2, H: 1}) {
		t.Fatalf("Size() = %v, want {2 1}", got)
	}

	w, err := matrix.FromBuffer([]float32{1, 0, 0, 1, 1, 1}, 3, 2)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}

	y, err := x.Dot(w)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	want := []float32{3, 2, 2}
	for i, v := range want {
		if got := y.At(0, i); got != v {
			t.Errorf("y[0][%d] = %v, want %v", i, got, v)
		}
	}
}

func TestPublicShapeError(t *testing.T) {
	a := matrix.FromArray([]float32{1, 2})
	b := matrix.FromArray([]float32{1, 2, 3})

	_, err := a.Dot(b)
	var shapeErr *matrix.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Dot error = %v, want *matrix.ShapeError", err)
	}
}
