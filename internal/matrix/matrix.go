// Package matrix implements the dense float32 matrix engine used by the
// fee-rate regression models.
//
// A Matrix is a contiguous row-major buffer whose width and height travel
// with it as shape tokens. Shapes are validated once at construction and
// re-derived from the actual operands at every operation boundary, so a
// malformed shape can never survive past the call that introduced it.
// All operations allocate a fresh result; no operation mutates its operands.
package matrix

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Dim is a single matrix dimension, fixed before the program runs.
type Dim = int

// Size is the full shape of a matrix: width (columns) by height (rows).
type Size struct {
	W Dim
	H Dim
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// NumElements returns W*H.
func (s Size) NumElements() int {
	return s.W * s.H
}

// Matrix is an immutable dense float32 matrix in row-major order.
// The buffer length always equals W*H.
type Matrix struct {
	size Size
	buf  []float32
}

// New returns a zero-filled matrix of the given shape.
func New(w, h Dim) *Matrix {
	return &Matrix{size: Size{W: w, H: h}, buf: make([]float32, w*h)}
}

// FromArray wraps a flat slice as a single-row matrix (height 1).
func FromArray(values []float32) *Matrix {
	buf := make([]float32, len(values))
	copy(buf, values)
	return &Matrix{size: Size{W: len(values), H: 1}, buf: buf}
}

// FromBuffer wraps a row-major buffer with the given shape.
// The buffer is copied; its length must equal w*h.
func FromBuffer(buf []float32, w, h Dim) (*Matrix, error) {
	size := Size{W: w, H: h}
	if len(buf) != size.NumElements() {
		return nil, &ShapeError{
			Op: "FromBuffer",
			A:  size,
			B:  Size{W: len(buf), H: 1},
		}
	}
	owned := make([]float32, len(buf))
	copy(owned, buf)
	return &Matrix{size: size, buf: owned}, nil
}

// FromBlob reconstructs a matrix from little-endian float32 bytes, as
// embedded by the model compiler. The raw bit patterns are preserved; no
// per-element textual parsing is involved, so the round trip through the
// compiler is bit-exact.
func FromBlob(blob string, w, h Dim) (*Matrix, error) {
	size := Size{W: w, H: h}
	if len(blob) != size.NumElements()*4 {
		return nil, &ShapeError{
			Op: "FromBlob",
			A:  size,
			B:  Size{W: len(blob) / 4, H: 1},
		}
	}
	buf := make([]float32, size.NumElements())
	for i := range buf {
		bits := binary.LittleEndian.Uint32([]byte(blob[i*4 : i*4+4]))
		buf[i] = math.Float32frombits(bits)
	}
	return &Matrix{size: size, buf: buf}, nil
}

// MustFromBlob is FromBlob for compiler-generated constructors, where a
// length mismatch can only mean the generated source is corrupt.
func MustFromBlob(blob string, w, h Dim) *Matrix {
	m, err := FromBlob(blob, w, h)
	if err != nil {
		panic(fmt.Sprintf("matrix: corrupt embedded blob: %v", err))
	}
	return m
}

// Size returns the matrix shape.
func (m *Matrix) Size() Size {
	return m.size
}

// Width returns the number of columns.
func (m *Matrix) Width() Dim {
	return m.size.W
}

// Height returns the number of rows.
func (m *Matrix) Height() Dim {
	return m.size.H
}

// At returns the element at the given row and column.
func (m *Matrix) At(row, col int) float32 {
	return m.buf[row*m.size.W+col]
}

// Data returns the underlying row-major buffer.
// WARNING: the buffer is shared with the matrix; callers must not write to it.
func (m *Matrix) Data() []float32 {
	return m.buf
}
