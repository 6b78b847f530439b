package matrix

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func assertApproxEqual(t *testing.T, expected, actual *Matrix, msg string) {
	t.Helper()
	if expected.Size() != actual.Size() {
		t.Fatalf("%s: shape %s, want %s", msg, actual.Size(), expected.Size())
	}
	for i := range expected.buf {
		if math.Abs(float64(expected.buf[i]-actual.buf[i])) > 1e-5 {
			t.Errorf("%s: element %d = %v, want %v", msg, i, actual.buf[i], expected.buf[i])
		}
	}
}

func TestNew(t *testing.T) {
	m := New(20, 1)
	if m.Size() != (Size{W: 20, H: 1}) {
		t.Errorf("Size() = %s, want 20x1", m.Size())
	}
	if len(m.Data()) != 20 {
		t.Errorf("buffer length = %d, want 20", len(m.Data()))
	}
}

func TestFromArrayHeightOne(t *testing.T) {
	m := FromArray([]float32{1, 2, 3})
	if m.Height() != 1 || m.Width() != 3 {
		t.Errorf("shape = %s, want 3x1", m.Size())
	}
	if m.At(0, 2) != 3 {
		t.Errorf("At(0,2) = %v, want 3", m.At(0, 2))
	}
}

func TestFromBufferLengthValidated(t *testing.T) {
	if _, err := FromBuffer([]float32{1, 2, 3}, 2, 2); err == nil {
		t.Fatal("FromBuffer accepted a buffer shorter than w*h")
	}
	m, err := FromBuffer([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}
	if m.At(1, 0) != 4 {
		t.Errorf("At(1,0) = %v, want 4", m.At(1, 0))
	}
}

func TestFromBufferDoesNotAliasInput(t *testing.T) {
	src := []float32{1, 2}
	m, err := FromBuffer(src, 2, 1)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}
	src[0] = 99
	if m.At(0, 0) != 1 {
		t.Error("matrix aliases the caller's buffer")
	}
}

func TestDot(t *testing.T) {
	// [1 2 3; 4 5 6] (3x2) times [7 8; 9 10; 11 12] (2x3) = [58 64; 139 154].
	a, _ := FromBuffer([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
	b, _ := FromBuffer([]float32{7, 8, 9, 10, 11, 12}, 2, 3)
	got, err := a.Dot(b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	want, _ := FromBuffer([]float32{58, 64, 139, 154}, 2, 2)
	assertApproxEqual(t, want, got, "Dot")
}

func TestDotShapeMismatch(t *testing.T) {
	a := New(3, 2)
	b := New(2, 4) // a.W=3 != b.H=4
	_, err := a.Dot(b)
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Dot returned %v, want *ShapeError", err)
	}
	if shapeErr.A != a.Size() || shapeErr.B != b.Size() {
		t.Errorf("ShapeError carries %s/%s, want %s/%s",
			shapeErr.A, shapeErr.B, a.Size(), b.Size())
	}
}

func TestDotTransposeIdentity(t *testing.T) {
	// transpose(dot(A,B)) == dot(transpose(B), transpose(A))
	a, _ := FromBuffer([]float32{0.5, -1.25, 2, 3.5, -0.75, 1}, 3, 2)
	b, _ := FromBuffer([]float32{1.5, -2, 0.25, 4, -1, 0.125, 2.5, 3, -0.5, 1, 0, -3}, 4, 3)
	ab, err := a.Dot(b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	left := ab.Transpose()
	right, err := b.Transpose().Dot(a.Transpose())
	if err != nil {
		t.Fatalf("Dot of transposes failed: %v", err)
	}
	assertApproxEqual(t, left, right, "transpose identity")
}

func TestAdd(t *testing.T) {
	a := FromArray([]float32{1, 2, 3})
	b := FromArray([]float32{0.5, -2, 4})
	got, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	assertApproxEqual(t, FromArray([]float32{1.5, 0, 7}), got, "Add")
}

func TestAddShapeMismatch(t *testing.T) {
	_, err := FromArray([]float32{1, 2}).Add(FromArray([]float32{1, 2, 3}))
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Add returned %v, want *ShapeError", err)
	}
}

func TestAddDoesNotMutateOperands(t *testing.T) {
	a := FromArray([]float32{1, 2})
	b := FromArray([]float32{3, 4})
	if _, err := a.Add(b); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if a.At(0, 0) != 1 || b.At(0, 0) != 3 {
		t.Error("Add mutated an operand")
	}
}

func TestTranspose(t *testing.T) {
	m, _ := FromBuffer([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
	tr := m.Transpose()
	if tr.Size() != (Size{W: 2, H: 3}) {
		t.Fatalf("Transpose shape = %s, want 2x3", tr.Size())
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if m.At(i, j) != tr.At(j, i) {
				t.Errorf("Transpose element (%d,%d) mismatch", i, j)
			}
		}
	}
}

func TestReluAlphaZero(t *testing.T) {
	m := FromArray([]float32{1.5, -1.5, 0, -0.0001, 2})
	got := m.Relu(0)
	want := FromArray([]float32{1.5, 0, 0, 0, 2})
	for i := range want.buf {
		if got.buf[i] != want.buf[i] {
			t.Errorf("Relu(0) element %d = %v, want %v exactly", i, got.buf[i], want.buf[i])
		}
	}
}

func TestReluAlphaOneIsIdentity(t *testing.T) {
	m := FromArray([]float32{1.5, -1.5, 0, -123.25, 2})
	got := m.Relu(1)
	for i := range m.buf {
		if got.buf[i] != m.buf[i] {
			t.Errorf("Relu(1) element %d = %v, want %v", i, got.buf[i], m.buf[i])
		}
	}
}

func TestReluLeakySlope(t *testing.T) {
	for _, alpha := range []float32{0, 0.1, 0.01} {
		m := FromArray([]float32{1, -1})
		want := FromArray([]float32{1, -alpha})
		assertApproxEqual(t, want, m.Relu(alpha), "Relu leaky slope")
	}
}

func TestFromBlobBitExact(t *testing.T) {
	values := []float32{
		25.89434588,
		float32(math.Copysign(0, -1)), // negative zero
		math.Float32frombits(0x00000001), // smallest subnormal
		-1.5e-42,
		float32(math.MaxFloat32),
	}
	blob := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(blob[i*4:], math.Float32bits(v))
	}
	m, err := FromBlob(string(blob), len(values), 1)
	if err != nil {
		t.Fatalf("FromBlob failed: %v", err)
	}
	for i, v := range values {
		if math.Float32bits(m.At(0, i)) != math.Float32bits(v) {
			t.Errorf("element %d = %08x, want %08x",
				i, math.Float32bits(m.At(0, i)), math.Float32bits(v))
		}
	}
}

func TestFromBlobLengthValidated(t *testing.T) {
	if _, err := FromBlob("\x00\x00\x00", 1, 1); err == nil {
		t.Fatal("FromBlob accepted a truncated blob")
	}
	if _, err := FromBlob(string(make([]byte, 8)), 3, 1); err == nil {
		t.Fatal("FromBlob accepted a blob shorter than w*h*4")
	}
}
