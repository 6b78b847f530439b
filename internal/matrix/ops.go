package matrix

// Dot returns the matrix product m*other.
// The width of m must equal the height of other; the result has other's
// width and m's height. Cost is O(m.W * other.W * m.H).
func (m *Matrix) Dot(other *Matrix) (*Matrix, error) {
	if m.size.W != other.size.H {
		return nil, &ShapeError{Op: "Dot", A: m.size, B: other.size}
	}
	out := New(other.size.W, m.size.H)
	for i := 0; i < m.size.H; i++ {
		for j := 0; j < other.size.W; j++ {
			var acc float32
			for k := 0; k < m.size.W; k++ {
				acc += m.buf[i*m.size.W+k] * other.buf[k*other.size.W+j]
			}
			out.buf[i*other.size.W+j] = acc
		}
	}
	return out, nil
}

// Add returns the element-wise sum of two identically shaped matrices.
// Bias rows are modeled as height-1 matrices by the callers.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.size != other.size {
		return nil, &ShapeError{Op: "Add", A: m.size, B: other.size}
	}
	out := New(m.size.W, m.size.H)
	for i := range m.buf {
		out.buf[i] = m.buf[i] + other.buf[i]
	}
	return out, nil
}

// Transpose returns the transposed matrix.
func (m *Matrix) Transpose() *Matrix {
	out := New(m.size.H, m.size.W)
	for i := 0; i < m.size.H; i++ {
		for j := 0; j < m.size.W; j++ {
			out.buf[j*m.size.H+i] = m.buf[i*m.size.W+j]
		}
	}
	return out
}

// Relu applies the leaky rectifier element-wise: entries below zero are
// scaled by alpha, entries at or above zero pass through unchanged.
// Alpha is a model-level hyperparameter, not a constant of the engine.
func (m *Matrix) Relu(alpha float32) *Matrix {
	out := New(m.size.W, m.size.H)
	for i, v := range m.buf {
		if v < 0 {
			out.buf[i] = v * alpha
		} else {
			out.buf[i] = v
		}
	}
	return out
}
