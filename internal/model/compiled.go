package model

import (
	"github.com/feemodel-ml/feemodel/internal/matrix"
)

// Params carries everything a compiled constructor embeds. It exists so the
// generated code can hand the weights over in one literal.
type Params struct {
	Mean   map[string]float32
	Std    map[string]float32
	Fields []string
	Alpha  float32

	L0Kernel *matrix.Matrix
	L0Bias   *matrix.Matrix
	L1Kernel *matrix.Matrix
	L1Bias   *matrix.Matrix
	L2Kernel *matrix.Matrix
	L2Bias   *matrix.Matrix
}

// Model is a compiled fee-rate regression model. It is immutable for the
// lifetime of the process once constructed and may be shared by any number
// of concurrent readers without locking.
type Model struct {
	mean   map[string]float32
	std    map[string]float32
	fields []string
	alpha  float32

	l0Kernel *matrix.Matrix
	l0Bias   *matrix.Matrix
	l1Kernel *matrix.Matrix
	l1Bias   *matrix.Matrix
	l2Kernel *matrix.Matrix
	l2Bias   *matrix.Matrix
}

// New constructs a compiled model. The maps and field list are copied so
// later mutation of the params cannot reach the model.
func New(p Params) *Model {
	mean := make(map[string]float32, len(p.Mean))
	for k, v := range p.Mean {
		mean[k] = v
	}
	std := make(map[string]float32, len(p.Std))
	for k, v := range p.Std {
		std[k] = v
	}
	fields := make([]string, len(p.Fields))
	copy(fields, p.Fields)

	return &Model{
		mean:     mean,
		std:      std,
		fields:   fields,
		alpha:    p.Alpha,
		l0Kernel: p.L0Kernel,
		l0Bias:   p.L0Bias,
		l1Kernel: p.L1Kernel,
		l1Bias:   p.L1Bias,
		l2Kernel: p.L2Kernel,
		l2Bias:   p.L2Bias,
	}
}

// Compile builds a model straight from a decoded record. Generated
// constructors bypass this and embed their weights directly; the dynamic
// path exists for artifacts supplied at run time.
func Compile(r *Record) *Model {
	return New(Params{
		Mean:     r.Mean,
		Std:      r.Std,
		Fields:   r.Fields,
		Alpha:    r.Alpha,
		L0Kernel: r.L0Kernel,
		L0Bias:   r.L0Bias,
		L1Kernel: r.L1Kernel,
		L1Bias:   r.L1Bias,
		L2Kernel: r.L2Kernel,
		L2Bias:   r.L2Bias,
	})
}

// Fields returns the ordered feature list the model was trained on.
func (m *Model) Fields() []string {
	out := make([]string, len(m.fields))
	copy(out, m.fields)
	return out
}

// Alpha returns the leaky-relu slope.
func (m *Model) Alpha() float32 {
	return m.alpha
}

// InputSize returns I, the feature vector width.
func (m *Model) InputSize() matrix.Dim {
	return len(m.fields)
}

// HiddenSize returns N, the hidden layer width.
func (m *Model) HiddenSize() matrix.Dim {
	return m.l0Bias.Width()
}

// OutputSize returns O, the output width (always 1 for compiled models).
func (m *Model) OutputSize() matrix.Dim {
	return m.l2Bias.Width()
}

// Normalize builds the model's input vector from a named feature map.
// Each field in the model's ordered list is read from the map, defaulting
// to 0 when absent (a missing input is not an error), then standardized as
// (x - mean) / std. A missing mean or std for a listed field fails with a
// MissingStatError: the stats and the field list ship together, so a hole
// means the artifact pairing is corrupt.
func (m *Model) Normalize(input map[string]float32) (*matrix.Matrix, error) {
	out := make([]float32, 0, len(m.fields))
	for _, field := range m.fields {
		x := input[field]
		std, ok := m.std[field]
		if !ok {
			return nil, &MissingStatError{Field: field, Stat: "std"}
		}
		mean, ok := m.mean[field]
		if !ok {
			return nil, &MissingStatError{Field: field, Stat: "mean"}
		}
		out = append(out, (x-mean)/std)
	}
	return matrix.FromArray(out), nil
}

// Predict runs the forward pass on an already normalized input row and
// returns the single scalar output. The final layer has no activation and
// no floor: this is the raw regression value. Clamping it to a domain
// minimum is the caller's policy, applied after the fact.
func (m *Model) Predict(x *matrix.Matrix) (float32, error) {
	a1, err := x.Dot(m.l0Kernel)
	if err != nil {
		return 0, err
	}
	a2, err := a1.Add(m.l0Bias)
	if err != nil {
		return 0, err
	}
	a3 := a2.Relu(m.alpha)

	b1, err := a3.Dot(m.l1Kernel)
	if err != nil {
		return 0, err
	}
	b2, err := b1.Add(m.l1Bias)
	if err != nil {
		return 0, err
	}
	b3 := b2.Relu(m.alpha)

	c1, err := b3.Dot(m.l2Kernel)
	if err != nil {
		return 0, err
	}
	c2, err := c1.Add(m.l2Bias)
	if err != nil {
		return 0, err
	}
	return c2.At(0, 0), nil
}

// NormPredict normalizes the feature map and runs the forward pass.
func (m *Model) NormPredict(input map[string]float32) (float32, error) {
	x, err := m.Normalize(input)
	if err != nil {
		return 0, err
	}
	return m.Predict(x)
}
