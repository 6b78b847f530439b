// Package model implements the persisted model container codec and the
// forward-pass evaluator for the fee-rate regression network.
//
// A Record is the decoded form of a trained artifact, consumed once by the
// offline compiler. A Model is the compiled, immutable runtime object the
// generated constructors return; it is safe for any number of concurrent
// readers without locking.
package model

import (
	"github.com/feemodel-ml/feemodel/internal/matrix"
)

// Canonical tensor keys of the persisted container, one kernel and one bias
// per dense layer. The names come from the training pipeline's variable
// naming and are part of the wire format.
const (
	KeyL0Kernel = "dense/kernel:0"
	KeyL0Bias   = "dense/bias:0"
	KeyL1Kernel = "dense_1/kernel:0"
	KeyL1Bias   = "dense_1/bias:0"
	KeyL2Kernel = "dense_2/kernel:0"
	KeyL2Bias   = "dense_2/bias:0"
)

// Record is a decoded trained artifact: normalization statistics, the six
// weight tensors of the 3-layer perceptron, the ordered feature list and
// the leaky-relu slope.
type Record struct {
	Mean   map[string]float32
	Std    map[string]float32
	Fields []string
	Alpha  float32

	L0Kernel *matrix.Matrix // [N x I]
	L0Bias   *matrix.Matrix // [N x 1]
	L1Kernel *matrix.Matrix // [N x N]
	L1Bias   *matrix.Matrix // [N x 1]
	L2Kernel *matrix.Matrix // [O x N]
	L2Bias   *matrix.Matrix // [O x 1]
}

// InputSize returns I, the width of the feature vector.
func (r *Record) InputSize() matrix.Dim {
	return len(r.Fields)
}

// HiddenSize returns N, the width of the first hidden layer.
func (r *Record) HiddenSize() matrix.Dim {
	return r.L0Bias.Width()
}

// OutputSize returns O, the width of the output layer.
func (r *Record) OutputSize() matrix.Dim {
	return r.L2Bias.Width()
}
