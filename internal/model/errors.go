package model

import (
	"errors"
	"fmt"
)

// ErrMissingTensor marks a container that lacks one of the six canonical
// weight tensors.
var ErrMissingTensor = errors.New("missing weight tensor")

// DecodeError reports a weight tensor whose wire form does not match the
// shape its destination declares. IsRow distinguishes a row-width mismatch
// (Row carries the offending index) from a row-count mismatch.
type DecodeError struct {
	Tensor   string
	IsRow    bool
	Row      int
	Expected int
	Found    int
}

func (e *DecodeError) Error() string {
	if e.IsRow {
		return fmt.Sprintf("model: %s: invalid matrix width at row %d: expected %d, found %d",
			e.Tensor, e.Row, e.Expected, e.Found)
	}
	return fmt.Sprintf("model: %s: invalid matrix height: expected %d, found %d",
		e.Tensor, e.Expected, e.Found)
}

// MissingStatError reports a feature named by the model's field list that
// has no mean or standard deviation in the normalization stats. It means
// the model and its feature list do not belong together; retrying cannot
// help, the artifact itself is wrong.
type MissingStatError struct {
	Field string
	Stat  string // "mean" or "std"
}

func (e *MissingStatError) Error() string {
	return fmt.Sprintf("model: missing %s for field %q", e.Stat, e.Field)
}
