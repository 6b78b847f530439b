// Copyright 2025 The Feemodel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model provides the public API for fee model containers: the CBOR
// codec, the mutable decoded Record, and the immutable compiled Model the
// estimator evaluates.
//
// Example:
//
//	rec, err := model.Decode(data)
//	m := model.Compile(rec)
//	rate, err := m.NormPredict(input)
package model

import (
	"github.com/feemodel-ml/feemodel/internal/model"
)

// Canonical tensor keys of the weights map.
const (
	KeyL0Kernel = model.KeyL0Kernel
	KeyL0Bias   = model.KeyL0Bias
	KeyL1Kernel = model.KeyL1Kernel
	KeyL1Bias   = model.KeyL1Bias
	KeyL2Kernel = model.KeyL2Kernel
	KeyL2Bias   = model.KeyL2Bias
)

// Record is a decoded model container.
type Record = model.Record

// Params carries the pieces of a compiled model to New.
type Params = model.Params

// Model is an immutable compiled model, safe for concurrent use.
type Model = model.Model

// DecodeError reports a container tensor that does not match the shape the
// rest of the container implies.
type DecodeError = model.DecodeError

// MissingStatError reports a model field without a normalization stat.
type MissingStatError = model.MissingStatError

// ErrMissingTensor reports a container without one of the canonical
// tensor keys.
var ErrMissingTensor = model.ErrMissingTensor

// Decode parses a CBOR model container.
func Decode(data []byte) (*Record, error) {
	return model.Decode(data)
}

// Encode serializes a record to its CBOR container form, bit-exactly
// round-trippable through Decode.
func Encode(r *Record) ([]byte, error) {
	return model.Encode(r)
}

// New builds an immutable model from params, copying every field.
func New(p Params) *Model {
	return model.New(p)
}

// Compile builds an immutable model from a decoded record.
func Compile(r *Record) *Model {
	return model.Compile(r)
}
