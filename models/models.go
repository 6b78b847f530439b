// Package models holds the compiled fee estimation models shipped with the
// library.
//
// The constructors in models_gen.go are emitted by the offline compiler from
// the persisted containers under testdata/. Regenerate after retraining:
//
//	go generate ./models
//
// Extra models can be declared at generation time with the FEEMODEL_MODELS
// environment variable or the --models flag, as comma-separated name:path
// pairs.
package models

//go:generate go run github.com/feemodel-ml/feemodel/cmd/feemodelgen generate --out models_gen.go
