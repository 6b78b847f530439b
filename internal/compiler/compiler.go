// Package compiler implements the offline model compilation pass.
//
// The compiler reads persisted model containers, validates their dimensions,
// collects the shape tokens every model needs, and emits Go source with each
// model's weights embedded losslessly. The pass runs once at build time
// (go generate); its output is linked into the program, so by the time any
// inference happens every model has already been checked.
package compiler

import (
	"fmt"
	"os"
	"strings"

	"github.com/feemodel-ml/feemodel/internal/model"
	"github.com/feemodel-ml/feemodel/internal/shapes"
)

// Named is a model registry entry: a name used for the generated
// constructor and the path of its persisted container.
type Named struct {
	Name string
	Path string
}

// Compiled is a validated model ready for code emission.
type Compiled struct {
	Name   string
	Record *model.Record
}

// Load reads and decodes a persisted container from disk.
func Load(path string) (*model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("compiler: read model: %w", err)
	}
	rec, err := model.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("compiler: %s: %w", path, err)
	}
	return rec, nil
}

// Validate applies the fatal build-time checks: both hidden layers must
// declare the same neuron count, and the output layer must be a single
// scalar. A model failing either check aborts compilation; it can never
// reach a running program.
func Validate(name string, rec *model.Record) error {
	n0 := rec.L0Bias.Width()
	n1 := rec.L1Bias.Width()
	if n0 != n1 {
		return &ConfigError{Model: name, Kind: HiddenSizeMismatch, Found0: n0, Found1: n1}
	}
	if o := rec.OutputSize(); o != 1 {
		return &ConfigError{Model: name, Kind: MultiOutputUnsupported, Found0: o}
	}
	if !isIdentifier(name) {
		return fmt.Errorf("compiler: model name %q is not usable as an identifier", name)
	}
	return nil
}

// Compile validates a record and registers its dimensions.
func Compile(name string, rec *model.Record, reg *shapes.Registry) (*Compiled, error) {
	if err := Validate(name, rec); err != nil {
		return nil, err
	}
	reg.Register(rec.InputSize())
	reg.Register(rec.HiddenSize())
	reg.Register(rec.OutputSize())
	return &Compiled{Name: name, Record: rec}, nil
}

const modelListUsage = "custom models must be a comma separated list of <name>:<path> " +
	"with no whitespace and no trailing separator"

// ParseModelList parses an externally supplied model registry extension:
// comma-separated name:path pairs, colon-delimited, with no embedded
// whitespace and no trailing separator.
func ParseModelList(s string) ([]Named, error) {
	if s == "" {
		return nil, nil
	}
	if strings.ContainsAny(s, " \t\n") {
		return nil, fmt.Errorf("compiler: %s", modelListUsage)
	}
	parts := strings.Split(s, ",")
	out := make([]Named, 0, len(parts))
	for _, part := range parts {
		name, path, ok := strings.Cut(part, ":")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("compiler: %s", modelListUsage)
		}
		out = append(out, Named{Name: name, Path: path})
	}
	return out, nil
}

// isIdentifier reports whether the model name maps cleanly onto Go
// identifiers: letters, digits and underscores, not starting with a digit.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
