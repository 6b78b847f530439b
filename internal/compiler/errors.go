package compiler

import "fmt"

// ConfigKind enumerates the fatal build-time rejection reasons.
type ConfigKind int

const (
	// HiddenSizeMismatch: the two hidden layers declare different neuron
	// counts. The engine supports exactly one shared hidden size.
	HiddenSizeMismatch ConfigKind = iota
	// MultiOutputUnsupported: the output layer is not a single scalar.
	MultiOutputUnsupported
)

// ConfigError rejects a trained artifact during the offline compilation
// pass. It is fatal: the model is never emitted, truncated or padded.
type ConfigError struct {
	Model  string
	Kind   ConfigKind
	Found0 int
	Found1 int
}

func (e *ConfigError) Error() string {
	switch e.Kind {
	case HiddenSizeMismatch:
		return fmt.Sprintf("compiler: %s: layer 0 and layer 1 must have the same number of neurons, found %d and %d",
			e.Model, e.Found0, e.Found1)
	case MultiOutputUnsupported:
		return fmt.Sprintf("compiler: %s: layer 2 must have a single output, found %d",
			e.Model, e.Found0)
	default:
		return fmt.Sprintf("compiler: %s: invalid model configuration", e.Model)
	}
}
