// Package shapes tracks the closed set of matrix dimensions used by the
// compiled models. The set is the union of every dimension required by a
// registered model plus a fixed baseline of common small sizes, so trivial
// shapes never churn the generated code.
//
// The process-wide registry is populated by generated model code during
// package initialization and then sealed; no token can be created once the
// program is running.
package shapes

import (
	"fmt"
	"sort"

	"github.com/feemodel-ml/feemodel/internal/matrix"
)

// Baseline dimensions seeded into every registry.
var baseline = []matrix.Dim{1, 2, 4, 8, 16, 20, 32, 64, 128, 256, 512}

// Registry is a deduplicated set of dimension tokens.
type Registry struct {
	dims   map[matrix.Dim]struct{}
	sealed bool
}

// NewRegistry returns a registry seeded with the baseline set.
func NewRegistry() *Registry {
	r := &Registry{dims: make(map[matrix.Dim]struct{}, len(baseline))}
	for _, d := range baseline {
		r.dims[d] = struct{}{}
	}
	return r
}

// Register adds a dimension token. Registering an already known dimension
// is a no-op. Registering after Seal panics: the token set is fixed before
// the program runs.
func (r *Registry) Register(d matrix.Dim) {
	if r.sealed {
		panic(fmt.Sprintf("shapes: Register(%d) after Seal", d))
	}
	r.dims[d] = struct{}{}
}

// Seal freezes the registry. It is idempotent.
func (r *Registry) Seal() {
	r.sealed = true
}

// All returns every registered dimension in ascending order.
func (r *Registry) All() []matrix.Dim {
	out := make([]matrix.Dim, 0, len(r.dims))
	for d := range r.dims {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// Contains reports whether the dimension is registered.
func (r *Registry) Contains(d matrix.Dim) bool {
	_, ok := r.dims[d]
	return ok
}

// defaultRegistry is the process-wide token set, populated once by generated
// model constructors' init functions and read-only afterwards.
var defaultRegistry = NewRegistry()

// Register adds a dimension to the process-wide registry.
func Register(d matrix.Dim) {
	defaultRegistry.Register(d)
}

// Seal freezes the process-wide registry.
func Seal() {
	defaultRegistry.Seal()
}

// All returns the process-wide token set in ascending order.
func All() []matrix.Dim {
	return defaultRegistry.All()
}

// Contains reports whether the dimension is in the process-wide registry.
func Contains(d matrix.Dim) bool {
	return defaultRegistry.Contains(d)
}
