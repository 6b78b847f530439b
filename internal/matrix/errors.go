package matrix

import "fmt"

// ShapeError reports an operation invoked on incompatibly shaped operands.
// Both observed shapes are carried so the caller can see exactly what was
// supplied, not just that something mismatched.
type ShapeError struct {
	Op string
	A  Size
	B  Size
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix: %s: incompatible shapes %s and %s", e.Op, e.A, e.B)
}
