package graph

import (
	"errors"
	"fmt"
)

// VertexNotFoundError is returned by any operation referencing an absent
// vertex id.
type VertexNotFoundError[I comparable] struct {
	ID I
}

func (e *VertexNotFoundError[I]) Error() string {
	return fmt.Sprintf("graph: vertex %v not found", e.ID)
}

// DuplicateVertexError is returned when inserting a vertex whose id already
// exists.
type DuplicateVertexError[I comparable] struct {
	ID I
}

func (e *DuplicateVertexError[I]) Error() string {
	return fmt.Sprintf("graph: vertex %v already exists", e.ID)
}

// DuplicateEdgeError is returned when inserting an edge whose directed slot
// (From, To) is already filled.
type DuplicateEdgeError[I comparable] struct {
	From, To I
}

func (e *DuplicateEdgeError[I]) Error() string {
	return fmt.Sprintf("graph: edge %v->%v already exists", e.From, e.To)
}

// EdgeNotFoundError is returned by SetEdge when referencing a (From, To)
// slot that AddEdge has never populated.
type EdgeNotFoundError[I comparable] struct {
	From, To I
}

func (e *EdgeNotFoundError[I]) Error() string {
	return fmt.Sprintf("graph: edge %v->%v not found", e.From, e.To)
}

// ErrOperationFailed is a sentinel wrapped by backend-invariant violations
// that do not carry a specific vertex or edge id of their own (for example,
// the adjacency-matrix backend rejecting a non-sequential vertex id).
var ErrOperationFailed = errors.New("graph: operation failed")

// OperationFailedf wraps ErrOperationFailed with a formatted message.
func OperationFailedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOperationFailed, fmt.Sprintf(format, args...))
}
