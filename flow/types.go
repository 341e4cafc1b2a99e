package flow

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Capacity is the contract a flow-carrying weight type must satisfy: every
// requirement graph.Number imposes, narrowed to kinds that support
// subtraction. graph.Number alone admits ~string (inherited from
// constraints.Ordered), but augmenting a path means decrementing and
// restoring residual capacities, which a plain total order cannot do.
type Capacity interface {
	constraints.Integer | constraints.Float
}

// ResidualEdge is the payload carried by the residual graph built internally
// by EdmondsKarp. Remaining is the capacity still available along this arc;
// IsResidual marks an arc created to let flow be undone (the reverse of a
// forward edge from the input graph), not one mirroring a real input edge.
type ResidualEdge[W any] struct {
	Remaining  W
	IsResidual bool
}

// Weight reports Remaining, satisfying graph.Weighted so a ResidualEdge can
// be pushed straight onto mst.edgePQ-style heaps or summed by graph.TotalWeight.
func (e ResidualEdge[W]) Weight() W { return e.Remaining }

// VertexNotInFlowError is returned when source or sink is absent from the
// input graph.
type VertexNotInFlowError[I any] struct {
	ID   I
	Role string // "source" or "sink"
}

func (e *VertexNotInFlowError[I]) Error() string {
	return fmt.Sprintf("flow: %s vertex %v not found", e.Role, e.ID)
}

// NegativeCapacityError is returned when capOf yields a negative value for
// some edge — residual construction assumes every capacity is non-negative.
type NegativeCapacityError[I any, W any] struct {
	From, To I
	Capacity W
}

func (e *NegativeCapacityError[I, W]) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %v->%v: %v", e.From, e.To, e.Capacity)
}
