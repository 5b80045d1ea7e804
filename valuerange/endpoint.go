package valuerange

import (
	"github.com/iotaledger/hive.go/steprange/boundary"
	"github.com/iotaledger/hive.go/steprange/value"
	"github.com/iotaledger/hive.go/stringify"
)

// EndPoint contains information about where ValueRanges start and end. It combines a Boundary with a BoundType.
type EndPoint[T value.Value[T]] struct {
	boundary  boundary.Boundary[T]
	boundType BoundType
}

// NewEndPoint create a new EndPoint from the given details.
func NewEndPoint[T value.Value[T]](b boundary.Boundary[T], boundType BoundType) EndPoint[T] {
	return EndPoint[T]{
		boundary:  b,
		boundType: boundType,
	}
}

// Boundary returns the Boundary of the EndPoint.
func (e EndPoint[T]) Boundary() boundary.Boundary[T] {
	return e.boundary
}

// BoundType returns the BoundType of the EndPoint.
func (e EndPoint[T]) BoundType() BoundType {
	return e.boundType
}

// Inclusive returns true if the EndPoint is closed.
func (e EndPoint[T]) Inclusive() bool {
	return e.boundType.Inclusive()
}

// Equal returns true if both EndPoints have an equal Boundary and the same BoundType.
func (e EndPoint[T]) Equal(other EndPoint[T]) bool {
	return e.boundType == other.boundType && e.boundary.Equal(other.boundary)
}

// String returns a human-readable version of the EndPoint.
func (e EndPoint[T]) String() string {
	return stringify.Struct("EndPoint",
		stringify.NewStructField("boundary", e.boundary),
		stringify.NewStructField("boundType", e.boundType),
	)
}
