// Package boundary implements the tri-state boundary values (finite, +INF, -INF) that delimit a ValueRange.
package boundary

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/value"
)

// ErrInfiniteBoundary is returned if the payload of an infinite Boundary is requested.
var ErrInfiniteBoundary = ierrors.New("boundary is infinite")

// Kind tells the three possible states of a Boundary apart. The numeric values follow the ordering of the states, so
// comparing the Kinds of two Boundaries is enough whenever at least one of them is infinite.
type Kind int8

const (
	// KindNegativeInfinity marks a Boundary that lies below every finite value.
	KindNegativeInfinity Kind = iota - 1

	// KindFinite marks a Boundary that carries a payload.
	KindFinite

	// KindPositiveInfinity marks a Boundary that lies above every finite value.
	KindPositiveInfinity
)

// String returns a human-readable version of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNegativeInfinity:
		return "KindNegativeInfinity"
	case KindFinite:
		return "KindFinite"
	case KindPositiveInfinity:
		return "KindPositiveInfinity"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// Boundary is one edge of a ValueRange. It is either a finite Value or one of the two infinities.
//
// The zero value of a Boundary is the finite zero value of T.
type Boundary[T value.Value[T]] struct {
	kind  Kind
	value T
}

// Finite returns a Boundary that carries the given value.
func Finite[T value.Value[T]](v T) Boundary[T] {
	return Boundary[T]{kind: KindFinite, value: v}
}

// PositiveInfinity returns the Boundary that lies above every finite value.
func PositiveInfinity[T value.Value[T]]() Boundary[T] {
	return Boundary[T]{kind: KindPositiveInfinity}
}

// NegativeInfinity returns the Boundary that lies below every finite value.
func NegativeInfinity[T value.Value[T]]() Boundary[T] {
	return Boundary[T]{kind: KindNegativeInfinity}
}

// Kind returns the state of the Boundary.
func (b Boundary[T]) Kind() Kind {
	return b.kind
}

// IsFinite returns true if the Boundary carries a payload.
func (b Boundary[T]) IsFinite() bool {
	return b.kind == KindFinite
}

// IsPositiveInfinity returns true if the Boundary is +INF.
func (b Boundary[T]) IsPositiveInfinity() bool {
	return b.kind == KindPositiveInfinity
}

// IsNegativeInfinity returns true if the Boundary is -INF.
func (b Boundary[T]) IsNegativeInfinity() bool {
	return b.kind == KindNegativeInfinity
}

// Value returns the payload of the Boundary or ErrInfiniteBoundary if the Boundary is infinite.
func (b Boundary[T]) Value() (v T, err error) {
	if b.kind != KindFinite {
		return v, ierrors.Wrapf(ErrInfiniteBoundary, "failed to retrieve value of %s boundary", b)
	}

	return b.value, nil
}

// MustValue returns the payload of the Boundary and panics if the Boundary is infinite.
func (b Boundary[T]) MustValue() T {
	if b.kind != KindFinite {
		panic(ierrors.Wrapf(ErrInfiniteBoundary, "failed to retrieve value of %s boundary", b))
	}

	return b.value
}

// Compare returns 0 if the other Boundary is identical, -1 if it is bigger and 1 if it is smaller. Infinities of the
// same sign are identical and the payload is only inspected if both Boundaries are finite.
func (b Boundary[T]) Compare(other Boundary[T]) int {
	if b.kind != KindFinite || other.kind != KindFinite {
		switch {
		case b.kind < other.kind:
			return -1
		case b.kind > other.kind:
			return 1
		default:
			return 0
		}
	}

	return b.value.Compare(other.value)
}

// CompareValue compares the Boundary to a bare value (which is treated like a finite Boundary).
func (b Boundary[T]) CompareValue(v T) int {
	switch b.kind {
	case KindNegativeInfinity:
		return -1
	case KindPositiveInfinity:
		return 1
	default:
		return b.value.Compare(v)
	}
}

// Equal returns true if both Boundaries have the same state and (if finite) an identical payload.
func (b Boundary[T]) Equal(other Boundary[T]) bool {
	return b.Compare(other) == 0
}

// String returns a human-readable version of the Boundary.
func (b Boundary[T]) String() string {
	switch b.kind {
	case KindNegativeInfinity:
		return "-INF"
	case KindPositiveInfinity:
		return "+INF"
	default:
		return b.value.String()
	}
}
