// Package domain defines what a "step" means for the different Value types.
//
// A Domain is a stateless policy object (or one that only holds immutable configuration) that knows how to move a
// value by a number of steps, how to align a value to the step grid and how many steps lie between two values. The
// Domains know nothing about ValueRanges; the generic algorithms in the steps package call into them.
//
// Domains come in two flavors that share the same contract and only differ in their complexity guarantees:
//
//   - FixedStepDomains have a constant step size. All operations are O(1) and Distance is exact.
//   - VariableStepDomains (i.e. business days) have a position dependent step size. Operations may have to iterate
//     over the underlying values and are O(n) in the distance that is covered.
package domain

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrOverflow is returned if the result of a step operation is not representable by the underlying type.
	ErrOverflow = ierrors.New("overflow")

	// ErrWalkLimitExceeded is returned if a VariableStepDomain has to iterate over more values than it is allowed to.
	ErrWalkLimitExceeded = ierrors.New("walk limit exceeded")
)

// Domain is the contract that every step domain has to fulfill.
type Domain[T any] interface {
	// Add advances the value by the given number of steps (which may be negative). It returns ErrOverflow if the
	// result is not representable.
	Add(v T, steps int64) (T, error)

	// Subtract moves the value back by the given number of steps. It is equivalent to Add(v, -steps) but also works
	// for steps == math.MinInt64.
	Subtract(v T, steps int64) (T, error)

	// Floor returns the largest step-aligned value that is less than or equal to the value.
	Floor(v T) T

	// Ceiling returns the smallest step-aligned value that is greater than or equal to the value.
	Ceiling(v T) T

	// Distance returns the signed number of complete steps from start to end (negative if end < start).
	Distance(start, end T) int64
}

// FixedStepDomain is a Domain whose operations are O(1) and whose Distance is exact. Add and Subtract of a
// FixedStepDomain fail with ErrOverflow only.
type FixedStepDomain[T any] interface {
	Domain[T]

	// FixedStep marks the Domain as a FixedStepDomain.
	FixedStep()
}

// VariableStepDomain is a Domain whose step size depends on the position, so its operations may have to iterate.
type VariableStepDomain[T any] interface {
	Domain[T]

	// VariableStep marks the Domain as a VariableStepDomain.
	VariableStep()
}

// CheckedDistanceDomain is implemented by Domains that can fail to compute a Distance (i.e. because of a walk limit).
type CheckedDistanceDomain[T any] interface {
	// CheckedDistance returns the Distance from start to end or an error if it could not be determined completely.
	CheckedDistance(start, end T) (int64, error)
}

// CheckedDistance returns the Distance from start to end and uses CheckedDistance if the Domain supports it.
func CheckedDistance[T any](d Domain[T], start, end T) (int64, error) {
	if checked, isChecked := d.(CheckedDistanceDomain[T]); isChecked {
		return checked.CheckedDistance(start, end)
	}

	return d.Distance(start, end), nil
}

// IsVariableStep returns true if the given Domain advertises itself as a VariableStepDomain.
func IsVariableStep[T any](d Domain[T]) bool {
	_, isVariable := d.(VariableStepDomain[T])

	return isVariable
}
