// Package steps contains the generic algorithms that combine a ValueRange with a Domain: measuring the number of
// steps a range covers and moving or resizing a range by a number of steps.
//
// The algorithms only call into the five operations of the Domain contract, so every Domain (including ones defined
// outside of this module) works with them without further changes.
package steps

import (
	"math"
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/domain"
	"github.com/iotaledger/hive.go/steprange/value"
	"github.com/iotaledger/hive.go/steprange/valuerange"
)

// Count is the number of Domain steps that are covered by a ValueRange.
type Count struct {
	// Infinite is true if the ValueRange is unbounded.
	Infinite bool

	// Steps is the exact number of steps (saturated at math.MaxInt64 and 0 if Infinite is true).
	Steps int64
}

// Float64 returns the Count as a float64 (+Inf for infinite Counts).
func (c Count) Float64() float64 {
	if c.Infinite {
		return math.Inf(1)
	}

	return float64(c.Steps)
}

// String returns a human-readable version of the Count.
func (c Count) String() string {
	if c.Infinite {
		return "+INF"
	}

	return strconv.FormatInt(c.Steps, 10)
}

// Span returns the number of Domain steps that are covered by the ValueRange. Values that are not aligned to the step
// grid of a FixedStepDomain count the step they fall into, while VariableStepDomains only count values that are steps
// themselves (i.e. a ValueRange from Saturday to Monday covers a single business day).
//
// An error is only returned if the Domain fails for another reason than an overflow (i.e. a VariableStepDomain that
// exceeds its walk limit).
func Span[T value.Value[T], D domain.Domain[T]](r valuerange.ValueRange[T], d D) (Count, error) {
	if r.Start().IsNegativeInfinity() || r.End().IsPositiveInfinity() {
		return Count{Infinite: true}, nil
	}

	firstStep, err := FirstStep(r, d)
	if err != nil {
		return Count{}, ignoreOverflow(err)
	}

	lastStep, err := LastStep(r, d)
	if err != nil {
		return Count{}, ignoreOverflow(err)
	}

	return countSteps(r, d, firstStep, lastStep)
}

// SpanFixed returns the exact number of steps of a FixedStepDomain that are covered by the ValueRange.
//
// FixedStepDomains only fail with domain.ErrOverflow, which Span maps to an empty Count. SpanFixed panics if the
// Domain breaks that contract.
func SpanFixed[T value.Value[T], D domain.FixedStepDomain[T]](r valuerange.ValueRange[T], d D) (steps int64, infinite bool) {
	count, err := Span(r, d)
	if err != nil {
		panic(ierrors.Wrapf(err, "fixed step domain %T failed to span %s", d, r))
	}

	return count.Steps, count.Infinite
}

// SpanVariable returns the number of steps of a VariableStepDomain that are covered by the ValueRange (+Inf for
// unbounded ranges). The result is integral for the Domains of this module.
func SpanVariable[T value.Value[T], D domain.VariableStepDomain[T]](r valuerange.ValueRange[T], d D) (float64, error) {
	count, err := Span(r, d)
	if err != nil {
		return 0, err
	}

	return count.Float64(), nil
}

// FirstStep returns the first step that is covered by the ValueRange. For FixedStepDomains this is the floor of the
// start (or the step after it if the start is exclusive). For VariableStepDomains it is the ceiling of the start, and
// an exclusive start only skips a step if it sits exactly on it.
//
// It fails with ErrUnboundedSpan if the ValueRange has no lower bound and with domain.ErrOverflow if there is no
// representable step after an exclusive start.
func FirstStep[T value.Value[T], D domain.Domain[T]](r valuerange.ValueRange[T], d D) (firstStep T, err error) {
	start, err := r.Start().Value()
	if err != nil {
		return firstStep, ierrors.Wrapf(ErrUnboundedSpan, "%s has no lower bound", r)
	}

	if domain.IsVariableStep[T](d) {
		if firstStep = d.Ceiling(start); r.StartInclusive() || firstStep.Compare(start) != 0 {
			return firstStep, nil
		}

		return d.Add(start, 1)
	}

	if firstStep = d.Floor(start); r.StartInclusive() {
		return firstStep, nil
	}

	return d.Add(firstStep, 1)
}

// LastStep returns the last step that is covered by the ValueRange. It is the floor of the end, or the step before it
// if the end is exclusive (VariableStepDomains only skip that step if the end sits exactly on it).
//
// It fails with ErrUnboundedSpan if the ValueRange has no upper bound and with domain.ErrOverflow if there is no
// representable step before an exclusive end.
func LastStep[T value.Value[T], D domain.Domain[T]](r valuerange.ValueRange[T], d D) (lastStep T, err error) {
	end, err := r.End().Value()
	if err != nil {
		return lastStep, ierrors.Wrapf(ErrUnboundedSpan, "%s has no upper bound", r)
	}

	if lastStep = d.Floor(end); r.EndInclusive() {
		return lastStep, nil
	}

	if domain.IsVariableStep[T](d) {
		if lastStep.Compare(end) != 0 {
			return lastStep, nil
		}

		return d.Subtract(end, 1)
	}

	return d.Subtract(lastStep, 1)
}

// countSteps returns the number of steps from firstStep to lastStep (both included). A single remaining step only
// counts if the ValueRange actually contains it, which excludes zero-width gaps between two steps.
func countSteps[T value.Value[T], D domain.Domain[T]](r valuerange.ValueRange[T], d D, firstStep, lastStep T) (Count, error) {
	switch order := firstStep.Compare(lastStep); {
	case order > 0:
		return Count{}, nil
	case order == 0:
		if !r.Contains(firstStep) {
			return Count{}, nil
		}

		return Count{Steps: 1}, nil
	default:
		distance, err := domain.CheckedDistance[T](d, firstStep, lastStep)
		if err != nil {
			return Count{}, ierrors.Wrapf(err, "failed to count the steps of %s", r)
		}

		if distance == math.MaxInt64 {
			return Count{Steps: math.MaxInt64}, nil
		}

		return Count{Steps: distance + 1}, nil
	}
}

// ignoreOverflow returns nil for overflow errors (there is no representable step on that side).
func ignoreOverflow(err error) error {
	if ierrors.Is(err, domain.ErrOverflow) {
		return nil
	}

	return err
}

