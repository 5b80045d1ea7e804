package steps

import (
	"math"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/boundary"
	"github.com/iotaledger/hive.go/steprange/domain"
	"github.com/iotaledger/hive.go/steprange/value"
	"github.com/iotaledger/hive.go/steprange/valuerange"
)

// ErrUnboundedSpan is returned if a ratio of the span of an unbounded ValueRange is requested.
var ErrUnboundedSpan = ierrors.New("span is unbounded")

// Shift moves both finite boundaries of the ValueRange by the given number of steps. Infinite boundaries and the
// inclusivity of both sides are preserved.
func Shift[T value.Value[T], D domain.Domain[T]](r valuerange.ValueRange[T], d D, offset int64) (valuerange.ValueRange[T], error) {
	start, err := moveBoundary(r.Start(), d.Add, offset)
	if err != nil {
		return r, ierrors.Wrapf(err, "failed to shift start of %s by %d steps", r, offset)
	}

	end, err := moveBoundary(r.End(), d.Add, offset)
	if err != nil {
		return r, ierrors.Wrapf(err, "failed to shift end of %s by %d steps", r, offset)
	}

	return valuerange.New(start, end, r.StartInclusive(), r.EndInclusive())
}

// Expand moves the start of the ValueRange left steps down and the end right steps up. Negative arguments contract
// the ValueRange, and a contraction that inverts it fails with valuerange.ErrInvalidRange. Infinite boundaries and
// the inclusivity of both sides are preserved.
func Expand[T value.Value[T], D domain.Domain[T]](r valuerange.ValueRange[T], d D, left, right int64) (valuerange.ValueRange[T], error) {
	start, err := moveBoundary(r.Start(), d.Subtract, left)
	if err != nil {
		return r, ierrors.Wrapf(err, "failed to expand start of %s by %d steps", r, left)
	}

	end, err := moveBoundary(r.End(), d.Add, right)
	if err != nil {
		return r, ierrors.Wrapf(err, "failed to expand end of %s by %d steps", r, right)
	}

	return valuerange.New(start, end, r.StartInclusive(), r.EndInclusive())
}

// ExpandByRatio expands the ValueRange by a fraction of its span on each side. The number of steps per side is the
// product of span and ratio truncated toward zero, so a ratio that covers less than a full step leaves that side
// unchanged. Unbounded ValueRanges fail with ErrUnboundedSpan.
func ExpandByRatio[T value.Value[T], D domain.Domain[T]](r valuerange.ValueRange[T], d D, leftRatio, rightRatio float64) (valuerange.ValueRange[T], error) {
	span, err := Span(r, d)
	if err != nil {
		return r, ierrors.Wrapf(err, "failed to measure span of %s", r)
	} else if span.Infinite {
		return r, ierrors.Wrapf(ErrUnboundedSpan, "failed to expand %s by ratio", r)
	}

	return Expand(r, d, ratioSteps(span, leftRatio), ratioSteps(span, rightRatio))
}

// ratioSteps returns the given ratio of the span as a number of steps (truncated toward zero and clamped to int64).
func ratioSteps(span Count, ratio float64) int64 {
	steps := math.Trunc(span.Float64() * ratio)

	switch {
	case math.IsNaN(steps):
		return 0
	case steps >= math.MaxInt64:
		return math.MaxInt64
	case steps <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(steps)
	}
}

// moveBoundary applies the given step operation to a finite boundary and returns infinite boundaries unchanged.
func moveBoundary[T value.Value[T]](b boundary.Boundary[T], move func(T, int64) (T, error), steps int64) (boundary.Boundary[T], error) {
	if !b.IsFinite() {
		return b, nil
	}

	moved, err := move(b.MustValue(), steps)
	if err != nil {
		return b, err
	}

	return boundary.Finite(moved), nil
}
