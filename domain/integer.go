package domain

import (
	"math"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/value"
)

var (
	// Int8 is the FixedStepDomain of value.Int8.
	Int8 = SignedDomain[value.Int8]{minValue: math.MinInt8, maxValue: math.MaxInt8}

	// Int16 is the FixedStepDomain of value.Int16.
	Int16 = SignedDomain[value.Int16]{minValue: math.MinInt16, maxValue: math.MaxInt16}

	// Int32 is the FixedStepDomain of value.Int32.
	Int32 = SignedDomain[value.Int32]{minValue: math.MinInt32, maxValue: math.MaxInt32}

	// Int64 is the FixedStepDomain of value.Int64.
	Int64 = SignedDomain[value.Int64]{minValue: math.MinInt64, maxValue: math.MaxInt64}

	// Uint8 is the FixedStepDomain of value.Uint8.
	Uint8 = UnsignedDomain[value.Uint8]{maxValue: math.MaxUint8}

	// Uint16 is the FixedStepDomain of value.Uint16.
	Uint16 = UnsignedDomain[value.Uint16]{maxValue: math.MaxUint16}

	// Uint32 is the FixedStepDomain of value.Uint32.
	Uint32 = UnsignedDomain[value.Uint32]{maxValue: math.MaxUint32}

	// Uint64 is the FixedStepDomain of value.Uint64.
	Uint64 = UnsignedDomain[value.Uint64]{maxValue: math.MaxUint64}
)

// region SignedDomain /////////////////////////////////////////////////////////////////////////////////////////////////

// SignedDomain is the FixedStepDomain of a signed integer type. One step is an increment of 1.
type SignedDomain[T constraints.Signed] struct {
	minValue int64
	maxValue int64
}

// Add advances the value by the given number of steps.
func (s SignedDomain[T]) Add(v T, steps int64) (T, error) {
	result := int64(v) + steps
	if (steps > 0 && result < int64(v)) || (steps < 0 && result > int64(v)) || result < s.minValue || result > s.maxValue {
		return v, ierrors.Wrapf(ErrOverflow, "%d + %d is outside of [%d, %d]", int64(v), steps, s.minValue, s.maxValue)
	}

	return T(result), nil
}

// Subtract moves the value back by the given number of steps.
func (s SignedDomain[T]) Subtract(v T, steps int64) (T, error) {
	if steps != math.MinInt64 {
		return s.Add(v, -steps)
	}

	// -MinInt64 is not representable, so we move in two hops
	intermediate, err := s.Add(v, math.MaxInt64)
	if err != nil {
		return v, ierrors.Wrapf(ErrOverflow, "%d - %d is outside of [%d, %d]", int64(v), steps, s.minValue, s.maxValue)
	}

	return s.Add(intermediate, 1)
}

// Floor returns the value itself (every integer is aligned).
func (s SignedDomain[T]) Floor(v T) T {
	return v
}

// Ceiling returns the value itself (every integer is aligned).
func (s SignedDomain[T]) Ceiling(v T) T {
	return v
}

// Distance returns end - start. Differences that do not fit into an int64 are clamped to math.MinInt64 or
// math.MaxInt64.
func (s SignedDomain[T]) Distance(start, end T) int64 {
	result := int64(end) - int64(start)
	switch {
	case int64(start) < 0 && int64(end) >= 0 && result < 0:
		return math.MaxInt64
	case int64(start) >= 0 && int64(end) < 0 && result >= 0:
		return math.MinInt64
	default:
		return result
	}
}

// MinValue returns the smallest representable value.
func (s SignedDomain[T]) MinValue() T {
	return T(s.minValue)
}

// MaxValue returns the largest representable value.
func (s SignedDomain[T]) MaxValue() T {
	return T(s.maxValue)
}

// FixedStep marks the Domain as a FixedStepDomain.
func (s SignedDomain[T]) FixedStep() {}

// code contract (make sure the type implements all required methods).
var _ FixedStepDomain[value.Int64] = Int64

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnsignedDomain ///////////////////////////////////////////////////////////////////////////////////////////////

// UnsignedDomain is the FixedStepDomain of an unsigned integer type. One step is an increment of 1.
type UnsignedDomain[T constraints.Unsigned] struct {
	maxValue uint64
}

// Add advances the value by the given number of steps.
func (u UnsignedDomain[T]) Add(v T, steps int64) (T, error) {
	if steps >= 0 {
		return u.move(v, uint64(steps), false)
	}

	return u.move(v, magnitude(steps), true)
}

// Subtract moves the value back by the given number of steps.
func (u UnsignedDomain[T]) Subtract(v T, steps int64) (T, error) {
	if steps >= 0 {
		return u.move(v, uint64(steps), true)
	}

	return u.move(v, magnitude(steps), false)
}

// Floor returns the value itself (every integer is aligned).
func (u UnsignedDomain[T]) Floor(v T) T {
	return v
}

// Ceiling returns the value itself (every integer is aligned).
func (u UnsignedDomain[T]) Ceiling(v T) T {
	return v
}

// Distance returns end - start. Differences that do not fit into an int64 are clamped to math.MinInt64 or
// math.MaxInt64, since the distance is used to order and count values and not for exact accounting beyond that
// magnitude.
func (u UnsignedDomain[T]) Distance(start, end T) int64 {
	if end >= start {
		if difference := uint64(end) - uint64(start); difference <= math.MaxInt64 {
			return int64(difference)
		}

		return math.MaxInt64
	}

	if difference := uint64(start) - uint64(end); difference < 1<<63 {
		return -int64(difference)
	}

	return math.MinInt64
}

// MinValue returns the smallest representable value.
func (u UnsignedDomain[T]) MinValue() T {
	return 0
}

// MaxValue returns the largest representable value.
func (u UnsignedDomain[T]) MaxValue() T {
	return T(u.maxValue)
}

// FixedStep marks the Domain as a FixedStepDomain.
func (u UnsignedDomain[T]) FixedStep() {}

// move shifts the value by the given magnitude in the given direction.
func (u UnsignedDomain[T]) move(v T, distance uint64, backwards bool) (T, error) {
	current := uint64(v)

	if backwards {
		if distance > current {
			return v, ierrors.Wrapf(ErrOverflow, "%d - %d is outside of [0, %d]", current, distance, u.maxValue)
		}

		return T(current - distance), nil
	}

	if result := current + distance; result >= current && result <= u.maxValue {
		return T(result), nil
	}

	return v, ierrors.Wrapf(ErrOverflow, "%d + %d is outside of [0, %d]", current, distance, u.maxValue)
}

// code contract (make sure the type implements all required methods).
var _ FixedStepDomain[value.Uint64] = Uint64

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// magnitude returns the absolute value of a negative int64 (including math.MinInt64) as an uint64.
func magnitude(negative int64) uint64 {
	return uint64(-(negative + 1)) + 1
}
