package domain

import (
	"math"
	"reflect"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/steprange/value"
)

var (
	// Float32 is the FixedStepDomain of value.Float32 with a step size of 1.
	Float32 = NewFloatDomain[value.Float32](1)

	// Float64 is the FixedStepDomain of value.Float64 with a step size of 1.
	Float64 = NewFloatDomain[value.Float64](1)

	// Decimal is the FixedStepDomain of value.Decimal with a step size of 1.
	Decimal = NewDecimalDomain(decimal.NewFromInt(1))
)

const (
	// float64Tolerance is the relative distance to an integer below which a float64 quotient counts as whole.
	float64Tolerance = 1e-9

	// float32Tolerance is the relative distance to an integer below which a float32 quotient counts as whole.
	float32Tolerance = 1e-5
)

// region FloatDomain //////////////////////////////////////////////////////////////////////////////////////////////////

// FloatDomain is the FixedStepDomain of a floating point type. One step is a configurable multiple of the unit and the
// step grid is anchored at 0.
//
// The Domain does not enforce a range (floating point values have no hard wall besides their own limits), but a step
// operation that turns a finite value into an infinity is reported as ErrOverflow.
//
// Values whose quotient by the step size lies within a relative rounding tolerance of an integer count as aligned
// (i.e. 0.3 is on the grid of step size 0.1 even though 0.3 / 0.1 evaluates to 2.9999999999999996).
type FloatDomain[T constraints.Float] struct {
	step      float64
	tolerance float64
}

// NewFloatDomain creates a FloatDomain with the given step size. Non-positive or non-finite step sizes fall back to 1.
func NewFloatDomain[T constraints.Float](step float64) FloatDomain[T] {
	return FloatDomain[T]{
		step:      lo.Cond(step > 0 && !math.IsInf(step, 0), step, 1),
		tolerance: lo.Cond(reflect.TypeOf(T(0)).Kind() == reflect.Float32, float32Tolerance, float64Tolerance),
	}
}

// Step returns the step size of the Domain.
func (f FloatDomain[T]) Step() float64 {
	return f.step
}

// Add advances the value by the given number of steps.
func (f FloatDomain[T]) Add(v T, steps int64) (T, error) {
	return f.move(v, float64(steps))
}

// Subtract moves the value back by the given number of steps.
func (f FloatDomain[T]) Subtract(v T, steps int64) (T, error) {
	return f.move(v, -float64(steps))
}

// Floor returns the largest multiple of the step size that is less than or equal to the value. Aligned values are
// returned unchanged.
func (f FloatDomain[T]) Floor(v T) T {
	quotient, aligned := f.quotient(float64(v))
	if aligned {
		return v
	}

	return T(math.Floor(quotient) * f.step)
}

// Ceiling returns the smallest multiple of the step size that is greater than or equal to the value. Aligned values
// are returned unchanged.
func (f FloatDomain[T]) Ceiling(v T) T {
	quotient, aligned := f.quotient(float64(v))
	if aligned {
		return v
	}

	return T(math.Ceil(quotient) * f.step)
}

// Distance returns the number of complete steps from start to end (truncated toward zero).
func (f FloatDomain[T]) Distance(start, end T) int64 {
	quotient, _ := f.quotient(float64(end) - float64(start))

	return clampToInt64(math.Trunc(quotient))
}

// FixedStep marks the Domain as a FixedStepDomain.
func (f FloatDomain[T]) FixedStep() {}

// quotient returns v / step and whether it counts as a whole number of steps. Whole quotients are snapped to the
// integer they approximate. A step size of 1 is exact and never snaps.
func (f FloatDomain[T]) quotient(v float64) (quotient float64, aligned bool) {
	if f.step == 1 {
		return v, v == math.Trunc(v)
	}

	quotient = v / f.step
	if rounded := math.Round(quotient); math.Abs(quotient-rounded) <= f.tolerance*math.Max(1, math.Abs(quotient)) {
		return rounded, true
	}

	return quotient, false
}

// move shifts the value by the given (fractional) number of steps.
func (f FloatDomain[T]) move(v T, steps float64) (T, error) {
	result := T(float64(v) + steps*f.step)
	if math.IsInf(float64(result), 0) && !math.IsInf(float64(v), 0) {
		return v, ierrors.Wrapf(ErrOverflow, "%v + %v steps of %v is not a finite value", v, steps, f.step)
	}

	return result, nil
}

// code contract (make sure the type implements all required methods).
var _ FixedStepDomain[value.Float64] = Float64

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DecimalDomain ////////////////////////////////////////////////////////////////////////////////////////////////

// DecimalDomain is the FixedStepDomain of value.Decimal. One step is a configurable decimal step size and the step grid
// is anchored at 0. Decimals are unbounded, so the Domain never reports an overflow.
type DecimalDomain struct {
	step decimal.Decimal
}

// NewDecimalDomain creates a DecimalDomain with the given step size. Non-positive step sizes fall back to 1.
func NewDecimalDomain(step decimal.Decimal) DecimalDomain {
	if !step.IsPositive() {
		step = decimal.NewFromInt(1)
	}

	return DecimalDomain{step: step}
}

// Step returns the step size of the Domain.
func (d DecimalDomain) Step() decimal.Decimal {
	return d.step
}

// Add advances the value by the given number of steps.
func (d DecimalDomain) Add(v value.Decimal, steps int64) (value.Decimal, error) {
	return value.NewDecimal(v.Decimal.Add(decimal.NewFromInt(steps).Mul(d.step))), nil
}

// Subtract moves the value back by the given number of steps.
func (d DecimalDomain) Subtract(v value.Decimal, steps int64) (value.Decimal, error) {
	return value.NewDecimal(v.Decimal.Sub(decimal.NewFromInt(steps).Mul(d.step))), nil
}

// Floor returns the largest multiple of the step size that is less than or equal to the value. Aligned values are
// returned unchanged.
func (d DecimalDomain) Floor(v value.Decimal) value.Decimal {
	quotient, _ := v.Decimal.QuoRem(d.step, 0)
	if quotient.Mul(d.step).GreaterThan(v.Decimal) {
		quotient = quotient.Sub(decimal.NewFromInt(1))
	}

	return value.NewDecimal(quotient.Mul(d.step))
}

// Ceiling returns the smallest multiple of the step size that is greater than or equal to the value. Aligned values
// are returned unchanged.
func (d DecimalDomain) Ceiling(v value.Decimal) value.Decimal {
	floor := d.Floor(v)
	if floor.Decimal.Equal(v.Decimal) {
		return floor
	}

	return value.NewDecimal(floor.Decimal.Add(d.step))
}

// Distance returns the number of complete steps from start to end (truncated toward zero). Distances that do not fit
// into an int64 are clamped.
func (d DecimalDomain) Distance(start, end value.Decimal) int64 {
	quotient, _ := end.Decimal.Sub(start.Decimal).QuoRem(d.step, 0)

	return clampDecimalToInt64(quotient)
}

// FixedStep marks the Domain as a FixedStepDomain.
func (d DecimalDomain) FixedStep() {}

// code contract (make sure the type implements all required methods).
var _ FixedStepDomain[value.Decimal] = Decimal

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

var (
	maxInt64Decimal = decimal.NewFromInt(math.MaxInt64)
	minInt64Decimal = decimal.NewFromInt(math.MinInt64)

	nanosecondsPerSecond = decimal.NewFromInt(int64(time.Second))
)

// clampDecimalToInt64 converts an integral decimal to an int64 and clamps it to the representable range.
func clampDecimalToInt64(d decimal.Decimal) int64 {
	switch {
	case d.GreaterThan(maxInt64Decimal):
		return math.MaxInt64
	case d.LessThan(minInt64Decimal):
		return math.MinInt64
	default:
		return d.IntPart()
	}
}

// clampToInt64 converts an integral float64 to an int64 and clamps it to the representable range (NaN becomes 0).
func clampToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
