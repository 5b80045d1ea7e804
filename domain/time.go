package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/value"
)

const (
	// minDateYear is the first year that a Date domain can step into.
	minDateYear = 1

	// maxDateYear is the last year that a Date domain can step into.
	maxDateYear = 9999

	// maxDateSteps is the number of days between the first and the last representable Date.
	maxDateSteps = 3652058
)

// Granularity is the size of a single step of the time based Domains.
type Granularity time.Duration

const (
	// Nanosecond steps by one nanosecond (the native tick of time.Time).
	Nanosecond = Granularity(time.Nanosecond)

	// Microsecond steps by one microsecond.
	Microsecond = Granularity(time.Microsecond)

	// Millisecond steps by one millisecond.
	Millisecond = Granularity(time.Millisecond)

	// Second steps by one second.
	Second = Granularity(time.Second)

	// Minute steps by one minute.
	Minute = Granularity(time.Minute)

	// Hour steps by one hour.
	Hour = Granularity(time.Hour)

	// Day steps by 24 hours.
	Day = Granularity(24 * time.Hour)
)

// Granularities contains all supported Granularities ordered by their size.
var Granularities = []Granularity{Nanosecond, Microsecond, Millisecond, Second, Minute, Hour, Day}

// GranularityNames contains a dictionary of the names of Granularities.
var GranularityNames = map[Granularity]string{
	Nanosecond:  "nanosecond",
	Microsecond: "microsecond",
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
}

// GranularityFromString returns the Granularity with the given name.
func GranularityFromString(name string) (Granularity, error) {
	for granularity, granularityName := range GranularityNames {
		if granularityName == name {
			return granularity, nil
		}
	}

	return 0, ierrors.Errorf("unknown granularity '%s'", name)
}

// Duration returns the Granularity as a time.Duration.
func (g Granularity) Duration() time.Duration {
	return time.Duration(g)
}

// String returns the name of the Granularity.
func (g Granularity) String() string {
	if name, exists := GranularityNames[g]; exists {
		return name
	}

	return time.Duration(g).String()
}

// orNanosecond returns the Granularity or Nanosecond for the zero value.
func (g Granularity) orNanosecond() Granularity {
	if g <= 0 {
		return Nanosecond
	}

	return g
}

// offset returns steps * g and reports an overflow of time.Duration.
func (g Granularity) offset(steps int64) (time.Duration, error) {
	unit := int64(g)
	if steps != 0 && (steps > math.MaxInt64/unit || steps < math.MinInt64/unit) {
		return 0, ierrors.Wrapf(ErrOverflow, "%d steps of %s are outside of [%s, %s]", steps, g, time.Duration(math.MinInt64), time.Duration(math.MaxInt64))
	}

	return time.Duration(steps * unit), nil
}

// region DateDomain ///////////////////////////////////////////////////////////////////////////////////////////////////

// Date is the FixedStepDomain of value.Date with a step size of one calendar day.
var Date = DateDomain{}

// DateDomain is the FixedStepDomain of calendar dates. Every Date is aligned, so Floor and Ceiling are the identity.
type DateDomain struct{}

// Add advances the Date by the given number of days.
func (d DateDomain) Add(v value.Date, steps int64) (value.Date, error) {
	if steps > maxDateSteps || steps < -maxDateSteps {
		return v, ierrors.Wrapf(ErrOverflow, "%s + %d days is outside of [%04d-01-01, %04d-12-31]", v, steps, minDateYear, maxDateYear)
	}

	result := v.AddDays(int(steps))
	if result.Year() < minDateYear || result.Year() > maxDateYear {
		return v, ierrors.Wrapf(ErrOverflow, "%s + %d days is outside of [%04d-01-01, %04d-12-31]", v, steps, minDateYear, maxDateYear)
	}

	return result, nil
}

// Subtract moves the Date back by the given number of days.
func (d DateDomain) Subtract(v value.Date, steps int64) (value.Date, error) {
	if steps == math.MinInt64 {
		return v, ierrors.Wrapf(ErrOverflow, "%s - %d days is outside of [%04d-01-01, %04d-12-31]", v, steps, minDateYear, maxDateYear)
	}

	return d.Add(v, -steps)
}

// Floor returns the Date itself.
func (d DateDomain) Floor(v value.Date) value.Date {
	return v
}

// Ceiling returns the Date itself.
func (d DateDomain) Ceiling(v value.Date) value.Date {
	return v
}

// Distance returns the number of calendar days from start to end.
func (d DateDomain) Distance(start, end value.Date) int64 {
	return start.DaysUntil(end)
}

// FixedStep marks the Domain as a FixedStepDomain.
func (d DateDomain) FixedStep() {}

// code contract (make sure the type implements all required methods).
var _ FixedStepDomain[value.Date] = Date

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TimeDomain ///////////////////////////////////////////////////////////////////////////////////////////////////

// TimeDomain is the FixedStepDomain of instants. The step grid is anchored at the zero time (UTC), so with a
// Granularity of Day the aligned values are the UTC midnights.
type TimeDomain struct {
	granularity Granularity
}

// NewTimeDomain creates a TimeDomain with the given Granularity.
func NewTimeDomain(granularity Granularity) TimeDomain {
	return TimeDomain{granularity: granularity.orNanosecond()}
}

// Granularity returns the step size of the Domain.
func (t TimeDomain) Granularity() Granularity {
	return t.granularity.orNanosecond()
}

// Add advances the instant by the given number of steps.
func (t TimeDomain) Add(v value.Time, steps int64) (value.Time, error) {
	offset, err := t.Granularity().offset(steps)
	if err != nil {
		return v, ierrors.Wrapf(err, "failed to add %d steps to %s", steps, v)
	}

	return value.NewTime(v.Time().Add(offset)), nil
}

// Subtract moves the instant back by the given number of steps.
func (t TimeDomain) Subtract(v value.Time, steps int64) (value.Time, error) {
	if steps == math.MinInt64 {
		return v, ierrors.Wrapf(ErrOverflow, "failed to subtract %d steps from %s", steps, v)
	}

	return t.Add(v, -steps)
}

// Floor truncates the instant to the Granularity.
func (t TimeDomain) Floor(v value.Time) value.Time {
	return value.NewTime(v.Time().Truncate(t.Granularity().Duration()))
}

// Ceiling rounds the instant up to the next multiple of the Granularity (unless it is already aligned).
func (t TimeDomain) Ceiling(v value.Time) value.Time {
	floor := t.Floor(v)
	if floor == v {
		return v
	}

	return value.NewTime(floor.Time().Add(t.Granularity().Duration()))
}

// Distance returns the number of complete steps from start to end (truncated toward zero). The difference is computed
// from the Unix seconds and nanoseconds of both instants, so it does not saturate like time.Time.Sub does.
func (t TimeDomain) Distance(start, end value.Time) int64 {
	startTime, endTime := start.Time(), end.Time()

	nanoseconds := decimal.NewFromInt(endTime.Unix()).Sub(decimal.NewFromInt(startTime.Unix())).Mul(nanosecondsPerSecond).
		Add(decimal.NewFromInt(int64(endTime.Nanosecond() - startTime.Nanosecond())))
	quotient, _ := nanoseconds.QuoRem(decimal.NewFromInt(int64(t.Granularity())), 0)

	return clampDecimalToInt64(quotient)
}

// FixedStep marks the Domain as a FixedStepDomain.
func (t TimeDomain) FixedStep() {}

// code contract (make sure the type implements all required methods).
var _ FixedStepDomain[value.Time] = TimeDomain{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DurationDomain ///////////////////////////////////////////////////////////////////////////////////////////////

// DurationDomain is the FixedStepDomain of time spans. The step grid is anchored at a zero duration.
type DurationDomain struct {
	granularity Granularity
}

// NewDurationDomain creates a DurationDomain with the given Granularity.
func NewDurationDomain(granularity Granularity) DurationDomain {
	return DurationDomain{granularity: granularity.orNanosecond()}
}

// Granularity returns the step size of the Domain.
func (d DurationDomain) Granularity() Granularity {
	return d.granularity.orNanosecond()
}

// Add advances the duration by the given number of steps.
func (d DurationDomain) Add(v value.Duration, steps int64) (value.Duration, error) {
	offset, err := d.Granularity().offset(steps)
	if err != nil {
		return v, ierrors.Wrapf(err, "failed to add %d steps to %s", steps, v)
	}

	result := int64(v) + int64(offset)
	if (offset > 0 && result < int64(v)) || (offset < 0 && result > int64(v)) {
		return v, ierrors.Wrapf(ErrOverflow, "%s + %s is outside of [%s, %s]", v, offset, time.Duration(math.MinInt64), time.Duration(math.MaxInt64))
	}

	return value.Duration(result), nil
}

// Subtract moves the duration back by the given number of steps.
func (d DurationDomain) Subtract(v value.Duration, steps int64) (value.Duration, error) {
	if steps == math.MinInt64 {
		return v, ierrors.Wrapf(ErrOverflow, "failed to subtract %d steps from %s", steps, v)
	}

	return d.Add(v, -steps)
}

// Floor returns the largest multiple of the Granularity that is less than or equal to the duration. Values so close
// to the lower limit of time.Duration that their floor is not representable are returned unchanged.
func (d DurationDomain) Floor(v value.Duration) value.Duration {
	remainder := int64(v) % int64(d.Granularity())
	if remainder < 0 {
		remainder += int64(d.Granularity())
	}

	if int64(v) < math.MinInt64+remainder {
		return v
	}

	return value.Duration(int64(v) - remainder)
}

// Ceiling returns the smallest multiple of the Granularity that is greater than or equal to the duration. Values so
// close to the upper limit of time.Duration that their ceiling is not representable are returned unchanged.
func (d DurationDomain) Ceiling(v value.Duration) value.Duration {
	floor := d.Floor(v)
	if floor == v {
		return v
	}

	ceiling, err := d.Add(floor, 1)
	if err != nil {
		return v
	}

	return ceiling
}

// Distance returns the number of complete steps from start to end (clamped if the difference overflows).
func (d DurationDomain) Distance(start, end value.Duration) int64 {
	difference := Int64.Distance(value.Int64(start), value.Int64(end))

	return difference / int64(d.Granularity())
}

// FixedStep marks the Domain as a FixedStepDomain.
func (d DurationDomain) FixedStep() {}

// code contract (make sure the type implements all required methods).
var _ FixedStepDomain[value.Duration] = DurationDomain{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
