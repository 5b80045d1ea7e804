package domain

import (
	"math"
	"time"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/steprange/value"
)

// BusinessDayDomain is the VariableStepDomain of calendar dates where one step is one business day (Monday to Friday
// by default). Weekends and configured holidays are not steps.
//
// All operations walk the calendar one day at a time, so their cost is proportional to the number of calendar days
// that are covered. Callers that work with long date ranges can cap the walk with WithMaxWalk.
type BusinessDayDomain struct {
	// holidays contains additional non-business days.
	holidays map[value.Date]struct{}

	// maxWalk is the maximum number of calendar days a single operation may visit (0 = unlimited).
	maxWalk int64
}

// NewBusinessDayDomain creates a new BusinessDayDomain.
func NewBusinessDayDomain(opts ...options.Option[BusinessDayDomain]) *BusinessDayDomain {
	return options.Apply(&BusinessDayDomain{
		holidays: make(map[value.Date]struct{}),
	}, opts)
}

// IsBusinessDay returns true if the given date is neither a weekend day nor a holiday.
func (b *BusinessDayDomain) IsBusinessDay(date value.Date) bool {
	if weekday := date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		return false
	}

	_, isHoliday := b.holidays[date]

	return !isHoliday
}

// Add walks the given number of business days forward (or backward if negative). A date that is not a business day
// itself is left in the direction of the walk, so adding 1 to a Saturday yields the following Monday.
func (b *BusinessDayDomain) Add(date value.Date, steps int64) (value.Date, error) {
	if steps >= 0 {
		return b.walk(date, uint64(steps), 1)
	}

	return b.walk(date, magnitude(steps), -1)
}

// Subtract walks the given number of business days backward (or forward if negative).
func (b *BusinessDayDomain) Subtract(date value.Date, steps int64) (value.Date, error) {
	if steps >= 0 {
		return b.walk(date, uint64(steps), -1)
	}

	return b.walk(date, magnitude(steps), 1)
}

// Floor returns the date itself if it is a business day and the previous business day otherwise.
func (b *BusinessDayDomain) Floor(date value.Date) value.Date {
	for !b.IsBusinessDay(date) {
		date = date.AddDays(-1)
	}

	return date
}

// Ceiling returns the date itself if it is a business day and the next business day otherwise.
func (b *BusinessDayDomain) Ceiling(date value.Date) value.Date {
	for !b.IsBusinessDay(date) {
		date = date.AddDays(1)
	}

	return date
}

// Distance floors both dates and counts the business days between them (negative if end lies before start). If the
// walk limit is reached, the count is clamped to the business days that were crossed from the earlier of the two
// dates. Use CheckedDistance to detect the clamping.
func (b *BusinessDayDomain) Distance(start, end value.Date) int64 {
	distance, _ := b.CheckedDistance(start, end)

	return distance
}

// CheckedDistance works like Distance but returns ErrWalkLimitExceeded if counting the business days needs more
// calendar days than the walk limit allows.
func (b *BusinessDayDomain) CheckedDistance(start, end value.Date) (int64, error) {
	from, to := b.Floor(start), b.Floor(end)

	sign := int64(1)
	if to.Compare(from) < 0 {
		from, to, sign = to, from, -1
	}

	var crossed, walked int64
	for cursor := from; cursor != to; {
		if b.maxWalk != 0 && walked == b.maxWalk {
			return sign * crossed, ierrors.Wrapf(ErrWalkLimitExceeded, "counting the business days between %s and %s needs more than %d calendar days", from, to, b.maxWalk)
		}

		cursor = cursor.AddDays(1)
		walked++

		if b.IsBusinessDay(cursor) {
			crossed++
		}
	}

	return sign * crossed, nil
}

// VariableStep marks the Domain as a VariableStepDomain.
func (b *BusinessDayDomain) VariableStep() {}

// walk moves the date until the given number of business days were visited in the given direction.
func (b *BusinessDayDomain) walk(date value.Date, steps uint64, direction int) (value.Date, error) {
	cursor := date

	var walked int64
	for remaining := steps; remaining > 0; {
		if b.maxWalk != 0 && walked == b.maxWalk {
			return date, ierrors.Wrapf(ErrWalkLimitExceeded, "moving %s by %d business days needs more than %d calendar days", date, int64(direction)*int64(min(steps, math.MaxInt64)), b.maxWalk)
		}

		if cursor = cursor.AddDays(direction); cursor.Year() < minDateYear || cursor.Year() > maxDateYear {
			return date, ierrors.Wrapf(ErrOverflow, "moving %s by %d business days leaves [%04d-01-01, %04d-12-31]", date, int64(direction)*int64(min(steps, math.MaxInt64)), minDateYear, maxDateYear)
		}
		walked++

		if b.IsBusinessDay(cursor) {
			remaining--
		}
	}

	return cursor, nil
}

// WithHolidays marks the given dates as additional non-business days.
func WithHolidays(holidays ...value.Date) options.Option[BusinessDayDomain] {
	return func(b *BusinessDayDomain) {
		for _, holiday := range holidays {
			b.holidays[holiday] = struct{}{}
		}
	}
}

// WithMaxWalk limits the number of calendar days a single operation may visit.
func WithMaxWalk(days int64) options.Option[BusinessDayDomain] {
	return func(b *BusinessDayDomain) {
		b.maxWalk = max(days, 0)
	}
}

// code contract (make sure the type implements all required methods).
var (
	_ VariableStepDomain[value.Date]    = &BusinessDayDomain{}
	_ CheckedDistanceDomain[value.Date] = &BusinessDayDomain{}
)
