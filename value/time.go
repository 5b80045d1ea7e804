package value

import (
	"cmp"
	"time"
)

const (
	// DateLayout is the layout used to render and parse Dates.
	DateLayout = "2006-01-02"

	// TimeLayout is the layout used to render and parse Times.
	TimeLayout = time.RFC3339Nano

	secondsPerDay = 24 * 60 * 60
)

// region Date /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Date is a calendar date without a time of day. Its fields are normalized, so two Dates are equal (==) if and only
// if they denote the same day.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the Date for the given year, month and day. Out of range months and days are normalized the same
// way time.Date normalizes them (i.e. October 32 becomes November 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date that contains the given instant (in the instant's own location).
func DateOf(t time.Time) Date {
	year, month, day := t.Date()

	return Date{year: year, month: month, day: day}
}

// ParseDate parses a Date in the form YYYY-MM-DD.
func ParseDate(text string) (Date, error) {
	parsed, err := time.Parse(DateLayout, text)
	if err != nil {
		return Date{}, wrapParseError(err, "Date", text)
	}

	return DateOf(parsed), nil
}

// Year returns the year of the Date.
func (d Date) Year() int {
	return d.year
}

// Month returns the month of the Date.
func (d Date) Month() time.Month {
	return d.month
}

// Day returns the day of the month of the Date.
func (d Date) Day() int {
	return d.day
}

// Weekday returns the day of the week of the Date.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the Date that lies the given number of calendar days after (or before if negative) the Date.
func (d Date) AddDays(days int) Date {
	return NewDate(d.year, d.month, d.day+days)
}

// DaysUntil returns the number of calendar days from the Date to the other Date (negative if other is earlier).
func (d Date) DaysUntil(other Date) int64 {
	return (other.Time().Unix() - d.Time().Unix()) / secondsPerDay
}

// Time returns midnight UTC of the Date.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (d Date) Compare(other Date) int {
	if result := cmp.Compare(d.year, other.year); result != 0 {
		return result
	}

	if result := cmp.Compare(d.month, other.month); result != 0 {
		return result
	}

	return cmp.Compare(d.day, other.day)
}

// String returns the Date in the form YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// code contract (make sure the type implements all required methods).
var _ Value[Date] = Date{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Time /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Time is a wrapper for instants that makes them compatible with the Value constraint. The wrapped instant is always
// stored in UTC and without a monotonic clock reading, so two Times are equal (==) if they denote the same instant.
type Time struct {
	t time.Time
}

// NewTime wraps the given instant.
func NewTime(t time.Time) Time {
	return Time{t: t.UTC().Round(0)}
}

// ParseTime parses a Time in RFC3339 format (with optional fractional seconds).
func ParseTime(text string) (Time, error) {
	parsed, err := time.Parse(TimeLayout, text)
	if err != nil {
		return Time{}, wrapParseError(err, "Time", text)
	}

	return NewTime(parsed), nil
}

// Time returns the wrapped instant.
func (t Time) Time() time.Time {
	return t.t
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (t Time) Compare(other Time) int {
	return t.t.Compare(other.t)
}

// String returns the Time in RFC3339 format.
func (t Time) String() string {
	return t.t.Format(TimeLayout)
}

// code contract (make sure the type implements all required methods).
var _ Value[Time] = Time{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Duration /////////////////////////////////////////////////////////////////////////////////////////////////////

// Duration is a wrapper for time.Duration values that makes these values compatible with the Value constraint.
type Duration time.Duration

// ParseDuration parses a Duration in the format that is understood by time.ParseDuration.
func ParseDuration(text string) (Duration, error) {
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return 0, wrapParseError(err, "Duration", text)
	}

	return Duration(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (d Duration) Compare(other Duration) int {
	return cmp.Compare(d, other)
}

// String returns the Duration in the format of time.Duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// code contract (make sure the type implements all required methods).
var _ Value[Duration] = Duration(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
