package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/value"
)

var (
	friday     = value.NewDate(2024, time.March, 1)
	saturday   = value.NewDate(2024, time.March, 2)
	sunday     = value.NewDate(2024, time.March, 3)
	monday     = value.NewDate(2024, time.March, 4)
	tuesday    = value.NewDate(2024, time.March, 5)
	wednesday  = value.NewDate(2024, time.March, 6)
	thursday   = value.NewDate(2024, time.March, 7)
	nextFriday = value.NewDate(2024, time.March, 8)
	nextMonday = value.NewDate(2024, time.March, 11)
)

func TestBusinessDayDomain_IsBusinessDay(t *testing.T) {
	businessDays := NewBusinessDayDomain()

	require.True(t, businessDays.IsBusinessDay(friday))
	require.False(t, businessDays.IsBusinessDay(saturday))
	require.False(t, businessDays.IsBusinessDay(sunday))
	require.True(t, businessDays.IsBusinessDay(monday))

	withHoliday := NewBusinessDayDomain(WithHolidays(wednesday))
	require.False(t, withHoliday.IsBusinessDay(wednesday))
	require.True(t, withHoliday.IsBusinessDay(thursday))
}

func TestBusinessDayDomain_FloorCeiling(t *testing.T) {
	businessDays := NewBusinessDayDomain()

	require.Equal(t, friday, businessDays.Floor(saturday))
	require.Equal(t, friday, businessDays.Floor(sunday))
	require.Equal(t, monday, businessDays.Ceiling(saturday))
	require.Equal(t, monday, businessDays.Ceiling(sunday))
	require.Equal(t, tuesday, businessDays.Floor(tuesday))
	require.Equal(t, tuesday, businessDays.Ceiling(tuesday))
}

func TestBusinessDayDomain_Add(t *testing.T) {
	businessDays := NewBusinessDayDomain()

	result, err := businessDays.Add(friday, 1)
	require.NoError(t, err)
	require.Equal(t, monday, result)

	result, err = businessDays.Add(monday, 4)
	require.NoError(t, err)
	require.Equal(t, nextFriday, result)

	result, err = businessDays.Add(saturday, 1)
	require.NoError(t, err)
	require.Equal(t, monday, result)

	result, err = businessDays.Add(saturday, -1)
	require.NoError(t, err)
	require.Equal(t, friday, result)

	result, err = businessDays.Subtract(nextMonday, 5)
	require.NoError(t, err)
	require.Equal(t, monday, result)

	result, err = businessDays.Subtract(friday, -1)
	require.NoError(t, err)
	require.Equal(t, monday, result)

	for _, date := range []value.Date{friday, saturday, sunday} {
		result, err = businessDays.Add(date, 0)
		require.NoError(t, err)
		require.Equal(t, date, result)
	}
}

func TestBusinessDayDomain_Holidays(t *testing.T) {
	businessDays := NewBusinessDayDomain(WithHolidays(wednesday, nextFriday))

	result, err := businessDays.Add(tuesday, 1)
	require.NoError(t, err)
	require.Equal(t, thursday, result)

	result, err = businessDays.Add(thursday, 1)
	require.NoError(t, err)
	require.Equal(t, nextMonday, result)

	require.Equal(t, thursday, businessDays.Floor(nextFriday))
	require.Equal(t, int64(3), businessDays.Distance(monday, nextMonday))
}

func TestBusinessDayDomain_Distance(t *testing.T) {
	businessDays := NewBusinessDayDomain()

	require.Equal(t, int64(4), businessDays.Distance(monday, nextFriday))
	require.Equal(t, int64(-4), businessDays.Distance(nextFriday, monday))
	require.Equal(t, int64(1), businessDays.Distance(friday, monday))
	require.Equal(t, int64(0), businessDays.Distance(saturday, sunday))
	require.Equal(t, int64(0), businessDays.Distance(friday, sunday))
	require.Equal(t, int64(1), businessDays.Distance(sunday, monday))
	require.Equal(t, int64(5), businessDays.Distance(monday, nextMonday))
}

func TestBusinessDayDomain_AddDistanceRoundTrip(t *testing.T) {
	businessDays := NewBusinessDayDomain(WithHolidays(value.NewDate(2024, time.December, 25)))

	start := value.NewDate(2024, time.December, 2)
	for steps := int64(-30); steps <= 30; steps++ {
		moved, err := businessDays.Add(start, steps)
		require.NoError(t, err)
		require.True(t, businessDays.IsBusinessDay(moved))
		require.Equal(t, steps, businessDays.Distance(start, moved), "steps=%d moved=%s", steps, moved)
	}
}

func TestBusinessDayDomain_MaxWalk(t *testing.T) {
	businessDays := NewBusinessDayDomain(WithMaxWalk(3))

	result, err := businessDays.Add(friday, 1)
	require.NoError(t, err)
	require.Equal(t, monday, result)

	_, err = businessDays.Add(friday, 2)
	require.True(t, ierrors.Is(err, ErrWalkLimitExceeded))

	require.Equal(t, int64(3), businessDays.Distance(monday, nextMonday))
	require.Equal(t, int64(-3), businessDays.Distance(nextMonday, monday))

	_, err = businessDays.CheckedDistance(monday, nextMonday)
	require.True(t, ierrors.Is(err, ErrWalkLimitExceeded))

	distance, err := businessDays.CheckedDistance(monday, thursday)
	require.NoError(t, err)
	require.Equal(t, int64(3), distance)
}

func TestBusinessDayDomain_ClampedDistanceIsSymmetric(t *testing.T) {
	businessDays := NewBusinessDayDomain(WithMaxWalk(3))

	// the weekend is visited first in both directions
	require.Equal(t, int64(1), businessDays.Distance(friday, nextFriday))
	require.Equal(t, int64(-1), businessDays.Distance(nextFriday, friday))

	forward, forwardErr := businessDays.CheckedDistance(friday, nextFriday)
	backward, backwardErr := businessDays.CheckedDistance(nextFriday, friday)
	require.True(t, ierrors.Is(forwardErr, ErrWalkLimitExceeded))
	require.True(t, ierrors.Is(backwardErr, ErrWalkLimitExceeded))
	require.Equal(t, -forward, backward)

	unlimited := NewBusinessDayDomain()
	require.Equal(t, int64(5), unlimited.Distance(friday, nextFriday))
	require.Equal(t, int64(-5), unlimited.Distance(nextFriday, friday))
}

func TestCheckedDistance(t *testing.T) {
	distance, err := CheckedDistance[value.Int64](Int64, 3, 10)
	require.NoError(t, err)
	require.Equal(t, int64(7), distance)

	distance, err = CheckedDistance[value.Date](NewBusinessDayDomain(), friday, nextFriday)
	require.NoError(t, err)
	require.Equal(t, int64(5), distance)

	_, err = CheckedDistance[value.Date](NewBusinessDayDomain(WithMaxWalk(2)), friday, nextFriday)
	require.True(t, ierrors.Is(err, ErrWalkLimitExceeded))
}

func TestBusinessDayDomain_Overflow(t *testing.T) {
	businessDays := NewBusinessDayDomain()

	_, err := businessDays.Add(value.NewDate(9999, time.December, 31), 1)
	require.True(t, ierrors.Is(err, ErrOverflow))

	_, err = businessDays.Subtract(value.NewDate(1, time.January, 1), 1)
	require.True(t, ierrors.Is(err, ErrOverflow))
}

func TestDomains_ConcurrentUse(t *testing.T) {
	businessDays := NewBusinessDayDomain(WithHolidays(wednesday))

	var group errgroup.Group
	for i := 0; i < 32; i++ {
		offset := int64(i)

		group.Go(func() error {
			moved, err := businessDays.Add(monday, offset)
			if err != nil {
				return err
			}

			if distance := businessDays.Distance(monday, moved); distance != offset {
				return ierrors.Errorf("expected distance %d, got %d", offset, distance)
			}

			if _, err = Date.Add(friday, offset); err != nil {
				return err
			}

			if _, err = Int64.Add(value.Int64(offset), offset); err != nil {
				return err
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())
}
