package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/steprange/domain"
	"github.com/iotaledger/hive.go/steprange/value"
	"github.com/iotaledger/hive.go/steprange/valuerange"
)

func TestDense_At(t *testing.T) {
	data := []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	dense, err := NewDense(lo.PanicOnErr(valuerange.Closed[value.Int64](10, 20)), domain.Int64, data)
	require.NoError(t, err)
	require.Equal(t, 11, dense.Len())
	require.Equal(t, "[10, 20]", dense.Range().String())

	index, err := dense.Index(10)
	require.NoError(t, err)
	require.Zero(t, index)

	index, err = dense.Index(20)
	require.NoError(t, err)
	require.Equal(t, 10, index)

	element, err := dense.At(15)
	require.NoError(t, err)
	require.Equal(t, 50, element)

	_, err = dense.At(21)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	_, err = dense.At(9)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestDense_ShortData(t *testing.T) {
	dense, err := NewDense(lo.PanicOnErr(valuerange.Open[value.Int64](10, 20)), domain.Int64, []string{"a", "b", "c"})
	require.NoError(t, err)

	element, err := dense.At(11)
	require.NoError(t, err)
	require.Equal(t, "a", element)

	element, err = dense.At(13)
	require.NoError(t, err)
	require.Equal(t, "c", element)

	_, err = dense.At(14)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestDense_Slice(t *testing.T) {
	data := []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	dense, err := NewDense(lo.PanicOnErr(valuerange.Closed[value.Int64](10, 20)), domain.Int64, data)
	require.NoError(t, err)

	elements, err := dense.Slice(lo.PanicOnErr(valuerange.Closed[value.Int64](12, 14)))
	require.NoError(t, err)
	require.Equal(t, []int{20, 30, 40}, elements)

	elements, err = dense.Slice(lo.PanicOnErr(valuerange.Open[value.Int64](12, 14)))
	require.NoError(t, err)
	require.Equal(t, []int{30}, elements)

	elements, err = dense.Slice(lo.PanicOnErr(valuerange.ClosedOpen[value.Int64](15, 15)))
	require.NoError(t, err)
	require.Empty(t, elements)

	_, err = dense.Slice(lo.PanicOnErr(valuerange.Closed[value.Int64](5, 12)))
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	_, err = dense.Slice(valuerange.AtLeast[value.Int64](15))
	require.ErrorIs(t, err, ErrIndexOutOfBounds)

	short, err := NewDense(lo.PanicOnErr(valuerange.Closed[value.Int64](10, 20)), domain.Int64, data[:4])
	require.NoError(t, err)

	_, err = short.Slice(lo.PanicOnErr(valuerange.Closed[value.Int64](12, 14)))
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestDense_Unbounded(t *testing.T) {
	_, err := NewDense(valuerange.AtMost[value.Int64](10), domain.Int64, []int{1, 2, 3})
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestDense_BusinessDays(t *testing.T) {
	businessDays := domain.NewBusinessDayDomain()
	data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	dense, err := NewDense(lo.PanicOnErr(valuerange.Closed(value.NewDate(2024, time.March, 4), value.NewDate(2024, time.March, 15))), businessDays, data)
	require.NoError(t, err)

	element, err := dense.At(value.NewDate(2024, time.March, 11))
	require.NoError(t, err)
	require.Equal(t, 5, element)

	element, err = dense.At(value.NewDate(2024, time.March, 15))
	require.NoError(t, err)
	require.Equal(t, 9, element)

	elements, err := dense.Slice(lo.PanicOnErr(valuerange.Closed(value.NewDate(2024, time.March, 9), value.NewDate(2024, time.March, 12))))
	require.NoError(t, err)
	require.Equal(t, []int{5, 6}, elements)
}

func TestSparse(t *testing.T) {
	sparse, err := NewSparse[value.Int64, domain.SignedDomain[value.Int64], string](valuerange.AtLeast[value.Int64](100), domain.Int64)
	require.NoError(t, err)
	require.Equal(t, "[100, )", sparse.Range().String())

	require.NoError(t, sparse.Set(105, "a"))
	require.NoError(t, sparse.Set(110, "b"))
	require.NoError(t, sparse.Set(103, "c"))
	require.ErrorIs(t, sparse.Set(99, "d"), ErrIndexOutOfBounds)
	require.Equal(t, 3, sparse.Size())

	element, exists := sparse.Get(105)
	require.True(t, exists)
	require.Equal(t, "a", element)

	_, exists = sparse.Get(104)
	require.False(t, exists)

	_, exists = sparse.Get(99)
	require.False(t, exists)

	floorPoint, element, exists := sparse.Floor(107)
	require.True(t, exists)
	require.Equal(t, value.Int64(105), floorPoint)
	require.Equal(t, "a", element)

	floorPoint, element, exists = sparse.Floor(1000)
	require.True(t, exists)
	require.Equal(t, value.Int64(110), floorPoint)
	require.Equal(t, "b", element)

	_, _, exists = sparse.Floor(102)
	require.False(t, exists)

	var points []value.Int64
	require.NoError(t, sparse.ForEach(func(point value.Int64, _ string) bool {
		points = append(points, point)

		return true
	}))
	require.Equal(t, []value.Int64{103, 105, 110}, points)

	points = nil
	require.NoError(t, sparse.ForEach(func(point value.Int64, _ string) bool {
		points = append(points, point)

		return len(points) < 2
	}))
	require.Equal(t, []value.Int64{103, 105}, points)

	require.True(t, sparse.Delete(105))
	require.False(t, sparse.Delete(105))
	require.Equal(t, 2, sparse.Size())
}

func TestSparse_Dates(t *testing.T) {
	sparse, err := NewSparse[value.Date, domain.DateDomain, float64](lo.PanicOnErr(valuerange.OpenClosed(value.NewDate(2024, time.February, 27), value.NewDate(2024, time.March, 31))), domain.Date)
	require.NoError(t, err)

	require.NoError(t, sparse.Set(value.NewDate(2024, time.March, 1), 1.5))
	require.NoError(t, sparse.Set(value.NewDate(2024, time.February, 29), 0.5))
	require.ErrorIs(t, sparse.Set(value.NewDate(2024, time.February, 27), 0), ErrIndexOutOfBounds)

	var dates []string
	require.NoError(t, sparse.ForEach(func(point value.Date, _ float64) bool {
		dates = append(dates, point.String())

		return true
	}))
	require.Equal(t, []string{"2024-02-29", "2024-03-01"}, dates)
}

func TestSparse_WalkLimit(t *testing.T) {
	businessDays := domain.NewBusinessDayDomain(domain.WithMaxWalk(5))

	sparse, err := NewSparse[value.Date, *domain.BusinessDayDomain, int](valuerange.AtLeast(value.NewDate(2024, time.March, 4)), businessDays)
	require.NoError(t, err)

	require.NoError(t, sparse.Set(value.NewDate(2024, time.March, 5), 1))
	require.ErrorIs(t, sparse.Set(value.NewDate(2024, time.March, 20), 2), domain.ErrWalkLimitExceeded)
	require.Equal(t, 1, sparse.Size())

	_, exists := sparse.Get(value.NewDate(2024, time.March, 20))
	require.False(t, exists)

	floorPoint, element, exists := sparse.Floor(value.NewDate(2024, time.March, 6))
	require.True(t, exists)
	require.Equal(t, value.NewDate(2024, time.March, 5), floorPoint)
	require.Equal(t, 1, element)

	_, _, exists = sparse.Floor(value.NewDate(2024, time.March, 20))
	require.False(t, exists)
}
