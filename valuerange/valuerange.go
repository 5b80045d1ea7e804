package valuerange

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/boundary"
	"github.com/iotaledger/hive.go/steprange/value"
	"github.com/iotaledger/hive.go/stringify"
)

// ValueRange defines the boundaries around a contiguous span of Values (i.e. "integers from 1 to 100 inclusive").
//
// It is not possible to iterate over the contained values (that is what the step domains are for). Each side of a
// ValueRange is either bounded by a finite value or unbounded (+INF / -INF). A bounded side is considered to be either
// open (does not include the endpoint) or closed (includes the endpoint).
//
// With three possibilities on each side, this yields nine basic types of ranges, enumerated below:
//
//	Notation         Definition          Factory method
//	(a .. b)         {x | a < x < b}     Open
//	[a .. b]         {x | a <= x <= b}   Closed
//	(a .. b]         {x | a < x <= b}    OpenClosed
//	[a .. b)         {x | a <= x < b}    ClosedOpen
//	(a .. +INF)      {x | x > a}         GreaterThan
//	[a .. +INF)      {x | x >= a}        AtLeast
//	(-INF .. b)      {x | x < b}         LessThan
//	(-INF .. b]      {x | x <= b}        AtMost
//	(-INF .. +INF)   {x}                 All
//
// When both endpoints are finite, the upper endpoint may not be less than the lower. The endpoints may be equal only
// if at least one of the bounds is closed. ValueRanges are immutable values; every transformation returns a new one.
type ValueRange[T value.Value[T]] struct {
	lowerEndPoint EndPoint[T]
	upperEndPoint EndPoint[T]
}

// New creates a ValueRange from the given boundaries and returns ErrInvalidRange if they violate the invariants.
func New[T value.Value[T]](start, end boundary.Boundary[T], startInclusive, endInclusive bool) (ValueRange[T], error) {
	if err := validate(start, end, startInclusive, endInclusive); err != nil {
		return ValueRange[T]{}, err
	}

	return newUnchecked(start, end, startInclusive, endInclusive), nil
}

// TryNew creates a ValueRange from the given boundaries. Instead of an error it returns a flag that indicates if the
// boundaries were valid and a message that describes the violated invariant.
func TryNew[T value.Value[T]](start, end boundary.Boundary[T], startInclusive, endInclusive bool) (valueRange ValueRange[T], ok bool, message string) {
	if err := validate(start, end, startInclusive, endInclusive); err != nil {
		return ValueRange[T]{}, false, err.Error()
	}

	return newUnchecked(start, end, startInclusive, endInclusive), true, ""
}

// newUnchecked creates a ValueRange without checking the invariants. It must only be used for boundaries that were
// already validated.
func newUnchecked[T value.Value[T]](start, end boundary.Boundary[T], startInclusive, endInclusive bool) ValueRange[T] {
	return ValueRange[T]{
		lowerEndPoint: NewEndPoint(start, BoundTypeOf(startInclusive)),
		upperEndPoint: NewEndPoint(end, BoundTypeOf(endInclusive)),
	}
}

// validate checks the invariants of a ValueRange.
func validate[T value.Value[T]](start, end boundary.Boundary[T], startInclusive, endInclusive bool) error {
	switch cmp := start.Compare(end); {
	case cmp > 0:
		return ierrors.Wrapf(ErrInvalidRange, "start %s must not be greater than end %s", start, end)
	case cmp == 0 && !start.IsFinite():
		return ierrors.Wrapf(ErrInvalidRange, "start and end must not both be %s", start)
	case cmp == 0 && !startInclusive && !endInclusive:
		return ierrors.Wrapf(ErrInvalidRange, "range (%s, %s) with equal exclusive boundaries is always empty", start, end)
	default:
		return nil
	}
}

// All returns a ValueRange that contains all possible Values.
func All[T value.Value[T]]() ValueRange[T] {
	return newUnchecked(boundary.NegativeInfinity[T](), boundary.PositiveInfinity[T](), false, false)
}

// AtLeast returns a ValueRange that contains all Values greater than or equal to lower.
func AtLeast[T value.Value[T]](lower T) ValueRange[T] {
	return newUnchecked(boundary.Finite(lower), boundary.PositiveInfinity[T](), true, false)
}

// AtMost returns a ValueRange that contains all Values less than or equal to upper.
func AtMost[T value.Value[T]](upper T) ValueRange[T] {
	return newUnchecked(boundary.NegativeInfinity[T](), boundary.Finite(upper), false, true)
}

// GreaterThan returns a ValueRange that contains all Values strictly greater than lower.
func GreaterThan[T value.Value[T]](lower T) ValueRange[T] {
	return newUnchecked(boundary.Finite(lower), boundary.PositiveInfinity[T](), false, false)
}

// LessThan returns a ValueRange that contains all values strictly less than upper.
func LessThan[T value.Value[T]](upper T) ValueRange[T] {
	return newUnchecked(boundary.NegativeInfinity[T](), boundary.Finite(upper), false, false)
}

// Closed returns a ValueRange that contains all Values greater than or equal to lower and less than or equal to upper.
func Closed[T value.Value[T]](lower, upper T) (ValueRange[T], error) {
	return New(boundary.Finite(lower), boundary.Finite(upper), true, true)
}

// ClosedOpen returns a ValueRange that contains all Values greater than or equal to lower and strictly less than upper.
func ClosedOpen[T value.Value[T]](lower, upper T) (ValueRange[T], error) {
	return New(boundary.Finite(lower), boundary.Finite(upper), true, false)
}

// Open returns a ValueRange that contains all Values strictly greater than lower and strictly less than upper.
func Open[T value.Value[T]](lower, upper T) (ValueRange[T], error) {
	return New(boundary.Finite(lower), boundary.Finite(upper), false, false)
}

// OpenClosed returns a ValueRange that contains all values strictly greater than lower and less than or equal to upper.
func OpenClosed[T value.Value[T]](lower, upper T) (ValueRange[T], error) {
	return New(boundary.Finite(lower), boundary.Finite(upper), false, true)
}

// Start returns the lower Boundary of the ValueRange.
func (v ValueRange[T]) Start() boundary.Boundary[T] {
	return v.lowerEndPoint.boundary
}

// End returns the upper Boundary of the ValueRange.
func (v ValueRange[T]) End() boundary.Boundary[T] {
	return v.upperEndPoint.boundary
}

// StartInclusive returns true if the lower EndPoint is closed.
func (v ValueRange[T]) StartInclusive() bool {
	return v.lowerEndPoint.Inclusive()
}

// EndInclusive returns true if the upper EndPoint is closed.
func (v ValueRange[T]) EndInclusive() bool {
	return v.upperEndPoint.Inclusive()
}

// LowerEndPoint returns the lower EndPoint of this ValueRange.
func (v ValueRange[T]) LowerEndPoint() EndPoint[T] {
	return v.lowerEndPoint
}

// UpperEndPoint returns the upper EndPoint of this ValueRange.
func (v ValueRange[T]) UpperEndPoint() EndPoint[T] {
	return v.upperEndPoint
}

// HasLowerBound returns true if this ValueRange has a finite lower EndPoint.
func (v ValueRange[T]) HasLowerBound() bool {
	return v.lowerEndPoint.boundary.IsFinite()
}

// HasUpperBound returns true if this ValueRange has a finite upper EndPoint.
func (v ValueRange[T]) HasUpperBound() bool {
	return v.upperEndPoint.boundary.IsFinite()
}

// IsBounded returns true if both EndPoints of the ValueRange are finite.
func (v ValueRange[T]) IsBounded() bool {
	return v.HasLowerBound() && v.HasUpperBound()
}

// Compare returns 0 if the ValueRange contains the given Value, -1 if its contained Values are smaller and 1 if they
// are bigger.
func (v ValueRange[T]) Compare(point T) int {
	if cmp := v.lowerEndPoint.boundary.CompareValue(point); cmp == 1 || (cmp == 0 && !v.lowerEndPoint.Inclusive()) {
		return 1
	}

	if cmp := v.upperEndPoint.boundary.CompareValue(point); cmp == -1 || (cmp == 0 && !v.upperEndPoint.Inclusive()) {
		return -1
	}

	return 0
}

// Contains returns true if value is within the bounds of this ValueRange.
func (v ValueRange[T]) Contains(point T) bool {
	return v.Compare(point) == 0
}

// ContainsRange returns true if both boundaries of the other ValueRange lie within this ValueRange. An open EndPoint
// does not contain a closed EndPoint with the same Boundary.
func (v ValueRange[T]) ContainsRange(other ValueRange[T]) bool {
	return !lowerCovers(other.lowerEndPoint, v.lowerEndPoint) && !upperCovers(other.upperEndPoint, v.upperEndPoint)
}

// Overlaps returns true if there is at least one Value that is contained in both ValueRanges.
func (v ValueRange[T]) Overlaps(other ValueRange[T]) bool {
	lower, upper := v.intersectionEndPoints(other)

	return nonEmpty(lower, upper)
}

// IsAdjacent returns true if the ValueRanges touch without overlapping, which means that one of them ends exactly
// where the other one starts and exactly one of the touching EndPoints is closed (i.e. [1, 3) and [3, 5]).
func (v ValueRange[T]) IsAdjacent(other ValueRange[T]) bool {
	return touches(v.upperEndPoint, other.lowerEndPoint) || touches(other.upperEndPoint, v.lowerEndPoint)
}

// Intersect returns the ValueRange that contains the Values that are contained in both ValueRanges. The second return
// value is false if the ValueRanges do not overlap.
func (v ValueRange[T]) Intersect(other ValueRange[T]) (intersection ValueRange[T], ok bool) {
	lower, upper := v.intersectionEndPoints(other)
	if !nonEmpty(lower, upper) {
		return ValueRange[T]{}, false
	}

	return ValueRange[T]{lowerEndPoint: lower, upperEndPoint: upper}, true
}

// Union returns the smallest ValueRange that contains the Values of both ValueRanges. The second return value is false
// if the ValueRanges neither overlap nor are adjacent, since the union would not be contiguous.
func (v ValueRange[T]) Union(other ValueRange[T]) (union ValueRange[T], ok bool) {
	if !v.Overlaps(other) && !v.IsAdjacent(other) {
		return ValueRange[T]{}, false
	}

	lower := v.lowerEndPoint
	if lowerCovers(other.lowerEndPoint, lower) {
		lower = other.lowerEndPoint
	}

	upper := v.upperEndPoint
	if upperCovers(other.upperEndPoint, upper) {
		upper = other.upperEndPoint
	}

	return ValueRange[T]{lowerEndPoint: lower, upperEndPoint: upper}, true
}

// Empty returns true if this range is of the form [v..v) or (v..v]. This does not encompass ranges of the form (v..v),
// because such ranges are invalid and can't be constructed at all.
//
// Note that certain discrete ranges such as the integer range (3..4) are not considered empty, even though they contain
// no actual values.
func (v ValueRange[T]) Empty() bool {
	return v.IsBounded() && v.lowerEndPoint.boundary.Equal(v.upperEndPoint.boundary) && v.lowerEndPoint.Inclusive() != v.upperEndPoint.Inclusive()
}

// Equal returns true if both ValueRanges have equal Boundaries and BoundTypes.
func (v ValueRange[T]) Equal(other ValueRange[T]) bool {
	return v.lowerEndPoint.Equal(other.lowerEndPoint) && v.upperEndPoint.Equal(other.upperEndPoint)
}

// String returns the ValueRange in the canonical bracket notation (i.e. "[10, 20)"). Unbounded sides are rendered as
// empty tokens (i.e. "(, 20]").
func (v ValueRange[T]) String() string {
	return Format(v)
}

// DebugString returns a verbose human-readable version of the ValueRange.
func (v ValueRange[T]) DebugString() string {
	return stringify.Struct("ValueRange",
		stringify.NewStructField("lowerEndPoint", v.lowerEndPoint),
		stringify.NewStructField("upperEndPoint", v.upperEndPoint),
	)
}

// intersectionEndPoints returns the tighter lower and the tighter upper EndPoint of both ValueRanges.
func (v ValueRange[T]) intersectionEndPoints(other ValueRange[T]) (lower, upper EndPoint[T]) {
	lower = v.lowerEndPoint
	if lowerTighter(other.lowerEndPoint, lower) {
		lower = other.lowerEndPoint
	}

	upper = v.upperEndPoint
	if upperTighter(other.upperEndPoint, upper) {
		upper = other.upperEndPoint
	}

	return lower, upper
}

// lowerTighter returns true if the lower EndPoint a excludes more Values than the lower EndPoint b.
func lowerTighter[T value.Value[T]](a, b EndPoint[T]) bool {
	if cmp := a.boundary.Compare(b.boundary); cmp != 0 {
		return cmp > 0
	}

	return a.boundary.IsFinite() && !a.Inclusive() && b.Inclusive()
}

// upperTighter returns true if the upper EndPoint a excludes more Values than the upper EndPoint b.
func upperTighter[T value.Value[T]](a, b EndPoint[T]) bool {
	if cmp := a.boundary.Compare(b.boundary); cmp != 0 {
		return cmp < 0
	}

	return a.boundary.IsFinite() && !a.Inclusive() && b.Inclusive()
}

// lowerCovers returns true if the lower EndPoint a includes strictly more Values than the lower EndPoint b.
func lowerCovers[T value.Value[T]](a, b EndPoint[T]) bool {
	return lowerTighter(b, a)
}

// upperCovers returns true if the upper EndPoint a includes strictly more Values than the upper EndPoint b.
func upperCovers[T value.Value[T]](a, b EndPoint[T]) bool {
	return upperTighter(b, a)
}

// nonEmpty returns true if the given EndPoints enclose at least one Value.
func nonEmpty[T value.Value[T]](lower, upper EndPoint[T]) bool {
	if cmp := lower.boundary.Compare(upper.boundary); cmp != 0 {
		return cmp < 0
	}

	return lower.boundary.IsFinite() && lower.Inclusive() && upper.Inclusive()
}

// touches returns true if the upper EndPoint ends exactly where the lower EndPoint starts and exactly one of them is
// closed.
func touches[T value.Value[T]](upper, lower EndPoint[T]) bool {
	return upper.boundary.IsFinite() && upper.boundary.Equal(lower.boundary) && upper.Inclusive() != lower.Inclusive()
}
