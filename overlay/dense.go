// Package overlay maps sequences of data onto the steps of a ValueRange, so that the data can be addressed by Values
// instead of positions (i.e. one measurement per business day of a quarter).
//
// The position of a Value is the Domain distance between the first step that is covered by the ValueRange and the
// Value itself. Dense overlays are backed by a slice, Sparse overlays by a red-black tree that only stores the steps
// that were set.
package overlay

import (
	"math"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/domain"
	"github.com/iotaledger/hive.go/steprange/steps"
	"github.com/iotaledger/hive.go/steprange/value"
	"github.com/iotaledger/hive.go/steprange/valuerange"
)

// ErrIndexOutOfBounds is returned if a Value or a ValueRange lies outside of the overlay.
var ErrIndexOutOfBounds = ierrors.New("index out of bounds")

// Dense is an overlay that maps a slice of data onto consecutive steps of a ValueRange.
type Dense[T value.Value[T], D domain.Domain[T], V any] struct {
	// index translates Values to positions.
	index *index[T, D]

	// data contains the elements in step order.
	data []V
}

// NewDense creates a Dense overlay of the given data. The ValueRange needs to have a lower bound. The data may cover
// fewer steps than the ValueRange (in which case the remaining steps are out of bounds), and must not be modified
// afterward.
func NewDense[T value.Value[T], D domain.Domain[T], V any](r valuerange.ValueRange[T], d D, data []V) (*Dense[T, D, V], error) {
	idx, err := newIndex(r, d)
	if err != nil {
		return nil, err
	}

	return &Dense[T, D, V]{
		index: idx,
		data:  data,
	}, nil
}

// Range returns the ValueRange of the overlay.
func (o *Dense[T, D, V]) Range() valuerange.ValueRange[T] {
	return o.index.valueRange
}

// Len returns the number of elements of the overlay.
func (o *Dense[T, D, V]) Len() int {
	return len(o.data)
}

// Index returns the position of the given Value in the backing data.
func (o *Dense[T, D, V]) Index(point T) (int, error) {
	position, err := o.index.position(point)
	if err != nil {
		return 0, err
	}

	if position >= int64(len(o.data)) {
		return 0, ierrors.Wrapf(ErrIndexOutOfBounds, "%s is at index %d, but the data only has %d elements", point, position, len(o.data))
	}

	return int(position), nil
}

// At returns the element that belongs to the given Value.
func (o *Dense[T, D, V]) At(point T) (element V, err error) {
	position, err := o.Index(point)
	if err != nil {
		return element, err
	}

	return o.data[position], nil
}

// Slice returns the elements that belong to the steps of the given ValueRange, which needs to be contained in the
// Range of the overlay. The returned slice shares its memory with the overlay.
func (o *Dense[T, D, V]) Slice(sub valuerange.ValueRange[T]) ([]V, error) {
	from, to, err := o.index.bounds(sub)
	if err != nil {
		return nil, err
	}

	if from > to {
		return o.data[0:0], nil
	}

	if to >= int64(len(o.data)) {
		return nil, ierrors.Wrapf(ErrIndexOutOfBounds, "%s ends at index %d, but the data only has %d elements", sub, to, len(o.data))
	}

	return o.data[from : to+1], nil
}

// index translates Values of a ValueRange to positions relative to its first step.
type index[T value.Value[T], D domain.Domain[T]] struct {
	valueRange valuerange.ValueRange[T]
	domain     D
	firstStep  T
}

// newIndex creates an index for the given ValueRange.
func newIndex[T value.Value[T], D domain.Domain[T]](r valuerange.ValueRange[T], d D) (*index[T, D], error) {
	firstStep, err := steps.FirstStep(r, d)
	if err != nil {
		return nil, ierrors.Join(ErrIndexOutOfBounds, ierrors.Wrapf(err, "failed to determine first step of %s", r))
	}

	return &index[T, D]{
		valueRange: r,
		domain:     d,
		firstStep:  firstStep,
	}, nil
}

// position returns the position of the given Value.
func (i *index[T, D]) position(point T) (int64, error) {
	if !i.valueRange.Contains(point) {
		return 0, ierrors.Wrapf(ErrIndexOutOfBounds, "%s is not contained in %s", point, i.valueRange)
	}

	position, err := domain.CheckedDistance[T](i.domain, i.firstStep, point)
	if err != nil {
		return 0, ierrors.Wrapf(err, "failed to determine the position of %s", point)
	} else if position < 0 {
		return 0, ierrors.Wrapf(ErrIndexOutOfBounds, "%s lies before the first step %s", point, i.firstStep)
	}

	return position, nil
}

// point reconstructs the Value at the given position.
func (i *index[T, D]) point(position int64) (T, error) {
	return i.domain.Add(i.firstStep, position)
}

// bounds returns the positions of the first and the last step of the given ValueRange (from > to if it covers no
// steps).
func (i *index[T, D]) bounds(sub valuerange.ValueRange[T]) (from, to int64, err error) {
	if !sub.IsBounded() || !i.valueRange.ContainsRange(sub) {
		return 0, 0, ierrors.Wrapf(ErrIndexOutOfBounds, "%s is not contained in %s", sub, i.valueRange)
	}

	count, err := steps.Span(sub, i.domain)
	if err != nil {
		return 0, 0, ierrors.Wrapf(err, "failed to measure span of %s", sub)
	} else if count.Steps == 0 {
		return 0, -1, nil
	}

	firstStep, err := steps.FirstStep(sub, i.domain)
	if err != nil {
		return 0, 0, ierrors.Wrapf(err, "failed to determine first step of %s", sub)
	}

	if from, err = domain.CheckedDistance[T](i.domain, i.firstStep, firstStep); err != nil {
		return 0, 0, ierrors.Wrapf(err, "failed to determine the position of %s", firstStep)
	} else if from < 0 {
		return 0, 0, ierrors.Wrapf(ErrIndexOutOfBounds, "%s starts before the first step %s", sub, i.firstStep)
	}

	if count.Steps-1 > math.MaxInt64-from {
		return from, math.MaxInt64, nil
	}

	return from, from + count.Steps - 1, nil
}
