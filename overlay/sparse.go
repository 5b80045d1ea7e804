package overlay

import (
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/domain"
	"github.com/iotaledger/hive.go/steprange/value"
	"github.com/iotaledger/hive.go/steprange/valuerange"
)

// Sparse is an overlay that only stores the steps of a ValueRange that were set. The elements are kept in a
// red-black tree that is keyed by their position, so they can be traversed in step order.
type Sparse[T value.Value[T], D domain.Domain[T], V any] struct {
	// index translates Values to positions.
	index *index[T, D]

	// tree maps positions to elements.
	tree *redblacktree.Tree

	mutex sync.RWMutex
}

// NewSparse creates an empty Sparse overlay for the given ValueRange, which needs to have a lower bound.
func NewSparse[T value.Value[T], D domain.Domain[T], V any](r valuerange.ValueRange[T], d D) (*Sparse[T, D, V], error) {
	idx, err := newIndex(r, d)
	if err != nil {
		return nil, err
	}

	return &Sparse[T, D, V]{
		index: idx,
		tree:  redblacktree.NewWith(utils.Int64Comparator),
	}, nil
}

// Range returns the ValueRange of the overlay.
func (s *Sparse[T, D, V]) Range() valuerange.ValueRange[T] {
	return s.index.valueRange
}

// Set stores the element for the given Value (overwriting a previous one).
func (s *Sparse[T, D, V]) Set(point T, element V) error {
	position, err := s.index.position(point)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.tree.Put(position, element)

	return nil
}

// Get returns the element that was stored for the given Value.
func (s *Sparse[T, D, V]) Get(point T) (element V, exists bool) {
	position, err := s.index.position(point)
	if err != nil {
		return element, false
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stored, exists := s.tree.Get(position)
	if !exists {
		return element, false
	}

	return stored.(V), true
}

// Delete removes the element that was stored for the given Value and returns true if it existed.
func (s *Sparse[T, D, V]) Delete(point T) bool {
	position, err := s.index.position(point)
	if err != nil {
		return false
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.tree.Get(position); !exists {
		return false
	}

	s.tree.Remove(position)

	return true
}

// Floor returns the element with the largest step that is less than or equal to the given Value, together with that
// step. Values beyond the end of the Range are looked up at the last position. Nothing is found if the position of
// the Value can not be determined (i.e. because the walk limit of the Domain is reached).
func (s *Sparse[T, D, V]) Floor(point T) (floorPoint T, element V, exists bool) {
	position, err := domain.CheckedDistance[T](s.index.domain, s.index.firstStep, point)
	if err != nil || position < 0 {
		return floorPoint, element, false
	}

	s.mutex.RLock()
	node, exists := s.tree.Floor(position)
	s.mutex.RUnlock()

	if !exists {
		return floorPoint, element, false
	}

	floorPoint, err = s.index.point(node.Key.(int64))
	if err != nil {
		return floorPoint, element, false
	}

	return floorPoint, node.Value.(V), true
}

// ForEach iterates over the stored elements in ascending step order until the consumer returns false.
func (s *Sparse[T, D, V]) ForEach(consumer func(point T, element V) bool) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for it := s.tree.Iterator(); it.Next(); {
		point, err := s.index.point(it.Key().(int64))
		if err != nil {
			return ierrors.Wrapf(err, "failed to reconstruct value at index %d", it.Key())
		}

		if !consumer(point, it.Value().(V)) {
			return nil
		}
	}

	return nil
}

// Size returns the number of stored elements.
func (s *Sparse[T, D, V]) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.tree.Size()
}
