package valuerange

import (
	"fmt"
)

// BoundType indicates whether an EndPoint of some ValueRange is contained in the ValueRange itself ("closed") or not
// ("open"). The BoundType of an unbounded side is kept as well (so it survives transformations of the ValueRange),
// but it has no influence on the contained values.
type BoundType uint8

const (
	// BoundTypeOpen indicates that the EndPoint value is not considered part of the ValueRange ("exclusive").
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the EndPoint value is considered part of the ValueRange ("inclusive").
	BoundTypeClosed
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeOpen",
	"BoundTypeClosed",
}

// BoundTypeOf returns BoundTypeClosed for inclusive and BoundTypeOpen for exclusive EndPoints.
func BoundTypeOf(inclusive bool) BoundType {
	if inclusive {
		return BoundTypeClosed
	}

	return BoundTypeOpen
}

// Inclusive returns true if the BoundType is BoundTypeClosed.
func (b BoundType) Inclusive() bool {
	return b == BoundTypeClosed
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}
