package valuerange

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidRange is returned if the boundaries of a ValueRange violate its invariants (start > end or an empty
	// range of the form (v, v)).
	ErrInvalidRange = ierrors.New("invalid range")

	// ErrParseFailed is returned if a ValueRange can not be parsed from its textual representation.
	ErrParseFailed = ierrors.New("failed to parse range")
)
