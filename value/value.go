// Package value contains the payload types that can be stored in the boundaries of a ValueRange.
//
// Every type wraps a primitive (or a type from the standard library or the decimal package) and adds the methods
// that are required by the Value constraint, so that the generic code in the other packages can order and render
// the values without knowing their concrete type.
package value

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrParseFailed is returned if a Value can not be parsed from its textual representation.
var ErrParseFailed = ierrors.New("failed to parse value")

// Value is the constraint that is used by the ValueRanges and the Domains to compare and render their payloads.
//
// Compare returns 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller. String returns the
// canonical textual representation that is understood by the matching Parse function of the type.
type Value[T any] interface {
	constraints.Comparable[T]
	fmt.Stringer
}

// Parser is the signature of the functions that turn the canonical textual representation back into a Value.
type Parser[T any] func(text string) (T, error)

// wrapParseError annotates a parsing error with the type name and the offending text.
func wrapParseError(err error, typeName string, text string) error {
	return ierrors.Wrapf(ErrParseFailed, "invalid %s '%s': %s", typeName, text, err.Error())
}
