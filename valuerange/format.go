package valuerange

import (
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/steprange/boundary"
	"github.com/iotaledger/hive.go/steprange/value"
)

const (
	closedLower = '['
	openLower   = '('
	closedUpper = ']'
	openUpper   = ')'
	separator   = ","
)

// Format renders the ValueRange in the canonical bracket notation. An unbounded side is rendered as an empty token,
// the bracket of that side still reflects its BoundType so that Parse restores the ValueRange exactly.
func Format[T value.Value[T]](v ValueRange[T]) string {
	var builder strings.Builder

	if v.lowerEndPoint.Inclusive() {
		builder.WriteByte(closedLower)
	} else {
		builder.WriteByte(openLower)
	}

	if v.lowerEndPoint.boundary.IsFinite() {
		builder.WriteString(v.lowerEndPoint.boundary.MustValue().String())
	}

	builder.WriteString(separator + " ")

	if v.upperEndPoint.boundary.IsFinite() {
		builder.WriteString(v.upperEndPoint.boundary.MustValue().String())
	}

	if v.upperEndPoint.Inclusive() {
		builder.WriteByte(closedUpper)
	} else {
		builder.WriteByte(openUpper)
	}

	return builder.String()
}

// Parse parses a ValueRange from the canonical bracket notation ("[start, end]", "(start, end)", "[start, end)" or
// "(start, end]"). An empty token denotes the corresponding infinity. The finite tokens are handed to parseValue.
func Parse[T value.Value[T]](literal string, parseValue value.Parser[T]) (ValueRange[T], error) {
	trimmed := strings.TrimSpace(literal)
	if len(trimmed) < 3 {
		return ValueRange[T]{}, ierrors.Wrapf(ErrParseFailed, "literal '%s' is too short", literal)
	}

	var startInclusive, endInclusive bool
	switch trimmed[0] {
	case closedLower:
		startInclusive = true
	case openLower:
	default:
		return ValueRange[T]{}, ierrors.Wrapf(ErrParseFailed, "literal '%s' must start with '%c' or '%c'", literal, closedLower, openLower)
	}

	switch trimmed[len(trimmed)-1] {
	case closedUpper:
		endInclusive = true
	case openUpper:
	default:
		return ValueRange[T]{}, ierrors.Wrapf(ErrParseFailed, "literal '%s' must end with '%c' or '%c'", literal, closedUpper, openUpper)
	}

	startToken, endToken, found := strings.Cut(trimmed[1:len(trimmed)-1], separator)
	if !found {
		return ValueRange[T]{}, ierrors.Wrapf(ErrParseFailed, "literal '%s' is missing the '%s' separator", literal, separator)
	}

	start, err := parseBoundary(strings.TrimSpace(startToken), boundary.NegativeInfinity[T](), parseValue)
	if err != nil {
		return ValueRange[T]{}, ierrors.Wrapf(err, "failed to parse start of '%s'", literal)
	}

	end, err := parseBoundary(strings.TrimSpace(endToken), boundary.PositiveInfinity[T](), parseValue)
	if err != nil {
		return ValueRange[T]{}, ierrors.Wrapf(err, "failed to parse end of '%s'", literal)
	}

	return New(start, end, startInclusive, endInclusive)
}

// parseBoundary turns a single token into a Boundary (an empty token yields the given infinity).
func parseBoundary[T value.Value[T]](token string, infinity boundary.Boundary[T], parseValue value.Parser[T]) (boundary.Boundary[T], error) {
	if token == "" {
		return infinity, nil
	}

	parsed, err := parseValue(token)
	if err != nil {
		return boundary.Boundary[T]{}, ierrors.Join(ErrParseFailed, err)
	}

	return boundary.Finite(parsed), nil
}
