package value

import (
	"cmp"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iotaledger/hive.go/lo"
)

// region Float32 //////////////////////////////////////////////////////////////////////////////////////////////////////

// Float32 is a wrapper for float32 values that makes these values compatible with the Value constraint.
type Float32 float32

// ParseFloat32 parses a Float32 from its textual representation.
func ParseFloat32(text string) (Float32, error) {
	parsed, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, wrapParseError(err, "Float32", text)
	}

	return Float32(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller. NaN sorts before every
// other value.
func (f Float32) Compare(other Float32) int {
	return cmp.Compare(f, other)
}

// String returns the shortest representation of the Float32 that parses back to the same value.
func (f Float32) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// code contract (make sure the type implements all required methods).
var _ Value[Float32] = Float32(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Float64 //////////////////////////////////////////////////////////////////////////////////////////////////////

// Float64 is a wrapper for float64 values that makes these values compatible with the Value constraint.
type Float64 float64

// ParseFloat64 parses a Float64 from its textual representation.
func ParseFloat64(text string) (Float64, error) {
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, wrapParseError(err, "Float64", text)
	}

	return Float64(parsed), nil
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller. NaN sorts before every
// other value.
func (f Float64) Compare(other Float64) int {
	return cmp.Compare(f, other)
}

// String returns the shortest representation of the Float64 that parses back to the same value.
func (f Float64) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// code contract (make sure the type implements all required methods).
var _ Value[Float64] = Float64(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Decimal //////////////////////////////////////////////////////////////////////////////////////////////////////

// Decimal is a wrapper for arbitrary precision decimals that makes these values compatible with the Value constraint.
//
// Two Decimals that represent the same number with a different exponent (i.e. 1.5 and 1.50) compare as equal.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal wraps the given decimal.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// DecimalFromInt returns a Decimal that holds the given integer.
func DecimalFromInt(i int64) Decimal {
	return Decimal{Decimal: decimal.NewFromInt(i)}
}

// ParseDecimal parses a Decimal from its textual representation.
func ParseDecimal(text string) (Decimal, error) {
	parsed, err := decimal.NewFromString(text)
	if err != nil {
		return Decimal{}, wrapParseError(err, "Decimal", text)
	}

	return Decimal{Decimal: parsed}, nil
}

// MustParseDecimal parses a Decimal and panics if the text is malformed.
func MustParseDecimal(text string) Decimal {
	return lo.PanicOnErr(ParseDecimal(text))
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (d Decimal) Compare(other Decimal) int {
	return d.Decimal.Cmp(other.Decimal)
}

// String returns the textual representation of the Decimal.
func (d Decimal) String() string {
	return d.Decimal.String()
}

// code contract (make sure the type implements all required methods).
var _ Value[Decimal] = Decimal{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
